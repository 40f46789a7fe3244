package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSearchResetsPage(t *testing.T) {
	q := NewSession(newTestStore(), 3)

	q.SetPage(3)
	require.Equal(t, 3, q.Page())

	q.SetSearchTerm("sarah")
	assert.Equal(t, 1, q.Page(), "changing the search term snaps back to page 1")
	assert.Equal(t, "sarah", q.SearchTerm())
}

func TestSessionFiltersResetPage(t *testing.T) {
	q := NewSession(newTestStore(), 3)

	q.SetPage(2)
	q.SetPatientFilters(PatientFilters{Status: "active"})
	assert.Equal(t, 1, q.Page())

	q.SetPage(2)
	q.SetAppointmentFilters(AppointmentFilters{Date: "2024-01-18"})
	assert.Equal(t, 1, q.Page())

	q.SetPage(2)
	q.SetMessageFilters(MessageFilters{Priority: "urgent"})
	assert.Equal(t, 1, q.Page())
}

func TestSessionClearFilters(t *testing.T) {
	q := NewSession(newTestStore(), 10)

	q.SetSearchTerm("diabetes")
	q.SetPatientFilters(PatientFilters{Status: "inactive"})
	require.Len(t, q.FilteredPatients(), 0)

	q.ClearFilters()
	assert.Empty(t, q.SearchTerm())
	assert.Len(t, q.FilteredPatients(), 8)
	assert.Equal(t, 1, q.Page())
}

func TestSessionPaginatedPatients(t *testing.T) {
	q := NewSession(newTestStore(), 3)

	window, totalPages := q.PaginatedPatients()
	assert.Equal(t, 3, totalPages)
	require.Len(t, window, 3)
	assert.Equal(t, "1", window[0].ID)

	q.SetPage(3)
	window, _ = q.PaginatedPatients()
	require.Len(t, window, 2)
	assert.Equal(t, "7", window[0].ID)
}

func TestSessionSortOrder(t *testing.T) {
	q := NewSession(newTestStore(), 10)

	q.SetSortOrder(SortDesc)
	got := q.FilteredAppointments()
	require.Len(t, got, 10)
	assert.Equal(t, "2024-01-19", got[0].Date)

	// unknown orders are ignored
	q.SetSortOrder(SortOrder("sideways"))
	got = q.FilteredAppointments()
	assert.Equal(t, "2024-01-19", got[0].Date)
}

func TestSessionStatsIgnoreFilters(t *testing.T) {
	q := NewSession(newTestStore(), 10)

	q.SetSearchTerm("no-such-patient")
	require.Empty(t, q.FilteredPatients())

	st := q.Stats()
	assert.Equal(t, 8, st.TotalPatients, "counters come from the full collections")
	assert.Equal(t, 4, st.UnreadMessages)
}
