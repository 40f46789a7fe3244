package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebridge-server/internal/models"
)

func TestStatsAt(t *testing.T) {
	s := newTestStore()
	now := time.Date(2024, 1, 18, 12, 0, 0, 0, time.Local)

	st := s.StatsAt(now)
	assert.Equal(t, Stats{
		TotalPatients:       8,
		TotalDoctors:        8,
		TotalAppointments:   10,
		TotalMessages:       10,
		ActivePatients:      7,
		AvailableDoctors:    5,
		TodayAppointments:   5,
		UnreadMessages:      4,
		HighRiskPatients:    3,
		PendingAppointments: 3,
	}, st)
}

func TestStatsAtDifferentDay(t *testing.T) {
	s := newTestStore()

	st := s.StatsAt(time.Date(2024, 1, 19, 8, 0, 0, 0, time.Local))
	assert.Equal(t, 5, st.TodayAppointments)

	st = s.StatsAt(time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local))
	assert.Equal(t, 0, st.TodayAppointments)
}

func TestStatsFollowMutations(t *testing.T) {
	s := newTestStore()
	now := time.Date(2024, 1, 18, 12, 0, 0, 0, time.Local)

	require.NoError(t, s.DeleteMessage("7")) // unread, urgent
	status := models.PatientInactive
	_, err := s.UpdatePatient("1", PatientPatch{Status: &status})
	require.NoError(t, err)

	st := s.StatsAt(now)
	assert.Equal(t, 9, st.TotalMessages)
	assert.Equal(t, 3, st.UnreadMessages)
	assert.Equal(t, 6, st.ActivePatients)
}
