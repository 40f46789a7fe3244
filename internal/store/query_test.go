package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebridge-server/internal/models"
)

func TestFilterPatientsBlankIsIdentity(t *testing.T) {
	s := newTestStore()

	got := s.FilterPatients("", PatientFilters{}, SortAsc)
	assert.Len(t, got, 8)
	assert.Equal(t, "1", got[0].ID, "no date field, collection order preserved")
	assert.Equal(t, "8", got[7].ID)
}

func TestFilterPatientsSearch(t *testing.T) {
	s := newTestStore()

	got := s.FilterPatients("diabetes", PatientFilters{}, SortAsc)
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Johnson", got[0].Name)

	// case-insensitive, matches name too
	got = s.FilterPatients("GARCIA", PatientFilters{}, SortAsc)
	require.Len(t, got, 1)
	assert.Equal(t, "Maria Garcia", got[0].Name)

	assert.Empty(t, s.FilterPatients("zzz-no-match", PatientFilters{}, SortAsc))
}

func TestFilterPatientsByStatusAndRisk(t *testing.T) {
	s := newTestStore()

	assert.Len(t, s.FilterPatients("", PatientFilters{Status: "active"}, SortAsc), 7)
	assert.Len(t, s.FilterPatients("", PatientFilters{Status: "inactive"}, SortAsc), 1)
	assert.Len(t, s.FilterPatients("", PatientFilters{RiskLevel: "high"}, SortAsc), 2)

	got := s.FilterPatients("", PatientFilters{Status: "active", RiskLevel: "critical"}, SortAsc)
	require.Len(t, got, 1)
	assert.Equal(t, "James Anderson", got[0].Name)
}

func TestFilterPatientsAllSentinel(t *testing.T) {
	s := newTestStore()

	got := s.FilterPatients("", PatientFilters{Status: FilterAll, RiskLevel: FilterAll}, SortAsc)
	assert.Len(t, got, 8, `"all" means no restriction`)
}

func TestFilterDoctorsSearchBySpecialty(t *testing.T) {
	s := newTestStore()

	got := s.FilterDoctors("cardio", DoctorFilters{}, SortAsc)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Amanda Rodriguez", got[0].Name)
}

func TestFilterDoctors(t *testing.T) {
	s := newTestStore()

	assert.Len(t, s.FilterDoctors("", DoctorFilters{Status: "available"}, SortAsc), 5)

	got := s.FilterDoctors("", DoctorFilters{Specialty: "Neurology"}, SortAsc)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. James Wilson", got[0].Name)

	// experience is a substring match
	got = s.FilterDoctors("", DoctorFilters{Experience: "15"}, SortAsc)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Amanda Rodriguez", got[0].Name)
}

func TestFilterAppointmentsSortByDate(t *testing.T) {
	s := newTestStore()

	asc := s.FilterAppointments("", AppointmentFilters{}, SortAsc)
	require.Len(t, asc, 10)
	ids := make([]string, len(asc))
	for i, a := range asc {
		ids[i] = a.ID
	}
	// stable sort: same-day appointments keep collection order
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, ids)

	desc := s.FilterAppointments("", AppointmentFilters{}, SortDesc)
	ids = ids[:0]
	for _, a := range desc {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"6", "7", "8", "9", "10", "1", "2", "3", "4", "5"}, ids)
}

func TestFilterAppointments(t *testing.T) {
	s := newTestStore()

	assert.Len(t, s.FilterAppointments("", AppointmentFilters{Date: "2024-01-18"}, SortAsc), 5)
	assert.Len(t, s.FilterAppointments("", AppointmentFilters{Status: "pending"}, SortAsc), 3)
	assert.Len(t, s.FilterAppointments("", AppointmentFilters{Type: "consultation"}, SortAsc), 4)
	assert.Len(t, s.FilterAppointments("", AppointmentFilters{DoctorID: "3"}, SortAsc), 2)

	got := s.FilterAppointments("", AppointmentFilters{Date: "2024-01-19", Status: "pending"}, SortAsc)
	require.Len(t, got, 2)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "10", got[1].ID)
}

func TestFilterAppointmentsSearch(t *testing.T) {
	s := newTestStore()

	// matches patient name, doctor name, reason, and location
	assert.Len(t, s.FilterAppointments("sarah johnson", AppointmentFilters{}, SortAsc), 2)
	assert.Len(t, s.FilterAppointments("prenatal", AppointmentFilters{}, SortAsc), 1)
}

func TestFilterMessages(t *testing.T) {
	s := newTestStore()

	unread := false
	got := s.FilterMessages("", MessageFilters{Read: &unread}, SortAsc)
	assert.Len(t, got, 4)

	assert.Len(t, s.FilterMessages("", MessageFilters{Priority: "urgent"}, SortAsc), 2)
	assert.Len(t, s.FilterMessages("", MessageFilters{ThreadID: "1"}, SortAsc), 4)
	assert.Len(t, s.FilterMessages("", MessageFilters{}, SortAsc), 10, "nil read filter is unfiltered")
}

func TestFilterMessagesSortByTimestamp(t *testing.T) {
	s := newTestStore()

	asc := s.FilterMessages("", MessageFilters{}, SortAsc)
	require.Len(t, asc, 10)
	assert.Equal(t, "9", asc[0].ID, "oldest message first")
	assert.Equal(t, "5", asc[9].ID, "latest message last")

	desc := s.FilterMessages("", MessageFilters{}, SortDesc)
	assert.Equal(t, "5", desc[0].ID)
	assert.Equal(t, "9", desc[9].ID)
}

func TestFilterResultsAreCopies(t *testing.T) {
	s := newTestStore()

	got := s.FilterPatients("", PatientFilters{}, SortAsc)
	got[0].RiskLevel = models.RiskCritical

	p, err := s.PatientByID("1")
	require.NoError(t, err)
	assert.Equal(t, models.RiskMedium, p.RiskLevel)
}
