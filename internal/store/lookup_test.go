package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByIDLookups(t *testing.T) {
	s := newTestStore()

	p, err := s.PatientByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Michael Chen", p.Name)

	d, err := s.DoctorByID("5")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Emily Davis", d.Name)

	a, err := s.AppointmentByID("4")
	require.NoError(t, err)
	assert.Equal(t, "David Rodriguez", a.Patient)

	m, err := s.MessageByID("6")
	require.NoError(t, err)
	assert.Equal(t, "Nurse Kelly", m.Sender)

	_, err = s.PatientByID("404")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.DoctorByID("404")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.AppointmentByID("404")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.MessageByID("404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentsByDate(t *testing.T) {
	s := newTestStore()

	assert.Len(t, s.AppointmentsByDate("2024-01-18"), 5)
	assert.Len(t, s.AppointmentsByDate("2024-01-19"), 5)
	assert.Empty(t, s.AppointmentsByDate("2024-02-01"))
}

func TestAppointmentsByDoctor(t *testing.T) {
	s := newTestStore()

	got := s.AppointmentsByDoctor("1")
	require.Len(t, got, 2)
	assert.Equal(t, "Sarah Johnson", got[0].Patient)
	assert.Equal(t, "Robert Kim", got[1].Patient)

	assert.Empty(t, s.AppointmentsByDoctor("404"))
}

func TestAppointmentsByPatient(t *testing.T) {
	s := newTestStore()

	got := s.AppointmentsByPatient("2")
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "10", got[1].ID)
}

func TestMessagesByThread(t *testing.T) {
	s := newTestStore()

	got := s.MessagesByThread("1")
	require.Len(t, got, 4)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "4", got[3].ID)

	assert.Empty(t, s.MessagesByThread("404"))
}

func TestHighRiskPatients(t *testing.T) {
	s := newTestStore()

	got := s.HighRiskPatients()
	require.Len(t, got, 3)
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	assert.Equal(t, []string{"Michael Chen", "David Rodriguez", "James Anderson"}, names)
}

func TestAvailableDoctors(t *testing.T) {
	s := newTestStore()

	got := s.AvailableDoctors()
	assert.Len(t, got, 5)
	for _, d := range got {
		assert.Equal(t, "available", string(d.Status))
	}
}

func TestConversations(t *testing.T) {
	s := newTestStore()

	convs := s.Conversations()
	require.Len(t, convs, 5)

	first := convs[0]
	assert.Equal(t, "1", first.ThreadID)
	assert.Equal(t, 4, first.MessageCount)
	assert.Equal(t, 2, first.UnreadCount)
	assert.Equal(t, []string{"Sarah Johnson", "Dr. Amanda Rodriguez"}, first.Participants)
	assert.Equal(t, "4", first.LastMessage.ID)

	// threads appear in first-message order
	assert.Equal(t, "2", convs[1].ThreadID)
	assert.Equal(t, "3", convs[2].ThreadID)
	assert.Equal(t, "4", convs[3].ThreadID)
	assert.Equal(t, "5", convs[4].ThreadID)
}
