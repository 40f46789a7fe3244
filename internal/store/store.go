package store

import (
	"sync"

	"carebridge-server/internal/models"
)

// Dataset is the initial state of a Store. Seeding is equivalent to a
// series of add calls at startup.
type Dataset struct {
	Patients     []models.Patient
	Doctors      []models.Doctor
	Appointments []models.Appointment
	Messages     []models.Message
}

// Store owns the four in-memory collections for the lifetime of the
// process. All reads and writes go through its methods; gin serves
// handlers on multiple goroutines, so access is guarded by an RWMutex.
type Store struct {
	mu           sync.RWMutex
	patients     []models.Patient
	doctors      []models.Doctor
	appointments []models.Appointment
	messages     []models.Message
}

// New creates a Store initialized from the given dataset.
func New(seed Dataset) *Store {
	s := &Store{
		patients:     make([]models.Patient, len(seed.Patients)),
		doctors:      make([]models.Doctor, len(seed.Doctors)),
		appointments: make([]models.Appointment, len(seed.Appointments)),
		messages:     make([]models.Message, len(seed.Messages)),
	}
	copy(s.patients, seed.Patients)
	copy(s.doctors, seed.Doctors)
	copy(s.appointments, seed.Appointments)
	copy(s.messages, seed.Messages)
	return s
}

// Patients returns a copy of the unfiltered patient collection.
func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.patients)
}

// Doctors returns a copy of the unfiltered doctor collection.
func (s *Store) Doctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.doctors)
}

// Appointments returns a copy of the unfiltered appointment collection.
func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.appointments)
}

// Messages returns a copy of the unfiltered message collection.
func (s *Store) Messages() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.messages)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
