package store

import (
	"fmt"

	"carebridge-server/internal/models"
)

// Point lookups and derived slices, independent of the query engine.

// PatientByID returns the patient with the given id.
func (s *Store) PatientByID(id string) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p := s.findPatient(id); p != nil {
		return *p, nil
	}
	return models.Patient{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
}

// DoctorByID returns the doctor with the given id.
func (s *Store) DoctorByID(id string) (models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d := s.findDoctor(id); d != nil {
		return *d, nil
	}
	return models.Doctor{}, fmt.Errorf("doctor %s: %w", id, ErrNotFound)
}

// MessageByID returns the message with the given id.
func (s *Store) MessageByID(id string) (models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			return s.messages[i], nil
		}
	}
	return models.Message{}, fmt.Errorf("message %s: %w", id, ErrNotFound)
}

// AppointmentByID returns the appointment with the given id.
func (s *Store) AppointmentByID(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			return s.appointments[i], nil
		}
	}
	return models.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
}

// AppointmentsByDate returns every appointment on the given calendar date.
func (s *Store) AppointmentsByDate(date string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keep(clone(s.appointments), func(a models.Appointment) bool { return a.Date == date })
}

// AppointmentsByDoctor returns every appointment linked to the doctor id.
func (s *Store) AppointmentsByDoctor(doctorID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keep(clone(s.appointments), func(a models.Appointment) bool { return a.DoctorID == doctorID })
}

// AppointmentsByPatient returns every appointment linked to the patient id.
func (s *Store) AppointmentsByPatient(patientID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keep(clone(s.appointments), func(a models.Appointment) bool { return a.PatientID == patientID })
}

// MessagesByThread returns the messages of one conversation in collection
// order.
func (s *Store) MessagesByThread(threadID string) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keep(clone(s.messages), func(m models.Message) bool { return m.ThreadID == threadID })
}

// UnreadMessageCount counts messages not yet read.
func (s *Store) UnreadMessageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, m := range s.messages {
		if !m.Read {
			count++
		}
	}
	return count
}

// HighRiskPatients returns patients classified high or critical.
func (s *Store) HighRiskPatients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keep(clone(s.patients), func(p models.Patient) bool {
		return p.RiskLevel == models.RiskHigh || p.RiskLevel == models.RiskCritical
	})
}

// AvailableDoctors returns doctors currently marked available.
func (s *Store) AvailableDoctors() []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keep(clone(s.doctors), func(d models.Doctor) bool { return d.Status == models.DoctorAvailable })
}

// Conversation summarizes one message thread for the inbox view.
type Conversation struct {
	ThreadID     string         `json:"threadId"`
	Participants []string       `json:"participants"`
	LastMessage  models.Message `json:"lastMessage"`
	MessageCount int            `json:"messageCount"`
	UnreadCount  int            `json:"unreadCount"`
}

// Conversations groups messages by thread and summarizes each one,
// ordered by the threads' first appearance in the collection.
func (s *Store) Conversations() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int)
	var out []Conversation
	for _, m := range s.messages {
		i, ok := index[m.ThreadID]
		if !ok {
			i = len(out)
			index[m.ThreadID] = i
			out = append(out, Conversation{ThreadID: m.ThreadID})
		}
		c := &out[i]
		c.MessageCount++
		if !m.Read {
			c.UnreadCount++
		}
		c.LastMessage = m
		seen := false
		for _, p := range c.Participants {
			if p == m.Sender {
				seen = true
				break
			}
		}
		if !seen {
			c.Participants = append(c.Participants, m.Sender)
		}
	}
	return out
}
