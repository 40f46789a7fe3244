package store

import (
	"time"

	"carebridge-server/internal/format"
	"carebridge-server/internal/models"
)

// Stats holds the dashboard summary counters. They are computed from the
// unfiltered collections, never from search or filter results.
type Stats struct {
	TotalPatients       int `json:"totalPatients"`
	TotalDoctors        int `json:"totalDoctors"`
	TotalAppointments   int `json:"totalAppointments"`
	TotalMessages       int `json:"totalMessages"`
	ActivePatients      int `json:"activePatients"`
	AvailableDoctors    int `json:"availableDoctors"`
	TodayAppointments   int `json:"todayAppointments"`
	UnreadMessages      int `json:"unreadMessages"`
	HighRiskPatients    int `json:"highRiskPatients"`
	PendingAppointments int `json:"pendingAppointments"`
}

// Stats computes the summary counters as of now.
func (s *Store) Stats() Stats {
	return s.StatsAt(time.Now())
}

// StatsAt computes the summary counters against an explicit clock; "today"
// is the local calendar date of now.
func (s *Store) StatsAt(now time.Time) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := now.Format(format.DateOnly)
	st := Stats{
		TotalPatients:     len(s.patients),
		TotalDoctors:      len(s.doctors),
		TotalAppointments: len(s.appointments),
		TotalMessages:     len(s.messages),
	}
	for _, p := range s.patients {
		if p.Status == models.PatientActive {
			st.ActivePatients++
		}
		if p.RiskLevel == models.RiskHigh || p.RiskLevel == models.RiskCritical {
			st.HighRiskPatients++
		}
	}
	for _, d := range s.doctors {
		if d.Status == models.DoctorAvailable {
			st.AvailableDoctors++
		}
	}
	for _, a := range s.appointments {
		if a.Date == today {
			st.TodayAppointments++
		}
		if a.Status == models.StatusPending {
			st.PendingAppointments++
		}
	}
	for _, m := range s.messages {
		if !m.Read {
			st.UnreadMessages++
		}
	}
	return st
}
