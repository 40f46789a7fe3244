package store

import (
	"sort"
	"strings"

	"carebridge-server/internal/format"
	"carebridge-server/internal/models"
)

// SortOrder selects ascending or descending date order for derived views.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterAll is the sentinel filter value meaning "no restriction"; the
// dashboard's dropdowns send it for their default option. An empty string
// means the same thing.
const FilterAll = "all"

// PatientFilters is the closed filter descriptor for the patient
// collection. Status and RiskLevel match exactly; Condition is a
// case-insensitive substring match.
type PatientFilters struct {
	Status    string `form:"status"`
	RiskLevel string `form:"riskLevel"`
	Condition string `form:"condition"`
}

// DoctorFilters is the closed filter descriptor for the doctor
// collection. Specialty and Status match exactly; Experience is a
// substring match.
type DoctorFilters struct {
	Specialty  string `form:"specialty"`
	Status     string `form:"status"`
	Experience string `form:"experience"`
}

// AppointmentFilters is the closed filter descriptor for the appointment
// collection. All fields match exactly; DoctorID matches the linked
// doctor id.
type AppointmentFilters struct {
	Status   string `form:"status"`
	Type     string `form:"type"`
	Date     string `form:"date"`
	DoctorID string `form:"doctor"`
}

// MessageFilters is the closed filter descriptor for the message
// collection. All fields match exactly; Read is a tri-state
// (nil = unfiltered).
type MessageFilters struct {
	Priority string `form:"priority"`
	Read     *bool  `form:"read"`
	ThreadID string `form:"threadId"`
}

// FilterPatients derives the patient view for the given search term,
// filters, and sort order. Patients carry no date-like field, so sorting
// preserves collection order.
func (s *Store) FilterPatients(search string, f PatientFilters, order SortOrder) []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := filterBySearch(s.patients, search, func(p models.Patient) []string {
		return []string{p.Name, p.Condition, p.Email, p.Phone}
	})
	if filterSet(f.Status) {
		filtered = keep(filtered, func(p models.Patient) bool { return string(p.Status) == f.Status })
	}
	if filterSet(f.RiskLevel) {
		filtered = keep(filtered, func(p models.Patient) bool { return string(p.RiskLevel) == f.RiskLevel })
	}
	if f.Condition != "" {
		needle := strings.ToLower(f.Condition)
		filtered = keep(filtered, func(p models.Patient) bool {
			return strings.Contains(strings.ToLower(p.Condition), needle)
		})
	}
	sortByDate(filtered, func(models.Patient) string { return "" }, order)
	return filtered
}

// FilterDoctors derives the doctor view. Doctors carry no date-like
// field, so sorting preserves collection order.
func (s *Store) FilterDoctors(search string, f DoctorFilters, order SortOrder) []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := filterBySearch(s.doctors, search, func(d models.Doctor) []string {
		return []string{d.Name, d.Specialty, d.Location, d.Email, d.Phone}
	})
	if filterSet(f.Specialty) {
		filtered = keep(filtered, func(d models.Doctor) bool { return d.Specialty == f.Specialty })
	}
	if filterSet(f.Status) {
		filtered = keep(filtered, func(d models.Doctor) bool { return string(d.Status) == f.Status })
	}
	if f.Experience != "" {
		filtered = keep(filtered, func(d models.Doctor) bool {
			return strings.Contains(d.Experience, f.Experience)
		})
	}
	sortByDate(filtered, func(models.Doctor) string { return "" }, order)
	return filtered
}

// FilterAppointments derives the appointment view, ordered by calendar
// date.
func (s *Store) FilterAppointments(search string, f AppointmentFilters, order SortOrder) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := filterBySearch(s.appointments, search, func(a models.Appointment) []string {
		return []string{a.Patient, a.Doctor, a.Reason, a.Location}
	})
	if filterSet(f.Status) {
		filtered = keep(filtered, func(a models.Appointment) bool { return string(a.Status) == f.Status })
	}
	if filterSet(f.Type) {
		filtered = keep(filtered, func(a models.Appointment) bool { return string(a.Type) == f.Type })
	}
	if f.Date != "" {
		filtered = keep(filtered, func(a models.Appointment) bool { return a.Date == f.Date })
	}
	if filterSet(f.DoctorID) {
		filtered = keep(filtered, func(a models.Appointment) bool { return a.DoctorID == f.DoctorID })
	}
	sortByDate(filtered, func(a models.Appointment) string { return a.Date }, order)
	return filtered
}

// FilterMessages derives the message view, ordered by timestamp.
func (s *Store) FilterMessages(search string, f MessageFilters, order SortOrder) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := filterBySearch(s.messages, search, func(m models.Message) []string {
		return []string{m.Sender, m.Content}
	})
	if filterSet(f.Priority) {
		filtered = keep(filtered, func(m models.Message) bool { return string(m.Priority) == f.Priority })
	}
	if f.Read != nil {
		filtered = keep(filtered, func(m models.Message) bool { return m.Read == *f.Read })
	}
	if f.ThreadID != "" {
		filtered = keep(filtered, func(m models.Message) bool { return m.ThreadID == f.ThreadID })
	}
	sortByDate(filtered, func(m models.Message) string { return m.Timestamp }, order)
	return filtered
}

// filterBySearch keeps entities where at least one of the collection's
// searchable string fields contains the lowercased term. A blank term is
// the identity.
func filterBySearch[T any](items []T, term string, fields func(T) []string) []T {
	out := clone(items)
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return out
	}
	return keep(out, func(item T) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				return true
			}
		}
		return false
	})
}

// sortByDate orders items by their date-like field, parsed as a calendar
// timestamp. Items without one sort as the zero time; the sort is stable,
// so ties keep collection order and descending is the reverse of
// ascending for the same input.
func sortByDate[T any](items []T, key func(T) string, order SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		ti := format.ParseWhen(key(items[i]))
		tj := format.ParseWhen(key(items[j]))
		if order == SortDesc {
			return tj.Before(ti)
		}
		return ti.Before(tj)
	})
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := items[:0]
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// filterSet reports whether an exact-match filter is active; unset values
// and the "all" sentinel are skipped.
func filterSet(v string) bool {
	return v != "" && v != FilterAll
}
