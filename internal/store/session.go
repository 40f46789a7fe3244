package store

import "carebridge-server/internal/models"

// Session holds one consumer's query state: search term, per-collection
// filters, sort order, and the pagination cursor. Changing the search term
// or any filter snaps the cursor back to page 1. Sessions are for a single
// logical caller and are not safe for concurrent use; the Store underneath
// is.
type Session struct {
	store *Store

	searchTerm   string
	patients     PatientFilters
	doctors      DoctorFilters
	appointments AppointmentFilters
	messages     MessageFilters
	sortOrder    SortOrder

	currentPage  int
	itemsPerPage int
}

// NewSession creates a query session over the store with ascending sort
// and the given page size.
func NewSession(s *Store, itemsPerPage int) *Session {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	return &Session{
		store:        s,
		sortOrder:    SortAsc,
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// SetSearchTerm sets the shared search term and resets to page 1.
func (q *Session) SetSearchTerm(term string) {
	q.searchTerm = term
	q.currentPage = 1
}

// SearchTerm returns the current search term.
func (q *Session) SearchTerm() string { return q.searchTerm }

// SetPatientFilters replaces the patient filters and resets to page 1.
func (q *Session) SetPatientFilters(f PatientFilters) {
	q.patients = f
	q.currentPage = 1
}

// SetDoctorFilters replaces the doctor filters and resets to page 1.
func (q *Session) SetDoctorFilters(f DoctorFilters) {
	q.doctors = f
	q.currentPage = 1
}

// SetAppointmentFilters replaces the appointment filters and resets to
// page 1.
func (q *Session) SetAppointmentFilters(f AppointmentFilters) {
	q.appointments = f
	q.currentPage = 1
}

// SetMessageFilters replaces the message filters and resets to page 1.
func (q *Session) SetMessageFilters(f MessageFilters) {
	q.messages = f
	q.currentPage = 1
}

// ClearFilters drops all filters and the search term and resets to page 1.
func (q *Session) ClearFilters() {
	q.patients = PatientFilters{}
	q.doctors = DoctorFilters{}
	q.appointments = AppointmentFilters{}
	q.messages = MessageFilters{}
	q.searchTerm = ""
	q.currentPage = 1
}

// SetSortOrder sets ascending or descending date order.
func (q *Session) SetSortOrder(order SortOrder) {
	if order == SortAsc || order == SortDesc {
		q.sortOrder = order
	}
}

// SetPage moves the pagination cursor.
func (q *Session) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.currentPage = page
}

// Page returns the current page number.
func (q *Session) Page() int { return q.currentPage }

// SetItemsPerPage changes the page size.
func (q *Session) SetItemsPerPage(n int) {
	if n < 1 {
		n = 1
	}
	q.itemsPerPage = n
}

// FilteredPatients returns the patient view for the session's state.
func (q *Session) FilteredPatients() []models.Patient {
	return q.store.FilterPatients(q.searchTerm, q.patients, q.sortOrder)
}

// FilteredDoctors returns the doctor view for the session's state.
func (q *Session) FilteredDoctors() []models.Doctor {
	return q.store.FilterDoctors(q.searchTerm, q.doctors, q.sortOrder)
}

// FilteredAppointments returns the appointment view for the session's
// state.
func (q *Session) FilteredAppointments() []models.Appointment {
	return q.store.FilterAppointments(q.searchTerm, q.appointments, q.sortOrder)
}

// FilteredMessages returns the message view for the session's state.
func (q *Session) FilteredMessages() []models.Message {
	return q.store.FilterMessages(q.searchTerm, q.messages, q.sortOrder)
}

// PaginatedPatients returns the current page of the filtered patient view
// and the total page count.
func (q *Session) PaginatedPatients() ([]models.Patient, int) {
	return Paginate(q.FilteredPatients(), q.currentPage, q.itemsPerPage)
}

// Stats returns the dashboard counters; they ignore the session's search
// and filter state.
func (q *Session) Stats() Stats {
	return q.store.Stats()
}
