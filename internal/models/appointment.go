package models

// AppointmentType represents the kind of visit
type AppointmentType string

const (
	TypeVideo        AppointmentType = "video"
	TypeClinic       AppointmentType = "clinic"
	TypeEmergency    AppointmentType = "emergency"
	TypeFollowUp     AppointmentType = "follow-up"
	TypeConsultation AppointmentType = "consultation"
)

// Valid reports whether the type is within the closed set.
func (t AppointmentType) Valid() bool {
	switch t {
	case TypeVideo, TypeClinic, TypeEmergency, TypeFollowUp, TypeConsultation:
		return true
	}
	return false
}

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusPending     AppointmentStatus = "pending"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

// Valid reports whether the status is within the closed set.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted, StatusRescheduled:
		return true
	}
	return false
}

// PaymentStatus represents the billing state of an appointment
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentWaived  PaymentStatus = "waived"
)

// Valid reports whether the payment status is within the closed set.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentWaived:
		return true
	}
	return false
}

// Appointment represents a scheduled visit. Patient and doctor are linked
// by id; the display names are carried alongside for the dashboard and are
// resolved from the linked records at creation time.
type Appointment struct {
	ID            string            `json:"id"`
	PatientID     string            `json:"patientId"`
	DoctorID      string            `json:"doctorId"`
	Patient       string            `json:"patient"`
	Doctor        string            `json:"doctor"`
	Time          string            `json:"time"`
	Date          string            `json:"date"`
	Duration      string            `json:"duration"`
	Type          AppointmentType   `json:"type"`
	Status        AppointmentStatus `json:"status"`
	Reason        string            `json:"reason"`
	Location      string            `json:"location"`
	Notes         string            `json:"notes"`
	Symptoms      []string          `json:"symptoms"`
	Diagnosis     string            `json:"diagnosis"`
	Treatment     string            `json:"treatment"`
	FollowUpDate  string            `json:"followUpDate"`
	Insurance     string            `json:"insurance"`
	Cost          float64           `json:"cost"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
}
