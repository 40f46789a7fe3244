package store

import (
	"fmt"

	"github.com/google/uuid"

	"carebridge-server/internal/models"
)

// Mutation API. Add assigns a fresh uuid and appends; Update shallow-merges
// the provided fields into the entity with the given id; Delete removes it.
// NotFound and enum violations come back as errors rather than silent
// no-ops.

// PatientPatch holds the fields of a partial patient update. Nil fields are
// left untouched.
type PatientPatch struct {
	Name                 *string                  `json:"name"`
	Age                  *int                     `json:"age"`
	Phone                *string                  `json:"phone"`
	Email                *string                  `json:"email"`
	LastVisit            *string                  `json:"lastVisit"`
	Condition            *string                  `json:"condition"`
	Status               *models.PatientStatus    `json:"status"`
	RiskLevel            *models.RiskLevel        `json:"riskLevel"`
	Address              *string                  `json:"address"`
	EmergencyContact     *models.EmergencyContact `json:"emergencyContact"`
	Insurance            *string                  `json:"insurance"`
	PrimaryCarePhysician *string                  `json:"primaryCarePhysician"`
	Allergies            []string                 `json:"allergies"`
	Medications          []string                 `json:"medications"`
	BloodType            *string                  `json:"bloodType"`
	Height               *string                  `json:"height"`
	Weight               *string                  `json:"weight"`
	LastLabResults       *string                  `json:"lastLabResults"`
	NextAppointment      *string                  `json:"nextAppointment"`
	Notes                *string                  `json:"notes"`
}

// DoctorPatch holds the fields of a partial doctor update.
type DoctorPatch struct {
	Name                 *string                   `json:"name"`
	Specialty            *string                   `json:"specialty"`
	Experience           *string                   `json:"experience"`
	Phone                *string                   `json:"phone"`
	Email                *string                   `json:"email"`
	Location             *string                   `json:"location"`
	Rating               *float64                  `json:"rating"`
	Patients             *int                      `json:"patients"`
	NextAvailable        *string                   `json:"nextAvailable"`
	Status               *models.DoctorStatus      `json:"status"`
	LicenseNumber        *string                   `json:"licenseNumber"`
	Education            []string                  `json:"education"`
	Certifications       []string                  `json:"certifications"`
	Languages            []string                  `json:"languages"`
	Availability         models.WeeklyAvailability `json:"availability"`
	Specialties          []string                  `json:"specialties"`
	HospitalAffiliations []string                  `json:"hospitalAffiliations"`
	ResearchInterests    []string                  `json:"researchInterests"`
	Publications         *int                      `json:"publications"`
	Awards               []string                  `json:"awards"`
}

// AppointmentPatch holds the fields of a partial appointment update.
type AppointmentPatch struct {
	PatientID     *string                   `json:"patientId"`
	DoctorID      *string                   `json:"doctorId"`
	Time          *string                   `json:"time"`
	Date          *string                   `json:"date"`
	Duration      *string                   `json:"duration"`
	Type          *models.AppointmentType   `json:"type"`
	Status        *models.AppointmentStatus `json:"status"`
	Reason        *string                   `json:"reason"`
	Location      *string                   `json:"location"`
	Notes         *string                   `json:"notes"`
	Symptoms      []string                  `json:"symptoms"`
	Diagnosis     *string                   `json:"diagnosis"`
	Treatment     *string                   `json:"treatment"`
	FollowUpDate  *string                   `json:"followUpDate"`
	Insurance     *string                   `json:"insurance"`
	Cost          *float64                  `json:"cost"`
	PaymentStatus *models.PaymentStatus     `json:"paymentStatus"`
}

// MessagePatch holds the fields of a partial message update.
type MessagePatch struct {
	SenderID    *string                 `json:"senderId"`
	Content     *string                 `json:"content"`
	Timestamp   *string                 `json:"timestamp"`
	IsFromUser  *bool                   `json:"isFromUser"`
	Attachments []string                `json:"attachments"`
	Priority    *models.MessagePriority `json:"priority"`
	Read        *bool                   `json:"read"`
	ThreadID    *string                 `json:"threadId"`
}

// AddPatient validates the patient's enum fields, assigns a fresh id,
// derives bmi, and appends the record.
func (s *Store) AddPatient(p models.Patient) (models.Patient, error) {
	if !p.Status.Valid() {
		return models.Patient{}, invalidEnum("status", string(p.Status), "active", "inactive", "pending")
	}
	if !p.RiskLevel.Valid() {
		return models.Patient{}, invalidEnum("riskLevel", string(p.RiskLevel), "low", "medium", "high", "critical")
	}
	p.ID = uuid.New().String()
	p.RecomputeBMI()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append(s.patients, p)
	return p, nil
}

// UpdatePatient shallow-merges the patch into the patient with the given
// id. bmi is re-derived whenever the patch touches weight or height.
func (s *Store) UpdatePatient(id string, patch PatientPatch) (models.Patient, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Patient{}, invalidEnum("status", string(*patch.Status), "active", "inactive", "pending")
	}
	if patch.RiskLevel != nil && !patch.RiskLevel.Valid() {
		return models.Patient{}, invalidEnum("riskLevel", string(*patch.RiskLevel), "low", "medium", "high", "critical")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID != id {
			continue
		}
		p := &s.patients[i]
		setString(&p.Name, patch.Name)
		if patch.Age != nil {
			p.Age = *patch.Age
		}
		setString(&p.Phone, patch.Phone)
		setString(&p.Email, patch.Email)
		setString(&p.LastVisit, patch.LastVisit)
		setString(&p.Condition, patch.Condition)
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.RiskLevel != nil {
			p.RiskLevel = *patch.RiskLevel
		}
		setString(&p.Address, patch.Address)
		if patch.EmergencyContact != nil {
			p.EmergencyContact = *patch.EmergencyContact
		}
		setString(&p.Insurance, patch.Insurance)
		setString(&p.PrimaryCarePhysician, patch.PrimaryCarePhysician)
		if patch.Allergies != nil {
			p.Allergies = patch.Allergies
		}
		if patch.Medications != nil {
			p.Medications = patch.Medications
		}
		setString(&p.BloodType, patch.BloodType)
		setString(&p.LastLabResults, patch.LastLabResults)
		setString(&p.NextAppointment, patch.NextAppointment)
		setString(&p.Notes, patch.Notes)
		if patch.Height != nil || patch.Weight != nil {
			setString(&p.Height, patch.Height)
			setString(&p.Weight, patch.Weight)
			p.RecomputeBMI()
		}
		return *p, nil
	}
	return models.Patient{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
}

// DeletePatient removes the patient with the given id. Appointments and
// messages referencing the patient are left in place; cascading cleanup is
// the external record system's concern.
func (s *Store) DeletePatient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("patient %s: %w", id, ErrNotFound)
}

// AddDoctor validates the doctor's status, assigns a fresh id, and appends
// the record.
func (s *Store) AddDoctor(d models.Doctor) (models.Doctor, error) {
	if !d.Status.Valid() {
		return models.Doctor{}, invalidEnum("status", string(d.Status), "available", "busy", "surgery", "on-call", "off-duty")
	}
	d.ID = uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append(s.doctors, d)
	return d, nil
}

// UpdateDoctor shallow-merges the patch into the doctor with the given id.
func (s *Store) UpdateDoctor(id string, patch DoctorPatch) (models.Doctor, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Doctor{}, invalidEnum("status", string(*patch.Status), "available", "busy", "surgery", "on-call", "off-duty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doctors {
		if s.doctors[i].ID != id {
			continue
		}
		d := &s.doctors[i]
		setString(&d.Name, patch.Name)
		setString(&d.Specialty, patch.Specialty)
		setString(&d.Experience, patch.Experience)
		setString(&d.Phone, patch.Phone)
		setString(&d.Email, patch.Email)
		setString(&d.Location, patch.Location)
		if patch.Rating != nil {
			d.Rating = *patch.Rating
		}
		if patch.Patients != nil {
			d.Patients = *patch.Patients
		}
		setString(&d.NextAvailable, patch.NextAvailable)
		if patch.Status != nil {
			d.Status = *patch.Status
		}
		setString(&d.LicenseNumber, patch.LicenseNumber)
		if patch.Education != nil {
			d.Education = patch.Education
		}
		if patch.Certifications != nil {
			d.Certifications = patch.Certifications
		}
		if patch.Languages != nil {
			d.Languages = patch.Languages
		}
		if patch.Availability != nil {
			d.Availability = patch.Availability
		}
		if patch.Specialties != nil {
			d.Specialties = patch.Specialties
		}
		if patch.HospitalAffiliations != nil {
			d.HospitalAffiliations = patch.HospitalAffiliations
		}
		if patch.ResearchInterests != nil {
			d.ResearchInterests = patch.ResearchInterests
		}
		if patch.Publications != nil {
			d.Publications = *patch.Publications
		}
		if patch.Awards != nil {
			d.Awards = patch.Awards
		}
		return *d, nil
	}
	return models.Doctor{}, fmt.Errorf("doctor %s: %w", id, ErrNotFound)
}

// DeleteDoctor removes the doctor with the given id.
func (s *Store) DeleteDoctor(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("doctor %s: %w", id, ErrNotFound)
}

// AddAppointment validates enum fields, resolves the patient and doctor
// display names from their ids, assigns a fresh id, and appends the record.
func (s *Store) AddAppointment(a models.Appointment) (models.Appointment, error) {
	if !a.Type.Valid() {
		return models.Appointment{}, invalidEnum("type", string(a.Type), "video", "clinic", "emergency", "follow-up", "consultation")
	}
	if !a.Status.Valid() {
		return models.Appointment{}, invalidEnum("status", string(a.Status), "confirmed", "pending", "cancelled", "completed", "rescheduled")
	}
	if !a.PaymentStatus.Valid() {
		return models.Appointment{}, invalidEnum("paymentStatus", string(a.PaymentStatus), "pending", "paid", "partial", "waived")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	patient := s.findPatient(a.PatientID)
	if patient == nil {
		return models.Appointment{}, fmt.Errorf("patient %s: %w", a.PatientID, ErrNotFound)
	}
	doctor := s.findDoctor(a.DoctorID)
	if doctor == nil {
		return models.Appointment{}, fmt.Errorf("doctor %s: %w", a.DoctorID, ErrNotFound)
	}
	a.ID = uuid.New().String()
	a.Patient = patient.Name
	a.Doctor = doctor.Name
	s.appointments = append(s.appointments, a)
	return a, nil
}

// UpdateAppointment shallow-merges the patch into the appointment with the
// given id, re-resolving display names when a linked id changes.
func (s *Store) UpdateAppointment(id string, patch AppointmentPatch) (models.Appointment, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return models.Appointment{}, invalidEnum("type", string(*patch.Type), "video", "clinic", "emergency", "follow-up", "consultation")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Appointment{}, invalidEnum("status", string(*patch.Status), "confirmed", "pending", "cancelled", "completed", "rescheduled")
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.Valid() {
		return models.Appointment{}, invalidEnum("paymentStatus", string(*patch.PaymentStatus), "pending", "paid", "partial", "waived")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		a := &s.appointments[i]
		if patch.PatientID != nil {
			patient := s.findPatient(*patch.PatientID)
			if patient == nil {
				return models.Appointment{}, fmt.Errorf("patient %s: %w", *patch.PatientID, ErrNotFound)
			}
			a.PatientID = patient.ID
			a.Patient = patient.Name
		}
		if patch.DoctorID != nil {
			doctor := s.findDoctor(*patch.DoctorID)
			if doctor == nil {
				return models.Appointment{}, fmt.Errorf("doctor %s: %w", *patch.DoctorID, ErrNotFound)
			}
			a.DoctorID = doctor.ID
			a.Doctor = doctor.Name
		}
		setString(&a.Time, patch.Time)
		setString(&a.Date, patch.Date)
		setString(&a.Duration, patch.Duration)
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		setString(&a.Reason, patch.Reason)
		setString(&a.Location, patch.Location)
		setString(&a.Notes, patch.Notes)
		if patch.Symptoms != nil {
			a.Symptoms = patch.Symptoms
		}
		setString(&a.Diagnosis, patch.Diagnosis)
		setString(&a.Treatment, patch.Treatment)
		setString(&a.FollowUpDate, patch.FollowUpDate)
		setString(&a.Insurance, patch.Insurance)
		if patch.Cost != nil {
			a.Cost = *patch.Cost
		}
		if patch.PaymentStatus != nil {
			a.PaymentStatus = *patch.PaymentStatus
		}
		return *a, nil
	}
	return models.Appointment{}, fmt.Errorf("appointment %s: %w", id, ErrNotFound)
}

// DeleteAppointment removes the appointment with the given id.
func (s *Store) DeleteAppointment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("appointment %s: %w", id, ErrNotFound)
}

// AddMessage validates the priority, resolves the sender's display name
// when a sender id is given (staff without records keep the provided
// name), assigns a fresh id, and appends the record.
func (s *Store) AddMessage(m models.Message) (models.Message, error) {
	if !m.Priority.Valid() {
		return models.Message{}, invalidEnum("priority", string(m.Priority), "low", "normal", "high", "urgent")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m.SenderID != "" {
		name, ok := s.senderName(m.SenderID, m.IsFromUser)
		if !ok {
			return models.Message{}, fmt.Errorf("sender %s: %w", m.SenderID, ErrNotFound)
		}
		m.Sender = name
	}
	m.ID = uuid.New().String()
	s.messages = append(s.messages, m)
	return m, nil
}

// UpdateMessage shallow-merges the patch into the message with the given id.
func (s *Store) UpdateMessage(id string, patch MessagePatch) (models.Message, error) {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return models.Message{}, invalidEnum("priority", string(*patch.Priority), "low", "normal", "high", "urgent")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		m := &s.messages[i]
		if patch.IsFromUser != nil {
			m.IsFromUser = *patch.IsFromUser
		}
		if patch.SenderID != nil {
			name, ok := s.senderName(*patch.SenderID, m.IsFromUser)
			if !ok {
				return models.Message{}, fmt.Errorf("sender %s: %w", *patch.SenderID, ErrNotFound)
			}
			m.SenderID = *patch.SenderID
			m.Sender = name
		}
		setString(&m.Content, patch.Content)
		setString(&m.Timestamp, patch.Timestamp)
		if patch.Attachments != nil {
			m.Attachments = patch.Attachments
		}
		if patch.Priority != nil {
			m.Priority = *patch.Priority
		}
		if patch.Read != nil {
			m.Read = *patch.Read
		}
		setString(&m.ThreadID, patch.ThreadID)
		return *m, nil
	}
	return models.Message{}, fmt.Errorf("message %s: %w", id, ErrNotFound)
}

// DeleteMessage removes the message with the given id.
func (s *Store) DeleteMessage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("message %s: %w", id, ErrNotFound)
}

// findPatient and findDoctor expect the caller to hold the lock.
func (s *Store) findPatient(id string) *models.Patient {
	for i := range s.patients {
		if s.patients[i].ID == id {
			return &s.patients[i]
		}
	}
	return nil
}

func (s *Store) findDoctor(id string) *models.Doctor {
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			return &s.doctors[i]
		}
	}
	return nil
}

// senderName resolves a sender id to a display name. The seeded patient
// and doctor collections share an id space, so the message's perspective
// flag decides which side to try first: isFromUser marks the care-team
// side.
func (s *Store) senderName(id string, isFromUser bool) (string, bool) {
	if isFromUser {
		if d := s.findDoctor(id); d != nil {
			return d.Name, true
		}
		if p := s.findPatient(id); p != nil {
			return p.Name, true
		}
		return "", false
	}
	if p := s.findPatient(id); p != nil {
		return p.Name, true
	}
	if d := s.findDoctor(id); d != nil {
		return d.Name, true
	}
	return "", false
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
