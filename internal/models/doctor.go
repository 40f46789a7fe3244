package models

// DoctorStatus represents the operational status of a doctor
type DoctorStatus string

const (
	DoctorAvailable DoctorStatus = "available"
	DoctorBusy      DoctorStatus = "busy"
	DoctorSurgery   DoctorStatus = "surgery"
	DoctorOnCall    DoctorStatus = "on-call"
	DoctorOffDuty   DoctorStatus = "off-duty"
)

// Valid reports whether the status is within the closed set.
func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorAvailable, DoctorBusy, DoctorSurgery, DoctorOnCall, DoctorOffDuty:
		return true
	}
	return false
}

// WeeklyAvailability maps a lowercase weekday name to that day's hours:
// an [open, close] pair, or a singleton "Closed" / "24/7" marker.
type WeeklyAvailability map[string][]string

// Doctor represents a provider on staff
type Doctor struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Specialty            string             `json:"specialty"`
	Experience           string             `json:"experience"`
	Phone                string             `json:"phone"`
	Email                string             `json:"email"`
	Location             string             `json:"location"`
	Rating               float64            `json:"rating"`
	Patients             int                `json:"patients"`
	NextAvailable        string             `json:"nextAvailable"`
	Status               DoctorStatus       `json:"status"`
	LicenseNumber        string             `json:"licenseNumber"`
	Education            []string           `json:"education"`
	Certifications       []string           `json:"certifications"`
	Languages            []string           `json:"languages"`
	Availability         WeeklyAvailability `json:"availability"`
	Specialties          []string           `json:"specialties"`
	HospitalAffiliations []string           `json:"hospitalAffiliations"`
	ResearchInterests    []string           `json:"researchInterests"`
	Publications         int                `json:"publications"`
	Awards               []string           `json:"awards"`
}
