package models

import (
	"strconv"
	"strings"
)

// PatientStatus represents the enrollment status of a patient
type PatientStatus string

const (
	PatientActive   PatientStatus = "active"
	PatientInactive PatientStatus = "inactive"
	PatientPending  PatientStatus = "pending"
)

// Valid reports whether the status is within the closed set.
func (s PatientStatus) Valid() bool {
	switch s {
	case PatientActive, PatientInactive, PatientPending:
		return true
	}
	return false
}

// RiskLevel represents the clinical severity classification of a patient
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether the risk level is within the closed set.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// EmergencyContact is the nested contact record on a patient, not a
// standalone entity.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Patient represents a patient enrolled in the coordination dashboard
type Patient struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Age                  int              `json:"age"`
	Phone                string           `json:"phone"`
	Email                string           `json:"email"`
	LastVisit            string           `json:"lastVisit"`
	Condition            string           `json:"condition"`
	Status               PatientStatus    `json:"status"`
	RiskLevel            RiskLevel        `json:"riskLevel"`
	Address              string           `json:"address"`
	EmergencyContact     EmergencyContact `json:"emergencyContact"`
	Insurance            string           `json:"insurance"`
	PrimaryCarePhysician string           `json:"primaryCarePhysician"`
	Allergies            []string         `json:"allergies"`
	Medications          []string         `json:"medications"`
	BloodType            string           `json:"bloodType"`
	Height               string           `json:"height"`
	Weight               string           `json:"weight"`
	BMI                  float64          `json:"bmi"`
	LastLabResults       string           `json:"lastLabResults"`
	NextAppointment      string           `json:"nextAppointment"`
	Notes                string           `json:"notes"`
}

// RecomputeBMI derives bmi from the patient's current weight and height.
// BMI is never independently authoritative: any update touching weight or
// height must call this. Unparseable measurements leave bmi unchanged.
func (p *Patient) RecomputeBMI() {
	kg := parseWeightKg(p.Weight)
	m := parseHeightMeters(p.Height)
	if kg <= 0 || m <= 0 {
		return
	}
	bmi := kg / (m * m)
	// one decimal, matching the charted values
	p.BMI = float64(int(bmi*10+0.5)) / 10
}

// parseWeightKg understands "165 lbs" and "75 kg" style measurements.
func parseWeightKg(s string) float64 {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	unit := "lbs"
	if len(fields) > 1 {
		unit = strings.ToLower(fields[1])
	}
	if strings.HasPrefix(unit, "kg") {
		return value
	}
	return value * 0.45359237
}

// parseHeightMeters understands feet-and-inches notation (`5'6"`) as used
// throughout the charts, plus "1.68 m" and "168 cm".
func parseHeightMeters(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if idx := strings.Index(s, "'"); idx >= 0 {
		feet, err := strconv.ParseFloat(strings.TrimSpace(s[:idx]), 64)
		if err != nil {
			return 0
		}
		inchPart := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s[idx+1:]), `"`))
		inches := 0.0
		if inchPart != "" {
			inches, err = strconv.ParseFloat(inchPart, 64)
			if err != nil {
				return 0
			}
		}
		return (feet*12 + inches) * 0.0254
	}
	fields := strings.Fields(s)
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	unit := "m"
	if len(fields) > 1 {
		unit = strings.ToLower(fields[1])
	}
	if strings.HasPrefix(unit, "cm") {
		return value / 100
	}
	return value
}
