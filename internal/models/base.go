package models

// Role enum
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleNurse     Role = "nurse"
	RoleCaregiver Role = "caregiver"
	RolePatient   Role = "patient"
)

// Valid reports whether the role is one of the known dashboard roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleCaregiver, RolePatient:
		return true
	}
	return false
}

// CanWrite reports whether the role is allowed to mutate dashboard data.
// Patients and caregivers get a read-only view.
func (r Role) CanWrite() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse:
		return true
	}
	return false
}
