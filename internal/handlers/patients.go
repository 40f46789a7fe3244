package handlers

import (
	"github.com/gin-gonic/gin"

	"carebridge-server/internal/models"
	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// PatientHandler handles patient related requests.
type PatientHandler struct {
	Store           *store.Store
	DefaultPageSize int
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(s *store.Store, defaultPageSize int) *PatientHandler {
	return &PatientHandler{Store: s, DefaultPageSize: defaultPageSize}
}

// GetPatients handles listing patients through the query engine:
// search, typed filters, date sort, and pagination.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	params := parseListParams(c, h.DefaultPageSize)
	filters := store.PatientFilters{
		Status:    c.Query("status"),
		RiskLevel: c.Query("riskLevel"),
		Condition: c.Query("condition"),
	}

	patients := h.Store.FilterPatients(params.Search, filters, params.Sort)
	utils.Success(c, "Patients fetched successfully", pagedResponse(patients, params, len(patients)))
}

// GetPatientByID handles fetching a single patient.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.Store.PatientByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// CreatePatientRequest represents the request body for enrolling a patient.
type CreatePatientRequest struct {
	Name                 string                  `json:"name" binding:"required"`
	Age                  int                     `json:"age" binding:"required,gte=0"`
	Phone                string                  `json:"phone" binding:"required"`
	Email                string                  `json:"email" binding:"required,email"`
	LastVisit            string                  `json:"lastVisit"`
	Condition            string                  `json:"condition" binding:"required"`
	Status               string                  `json:"status" binding:"required,oneof=active inactive pending"`
	RiskLevel            string                  `json:"riskLevel" binding:"required,oneof=low medium high critical"`
	Address              string                  `json:"address"`
	EmergencyContact     models.EmergencyContact `json:"emergencyContact"`
	Insurance            string                  `json:"insurance"`
	PrimaryCarePhysician string                  `json:"primaryCarePhysician"`
	Allergies            []string                `json:"allergies"`
	Medications          []string                `json:"medications"`
	BloodType            string                  `json:"bloodType"`
	Height               string                  `json:"height"`
	Weight               string                  `json:"weight"`
	LastLabResults       string                  `json:"lastLabResults"`
	NextAppointment      string                  `json:"nextAppointment"`
	Notes                string                  `json:"notes"`
}

// CreatePatient handles enrolling a new patient.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient, err := h.Store.AddPatient(models.Patient{
		Name:                 req.Name,
		Age:                  req.Age,
		Phone:                req.Phone,
		Email:                req.Email,
		LastVisit:            req.LastVisit,
		Condition:            req.Condition,
		Status:               models.PatientStatus(req.Status),
		RiskLevel:            models.RiskLevel(req.RiskLevel),
		Address:              req.Address,
		EmergencyContact:     req.EmergencyContact,
		Insurance:            req.Insurance,
		PrimaryCarePhysician: req.PrimaryCarePhysician,
		Allergies:            req.Allergies,
		Medications:          req.Medications,
		BloodType:            req.BloodType,
		Height:               req.Height,
		Weight:               req.Weight,
		LastLabResults:       req.LastLabResults,
		NextAppointment:      req.NextAppointment,
		Notes:                req.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.Created(c, "Patient created successfully", patient)
}

// UpdatePatient handles a partial patient update.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var patch store.PatientPatch
	if err := c.ShouldBindJSON(&patch); err != nil { // partial update, no required fields
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	patient, err := h.Store.UpdatePatient(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient handles removing a patient.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.Store.DeletePatient(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Patient deleted successfully", nil)
}

// GetPatientAppointments handles listing the appointments linked to a
// patient.
func (h *PatientHandler) GetPatientAppointments(c *gin.Context) {
	if _, err := h.Store.PatientByID(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	appointments := h.Store.AppointmentsByPatient(c.Param("id"))
	utils.Success(c, "Appointments fetched successfully", appointments)
}
