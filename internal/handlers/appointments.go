package handlers

import (
	"github.com/gin-gonic/gin"

	"carebridge-server/internal/models"
	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store           *store.Store
	DefaultPageSize int
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *store.Store, defaultPageSize int) *AppointmentHandler {
	return &AppointmentHandler{Store: s, DefaultPageSize: defaultPageSize}
}

// GetAppointments handles listing appointments through the query engine.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	params := parseListParams(c, h.DefaultPageSize)
	filters := store.AppointmentFilters{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Date:     c.Query("date"),
		DoctorID: c.Query("doctor"),
	}

	appointments := h.Store.FilterAppointments(params.Search, filters, params.Sort)
	utils.Success(c, "Appointments fetched successfully", pagedResponse(appointments, params, len(appointments)))
}

// GetAppointmentByID handles fetching a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.Store.AppointmentByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// GetAppointmentsByDate handles listing every appointment on a calendar
// date.
func (h *AppointmentHandler) GetAppointmentsByDate(c *gin.Context) {
	appointments := h.Store.AppointmentsByDate(c.Param("date"))
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// CreateAppointmentRequest represents the request body for scheduling an
// appointment. Patient and doctor are referenced by id; display names are
// resolved server-side.
type CreateAppointmentRequest struct {
	PatientID     string   `json:"patientId" binding:"required"`
	DoctorID      string   `json:"doctorId" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Duration      string   `json:"duration"`
	Type          string   `json:"type" binding:"required,oneof=video clinic emergency follow-up consultation"`
	Status        string   `json:"status" binding:"required,oneof=confirmed pending cancelled completed rescheduled"`
	Reason        string   `json:"reason" binding:"required"`
	Location      string   `json:"location"`
	Notes         string   `json:"notes"`
	Symptoms      []string `json:"symptoms"`
	Diagnosis     string   `json:"diagnosis"`
	Treatment     string   `json:"treatment"`
	FollowUpDate  string   `json:"followUpDate"`
	Insurance     string   `json:"insurance"`
	Cost          float64  `json:"cost" binding:"gte=0"`
	PaymentStatus string   `json:"paymentStatus" binding:"required,oneof=pending paid partial waived"`
}

// CreateAppointment handles scheduling a new appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Store.AddAppointment(models.Appointment{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		Time:          req.Time,
		Date:          req.Date,
		Duration:      req.Duration,
		Type:          models.AppointmentType(req.Type),
		Status:        models.AppointmentStatus(req.Status),
		Reason:        req.Reason,
		Location:      req.Location,
		Notes:         req.Notes,
		Symptoms:      req.Symptoms,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		FollowUpDate:  req.FollowUpDate,
		Insurance:     req.Insurance,
		Cost:          req.Cost,
		PaymentStatus: models.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// UpdateAppointment handles a partial appointment update, including
// status changes and rescheduling.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var patch store.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	appointment, err := h.Store.UpdateAppointment(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Appointment updated successfully", appointment)
}

// DeleteAppointment handles removing an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Store.DeleteAppointment(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Appointment deleted successfully", nil)
}
