package handlers

import (
	"github.com/gin-gonic/gin"

	"carebridge-server/internal/models"
	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// DoctorHandler handles doctor related requests.
type DoctorHandler struct {
	Store           *store.Store
	DefaultPageSize int
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(s *store.Store, defaultPageSize int) *DoctorHandler {
	return &DoctorHandler{Store: s, DefaultPageSize: defaultPageSize}
}

// GetDoctors handles listing doctors through the query engine.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	params := parseListParams(c, h.DefaultPageSize)
	filters := store.DoctorFilters{
		Specialty:  c.Query("specialty"),
		Status:     c.Query("status"),
		Experience: c.Query("experience"),
	}

	doctors := h.Store.FilterDoctors(params.Search, filters, params.Sort)
	utils.Success(c, "Doctors fetched successfully", pagedResponse(doctors, params, len(doctors)))
}

// GetDoctorByID handles fetching a single doctor.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctor, err := h.Store.DoctorByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Doctor fetched successfully", doctor)
}

// CreateDoctorRequest represents the request body for adding a doctor to
// staff.
type CreateDoctorRequest struct {
	Name                 string                    `json:"name" binding:"required"`
	Specialty            string                    `json:"specialty" binding:"required"`
	Experience           string                    `json:"experience"`
	Phone                string                    `json:"phone" binding:"required"`
	Email                string                    `json:"email" binding:"required,email"`
	Location             string                    `json:"location"`
	Rating               float64                   `json:"rating" binding:"gte=0,lte=5"`
	Patients             int                       `json:"patients" binding:"gte=0"`
	NextAvailable        string                    `json:"nextAvailable"`
	Status               string                    `json:"status" binding:"required,oneof=available busy surgery on-call off-duty"`
	LicenseNumber        string                    `json:"licenseNumber" binding:"required"`
	Education            []string                  `json:"education"`
	Certifications       []string                  `json:"certifications"`
	Languages            []string                  `json:"languages"`
	Availability         models.WeeklyAvailability `json:"availability"`
	Specialties          []string                  `json:"specialties"`
	HospitalAffiliations []string                  `json:"hospitalAffiliations"`
	ResearchInterests    []string                  `json:"researchInterests"`
	Publications         int                       `json:"publications" binding:"gte=0"`
	Awards               []string                  `json:"awards"`
}

// CreateDoctor handles adding a new doctor.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, err := h.Store.AddDoctor(models.Doctor{
		Name:                 req.Name,
		Specialty:            req.Specialty,
		Experience:           req.Experience,
		Phone:                req.Phone,
		Email:                req.Email,
		Location:             req.Location,
		Rating:               req.Rating,
		Patients:             req.Patients,
		NextAvailable:        req.NextAvailable,
		Status:               models.DoctorStatus(req.Status),
		LicenseNumber:        req.LicenseNumber,
		Education:            req.Education,
		Certifications:       req.Certifications,
		Languages:            req.Languages,
		Availability:         req.Availability,
		Specialties:          req.Specialties,
		HospitalAffiliations: req.HospitalAffiliations,
		ResearchInterests:    req.ResearchInterests,
		Publications:         req.Publications,
		Awards:               req.Awards,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.Created(c, "Doctor created successfully", doctor)
}

// UpdateDoctor handles a partial doctor update.
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	var patch store.DoctorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	doctor, err := h.Store.UpdateDoctor(c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Doctor updated successfully", doctor)
}

// DeleteDoctor handles removing a doctor.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	if err := h.Store.DeleteDoctor(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	utils.Success(c, "Doctor deleted successfully", nil)
}

// GetDoctorAppointments handles listing the appointments linked to a
// doctor.
func (h *DoctorHandler) GetDoctorAppointments(c *gin.Context) {
	if _, err := h.Store.DoctorByID(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	appointments := h.Store.AppointmentsByDoctor(c.Param("id"))
	utils.Success(c, "Appointments fetched successfully", appointments)
}
