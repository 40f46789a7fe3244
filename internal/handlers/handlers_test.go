package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carebridge-server/internal/config"
	"carebridge-server/internal/models"
	"carebridge-server/internal/routes"
	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// envelope mirrors the response wrapper for decoding in tests.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type pagedData struct {
	Items      json.RawMessage `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	TotalItems int             `json:"totalItems"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 15,
		AuthDisabled:         true,
		DefaultPageSize:      10,
	}
	router := gin.New()
	routes.SetupRoutes(router, store.New(store.Seed()), cfg)
	return router
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodePaged(t *testing.T, w *httptest.ResponseRecorder) pagedData {
	t.Helper()
	env := decodeEnvelope(t, w)
	var paged pagedData
	require.NoError(t, json.Unmarshal(env.Data, &paged))
	return paged
}

func TestListPatients(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	paged := decodePaged(t, w)
	assert.Equal(t, 8, paged.TotalItems)
	assert.Equal(t, 1, paged.TotalPages)

	var items []models.Patient
	require.NoError(t, json.Unmarshal(paged.Items, &items))
	assert.Len(t, items, 8)
}

func TestListPatientsSearchAndFilter(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/patients?search=diabetes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodePaged(t, w).TotalItems)

	w = perform(router, http.MethodGet, "/api/v1/patients?status=active&riskLevel=high", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodePaged(t, w).TotalItems)

	w = perform(router, http.MethodGet, "/api/v1/patients?status=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 8, decodePaged(t, w).TotalItems)
}

func TestListPatientsPagination(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/patients?page=2&limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	paged := decodePaged(t, w)
	assert.Equal(t, 2, paged.Page)
	assert.Equal(t, 3, paged.TotalPages)
	assert.Equal(t, 8, paged.TotalItems)

	var items []models.Patient
	require.NoError(t, json.Unmarshal(paged.Items, &items))
	require.Len(t, items, 3)
	assert.Equal(t, "4", items[0].ID)

	// out-of-range pages clamp to the last page
	w = perform(router, http.MethodGet, "/api/v1/patients?page=99&limit=3", nil)
	paged = decodePaged(t, w)
	assert.Equal(t, 3, paged.Page)
	require.NoError(t, json.Unmarshal(paged.Items, &items))
	assert.Len(t, items, 2)
}

func TestGetPatientByID(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/patients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var patient models.Patient
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &patient))
	assert.Equal(t, "Sarah Johnson", patient.Name)

	w = perform(router, http.MethodGet, "/api/v1/patients/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePatient(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodPost, "/api/v1/patients", gin.H{
		"name": "Alice Nguyen", "age": 30,
		"phone": "+1 (555) 111-2222", "email": "alice.nguyen@email.com",
		"condition": "Migraine", "status": "active", "riskLevel": "low",
		"height": "1.75 m", "weight": "75 kg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var patient models.Patient
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &patient))
	assert.NotEmpty(t, patient.ID)
	assert.Equal(t, 24.5, patient.BMI)

	w = perform(router, http.MethodGet, "/api/v1/patients", nil)
	assert.Equal(t, 9, decodePaged(t, w).TotalItems)
}

func TestCreatePatientValidation(t *testing.T) {
	router := newTestRouter(t)

	// status outside the closed set
	w := perform(router, http.MethodPost, "/api/v1/patients", gin.H{
		"name": "Bob", "age": 40,
		"phone": "+1 (555) 111-2222", "email": "bob@email.com",
		"condition": "Flu", "status": "archived", "riskLevel": "low",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing required fields
	w = perform(router, http.MethodPost, "/api/v1/patients", gin.H{"name": "Bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePatient(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodPatch, "/api/v1/patients/1", gin.H{
		"riskLevel": "high",
		"weight":    "180 lbs",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var patient models.Patient
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &patient))
	assert.Equal(t, models.RiskHigh, patient.RiskLevel)
	assert.Equal(t, 29.1, patient.BMI)
	assert.Equal(t, "Sarah Johnson", patient.Name)

	w = perform(router, http.MethodPatch, "/api/v1/patients/404", gin.H{"riskLevel": "high"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatient(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodDelete, "/api/v1/patients/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/api/v1/patients/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(router, http.MethodDelete, "/api/v1/patients/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPatientAppointments(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/patients/1/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var appts []models.Appointment
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &appts))
	assert.Len(t, appts, 2)

	w = perform(router, http.MethodGet, "/api/v1/patients/404/appointments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDoctors(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/doctors?search=cardio", nil)
	require.Equal(t, http.StatusOK, w.Code)

	paged := decodePaged(t, w)
	require.Equal(t, 1, paged.TotalItems)

	var items []models.Doctor
	require.NoError(t, json.Unmarshal(paged.Items, &items))
	assert.Equal(t, "Dr. Amanda Rodriguez", items[0].Name)

	w = perform(router, http.MethodGet, "/api/v1/doctors?status=available", nil)
	assert.Equal(t, 5, decodePaged(t, w).TotalItems)
}

func TestCreateAppointmentResolvesNames(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": "1", "doctorId": "2",
		"time": "9:30 AM", "date": "2024-02-01",
		"type": "clinic", "status": "pending",
		"reason": "Annual physical", "paymentStatus": "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var appt models.Appointment
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &appt))
	assert.Equal(t, "Sarah Johnson", appt.Patient)
	assert.Equal(t, "Dr. James Wilson", appt.Doctor)

	// unknown patient link
	w = perform(router, http.MethodPost, "/api/v1/appointments", gin.H{
		"patientId": "999", "doctorId": "2",
		"time": "9:30 AM", "date": "2024-02-01",
		"type": "clinic", "status": "pending",
		"reason": "Annual physical", "paymentStatus": "pending",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppointmentsByDate(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/appointments/by-date/2024-01-18", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var appts []models.Appointment
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &appts))
	assert.Len(t, appts, 5)
}

func TestListAppointmentsFilters(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/appointments?status=pending", nil)
	assert.Equal(t, 3, decodePaged(t, w).TotalItems)

	w = perform(router, http.MethodGet, "/api/v1/appointments?doctor=3", nil)
	assert.Equal(t, 2, decodePaged(t, w).TotalItems)

	w = perform(router, http.MethodGet, "/api/v1/appointments?date=2024-01-19&sort=desc", nil)
	paged := decodePaged(t, w)
	assert.Equal(t, 5, paged.TotalItems)
}

func TestMessagesReadFilter(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/messages?read=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decodePaged(t, w).TotalItems)

	w = perform(router, http.MethodGet, "/api/v1/messages?read=all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, decodePaged(t, w).TotalItems)

	w = perform(router, http.MethodGet, "/api/v1/messages?read=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendMessage(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodPost, "/api/v1/messages", gin.H{
		"senderId": "1", "isFromUser": true,
		"content": "Your labs look good.", "timestamp": "2024-01-19 9:00 AM",
		"priority": "normal", "threadId": "1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var msg models.Message
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &msg))
	assert.Equal(t, "Dr. Amanda Rodriguez", msg.Sender)
	assert.False(t, msg.Read, "new messages start unread")

	// neither senderId nor sender
	w = perform(router, http.MethodPost, "/api/v1/messages", gin.H{
		"content": "anonymous", "timestamp": "2024-01-19 9:00 AM",
		"priority": "normal", "threadId": "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkMessageAsRead(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodPatch, "/api/v1/messages/1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var msg models.Message
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &msg))
	assert.True(t, msg.Read)

	w = perform(router, http.MethodGet, "/api/v1/messages?read=false", nil)
	assert.Equal(t, 3, decodePaged(t, w).TotalItems)
}

func TestDeleteMessage(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodDelete, "/api/v1/messages/5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/api/v1/messages/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = perform(router, http.MethodGet, "/api/v1/messages", nil)
	assert.Equal(t, 9, decodePaged(t, w).TotalItems)
}

func TestGetThreadAndConversations(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/messages/threads/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var msgs []models.Message
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &msgs))
	assert.Len(t, msgs, 4)

	w = perform(router, http.MethodGet, "/api/v1/messages/conversations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var convs []store.Conversation
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &convs))
	require.Len(t, convs, 5)
	assert.Equal(t, 4, convs[0].MessageCount)
}

func TestDashboard(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &stats))
	assert.Equal(t, 8, stats.TotalPatients)
	assert.Equal(t, 7, stats.ActivePatients)
	assert.Equal(t, 3, stats.HighRiskPatients)
	assert.Equal(t, 4, stats.UnreadMessages)

	w = perform(router, http.MethodGet, "/api/v1/dashboard/high-risk-patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var patients []models.Patient
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &patients))
	assert.Len(t, patients, 3)

	w = perform(router, http.MethodGet, "/api/v1/dashboard/available-doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var doctors []models.Doctor
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &doctors))
	assert.Len(t, doctors, 5)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := perform(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "UP")
}

func TestAuthEnabledEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 15,
		DefaultPageSize:      10,
	}
	router := gin.New()
	routes.SetupRoutes(router, store.New(store.Seed()), cfg)

	// no token
	w := perform(router, http.MethodGet, "/api/v1/patients", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// read-only role can list but not delete
	token, err := utils.GenerateToken("p1", models.RolePatient, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/patients/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// write role may mutate
	token, err = utils.GenerateToken("d1", models.RoleNurse, cfg)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/patients/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
