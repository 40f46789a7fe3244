package routes

import (
	"github.com/gin-gonic/gin"

	"carebridge-server/internal/config"
	"carebridge-server/internal/handlers"
	"carebridge-server/internal/middleware"
	"carebridge-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, st *store.Store, cfg *config.Config) {
	// Initialize handlers
	patientHandler := handlers.NewPatientHandler(st, cfg.DefaultPageSize)
	doctorHandler := handlers.NewDoctorHandler(st, cfg.DefaultPageSize)
	appointmentHandler := handlers.NewAppointmentHandler(st, cfg.DefaultPageSize)
	messageHandler := handlers.NewMessageHandler(st, cfg.DefaultPageSize)
	dashboardHandler := handlers.NewDashboardHandler(st)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// Patient routes
		patientRoutes := api.Group("/patients")
		{
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.GET("/:id/appointments", patientHandler.GetPatientAppointments)
			patientRoutes.POST("", middleware.WriteRoleMiddleware(), patientHandler.CreatePatient)
			patientRoutes.PATCH("/:id", middleware.WriteRoleMiddleware(), patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", middleware.WriteRoleMiddleware(), patientHandler.DeletePatient)
		}

		// Doctor routes
		doctorRoutes := api.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.GetDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
			doctorRoutes.GET("/:id/appointments", doctorHandler.GetDoctorAppointments)
			doctorRoutes.POST("", middleware.WriteRoleMiddleware(), doctorHandler.CreateDoctor)
			doctorRoutes.PATCH("/:id", middleware.WriteRoleMiddleware(), doctorHandler.UpdateDoctor)
			doctorRoutes.DELETE("/:id", middleware.WriteRoleMiddleware(), doctorHandler.DeleteDoctor)
		}

		// Appointment routes
		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/by-date/:date", appointmentHandler.GetAppointmentsByDate)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.POST("", middleware.WriteRoleMiddleware(), appointmentHandler.CreateAppointment)
			appointmentRoutes.PATCH("/:id", middleware.WriteRoleMiddleware(), appointmentHandler.UpdateAppointment)
			appointmentRoutes.DELETE("/:id", middleware.WriteRoleMiddleware(), appointmentHandler.DeleteAppointment)
		}

		// Messaging routes
		messageRoutes := api.Group("/messages")
		{
			messageRoutes.GET("", messageHandler.GetMessages)
			messageRoutes.GET("/conversations", messageHandler.GetConversations)
			messageRoutes.GET("/threads/:threadId", messageHandler.GetThread)
			messageRoutes.GET("/:id", messageHandler.GetMessageByID)
			messageRoutes.POST("", messageHandler.SendMessage) // any authenticated role may write to their threads
			messageRoutes.PATCH("/:id/read", messageHandler.MarkMessageAsRead)
			messageRoutes.PATCH("/:id", middleware.WriteRoleMiddleware(), messageHandler.UpdateMessage)
			messageRoutes.DELETE("/:id", middleware.WriteRoleMiddleware(), messageHandler.DeleteMessage)
		}

		// Dashboard widgets
		dashboardRoutes := api.Group("/dashboard")
		{
			dashboardRoutes.GET("/stats", dashboardHandler.GetStats)
			dashboardRoutes.GET("/high-risk-patients", dashboardHandler.GetHighRiskPatients)
			dashboardRoutes.GET("/available-doctors", dashboardHandler.GetAvailableDoctors)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
