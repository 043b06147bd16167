package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/ai"
	"healthcare-scheduling-server/internal/config"
	"healthcare-scheduling-server/internal/handlers"
	"healthcare-scheduling-server/internal/middleware"
	"healthcare-scheduling-server/internal/models"
	"healthcare-scheduling-server/internal/repository"
	"healthcare-scheduling-server/internal/services"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	// Wire the appointment service over its repositories
	appointmentService := services.NewAppointmentService(
		repository.NewAppointmentRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
		services.Config{
			PatientWindowDays: cfg.Scheduling.PatientWindowDays,
			DoctorWindowDays:  cfg.Scheduling.DoctorWindowDays,
			CalendarLocation:  cfg.Calendar.Location,
		},
		log,
	)
	responder := ai.NewStaticResponder()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	aiHandler := handlers.NewAIHandler(responder, responder, responder)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		userRoutes := private.Group("/users")
		{
			// Doctor directory - accessible by all authenticated users
			userRoutes.GET("/doctors", userHandler.GetDoctors)

			// Patients seen by the requesting doctor
			userRoutes.GET("/doctor-patients", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), userHandler.GetDoctorPatients)

			// Admin-only user management
			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		appointmentRoutes := private.Group("/appointments")
		{
			// Patients book for themselves; doctors and admins schedule directly
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient, models.RoleDoctor, models.RoleAdmin), appointmentHandler.CreateAppointment)

			// Appointments scoped to the current user (role decides the scope)
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)

			// Doctor's pending request inbox
			appointmentRoutes.GET("/pending", middleware.RoleAuthMiddleware(models.RoleDoctor), appointmentHandler.GetPendingRequests)

			// Specific appointment access (involved parties or admin; checked in handler)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)

			// Request lifecycle actions - the owning doctor only
			appointmentRoutes.POST("/:id/approve", middleware.RoleAuthMiddleware(models.RoleDoctor), appointmentHandler.ApproveAppointment)
			appointmentRoutes.POST("/:id/decline", middleware.RoleAuthMiddleware(models.RoleDoctor), appointmentHandler.DeclineAppointment)
			appointmentRoutes.PATCH("/:id/reschedule", middleware.RoleAuthMiddleware(models.RoleDoctor), appointmentHandler.RescheduleAppointment)
		}

		medicalRecordRoutes := private.Group("/medical-records")
		{
			medicalRecordRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleDoctor), medicalRecordHandler.CreateMedicalRecord)
			medicalRecordRoutes.GET("/patient/:patientId", medicalRecordHandler.GetMedicalRecordsForPatient)
			medicalRecordRoutes.GET("/:id", medicalRecordHandler.GetMedicalRecordByID)
			medicalRecordRoutes.PUT("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), medicalRecordHandler.UpdateMedicalRecord)
			medicalRecordRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), medicalRecordHandler.DeleteMedicalRecord)
		}

		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.GetNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkNotificationAsRead)
		}

		aiRoutes := private.Group("/ai")
		{
			aiRoutes.POST("/symptom-check", aiHandler.CheckSymptoms)
			aiRoutes.POST("/summarize-notes", middleware.RoleAuthMiddleware(models.RoleDoctor), aiHandler.SummarizeNotes)
			aiRoutes.POST("/recommend-procedures", middleware.RoleAuthMiddleware(models.RoleDoctor), aiHandler.RecommendProcedures)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
