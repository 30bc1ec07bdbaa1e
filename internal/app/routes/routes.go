package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/placemate/placemate/internal/app/controllers"
	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	analyticsController *controllers.AnalyticsController,
	jobController *controllers.JobController,
	notificationController *controllers.NotificationController,
	studentController *controllers.StudentController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/verify-email", authController.VerifyEmail)
	}

	// Everything else requires a session
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Approval decisions: companies and faculty are admin-only,
		// students may also be reviewed by faculty
		admin := authenticated.Group("/admin")
		{
			adminOnly := admin.Group("")
			adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				adminOnly.POST("/approve-company", adminController.ApproveCompany)
				adminOnly.POST("/approve-faculty", adminController.ApproveFaculty)
			}

			studentReviewers := admin.Group("")
			studentReviewers.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				studentReviewers.POST("/approve-student", adminController.ApproveStudent)
			}
		}

		// Reporting
		analytics := authenticated.Group("/analytics")
		analytics.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
		{
			analytics.GET("", analyticsController.Get)
		}

		// Job postings and applications
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.List)
			jobs.GET("/:id", jobController.Get)

			companyOnly := jobs.Group("")
			companyOnly.Use(authMiddleware.RoleRequired(models.RoleCompany, models.RoleAdmin))
			{
				companyOnly.POST("", jobController.Create)
				companyOnly.PUT("/:id", jobController.Update)
				companyOnly.DELETE("/:id", jobController.Delete)
				companyOnly.GET("/:id/applications", jobController.ListApplications)
			}

			studentOnly := jobs.Group("")
			studentOnly.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				studentOnly.POST("/:id/apply", jobController.Apply)
			}
		}

		applications := authenticated.Group("/applications")
		applications.Use(authMiddleware.RoleRequired(models.RoleCompany, models.RoleFaculty, models.RoleAdmin))
		{
			applications.PUT("/:id/status", jobController.UpdateApplicationStatus)
		}

		// Notifications
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.List)
			notifications.PUT("", notificationController.MarkRead)

			notificationAuthors := notifications.Group("")
			notificationAuthors.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
			{
				notificationAuthors.POST("", notificationController.Create)
			}
		}

		// Student self-scoped routes
		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			students.GET("/profile", studentController.GetProfile)
			students.PUT("/profile", studentController.UpdateProfile)
			students.GET("/applications", studentController.ListApplications)
		}

		// Document uploads
		authenticated.POST("/upload", uploadController.Upload)
	}
}
