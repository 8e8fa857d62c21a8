package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/scholarhub/internal/app/controllers"
	"github.com/yigit/scholarhub/internal/app/models"
	"github.com/yigit/scholarhub/internal/app/models/dto"
	"github.com/yigit/scholarhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	scholarshipController *controllers.ScholarshipController,
	applicationController *controllers.ApplicationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Scholarship routes ---
	scholarships := v1.Group("/scholarships")
	{
		// Public read access
		scholarships.GET("", scholarshipController.GetAllScholarships)
		scholarships.GET("/:id", scholarshipController.GetScholarshipByID)

		// Admin-only writes
		scholarshipsAdminProtected := scholarships.Group("")
		scholarshipsAdminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			scholarshipsAdminProtected.POST("", scholarshipController.CreateScholarship)
			scholarshipsAdminProtected.PUT("/:id", scholarshipController.UpdateScholarship)
			scholarshipsAdminProtected.DELETE("/:id", scholarshipController.DeleteScholarship)
		}
	}

	// --- Application routes (all authenticated) ---
	applications := v1.Group("/applications")
	applications.Use(authMiddleware.JWTAuth())
	{
		// Student-only routes
		applicationsStudentProtected := applications.Group("")
		applicationsStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			applicationsStudentProtected.POST("/apply", applicationController.Apply)
			applicationsStudentProtected.GET("/my-applications", applicationController.GetMyApplications)
		}

		// Admin-only routes
		applicationsAdminProtected := applications.Group("")
		applicationsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			applicationsAdminProtected.GET("/scholarship/:id", applicationController.GetApplicationsForScholarship)
			applicationsAdminProtected.PUT("/:id/status", applicationController.UpdateApplicationStatus)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
