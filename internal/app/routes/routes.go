package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campusconnect/internal/app/controllers"
	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/app/models/dto"
	"github.com/emrek/campusconnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// --- Public routes ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("CampusConnect complaint portal"))
	})
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Student routes ---
	student := router.Group("")
	student.Use(sessionMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/student", studentController.Dashboard)
		student.POST("/student", studentController.SubmitComplaint)
		student.POST("/update_profile", studentController.UpdateProfile)
		student.POST("/delete_profile_pic", studentController.DeleteProfilePic)
	}

	// --- Admin routes ---
	admin := router.Group("")
	admin.Use(sessionMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/admin", adminController.Dashboard)
		admin.POST("/resolve/:id", adminController.Resolve)
	}

	// Health check endpoint (public)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
