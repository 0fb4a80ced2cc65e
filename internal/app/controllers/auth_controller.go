package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/app/models/dto"
	"github.com/emrek/campusconnect/internal/app/services"
	"github.com/emrek/campusconnect/internal/middleware"
	"github.com/emrek/campusconnect/internal/pkg/session"
)

// AuthController handles login and logout
type AuthController struct {
	authService services.AuthService
	sessions    *session.Manager
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *session.Manager, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Login processes the entry-page login form
// @Summary Log in as admin or student
// @Description Admin logins are checked against the configured credentials; student logins always succeed and may auto-provision a Student record
// @Tags auth
// @Accept x-www-form-urlencoded
// @Param role formData string true "Role" Enums(admin, student)
// @Param username formData string true "Username (enrollment number for students)"
// @Param password formData string false "Password (seeds the display name on first student login)"
// @Success 302 "Redirect to the role dashboard"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	switch models.Role(req.Role) {
	case models.RoleAdmin:
		c.loginAdmin(ctx, &req)
	case models.RoleStudent:
		c.loginStudent(ctx, &req)
	default:
		// Unknown or missing role: back to the entry page, no session change.
		ctx.Redirect(http.StatusFound, "/")
	}
}

func (c *AuthController) loginAdmin(ctx *gin.Context, req *dto.LoginRequest) {
	if err := dto.Validate(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.authService.LoginAdmin(req.Username, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessions.Set(ctx, session.KeyUserRole, string(models.RoleAdmin)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/admin")
}

func (c *AuthController) loginStudent(ctx *gin.Context, req *dto.LoginRequest) {
	if err := dto.Validate(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	firstLogin, err := c.authService.LoginStudent(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessions.Set(ctx, session.KeyUserRole, string(models.RoleStudent)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if err := c.sessions.Set(ctx, session.KeyStudentID, req.Username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if firstLogin {
		// Consumed exactly once by the next dashboard load.
		if err := c.sessions.Set(ctx, session.KeyFirstLogin, "1"); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	ctx.Redirect(http.StatusFound, "/student")
}

// Logout clears the entire session unconditionally
// @Summary Log out
// @Tags auth
// @Success 302 "Redirect to the entry page"
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.sessions.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
