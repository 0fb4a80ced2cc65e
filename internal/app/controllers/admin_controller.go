package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrek/campusconnect/internal/app/models/dto"
	"github.com/emrek/campusconnect/internal/app/services"
	"github.com/emrek/campusconnect/internal/middleware"
)

// AdminController handles the admin panel
type AdminController struct {
	complaintService services.ComplaintService
	logger           zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(complaintService services.ComplaintService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// Dashboard returns every complaint newest first plus status counts
// @Summary Admin overview
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboardResponse}
// @Failure 302 "Redirect to the entry page when not logged in as admin"
// @Router /admin [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	summary, err := c.complaintService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.AdminDashboardResponse{
		Complaints:    dto.NewComplaintResponses(summary.Complaints),
		PendingCount:  summary.PendingCount,
		ResolvedCount: summary.ResolvedCount,
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Resolve marks a complaint Resolved with the admin comment
// @Summary Resolve a complaint
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param id path int true "Complaint ID"
// @Param comment formData string false "Admin comment"
// @Success 302 "Redirect to the admin overview"
// @Failure 400 {object} dto.ErrorResponse "Invalid complaint ID"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /resolve/{id} [post]
func (c *AdminController) Resolve(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid complaint ID").
				WithDetails("ID must be a valid number")))
		return
	}

	var req dto.ResolveRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.complaintService.Resolve(ctx.Request.Context(), id, req.Comment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/admin")
}
