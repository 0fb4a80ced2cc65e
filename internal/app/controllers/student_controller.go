package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrek/campusconnect/internal/app/models/dto"
	"github.com/emrek/campusconnect/internal/app/services"
	"github.com/emrek/campusconnect/internal/middleware"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
	"github.com/emrek/campusconnect/internal/pkg/session"
)

// StudentController handles the student dashboard and profile operations
type StudentController struct {
	complaintService services.ComplaintService
	profileService   services.ProfileService
	sessions         *session.Manager
	logger           zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	complaintService services.ComplaintService,
	profileService services.ProfileService,
	sessions *session.Manager,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		complaintService: complaintService,
		profileService:   profileService,
		sessions:         sessions,
		logger:           logger,
	}
}

// Dashboard returns the student's record and complaints, newest first
// @Summary Student dashboard
// @Description Returns the student record, their complaints newest first, and a one-shot setup prompt flag on the first load after provisioning
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse}
// @Failure 302 "Redirect to the entry page when not logged in as a student"
// @Router /student [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	studentID := middleware.StudentID(ctx)

	student, err := c.profileService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	complaints, err := c.complaintService.ListMine(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StudentDashboardResponse{
		Student:        dto.NewStudentResponse(student),
		Complaints:     dto.NewComplaintResponses(complaints),
		ShowSetupModal: c.sessions.PopFlag(ctx, session.KeyFirstLogin),
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// SubmitComplaint files a new complaint for the logged-in student
// @Summary Submit a complaint
// @Tags student
// @Accept x-www-form-urlencoded
// @Produce json
// @Param category formData string true "Complaint category"
// @Param description formData string true "Complaint description"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /student [post]
func (c *StudentController) SubmitComplaint(ctx *gin.Context) {
	studentID := middleware.StudentID(ctx)

	var req dto.ComplaintCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}
	if err := dto.Validate(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaints, err := c.complaintService.Submit(ctx.Request.Context(), studentID, req.Category, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.profileService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.StudentDashboardResponse{
		Student:    dto.NewStudentResponse(student),
		Complaints: dto.NewComplaintResponses(complaints),
		Success:    true,
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// UpdateProfile overwrites the profile fields and optionally the picture
// @Summary Update the student profile
// @Description Persists the submitted text fields; an attached image is accepted only with a png/jpg/jpeg/gif extension
// @Tags student
// @Accept multipart/form-data
// @Produce json
// @Param department formData string false "Department"
// @Param branch formData string false "Branch"
// @Param year formData string false "Year"
// @Param section formData string false "Section"
// @Param profile_pic formData file false "Profile picture"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Unsupported file type (text fields are still saved)"
// @Router /update_profile [post]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID := middleware.StudentID(ctx)

	var req dto.ProfileUpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	// The picture part is optional; a missing file is not an error.
	image, err := ctx.FormFile("profile_pic")
	if err != nil {
		image = nil
	}

	student, err := c.profileService.UpdateProfile(ctx.Request.Context(), studentID, &req, image)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedFileType) && student != nil {
			// Text fields were persisted; report the skipped image.
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnsupportedFileType, "Unsupported file type").
					WithDetails("Profile fields were saved; the image was ignored. Allowed extensions: png, jpg, jpeg, gif")))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewSuccessResponse(dto.NewStudentResponse(student))
	response.Message = "Profile updated successfully!"
	ctx.JSON(http.StatusOK, response)
}

// DeleteProfilePic resets the profile picture to the default
// @Summary Remove the profile picture
// @Description Restores the default picture; the stored file itself is kept
// @Tags student
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Router /delete_profile_pic [post]
func (c *StudentController) DeleteProfilePic(ctx *gin.Context) {
	studentID := middleware.StudentID(ctx)

	student, err := c.profileService.ResetProfilePic(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.NewSuccessResponse(dto.NewStudentResponse(student))
	response.Message = "Profile picture removed."
	ctx.JSON(http.StatusOK, response)
}
