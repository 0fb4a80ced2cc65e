package dto

import (
	"time"

	"github.com/emrek/campusconnect/internal/app/models"
)

// ComplaintCreateRequest is the student complaint submission form.
type ComplaintCreateRequest struct {
	Category    string `form:"category" json:"category" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
}

// ResolveRequest carries the admin comment attached when resolving a complaint.
type ResolveRequest struct {
	Comment string `form:"comment" json:"comment"`
}

// ComplaintResponse represents a complaint in API responses
type ComplaintResponse struct {
	ID           int64     `json:"id" example:"7"`
	StudentName  string    `json:"studentName" example:"Ravi Kumar"`
	EnrollmentNo string    `json:"enrollmentNo" example:"S100"`
	Department   string    `json:"department" example:"Engineering"`
	Branch       string    `json:"branch" example:"CSE"`
	Category     string    `json:"category" example:"Network"`
	Description  string    `json:"description" example:"Wifi down"`
	Status       string    `json:"status" example:"Pending" enums:"Pending,Resolved"`
	AdminComment string    `json:"adminComment" example:""`
	DatePosted   time.Time `json:"datePosted"`
}

// AdminDashboardResponse is the admin summary view: every complaint newest
// first plus aggregate counts by status.
type AdminDashboardResponse struct {
	Complaints    []ComplaintResponse `json:"complaints"`
	PendingCount  int64               `json:"pendingCount" example:"3"`
	ResolvedCount int64               `json:"resolvedCount" example:"5"`
}

// NewComplaintResponse maps a complaint model to its response DTO
func NewComplaintResponse(c *models.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:           c.ID,
		StudentName:  c.StudentName,
		EnrollmentNo: c.EnrollmentNo,
		Department:   c.Department,
		Branch:       c.Branch,
		Category:     c.Category,
		Description:  c.Description,
		Status:       string(c.Status),
		AdminComment: c.AdminComment,
		DatePosted:   c.DatePosted,
	}
}

// NewComplaintResponses maps a slice of complaint models preserving order
func NewComplaintResponses(complaints []*models.Complaint) []ComplaintResponse {
	responses := make([]ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, NewComplaintResponse(c))
	}
	return responses
}
