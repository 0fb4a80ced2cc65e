package dto

import "github.com/emrek/campusconnect/internal/app/models"

// ProfileUpdateRequest is the profile form. All fields are free text; empty
// values are stored as submitted. The profile picture travels separately as
// a multipart file part named "profile_pic".
type ProfileUpdateRequest struct {
	Department string `form:"department" json:"department"`
	Branch     string `form:"branch" json:"branch"`
	Year       string `form:"year" json:"year"`
	Section    string `form:"section" json:"section"`
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	EnrollmentNo string `json:"enrollmentNo" example:"S100"`
	Name         string `json:"name" example:"Ravi Kumar"`
	Department   string `json:"department,omitempty" example:"Engineering"`
	Branch       string `json:"branch,omitempty" example:"CSE"`
	Year         string `json:"year,omitempty" example:"2"`
	Section      string `json:"section,omitempty" example:"B"`
	ProfilePic   string `json:"profilePic" example:"default.jpg"`
}

// StudentDashboardResponse is the student dashboard view: the student's own
// record, their complaints newest first, and the one-shot setup prompt flag.
type StudentDashboardResponse struct {
	Student        StudentResponse     `json:"student"`
	Complaints     []ComplaintResponse `json:"complaints"`
	Success        bool                `json:"success"`
	ShowSetupModal bool                `json:"showSetupModal"`
}

// NewStudentResponse maps a student model to its response DTO
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		EnrollmentNo: s.EnrollmentNo,
		Name:         s.Name,
		Department:   stringValue(s.Department),
		Branch:       stringValue(s.Branch),
		Year:         stringValue(s.Year),
		Section:      stringValue(s.Section),
		ProfilePic:   s.ProfilePic,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
