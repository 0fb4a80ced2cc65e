package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emrek/campusconnect/internal/app/models"
)

// fallbackFieldValue is recorded on a complaint when the student has not
// filled in the corresponding profile field yet.
const fallbackFieldValue = "Not Provided"

// ComplaintSummary carries every complaint plus status counts for the admin
// overview.
type ComplaintSummary struct {
	Complaints    []*models.Complaint
	PendingCount  int64
	ResolvedCount int64
}

// ComplaintService defines the complaint lifecycle operations
type ComplaintService interface {
	// Submit creates a Pending complaint for the student and returns the
	// refreshed list of their complaints, newest first.
	Submit(ctx context.Context, enrollmentNo, category, description string) ([]*models.Complaint, error)

	// ListMine returns the student's complaints, newest first.
	ListMine(ctx context.Context, enrollmentNo string) ([]*models.Complaint, error)

	// ListAll returns every complaint newest first plus pending/resolved counts.
	ListAll(ctx context.Context) (*ComplaintSummary, error)

	// Resolve marks a complaint Resolved with the admin comment. Returns
	// apperrors.ErrComplaintNotFound if the id does not exist.
	Resolve(ctx context.Context, id int64, comment string) error
}

// complaintServiceImpl implements ComplaintService
type complaintServiceImpl struct {
	complaints ComplaintStore
	students   StudentStore
	logger     zerolog.Logger
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaints ComplaintStore, students StudentStore, logger zerolog.Logger) ComplaintService {
	return &complaintServiceImpl{
		complaints: complaints,
		students:   students,
		logger:     logger,
	}
}

// Submit creates a complaint copying the student's current department and
// branch, substituting "Not Provided" when absent.
func (s *complaintServiceImpl) Submit(ctx context.Context, enrollmentNo, category, description string) ([]*models.Complaint, error) {
	student, err := s.students.GetByEnrollmentNo(ctx, enrollmentNo)
	if err != nil {
		return nil, err
	}

	complaint := &models.Complaint{
		StudentName:  student.Name,
		EnrollmentNo: student.EnrollmentNo,
		Department:   fieldOrFallback(student.Department),
		Branch:       fieldOrFallback(student.Branch),
		Category:     category,
		Description:  description,
		Status:       models.StatusPending,
		AdminComment: "",
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return s.complaints.ListByEnrollmentNo(ctx, enrollmentNo)
}

// ListMine returns the student's complaints, newest first
func (s *complaintServiceImpl) ListMine(ctx context.Context, enrollmentNo string) ([]*models.Complaint, error) {
	return s.complaints.ListByEnrollmentNo(ctx, enrollmentNo)
}

// ListAll returns the admin overview
func (s *complaintServiceImpl) ListAll(ctx context.Context) (*ComplaintSummary, error) {
	complaints, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.complaints.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error counting pending complaints: %w", err)
	}

	resolved, err := s.complaints.CountByStatus(ctx, models.StatusResolved)
	if err != nil {
		return nil, fmt.Errorf("error counting resolved complaints: %w", err)
	}

	return &ComplaintSummary{
		Complaints:    complaints,
		PendingCount:  pending,
		ResolvedCount: resolved,
	}, nil
}

// Resolve transitions a complaint to Resolved with the admin comment
func (s *complaintServiceImpl) Resolve(ctx context.Context, id int64, comment string) error {
	if err := s.complaints.Resolve(ctx, id, comment); err != nil {
		return err
	}

	s.logger.Info().Int64("complaintID", id).Msg("Complaint marked resolved")
	return nil
}

func fieldOrFallback(field *string) string {
	if field == nil || *field == "" {
		return fallbackFieldValue
	}
	return *field
}
