package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
	"github.com/emrek/campusconnect/internal/pkg/logger"
)

var complaintColumns = []string{
	"id", "student_name", "enrollment_no", "department", "branch",
	"category", "description", "status", "admin_comment", "date_posted",
}

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a complaint, filling in its generated id and post time
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	sql, args, err := r.sb.Insert("complaints").
		Columns("student_name", "enrollment_no", "department", "branch", "category", "description", "status", "admin_comment").
		Values(complaint.StudentName, complaint.EnrollmentNo, complaint.Department, complaint.Branch,
			complaint.Category, complaint.Description, complaint.Status, complaint.AdminComment).
		Suffix("RETURNING id, date_posted").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create complaint query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&complaint.ID, &complaint.DatePosted)
	if err != nil {
		logger.Error().Err(err).Str("enrollmentNo", complaint.EnrollmentNo).Msg("Error executing create complaint query")
		return fmt.Errorf("error creating complaint: %w", err)
	}

	logger.Info().Int64("complaintID", complaint.ID).Str("enrollmentNo", complaint.EnrollmentNo).
		Str("category", complaint.Category).Msg("Complaint created")
	return nil
}

// GetByID retrieves a complaint by its id
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns...).
		From("complaints").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	complaint, err := r.scanOne(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error scanning complaint row")
		return nil, fmt.Errorf("error retrieving complaint: %w", err)
	}

	return complaint, nil
}

// ListByEnrollmentNo returns a student's complaints, newest first
func (r *ComplaintRepository) ListByEnrollmentNo(ctx context.Context, enrollmentNo string) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns...).
		From("complaints").
		Where(squirrel.Eq{"enrollment_no": enrollmentNo}).
		OrderBy("date_posted DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	return r.list(ctx, sql, args)
}

// ListAll returns every complaint, newest first
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns...).
		From("complaints").
		OrderBy("date_posted DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all complaints query: %w", err)
	}

	return r.list(ctx, sql, args)
}

// CountByStatus returns the number of complaints with the given status
func (r *ComplaintRepository) CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("complaints").
		Where(squirrel.Eq{"status": status}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count complaints query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("status", string(status)).Msg("Error counting complaints")
		return 0, fmt.Errorf("error counting complaints: %w", err)
	}

	return count, nil
}

// Resolve marks a complaint Resolved with the admin comment. Resolving an
// already-resolved complaint overwrites the comment.
func (r *ComplaintRepository) Resolve(ctx context.Context, id int64, comment string) error {
	sql, args, err := r.sb.Update("complaints").
		Set("status", models.StatusResolved).
		Set("admin_comment", comment).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build resolve complaint query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error resolving complaint")
		return fmt.Errorf("error resolving complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	logger.Info().Int64("complaintID", id).Msg("Complaint resolved")
	return nil
}

func (r *ComplaintRepository) list(ctx context.Context, sql string, args []interface{}) ([]*models.Complaint, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]*models.Complaint, 0)
	for rows.Next() {
		complaint, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

func (r *ComplaintRepository) scanOne(row pgx.Row) (*models.Complaint, error) {
	var complaint models.Complaint
	err := row.Scan(
		&complaint.ID, &complaint.StudentName, &complaint.EnrollmentNo, &complaint.Department,
		&complaint.Branch, &complaint.Category, &complaint.Description, &complaint.Status,
		&complaint.AdminComment, &complaint.DatePosted)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}
