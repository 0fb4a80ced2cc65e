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
	"github.com/emrek/campusconnect/internal/pkg/dberrors"
	"github.com/emrek/campusconnect/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByEnrollmentNo retrieves a student by enrollment number
func (r *StudentRepository) GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error) {
	sql, args, err := r.sb.Select("enrollment_no", "name", "department", "branch", "year", "section", "profile_pic").
		From("students").
		Where(squirrel.Eq{"enrollment_no": enrollmentNo}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.EnrollmentNo, &student.Name, &student.Department, &student.Branch,
		&student.Year, &student.Section, &student.ProfilePic)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("enrollmentNo", enrollmentNo).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Create inserts a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("enrollment_no", "name", "department", "branch", "year", "section", "profile_pic").
		Values(student.EnrollmentNo, student.Name, student.Department, student.Branch,
			student.Year, student.Section, student.ProfilePic).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("enrollmentNo", student.EnrollmentNo).
				Msg("Attempted to create student with duplicate enrollment number")
			return apperrors.ErrStudentExists
		}
		logger.Error().Err(err).Str("enrollmentNo", student.EnrollmentNo).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("enrollmentNo", student.EnrollmentNo).Msg("Student created")
	return nil
}

// Update persists the mutable profile fields of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("department", student.Department).
		Set("branch", student.Branch).
		Set("year", student.Year).
		Set("section", student.Section).
		Set("profile_pic", student.ProfilePic).
		Where(squirrel.Eq{"enrollment_no": student.EnrollmentNo}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("enrollmentNo", student.EnrollmentNo).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateProfilePic sets only the profile picture filename
func (r *StudentRepository) UpdateProfilePic(ctx context.Context, enrollmentNo, profilePic string) error {
	sql, args, err := r.sb.Update("students").
		Set("profile_pic", profilePic).
		Where(squirrel.Eq{"enrollment_no": enrollmentNo}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile pic query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("enrollmentNo", enrollmentNo).Msg("Error updating profile picture")
		return fmt.Errorf("error updating profile picture: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
