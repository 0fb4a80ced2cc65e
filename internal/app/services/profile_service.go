package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/app/models/dto"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
)

// ProfileService defines student profile operations
type ProfileService interface {
	// GetStudent loads a student record.
	GetStudent(ctx context.Context, enrollmentNo string) (*models.Student, error)

	// UpdateProfile persists the submitted text fields and, when an image
	// with an accepted extension is attached, stores it and updates the
	// profile picture. Text fields are persisted even when the image is
	// rejected; in that case the returned error is
	// apperrors.ErrUnsupportedFileType and the student reflects the text
	// update.
	UpdateProfile(ctx context.Context, enrollmentNo string, req *dto.ProfileUpdateRequest, image *multipart.FileHeader) (*models.Student, error)

	// ResetProfilePic sets the profile picture back to the default sentinel.
	// The underlying stored file is not deleted. Idempotent.
	ResetProfilePic(ctx context.Context, enrollmentNo string) (*models.Student, error)
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	students StudentStore
	storage  ImageStorage
	logger   zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(students StudentStore, storage ImageStorage, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		students: students,
		storage:  storage,
		logger:   logger,
	}
}

// GetStudent loads a student record
func (s *profileServiceImpl) GetStudent(ctx context.Context, enrollmentNo string) (*models.Student, error) {
	return s.students.GetByEnrollmentNo(ctx, enrollmentNo)
}

// UpdateProfile overwrites the profile text fields and optionally the image
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, enrollmentNo string, req *dto.ProfileUpdateRequest, image *multipart.FileHeader) (*models.Student, error) {
	student, err := s.students.GetByEnrollmentNo(ctx, enrollmentNo)
	if err != nil {
		return nil, err
	}

	student.Department = &req.Department
	student.Branch = &req.Branch
	student.Year = &req.Year
	student.Section = &req.Section

	var imageErr error
	if image != nil && image.Filename != "" {
		filename, err := s.storage.SaveProfileImage(image, enrollmentNo)
		switch {
		case errors.Is(err, apperrors.ErrUnsupportedFileType):
			// The text update below still goes through; the caller is told
			// the image was skipped.
			imageErr = err
		case err != nil:
			return nil, err
		case filename != "":
			student.ProfilePic = filename
		}
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("enrollmentNo", enrollmentNo).Msg("Profile updated")
	return student, imageErr
}

// ResetProfilePic restores the default profile picture sentinel
func (s *profileServiceImpl) ResetProfilePic(ctx context.Context, enrollmentNo string) (*models.Student, error) {
	student, err := s.students.GetByEnrollmentNo(ctx, enrollmentNo)
	if err != nil {
		return nil, err
	}

	if err := s.students.UpdateProfilePic(ctx, enrollmentNo, models.DefaultProfilePic); err != nil {
		return nil, err
	}

	student.ProfilePic = models.DefaultProfilePic
	s.logger.Info().Str("enrollmentNo", enrollmentNo).Msg("Profile picture reset")
	return student, nil
}
