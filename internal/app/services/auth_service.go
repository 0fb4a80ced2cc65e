package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
)

// CredentialVerifier checks admin credentials. Kept behind an interface so
// the constant-pair check can be replaced without touching routing.
type CredentialVerifier interface {
	VerifyAdmin(username, password string) bool
}

// constantCredentials verifies against a fixed username/password pair.
type constantCredentials struct {
	username string
	password string
}

// NewConstantCredentials creates a verifier for a fixed credential pair
func NewConstantCredentials(username, password string) CredentialVerifier {
	return &constantCredentials{username: username, password: password}
}

func (c *constantCredentials) VerifyAdmin(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.password)) == 1
	return userOK && passOK
}

// AuthService defines the interface for login operations
type AuthService interface {
	// LoginAdmin validates admin credentials, returning
	// apperrors.ErrInvalidCredentials on mismatch.
	LoginAdmin(username, password string) error

	// LoginStudent always succeeds. When no Student record exists for the
	// enrollment number one is created using the submitted password field as
	// the initial display name, and firstLogin reports that a record was
	// provisioned.
	LoginStudent(ctx context.Context, enrollmentNo, password string) (firstLogin bool, err error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	students StudentStore
	creds    CredentialVerifier
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students StudentStore, creds CredentialVerifier, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		students: students,
		creds:    creds,
		logger:   logger,
	}
}

// LoginAdmin validates the admin credential pair
func (s *authServiceImpl) LoginAdmin(username, password string) error {
	if !s.creds.VerifyAdmin(username, password) {
		s.logger.Warn().Str("username", username).Msg("Invalid admin credentials")
		return apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", username).Msg("Admin logged in")
	return nil
}

// LoginStudent logs a student in, auto-provisioning the record on first login.
// No password check is performed for students; the submitted password field
// only seeds the display name of a newly provisioned record.
func (s *authServiceImpl) LoginStudent(ctx context.Context, enrollmentNo, password string) (bool, error) {
	_, err := s.students.GetByEnrollmentNo(ctx, enrollmentNo)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return false, fmt.Errorf("error looking up student: %w", err)
	}

	student := models.NewStudent(enrollmentNo, password)
	if err := s.students.Create(ctx, student); err != nil {
		// A concurrent first login may have provisioned the record already.
		if errors.Is(err, apperrors.ErrStudentExists) {
			return false, nil
		}
		return false, fmt.Errorf("error provisioning student: %w", err)
	}

	s.logger.Info().Str("enrollmentNo", enrollmentNo).Msg("New student provisioned on first login")
	return true, nil
}
