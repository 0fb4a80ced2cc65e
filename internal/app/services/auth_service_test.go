package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrek/campusconnect/internal/app/services"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
)

func TestLoginAdmin(t *testing.T) {
	authService := services.NewAuthService(newFakeStudentStore(),
		services.NewConstantCredentials("admin", "admin123"), zerolog.Nop())

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid credentials", "admin", "admin123", nil},
		{"wrong password", "admin", "admin124", apperrors.ErrInvalidCredentials},
		{"wrong username", "root", "admin123", apperrors.ErrInvalidCredentials},
		{"empty credentials", "", "", apperrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authService.LoginAdmin(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginStudentProvisionsOnFirstLogin(t *testing.T) {
	students := newFakeStudentStore()
	authService := services.NewAuthService(students,
		services.NewConstantCredentials("admin", "admin123"), zerolog.Nop())

	firstLogin, err := authService.LoginStudent(context.Background(), "S100", "Ravi Kumar")
	require.NoError(t, err)
	assert.True(t, firstLogin)

	// The password field seeds the display name of the new record.
	student, err := students.GetByEnrollmentNo(context.Background(), "S100")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", student.Name)
	assert.Equal(t, "default.jpg", student.ProfilePic)

	// A second login finds the record and does not re-provision.
	firstLogin, err = authService.LoginStudent(context.Background(), "S100", "something else")
	require.NoError(t, err)
	assert.False(t, firstLogin)

	student, err = students.GetByEnrollmentNo(context.Background(), "S100")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", student.Name, "existing record must not be overwritten")
}
