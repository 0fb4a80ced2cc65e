package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/app/services"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestSubmitComplaint(t *testing.T) {
	students := newFakeStudentStore()
	complaints := newFakeComplaintStore()
	complaintService := services.NewComplaintService(complaints, students, zerolog.Nop())

	require.NoError(t, students.Create(context.Background(), &models.Student{
		EnrollmentNo: "S100",
		Name:         "Ravi Kumar",
		Department:   strPtr("Engineering"),
		Branch:       strPtr("CSE"),
		ProfilePic:   models.DefaultProfilePic,
	}))

	mine, err := complaintService.Submit(context.Background(), "S100", "Network", "Wifi down")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	complaint := mine[0]
	assert.Equal(t, models.StatusPending, complaint.Status)
	assert.Equal(t, "S100", complaint.EnrollmentNo)
	assert.Equal(t, "Ravi Kumar", complaint.StudentName)
	assert.Equal(t, "Engineering", complaint.Department)
	assert.Equal(t, "CSE", complaint.Branch)
	assert.Equal(t, "Network", complaint.Category)
	assert.Empty(t, complaint.AdminComment)
	assert.False(t, complaint.DatePosted.IsZero())

	// A second submission appears first: newest-first ordering.
	mine, err = complaintService.Submit(context.Background(), "S100", "Hostel", "No hot water")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Hostel", mine[0].Category)
	assert.Equal(t, "Network", mine[1].Category)
}

func TestSubmitComplaintFillsMissingProfileFields(t *testing.T) {
	students := newFakeStudentStore()
	complaints := newFakeComplaintStore()
	complaintService := services.NewComplaintService(complaints, students, zerolog.Nop())

	// Freshly provisioned students have no department or branch yet.
	require.NoError(t, students.Create(context.Background(), models.NewStudent("S200", "Asha")))

	mine, err := complaintService.Submit(context.Background(), "S200", "Library", "Noisy reading hall")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Not Provided", mine[0].Department)
	assert.Equal(t, "Not Provided", mine[0].Branch)
}

func TestSubmitComplaintUnknownStudent(t *testing.T) {
	complaintService := services.NewComplaintService(newFakeComplaintStore(), newFakeStudentStore(), zerolog.Nop())

	_, err := complaintService.Submit(context.Background(), "NOPE", "Network", "Wifi down")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListAllCountsByStatus(t *testing.T) {
	students := newFakeStudentStore()
	complaints := newFakeComplaintStore()
	complaintService := services.NewComplaintService(complaints, students, zerolog.Nop())

	require.NoError(t, students.Create(context.Background(), models.NewStudent("S100", "Ravi")))
	require.NoError(t, students.Create(context.Background(), models.NewStudent("S200", "Asha")))

	_, err := complaintService.Submit(context.Background(), "S100", "Network", "Wifi down")
	require.NoError(t, err)
	_, err = complaintService.Submit(context.Background(), "S200", "Mess", "Bad food")
	require.NoError(t, err)
	_, err = complaintService.Submit(context.Background(), "S100", "Hostel", "Leaky roof")
	require.NoError(t, err)

	require.NoError(t, complaintService.Resolve(context.Background(), 2, "Spoke to the caterer"))

	summary, err := complaintService.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.Complaints, 3)
	assert.Equal(t, int64(2), summary.PendingCount)
	assert.Equal(t, int64(1), summary.ResolvedCount)

	// Newest first across all students.
	assert.Equal(t, "Hostel", summary.Complaints[0].Category)
}

func TestResolve(t *testing.T) {
	students := newFakeStudentStore()
	complaints := newFakeComplaintStore()
	complaintService := services.NewComplaintService(complaints, students, zerolog.Nop())

	require.NoError(t, students.Create(context.Background(), models.NewStudent("S100", "Ravi")))
	_, err := complaintService.Submit(context.Background(), "S100", "Network", "Wifi down")
	require.NoError(t, err)

	require.NoError(t, complaintService.Resolve(context.Background(), 1, "Fixed"))

	complaint, err := complaints.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, complaint.Status)
	assert.Equal(t, "Fixed", complaint.AdminComment)

	// Resolving again just overwrites the comment.
	require.NoError(t, complaintService.Resolve(context.Background(), 1, "Fixed again"))
	complaint, err = complaints.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, complaint.Status)
	assert.Equal(t, "Fixed again", complaint.AdminComment)
}

func TestResolveNotFound(t *testing.T) {
	complaintService := services.NewComplaintService(newFakeComplaintStore(), newFakeStudentStore(), zerolog.Nop())

	err := complaintService.Resolve(context.Background(), 9999, "Fixed")
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}
