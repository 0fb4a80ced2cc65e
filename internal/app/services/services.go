package services

import (
	"context"
	"mime/multipart"

	"github.com/emrek/campusconnect/internal/app/models"
)

// StudentStore is the persistence surface the services need for students.
// Implemented by repositories.StudentRepository.
type StudentStore interface {
	GetByEnrollmentNo(ctx context.Context, enrollmentNo string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	UpdateProfilePic(ctx context.Context, enrollmentNo, profilePic string) error
}

// ComplaintStore is the persistence surface the services need for
// complaints. Implemented by repositories.ComplaintRepository.
type ComplaintStore interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	ListByEnrollmentNo(ctx context.Context, enrollmentNo string) ([]*models.Complaint, error)
	ListAll(ctx context.Context) ([]*models.Complaint, error)
	CountByStatus(ctx context.Context, status models.ComplaintStatus) (int64, error)
	Resolve(ctx context.Context, id int64, comment string) error
}

// ImageStorage stores uploaded profile images. Implemented by
// filestorage.LocalStorage; object storage can be substituted later.
type ImageStorage interface {
	SaveProfileImage(fileHeader *multipart.FileHeader, enrollmentNo string) (string, error)
}
