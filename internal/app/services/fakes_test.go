package services_test

import (
	"context"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"github.com/emrek/campusconnect/internal/app/models"
	"github.com/emrek/campusconnect/internal/pkg/apperrors"
	"github.com/emrek/campusconnect/internal/pkg/filestorage"
)

// fakeStudentStore is an in-memory StudentStore for tests.
type fakeStudentStore struct {
	mu       sync.Mutex
	students map[string]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[string]*models.Student)}
}

func (f *fakeStudentStore) GetByEnrollmentNo(_ context.Context, enrollmentNo string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	student, ok := f.students[enrollmentNo]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *student
	return &clone, nil
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.students[student.EnrollmentNo]; ok {
		return apperrors.ErrStudentExists
	}
	clone := *student
	f.students[student.EnrollmentNo] = &clone
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.students[student.EnrollmentNo]; !ok {
		return apperrors.ErrStudentNotFound
	}
	clone := *student
	f.students[student.EnrollmentNo] = &clone
	return nil
}

func (f *fakeStudentStore) UpdateProfilePic(_ context.Context, enrollmentNo, profilePic string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	student, ok := f.students[enrollmentNo]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.ProfilePic = profilePic
	return nil
}

// fakeComplaintStore is an in-memory ComplaintStore for tests. Timestamps
// are assigned from a monotonic counter so list ordering is deterministic.
type fakeComplaintStore struct {
	mu         sync.Mutex
	complaints []*models.Complaint
	nextID     int64
	clock      time.Time
}

func newFakeComplaintStore() *fakeComplaintStore {
	return &fakeComplaintStore{
		nextID: 1,
		clock:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeComplaintStore) Create(_ context.Context, complaint *models.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	complaint.ID = f.nextID
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	complaint.DatePosted = f.clock

	clone := *complaint
	f.complaints = append(f.complaints, &clone)
	return nil
}

func (f *fakeComplaintStore) GetByID(_ context.Context, id int64) (*models.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.complaints {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, apperrors.ErrComplaintNotFound
}

func (f *fakeComplaintStore) ListByEnrollmentNo(_ context.Context, enrollmentNo string) ([]*models.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*models.Complaint
	for _, c := range f.complaints {
		if c.EnrollmentNo == enrollmentNo {
			clone := *c
			result = append(result, &clone)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (f *fakeComplaintStore) ListAll(_ context.Context) ([]*models.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*models.Complaint, 0, len(f.complaints))
	for _, c := range f.complaints {
		clone := *c
		result = append(result, &clone)
	}
	sortNewestFirst(result)
	return result, nil
}

func (f *fakeComplaintStore) CountByStatus(_ context.Context, status models.ComplaintStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, c := range f.complaints {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeComplaintStore) Resolve(_ context.Context, id int64, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.complaints {
		if c.ID == id {
			c.Status = models.StatusResolved
			c.AdminComment = comment
			return nil
		}
	}
	return apperrors.ErrComplaintNotFound
}

func sortNewestFirst(complaints []*models.Complaint) {
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].DatePosted.After(complaints[j].DatePosted)
	})
}

// fakeImageStorage records saved images without touching the filesystem.
type fakeImageStorage struct {
	saved map[string]string
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{saved: make(map[string]string)}
}

func (f *fakeImageStorage) SaveProfileImage(fileHeader *multipart.FileHeader, enrollmentNo string) (string, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return "", nil
	}
	if !filestorage.AllowedExtension(fileHeader.Filename) {
		return "", apperrors.ErrUnsupportedFileType
	}
	filename := enrollmentNo + "_" + filestorage.SanitizeFilename(fileHeader.Filename)
	f.saved[enrollmentNo] = filename
	return filename, nil
}
