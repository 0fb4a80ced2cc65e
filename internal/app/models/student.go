package models

// DefaultProfilePic is the sentinel filename used when a student has not
// uploaded a profile picture.
const DefaultProfilePic = "default.jpg"

// Student represents a student record. Students are auto-provisioned on
// their first login and are never deleted.
type Student struct {
	EnrollmentNo string
	Name         string
	Department   *string
	Branch       *string
	Year         *string
	Section      *string
	ProfilePic   string
}

// NewStudent creates a student with the default profile picture.
func NewStudent(enrollmentNo, name string) *Student {
	return &Student{
		EnrollmentNo: enrollmentNo,
		Name:         name,
		ProfilePic:   DefaultProfilePic,
	}
}
