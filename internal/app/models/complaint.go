package models

import "time"

// Complaint represents a student complaint. The enrollment number references
// a Student but the link is not enforced by the schema. Complaints are never
// deleted; only the resolve operation mutates them.
type Complaint struct {
	ID           int64
	StudentName  string
	EnrollmentNo string
	Department   string
	Branch       string
	Category     string
	Description  string
	Status       ComplaintStatus
	AdminComment string
	DatePosted   time.Time
}
