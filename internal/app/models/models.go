package models

// Role determines which operations a session is permitted to perform.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ComplaintStatus is the lifecycle state of a complaint. The only transition
// is Pending -> Resolved.
type ComplaintStatus string

const (
	StatusPending  ComplaintStatus = "Pending"
	StatusResolved ComplaintStatus = "Resolved"
)
