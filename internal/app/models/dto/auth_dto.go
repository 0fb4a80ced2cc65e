package dto

// LoginRequest is the payload of the entry-page login form. Role selects the
// flow: admin logins are checked against the configured credential pair,
// student logins always succeed and may auto-provision a Student record.
type LoginRequest struct {
	Role     string `form:"role" json:"role"`
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password"`
}
