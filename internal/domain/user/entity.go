package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Organization administrator - approves workers and corrections
	RoleEmployee Role = "EMPLOYEE" // Regular worker
)

type Status string

const (
	StatusPendingApproval Status = "PENDING_APPROVAL" // Joined with org code, awaiting admin approval
	StatusActive          Status = "ACTIVE"
	StatusBlocked         Status = "BLOCKED"
)

type ContractType string

const (
	ContractFixedTerm ContractType = "FIXED_TERM"
	ContractPermanent ContractType = "PERMANENT"
)

type User struct {
	ID               string
	OrgID            string
	Name             string
	Email            string
	TaxID            *string
	Role             Role
	PasswordHash     string
	Status           Status
	EmailVerified    bool
	VerificationCode *string
	ResetCode        *string
	ContractType     *ContractType
	ContractEndDate  *string // YYYY-MM-DD
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin checks if the user administers their organization.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanPunch checks if the user may record punch events.
func (u *User) CanPunch() bool {
	return u.Status == StatusActive && u.EmailVerified
}
