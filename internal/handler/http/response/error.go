package response

import (
	"errors"
	"net/http"

	"github.com/clockport/clockport-backend-go/internal/domain/adjustment"
	"github.com/clockport/clockport-backend-go/internal/domain/announcement"
	"github.com/clockport/clockport-backend-go/internal/domain/auth"
	"github.com/clockport/clockport-backend-go/internal/domain/leave"
	"github.com/clockport/clockport-backend-go/internal/domain/notification"
	"github.com/clockport/clockport-backend-go/internal/domain/organization"
	"github.com/clockport/clockport-backend-go/internal/domain/punch"
	"github.com/clockport/clockport-backend-go/internal/domain/report"
	"github.com/clockport/clockport-backend-go/internal/domain/role"
	"github.com/clockport/clockport-backend-go/internal/domain/user"
	"github.com/clockport/clockport-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, "Invalid refresh token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrInvalidVerificationCode):
		BadRequest(w, "Invalid verification code", nil)
	case errors.Is(err, auth.ErrInvalidResetCode):
		BadRequest(w, "Invalid reset code", nil)
	case errors.Is(err, auth.ErrAlreadyVerified):
		Conflict(w, "Email already verified")
	case errors.Is(err, auth.ErrInvalidOrgCode):
		NotFound(w, "Organization code not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, user.ErrUserBlocked):
		Forbidden(w, "User is blocked")
	case errors.Is(err, user.ErrUserNotApproved):
		Forbidden(w, "User is awaiting approval")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInvalidStatusChange):
		BadRequest(w, "Invalid status change", nil)

	// Organization domain errors
	case errors.Is(err, organization.ErrOrgNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrSubscriptionExpired),
		errors.Is(err, organization.ErrSubscriptionInactive):
		PaymentRequired(w, "Subscription is not active")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch event not found")
	case errors.Is(err, punch.ErrPunchNotAllowed):
		Forbidden(w, "User may not record punches")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")
	case errors.Is(err, adjustment.ErrAlreadyReviewed):
		Conflict(w, "Adjustment already reviewed")
	case errors.Is(err, adjustment.ErrPendingExistsForDay):
		Conflict(w, "A pending adjustment already exists for this day")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrNotCancellable):
		Conflict(w, "Only pending leave requests can be cancelled")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another user")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")

	// Report domain errors
	case errors.Is(err, report.ErrReportSubjectNotFound):
		NotFound(w, "Report subject not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
