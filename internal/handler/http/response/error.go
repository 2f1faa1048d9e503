package response

import (
	"errors"
	"net/http"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/auth"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/report"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/user"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Pending business days block the PDF export; the date list goes in
	// the error details so the client can show which days need repair.
	var pendingErr *report.PendingDaysError
	if errors.As(err, &pendingErr) {
		details := make(map[string]string, len(pendingErr.Dates))
		for _, date := range pendingErr.Dates {
			details[date] = "pending"
		}
		writeJSON(w, http.StatusConflict, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "PENDING_DAYS",
				Message: err.Error(),
				Details: details,
			},
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrCurrentPasswordMismatch):
		Unauthorized(w, "Current password does not match")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrStageAlreadyRecorded):
		Conflict(w, "Stage already recorded for today")
	case errors.Is(err, punch.ErrPreviousStageMissing):
		Conflict(w, "Previous stage has not been recorded yet")
	case errors.Is(err, punch.ErrInvalidStage):
		BadRequest(w, "Invalid punch stage", nil)
	case errors.Is(err, punch.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)
	case errors.Is(err, report.ErrEmployeeRequired):
		BadRequest(w, "Employee name is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
