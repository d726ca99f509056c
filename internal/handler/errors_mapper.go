package handler

import (
	"errors"
	"net/http"

	"github.com/ametelin/fintrack/internal/service"
	"github.com/ametelin/fintrack/internal/store"
	"github.com/ametelin/fintrack/internal/utils"
	"github.com/ametelin/fintrack/models"
)

// errorStatusMap translates the sentinel errors of the lower layers into
// HTTP status codes. Duplicate email/username respond 400 rather than 409,
// matching the API's observable contract.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrMissingRequiredFields:   http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotResourceOwner:        http.StatusForbidden,

	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusBadRequest,
	store.ErrResourceNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// errorMessageMap pins a stable client-facing message to each non-5xx
// sentinel. 5xx responses always carry the generic server-error text so
// that persistence details never leak.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:      "invalid credentials",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",
	service.ErrNotResourceOwner:        "Not authorized",
	store.ErrEmailAlreadyExists:        "email already exists",
	store.ErrUsernameAlreadyExists:     "username already exists",
	store.ErrNoUserWasFound:            "invalid credentials",
	store.ErrResourceNotFound:          "not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "Server error"
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}

	// Validation errors surface their own text (it names the missing
	// fields); the sentinel guarantees no internal detail is attached.
	if errors.Is(err, service.ErrMissingRequiredFields) || errors.Is(err, service.ErrInvalidDataProvided) {
		return err.Error()
	}

	return http.StatusText(status)
}

// writeError converts err into its JSON error response.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	writeMessage(w, messageFromError(err, status), status)
}

// writeMessage writes a {"message": ...} body with the given status.
func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
