package projectsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeInvalidInvitation = "invalid_invitation"
	ErrorCodeInvitationExpired = "invitation_expired"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is a non-2xx response decoded into a typed error.
type APIError struct {
	StatusCode  int
	Code        string
	Description string

	// ExistingInvitation is set for a duplicate invitation conflict.
	ExistingInvitation *ExistingInvitation
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// PartialSuccessError is returned when the server stored an invitation but
// could not send its email (HTTP 207). Response holds the full body.
type PartialSuccessError struct {
	Response SendInvitationResponse
}

func (e *PartialSuccessError) Error() string {
	return "invitation stored but email not sent: " + e.Response.Error
}

// parseErrorResponse turns an error body into an APIError. Bodies that are
// not JSON fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:         resp.StatusCode,
			Code:               errResp.Error,
			Description:        errResp.ErrorDescription,
			ExistingInvitation: errResp.ExistingInvitation,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
