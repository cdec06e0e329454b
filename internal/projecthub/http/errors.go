package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

// writeServiceError maps a service error to its status and stable error
// code. Anything unrecognised is logged and reported as server_error with
// the failed action as description.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var dup *service.DuplicateInvitationError
	if errors.As(err, &dup) {
		httpx.WriteJSON(w, http.StatusConflict, projectsdk.ErrorResponse{
			Error:            projectsdk.ErrorCodeConflict,
			ErrorDescription: dup.Error(),
			ExistingInvitation: &projectsdk.ExistingInvitation{
				SentAt:    dup.CreatedAt,
				ExpiresAt: dup.ExpiresAt,
			},
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrProjectNotFound),
		errors.Is(err, service.ErrInvitationNotFound),
		errors.Is(err, service.ErrTicketNotFound),
		errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, projectsdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrNotProjectOwner),
		errors.Is(err, service.ErrProjectAccessDenied),
		errors.Is(err, service.ErrWrongRecipient):
		httpx.WriteError(w, http.StatusForbidden, projectsdk.ErrorCodeForbidden, err.Error())

	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidProject),
		errors.Is(err, service.ErrInvalidTicket),
		errors.Is(err, service.ErrInvalidAssignee):
		httpx.WriteError(w, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrAlreadyInvited),
		errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, projectsdk.ErrorCodeConflict, err.Error())

	case errors.Is(err, service.ErrInvitationInvalid):
		httpx.WriteError(w, http.StatusBadRequest, projectsdk.ErrorCodeInvalidInvitation, err.Error())

	case errors.Is(err, service.ErrInvitationExpired):
		httpx.WriteError(w, http.StatusGone, projectsdk.ErrorCodeInvitationExpired, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, projectsdk.ErrorCodeUnauthorized, err.Error())

	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("action", action),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, projectsdk.ErrorCodeServerError, "Failed to "+action)
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteError(w, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest, description)
}

// callerID returns the authenticated user id, writing a 401 when absent.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, projectsdk.ErrorCodeUnauthorized, "Authentication required")
		return "", false
	}
	return id, true
}

// pathID validates the named path parameter as a ULID. Malformed ids can
// never exist, so they are reported as not found.
func pathID(w http.ResponseWriter, r *http.Request, name, what string) (string, bool) {
	id, err := idx.Parse(r.PathValue(name))
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, projectsdk.ErrorCodeNotFound, what+" not found")
		return "", false
	}
	return id.String(), true
}
