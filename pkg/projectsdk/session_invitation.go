package projectsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// SendInvitation invites email to a project the caller owns. When the
// invitation is stored but the email fails, both the response and a
// *PartialSuccessError are returned.
func (s *Session) SendInvitation(ctx context.Context, projectID, email string) (*SendInvitationResponse, error) {
	return s.send(ctx, http.MethodPost, "/v1/invitations/send", InvitationRequest{ProjectID: projectID, Email: email})
}

// ResendInvitation extends the pending invitation and mails a reminder.
func (s *Session) ResendInvitation(ctx context.Context, projectID, email string) (*SendInvitationResponse, error) {
	return s.send(ctx, http.MethodPost, "/v1/invitations/resend", InvitationRequest{ProjectID: projectID, Email: email})
}

func (s *Session) send(ctx context.Context, method, path string, body any) (*SendInvitationResponse, error) {
	resp, err := s.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMultiStatus:
	default:
		return nil, parseErrorResponse(resp, raw)
	}

	var out SendInvitationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode == http.StatusMultiStatus {
		return &out, &PartialSuccessError{Response: out}
	}
	return &out, nil
}

// AcceptInvitation joins the project the token belongs to.
func (s *Session) AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResponse, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/invitations/accept/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var out AcceptInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeclineInvitation rejects the invitation the token belongs to.
func (s *Session) DeclineInvitation(ctx context.Context, token string) error {
	resp, err := s.do(ctx, http.MethodPost, "/v1/invitations/decline/"+url.PathEscape(token), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// PendingInvitations lists invitations addressed to the caller's email.
func (s *Session) PendingInvitations(ctx context.Context) (*PendingInvitationsResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/invitations/pending", nil)
	if err != nil {
		return nil, err
	}

	var out PendingInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectInvitations lists every invitation and member of an owned project.
func (s *Session) ProjectInvitations(ctx context.Context, projectID string) (*ProjectInvitationsResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/invitations/project/"+url.PathEscape(projectID), nil)
	if err != nil {
		return nil, err
	}

	var out ProjectInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelInvitation removes the pending invitation for email.
func (s *Session) CancelInvitation(ctx context.Context, projectID, email string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/invitations/cancel",
		InvitationRequest{ProjectID: projectID, Email: email})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SendTestEmail asks the server to mail the caller a test message.
func (s *Session) SendTestEmail(ctx context.Context) (*TestEmailResponse, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/invitations/test-email", nil)
	if err != nil {
		return nil, err
	}

	var out TestEmailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
