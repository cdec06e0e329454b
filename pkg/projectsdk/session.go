package projectsdk

import (
	"context"
	"net/http"
)

// Session makes requests as one user. Tokens are not refreshed; log in
// again after expiry.
type Session struct {
	client *SDKClient
	token  string
	user   UserResponse
}

// User returns the profile captured at login.
func (s *Session) User() UserResponse { return s.user }

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	return s.client.doRequest(ctx, method, path, s.token, body)
}

// Me fetches the caller's profile.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}
