package http

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginMe(t *testing.T) {
	srv := newTestServer(t)

	alice := srv.register(t, "Alice", "  Alice@Example.com ")
	require.Equal(t, "alice@example.com", alice.Email)
	require.NotEmpty(t, alice.Token)

	rec := srv.do(t, http.MethodPost, "/v1/auth/login", "", projectsdk.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[projectsdk.AuthResponse](t, rec)
	require.Equal(t, "Bearer", login.TokenType)
	require.Equal(t, alice.ID, login.User.ID)

	rec = srv.do(t, http.MethodGet, "/v1/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[projectsdk.UserResponse](t, rec)
	require.Equal(t, "Alice", me.Name)
	require.Equal(t, "alice@example.com", me.Email)
}

func TestRegisterRejections(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "Alice", "alice@example.com")

	tests := []struct {
		name   string
		req    projectsdk.RegisterRequest
		status int
		code   string
	}{
		{"missing name", projectsdk.RegisterRequest{Email: "bob@example.com", Password: "long enough"}, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest},
		{"bad email", projectsdk.RegisterRequest{Name: "Bob", Email: "bob-at-example", Password: "long enough"}, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest},
		{"short password", projectsdk.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "short"}, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest},
		{"taken email", projectsdk.RegisterRequest{Name: "Alias", Email: "ALICE@example.com", Password: "long enough"}, http.StatusConflict, projectsdk.ErrorCodeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/v1/auth/register", "", tt.req)
			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "Alice", "alice@example.com")

	wrongPassword := srv.do(t, http.MethodPost, "/v1/auth/login", "", projectsdk.LoginRequest{
		Email: "alice@example.com", Password: "not the password",
	})
	unknownEmail := srv.do(t, http.MethodPost, "/v1/auth/login", "", projectsdk.LoginRequest{
		Email: "nobody@example.com", Password: "not the password",
	})

	a := requireErrorCode(t, wrongPassword, http.StatusUnauthorized, projectsdk.ErrorCodeUnauthorized)
	b := requireErrorCode(t, unknownEmail, http.StatusUnauthorized, projectsdk.ErrorCodeUnauthorized)
	require.Equal(t, a.ErrorDescription, b.ErrorDescription)
}
