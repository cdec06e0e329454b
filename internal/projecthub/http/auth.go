package http

import (
	"net/http"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

func toAuthResponse(s service.Session) projectsdk.AuthResponse {
	return projectsdk.AuthResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		User:      toUserResponse(s.User),
	}
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Create an account and return a bearer token for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectsdk.RegisterRequest	true	"name, email, password"
//	@Success		201		{object}	projectsdk.AuthResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		409		{object}	projectsdk.ErrorResponse	"email already registered"
//	@Failure		429		{object}	projectsdk.ErrorResponse
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req projectsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	sess, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "register")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(sess))
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Exchange email and password for a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	projectsdk.AuthResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		401		{object}	projectsdk.ErrorResponse	"invalid email or password"
//	@Failure		429		{object}	projectsdk.ErrorResponse
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req projectsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "log in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(sess))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	projectsdk.UserResponse
//	@Failure		401	{object}	projectsdk.ErrorResponse
//	@Failure		404	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "load profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
