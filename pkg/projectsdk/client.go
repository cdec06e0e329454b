package projectsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient calls the public endpoints and opens Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns a Session for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	return c.authenticate(ctx, "/v1/auth/register", req, http.StatusCreated)
}

// Login returns a Session for existing credentials.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, "/v1/auth/login", LoginRequest{Email: email, Password: password}, http.StatusOK)
}

func (c *SDKClient) authenticate(ctx context.Context, path string, body any, status int) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, "", body)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth, status); err != nil {
		return nil, err
	}
	return c.NewSession(auth.Token, auth.User), nil
}

// NewSession wraps an existing bearer token.
func (c *SDKClient) NewSession(token string, user UserResponse) *Session {
	return &Session{client: c, token: token, user: user}
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service can serve traffic.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
