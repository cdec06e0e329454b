package projectsdk

import "time"

// ============================================================================
// Errors and health
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`

	// ExistingInvitation is set on 409 responses for a duplicate invitation.
	ExistingInvitation *ExistingInvitation `json:"existingInvitation,omitempty"`
}

// ExistingInvitation carries the timestamps of the pending invitation that
// blocked a new one.
type ExistingInvitation struct {
	SentAt    time.Time `json:"sentAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Mail     string `json:"mail"`
}

// MessageResponse acknowledges an operation that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login. Token is a bearer JWT.
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRef is the public profile embedded in other resources.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ============================================================================
// Projects
// ============================================================================

type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	// TeamMembers are emails of registered users to add as members.
	TeamMembers []string `json:"teamMembers,omitempty"`
}

// ProjectUpdateRequest changes only the fields that are set.
type ProjectUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type ProjectResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Owner       UserRef          `json:"owner"`
	TeamMembers []MemberResponse `json:"teamMembers"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type MemberResponse struct {
	User     UserRef   `json:"user"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// ============================================================================
// Tickets
// ============================================================================

type TicketRequest struct {
	ProjectID   string  `json:"projectId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// TicketUpdateRequest changes only the fields that are set. An empty
// Assignee string unassigns the ticket.
type TicketUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type TicketResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Assignee    *string   `json:"assignee,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ============================================================================
// Invitations
// ============================================================================

// InvitationRequest addresses an invitation by project and email. It is the
// body of send, resend and cancel.
type InvitationRequest struct {
	ProjectID string `json:"projectId"`
	Email     string `json:"email"`
}

// SendInvitationResponse reports a created or renewed invitation. With
// EmailSent false (HTTP 207) the invitation is stored but the email failed;
// Token is then the redacted prefix and Error carries the transport error.
type SendInvitationResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	EmailSent  bool            `json:"emailSent"`
	Invitation InvitationBrief `json:"invitation"`
	Error      string          `json:"error,omitempty"`
}

type InvitationBrief struct {
	Email        string    `json:"email"`
	ProjectTitle string    `json:"projectTitle"`
	ExpiresAt    time.Time `json:"expiresAt"`
	MessageID    string    `json:"messageId,omitempty"`
	Token        string    `json:"token,omitempty"`
}

type AcceptInvitationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Project ProjectSummary `json:"project"`
}

type ProjectSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

type PendingInvitationsResponse struct {
	Count       int                 `json:"count"`
	Invitations []PendingInvitation `json:"invitations"`
}

// PendingInvitation is an invitation addressed to the caller. Token is the
// accept capability and is returned only to its recipient.
type PendingInvitation struct {
	ID                 string    `json:"id"`
	Token              string    `json:"token"`
	ProjectID          string    `json:"projectId"`
	ProjectTitle       string    `json:"projectTitle"`
	ProjectDescription string    `json:"projectDescription"`
	InvitedBy          UserRef   `json:"invitedBy"`
	CreatedAt          time.Time `json:"createdAt"`
	ExpiresAt          time.Time `json:"expiresAt"`
}

type ProjectInvitationsResponse struct {
	ProjectID    string              `json:"projectId"`
	ProjectTitle string              `json:"projectTitle"`
	Invitations  []ProjectInvitation `json:"invitations"`
	TeamMembers  []MemberResponse    `json:"teamMembers"`
}

// ProjectInvitation is the owner's view of an invitation. The token is not
// included.
type ProjectInvitation struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	InvitedBy   UserRef    `json:"invitedBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

type TestEmailResponse struct {
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}
