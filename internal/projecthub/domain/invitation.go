package domain

import "time"

// InvitationStatus moves forward only: pending to one of the terminal
// states accepted, rejected or expired.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
	InvitationExpired  InvitationStatus = "expired"
)

func (s InvitationStatus) Terminal() bool {
	switch s {
	case InvitationAccepted, InvitationRejected, InvitationExpired:
		return true
	}
	return false
}

func (s InvitationStatus) Valid() bool {
	return s == InvitationPending || s.Terminal()
}

// DefaultInvitationTTL is how long an invitation stays acceptable after it
// is created or resent.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// Invitation asks Email to join ProjectID. Token is a bearer capability and
// must never appear in logs unredacted.
type Invitation struct {
	ID          string
	ProjectID   string
	Email       string
	Token       string
	InvitedBy   string
	Status      InvitationStatus
	CreatedAt   time.Time
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	RespondedAt *time.Time
}

// ExpiredAt reports whether the invitation is past its expiry at now.
func (i Invitation) ExpiredAt(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// PendingInvitation is an invitation as listed for its recipient.
type PendingInvitation struct {
	Invitation
	ProjectTitle       string
	ProjectDescription string
	InvitedBy          UserRef
}

// ProjectInvitation is an invitation as listed for the project owner.
type ProjectInvitation struct {
	Invitation
	Inviter UserRef
}

// ProjectInvitations is the owner's view of a project's invitations and
// team.
type ProjectInvitations struct {
	ProjectID    string
	ProjectTitle string
	Invitations  []ProjectInvitation
	Members      []Member
}
