package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories so that a transaction-scoped Store offers the same API as
// the root one.
type Store interface {
	Users() Users
	Projects() Projects
	Members() Members
	Invitations() Invitations
	Tickets() Tickets

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store. The
	// caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only use the tx argument; the root
	// Store may be limited to a single connection.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the normalised email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Projects interface {
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// ListProjectsForUser returns projects the user owns or is a member of,
	// newest first.
	ListProjectsForUser(ctx context.Context, userID string) ([]domain.Project, error)

	CreateProject(ctx context.Context, p domain.Project) error

	// UpdateProject changes the non-nil fields and bumps updated_at.
	UpdateProject(ctx context.Context, id string, title, description *string, at time.Time) (domain.Project, error)

	// DeleteProject cascades to members, invitations and tickets.
	DeleteProject(ctx context.Context, id string) error
}

type Members interface {
	// ListMembers returns the team with user profiles, in join order.
	ListMembers(ctx context.Context, projectID string) ([]domain.Member, error)

	IsMember(ctx context.Context, projectID, userID string) (bool, error)

	// AddMember returns ErrAlreadyExists when the user is already on the team.
	AddMember(ctx context.Context, m domain.Member) error
}

// Invitations mutate only through conditional statements that match on the
// pending status, so concurrent callers cannot both win a transition.
type Invitations interface {
	// CreateInvitation returns ErrAlreadyExists when a pending invitation for
	// the same project and email exists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetPendingByToken(ctx context.Context, token string) (domain.Invitation, error)
	GetPendingByProjectEmail(ctx context.Context, projectID, email string) (domain.Invitation, error)

	// ListByProject returns every invitation of the project with the inviter
	// profile, oldest first.
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectInvitation, error)

	// ListPendingForEmail returns unexpired pending invitations for email,
	// ordered by project creation then invitation creation.
	ListPendingForEmail(ctx context.Context, email string, now time.Time) ([]domain.PendingInvitation, error)

	// Transition moves the pending invitation with token to a terminal
	// status. ErrNotFound means the token is unknown or no longer pending.
	Transition(ctx context.Context, token string, to domain.InvitationStatus, at time.Time) (domain.Invitation, error)

	// RenewPending sets a new expiry on the pending invitation for
	// (projectID, email). The token is unchanged.
	RenewPending(ctx context.Context, projectID, email string, expiresAt time.Time) (domain.Invitation, error)

	// DeletePending removes the pending invitation for (projectID, email).
	DeletePending(ctx context.Context, projectID, email string) error

	// ExpirePending moves every pending invitation whose expiry is before now
	// to expired and returns how many changed.
	ExpirePending(ctx context.Context, now time.Time) (int64, error)
}

type Tickets interface {
	GetTicketByID(ctx context.Context, id string) (domain.Ticket, error)
	CreateTicket(ctx context.Context, t domain.Ticket) error

	// ListByProject and ListByCreator return newest first.
	ListByProject(ctx context.Context, projectID string) ([]domain.Ticket, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error)

	UpdateTicket(ctx context.Context, id string, patch domain.TicketPatch, at time.Time) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}
