package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/pkg/cryptox"
	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

var (
	ErrAlreadyMember      = errors.New("user is already a member of this project")
	ErrAlreadyInvited     = errors.New("invitation already sent to this email")
	ErrInvitationInvalid  = errors.New("invalid or expired invitation")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrWrongRecipient     = errors.New("this invitation was sent to a different email address")
	ErrInvitationNotFound = errors.New("no pending invitation found for this email")
	ErrEmailDelivery      = errors.New("email could not be sent")
)

// DuplicateInvitationError is returned when a pending invitation already
// exists. It matches ErrAlreadyInvited and carries the existing timestamps.
type DuplicateInvitationError struct {
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (e *DuplicateInvitationError) Error() string { return ErrAlreadyInvited.Error() }
func (e *DuplicateInvitationError) Unwrap() error { return ErrAlreadyInvited }

// SendResult reports a persisted invitation and whether its email went out.
// EmailSent false with a nil error is a partial success: the invitation
// stands and only delivery failed.
type SendResult struct {
	Invitation   domain.Invitation
	ProjectTitle string
	EmailSent    bool
	MessageID    string
	EmailError   error
}

// InvitationService drives the invitation lifecycle. Every state change is
// a conditional store update on the pending status, so concurrent requests
// cannot both accept, renew or cancel the same invitation.
type InvitationService struct {
	Store  store.Store
	Mailer *InvitationMailer

	// TTL is how long an invitation stays acceptable after create or
	// resend. Zero means domain.DefaultInvitationTTL.
	TTL time.Duration
	Now func() time.Time
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL <= 0 {
		return domain.DefaultInvitationTTL
	}
	return s.TTL
}

// Create invites email to projectID on behalf of its owner and mails the
// accept link.
func (s *InvitationService) Create(ctx context.Context, projectID, callerID, email string) (SendResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the address
	email, err := NormalizeEmail(email)
	if err != nil {
		return SendResult{}, err
	}

	// 2. Only the owner may invite
	project, err := requireOwner(ctx, s.Store, projectID, callerID)
	if err != nil {
		if errors.Is(err, ErrNotProjectOwner) {
			log.Warn("non-owner attempted to send invitation",
				slog.String("project_id", projectID),
				slog.String("caller_id", callerID),
			)
		}
		return SendResult{}, err
	}

	// 3. Generate the accept token
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return SendResult{}, err
	}

	now := clock(s.Now)
	inv := domain.Invitation{
		ID:        idx.NewAt(now).String(),
		ProjectID: project.ID,
		Email:     email,
		Token:     token,
		InvitedBy: callerID,
		Status:    domain.InvitationPending,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}

	// 4. Check membership and duplicates, then insert. The pending unique
	// index turns a concurrent duplicate into ErrAlreadyExists.
	var inviter domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			if member, err := isOnTeam(ctx, tx, project, existing.ID); err != nil {
				return err
			} else if member {
				return ErrAlreadyMember
			}
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := duplicateOf(ctx, tx, project.ID, email); err != nil {
			return err
		}

		if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyInvited
			}
			return err
		}

		inviter, err = tx.Users().GetUserByID(ctx, callerID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyInvited) {
			var dup *DuplicateInvitationError
			if !errors.As(err, &dup) {
				// Lost the insert race; report the winner's timestamps.
				if winner, lookupErr := s.Store.Invitations().GetPendingByProjectEmail(ctx, project.ID, email); lookupErr == nil {
					err = &DuplicateInvitationError{CreatedAt: winner.CreatedAt, ExpiresAt: winner.ExpiresAt}
				}
			}
			log.Warn("duplicate invitation rejected",
				slog.String("project_id", project.ID),
				slog.String("email", email),
			)
			return SendResult{}, err
		}
		if errors.Is(err, ErrAlreadyMember) {
			return SendResult{}, err
		}
		log.Error("failed to create invitation",
			slog.String("project_id", project.ID),
			slog.Any("error", err),
		)
		return SendResult{}, err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("project_id", project.ID),
		slog.String("email", email),
		slog.String("token", cryptox.RedactToken(token)),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 5. Mail the link; failure leaves the invitation in place
	return s.deliver(ctx, inv, project, inviter.Ref(), false), nil
}

// isOnTeam reports whether userID owns or belongs to project.
func isOnTeam(ctx context.Context, st store.Store, project domain.Project, userID string) (bool, error) {
	if project.OwnerID == userID {
		return true, nil
	}
	return st.Members().IsMember(ctx, project.ID, userID)
}

// duplicateOf returns a DuplicateInvitationError when a pending invitation
// for (projectID, email) exists.
func duplicateOf(ctx context.Context, st store.Store, projectID, email string) error {
	existing, err := st.Invitations().GetPendingByProjectEmail(ctx, projectID, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return &DuplicateInvitationError{CreatedAt: existing.CreatedAt, ExpiresAt: existing.ExpiresAt}
}

func (s *InvitationService) deliver(
	ctx context.Context,
	inv domain.Invitation,
	project domain.Project,
	inviter domain.UserRef,
	reminder bool,
) SendResult {
	log := slogx.FromContext(ctx)
	result := SendResult{Invitation: inv, ProjectTitle: project.Title}

	id, err := s.Mailer.SendInvitation(ctx, inv, project, inviter, reminder)
	if err != nil {
		log.Error("invitation email failed, invitation kept",
			slog.String("invitation_id", inv.ID),
			slog.String("token", cryptox.RedactToken(inv.Token)),
			slog.Bool("reminder", reminder),
			slog.Any("error", err),
		)
		result.EmailError = err
		return result
	}

	log.Info("invitation email sent",
		slog.String("invitation_id", inv.ID),
		slog.String("message_id", id),
		slog.Bool("reminder", reminder),
	)
	result.EmailSent = true
	result.MessageID = id
	return result
}

// claim resolves token to a pending invitation addressed to callerID. An
// invitation found past its expiry is moved to expired before
// ErrInvitationExpired is returned.
func (s *InvitationService) claim(ctx context.Context, token, callerID string, now time.Time) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Only pending invitations resolve; anything else is indistinguishable
	inv, err := s.Store.Invitations().GetPendingByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation lookup failed", slog.String("token", cryptox.RedactToken(token)))
			return domain.Invitation{}, ErrInvitationInvalid
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 2. Expire on sight
	if inv.ExpiredAt(now) {
		if _, err := s.Store.Invitations().Transition(ctx, token, domain.InvitationExpired, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Invitation{}, ErrInvitationInvalid
			}
			log.Error("failed to expire invitation", slog.String("invitation_id", inv.ID), slog.Any("error", err))
			return domain.Invitation{}, err
		}
		log.Info("invitation expired on use", slog.String("invitation_id", inv.ID))
		return domain.Invitation{}, ErrInvitationExpired
	}

	// 3. The caller's registered email must be the invited one
	caller, err := s.Store.Users().GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrUserNotFound
		}
		return domain.Invitation{}, err
	}
	if caller.Email != inv.Email {
		log.Warn("invitation used by wrong recipient",
			slog.String("invitation_id", inv.ID),
			slog.String("caller_id", callerID),
		)
		return domain.Invitation{}, ErrWrongRecipient
	}

	return inv, nil
}

// Accept joins callerID to the invitation's project as a member.
func (s *InvitationService) Accept(ctx context.Context, token, callerID string) (domain.ProjectSummary, error) {
	log := slogx.FromContext(ctx)
	now := clock(s.Now)

	inv, err := s.claim(ctx, token, callerID, now)
	if err != nil {
		return domain.ProjectSummary{}, err
	}

	// 4. Transition and join in one transaction. A caller already on the
	// team still consumes the invitation, then gets ErrAlreadyMember.
	var (
		summary       domain.ProjectSummary
		alreadyMember bool
	)
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		project, err := tx.Projects().GetProjectByID(ctx, inv.ProjectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationInvalid
			}
			return err
		}

		alreadyMember, err = isOnTeam(ctx, tx, project, callerID)
		if err != nil {
			return err
		}

		if _, err := tx.Invitations().Transition(ctx, token, domain.InvitationAccepted, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationInvalid
			}
			return err
		}
		if alreadyMember {
			return nil
		}

		if err := tx.Members().AddMember(ctx, domain.Member{
			ProjectID: project.ID,
			User:      domain.UserRef{ID: callerID},
			Role:      domain.RoleMember,
			JoinedAt:  now,
		}); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			return err
		}

		owner, err := tx.Users().GetUserByID(ctx, project.OwnerID)
		if err != nil {
			return err
		}
		summary = domain.ProjectSummary{
			ID:          project.ID,
			Title:       project.Title,
			Description: project.Description,
			OwnerName:   owner.Name,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvitationInvalid) && !errors.Is(err, ErrAlreadyMember) {
			log.Error("failed to accept invitation", slog.String("invitation_id", inv.ID), slog.Any("error", err))
		}
		return domain.ProjectSummary{}, err
	}
	if alreadyMember {
		log.Info("invitation consumed by existing member", slog.String("invitation_id", inv.ID))
		return domain.ProjectSummary{}, ErrAlreadyMember
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("project_id", inv.ProjectID),
		slog.String("user_id", callerID),
	)
	return summary, nil
}

// Decline moves the invitation to rejected.
func (s *InvitationService) Decline(ctx context.Context, token, callerID string) error {
	log := slogx.FromContext(ctx)
	now := clock(s.Now)

	inv, err := s.claim(ctx, token, callerID, now)
	if err != nil {
		return err
	}

	if _, err := s.Store.Invitations().Transition(ctx, token, domain.InvitationRejected, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationInvalid
		}
		log.Error("failed to decline invitation", slog.String("invitation_id", inv.ID), slog.Any("error", err))
		return err
	}

	log.Info("invitation declined", slog.String("invitation_id", inv.ID))
	return nil
}

// ListPending returns the unexpired pending invitations addressed to email.
func (s *InvitationService) ListPending(ctx context.Context, email string) ([]domain.PendingInvitation, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	list, err := s.Store.Invitations().ListPendingForEmail(ctx, email, clock(s.Now))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list pending invitations", slog.Any("error", err))
		return nil, err
	}
	return list, nil
}

// ListForProject returns every invitation and team member of the project.
// Owner only.
func (s *InvitationService) ListForProject(ctx context.Context, projectID, callerID string) (domain.ProjectInvitations, error) {
	log := slogx.FromContext(ctx)

	project, err := requireOwner(ctx, s.Store, projectID, callerID)
	if err != nil {
		return domain.ProjectInvitations{}, err
	}

	invitations, err := s.Store.Invitations().ListByProject(ctx, project.ID)
	if err != nil {
		log.Error("failed to list invitations", slog.String("project_id", project.ID), slog.Any("error", err))
		return domain.ProjectInvitations{}, err
	}

	members, err := s.Store.Members().ListMembers(ctx, project.ID)
	if err != nil {
		log.Error("failed to list members", slog.String("project_id", project.ID), slog.Any("error", err))
		return domain.ProjectInvitations{}, err
	}

	return domain.ProjectInvitations{
		ProjectID:    project.ID,
		ProjectTitle: project.Title,
		Invitations:  invitations,
		Members:      members,
	}, nil
}

// Resend extends the pending invitation for email and mails a reminder with
// the original link.
func (s *InvitationService) Resend(ctx context.Context, projectID, callerID, email string) (SendResult, error) {
	log := slogx.FromContext(ctx)

	project, err := requireOwner(ctx, s.Store, projectID, callerID)
	if err != nil {
		return SendResult{}, err
	}

	// A malformed address can never have a pending invitation.
	email, err = NormalizeEmail(email)
	if err != nil {
		return SendResult{}, ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().RenewPending(ctx, project.ID, email, clock(s.Now).Add(s.ttl()))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SendResult{}, ErrInvitationNotFound
		}
		log.Error("failed to renew invitation", slog.String("project_id", project.ID), slog.Any("error", err))
		return SendResult{}, err
	}

	inviter, err := s.Store.Users().GetUserByID(ctx, callerID)
	if err != nil {
		return SendResult{}, err
	}

	log.Info("invitation renewed",
		slog.String("invitation_id", inv.ID),
		slog.String("token", cryptox.RedactToken(inv.Token)),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return s.deliver(ctx, inv, project, inviter.Ref(), true), nil
}

// Cancel deletes the pending invitation for email. Other statuses are
// history and stay.
func (s *InvitationService) Cancel(ctx context.Context, projectID, callerID, email string) error {
	log := slogx.FromContext(ctx)

	project, err := requireOwner(ctx, s.Store, projectID, callerID)
	if err != nil {
		return err
	}

	email, err = NormalizeEmail(email)
	if err != nil {
		return ErrInvitationNotFound
	}

	if err := s.Store.Invitations().DeletePending(ctx, project.ID, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to cancel invitation", slog.String("project_id", project.ID), slog.Any("error", err))
		return err
	}

	log.Info("invitation cancelled", slog.String("project_id", project.ID), slog.String("email", email))
	return nil
}

// ExpireStale moves every overdue pending invitation to expired.
func (s *InvitationService) ExpireStale(ctx context.Context) (int64, error) {
	return s.Store.Invitations().ExpirePending(ctx, clock(s.Now))
}

// SendTestEmail mails the caller a test message through the configured
// transport.
func (s *InvitationService) SendTestEmail(ctx context.Context, callerID string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	id, err := s.Mailer.SendTest(ctx, user.Ref(), clock(s.Now))
	if err != nil {
		log.Error("test email failed", slog.Any("error", err))
		return "", errors.Join(ErrEmailDelivery, err)
	}

	log.Info("test email sent", slog.String("message_id", id))
	return id, nil
}
