package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
)

type invitationsRepo struct {
	db dbtx
}

var invitationColumnNames = []string{
	"id", "project_id", "email", "token", "invited_by", "status",
	"created_at", "expires_at", "accepted_at", "responded_at",
}

// scanInvitation reads the invitation columns followed by any extra
// destinations from a joined query.
func scanInvitation(s scanner, extra ...any) (domain.Invitation, error) {
	var (
		inv                     domain.Invitation
		created, expires        dbTime
		acceptedAt, respondedAt dbTime
	)
	dest := append([]any{
		&inv.ID, &inv.ProjectID, &inv.Email, &inv.Token, &inv.InvitedBy, &inv.Status,
		&created, &expires, &acceptedAt, &respondedAt,
	}, extra...)

	if err := s.Scan(dest...); err != nil {
		return domain.Invitation{}, err
	}

	inv.CreatedAt = created.Time
	inv.ExpiresAt = expires.Time
	inv.AcceptedAt = acceptedAt.Ptr()
	inv.RespondedAt = respondedAt.Ptr()
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	status := inv.Status
	if status == "" {
		status = domain.InvitationPending
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (`+columns("", invitationColumnNames)+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.ProjectID, inv.Email, inv.Token, inv.InvitedBy, string(status),
		utc(inv.CreatedAt), utc(inv.ExpiresAt), nullableTime(inv.AcceptedAt), nullableTime(inv.RespondedAt),
	)
	return mapWriteErr(err)
}

func (r *invitationsRepo) GetPendingByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+columns("", invitationColumnNames)+`
		 FROM invitations WHERE token = ? AND status = 'pending'`, token)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetPendingByProjectEmail(ctx context.Context, projectID, email string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+columns("", invitationColumnNames)+`
		 FROM invitations WHERE project_id = ? AND email = ? AND status = 'pending'`, projectID, email)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectInvitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+columns("i", invitationColumnNames)+`, u.id, u.name, u.email
		FROM invitations i
		JOIN users u ON u.id = i.invited_by
		WHERE i.project_id = ?
		ORDER BY i.created_at, i.id`, projectID)
	if err != nil {
		return nil, err
	}

	return collect(rows, func(s scanner) (domain.ProjectInvitation, error) {
		var pi domain.ProjectInvitation
		inv, err := scanInvitation(s, &pi.Inviter.ID, &pi.Inviter.Name, &pi.Inviter.Email)
		if err != nil {
			return domain.ProjectInvitation{}, err
		}
		pi.Invitation = inv
		return pi, nil
	})
}

func (r *invitationsRepo) ListPendingForEmail(ctx context.Context, email string, now time.Time) ([]domain.PendingInvitation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+columns("i", invitationColumnNames)+`,
		       p.title, p.description, o.id, o.name, o.email
		FROM invitations i
		JOIN projects p ON p.id = i.project_id
		JOIN users o ON o.id = p.owner_id
		WHERE i.email = ? AND i.status = 'pending' AND i.expires_at >= ?
		ORDER BY p.created_at, p.id, i.created_at, i.id`, email, utc(now))
	if err != nil {
		return nil, err
	}

	return collect(rows, func(s scanner) (domain.PendingInvitation, error) {
		var pi domain.PendingInvitation
		inv, err := scanInvitation(s,
			&pi.ProjectTitle, &pi.ProjectDescription,
			&pi.InvitedBy.ID, &pi.InvitedBy.Name, &pi.InvitedBy.Email,
		)
		if err != nil {
			return domain.PendingInvitation{}, err
		}
		pi.Invitation = inv
		return pi, nil
	})
}

// Transition is a single conditional UPDATE; of several concurrent callers
// for the same token exactly one sees the row.
func (r *invitationsRepo) Transition(
	ctx context.Context,
	token string,
	to domain.InvitationStatus,
	at time.Time,
) (domain.Invitation, error) {
	if !to.Terminal() {
		return domain.Invitation{}, fmt.Errorf("sqlite: invalid invitation transition to %q", to)
	}

	var acceptedAt, respondedAt any
	switch to {
	case domain.InvitationAccepted:
		acceptedAt, respondedAt = utc(at), utc(at)
	case domain.InvitationRejected:
		respondedAt = utc(at)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE invitations
		SET status = ?,
		    accepted_at = COALESCE(?, accepted_at),
		    responded_at = COALESCE(?, responded_at)
		WHERE token = ? AND status = 'pending'
		RETURNING `+columns("", invitationColumnNames),
		string(to), acceptedAt, respondedAt, token,
	)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) RenewPending(
	ctx context.Context,
	projectID, email string,
	expiresAt time.Time,
) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE invitations SET expires_at = ?
		WHERE project_id = ? AND email = ? AND status = 'pending'
		RETURNING `+columns("", invitationColumnNames),
		utc(expiresAt), projectID, email,
	)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) DeletePending(ctx context.Context, projectID, email string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE project_id = ? AND email = ? AND status = 'pending'`,
		projectID, email,
	)
	if err != nil {
		return err
	}
	return requireOne(res)
}

func (r *invitationsRepo) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET status = 'expired' WHERE status = 'pending' AND expires_at < ?`,
		utc(now),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
