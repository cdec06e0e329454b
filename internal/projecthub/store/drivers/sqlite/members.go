package sqlite

import (
	"context"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
)

type membersRepo struct {
	db dbtx
}

func (r *membersRepo) ListMembers(ctx context.Context, projectID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.project_id, m.role, m.joined_at, u.id, u.name, u.email
		FROM project_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.project_id = ?
		ORDER BY m.joined_at, u.id`, projectID)
	if err != nil {
		return nil, err
	}

	return collect(rows, func(s scanner) (domain.Member, error) {
		var (
			m      domain.Member
			joined dbTime
		)
		if err := s.Scan(&m.ProjectID, &m.Role, &joined, &m.User.ID, &m.User.Name, &m.User.Email); err != nil {
			return domain.Member{}, err
		}
		m.JoinedAt = joined.Time
		return m, nil
	})
}

func (r *membersRepo) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM project_members WHERE project_id = ? AND user_id = ?)`,
		projectID, userID,
	).Scan(&exists)
	return exists, err
}

func (r *membersRepo) AddMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)`,
		m.ProjectID, m.User.ID, string(m.Role), utc(m.JoinedAt),
	)
	return mapWriteErr(err)
}
