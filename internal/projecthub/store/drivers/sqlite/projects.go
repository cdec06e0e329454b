package sqlite

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
)

type projectsRepo struct {
	db dbtx
}

var projectColumnNames = []string{"id", "title", "description", "owner_id", "created_at", "updated_at"}

func scanProject(s scanner) (domain.Project, error) {
	var (
		p                domain.Project
		created, updated dbTime
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Description, &p.OwnerID, &created, &updated); err != nil {
		return domain.Project{}, err
	}
	p.CreatedAt, p.UpdatedAt = created.Time, updated.Time
	return p, nil
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+columns("", projectColumnNames)+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) ListProjectsForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	query, args, err := psql.
		Select(columns("p", projectColumnNames)).
		From("projects p").
		Where(sq.Or{
			sq.Eq{"p.owner_id": userID},
			sq.Expr(`EXISTS (SELECT 1 FROM project_members m WHERE m.project_id = p.id AND m.user_id = ?)`, userID),
		}).
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProject)
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+columns("", projectColumnNames)+`) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.OwnerID, utc(p.CreatedAt), utc(p.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *projectsRepo) UpdateProject(
	ctx context.Context,
	id string,
	title, description *string,
	at time.Time,
) (domain.Project, error) {
	update := psql.Update("projects").Set("updated_at", utc(at))
	if title != nil {
		update = update.Set("title", *title)
	}
	if description != nil {
		update = update.Set("description", *description)
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns("", projectColumnNames)).
		ToSql()
	if err != nil {
		return domain.Project{}, err
	}

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireOne(res)
}
