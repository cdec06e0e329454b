package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
)

type ticketsRepo struct {
	db dbtx
}

var ticketColumnNames = []string{
	"id", "project_id", "title", "description", "assignee_id",
	"priority", "status", "created_by", "created_at", "updated_at",
}

func scanTicket(s scanner) (domain.Ticket, error) {
	var (
		t                domain.Ticket
		assignee         sql.NullString
		created, updated dbTime
	)
	if err := s.Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &assignee,
		&t.Priority, &t.Status, &t.CreatedBy, &created, &updated,
	); err != nil {
		return domain.Ticket{}, err
	}

	t.AssigneeID = mapNullStringPtr(assignee)
	t.CreatedAt, t.UpdatedAt = created.Time, updated.Time
	return t, nil
}

func (r *ticketsRepo) GetTicketByID(ctx context.Context, id string) (domain.Ticket, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+columns("", ticketColumnNames)+` FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err != nil {
		return domain.Ticket{}, mapNotFound(err)
	}
	return t, nil
}

func (r *ticketsRepo) CreateTicket(ctx context.Context, t domain.Ticket) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (`+columns("", ticketColumnNames)+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Title, t.Description, mapOptionalString(t.AssigneeID),
		string(t.Priority), string(t.Status), t.CreatedBy, utc(t.CreatedAt), utc(t.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *ticketsRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Ticket, error) {
	return r.list(ctx, sq.Eq{"project_id": projectID})
}

func (r *ticketsRepo) ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return r.list(ctx, sq.Eq{"created_by": userID})
}

func (r *ticketsRepo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Ticket, error) {
	query, args, err := psql.
		Select(columns("", ticketColumnNames)).
		From("tickets").
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTicket)
}

func (r *ticketsRepo) UpdateTicket(
	ctx context.Context,
	id string,
	patch domain.TicketPatch,
	at time.Time,
) (domain.Ticket, error) {
	update := psql.Update("tickets").Set("updated_at", utc(at))
	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		update = update.Set("description", *patch.Description)
	}
	switch {
	case patch.ClearAssignee:
		update = update.Set("assignee_id", nil)
	case patch.AssigneeID != nil:
		update = update.Set("assignee_id", *patch.AssigneeID)
	}
	if patch.Priority != nil {
		update = update.Set("priority", string(*patch.Priority))
	}
	if patch.Status != nil {
		update = update.Set("status", string(*patch.Status))
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columns("", ticketColumnNames)).
		ToSql()
	if err != nil {
		return domain.Ticket{}, err
	}

	t, err := scanTicket(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Ticket{}, mapWriteErr(mapNotFound(err))
	}
	return t, nil
}

func (r *ticketsRepo) DeleteTicket(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireOne(res)
}
