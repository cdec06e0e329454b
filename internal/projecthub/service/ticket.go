package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrInvalidTicket   = errors.New("invalid ticket")
	ErrInvalidAssignee = errors.New("assignee must be the owner or a member of the project")
)

// NewTicket is the input to TicketService.Create. Empty priority and status
// default to Low and To Do.
type NewTicket struct {
	ProjectID   string
	Title       string
	Description string
	AssigneeID  *string
	Priority    domain.TicketPriority
	Status      domain.TicketStatus
}

type TicketService struct {
	Store store.Store
	Now   func() time.Time
}

func checkAssignee(ctx context.Context, st store.Store, project domain.Project, assigneeID string) error {
	ok, err := isOnTeam(ctx, st, project, assigneeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidAssignee
	}
	return nil
}

// Create adds a ticket to a project the caller owns or belongs to.
func (s *TicketService) Create(ctx context.Context, callerID string, in NewTicket) (domain.Ticket, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input and apply defaults
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return domain.Ticket{}, ErrInvalidTicket
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityLow
	}
	if in.Status == "" {
		in.Status = domain.TicketToDo
	}
	if !in.Priority.Valid() || !in.Status.Valid() {
		return domain.Ticket{}, ErrInvalidTicket
	}

	// 2. Check project access and the assignee
	project, err := requireAccess(ctx, s.Store, in.ProjectID, callerID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if in.AssigneeID != nil && *in.AssigneeID != "" {
		if err := checkAssignee(ctx, s.Store, project, *in.AssigneeID); err != nil {
			return domain.Ticket{}, err
		}
	} else {
		in.AssigneeID = nil
	}

	// 3. Persist
	now := clock(s.Now)
	t := domain.Ticket{
		ID:          idx.NewAt(now).String(),
		ProjectID:   project.ID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		AssigneeID:  in.AssigneeID,
		Priority:    in.Priority,
		Status:      in.Status,
		CreatedBy:   callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Tickets().CreateTicket(ctx, t); err != nil {
		log.Error("failed to create ticket", slog.String("project_id", project.ID), slog.Any("error", err))
		return domain.Ticket{}, err
	}

	log.Info("ticket created", slog.String("ticket_id", t.ID), slog.String("project_id", project.ID))
	return t, nil
}

// ListByProject returns the project's tickets, newest first.
func (s *TicketService) ListByProject(ctx context.Context, projectID, callerID string) ([]domain.Ticket, error) {
	if _, err := requireAccess(ctx, s.Store, projectID, callerID); err != nil {
		return nil, err
	}

	tickets, err := s.Store.Tickets().ListByProject(ctx, projectID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list tickets", slog.String("project_id", projectID), slog.Any("error", err))
		return nil, err
	}
	return tickets, nil
}

// ListCreatedBy returns every ticket callerID created, newest first.
func (s *TicketService) ListCreatedBy(ctx context.Context, callerID string) ([]domain.Ticket, error) {
	tickets, err := s.Store.Tickets().ListByCreator(ctx, callerID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list tickets", slog.Any("error", err))
		return nil, err
	}
	return tickets, nil
}

// loadTicket fetches the ticket and checks the caller can reach its project.
func (s *TicketService) loadTicket(ctx context.Context, ticketID, callerID string) (domain.Ticket, domain.Project, error) {
	t, err := s.Store.Tickets().GetTicketByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Ticket{}, domain.Project{}, ErrTicketNotFound
		}
		return domain.Ticket{}, domain.Project{}, err
	}

	project, err := requireAccess(ctx, s.Store, t.ProjectID, callerID)
	if err != nil {
		return domain.Ticket{}, domain.Project{}, err
	}
	return t, project, nil
}

// Update applies patch to the ticket.
func (s *TicketService) Update(ctx context.Context, ticketID, callerID string, patch domain.TicketPatch) (domain.Ticket, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the patch
	if patch.Empty() {
		return domain.Ticket{}, ErrInvalidTicket
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Ticket{}, ErrInvalidTicket
		}
		patch.Title = &title
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Ticket{}, ErrInvalidTicket
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Ticket{}, ErrInvalidTicket
	}
	if patch.AssigneeID != nil && *patch.AssigneeID == "" {
		patch.AssigneeID = nil
		patch.ClearAssignee = true
	}

	// 2. Check access and the new assignee
	t, project, err := s.loadTicket(ctx, ticketID, callerID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if patch.AssigneeID != nil && !patch.ClearAssignee {
		if err := checkAssignee(ctx, s.Store, project, *patch.AssigneeID); err != nil {
			return domain.Ticket{}, err
		}
	}

	// 3. Apply
	updated, err := s.Store.Tickets().UpdateTicket(ctx, t.ID, patch, clock(s.Now))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}
		log.Error("failed to update ticket", slog.String("ticket_id", t.ID), slog.Any("error", err))
		return domain.Ticket{}, err
	}
	return updated, nil
}

// Delete removes the ticket.
func (s *TicketService) Delete(ctx context.Context, ticketID, callerID string) error {
	log := slogx.FromContext(ctx)

	t, _, err := s.loadTicket(ctx, ticketID, callerID)
	if err != nil {
		return err
	}

	if err := s.Store.Tickets().DeleteTicket(ctx, t.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTicketNotFound
		}
		log.Error("failed to delete ticket", slog.String("ticket_id", t.ID), slog.Any("error", err))
		return err
	}

	log.Info("ticket deleted", slog.String("ticket_id", t.ID))
	return nil
}
