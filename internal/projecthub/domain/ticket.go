package domain

import "time"

type TicketPriority string

const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TicketStatus string

const (
	TicketToDo       TicketStatus = "To Do"
	TicketInProgress TicketStatus = "In Progress"
	TicketInReview   TicketStatus = "In Review"
	TicketDone       TicketStatus = "Done"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketToDo, TicketInProgress, TicketInReview, TicketDone:
		return true
	}
	return false
}

type Ticket struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	AssigneeID  *string
	Priority    TicketPriority
	Status      TicketStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TicketPatch is a partial ticket update. Nil fields are left unchanged.
// ClearAssignee removes the assignee and wins over AssigneeID.
type TicketPatch struct {
	Title         *string
	Description   *string
	AssigneeID    *string
	ClearAssignee bool
	Priority      *TicketPriority
	Status        *TicketStatus
}

func (p TicketPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.AssigneeID == nil &&
		!p.ClearAssignee && p.Priority == nil && p.Status == nil
}
