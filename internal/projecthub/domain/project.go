package domain

import "time"

type Project struct {
	ID          string
	Title       string
	Description string
	OwnerID     string // immutable after creation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MemberRole is the role a user holds within a project team.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

func (r MemberRole) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Member is one entry of a project's team. A user appears at most once per
// project.
type Member struct {
	ProjectID string
	User      UserRef
	Role      MemberRole
	JoinedAt  time.Time
}

// ProjectDetail is a project with its owner and team resolved.
type ProjectDetail struct {
	Project
	Owner   UserRef
	Members []Member
}

// ProjectSummary is what an invitee sees after joining.
type ProjectSummary struct {
	ID          string
	Title       string
	Description string
	OwnerName   string
}
