package http

import (
	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

func toUserResponse(u domain.User) projectsdk.UserResponse {
	return projectsdk.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toUserRef(u domain.UserRef) projectsdk.UserRef {
	return projectsdk.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toMembers(members []domain.Member) []projectsdk.MemberResponse {
	out := make([]projectsdk.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, projectsdk.MemberResponse{
			User:     toUserRef(m.User),
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		})
	}
	return out
}

func toProjectResponse(d domain.ProjectDetail) projectsdk.ProjectResponse {
	return projectsdk.ProjectResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Owner:       toUserRef(d.Owner),
		TeamMembers: toMembers(d.Members),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toTicketResponse(t domain.Ticket) projectsdk.TicketResponse {
	return projectsdk.TicketResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Assignee:    t.AssigneeID,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTicketResponses(tickets []domain.Ticket) []projectsdk.TicketResponse {
	out := make([]projectsdk.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}

func toPendingInvitation(p domain.PendingInvitation) projectsdk.PendingInvitation {
	return projectsdk.PendingInvitation{
		ID:                 p.ID,
		Token:              p.Token,
		ProjectID:          p.ProjectID,
		ProjectTitle:       p.ProjectTitle,
		ProjectDescription: p.ProjectDescription,
		InvitedBy:          toUserRef(p.InvitedBy),
		CreatedAt:          p.CreatedAt,
		ExpiresAt:          p.ExpiresAt,
	}
}

func toProjectInvitation(p domain.ProjectInvitation) projectsdk.ProjectInvitation {
	return projectsdk.ProjectInvitation{
		ID:          p.ID,
		Email:       p.Email,
		Status:      string(p.Status),
		InvitedBy:   toUserRef(p.Inviter),
		CreatedAt:   p.CreatedAt,
		ExpiresAt:   p.ExpiresAt,
		AcceptedAt:  p.AcceptedAt,
		RespondedAt: p.RespondedAt,
	}
}
