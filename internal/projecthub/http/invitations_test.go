package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
	"github.com/stretchr/testify/require"
)

func (s *testServer) invite(t *testing.T, owner account, projectID, email string) *projectsdk.SendInvitationResponse {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/v1/invitations/send", owner.Token, projectsdk.InvitationRequest{
		ProjectID: projectID,
		Email:     email,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[projectsdk.SendInvitationResponse](t, rec)
	return &resp
}

func (s *testServer) pending(t *testing.T, who account) projectsdk.PendingInvitationsResponse {
	t.Helper()

	rec := s.do(t, http.MethodGet, "/v1/invitations/pending", who.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[projectsdk.PendingInvitationsResponse](t, rec)
}

func TestInvitationAcceptFlow(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")

	sent := srv.invite(t, alice, p.ID, "Bob@Example.com")
	require.True(t, sent.Success)
	require.True(t, sent.EmailSent)
	require.Equal(t, "bob@example.com", sent.Invitation.Email)
	require.Equal(t, "Website", sent.Invitation.ProjectTitle)
	require.Equal(t, "msg-1", sent.Invitation.MessageID)
	require.Empty(t, sent.Invitation.Token)
	require.WithinDuration(t, srv.clock.Now().Add(7*24*time.Hour), sent.Invitation.ExpiresAt, 0)

	// Bob sees the invitation with its token; the mail carries the same link.
	list := srv.pending(t, bob)
	require.Equal(t, 1, list.Count)
	inv := list.Invitations[0]
	require.Equal(t, p.ID, inv.ProjectID)
	require.Equal(t, alice.ID, inv.InvitedBy.ID)
	require.NotEmpty(t, inv.Token)

	mails := srv.mail.Sent()
	require.Len(t, mails, 1)
	require.Equal(t, "bob@example.com", mails[0].To)
	require.Contains(t, mails[0].HTML, "https://app.example.com/accept-invitation/"+inv.Token)

	rec := srv.do(t, http.MethodPost, "/v1/invitations/accept/"+inv.Token, bob.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	accepted := decode[projectsdk.AcceptInvitationResponse](t, rec)
	require.True(t, accepted.Success)
	require.Equal(t, p.ID, accepted.Project.ID)
	require.Equal(t, "Alice", accepted.Project.Owner)

	// Second accept looks exactly like an unknown token.
	rec = srv.do(t, http.MethodPost, "/v1/invitations/accept/"+inv.Token, bob.Token, nil)
	replay := requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidInvitation)
	rec = srv.do(t, http.MethodPost, "/v1/invitations/accept/never-issued", bob.Token, nil)
	unknown := requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidInvitation)
	require.Equal(t, unknown.ErrorDescription, replay.ErrorDescription)

	rec = srv.do(t, http.MethodGet, "/v1/projects/"+p.ID, bob.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	project := decode[projectsdk.ProjectResponse](t, rec)
	require.Len(t, project.TeamMembers, 1)
	require.Equal(t, bob.ID, project.TeamMembers[0].User.ID)
	require.Equal(t, "member", project.TeamMembers[0].Role)

	require.Zero(t, srv.pending(t, bob).Count)
}

func TestInvitationSendConflicts(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")
	first := srv.invite(t, alice, p.ID, "carol@example.com")

	srv.clock.Advance(time.Hour)
	rec := srv.do(t, http.MethodPost, "/v1/invitations/send", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID,
		Email:     "CAROL@example.com",
	})
	dup := requireErrorCode(t, rec, http.StatusConflict, projectsdk.ErrorCodeConflict)
	require.NotNil(t, dup.ExistingInvitation)
	require.True(t, first.Invitation.ExpiresAt.Equal(dup.ExistingInvitation.ExpiresAt))
	require.True(t, dup.ExistingInvitation.SentAt.Before(srv.clock.Now()))

	// Inviting yourself hits the member check.
	rec = srv.do(t, http.MethodPost, "/v1/invitations/send", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID,
		Email:     "alice@example.com",
	})
	member := requireErrorCode(t, rec, http.StatusConflict, projectsdk.ErrorCodeConflict)
	require.Nil(t, member.ExistingInvitation)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/send", bob.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID,
		Email:     "dave@example.com",
	})
	requireErrorCode(t, rec, http.StatusForbidden, projectsdk.ErrorCodeForbidden)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/send", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID,
		Email:     "not-an-email",
	})
	requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/send", alice.Token, projectsdk.InvitationRequest{
		Email: "dave@example.com",
	})
	requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidRequest)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/send", alice.Token, projectsdk.InvitationRequest{
		ProjectID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		Email:     "dave@example.com",
	})
	requireErrorCode(t, rec, http.StatusNotFound, projectsdk.ErrorCodeNotFound)
}

func TestInvitationPartialSuccess(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")

	srv.mail.Fail(errors.New("smtp: connection refused"))

	rec := srv.do(t, http.MethodPost, "/v1/invitations/send", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID,
		Email:     "bob@example.com",
	})
	require.Equal(t, http.StatusMultiStatus, rec.Code, rec.Body.String())
	resp := decode[projectsdk.SendInvitationResponse](t, rec)
	require.False(t, resp.Success)
	require.False(t, resp.EmailSent)
	require.Contains(t, resp.Error, "connection refused")
	require.True(t, strings.HasSuffix(resp.Invitation.Token, "..."))

	// The invitation is stored and usable.
	list := srv.pending(t, bob)
	require.Equal(t, 1, list.Count)
	require.NotEqual(t, list.Invitations[0].Token, resp.Invitation.Token)
	require.True(t, strings.HasPrefix(list.Invitations[0].Token, strings.TrimSuffix(resp.Invitation.Token, "...")))

	// Resend with a dead transport is partial too.
	rec = srv.do(t, http.MethodPost, "/v1/invitations/resend", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID,
		Email:     "bob@example.com",
	})
	require.Equal(t, http.StatusMultiStatus, rec.Code, rec.Body.String())
}

func TestInvitationExpiredAccept(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")
	srv.invite(t, alice, p.ID, "bob@example.com")
	token := srv.pending(t, bob).Invitations[0].Token

	srv.clock.Advance(8 * 24 * time.Hour)
	require.Zero(t, srv.pending(t, bob).Count)

	rec := srv.do(t, http.MethodPost, "/v1/invitations/accept/"+token, bob.Token, nil)
	requireErrorCode(t, rec, http.StatusGone, projectsdk.ErrorCodeInvitationExpired)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/accept/"+token, bob.Token, nil)
	requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidInvitation)

	rec = srv.do(t, http.MethodGet, "/v1/invitations/project/"+p.ID, alice.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[projectsdk.ProjectInvitationsResponse](t, rec)
	require.Len(t, view.Invitations, 1)
	require.Equal(t, "expired", view.Invitations[0].Status)
	require.Empty(t, view.TeamMembers)
}

func TestInvitationWrongRecipient(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	mallory := srv.register(t, "Mallory", "mallory@example.com")
	p := srv.createProject(t, alice, "Website")
	srv.invite(t, alice, p.ID, "bob@example.com")
	token := srv.pending(t, bob).Invitations[0].Token

	rec := srv.do(t, http.MethodPost, "/v1/invitations/accept/"+token, mallory.Token, nil)
	requireErrorCode(t, rec, http.StatusForbidden, projectsdk.ErrorCodeForbidden)
	rec = srv.do(t, http.MethodPost, "/v1/invitations/decline/"+token, mallory.Token, nil)
	requireErrorCode(t, rec, http.StatusForbidden, projectsdk.ErrorCodeForbidden)

	// Nothing changed for the real recipient.
	rec = srv.do(t, http.MethodPost, "/v1/invitations/accept/"+token, bob.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestInvitationDecline(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")
	srv.invite(t, alice, p.ID, "bob@example.com")
	token := srv.pending(t, bob).Invitations[0].Token

	rec := srv.do(t, http.MethodPost, "/v1/invitations/decline/"+token, bob.Token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/v1/invitations/accept/"+token, bob.Token, nil)
	requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidInvitation)

	rec = srv.do(t, http.MethodGet, "/v1/invitations/project/"+p.ID, alice.Token, nil)
	view := decode[projectsdk.ProjectInvitationsResponse](t, rec)
	require.Equal(t, "rejected", view.Invitations[0].Status)
	require.NotNil(t, view.Invitations[0].RespondedAt)

	// A declined invitation does not block a new one.
	srv.invite(t, alice, p.ID, "bob@example.com")
}

func TestInvitationResendAndCancel(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")
	srv.invite(t, alice, p.ID, "bob@example.com")
	before := srv.pending(t, bob).Invitations[0]

	srv.clock.Advance(3 * 24 * time.Hour)
	rec := srv.do(t, http.MethodPost, "/v1/invitations/resend", bob.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID, Email: "bob@example.com",
	})
	requireErrorCode(t, rec, http.StatusForbidden, projectsdk.ErrorCodeForbidden)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/resend", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID, Email: "bob@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resent := decode[projectsdk.SendInvitationResponse](t, rec)
	require.WithinDuration(t, srv.clock.Now().Add(7*24*time.Hour), resent.Invitation.ExpiresAt, 0)

	after := srv.pending(t, bob).Invitations[0]
	require.Equal(t, before.Token, after.Token)
	require.True(t, after.ExpiresAt.After(before.ExpiresAt))
	require.Len(t, srv.mail.Sent(), 2)

	rec = srv.do(t, http.MethodDelete, "/v1/invitations/cancel", bob.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID, Email: "bob@example.com",
	})
	requireErrorCode(t, rec, http.StatusForbidden, projectsdk.ErrorCodeForbidden)

	rec = srv.do(t, http.MethodDelete, "/v1/invitations/cancel", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID, Email: "bob@example.com",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/v1/invitations/project/"+p.ID, alice.Token, nil)
	require.Empty(t, decode[projectsdk.ProjectInvitationsResponse](t, rec).Invitations)

	rec = srv.do(t, http.MethodDelete, "/v1/invitations/cancel", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID, Email: "bob@example.com",
	})
	requireErrorCode(t, rec, http.StatusNotFound, projectsdk.ErrorCodeNotFound)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/resend", alice.Token, projectsdk.InvitationRequest{
		ProjectID: p.ID, Email: "bob@example.com",
	})
	requireErrorCode(t, rec, http.StatusNotFound, projectsdk.ErrorCodeNotFound)

	rec = srv.do(t, http.MethodPost, "/v1/invitations/accept/"+before.Token, bob.Token, nil)
	requireErrorCode(t, rec, http.StatusBadRequest, projectsdk.ErrorCodeInvalidInvitation)
}

func TestProjectInvitationsOwnerOnly(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")
	p := srv.createProject(t, alice, "Website")
	srv.invite(t, alice, p.ID, "carol@example.com")

	rec := srv.do(t, http.MethodGet, "/v1/invitations/project/"+p.ID, bob.Token, nil)
	requireErrorCode(t, rec, http.StatusForbidden, projectsdk.ErrorCodeForbidden)

	rec = srv.do(t, http.MethodGet, "/v1/invitations/project/"+p.ID, alice.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[projectsdk.ProjectInvitationsResponse](t, rec)
	require.Equal(t, "Website", view.ProjectTitle)
	require.Len(t, view.Invitations, 1)
	require.Equal(t, "pending", view.Invitations[0].Status)
	require.Equal(t, "carol@example.com", view.Invitations[0].Email)
	require.NotContains(t, rec.Body.String(), `"token"`)
}

func TestSendTestEmail(t *testing.T) {
	srv := newTestServer(t)
	alice := srv.register(t, "Alice", "alice@example.com")

	rec := srv.do(t, http.MethodPost, "/v1/invitations/test-email", alice.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "msg-1", decode[projectsdk.TestEmailResponse](t, rec).MessageID)
	require.Equal(t, "alice@example.com", srv.mail.Sent()[0].To)

	srv.mail.Fail(errors.New("ses: throttled"))
	rec = srv.do(t, http.MethodPost, "/v1/invitations/test-email", alice.Token, nil)
	requireErrorCode(t, rec, http.StatusInternalServerError, projectsdk.ErrorCodeServerError)
}
