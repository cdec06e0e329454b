package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/stretchr/testify/require"
)

func TestInvitationCreate(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	carol := e.user(t, "Carol", "carol@x.com")
	member := e.user(t, "Dave", "dave@x.com")
	p := e.project(t, alice, "Apollo", member.Email)

	t.Run("sends pending invitation", func(t *testing.T) {
		res, err := e.invites.Create(ctx, p.ID, alice.ID, "  Bob@X.com ")
		require.NoError(t, err)
		require.True(t, res.EmailSent)
		require.NoError(t, res.EmailError)
		require.Equal(t, "Apollo", res.ProjectTitle)

		inv := res.Invitation
		require.Equal(t, "bob@x.com", inv.Email)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Len(t, inv.Token, 43)
		require.Equal(t, e.clock.Now(), inv.CreatedAt)
		require.Equal(t, inv.CreatedAt.Add(7*24*time.Hour), inv.ExpiresAt)

		sent := e.mail.Sent()
		require.Len(t, sent, 1)
		require.Equal(t, "bob@x.com", sent[0].To)
		require.Contains(t, sent[0].Subject, `"Apollo"`)
		require.Contains(t, sent[0].HTML, "https://app.example.com/accept-invitation/"+inv.Token)
		require.Equal(t, "Alice via Project Manager", sent[0].FromName)
	})

	t.Run("second invite conflicts with existing timestamps", func(t *testing.T) {
		first, err := e.store.Invitations().GetPendingByProjectEmail(ctx, p.ID, "bob@x.com")
		require.NoError(t, err)

		_, err = e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
		require.ErrorIs(t, err, ErrAlreadyInvited)

		var dup *DuplicateInvitationError
		require.True(t, errors.As(err, &dup))
		require.True(t, first.CreatedAt.Equal(dup.CreatedAt))
		require.True(t, first.ExpiresAt.Equal(dup.ExpiresAt))
	})

	tests := []struct {
		name    string
		project string
		caller  string
		email   string
		wantErr error
	}{
		{"malformed email", p.ID, alice.ID, "not-an-email", ErrInvalidEmail},
		{"missing domain dot", p.ID, alice.ID, "bob@x", ErrInvalidEmail},
		{"unknown project", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", alice.ID, "bob@x.com", ErrProjectNotFound},
		{"non-owner", p.ID, carol.ID, "erin@x.com", ErrNotProjectOwner},
		{"team member", p.ID, alice.ID, "dave@x.com", ErrAlreadyMember},
		{"owner", p.ID, alice.ID, "alice@x.com", ErrAlreadyMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.invites.Create(ctx, tt.project, tt.caller, tt.email)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInvitationCreateEmailFailureIsPartialSuccess(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	p := e.project(t, alice, "Apollo")
	e.mail.Fail(errSMTPDown)

	res, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)
	require.False(t, res.EmailSent)
	require.ErrorIs(t, res.EmailError, errSMTPDown)

	stored, err := e.store.Invitations().GetPendingByToken(ctx, res.Invitation.Token)
	require.NoError(t, err)
	require.Equal(t, res.Invitation.ID, stored.ID)
}

func TestInvitationAcceptScenario(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	bob := e.user(t, "Bob", "bob@x.com")
	p := e.project(t, alice, "Apollo")

	res, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)
	token := res.Invitation.Token

	e.clock.Advance(time.Hour)

	summary, err := e.invites.Accept(ctx, token, bob.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ProjectSummary{
		ID:          p.ID,
		Title:       "Apollo",
		Description: p.Description,
		OwnerName:   "Alice",
	}, summary)

	members, err := e.store.Members().ListMembers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, bob.ID, members[0].User.ID)
	require.Equal(t, domain.RoleMember, members[0].Role)
	require.WithinDuration(t, e.clock.Now(), members[0].JoinedAt, 0)

	list, err := e.invites.ListForProject(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	inv := list.Invitations[0]
	require.Equal(t, domain.InvitationAccepted, inv.Status)
	require.NotNil(t, inv.AcceptedAt)
	require.WithinDuration(t, e.clock.Now(), *inv.AcceptedAt, 0)

	// Second accept cannot find a pending invitation.
	_, err = e.invites.Accept(ctx, token, bob.ID)
	require.ErrorIs(t, err, ErrInvitationInvalid)

	members, err = e.store.Members().ListMembers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestInvitationAcceptFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		e := memEnv(t)
		bob := e.user(t, "Bob", "bob@x.com")

		_, err := e.invites.Accept(ctx, "does-not-exist", bob.ID)
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})

	t.Run("expired transitions then stays terminal", func(t *testing.T) {
		e := memEnv(t)
		alice := e.user(t, "Alice", "alice@x.com")
		bob := e.user(t, "Bob", "bob@x.com")
		p := e.project(t, alice, "Apollo")

		res, err := e.invites.Create(ctx, p.ID, alice.ID, bob.Email)
		require.NoError(t, err)

		e.clock.Advance(7*24*time.Hour + time.Second)

		_, err = e.invites.Accept(ctx, res.Invitation.Token, bob.ID)
		require.ErrorIs(t, err, ErrInvitationExpired)

		list, err := e.invites.ListForProject(ctx, p.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, list.Invitations[0].Status)

		_, err = e.invites.Accept(ctx, res.Invitation.Token, bob.ID)
		require.ErrorIs(t, err, ErrInvitationInvalid)

		ok, err := e.store.Members().IsMember(ctx, p.ID, bob.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("exactly at expiry still accepts", func(t *testing.T) {
		e := memEnv(t)
		alice := e.user(t, "Alice", "alice@x.com")
		bob := e.user(t, "Bob", "bob@x.com")
		p := e.project(t, alice, "Apollo")

		res, err := e.invites.Create(ctx, p.ID, alice.ID, bob.Email)
		require.NoError(t, err)

		e.clock.Advance(7 * 24 * time.Hour)

		_, err = e.invites.Accept(ctx, res.Invitation.Token, bob.ID)
		require.NoError(t, err)
	})

	t.Run("wrong recipient changes nothing", func(t *testing.T) {
		e := memEnv(t)
		alice := e.user(t, "Alice", "alice@x.com")
		carol := e.user(t, "Carol", "carol@x.com")
		p := e.project(t, alice, "Apollo")

		res, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
		require.NoError(t, err)

		_, err = e.invites.Accept(ctx, res.Invitation.Token, carol.ID)
		require.ErrorIs(t, err, ErrWrongRecipient)

		still, err := e.store.Invitations().GetPendingByToken(ctx, res.Invitation.Token)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, still.Status)
	})

	t.Run("existing member consumes invitation", func(t *testing.T) {
		e := memEnv(t)
		alice := e.user(t, "Alice", "alice@x.com")
		p := e.project(t, alice, "Apollo")

		res, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
		require.NoError(t, err)

		// Bob registers and joins through another path before accepting.
		bob := e.user(t, "Bob", "bob@x.com")
		require.NoError(t, e.store.Members().AddMember(ctx, domain.Member{
			ProjectID: p.ID,
			User:      bob.Ref(),
			Role:      domain.RoleMember,
			JoinedAt:  e.clock.Now(),
		}))

		_, err = e.invites.Accept(ctx, res.Invitation.Token, bob.ID)
		require.ErrorIs(t, err, ErrAlreadyMember)

		list, err := e.invites.ListForProject(ctx, p.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, list.Invitations[0].Status)
		require.Len(t, list.Members, 1)
	})
}

func TestInvitationConcurrentAccept(t *testing.T) {
	ctx := context.Background()
	e := fileEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	bob := e.user(t, "Bob", "bob@x.com")
	p := e.project(t, alice, "Apollo")

	res, err := e.invites.Create(ctx, p.ID, alice.ID, bob.Email)
	require.NoError(t, err)

	const workers = 8
	var (
		wg   sync.WaitGroup
		errs = make(chan error, workers)
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.invites.Accept(ctx, res.Invitation.Token, bob.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins int
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, ErrInvitationInvalid)
	}
	require.Equal(t, 1, wins)

	members, err := e.store.Members().ListMembers(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestInvitationConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	e := fileEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	p := e.project(t, alice, "Apollo")

	const workers = 8
	var (
		wg   sync.WaitGroup
		errs = make(chan error, workers)
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins int
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, ErrAlreadyInvited)
	}
	require.Equal(t, 1, wins)

	list, err := e.invites.ListForProject(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
}

func TestInvitationDecline(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	bob := e.user(t, "Bob", "bob@x.com")
	carol := e.user(t, "Carol", "carol@x.com")
	p := e.project(t, alice, "Apollo")

	res, err := e.invites.Create(ctx, p.ID, alice.ID, bob.Email)
	require.NoError(t, err)

	require.ErrorIs(t, e.invites.Decline(ctx, res.Invitation.Token, carol.ID), ErrWrongRecipient)
	require.NoError(t, e.invites.Decline(ctx, res.Invitation.Token, bob.ID))

	list, err := e.invites.ListForProject(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationRejected, list.Invitations[0].Status)
	require.NotNil(t, list.Invitations[0].RespondedAt)
	require.Nil(t, list.Invitations[0].AcceptedAt)

	_, err = e.invites.Accept(ctx, res.Invitation.Token, bob.ID)
	require.ErrorIs(t, err, ErrInvitationInvalid)

	// A declined invitation no longer blocks a fresh one.
	_, err = e.invites.Create(ctx, p.ID, alice.ID, bob.Email)
	require.NoError(t, err)
}

func TestInvitationListPending(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	older := e.project(t, alice, "Older")
	e.clock.Advance(time.Minute)
	newer := e.project(t, alice, "Newer")
	e.clock.Advance(time.Minute)
	stale := e.project(t, alice, "Stale")

	// Invite to the newer project first; order follows project creation.
	_, err := e.invites.Create(ctx, stale.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)
	e.clock.Advance(3 * 24 * time.Hour)
	_, err = e.invites.Create(ctx, newer.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)
	_, err = e.invites.Create(ctx, older.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)
	_, err = e.invites.Create(ctx, older.ID, alice.ID, "someone@x.com")
	require.NoError(t, err)

	// The first invitation is past expiry and drops out.
	e.clock.Advance(5 * 24 * time.Hour)

	list, err := e.invites.ListPending(ctx, "BOB@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Older", list[0].ProjectTitle)
	require.Equal(t, "Newer", list[1].ProjectTitle)
	require.Equal(t, alice.ID, list[0].InvitedBy.ID)
	require.Equal(t, "Alice", list[0].InvitedBy.Name)
	require.NotEmpty(t, list[0].Token)

	_, err = e.invites.ListPending(ctx, "nope")
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestInvitationResend(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	p := e.project(t, alice, "Apollo")

	res, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)

	e.clock.Advance(3 * 24 * time.Hour)

	again, err := e.invites.Resend(ctx, p.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)
	require.True(t, again.EmailSent)
	require.Equal(t, res.Invitation.Token, again.Invitation.Token)
	require.WithinDuration(t, e.clock.Now().Add(7*24*time.Hour), again.Invitation.ExpiresAt, 0)
	require.True(t, res.Invitation.CreatedAt.Equal(again.Invitation.CreatedAt))

	sent := e.mail.Sent()
	require.Len(t, sent, 2)
	require.True(t, strings.HasPrefix(sent[1].Subject, "Reminder: "))
	require.Contains(t, sent[1].HTML, res.Invitation.Token)

	t.Run("email failure keeps the renewal", func(t *testing.T) {
		e.mail.Fail(errSMTPDown)
		t.Cleanup(func() { e.mail.Fail(nil) })

		e.clock.Advance(time.Hour)
		partial, err := e.invites.Resend(ctx, p.ID, alice.ID, "bob@x.com")
		require.NoError(t, err)
		require.False(t, partial.EmailSent)
		require.ErrorIs(t, partial.EmailError, errSMTPDown)
		require.WithinDuration(t, e.clock.Now().Add(7*24*time.Hour), partial.Invitation.ExpiresAt, 0)
	})

	t.Run("no pending invitation", func(t *testing.T) {
		_, err := e.invites.Resend(ctx, p.ID, alice.ID, "nobody@x.com")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})
}

func TestInvitationCancel(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	bob := e.user(t, "Bob", "bob@x.com")
	p := e.project(t, alice, "Apollo")

	_, err := e.invites.Create(ctx, p.ID, alice.ID, "carol@x.com")
	require.NoError(t, err)
	accepted, err := e.invites.Create(ctx, p.ID, alice.ID, bob.Email)
	require.NoError(t, err)
	_, err = e.invites.Accept(ctx, accepted.Invitation.Token, bob.ID)
	require.NoError(t, err)

	require.NoError(t, e.invites.Cancel(ctx, p.ID, alice.ID, "carol@x.com"))
	require.ErrorIs(t, e.invites.Cancel(ctx, p.ID, alice.ID, "carol@x.com"), ErrInvitationNotFound)

	// Accepted history is not cancellable.
	require.ErrorIs(t, e.invites.Cancel(ctx, p.ID, alice.ID, bob.Email), ErrInvitationNotFound)

	list, err := e.invites.ListForProject(ctx, p.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, list.Invitations, 1)
	require.Equal(t, bob.Email, list.Invitations[0].Email)
}

func TestInvitationOwnerOnlyOperations(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	carol := e.user(t, "Carol", "carol@x.com")
	p := e.project(t, alice, "Apollo", carol.Email)

	_, err := e.invites.Create(ctx, p.ID, alice.ID, "bob@x.com")
	require.NoError(t, err)

	// Team members are not owners either.
	_, err = e.invites.Resend(ctx, p.ID, carol.ID, "bob@x.com")
	require.ErrorIs(t, err, ErrNotProjectOwner)

	err = e.invites.Cancel(ctx, p.ID, carol.ID, "bob@x.com")
	require.ErrorIs(t, err, ErrNotProjectOwner)

	// Ownership is checked before the address is looked at.
	_, err = e.invites.Resend(ctx, p.ID, carol.ID, "not-an-email")
	require.ErrorIs(t, err, ErrNotProjectOwner)
	require.ErrorIs(t, e.invites.Cancel(ctx, p.ID, carol.ID, "not-an-email"), ErrNotProjectOwner)

	_, err = e.invites.Resend(ctx, p.ID, alice.ID, "not-an-email")
	require.ErrorIs(t, err, ErrInvitationNotFound)
	require.ErrorIs(t, e.invites.Cancel(ctx, p.ID, alice.ID, "not-an-email"), ErrInvitationNotFound)

	_, err = e.invites.ListForProject(ctx, p.ID, carol.ID)
	require.ErrorIs(t, err, ErrNotProjectOwner)

	_, err = e.invites.ListForProject(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", alice.ID)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestInvitationExpireStale(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	p := e.project(t, alice, "Apollo")

	_, err := e.invites.Create(ctx, p.ID, alice.ID, "old@x.com")
	require.NoError(t, err)
	e.clock.Advance(6 * 24 * time.Hour)
	fresh, err := e.invites.Create(ctx, p.ID, alice.ID, "new@x.com")
	require.NoError(t, err)
	e.clock.Advance(2 * 24 * time.Hour)

	n, err := e.invites.ExpireStale(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	still, err := e.store.Invitations().GetPendingByToken(ctx, fresh.Invitation.Token)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, still.Status)

	n, err = e.invites.ExpireStale(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSendTestEmail(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)
	alice := e.user(t, "Alice", "alice@x.com")

	id, err := e.invites.SendTestEmail(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "msg-1", id)
	require.Equal(t, "Test Email from Project Manager", e.mail.Sent()[0].Subject)

	e.mail.Fail(errSMTPDown)
	_, err = e.invites.SendTestEmail(ctx, alice.ID)
	require.ErrorIs(t, err, ErrEmailDelivery)
	require.ErrorIs(t, err, errSMTPDown)
}
