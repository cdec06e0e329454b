package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	bob := e.user(t, "Bob", "bob@x.com")

	d, err := e.projects.Create(ctx, alice.ID, " Apollo ", "Moon", []string{
		"BOB@x.com", "bob@x.com", "alice@x.com", "ghost@x.com", "garbage",
	})
	require.NoError(t, err)
	require.Equal(t, "Apollo", d.Title)
	require.Equal(t, alice.Ref(), d.Owner)
	require.Len(t, d.Members, 1)
	require.Equal(t, bob.ID, d.Members[0].User.ID)
	require.Equal(t, domain.RoleMember, d.Members[0].Role)

	_, err = e.projects.Create(ctx, alice.ID, "", "Moon", nil)
	require.ErrorIs(t, err, ErrInvalidProject)
	_, err = e.projects.Create(ctx, alice.ID, "Apollo", "  ", nil)
	require.ErrorIs(t, err, ErrInvalidProject)
}

func TestProjectAccess(t *testing.T) {
	ctx := context.Background()
	e := memEnv(t)

	alice := e.user(t, "Alice", "alice@x.com")
	bob := e.user(t, "Bob", "bob@x.com")
	carol := e.user(t, "Carol", "carol@x.com")

	first := e.project(t, alice, "First", bob.Email)
	e.clock.Advance(time.Minute)
	second := e.project(t, bob, "Second")

	t.Run("list includes owned and joined, newest first", func(t *testing.T) {
		list, err := e.projects.List(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)

		list, err = e.projects.List(ctx, carol.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("get", func(t *testing.T) {
		_, err := e.projects.Get(ctx, first.ID, bob.ID)
		require.NoError(t, err)

		_, err = e.projects.Get(ctx, first.ID, carol.ID)
		require.ErrorIs(t, err, ErrProjectAccessDenied)

		_, err = e.projects.Get(ctx, "missing", alice.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("update is owner only and partial", func(t *testing.T) {
		title := "Renamed"
		_, err := e.projects.Update(ctx, first.ID, bob.ID, &title, nil)
		require.ErrorIs(t, err, ErrNotProjectOwner)

		e.clock.Advance(time.Minute)
		d, err := e.projects.Update(ctx, first.ID, alice.ID, &title, nil)
		require.NoError(t, err)
		require.Equal(t, "Renamed", d.Title)
		require.Equal(t, first.Description, d.Description)
		require.True(t, d.UpdatedAt.After(first.UpdatedAt))

		blank := " "
		_, err = e.projects.Update(ctx, first.ID, alice.ID, nil, &blank)
		require.ErrorIs(t, err, ErrInvalidProject)
	})

	t.Run("delete cascades", func(t *testing.T) {
		_, err := e.invites.Create(ctx, first.ID, alice.ID, carol.Email)
		require.NoError(t, err)

		require.ErrorIs(t, e.projects.Delete(ctx, first.ID, bob.ID), ErrNotProjectOwner)
		require.NoError(t, e.projects.Delete(ctx, first.ID, alice.ID))

		_, err = e.projects.Get(ctx, first.ID, alice.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)

		pending, err := e.invites.ListPending(ctx, carol.Email)
		require.NoError(t, err)
		require.Empty(t, pending)
	})
}
