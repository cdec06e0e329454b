package projecthub_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := projectsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	registered := register(t, client, "Alice", "Alice@X.com")
	require.Equal(t, "alice@x.com", registered.User().Email)

	session, err := client.Login(ctx, "alice@x.com", testPassword)
	require.NoError(t, err)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, registered.User().ID, me.ID)

	_, err = client.Login(ctx, "alice@x.com", "wrong password")
	assertAPIError(t, err, http.StatusUnauthorized, projectsdk.ErrorCodeUnauthorized)

	_, err = client.Register(ctx, projectsdk.RegisterRequest{Name: "Again", Email: "alice@x.com", Password: testPassword})
	assertAPIError(t, err, http.StatusConflict, projectsdk.ErrorCodeConflict)
}

func TestProjectsAndTickets(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := projectsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	alice := register(t, client, "Alice", "alice@x.com")
	bob := register(t, client, "Bob", "bob@x.com")

	project, err := alice.CreateProject(ctx, projectsdk.ProjectRequest{
		Title:       "Apollo",
		Description: "Moonshot",
		TeamMembers: []string{"bob@x.com"},
	})
	require.NoError(t, err)
	require.Len(t, project.TeamMembers, 1)

	bobID := bob.User().ID
	ticket, err := bob.CreateTicket(ctx, projectsdk.TicketRequest{
		ProjectID: project.ID,
		Title:     "Build the rocket",
		Assignee:  &bobID,
		Priority:  "High",
	})
	require.NoError(t, err)
	require.Equal(t, "High", ticket.Priority)
	require.Equal(t, "To Do", ticket.Status)

	done := "Done"
	updated, err := alice.UpdateTicket(ctx, ticket.ID, projectsdk.TicketUpdateRequest{Status: &done})
	require.NoError(t, err)
	require.Equal(t, "Done", updated.Status)

	mine, err := bob.ListMyTickets(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := alice.ListProjectTickets(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, alice.DeleteProject(ctx, project.ID))

	_, err = bob.GetProject(ctx, project.ID)
	assertAPIError(t, err, http.StatusNotFound, projectsdk.ErrorCodeNotFound)
	mine, err = bob.ListMyTickets(ctx)
	require.NoError(t, err)
	require.Empty(t, mine)
}
