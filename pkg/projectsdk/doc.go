/*
Package projectsdk is a typed HTTP client for the projecthub API.

Create an SDKClient for public endpoints and to open a Session:

	client := projectsdk.NewSDKClient("http://localhost:8080")

	health, err := client.GetReadiness(ctx)

	session, err := client.Login(ctx, "alice@example.com", "correct horse")

A Session carries the bearer token and calls the authenticated endpoints:

	project, err := session.CreateProject(ctx, projectsdk.ProjectRequest{
		Title:       "Apollo",
		Description: "Moon landing",
	})

	sent, err := session.SendInvitation(ctx, project.ID, "bob@example.com")

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and the
stable error code:

	_, err := session.AcceptInvitation(ctx, token)
	if projectsdk.IsCode(err, projectsdk.ErrorCodeInvitationExpired) {
		// ask the owner to resend
	}

Send and resend return *PartialSuccessError alongside the response when the
invitation was stored but its email could not be delivered.
*/
package projectsdk
