package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/pkg/cryptox"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
	AuthService       *service.AuthService
}

// decodeInvitationRequest reads {projectId, email}. The project id is
// required here; the email is validated by the service.
func decodeInvitationRequest(w http.ResponseWriter, r *http.Request) (projectsdk.InvitationRequest, bool) {
	var req projectsdk.InvitationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return req, false
	}
	if strings.TrimSpace(req.ProjectID) == "" {
		writeBadRequest(w, "projectId is required")
		return req, false
	}
	if strings.TrimSpace(req.Email) == "" {
		writeBadRequest(w, "email is required")
		return req, false
	}
	return req, true
}

// writeSendResult writes 200 when the email went out and 207 when only the
// invitation was stored. The 207 body shows a redacted token.
func writeSendResult(w http.ResponseWriter, res service.SendResult, sentMsg, partialMsg string) {
	brief := projectsdk.InvitationBrief{
		Email:        res.Invitation.Email,
		ProjectTitle: res.ProjectTitle,
		ExpiresAt:    res.Invitation.ExpiresAt,
	}

	if res.EmailSent {
		brief.MessageID = res.MessageID
		httpx.WriteJSON(w, http.StatusOK, projectsdk.SendInvitationResponse{
			Success:    true,
			Message:    sentMsg,
			EmailSent:  true,
			Invitation: brief,
		})
		return
	}

	brief.Token = cryptox.RedactToken(res.Invitation.Token)
	resp := projectsdk.SendInvitationResponse{
		Success:    false,
		Message:    partialMsg,
		EmailSent:  false,
		Invitation: brief,
	}
	if res.EmailError != nil {
		resp.Error = res.EmailError.Error()
	}
	httpx.WriteJSON(w, http.StatusMultiStatus, resp)
}

// HandleSend godoc
//
//	@Summary		Send invitation
//	@Description	Owner only. Creates a pending invitation valid for 7 days and emails the accept link.
//	@Description	207 means the invitation was stored but the email could not be sent.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectsdk.InvitationRequest		true	"projectId, email"
//	@Success		200		{object}	projectsdk.SendInvitationResponse
//	@Success		207		{object}	projectsdk.SendInvitationResponse	"stored, email failed"
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		403		{object}	projectsdk.ErrorResponse
//	@Failure		404		{object}	projectsdk.ErrorResponse
//	@Failure		409		{object}	projectsdk.ErrorResponse	"already a member or already invited"
//	@Security		BearerAuth
//	@Router			/v1/invitations/send [post].
func (h *InvitationsHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	req, ok := decodeInvitationRequest(w, r)
	if !ok {
		return
	}

	res, err := h.InvitationService.Create(r.Context(), req.ProjectID, userID, req.Email)
	if err != nil {
		writeServiceError(w, r, err, "send invitation")
		return
	}

	writeSendResult(w, res, "Invitation sent successfully", "Invitation saved but email could not be sent")
}

// HandleAccept godoc
//
//	@Summary		Accept invitation
//	@Description	The caller's registered email must match the invitation. Joins the project as a member.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	projectsdk.AcceptInvitationResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse	"invalid_invitation"
//	@Failure		403		{object}	projectsdk.ErrorResponse	"wrong recipient"
//	@Failure		409		{object}	projectsdk.ErrorResponse	"already a member"
//	@Failure		410		{object}	projectsdk.ErrorResponse	"invitation_expired"
//	@Security		BearerAuth
//	@Router			/v1/invitations/accept/{token} [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	summary, err := h.InvitationService.Accept(r.Context(), r.PathValue("token"), userID)
	if err != nil {
		writeServiceError(w, r, err, "accept invitation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projectsdk.AcceptInvitationResponse{
		Success: true,
		Message: "Invitation accepted. Welcome to the team!",
		Project: projectsdk.ProjectSummary{
			ID:          summary.ID,
			Title:       summary.Title,
			Description: summary.Description,
			Owner:       summary.OwnerName,
		},
	})
}

// HandleDecline godoc
//
//	@Summary		Decline invitation
//	@Description	Marks the caller's pending invitation as rejected.
//	@Tags			Invitations
//	@Param			token	path	string	true	"Invitation token"
//	@Success		204
//	@Failure		400	{object}	projectsdk.ErrorResponse	"invalid_invitation"
//	@Failure		403	{object}	projectsdk.ErrorResponse	"wrong recipient"
//	@Failure		410	{object}	projectsdk.ErrorResponse	"invitation_expired"
//	@Security		BearerAuth
//	@Router			/v1/invitations/decline/{token} [post].
func (h *InvitationsHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.InvitationService.Decline(r.Context(), r.PathValue("token"), userID); err != nil {
		writeServiceError(w, r, err, "decline invitation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandlePending godoc
//
//	@Summary		Pending invitations
//	@Description	Unexpired pending invitations addressed to the caller's email.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	projectsdk.PendingInvitationsResponse
//	@Failure		401	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations/pending [get].
func (h *InvitationsHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list pending invitations")
		return
	}

	list, err := h.InvitationService.ListPending(r.Context(), user.Email)
	if err != nil {
		writeServiceError(w, r, err, "list pending invitations")
		return
	}

	out := projectsdk.PendingInvitationsResponse{
		Count:       len(list),
		Invitations: make([]projectsdk.PendingInvitation, 0, len(list)),
	}
	for _, p := range list {
		out.Invitations = append(out.Invitations, toPendingInvitation(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleProject godoc
//
//	@Summary		Project invitations
//	@Description	Owner only. Every invitation of the project with the team.
//	@Tags			Invitations
//	@Produce		json
//	@Param			projectId	path		string	true	"Project ID"
//	@Success		200			{object}	projectsdk.ProjectInvitationsResponse
//	@Failure		403			{object}	projectsdk.ErrorResponse
//	@Failure		404			{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations/project/{projectId} [get].
func (h *InvitationsHandler) HandleProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "projectId", "project")
	if !ok {
		return
	}

	pi, err := h.InvitationService.ListForProject(r.Context(), projectID, userID)
	if err != nil {
		writeServiceError(w, r, err, "list project invitations")
		return
	}

	out := projectsdk.ProjectInvitationsResponse{
		ProjectID:    pi.ProjectID,
		ProjectTitle: pi.ProjectTitle,
		Invitations:  make([]projectsdk.ProjectInvitation, 0, len(pi.Invitations)),
		TeamMembers:  toMembers(pi.Members),
	}
	for _, inv := range pi.Invitations {
		out.Invitations = append(out.Invitations, toProjectInvitation(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleResend godoc
//
//	@Summary		Resend invitation
//	@Description	Owner only. Extends the pending invitation by 7 days and emails a reminder with the same link.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectsdk.InvitationRequest		true	"projectId, email"
//	@Success		200		{object}	projectsdk.SendInvitationResponse
//	@Success		207		{object}	projectsdk.SendInvitationResponse	"renewed, email failed"
//	@Failure		403		{object}	projectsdk.ErrorResponse
//	@Failure		404		{object}	projectsdk.ErrorResponse	"no pending invitation"
//	@Security		BearerAuth
//	@Router			/v1/invitations/resend [post].
func (h *InvitationsHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	req, ok := decodeInvitationRequest(w, r)
	if !ok {
		return
	}

	res, err := h.InvitationService.Resend(r.Context(), req.ProjectID, userID, req.Email)
	if err != nil {
		writeServiceError(w, r, err, "resend invitation")
		return
	}

	writeSendResult(w, res, "Invitation resent successfully", "Invitation updated but email could not be sent")
}

// HandleCancel godoc
//
//	@Summary		Cancel invitation
//	@Description	Owner only. Deletes the pending invitation for the email.
//	@Tags			Invitations
//	@Accept			json
//	@Param			request	body	projectsdk.InvitationRequest	true	"projectId, email"
//	@Success		204
//	@Failure		403	{object}	projectsdk.ErrorResponse
//	@Failure		404	{object}	projectsdk.ErrorResponse	"no pending invitation"
//	@Security		BearerAuth
//	@Router			/v1/invitations/cancel [delete].
func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	req, ok := decodeInvitationRequest(w, r)
	if !ok {
		return
	}

	if err := h.InvitationService.Cancel(r.Context(), req.ProjectID, userID, req.Email); err != nil {
		writeServiceError(w, r, err, "cancel invitation")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleTestEmail godoc
//
//	@Summary		Send a test email
//	@Description	Mails the caller through the configured transport to check delivery settings.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	projectsdk.TestEmailResponse
//	@Failure		500	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations/test-email [post].
func (h *InvitationsHandler) HandleTestEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	id, err := h.InvitationService.SendTestEmail(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrEmailDelivery) {
			httpx.WriteError(w, http.StatusInternalServerError, projectsdk.ErrorCodeServerError, err.Error())
			return
		}
		writeServiceError(w, r, err, "send test email")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projectsdk.TestEmailResponse{
		Message:   "Test email sent",
		MessageID: id,
	})
}
