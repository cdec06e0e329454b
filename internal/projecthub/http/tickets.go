package http

import (
	"net/http"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

type TicketsHandler struct {
	TicketService *service.TicketService
}

// HandleCreate godoc
//
//	@Summary		Create ticket
//	@Description	Caller must own or belong to the project. Priority defaults to Low and status to "To Do".
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectsdk.TicketRequest	true	"ticket"
//	@Success		201		{object}	projectsdk.TicketResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		403		{object}	projectsdk.ErrorResponse
//	@Failure		404		{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tickets [post].
func (h *TicketsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req projectsdk.TicketRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if req.ProjectID == "" {
		writeBadRequest(w, "projectId is required")
		return
	}

	t, err := h.TicketService.Create(r.Context(), userID, service.NewTicket{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.Assignee,
		Priority:    domain.TicketPriority(req.Priority),
		Status:      domain.TicketStatus(req.Status),
	})
	if err != nil {
		writeServiceError(w, r, err, "create ticket")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTicketResponse(t))
}

// HandleListMine godoc
//
//	@Summary		Tickets created by the caller
//	@Tags			Tickets
//	@Produce		json
//	@Success		200	{array}		projectsdk.TicketResponse
//	@Failure		401	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tickets/all [get].
func (h *TicketsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	tickets, err := h.TicketService.ListCreatedBy(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list tickets")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTicketResponses(tickets))
}

// HandleListByProject godoc
//
//	@Summary		Tickets of a project
//	@Tags			Tickets
//	@Produce		json
//	@Param			projectId	path		string	true	"Project ID"
//	@Success		200			{array}		projectsdk.TicketResponse
//	@Failure		403			{object}	projectsdk.ErrorResponse
//	@Failure		404			{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tickets/project/{projectId} [get].
func (h *TicketsHandler) HandleListByProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "projectId", "project")
	if !ok {
		return
	}

	tickets, err := h.TicketService.ListByProject(r.Context(), projectID, userID)
	if err != nil {
		writeServiceError(w, r, err, "list tickets")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTicketResponses(tickets))
}

// HandleUpdate godoc
//
//	@Summary		Update ticket
//	@Description	Omitted fields are unchanged. An empty assignee unassigns.
//	@Tags			Tickets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Ticket ID"
//	@Param			request	body		projectsdk.TicketUpdateRequest	true	"changes"
//	@Success		200		{object}	projectsdk.TicketResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		403		{object}	projectsdk.ErrorResponse
//	@Failure		404		{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tickets/{id} [put].
func (h *TicketsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	ticketID, ok := pathID(w, r, "id", "ticket")
	if !ok {
		return
	}

	var req projectsdk.TicketUpdateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	patch := domain.TicketPatch{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.Assignee,
	}
	if req.Priority != nil {
		p := domain.TicketPriority(*req.Priority)
		patch.Priority = &p
	}
	if req.Status != nil {
		s := domain.TicketStatus(*req.Status)
		patch.Status = &s
	}

	t, err := h.TicketService.Update(r.Context(), ticketID, userID, patch)
	if err != nil {
		writeServiceError(w, r, err, "update ticket")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTicketResponse(t))
}

// HandleDelete godoc
//
//	@Summary		Delete ticket
//	@Tags			Tickets
//	@Param			id	path	string	true	"Ticket ID"
//	@Success		204
//	@Failure		403	{object}	projectsdk.ErrorResponse
//	@Failure		404	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/tickets/{id} [delete].
func (h *TicketsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	ticketID, ok := pathID(w, r, "id", "ticket")
	if !ok {
		return
	}

	if err := h.TicketService.Delete(r.Context(), ticketID, userID); err != nil {
		writeServiceError(w, r, err, "delete ticket")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
