package http

import (
	"net/http"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/pkg/httpx"
	"github.com/aussiebroadwan/projecthub/pkg/projectsdk"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList godoc
//
//	@Summary		List projects
//	@Description	Projects the caller owns or is a member of, newest first
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}		projectsdk.ProjectResponse
//	@Failure		401	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	projects, err := h.ProjectService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "list projects")
		return
	}

	out := make([]projectsdk.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create project
//	@Description	The caller becomes owner. Registered users listed in teamMembers join as members.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		projectsdk.ProjectRequest	true	"title, description, teamMembers"
//	@Success		201		{object}	projectsdk.ProjectResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		401		{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req projectsdk.ProjectRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	d, err := h.ProjectService.Create(r.Context(), userID, req.Title, req.Description, req.TeamMembers)
	if err != nil {
		writeServiceError(w, r, err, "create project")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(d))
}

// HandleGet godoc
//
//	@Summary		Get project
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	projectsdk.ProjectResponse
//	@Failure		403	{object}	projectsdk.ErrorResponse
//	@Failure		404	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id", "project")
	if !ok {
		return
	}

	d, err := h.ProjectService.Get(r.Context(), projectID, userID)
	if err != nil {
		writeServiceError(w, r, err, "load project")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(d))
}

// HandleUpdate godoc
//
//	@Summary		Update project
//	@Description	Owner only. Omitted fields are unchanged.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Project ID"
//	@Param			request	body		projectsdk.ProjectUpdateRequest	true	"title, description"
//	@Success		200		{object}	projectsdk.ProjectResponse
//	@Failure		400		{object}	projectsdk.ErrorResponse
//	@Failure		403		{object}	projectsdk.ErrorResponse
//	@Failure		404		{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id", "project")
	if !ok {
		return
	}

	var req projectsdk.ProjectUpdateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	d, err := h.ProjectService.Update(r.Context(), projectID, userID, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "update project")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(d))
}

// HandleDelete godoc
//
//	@Summary		Delete project
//	@Description	Owner only. Removes the team, invitations and tickets too.
//	@Tags			Projects
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		403	{object}	projectsdk.ErrorResponse
//	@Failure		404	{object}	projectsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id", "project")
	if !ok {
		return
	}

	if err := h.ProjectService.Delete(r.Context(), projectID, userID); err != nil {
		writeServiceError(w, r, err, "delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
