package projectsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/projects", nil)
	if err != nil {
		return nil, err
	}

	var out []ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateProject(ctx context.Context, req ProjectRequest) (*ProjectResponse, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/projects", req)
	if err != nil {
		return nil, err
	}

	var out ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetProject(ctx context.Context, id string) (*ProjectResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProject(ctx context.Context, id string, req ProjectUpdateRequest) (*ProjectResponse, error) {
	resp, err := s.do(ctx, http.MethodPut, "/v1/projects/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out ProjectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteProject(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/projects/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
