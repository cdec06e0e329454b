package projectsdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) CreateTicket(ctx context.Context, req TicketRequest) (*TicketResponse, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/tickets", req)
	if err != nil {
		return nil, err
	}

	var out TicketResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMyTickets returns the tickets the caller created.
func (s *Session) ListMyTickets(ctx context.Context) ([]TicketResponse, error) {
	return s.listTickets(ctx, "/v1/tickets/all")
}

func (s *Session) ListProjectTickets(ctx context.Context, projectID string) ([]TicketResponse, error) {
	return s.listTickets(ctx, "/v1/tickets/project/"+url.PathEscape(projectID))
}

func (s *Session) listTickets(ctx context.Context, path string) ([]TicketResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out []TicketResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateTicket(ctx context.Context, id string, req TicketUpdateRequest) (*TicketResponse, error) {
	resp, err := s.do(ctx, http.MethodPut, "/v1/tickets/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out TicketResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteTicket(ctx context.Context, id string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/v1/tickets/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
