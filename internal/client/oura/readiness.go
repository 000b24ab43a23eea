package oura

import "context"

type readinessService struct {
	client *Client
}

func (s *readinessService) List(ctx context.Context, params *ListParams) ([]Readiness, error) {
	const (
		route = "/readiness"
		field = "readiness"
	)
	return list[Readiness](ctx, s.client, route, field, params)
}
