package oura

import "context"

type sleepService struct {
	client *Client
}

func (s *sleepService) List(ctx context.Context, params *ListParams) ([]Sleep, error) {
	const (
		route = "/sleep"
		field = "sleep"
	)
	return list[Sleep](ctx, s.client, route, field, params)
}
