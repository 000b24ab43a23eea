package oura

import "context"

type activityService struct {
	client *Client
}

func (s *activityService) List(ctx context.Context, params *ListParams) ([]Activity, error) {
	const (
		route = "/activity"
		field = "activity"
	)
	return list[Activity](ctx, s.client, route, field, params)
}
