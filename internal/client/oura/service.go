package oura

import "context"

type SleepService interface {
	List(ctx context.Context, params *ListParams) ([]Sleep, error)
}

type ActivityService interface {
	List(ctx context.Context, params *ListParams) ([]Activity, error)
}

type ReadinessService interface {
	List(ctx context.Context, params *ListParams) ([]Readiness, error)
}
