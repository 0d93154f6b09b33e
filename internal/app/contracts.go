package app

import (
	"context"

	"github.com/awmpietro/algoviz/internal/strategy"
	"github.com/awmpietro/algoviz/internal/trace"
)

// SolveService is what the transports depend on.
type SolveService interface {
	Solve(ctx context.Context, family, variant string, body []byte) (*trace.Result, error)
}

// Resolver maps route segments to an algorithm; strategy.Resolve by default.
type Resolver func(family, variant string) (strategy.Algorithm, error)
