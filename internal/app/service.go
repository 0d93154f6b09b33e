package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/awmpietro/algoviz/internal/model"
	"github.com/awmpietro/algoviz/internal/observability"
	"github.com/awmpietro/algoviz/internal/strategy"
	"github.com/awmpietro/algoviz/internal/trace"
)

var ErrInvalidJSON = errors.New("invalid json")

// DefaultMaxTraceCells bounds the trace of a single solve. At a few hundred
// bytes per step it keeps one request well under 100 MB.
const DefaultMaxTraceCells = 200_000

type Service struct {
	resolve  Resolver
	observer observability.SolveObserver
	tracer   oteltrace.Tracer
	logger   *slog.Logger
	maxCells int
}

type Option func(*Service)

func WithResolver(r Resolver) Option {
	return func(s *Service) { s.resolve = r }
}

func WithObserver(o observability.SolveObserver) Option {
	return func(s *Service) { s.observer = o }
}

func WithTracer(t oteltrace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMaxTraceCells caps the estimated trace size of a solve; larger inputs
// are rejected as invalid before the strategy runs. n <= 0 removes the cap.
func WithMaxTraceCells(n int) Option {
	return func(s *Service) { s.maxCells = n }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		resolve:  strategy.Resolve,
		tracer:   observability.Tracer(),
		logger:   slog.New(slog.DiscardHandler),
		maxCells: DefaultMaxTraceCells,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve resolves the route, decodes body into the algorithm's input, validates
// it and runs the strategy. The body must be a single JSON object with no
// unknown fields.
func (s *Service) Solve(ctx context.Context, family, variant string, body []byte) (*trace.Result, error) {
	alg, err := s.resolve(family, variant)
	if err != nil {
		s.observe(ctx, family, variant, time.Now(), nil, err)
		return nil, err
	}

	in := alg.NewInput()
	if err := decodeStrict(body, in); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		s.observe(ctx, family, variant, time.Now(), nil, err)
		return nil, err
	}

	return s.Run(ctx, alg, in)
}

// Run validates an already decoded input and runs alg on it.
func (s *Service) Run(ctx context.Context, alg strategy.Algorithm, in any) (*trace.Result, error) {
	start := time.Now()
	family, variant := string(alg.Family), string(alg.Variant)

	ctx, span := s.tracer.Start(ctx, "Service.Solve",
		oteltrace.WithAttributes(
			attribute.String("algoviz.family", family),
			attribute.String("algoviz.variant", variant),
		),
	)
	defer span.End()

	if err := model.Validate(in); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		s.observe(ctx, family, variant, start, nil, err)
		return nil, err
	}

	cells := alg.Cells(in)
	span.SetAttributes(attribute.Int("algoviz.trace_cells", cells))
	if s.maxCells > 0 && cells > s.maxCells {
		err := model.NewLimitError(cells, s.maxCells)
		span.RecordError(err)
		span.SetStatus(codes.Error, "trace too large")
		s.observe(ctx, family, variant, start, nil, err)
		return nil, err
	}

	if gi, ok := in.(*model.GraphInput); ok && alg.Family == strategy.Dijkstra && !gi.Graph.Has(gi.StartNode) {
		s.logger.WarnContext(ctx, "start node not in graph, every node is unreachable",
			slog.String("start_node", gi.StartNode))
	}

	res, err := alg.Solve(in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.observe(ctx, family, variant, start, nil, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("algoviz.step_count", res.Metrics.StepCount),
		attribute.Float64("algoviz.result_value", res.ResultValue),
	)
	s.observe(ctx, family, variant, start, &res, nil)
	return &res, nil
}

func (s *Service) observe(ctx context.Context, family, variant string, start time.Time, res *trace.Result, err error) {
	ev := observability.SolveEvent{
		Family:   family,
		Variant:  variant,
		Outcome:  Outcome(err),
		Duration: time.Since(start),
	}
	if res != nil {
		ev.Steps = res.Metrics.StepCount
	}
	if err != nil {
		s.logger.DebugContext(ctx, "solve rejected",
			slog.String("family", family),
			slog.String("variant", variant),
			slog.String("error", err.Error()),
		)
	}
	if s.observer != nil {
		s.observer.ObserveSolve(ev)
	}
}

// Outcome labels err for metrics and logs.
func Outcome(err error) string {
	var (
		verr *model.ValidationError
		ferr *strategy.UnknownFamilyError
		vaer *strategy.UnknownVariantError
	)
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, ErrInvalidJSON), errors.As(err, &verr):
		return observability.OutcomeInvalid
	case errors.As(err, &ferr):
		return observability.OutcomeUnknown
	case errors.As(err, &vaer):
		return observability.OutcomeUnsupported
	default:
		return "error"
	}
}

func decodeStrict(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}
