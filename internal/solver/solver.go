// Package solver runs puzzle searches with logging, tracing and metrics around
// the search engine.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	astar "github.com/pdrpinto/tileplan"
	"github.com/pdrpinto/tileplan/internal/metrics"
	"github.com/pdrpinto/tileplan/puzzle"
)

const tracerName = "tileplan.solver"

// Request is one puzzle to solve.
type Request struct {
	Name    string
	Problem astar.Problem[puzzle.Board, puzzle.Action]
	Alpha   float64
}

// Report is the outcome of one request. A request with no solution yields a
// Report with Found unset, not an error.
type Report struct {
	ID    string
	Name  string
	Start puzzle.Board
	Goal  puzzle.Board
	Alpha float64
	Plan  []astar.Step[puzzle.Board, puzzle.Action]
	Found bool
	// Discovered is the number of states in the predecessor map: every state
	// ever pushed to the frontier. Stats.Expanded counts only closed states.
	Discovered int
	Stats      astar.Stats
	// Duration is the wall time of the search call; for SolveAll it covers the
	// whole batch sharing the same alpha.
	Duration time.Duration
}

// Solver is safe for concurrent use.
type Solver struct {
	logger  zerolog.Logger
	tracer  trace.Tracer
	timeout time.Duration
	workers int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// WithTracerProvider sets where spans go; the default is the global provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Solver) { s.tracer = provider.Tracer(tracerName) }
}

// WithTimeout bounds each Solve call and each SolveAll batch. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Solver) { s.timeout = timeout }
}

// WithWorkers sets how many searches SolveAll runs at once. Zero means one per CPU.
func WithWorkers(workers int) Option {
	return func(s *Solver) { s.workers = workers }
}

// New creates a Solver.
func New(options ...Option) *Solver {
	s := &Solver{
		logger: zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Solve searches one puzzle and reconstructs its plan.
func (s *Solver) Solve(ctx context.Context, req Request) (Report, error) {
	id := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "solver.Solve",
		trace.WithAttributes(
			attribute.String("search.id", id),
			attribute.String("search.name", req.Name),
			attribute.Float64("search.alpha", req.Alpha),
		),
	)
	defer span.End()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	log := s.logger.With().Str("search_id", id).Str("name", req.Name).Logger()
	log.Debug().
		Float64("alpha", req.Alpha).
		Str("start", req.Problem.Start.Compact()).
		Str("goal", req.Problem.Goal.Compact()).
		Msg("search started")

	started := time.Now()
	var stats astar.Stats
	predecessors, err := astar.Search(ctx, req.Problem, req.Alpha, astar.WithStats(&stats))
	elapsed := time.Since(started)
	if err != nil {
		s.recordFailure(span, log, err)
		return Report{}, fmt.Errorf("search %s: %w", req.Name, err)
	}

	report, err := s.finish(log, newReport(id, req, stats, elapsed), predecessors)
	if err != nil {
		s.recordFailure(span, log, err)
		return Report{}, err
	}
	span.SetAttributes(
		attribute.Bool("search.found", report.Found),
		attribute.Int("search.discovered", report.Discovered),
		attribute.Int("search.expanded", report.Stats.Expanded),
		attribute.Int("search.plan_length", len(report.Plan)),
	)
	return report, nil
}

// SolveAll searches every request concurrently. Requests that share an alpha
// run as one batch on the worker pool. Reports come back in request order.
func (s *Solver) SolveAll(ctx context.Context, reqs []Request) ([]Report, error) {
	ctx, span := s.tracer.Start(ctx, "solver.SolveAll",
		trace.WithAttributes(attribute.Int("batch.size", len(reqs))),
	)
	defer span.End()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var alphas []float64
	groups := make(map[float64][]int)
	for i, req := range reqs {
		if _, ok := groups[req.Alpha]; !ok {
			alphas = append(alphas, req.Alpha)
		}
		groups[req.Alpha] = append(groups[req.Alpha], i)
	}

	var options []astar.Option
	if s.workers > 0 {
		options = append(options, astar.WithWorkers(s.workers))
	}

	reports := make([]Report, len(reqs))
	found := 0
	for _, alpha := range alphas {
		indices := groups[alpha]
		problems := make([]astar.Problem[puzzle.Board, puzzle.Action], len(indices))
		for j, i := range indices {
			problems[j] = reqs[i].Problem
		}

		started := time.Now()
		outcomes, err := astar.SearchAll(ctx, problems, alpha, options...)
		elapsed := time.Since(started)
		if err != nil {
			s.recordFailure(span, s.logger, err)
			return nil, fmt.Errorf("batch alpha=%v: %w", alpha, err)
		}

		for j, i := range indices {
			id := uuid.NewString()
			log := s.logger.With().Str("search_id", id).Str("name", reqs[i].Name).Logger()
			report, err := s.finish(log, newReport(id, reqs[i], outcomes[j].Stats, elapsed), outcomes[j].Predecessors)
			if err != nil {
				s.recordFailure(span, log, err)
				return nil, err
			}
			if report.Found {
				found++
			}
			reports[i] = report
		}
	}

	span.SetAttributes(attribute.Int("batch.found", found))
	return reports, nil
}

func newReport(id string, req Request, stats astar.Stats, elapsed time.Duration) Report {
	return Report{
		ID:       id,
		Name:     req.Name,
		Start:    req.Problem.Start,
		Goal:     req.Problem.Goal,
		Alpha:    req.Alpha,
		Stats:    stats,
		Duration: elapsed,
	}
}

// finish reconstructs the plan and records the outcome.
func (s *Solver) finish(
	log zerolog.Logger,
	report Report,
	predecessors astar.Predecessors[puzzle.Board, puzzle.Action],
) (Report, error) {
	report.Discovered = len(predecessors)

	plan, err := astar.Reconstruct(report.Goal, predecessors)
	switch {
	case errors.Is(err, astar.ErrNoPathFound):
		metrics.SearchesTotal.WithLabelValues(metrics.ResultNoPath).Inc()
		log.Warn().Int("discovered", report.Discovered).Int("expanded", report.Stats.Expanded).Dur("duration", report.Duration).Msg("no path found")
	case err != nil:
		return report, fmt.Errorf("search %s: %w", report.Name, err)
	default:
		report.Plan = plan
		report.Found = true
		metrics.SearchesTotal.WithLabelValues(metrics.ResultFound).Inc()
		metrics.PlanLength.Observe(float64(len(plan)))
		log.Info().
			Int("plan_length", len(plan)).
			Int("discovered", report.Discovered).
			Int("expanded", report.Stats.Expanded).
			Dur("duration", report.Duration).
			Msg("search finished")
	}

	metrics.SearchDurationSeconds.Observe(report.Duration.Seconds())
	metrics.SearchExpandedNodes.Observe(float64(report.Stats.Expanded))
	metrics.SearchFrontierMaxSize.Observe(float64(report.Stats.MaxFrontier))
	return report, nil
}

func (s *Solver) recordFailure(span trace.Span, log zerolog.Logger, err error) {
	result := metrics.ResultError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		result = metrics.ResultCancelled
	}
	metrics.SearchesTotal.WithLabelValues(result).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.Error().Err(err).Str("result", result).Msg("search failed")
}

func (s *Solver) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
