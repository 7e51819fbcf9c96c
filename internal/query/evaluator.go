package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/UnknownOlympus/geocalc/geodesy"
	"github.com/UnknownOlympus/geocalc/internal/metrics"
)

// Result is the outcome of an evaluated query. Status is metrics.StatusSuccess
// with Value set, or metrics.StatusNoSolution with Reason set.
type Result struct {
	Operation OperationType `json:"operation"`
	Status    string        `json:"status"`
	Value     any           `json:"value,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

// Evaluator dispatches queries to geodesic operations and records
// logging and metrics for each evaluation.
type Evaluator struct {
	log     *slog.Logger     // Logger for evaluation events
	metrics *metrics.Metrics // Metrics for tracking evaluations
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(log *slog.Logger, metrics *metrics.Metrics) *Evaluator {
	return &Evaluator{
		log:     log,
		metrics: metrics,
	}
}

// Evaluate runs q. Geometry without a solution (no intersection, unreachable
// parallel, undefined center) is reported as a Result with status
// no_solution; malformed queries are returned as errors.
func (e *Evaluator) Evaluate(ctx context.Context, q Query) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, err := NewOperation(q.Operation)
	if err != nil {
		e.log.ErrorContext(ctx, "Unsupported operation", "operation", q.Operation)
		e.metrics.QueriesEvaluated.WithLabelValues("unknown", metrics.StatusInvalid).Inc()
		return nil, err
	}

	name := string(q.Operation)
	e.log.DebugContext(ctx, "Evaluating query", "operation", name, "points", len(q.Points))

	startTime := time.Now()
	value, err := op(q)
	duration := time.Since(startTime).Seconds()
	e.metrics.QuerySeconds.WithLabelValues(name).Observe(duration)

	if err == nil && !finiteValue(value) {
		err = fmt.Errorf("%w: %v", ErrNonFiniteResult, value)
	}

	switch {
	case err == nil:
		e.metrics.QueriesEvaluated.WithLabelValues(name, metrics.StatusSuccess).Inc()
		e.log.DebugContext(ctx, "Query evaluated", "operation", name, "value", value)
		return &Result{Operation: q.Operation, Status: metrics.StatusSuccess, Value: value}, nil
	case noSolution(err):
		e.metrics.QueriesEvaluated.WithLabelValues(name, metrics.StatusNoSolution).Inc()
		e.metrics.NoSolution.WithLabelValues(name).Inc()
		e.log.InfoContext(ctx, "Query has no solution", "operation", name, "reason", err)
		return &Result{Operation: q.Operation, Status: metrics.StatusNoSolution, Reason: err.Error()}, nil
	default:
		e.metrics.QueriesEvaluated.WithLabelValues(name, metrics.StatusInvalid).Inc()
		e.log.ErrorContext(ctx, "Invalid query", "operation", name, "error", err)
		return nil, err
	}
}

// finiteValue reports whether every number carried by v is finite.
func finiteValue(v any) bool {
	finite := func(values ...float64) bool {
		for _, f := range values {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
		}
		return true
	}

	switch val := v.(type) {
	case float64:
		return finite(val)
	case geodesy.Point:
		return finite(val.Lat, val.Lng)
	case geodesy.Box:
		return finite(val.SouthWest.Lat, val.SouthWest.Lng, val.NorthEast.Lat, val.NorthEast.Lng)
	case Longitudes:
		return finite(val.Lng1, val.Lng2)
	default:
		return true
	}
}

func noSolution(err error) bool {
	return errors.Is(err, geodesy.ErrNoIntersection) ||
		errors.Is(err, geodesy.ErrNoCrossing) ||
		errors.Is(err, geodesy.ErrDegenerateCenter)
}
