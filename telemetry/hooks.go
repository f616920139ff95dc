package telemetry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/virtualgraham/dagoba-go/core"
	"github.com/virtualgraham/dagoba-go/traversal"
)

var (
	_ core.StoreObserver = (*Hooks)(nil)
	_ traversal.Observer = (*Hooks)(nil)
)

// Hooks implements core.StoreObserver and traversal.Observer. Build one
// with NewHooks and attach it with core.WithObserver and
// traversal.WithEngineObserver.
type Hooks struct {
	tracer trace.Tracer

	vertexAdded   prometheus.Counter
	vertexRemoved prometheus.Counter
	edgeAdded     prometheus.Counter
	edgeRemoved   prometheus.Counter
	stepsVisited  *prometheus.CounterVec
	runsTotal     prometheus.Counter

	mu        sync.Mutex
	lastRunID string
}

// runState is the traversal.RunToken Hooks hands back from RunStarted:
// everything StepVisited and RunFinished need to close out that specific
// run, so that two Engine.Run calls sharing one Hooks instance from
// different goroutines never clobber each other's span.
type runState struct {
	runID string
	span  trace.Span
}

// NewHooks registers Prometheus metrics against registry (pass
// prometheus.DefaultRegisterer for the global registry, or a fresh
// prometheus.NewRegistry() in tests) and builds a tracer named
// tracerName via the globally configured OpenTelemetry TracerProvider.
func NewHooks(registry prometheus.Registerer, tracerName string) *Hooks {
	factory := promauto.With(registry)
	return &Hooks{
		tracer: otel.Tracer(tracerName),
		vertexAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "dagoba_vertices_added_total",
			Help: "Vertices successfully added to the store.",
		}),
		vertexRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "dagoba_vertices_removed_total",
			Help: "Vertices successfully removed from the store.",
		}),
		edgeAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "dagoba_edges_added_total",
			Help: "Edges successfully added to the store.",
		}),
		edgeRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "dagoba_edges_removed_total",
			Help: "Edges successfully removed from the store.",
		}),
		stepsVisited: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dagoba_engine_steps_visited_total",
			Help: "Step.Step calls made by the traversal engine, labeled by the signal returned.",
		}, []string{"signal"}),
		runsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dagoba_engine_runs_total",
			Help: "Engine.Run calls completed.",
		}),
	}
}

// core.StoreObserver

func (h *Hooks) OnVertexAdded(uint64)   { h.vertexAdded.Inc() }
func (h *Hooks) OnVertexRemoved(uint64) { h.vertexRemoved.Inc() }
func (h *Hooks) OnEdgeAdded(uint64)     { h.edgeAdded.Inc() }
func (h *Hooks) OnEdgeRemoved(uint64)   { h.edgeRemoved.Inc() }

// traversal.Observer

// RunStarted opens one tracing span per Engine.Run call and stamps it
// with a fresh run-correlation id. The returned traversal.RunToken is
// what Engine passes back to StepVisited and RunFinished for this run.
func (h *Hooks) RunStarted(programLen int) traversal.RunToken {
	runID := uuid.NewString()
	_, span := h.tracer.Start(context.Background(), "dagoba.engine.run",
		trace.WithAttributes(
			attribute.String("dagoba.run_id", runID),
			attribute.Int("dagoba.program_len", programLen),
		),
	)

	h.mu.Lock()
	h.lastRunID = runID
	h.mu.Unlock()

	return &runState{runID: runID, span: span}
}

func signalLabel(s traversal.Signal) string {
	switch s.Kind {
	case traversal.SignalGremlin:
		return "gremlin"
	case traversal.SignalPull:
		return "pull"
	case traversal.SignalDone:
		return "done"
	default:
		return "false"
	}
}

// StepVisited records a step-visit counter labeled by the signal kind
// returned. It does not add a span event per step to avoid flooding a
// trace backend on programs with many steps; the run's correlation id
// remains available via its span's attributes for log correlation.
func (h *Hooks) StepVisited(run traversal.RunToken, pc int, signal traversal.Signal) {
	h.stepsVisited.WithLabelValues(signalLabel(signal)).Inc()
}

// RunFinished closes the run's tracing span and records the result count.
func (h *Hooks) RunFinished(run traversal.RunToken, resultCount int) {
	h.runsTotal.Inc()

	rs, ok := run.(*runState)
	if !ok || rs == nil {
		return
	}
	rs.span.SetAttributes(attribute.Int("dagoba.result_count", resultCount))
	rs.span.End()
}

// RunID returns the correlation id of the most recently started run, or
// the empty string if no run has started yet. Under concurrent runs this
// is only a recent value, not necessarily the one still in flight; use
// the RunToken threaded through a single Engine.Run call for exact
// correlation.
func (h *Hooks) RunID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastRunID
}
