package traversal

import "github.com/virtualgraham/dagoba-go/core"

// Gremlin is the in-flight token passed between Steps. Vertex and Result
// are each optional (tracked by their Has* flag rather than a pointer, to
// keep the zero value usable); As is nil when absent.
type Gremlin struct {
	HasVertex bool
	Vertex    uint64

	HasResult bool
	Result    core.Value

	// As is the breadcrumb trail: user label -> vertex id. Once built by
	// an As step it is never mutated in place, only replaced wholesale,
	// so sharing the map by reference across derived tokens is safe.
	As map[uint64]uint64
}

// clone returns a shallow copy of g. Because As is only ever replaced
// wholesale (never mutated through an existing reference) and Result is
// treated as immutable after being set, a shallow copy is sufficient for
// every Step that needs to produce a "new token, same content" output.
func (g *Gremlin) clone() *Gremlin {
	cp := *g
	return &cp
}

// SignalKind tags which of the four cases a Signal holds.
type SignalKind uint8

const (
	// SignalGremlin carries a produced token downstream.
	SignalGremlin SignalKind = iota
	// SignalPull asks the upstream step for another token.
	SignalPull
	// SignalFalse means "nothing to report yet", distinct from SignalPull:
	// it does not request more upstream work, it simply yields this turn.
	SignalFalse
	// SignalDone means this step (and therefore everything upstream of
	// it) is permanently exhausted.
	SignalDone
)

// Signal is the four-valued scheduling value a Step.Step call returns.
// Gremlin is only meaningful when Kind == SignalGremlin.
type Signal struct {
	Kind    SignalKind
	Gremlin *Gremlin
}

// GremlinSignal wraps a produced token.
func GremlinSignal(g *Gremlin) Signal { return Signal{Kind: SignalGremlin, Gremlin: g} }

// PullSignal requests another token from upstream.
func PullSignal() Signal { return Signal{Kind: SignalPull} }

// FalseSignal reports nothing ready this turn, without requesting a pull.
func FalseSignal() Signal { return Signal{Kind: SignalFalse} }

// DoneSignal reports permanent exhaustion.
func DoneSignal() Signal { return Signal{Kind: SignalDone} }
