// File: types.go
// Role: Vertex, Edge, Store record types, construction options, and the
// validation/observer hooks the rest of this file's neighbors wire into.
// Concurrency:
//   - muVert guards the vertex catalog and incidence lists.
//   - muEdge guards the edge catalog.
//   - Lock order, where both are needed, is muVert -> muEdge.
package core

import (
	"sync"
	"sync/atomic"
)

// Vertex is a node in the graph: an identity, a property map, and two
// ordered, duplicate-free lists of incident edge ids.
//
// EIn and EOut preserve insertion order; that order is observable through
// traversal (see package traversal's Traversal step) and is part of this
// package's contract, not an implementation accident.
type Vertex struct {
	ID         uint64
	Properties map[string]Value
	EIn        []uint64
	EOut       []uint64
}

// Edge is a directed connection from VOut to VIn, carrying a label and a
// property map.
type Edge struct {
	ID         uint64
	Label      string
	Properties map[string]Value
	VOut       uint64
	VIn        uint64
}

// VertexValidator is consulted by AddVertex before a vertex is admitted. A
// non-nil error rejects the vertex and leaves the Store unchanged. The
// default Store has no validator; AddVertex always succeeds, matching the
// base specification. Package schema provides a JSON-Schema-backed
// implementation for callers who opt in.
type VertexValidator func(properties map[string]Value) error

// StoreObserver receives notifications for every successful mutation. All
// methods are called synchronously from within the mutating call, while no
// Store lock is held (observer calls happen after the relevant lock has
// been released). The zero Observer (noopObserver) does nothing; package
// telemetry provides an Observer backed by OpenTelemetry and Prometheus.
type StoreObserver interface {
	OnVertexAdded(id uint64)
	OnVertexRemoved(id uint64)
	OnEdgeAdded(id uint64)
	OnEdgeRemoved(id uint64)
}

type noopObserver struct{}

func (noopObserver) OnVertexAdded(uint64)   {}
func (noopObserver) OnVertexRemoved(uint64) {}
func (noopObserver) OnEdgeAdded(uint64)     {}
func (noopObserver) OnEdgeRemoved(uint64)   {}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithObserver attaches a StoreObserver that is notified of every
// successful AddVertex/RemoveVertex/AddEdge/RemoveEdge call.
func WithObserver(o StoreObserver) StoreOption {
	return func(s *Store) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithVertexValidator installs a validator consulted by AddVertex for
// every new vertex. The Vertex data model carries no label of its own
// (only Edge does); a caller wanting label-like scoping can close over a
// discriminating property inside their own VertexValidator.
func WithVertexValidator(v VertexValidator) StoreOption {
	return func(s *Store) {
		if v != nil {
			s.validator = v
		}
	}
}

// SetVertexValidator installs or replaces the Store's VertexValidator at
// runtime, taking effect for every AddVertex call from this point on.
// Passing nil disables validation. Package schema's PropertySchema.Validator
// is the intended argument for callers opting into JSON-Schema checks.
func (s *Store) SetVertexValidator(v VertexValidator) {
	s.muVert.Lock()
	defer s.muVert.Unlock()
	s.validator = v
}

// Store owns all vertices and edges in the graph, keyed by an
// auto-incrementing id that is never reused, even after removal.
type Store struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	autoid uint64 // atomic; shared between vertex and edge id allocation

	vertices map[uint64]*Vertex
	edges    map[uint64]*Edge

	observer  StoreObserver
	validator VertexValidator
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		vertices: make(map[uint64]*Vertex),
		edges:    make(map[uint64]*Edge),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// nextID returns the next auto-increment id. It is called from both
// AddVertex (under muVert) and AddEdge (under muEdge), so the counter
// itself is atomic rather than protected by either lock. Vertex and edge
// ids only need to be unique within their own kind, but sharing one
// counter across both is simpler and still satisfies that.
func (s *Store) nextID() uint64 {
	return atomic.AddUint64(&s.autoid, 1)
}
