// Package dagoba is an in-memory property graph with a lazy, pull-based
// traversal engine.
//
// 🚀 What is dagoba-go?
//
//	A small, pure-Go library that stores labeled directed multigraphs whose
//	vertices and edges carry arbitrary JSON-like property maps, and evaluates
//	traversal programs over them one token at a time:
//
//	  • core       — Value/Vertex/Edge/Store: the storage layer
//	  • traversal  — the step protocol, step library, and the engine
//	  • query      — Builder: a chainable surface for assembling programs
//
// ✨ Why choose dagoba-go?
//
//   - Lazy       — traversal steps are pulled on demand, never materialized eagerly
//   - Small      — the whole engine is a single program-counter loop
//   - Extensible — the Step interface lets callers add traversal stages
//
// Three supporting packages round out the traversal surface: exprfilter
// compiles textual boolean expressions into vertex predicates, schema
// validates vertex property maps against a JSON Schema before they enter
// the store, and telemetry attaches OpenTelemetry tracing and Prometheus
// metrics to a Store and an Engine. None is required — all three are
// opt-in over core's and traversal's existing hooks.
//
// Quick example:
//
//	store := core.NewStore()
//	a, _ := store.AddVertex(nil)
//	b, _ := store.AddVertex(nil)
//	store.AddEdge(a, b, "fruitier", nil)
//
//	out := query.New(store, core.VertexFilter{Kind: core.FilterID, ID: a}).
//		Out(core.EdgeFilter{}).
//		Run()
//	// out == []query.Result{{Kind: query.ResultVertex, Vertex: b}}
package dagoba
