// File: filters.go
// Role: VertexFilter / EdgeFilter variants and the matching predicates the
// Store and package traversal both consult.
package core

// FilterKind tags the case a VertexFilter or EdgeFilter holds.
type FilterKind uint8

const (
	// FilterNone matches everything.
	FilterNone FilterKind = iota
	// FilterID matches a single id, unconditionally (no existence check).
	FilterID
	// FilterIDs matches membership in a list of ids, duplicates preserved.
	FilterIDs
	// FilterProps matches when the entity's property map is a superset of
	// the filter's map.
	FilterProps
	// FilterPredicate matches when a caller-supplied function returns true.
	FilterPredicate
	// FilterLabel (EdgeFilter only) matches a single edge label.
	FilterLabel
	// FilterLabels (EdgeFilter only) matches membership in a label list.
	FilterLabels
)

// VertexFilter selects vertices by identity, property, or predicate. The
// zero value is FilterNone (matches every vertex).
type VertexFilter struct {
	Kind      FilterKind
	ID        uint64
	IDs       []uint64
	Props     map[string]Value
	Predicate func(*Vertex) bool
}

// EdgeFilter selects edges by label or property. The zero value is
// FilterNone (matches every edge).
type EdgeFilter struct {
	Kind   FilterKind
	Label  string
	Labels []string
	Props  map[string]Value
}

// MatchVertex reports whether v satisfies f.
func MatchVertex(v *Vertex, f VertexFilter) bool {
	switch f.Kind {
	case FilterNone:
		return true
	case FilterID:
		return v.ID == f.ID
	case FilterIDs:
		for _, id := range f.IDs {
			if id == v.ID {
				return true
			}
		}
		return false
	case FilterProps:
		return propsSuperset(v.Properties, f.Props)
	case FilterPredicate:
		if f.Predicate == nil {
			return false
		}
		return f.Predicate(v)
	default:
		return false
	}
}

// MatchEdge reports whether e satisfies f.
func MatchEdge(e *Edge, f EdgeFilter) bool {
	switch f.Kind {
	case FilterNone:
		return true
	case FilterLabel:
		return e.Label == f.Label
	case FilterLabels:
		for _, l := range f.Labels {
			if l == e.Label {
				return true
			}
		}
		return false
	case FilterProps:
		return propsSuperset(e.Properties, f.Props)
	default:
		return false
	}
}

// propsSuperset reports whether p contains every key in want, with equal
// values by Value.Equal. An empty want is a trivial superset of anything.
func propsSuperset(p, want map[string]Value) bool {
	for k, wv := range want {
		pv, ok := p[k]
		if !ok || !pv.Equal(wv) {
			return false
		}
	}
	return true
}
