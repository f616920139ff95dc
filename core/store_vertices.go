// File: store_vertices.go
// Role: Vertex lifecycle (AddVertex/GetVertex/RemoveVertex) and search.
package core

// AddVertex allocates the next id and inserts a vertex with empty
// incidence lists and a clone of properties. Always succeeds unless a
// VertexValidator has been installed (WithVertexValidator) and rejects
// the property map, in which case the Store is left unchanged.
func (s *Store) AddVertex(properties map[string]Value) (uint64, error) {
	s.muVert.RLock()
	validator := s.validator
	s.muVert.RUnlock()

	if validator != nil {
		if err := validator(properties); err != nil {
			return 0, err
		}
	}

	s.muVert.Lock()
	id := s.nextID()
	s.vertices[id] = &Vertex{
		ID:         id,
		Properties: cloneProps(properties),
	}
	s.muVert.Unlock()

	s.observer.OnVertexAdded(id)

	return id, nil
}

// GetVertex returns a borrowed, read-only Vertex pointer, or (nil, false)
// if id is absent.
func (s *Store) GetVertex(id uint64) (*Vertex, bool) {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	v, ok := s.vertices[id]
	return v, ok
}

// HasVertex reports whether id is present.
func (s *Store) HasVertex(id uint64) bool {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	_, ok := s.vertices[id]
	return ok
}

// VertexCount returns the number of vertices currently stored.
func (s *Store) VertexCount() int {
	s.muVert.RLock()
	defer s.muVert.RUnlock()
	return len(s.vertices)
}

// RemoveVertex deletes a vertex and every edge incident to it (in either
// direction). A self-loop appearing in both EIn and EOut is removed once.
// The order incidence lists are scanned in is unspecified.
func (s *Store) RemoveVertex(id uint64) error {
	s.muVert.Lock()

	v, ok := s.vertices[id]
	if !ok {
		s.muVert.Unlock()
		return ErrVertexNotFound
	}

	seen := make(map[uint64]struct{}, len(v.EIn)+len(v.EOut))
	toRemove := make([]uint64, 0, len(v.EIn)+len(v.EOut))
	for _, eid := range v.EIn {
		if _, dup := seen[eid]; !dup {
			seen[eid] = struct{}{}
			toRemove = append(toRemove, eid)
		}
	}
	for _, eid := range v.EOut {
		if _, dup := seen[eid]; !dup {
			seen[eid] = struct{}{}
			toRemove = append(toRemove, eid)
		}
	}

	s.muEdge.Lock()
	for _, eid := range toRemove {
		s.removeEdgeLocked(eid)
	}
	s.muEdge.Unlock()

	delete(s.vertices, id)
	s.muVert.Unlock()

	for _, eid := range toRemove {
		s.observer.OnEdgeRemoved(eid)
	}
	s.observer.OnVertexRemoved(id)

	return nil
}

// SearchVertices resolves f against the Store's vertex catalog.
//
//   - FilterNone: every vertex id, order unspecified.
//   - FilterID:   [x] unconditionally, no existence check.
//   - FilterIDs:  the list verbatim, duplicates preserved, no existence check.
//   - FilterProps: vertices whose property map is a superset of f.Props.
//   - FilterPredicate: vertices for which f.Predicate returns true.
func (s *Store) SearchVertices(f VertexFilter) []uint64 {
	switch f.Kind {
	case FilterID:
		return []uint64{f.ID}
	case FilterIDs:
		out := make([]uint64, len(f.IDs))
		copy(out, f.IDs)
		return out
	}

	s.muVert.RLock()
	defer s.muVert.RUnlock()

	out := make([]uint64, 0, len(s.vertices))
	for id, v := range s.vertices {
		if MatchVertex(v, f) {
			out = append(out, id)
		}
	}
	return out
}
