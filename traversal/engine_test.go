package traversal_test

import (
	"testing"

	"github.com/virtualgraham/dagoba-go/core"
	"github.com/virtualgraham/dagoba-go/traversal"
)

func vertexIDs(t *testing.T, results []traversal.Gremlin) []uint64 {
	t.Helper()
	out := make([]uint64, 0, len(results))
	for _, g := range results {
		if !g.HasVertex {
			t.Fatalf("result %+v has no vertex", g)
		}
		out = append(out, g.Vertex)
	}
	return out
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOutTraversalEmitsTarget(t *testing.T) {
	s := core.NewStore()
	a, _ := s.AddVertex(nil)
	b, _ := s.AddVertex(nil)
	s.AddEdge(a, b, "fruitier", nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: a}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	if !equalIDs(got, []uint64{b}) {
		t.Fatalf("got %v, want [%d]", got, b)
	}
}

func TestOutTraversalFromLeafYieldsNothing(t *testing.T) {
	s := core.NewStore()
	a, _ := s.AddVertex(nil)
	b, _ := s.AddVertex(nil)
	s.AddEdge(a, b, "fruitier", nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: b}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
	}
	got := traversal.NewEngine(program).Run()
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestGrandchildrenEmittedLIFO(t *testing.T) {
	s := core.NewStore()
	ids := make([]uint64, 7) // 1-indexed to mirror the scenario's v1..v6
	for i := 1; i <= 6; i++ {
		ids[i], _ = s.AddVertex(nil)
	}
	s.AddEdge(ids[1], ids[2], "x", nil)
	s.AddEdge(ids[2], ids[3], "x", nil)
	s.AddEdge(ids[2], ids[4], "x", nil)
	s.AddEdge(ids[2], ids[5], "x", nil)
	s.AddEdge(ids[2], ids[6], "x", nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: ids[1]}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	want := []uint64{ids[6], ids[5], ids[4], ids[3]}
	if !equalIDs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTraversalHonorsEdgeLabelFilter(t *testing.T) {
	s := core.NewStore()
	ids := make([]uint64, 7)
	for i := 1; i <= 6; i++ {
		ids[i], _ = s.AddVertex(nil)
	}
	s.AddEdge(ids[1], ids[2], "son", nil)
	s.AddEdge(ids[2], ids[3], "son", nil)
	s.AddEdge(ids[2], ids[4], "son", nil)
	s.AddEdge(ids[2], ids[5], "son", nil)
	s.AddEdge(ids[2], ids[6], "daughter", nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: ids[1]}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{Kind: core.FilterLabel, Label: "daughter"}),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	if !equalIDs(got, []uint64{ids[6]}) {
		t.Fatalf("got %v, want [%d]", got, ids[6])
	}
}

func TestUniqueCollapsesDuplicateVertices(t *testing.T) {
	s := core.NewStore()
	center, _ := s.AddVertex(nil)
	shared, _ := s.AddVertex(nil)
	other, _ := s.AddVertex(nil)
	s.AddEdge(center, shared, "x", nil)
	s.AddEdge(other, shared, "x", nil)
	s.AddEdge(shared, center, "x", nil)
	s.AddEdge(shared, other, "x", nil)

	withoutUnique := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterIDs, IDs: []uint64{center, other}}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
	}
	all := vertexIDs(t, traversal.NewEngine(withoutUnique).Run())

	withUnique := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterIDs, IDs: []uint64{center, other}}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewUnique(),
	}
	uniq := vertexIDs(t, traversal.NewEngine(withUnique).Run())

	if len(uniq) > len(all) {
		t.Fatalf("unique result %v longer than unfiltered result %v", uniq, all)
	}
	seen := map[uint64]bool{}
	for _, id := range uniq {
		if seen[id] {
			t.Fatalf("duplicate id %d in unique result %v", id, uniq)
		}
		seen[id] = true
	}
}

func TestSiblingTraversalFilteredByPredicate(t *testing.T) {
	s := core.NewStore()
	odin, _ := s.AddVertex(map[string]core.Value{"name": core.NewString("Odin")})
	thor, _ := s.AddVertex(map[string]core.Value{"name": core.NewString("Thor")})
	baldr, _ := s.AddVertex(map[string]core.Value{"name": core.NewString("Baldr")})
	s.AddEdge(thor, odin, "parent", nil)
	s.AddEdge(baldr, odin, "parent", nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: thor}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewTraversal(s, traversal.DirIn, core.EdgeFilter{}),
		traversal.NewUnique(),
		traversal.NewFilter(s, core.VertexFilter{Kind: core.FilterPredicate, Predicate: func(v *core.Vertex) bool {
			name, ok := v.Properties["name"]
			return ok && name.Str != "Thor"
		}}),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())

	foundThor, foundBaldr := false, false
	for _, id := range got {
		if id == thor {
			foundThor = true
		}
		if id == baldr {
			foundBaldr = true
		}
	}
	if foundThor {
		t.Fatalf("result %v should not contain Thor (%d)", got, thor)
	}
	if !foundBaldr {
		t.Fatalf("result %v should contain Baldr (%d)", got, baldr)
	}
}

// Law 6: Take bound.
func TestTakeBoundsResultCount(t *testing.T) {
	s := core.NewStore()
	for i := 0; i < 5; i++ {
		s.AddVertex(nil)
	}
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterNone}),
		traversal.NewTake(2),
	}
	got := traversal.NewEngine(program).Run()
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
}

// Law 7: unique().unique() is idempotent with a single unique().
func TestDoubleUniqueIdempotent(t *testing.T) {
	s := core.NewStore()
	a, _ := s.AddVertex(nil)
	b, _ := s.AddVertex(nil)
	s.AddEdge(a, b, "x", nil)
	s.AddEdge(a, b, "y", nil)

	single := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: a}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewUnique(),
	}
	double := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: a}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewUnique(),
		traversal.NewUnique(),
	}
	got1 := vertexIDs(t, traversal.NewEngine(single).Run())
	got2 := vertexIDs(t, traversal.NewEngine(double).Run())
	if !equalIDs(got1, got2) {
		t.Fatalf("single unique %v != double unique %v", got1, got2)
	}
}

// Law 8: Back round-trip.
func TestBackRoundTrip(t *testing.T) {
	s := core.NewStore()
	center, _ := s.AddVertex(nil)
	n1, _ := s.AddVertex(nil)
	n2, _ := s.AddVertex(nil)
	s.AddEdge(center, n1, "x", nil)
	s.AddEdge(center, n2, "x", nil)

	const label uint64 = 1
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: center}),
		traversal.NewAs(label),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewBack(label),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	want := []uint64{center, center}
	if !equalIDs(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// Law 9: empty pipeline from an absent vertex.
func TestAbsentVertexYieldsNoDownstreamResults(t *testing.T) {
	s := core.NewStore()
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: 999}),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
	}
	got := traversal.NewEngine(program).Run()
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}

func TestPropertyExtractPrecedenceAndMissingProperty(t *testing.T) {
	s := core.NewStore()
	a, _ := s.AddVertex(map[string]core.Value{"name": core.NewString("Thor")})
	b, _ := s.AddVertex(nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterIDs, IDs: []uint64{a, b}}),
		traversal.NewPropertyExtract(s, "name"),
	}
	got := traversal.NewEngine(program).Run()
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1 (vertex without the property is dropped)", len(got))
	}
	if !got[0].HasResult || got[0].Result.Str != "Thor" {
		t.Fatalf("got %+v, want Result=Thor", got[0])
	}
}

func TestExceptPassesThroughWhenLabelAbsent(t *testing.T) {
	s := core.NewStore()
	a, _ := s.AddVertex(nil)

	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: a}),
		traversal.NewExcept(42), // never tagged by an As step
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	if !equalIDs(got, []uint64{a}) {
		t.Fatalf("got %v, want [%d] (absent label means no exclusion)", got, a)
	}
}

func TestExceptExcludesTaggedVertex(t *testing.T) {
	s := core.NewStore()
	center, _ := s.AddVertex(nil)
	n1, _ := s.AddVertex(nil)
	s.AddEdge(center, n1, "x", nil)
	s.AddEdge(center, center, "self", nil)

	const label uint64 = 7
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: center}),
		traversal.NewAs(label),
		traversal.NewTraversal(s, traversal.DirOut, core.EdgeFilter{}),
		traversal.NewExcept(label),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	if !equalIDs(got, []uint64{n1}) {
		t.Fatalf("got %v, want [%d] (self-loop back to center excluded)", got, n1)
	}
}

func TestMergeResolvesTaggedLabel(t *testing.T) {
	s := core.NewStore()
	center, _ := s.AddVertex(nil)

	const label uint64 = 1
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: center}),
		traversal.NewAs(label),
		traversal.NewMerge([]uint64{label}),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	if !equalIDs(got, []uint64{center}) {
		t.Fatalf("got %v, want [%d]", got, center)
	}
}

// Merge must cache the upstream token that triggered a batch and reuse it
// for every item popped from that batch, not just the first: the second
// pop happens on a Pull-driven re-entry where upstream is nil, the same
// convention VertexSource and Traversal rely on.
func TestMergePreservesTrailAcrossBatch(t *testing.T) {
	s := core.NewStore()
	center, _ := s.AddVertex(nil)

	const label uint64 = 1
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: center}),
		traversal.NewAs(label),
		traversal.NewMerge([]uint64{label, label}),
		traversal.NewBack(label),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	want := []uint64{center, center}
	if !equalIDs(got, want) {
		t.Fatalf("got %v, want %v (trail must survive every pop of Merge's batch)", got, want)
	}
}

// As replaces the breadcrumb trail wholesale, so a Merge over a label set
// by an earlier As call that has since been overwritten by a later one
// resolves only the still-present label, never the stale one.
func TestMergeOnlyResolvesLabelsStillPresentAfterAsReplace(t *testing.T) {
	s := core.NewStore()
	center, _ := s.AddVertex(nil)

	const labelA, labelB uint64 = 1, 2
	program := []traversal.Step{
		traversal.NewVertexSource(s, core.VertexFilter{Kind: core.FilterID, ID: center}),
		traversal.NewAs(labelA),
		traversal.NewAs(labelB), // wholesale replace: labelA's entry is gone
		traversal.NewMerge([]uint64{labelA, labelB}),
	}
	got := vertexIDs(t, traversal.NewEngine(program).Run())
	if !equalIDs(got, []uint64{center}) {
		t.Fatalf("got %v, want [%d] (only labelB survives the As replace)", got, center)
	}
}
