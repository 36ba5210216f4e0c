package recttree

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/rectree/geom"
)

// leafSolver reports a fixed, externally-assigned size and has no children
// to position.
type leafSolver struct {
	IdentityConstraint
}

func (leafSolver) Build(id NodeId, tree *Tree, _ *Positioner) geom.Size {
	return tree.Get(id).Size
}

// stackSolver stacks its children vertically, left-aligned, and reports a
// size enclosing all of them.
type stackSolver struct {
	IdentityConstraint
	buildCount *int
}

func (s stackSolver) Build(id NodeId, tree *Tree, p *Positioner) geom.Size {
	if s.buildCount != nil {
		*s.buildCount++
	}
	node := tree.Get(id)
	var width, y float64
	for _, child := range node.Children {
		childNode := tree.Get(child)
		p.Set(child, geom.Vec2{X: 0, Y: y})
		y += childNode.Size.Height
		if childNode.Size.Width > width {
			width = childNode.Size.Width
		}
	}
	return geom.Size{Width: width, Height: y}
}

type testWorld struct {
	stacks map[NodeId]bool
	counts map[NodeId]*int
}

func newTestWorld() *testWorld {
	return &testWorld{stacks: make(map[NodeId]bool), counts: make(map[NodeId]*int)}
}

func (w *testWorld) markStack(id NodeId) *int {
	n := 0
	w.stacks[id] = true
	w.counts[id] = &n
	return &n
}

func (w *testWorld) Solver(id NodeId) LayoutSolver {
	if w.stacks[id] {
		return stackSolver{buildCount: w.counts[id]}
	}
	return leafSolver{}
}

func TestLayoutPositionsStackedLeaves(t *testing.T) {
	tree := New()
	world := newTestWorld()

	root := tree.Insert(NodeDesc{})
	world.markStack(root)

	leafA := tree.Insert(NodeDesc{}.WithParent(root).WithSize(geom.Size{Width: 10, Height: 5}))
	leafB := tree.Insert(NodeDesc{}.WithParent(root).WithSize(geom.Size{Width: 20, Height: 8}))

	tree.Layout(world)

	gotRoot := tree.Get(root)
	if diff := cmp.Diff(geom.Size{Width: 20, Height: 13}, gotRoot.Size); diff != "" {
		t.Fatalf("root size mismatch (-want +got):\n%s", diff)
	}
	if gotRoot.WorldTranslation != (geom.Vec2{}) {
		t.Fatalf("root world translation = %+v, want zero", gotRoot.WorldTranslation)
	}

	gotA := tree.Get(leafA)
	if gotA.WorldTranslation != (geom.Vec2{X: 0, Y: 0}) {
		t.Fatalf("leafA world translation = %+v, want {0 0}", gotA.WorldTranslation)
	}

	gotB := tree.Get(leafB)
	if gotB.WorldTranslation != (geom.Vec2{X: 0, Y: 5}) {
		t.Fatalf("leafB world translation = %+v, want {0 5}", gotB.WorldTranslation)
	}
}

func TestLayoutPropagatesRootTranslationToChildren(t *testing.T) {
	tree := New()
	world := newTestWorld()

	root := tree.Insert(NodeDesc{})
	world.markStack(root)
	leaf := tree.Insert(NodeDesc{}.WithParent(root).WithSize(geom.Size{Width: 4, Height: 4}))

	tree.Layout(world)
	if got := tree.Get(leaf).WorldTranslation; got != (geom.Vec2{X: 0, Y: 0}) {
		t.Fatalf("initial leaf world translation = %+v, want {0 0}", got)
	}

	tree.SetLocalTranslation(root, geom.Vec2{X: 100, Y: 200})
	tree.UpdateTranslations()

	if got := tree.Get(root).WorldTranslation; got != (geom.Vec2{X: 100, Y: 200}) {
		t.Fatalf("root world translation = %+v, want {100 200}", got)
	}
	if got := tree.Get(leaf).WorldTranslation; got != (geom.Vec2{X: 100, Y: 200}) {
		t.Fatalf("leaf world translation = %+v, want {100 200} (drifted with root)", got)
	}
}

func TestLayoutSkipsUnaffectedSiblingSubtree(t *testing.T) {
	tree := New()
	world := newTestWorld()

	root := tree.Insert(NodeDesc{})
	world.markStack(root)

	branchA := tree.Insert(NodeDesc{}.WithParent(root))
	countA := world.markStack(branchA)
	tree.Insert(NodeDesc{}.WithParent(branchA).WithSize(geom.Size{Width: 5, Height: 5}))

	branchB := tree.Insert(NodeDesc{}.WithParent(root))
	countB := world.markStack(branchB)
	tree.Insert(NodeDesc{}.WithParent(branchB).WithSize(geom.Size{Width: 5, Height: 5}))

	tree.Layout(world)
	if *countA != 1 || *countB != 1 {
		t.Fatalf("expected one build each after first layout, got %d and %d", *countA, *countB)
	}

	// Rescheduling only branchA must not re-run branchB's solver: its
	// constraint never changes, so Phase A must not descend into it.
	tree.ScheduleRelayout(branchA)
	tree.Layout(world)

	if *countA != 2 {
		t.Fatalf("branchA build count = %d, want 2", *countA)
	}
	if *countB != 1 {
		t.Fatalf("branchB build count = %d, want unchanged at 1 (unaffected subtree rebuilt)", *countB)
	}
}

func TestRemoveInvalidatesDescendantIds(t *testing.T) {
	tree := New()
	world := newTestWorld()

	root := tree.Insert(NodeDesc{})
	world.markStack(root)
	child := tree.Insert(NodeDesc{}.WithParent(root).WithSize(geom.Size{Width: 1, Height: 1}))

	tree.Layout(world)
	if ok := tree.Remove(root); !ok {
		t.Fatal("Remove(root) = false, want true")
	}

	if _, ok := tree.TryGet(root); ok {
		t.Fatal("TryGet(root) succeeded after Remove")
	}
	if _, ok := tree.TryGet(child); ok {
		t.Fatal("TryGet(child) succeeded after removing its ancestor")
	}
	if len(tree.RootIDs()) != 0 {
		t.Fatalf("RootIDs() = %v, want empty", tree.RootIDs())
	}
}

func TestNeedsRelayoutReflectsPendingWork(t *testing.T) {
	tree := New()
	world := newTestWorld()

	if tree.NeedsRelayout() {
		t.Fatal("empty tree reports NeedsRelayout")
	}

	root := tree.Insert(NodeDesc{})
	world.markStack(root)
	if !tree.NeedsRelayout() {
		t.Fatal("freshly inserted node does not need relayout")
	}

	tree.Layout(world)
	if tree.NeedsRelayout() {
		t.Fatal("tree still needs relayout immediately after Layout")
	}
}
