// Package spatree implements a static spatial index over axis-aligned
// rectangles: a linear bounding volume hierarchy (LBVH) built top-down from
// Morton (Z-order) codes, queried by point or by rectangle.
package spatree

import (
	"sort"

	"github.com/phanxgames/rectree/geom"
)

// RectId identifies a rect pushed into a Tree, equal to its insertion
// index.
type RectId int

// refKind tags which arm of NodeRef is populated.
type refKind int

const (
	refInvalid refKind = iota
	refInternal
	refLeaf
)

// NodeRef is a tagged reference to either an internal node or a leaf rect,
// standing in for the source's NodeId enum (Go has no enum-with-payload).
type NodeRef struct {
	kind  refKind
	index int
}

// RefInvalid is the zero NodeRef: no node.
var RefInvalid = NodeRef{kind: refInvalid}

// RefInternal builds a NodeRef pointing at internal node index i.
func RefInternal(i int) NodeRef { return NodeRef{kind: refInternal, index: i} }

// RefLeaf builds a NodeRef pointing at leaf (rect) index i.
func RefLeaf(i int) NodeRef { return NodeRef{kind: refLeaf, index: i} }

// IsValid reports whether ref refers to a node.
func (r NodeRef) IsValid() bool { return r.kind != refInvalid }

// IsInternal reports whether ref refers to an internal node.
func (r NodeRef) IsInternal() bool { return r.kind == refInternal }

// IsLeaf reports whether ref refers to a leaf rect.
func (r NodeRef) IsLeaf() bool { return r.kind == refLeaf }

// Index returns the internal-node or rect index ref points at. It is only
// meaningful when IsValid reports true.
func (r NodeRef) Index() int { return r.index }

// node is one internal (non-leaf) node of the hierarchy: its bounding
// rect (the union of its subtree's leaf rects), its parent's internal
// index (-1 for the root), and its two children.
type node struct {
	rect     geom.Rect
	parent   int
	children [2]NodeRef
}

// Tree is a static spatial index over a set of rects, built once via
// Build and then queried any number of times. Pushing a rect after Build
// leaves the index stale until Build is called again.
type Tree struct {
	globalBound geom.Rect
	hasBound    bool
	rects       []geom.Rect
	nodes       []node
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{}
}

// PushRect appends rect to the tree, returning its RectId, and extends the
// tree's global bound to cover it.
func (t *Tree) PushRect(rect geom.Rect) RectId {
	id := RectId(len(t.rects))
	t.rects = append(t.rects, rect)
	if !t.hasBound {
		t.globalBound = rect
		t.hasBound = true
	} else {
		t.globalBound = t.globalBound.Union(rect)
	}
	return id
}

// GetRect returns the rect stored for id.
func (t *Tree) GetRect(id RectId) geom.Rect {
	return t.rects[id]
}

// GlobalBound returns the union of every rect pushed into the tree.
func (t *Tree) GlobalBound() geom.Rect {
	return t.globalBound
}

// Build computes Morton codes for every pushed rect (via pointOfRect,
// which should return a representative point for a rect — its center is
// the usual choice) and constructs the hierarchy top-down. Build is a full
// rebuild: call it again after pushing more rects or whenever GetRect's
// contents have otherwise changed meaning.
//
// With zero or one rect Build creates no internal nodes, and queries test
// the single rect directly. If the global bound has zero width or zero
// height, every point maps to 0 on that axis; codes that end up identical
// are split at their midpoint, so Build still completes and queries stay
// correct.
func (t *Tree) Build(pointOfRect func(geom.Rect) geom.Vec2) {
	n := len(t.rects)
	if n == 0 {
		t.nodes = nil
		return
	}
	if n == 1 {
		t.nodes = nil
		return
	}

	codes := make([]MortonCode, n)
	width := t.globalBound.Width()
	height := t.globalBound.Height()
	for i, rect := range t.rects {
		p := pointOfRect(rect)
		var nx, ny float64
		if width > 0 {
			nx = (p.X - t.globalBound.Min.X) / width
		}
		if height > 0 {
			ny = (p.Y - t.globalBound.Min.Y) / height
		}
		codes[i] = MortonCode{Code: Morton2DFloat(nx, ny), Index: i}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Code < codes[j].Code })

	t.nodes = make([]node, n-1)
	t.generateHierarchy(codes)
	t.calculateInternalBounds()
}

type buildFrame struct {
	first, last int
	parentIdx   int
	childSlot   int
}

func (t *Tree) generateHierarchy(codes []MortonCode) {
	next := 0
	stack := []buildFrame{{first: 0, last: len(codes) - 1, parentIdx: -1, childSlot: -1}}

	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		var self NodeRef
		if f.first == f.last {
			self = RefLeaf(codes[f.first].Index)
		} else {
			myIdx := next
			next++
			self = RefInternal(myIdx)

			split := FindSplit(codes, f.first, f.last)
			// Push right before left so left is processed first (LIFO).
			stack = append(stack, buildFrame{first: split + 1, last: f.last, parentIdx: myIdx, childSlot: 1})
			stack = append(stack, buildFrame{first: f.first, last: split, parentIdx: myIdx, childSlot: 0})
			t.nodes[myIdx].parent = -1
		}

		if f.parentIdx >= 0 {
			t.nodes[f.parentIdx].children[f.childSlot] = self
			if self.IsInternal() {
				t.nodes[self.Index()].parent = f.parentIdx
			}
		}
	}
}

// calculateInternalBounds computes each internal node's bounding rect,
// walking from the highest index to the lowest: by generateHierarchy's
// indexing scheme a child internal node is always allocated after its
// parent, so by the time this loop reaches a parent, both its children's
// bounds (internal or leaf) are already settled.
func (t *Tree) calculateInternalBounds() {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		n.rect = t.childRect(n.children[0]).Union(t.childRect(n.children[1]))
	}
}

func (t *Tree) childRect(ref NodeRef) geom.Rect {
	if ref.IsLeaf() {
		return t.rects[ref.Index()]
	}
	return t.nodes[ref.Index()].rect
}

// Query returns the RectIds of every rect whose own rect satisfies
// hitCondition(candidateRect, target).
func (t *Tree) Query(target geom.Rect, hitCondition func(candidate, target geom.Rect) bool) []RectId {
	if len(t.rects) == 0 {
		return nil
	}
	if len(t.nodes) == 0 {
		if hitCondition(t.rects[0], target) {
			return []RectId{0}
		}
		return nil
	}

	var hits []RectId
	stack := []NodeRef{RefInternal(0)}
	for len(stack) > 0 {
		top := len(stack) - 1
		ref := stack[top]
		stack = stack[:top]

		if ref.IsLeaf() {
			if hitCondition(t.rects[ref.Index()], target) {
				hits = append(hits, RectId(ref.Index()))
			}
			continue
		}

		cur := t.nodes[ref.Index()]
		if !hitCondition(cur.rect, target) {
			continue
		}
		for _, child := range cur.children {
			if child.IsValid() {
				stack = append(stack, child)
			}
		}
	}
	return hits
}

// QuerySingle folds every RectId satisfying hitCondition through resolve,
// returning the winner, and false if nothing hit. resolve(a, b) must
// return whichever of a or b should survive a conflict — for z-order,
// "highest id wins" is resolve(a, b RectId) RectId { return max(a, b) }.
func (t *Tree) QuerySingle(target geom.Rect, hitCondition func(candidate, target geom.Rect) bool, resolve func(a, b RectId) RectId) (RectId, bool) {
	if len(t.rects) == 0 {
		return 0, false
	}
	if len(t.nodes) == 0 {
		if hitCondition(t.rects[0], target) {
			return 0, true
		}
		return 0, false
	}

	var winner RectId
	found := false

	stack := []NodeRef{RefInternal(0)}
	for len(stack) > 0 {
		top := len(stack) - 1
		ref := stack[top]
		stack = stack[:top]

		if ref.IsLeaf() {
			if hitCondition(t.rects[ref.Index()], target) {
				id := RectId(ref.Index())
				if found {
					winner = resolve(winner, id)
				} else {
					winner = id
					found = true
				}
			}
			continue
		}

		cur := t.nodes[ref.Index()]
		if !hitCondition(cur.rect, target) {
			continue
		}
		for _, child := range cur.children {
			if child.IsValid() {
				stack = append(stack, child)
			}
		}
	}
	return winner, found
}

// QueryPoint returns every rect containing p.
func (t *Tree) QueryPoint(p geom.Vec2) []RectId {
	target := geom.Rect{Min: p, Max: p}
	return t.Query(target, func(candidate, target geom.Rect) bool {
		return candidate.Contains(target.Min)
	})
}

// QueryRect returns every rect overlapping r.
func (t *Tree) QueryRect(r geom.Rect) []RectId {
	return t.Query(r, func(candidate, target geom.Rect) bool {
		return candidate.Overlaps(target)
	})
}
