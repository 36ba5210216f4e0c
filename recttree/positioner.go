package recttree

import "github.com/phanxgames/rectree/geom"

// Positioner accumulates the translations a LayoutSolver.Build call assigns
// to its children during Phase B, so they can be committed to the tree
// after Build returns (the solver never writes the tree directly).
//
// Layout only calls Build on nodes that were scheduled, whose constraint
// changed, or whose child's size changed. A node whose children must be
// placed differently with none of those (for example after reordering
// them) is not rebuilt until ScheduleRelayout is called on it.
type Positioner struct {
	entries []positionerEntry
}

type positionerEntry struct {
	id NodeId
	v  geom.Vec2
}

// Set records the local translation to assign to child once this Build
// call's commits are applied. Calling Set more than once for the same
// child within a single Build keeps only the last value.
func (p *Positioner) Set(child NodeId, translation geom.Vec2) {
	p.entries = append(p.entries, positionerEntry{id: child, v: translation})
}

// apply writes every recorded translation into the tree and clears the
// positioner for reuse by the next Build call.
func (p *Positioner) apply(t *Tree) {
	for _, e := range p.entries {
		if n, ok := t.arena.Get(e.id.key); ok {
			n.LocalTranslation = e.v
		}
	}
	p.entries = p.entries[:0]
}
