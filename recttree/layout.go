package recttree

import "github.com/phanxgames/rectree/sparsearena"

// Layout resolves every node currently scheduled for relayout, in three
// passes:
//
//   - Phase A (constraint, top-down): starting from each scheduled node,
//     derive its constraint from its parent's (via world's solver) and
//     push it into its children, but only descend into a child whose
//     derived constraint actually changed — an unchanged constraint means
//     that subtree's build is already valid relative to it.
//   - Phase B (build, bottom-up/deepest-first): ask each touched node's
//     solver for its size given its children, positioning those children
//     via the Positioner. If a node's size changes, its parent is marked
//     stale and re-enqueued for both build and translation propagation.
//   - Phase C (translation, top-down): starting from every node scheduled
//     for relayout plus every parent re-enqueued in Phase B, recompute
//     world translations down each affected subtree.
func (t *Tree) Layout(world LayoutWorld) {
	scheduled := t.scheduled
	t.scheduled = newDepthSet()
	translationDirty := t.translationDirty
	t.translationDirty = newDepthSet()

	t.runConstraintAndBuildPasses(world, scheduled, translationDirty)
	t.propagateTranslations(translationDirty)
}

func (t *Tree) runConstraintAndBuildPasses(world LayoutWorld, scheduled, translationDirty *depthSet) {
	buildSet := newDepthSet()
	var childStack []NodeId

	for _, seed := range scheduled.entriesAscending() {
		node, ok := t.arena.Get(seed.key)
		if !ok || node.Constrained {
			continue
		}
		childStack = append(childStack, seed)
		for len(childStack) > 0 {
			n := len(childStack) - 1
			cur := childStack[n]
			childStack = childStack[:n]

			curNode, ok := t.arena.Get(cur.key)
			if !ok {
				continue
			}
			solver := world.Solver(cur)
			constraint := solver.Constraint(curNode.ParentConstraint)

			sparsearena.Scope(t.arena, cur.key, func(arena *sparsearena.Arena[RectNode], n *RectNode) struct{} {
				n.Constrained = true
				for _, child := range n.Children {
					childNode, ok := arena.Get(child.key)
					if !ok {
						continue
					}
					if !constraintEqual(childNode.ParentConstraint, constraint) {
						childNode.ParentConstraint = constraint
						childStack = append(childStack, child)
					}
				}
				return struct{}{}
			})

			if n, ok := t.arena.Get(cur.key); ok {
				n.Built = false
			}
			buildSet.insert(curNode.Depth, cur)
		}
	}

	var positioner Positioner
	for {
		id, ok := buildSet.popMax()
		if !ok {
			break
		}
		node, ok := t.arena.Get(id.key)
		if !ok {
			continue
		}
		solver := world.Solver(id)
		size := solver.Build(id, t, &positioner)
		positioner.apply(t)

		node, ok = t.arena.Get(id.key)
		if !ok {
			continue
		}
		sizeChanged := size != node.Size
		node.Size = size
		node.Built = true

		if sizeChanged && node.Parent != nil {
			parent, ok := t.arena.Get(node.Parent.key)
			if ok && parent.Built {
				parent.Built = false
				parent.Positioned = false
				buildSet.insert(parent.Depth, *node.Parent)
				translationDirty.insert(parent.Depth, *node.Parent)
			}
		}
	}
}

// propagateTranslations recomputes world translations for every node in
// seeds and its descendants, skipping any subtree whose root is already
// marked positioned.
func (t *Tree) propagateTranslations(seeds *depthSet) {
	for _, id := range seeds.entriesAscending() {
		node, ok := t.arena.Get(id.key)
		if !ok || node.Positioned {
			continue
		}
		t.propagateTranslation(id)
	}
}

func (t *Tree) propagateTranslation(root NodeId) {
	type frame struct {
		id        NodeId
		parentSum int
	}

	rootParentWorld := [2]float64{0, 0}
	if rootNode, ok := t.arena.Get(root.key); ok && rootNode.Parent != nil {
		if parentNode, ok := t.arena.Get(rootNode.Parent.key); ok {
			rootParentWorld = [2]float64{parentNode.WorldTranslation.X, parentNode.WorldTranslation.Y}
		}
	}

	nodeStack := []frame{{id: root, parentSum: 0}}
	sumStack := [][2]float64{rootParentWorld}

	for len(nodeStack) > 0 {
		n := len(nodeStack) - 1
		f := nodeStack[n]
		nodeStack = nodeStack[:n]

		node, ok := t.arena.Get(f.id.key)
		if !ok {
			continue
		}
		parentWorld := sumStack[f.parentSum]
		world := [2]float64{
			parentWorld[0] + node.LocalTranslation.X,
			parentWorld[1] + node.LocalTranslation.Y,
		}
		node.WorldTranslation.X = world[0]
		node.WorldTranslation.Y = world[1]
		node.Positioned = true

		sumStack = append(sumStack, world)
		here := len(sumStack) - 1
		for _, child := range node.Children {
			nodeStack = append(nodeStack, frame{id: child, parentSum: here})
		}
	}
}

// UpdateTranslations recomputes world translations for every node whose
// local translation changed since the last Layout or UpdateTranslations
// call, without running the constraint or build passes. Use this when
// nodes have been repositioned (SetLocalTranslation) but no size or
// hierarchy edits need resolving.
func (t *Tree) UpdateTranslations() {
	translationDirty := t.translationDirty
	t.translationDirty = newDepthSet()
	t.propagateTranslations(translationDirty)
}
