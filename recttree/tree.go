package recttree

import (
	"github.com/phanxgames/rectree/geom"
	"github.com/phanxgames/rectree/sparsearena"
)

// Tree is a forest of RectNodes. The zero value is not usable; construct
// one with New.
type Tree struct {
	arena   *sparsearena.Arena[RectNode]
	rootIDs map[NodeId]struct{}

	// scheduled holds nodes pending the constraint/build passes of the next
	// Layout call, seeded by Insert and ScheduleRelayout.
	scheduled *depthSet

	// translationDirty holds nodes pending the translation-propagation pass
	// of the next Layout call (or of UpdateTranslations), seeded by Insert,
	// ScheduleRelayout and SetLocalTranslation, and grown during Phase B
	// whenever a node's size change forces its parent to reposition it.
	translationDirty *depthSet
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{
		arena:            sparsearena.New[RectNode](),
		rootIDs:          make(map[NodeId]struct{}),
		scheduled:        newDepthSet(),
		translationDirty: newDepthSet(),
	}
}

// Insert adds a new node described by desc, returning its NodeId. If desc
// has a parent, the new node is appended to that parent's children and its
// depth is one greater than its parent's; otherwise it becomes a root at
// depth 0. The new node starts unconstrained, unbuilt and unpositioned and
// is scheduled for the next Layout call. It panics if desc's parent is not
// live.
func (t *Tree) Insert(desc NodeDesc) NodeId {
	if desc.parent != nil && !t.arena.Contains(desc.parent.key) {
		panic("recttree: Insert called with a dead parent NodeId")
	}
	key := t.arena.InsertWith(func(arena *sparsearena.Arena[RectNode], k sparsearena.Key) RectNode {
		id := NodeId{key: k}
		depth := uint32(0)
		if desc.parent != nil {
			if parentNode, ok := arena.Get(desc.parent.key); ok {
				parentNode.Children = append(parentNode.Children, id)
				depth = parentNode.Depth + 1
			}
		}
		return RectNode{
			Parent:           desc.parent,
			LocalTranslation: desc.translation,
			Size:             desc.size,
			Depth:            depth,
		}
	})
	id := NodeId{key: key}
	node, _ := t.arena.Get(key)
	if node.Parent == nil {
		t.rootIDs[id] = struct{}{}
	}
	t.scheduled.insert(node.Depth, id)
	t.translationDirty.insert(node.Depth, id)
	return id
}

// Remove deletes id and its entire subtree. Returns false if id does not
// refer to a live node.
func (t *Tree) Remove(id NodeId) bool {
	node, ok := t.arena.Get(id.key)
	if !ok {
		return false
	}

	if node.Parent != nil {
		if parentNode, ok := t.arena.Get(node.Parent.key); ok {
			parentNode.Children = removeNodeId(parentNode.Children, id)
		}
	} else {
		delete(t.rootIDs, id)
	}

	stack := []NodeId{id}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		curNode, ok := t.arena.Get(cur.key)
		if !ok {
			continue
		}
		stack = append(stack, curNode.Children...)
		t.arena.Remove(cur.key)
	}
	return true
}

func removeNodeId(s []NodeId, id NodeId) []NodeId {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// TryGet returns a copy of id's node state, and false if id is not live.
func (t *Tree) TryGet(id NodeId) (RectNode, bool) {
	n, ok := t.arena.Get(id.key)
	if !ok {
		return RectNode{}, false
	}
	return *n, true
}

// Get returns a copy of id's node state. It panics if id is not live:
// callers that cannot guarantee liveness should use TryGet.
func (t *Tree) Get(id NodeId) RectNode {
	n, ok := t.TryGet(id)
	if !ok {
		panic("recttree: Get called with a dead NodeId")
	}
	return n
}

// RootIDs returns the ids of every root node, in no particular order.
func (t *Tree) RootIDs() []NodeId {
	out := make([]NodeId, 0, len(t.rootIDs))
	for id := range t.rootIDs {
		out = append(out, id)
	}
	return out
}

// NeedsRelayout reports whether any node is currently scheduled for the
// next Layout call.
func (t *Tree) NeedsRelayout() bool {
	return !t.scheduled.empty() || !t.translationDirty.empty()
}

// ScheduleRelayout marks id as needing work: it clears id's constrained,
// built and positioned freshness bits (forcing Layout to reconsider its
// constraint, size and world translation) and queues it for both the constraint/build passes and the
// translation-propagation pass of the next Layout call. Returns true iff id
// was not already scheduled (false if id is not live, or was already
// pending from an earlier call).
func (t *Tree) ScheduleRelayout(id NodeId) bool {
	node, ok := t.arena.Get(id.key)
	if !ok {
		return false
	}
	node.Constrained = false
	node.Built = false
	node.Positioned = false
	newlyScheduled := t.scheduled.insert(node.Depth, id)
	t.translationDirty.insert(node.Depth, id)
	return newlyScheduled
}

// SetLocalTranslation sets id's local translation directly, without
// touching its constraint or size, and schedules id so the next Layout (or
// UpdateTranslations) call propagates the change to id's world translation
// and its subtree's. Returns false if id is not live.
func (t *Tree) SetLocalTranslation(id NodeId, v geom.Vec2) bool {
	node, ok := t.arena.Get(id.key)
	if !ok {
		return false
	}
	node.LocalTranslation = v
	node.Positioned = false
	t.translationDirty.insert(node.Depth, id)
	return true
}
