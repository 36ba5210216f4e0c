package recttree

import (
	"github.com/phanxgames/rectree/geom"
	"github.com/phanxgames/rectree/sparsearena"
)

// NodeId is an opaque generational handle to a node, invalidated the
// instant the node is removed. The zero value is not reserved: it equals
// the id of the first node inserted into a new Tree.
type NodeId struct {
	key sparsearena.Key
}

// RectNode is the state tracked per node: its local translation (offset
// from its parent's world position), the constraint its parent last
// imposed on it, the size it last reported, its resolved world translation,
// and the bookkeeping the three-phase layout pass needs to skip unchanged
// subtrees.
type RectNode struct {
	Parent           *NodeId
	Children         []NodeId
	Depth            uint32
	LocalTranslation geom.Vec2
	WorldTranslation geom.Vec2
	Size             geom.Size
	ParentConstraint Constraint

	// Constrained, Built and Positioned are the three freshness bits:
	// whether this node's constraint, size and world translation are
	// already up to date with the current edit.
	Constrained bool
	Built       bool
	Positioned  bool
}

// WorldRect returns the node's current axis-aligned bounds in world space.
func (n RectNode) WorldRect() geom.Rect {
	return geom.RectFromOrigin(n.WorldTranslation, n.Size)
}

// NodeDesc describes a node to be inserted. The zero value describes a
// root node of zero size at the origin.
type NodeDesc struct {
	translation geom.Vec2
	size        geom.Size
	parent      *NodeId
}

// WithTranslation sets the node's initial local translation.
func (d NodeDesc) WithTranslation(v geom.Vec2) NodeDesc {
	d.translation = v
	return d
}

// WithSize sets the node's initial reported size.
func (d NodeDesc) WithSize(s geom.Size) NodeDesc {
	d.size = s
	return d
}

// WithParent attaches the node under parent instead of inserting it as a
// root.
func (d NodeDesc) WithParent(parent NodeId) NodeDesc {
	p := parent
	d.parent = &p
	return d
}

// FromRect builds a NodeDesc whose translation and size match rect's
// top-left corner and dimensions.
func FromRect(rect geom.Rect) NodeDesc {
	return NodeDesc{translation: rect.Min, size: rect.Size()}
}
