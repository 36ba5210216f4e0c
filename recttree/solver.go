package recttree

import "github.com/phanxgames/rectree/geom"

// LayoutWorld resolves the LayoutSolver to use for a given node during a
// Layout pass. Implementations typically hold whatever external state
// (widget kind, text metrics, user data) determines each node's behavior.
type LayoutWorld interface {
	Solver(id NodeId) LayoutSolver
}

// LayoutSolver is the per-node behavior a Layout pass consults twice: once
// top-down to turn the constraint a node's parent imposed into the
// constraint it imposes on its own children (Constraint), and once
// bottom-up to turn a node's children's sizes into the node's own size,
// positioning those children along the way (Build).
//
// Build may read any node in the tree reachable from the tree it's given,
// but must only write through the supplied Positioner and its own returned
// size; mutating the tree through any other channel is a contract
// violation and its effects are unspecified.
type LayoutSolver interface {
	// Constraint derives the constraint this node imposes on its children
	// from the constraint its own parent imposed on it.
	Constraint(parent Constraint) Constraint

	// Build reports this node's size given its current children (already
	// built by the time Build runs), and positions each child by calling
	// positioner.Set; those translations are committed after Build returns.
	Build(id NodeId, tree *Tree, positioner *Positioner) geom.Size
}

// IdentityConstraint implements LayoutSolver.Constraint by forwarding the
// parent's constraint unchanged. Embed it in a solver that doesn't need to
// narrow constraints for its children, matching the identity default the
// source trait gives Constraint when a solver doesn't override it.
type IdentityConstraint struct{}

// Constraint returns parent unchanged.
func (IdentityConstraint) Constraint(parent Constraint) Constraint { return parent }
