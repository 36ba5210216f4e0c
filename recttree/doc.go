// Package recttree implements a hierarchical rectangle layout engine: a
// forest of axis-aligned-rectangle nodes whose sizes and positions are
// derived from parent-imposed constraints and child-reported sizes, rebuilt
// incrementally after edits via a three-phase pass (constraint down, size
// up, position down).
//
// Nodes are addressed by NodeId, a generational handle backed by
// sparsearena.Arena so that a removed node's id can never silently alias a
// reused slot. Callers drive layout by inserting/removing/mutating nodes,
// scheduling affected ones with ScheduleRelayout, and calling Layout with a
// LayoutWorld that resolves a LayoutSolver per node.
package recttree
