// Package rectree and its subpackages implement two geometric engines and a
// CLI that exercises both, without any rendering or windowing:
//
//   - [recttree] is a hierarchical rectangle layout engine: a forest of
//     rectangle nodes whose sizes and positions are resolved incrementally
//     from parent-imposed constraints and child-reported sizes.
//   - [spatree] is a static spatial index over axis-aligned rectangles: a
//     linear bounding volume hierarchy built from Morton (Z-order) codes,
//     queried by point or by rectangle.
//   - [geom] holds the 2D primitives both engines share: points, sizes,
//     and axis-aligned rectangles.
//   - [sparsearena] is the generational slot map recttree uses to hand out
//     node handles that can't silently alias a removed node's slot.
//   - cmd/rectreectl is a small Cobra CLI that builds sample trees, runs a
//     layout or query pass, and logs the results.
//
// # Quick start
//
//	tree := recttree.New()
//	root := tree.Insert(recttree.NodeDesc{})
//	child := tree.Insert(recttree.NodeDesc{}.WithParent(root).WithSize(geom.Size{Width: 10, Height: 10}))
//	tree.Layout(myLayoutWorld)
//	rect := tree.Get(child).WorldRect()
//
//	index := spatree.New()
//	id := index.PushRect(rect)
//	index.Build(func(r geom.Rect) geom.Vec2 { return r.Center() })
//	hits := index.QueryPoint(geom.Vec2{X: 5, Y: 5})
package rectree
