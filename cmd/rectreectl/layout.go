package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/rectree/geom"
	"github.com/phanxgames/rectree/recttree"
)

func newLayoutCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Build a sample recttree.Tree, lay it out, and log each node's world rect",
	}
	cmd.Flags().Int("depth", 3, "tree depth below the root")
	cmd.Flags().Int("fanout", 2, "children per non-leaf node")
	cmd.Flags().Float64("leaf-width", 10, "width reported by each leaf node")
	cmd.Flags().Float64("leaf-height", 10, "height reported by each leaf node")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, v, "depth", "fanout", "leaf-width", "leaf-height"); err != nil {
			return err
		}
		return runLayout(
			v.GetInt("depth"),
			v.GetInt("fanout"),
			v.GetFloat64("leaf-width"),
			v.GetFloat64("leaf-height"),
		)
	}
	return cmd
}

// columnStackWorld lays each node's children out in a single column,
// stacked top to bottom, and treats nodes with no children as leaves
// reporting a fixed externally-assigned size.
type columnStackWorld struct {
	leafSize geom.Size
}

func (w columnStackWorld) Solver(recttree.NodeId) recttree.LayoutSolver {
	return columnStackSolver{leafSize: w.leafSize}
}

type columnStackSolver struct {
	recttree.IdentityConstraint
	leafSize geom.Size
}

func (s columnStackSolver) Build(id recttree.NodeId, tree *recttree.Tree, p *recttree.Positioner) geom.Size {
	node := tree.Get(id)
	if len(node.Children) == 0 {
		return s.leafSize
	}
	var width, y float64
	for _, child := range node.Children {
		childSize := tree.Get(child).Size
		p.Set(child, geom.Vec2{X: 0, Y: y})
		y += childSize.Height
		if childSize.Width > width {
			width = childSize.Width
		}
	}
	return geom.Size{Width: width, Height: y}
}

func runLayout(depth, fanout int, leafWidth, leafHeight float64) error {
	tree := recttree.New()
	root := tree.Insert(recttree.NodeDesc{})
	buildSampleTree(tree, root, depth, fanout)

	world := columnStackWorld{leafSize: geom.Size{Width: leafWidth, Height: leafHeight}}
	tree.Layout(world)

	logTreeRects(tree, root, 0)
	return nil
}

func buildSampleTree(tree *recttree.Tree, parent recttree.NodeId, depth, fanout int) {
	if depth <= 0 {
		return
	}
	for i := 0; i < fanout; i++ {
		child := tree.Insert(recttree.NodeDesc{}.WithParent(parent))
		buildSampleTree(tree, child, depth-1, fanout)
	}
}

func logTreeRects(tree *recttree.Tree, id recttree.NodeId, depth int) {
	node := tree.Get(id)
	log.WithFields(log.Fields{
		"depth": depth,
		"rect":  node.WorldRect(),
	}).Info("rectreectl: node laid out")
	for _, child := range node.Children {
		logTreeRects(tree, child, depth+1)
	}
}
