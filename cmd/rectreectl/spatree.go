package main

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/rectree/geom"
	"github.com/phanxgames/rectree/spatree"
)

func newSpatreeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spatree",
		Short: "Build a spatree.Tree over random rects and run a point and a rect query",
	}
	cmd.Flags().Int64("seed", time.Now().UnixNano(), "PRNG seed for the generated rects")
	cmd.Flags().Int("count", 1000, "number of rects to generate")
	cmd.Flags().Float64("extent", 1000, "side length of the square region rects are generated within")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd, v, "seed", "count", "extent"); err != nil {
			return err
		}
		return runSpatree(v.GetInt64("seed"), v.GetInt("count"), v.GetFloat64("extent"))
	}
	return cmd
}

func runSpatree(seed int64, count int, extent float64) error {
	runID := uuid.New()
	rng := rand.New(rand.NewSource(seed))

	tree := spatree.New()
	for i := 0; i < count; i++ {
		x0 := rng.Float64() * extent
		y0 := rng.Float64() * extent
		w := rng.Float64()*extent*0.05 + 1
		h := rng.Float64()*extent*0.05 + 1
		tree.PushRect(geom.NewRect(x0, y0, x0+w, y0+h))
	}

	buildStart := time.Now()
	tree.Build(func(r geom.Rect) geom.Vec2 { return r.Center() })
	buildElapsed := time.Since(buildStart)

	point := geom.Vec2{X: extent / 2, Y: extent / 2}
	pointStart := time.Now()
	pointHits := tree.QueryPoint(point)
	pointElapsed := time.Since(pointStart)

	region := geom.NewRect(extent*0.25, extent*0.25, extent*0.75, extent*0.75)
	rectStart := time.Now()
	rectHits := tree.QueryRect(region)
	rectElapsed := time.Since(rectStart)

	log.WithFields(log.Fields{
		"run_id":        runID,
		"seed":          seed,
		"rect_count":    count,
		"build_elapsed": buildElapsed,
	}).Info("rectreectl: spatree built")

	log.WithFields(log.Fields{
		"run_id":  runID,
		"point":   point,
		"hits":    len(pointHits),
		"elapsed": pointElapsed,
	}).Info("rectreectl: point query")

	log.WithFields(log.Fields{
		"run_id":  runID,
		"region":  region,
		"hits":    len(rectHits),
		"elapsed": rectElapsed,
	}).Info("rectreectl: rect query")

	return nil
}
