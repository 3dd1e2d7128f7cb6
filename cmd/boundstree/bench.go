package main

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tanglebrook/go-boundstree/aabb"
	"github.com/tanglebrook/go-boundstree/bvtree"
)

type benchOptions struct {
	scene       string
	entries     int
	updates     int
	queries     int
	seed        int64
	worldExtent float64
	maxBoxSize  float64
}

func benchCommand() *cobra.Command {
	var opts benchOptions
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure insert, update and query throughput",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBench(&opts)
		},
	}
	cmd.Flags().StringVar(&opts.scene, "scene", "", "scene file to load instead of generating one")
	cmd.Flags().IntVar(&opts.entries, "entries", 100000, "number of generated entries")
	cmd.Flags().IntVar(&opts.updates, "updates", 100000, "number of update operations")
	cmd.Flags().IntVar(&opts.queries, "queries", 10000, "number of query probes")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "generator seed")
	cmd.Flags().Float64Var(&opts.worldExtent, "world-extent", 1000, "half extent of the generated world cube")
	cmd.Flags().Float64Var(&opts.maxBoxSize, "max-box-size", 10, "largest generated box edge")
	return cmd
}

func runBench(opts *benchOptions) error {
	runLog := log.WithField("run", uuid.NewString()[:8])

	var entries []sceneEntry
	if opts.scene != "" {
		var err error
		if entries, err = loadScene(opts.scene); err != nil {
			return err
		}
		runLog.WithField("scene", opts.scene).Infof("loaded %d entries", len(entries))
	} else {
		entries = randomEntries(opts.entries, opts.seed, opts.worldExtent, opts.maxBoxSize)
	}
	if len(entries) == 0 {
		return errors.New("nothing to benchmark: the scene is empty")
	}

	tree := bvtree.NewWithCapacity[int](len(entries))
	rng := rand.New(rand.NewSource(opts.seed + 1))

	start := time.Now()
	for _, e := range entries {
		if err := tree.Insert(e.Key, e.box()); err != nil {
			return errors.Wrapf(err, "inserting key %d", e.Key)
		}
	}
	reportPhase(runLog, "insert", len(entries), time.Since(start))

	start = time.Now()
	for i := 0; i < opts.updates; i++ {
		e := entries[rng.Intn(len(entries))]
		if err := tree.Update(e.Key, jitter(e.box(), rng, opts.maxBoxSize)); err != nil {
			return errors.Wrapf(err, "updating key %d", e.Key)
		}
	}
	reportPhase(runLog, "update", opts.updates, time.Since(start))

	var hits int
	probes := randomEntries(opts.queries, opts.seed+2, opts.worldExtent, opts.maxBoxSize*4)
	start = time.Now()
	results := make([]int, 0, 64)
	for _, p := range probes {
		results = tree.Query(p.box(), results[:0])
		hits += len(results)
	}
	elapsed := time.Since(start)
	reportPhase(runLog, "query", len(probes), elapsed)
	runLog.WithFields(log.Fields{
		"probes":   len(probes),
		"avg_hits": float64(hits) / float64(len(probes)),
		"depth":    tree.MaxDepth(),
		"count":    tree.Count(),
	}).Info("query profile")

	if err := tree.Validate(); err != nil {
		return errors.Wrap(err, "tree failed validation after benchmark")
	}
	return nil
}

// jitter shifts b by a random offset of up to scale on each axis,
// imitating an object moving between frames.
func jitter(b aabb.Box, rng *rand.Rand, scale float64) aabb.Box {
	offset := mgl64.Vec3{
		(rng.Float64()*2 - 1) * scale,
		(rng.Float64()*2 - 1) * scale,
		(rng.Float64()*2 - 1) * scale,
	}
	return aabb.New(b.Min.Add(offset), b.Max.Add(offset))
}

func reportPhase(l *log.Entry, phase string, ops int, elapsed time.Duration) {
	rate := float64(ops) / elapsed.Seconds()
	l.WithFields(log.Fields{
		"ops":     ops,
		"elapsed": elapsed.Round(time.Millisecond).String(),
		"per_sec": int(rate),
	}).Infof("%s phase done", phase)
}
