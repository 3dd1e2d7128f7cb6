package main

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tanglebrook/go-boundstree/bvtree"
)

func checkCommand() *cobra.Command {
	var scene string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Replay a scene file and verify every tree invariant",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCheck(scene)
		},
	}
	cmd.Flags().StringVar(&scene, "scene", "", "scene file to replay (required)")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}

func runCheck(scene string) error {
	entries, err := loadScene(scene)
	if err != nil {
		return err
	}

	tree := bvtree.NewWithCapacity[int](len(entries))
	for _, e := range entries {
		if err := tree.Insert(e.Key, e.box()); err != nil {
			return errors.Wrapf(err, "inserting key %d", e.Key)
		}
	}

	if err := tree.Validate(); err != nil {
		return errors.Wrapf(err, "scene %s produced an inconsistent tree", scene)
	}

	depth := tree.MaxDepth()
	fields := log.Fields{
		"entries": tree.Count(),
		"depth":   depth,
	}
	if n := tree.Count(); n > 1 {
		fields["log2_entries"] = math.Ceil(math.Log2(float64(n)))
	}
	log.WithFields(fields).Info("scene checks out")
	return nil
}
