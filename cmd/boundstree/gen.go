package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func genCommand() *cobra.Command {
	var (
		out         string
		entries     int
		seed        int64
		worldExtent float64
		maxBoxSize  float64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random scene file for bench and check",
		RunE: func(_ *cobra.Command, _ []string) error {
			scene := randomEntries(entries, seed, worldExtent, maxBoxSize)
			if err := writeScene(out, scene); err != nil {
				return err
			}
			log.WithFields(log.Fields{"path": out, "entries": entries, "seed": seed}).Info("scene written")
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "scene.json", "output path")
	cmd.Flags().IntVar(&entries, "entries", 10000, "number of entries to generate")
	cmd.Flags().Int64Var(&seed, "seed", 1, "generator seed")
	cmd.Flags().Float64Var(&worldExtent, "world-extent", 1000, "half extent of the world cube")
	cmd.Flags().Float64Var(&maxBoxSize, "max-box-size", 10, "largest generated box edge")
	return cmd
}
