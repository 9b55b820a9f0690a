package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type hvResult struct {
	File        string  `json:"file"`
	Front       int     `json:"front"`
	Hypervolume float64 `json:"hypervolume"`
}

func newHVCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hv FILE...",
		Short: "Print the hypervolume of every front",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fronts, sources, err := a.loadFronts(cmd.Context(), args)
			if err != nil {
				return err
			}

			start := time.Now()
			vols, err := a.engine.Hypervolume(fronts, a.reference())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			var buf bytes.Buffer
			if a.jsonOut {
				results := make([]hvResult, len(vols))
				for i, v := range vols {
					results[i] = hvResult{File: sources[i].File, Front: sources[i].Index, Hypervolume: v}
				}
				if err := json.NewEncoder(&buf).Encode(results); err != nil {
					return err
				}
			} else {
				for i, v := range vols {
					fmt.Fprintf(&buf, "hv(%d) = %1.10f\n", i+1, v)
				}
				fmt.Fprintf(&buf, "Total time = %f (s)\n", elapsed.Seconds())
			}
			return a.publish(cmd, buf.Bytes())
		},
	}
}
