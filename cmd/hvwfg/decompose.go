package main

import (
	"bytes"
	"encoding/json"

	"github.com/hupe1980/hvgo/rect"
	"github.com/spf13/cobra"
)

type decomposition struct {
	File        string      `json:"file"`
	Front       int         `json:"front"`
	Hypervolume float64     `json:"hypervolume"`
	Rectangles  []rect.Rect `json:"rectangles"`
}

func newDecomposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose FILE...",
		Short: "Print the signed boxes whose volumes sum to each hypervolume",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fronts, sources, err := a.loadFronts(cmd.Context(), args)
			if err != nil {
				return err
			}

			lists, err := a.engine.Decompose(fronts, a.reference())
			if err != nil {
				return err
			}

			out := make([]decomposition, len(lists))
			for i, l := range lists {
				out[i] = decomposition{
					File:        sources[i].File,
					Front:       sources[i].Index,
					Hypervolume: l.SignedVolume(),
					Rectangles:  l.Rects(),
				}
			}

			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			if !a.jsonOut {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(out); err != nil {
				return err
			}
			return a.publish(cmd, buf.Bytes())
		},
	}
}
