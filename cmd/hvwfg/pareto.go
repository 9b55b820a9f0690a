package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/hvgo/frontio"
	"github.com/hupe1980/hvgo/model"
	"github.com/hupe1980/hvgo/pareto"
	"github.com/spf13/cobra"
)

type paretoResult struct {
	File         string `json:"file"`
	Front        int    `json:"front"`
	NonDominated []int  `json:"non_dominated"`
	DominatedBy  []int  `json:"dominated_by"`
}

func newParetoCmd(a *app) *cobra.Command {
	var (
		maximize bool
		compress string
	)

	cmd := &cobra.Command{
		Use:   "pareto FILE...",
		Short: "Find the non-dominated points of every front",
		Long: `Positions and ranks are 1-based. dominated_by holds, for each input point,
the rank of the first surviving point dominating it, or 0 when it is non-dominated.
With --out the non-dominated fronts are stored in WFG text format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := frontio.ParseCompression(compress)
			if err != nil {
				return err
			}
			fronts, sources, err := a.loadFronts(cmd.Context(), args)
			if err != nil {
				return err
			}

			var opts []pareto.Option
			if maximize {
				opts = append(opts, pareto.WithMaximize())
			}

			results := make([]paretoResult, len(fronts))
			filtered := make([]model.Front, len(fronts))
			for i, f := range fronts {
				res, err := pareto.Find(f, opts...)
				if err != nil {
					return fmt.Errorf("%s front %d: %w", sources[i].File, sources[i].Index, err)
				}
				results[i] = paretoResult{
					File:         sources[i].File,
					Front:        sources[i].Index,
					NonDominated: oneBased(res.NonDominated()),
					DominatedBy:  oneBased(res.DRank),
				}
				filtered[i] = survivors(f, res)
			}

			var buf bytes.Buffer
			if a.jsonOut {
				if err := json.NewEncoder(&buf).Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					fmt.Fprintf(&buf, "%s#%d: %d of %d non-dominated\n", r.File, r.Front, len(r.NonDominated), len(r.DominatedBy))
					fmt.Fprintf(&buf, "  non_dominated: %s\n", joinInts(r.NonDominated))
					fmt.Fprintf(&buf, "  dominated_by:  %s\n", joinInts(r.DominatedBy))
				}
			}
			if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
				return err
			}

			if a.out == "" {
				return nil
			}
			var out bytes.Buffer
			w, err := frontio.NewWriter(&out, comp)
			if err != nil {
				return err
			}
			if err := frontio.Write(w, filtered); err != nil {
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}
			return a.put(cmd, out.Bytes())
		},
	}

	cmd.Flags().BoolVar(&maximize, "maximize", false, "treat larger objective values as better")
	cmd.Flags().StringVar(&compress, "compress", "none", "compression of the --out file: none, gzip, zstd or lz4")
	return cmd
}

// oneBased shifts 0-based positions up by one and maps -1 to 0.
func oneBased(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		if v >= 0 {
			out[i] = v + 1
		}
	}
	return out
}

// survivors copies the non-dominated points of f in lexicographic order.
func survivors(f model.Front, res *pareto.Result) model.Front {
	out := model.Front{
		Points:     res.K,
		Objectives: f.Objectives,
		Data:       make([]float64, 0, res.K*f.Objectives),
	}
	row := make([]float64, f.Objectives)
	for _, pos := range res.NonDominated() {
		out.Data = append(out.Data, f.Row(pos, row)...)
	}
	return out
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
