package main

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/report"
	"github.com/san-kum/mechlab/internal/storage"
	"github.com/spf13/cobra"
)

const maxPlottedBodies = 4

func plotRun(cmd *cobra.Command, st *storage.Store, runID string) error {
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "kind: %s\n", meta.Kind)

	switch meta.Kind {
	case storage.KindBeam:
		disp, err := st.LoadDisplacements(runID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "nodes: %d\n\n", len(disp))
		fmt.Fprintln(out, asciigraph.Plot(disp,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("displacement (m) by node"),
		))
		return nil

	case storage.KindOrbit:
		states, _, err := st.LoadStates(runID)
		if err != nil {
			return err
		}
		if len(states) == 0 {
			return fmt.Errorf("no data to plot")
		}
		fmt.Fprintf(out, "samples: %d\n\n", len(states))

		for b, name := range meta.Bodies {
			if b == maxPlottedBodies {
				fmt.Fprintf(out, "(%d more bodies not shown)\n", len(meta.Bodies)-b)
				break
			}
			xs := make([]float64, len(states))
			ys := make([]float64, len(states))
			for i, row := range states {
				if 4*b+1 >= len(row) {
					return fmt.Errorf("run %s: state row %d is too short", runID, i)
				}
				xs[i] = row[4*b] / config.Kilometer
				ys[i] = row[4*b+1] / config.Kilometer
			}
			fmt.Fprintln(out, asciigraph.PlotMany([][]float64{xs, ys},
				asciigraph.Height(8),
				asciigraph.Width(60),
				asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
				asciigraph.Caption(fmt.Sprintf("%s x (red) and y (blue), km", name)),
			))
			fmt.Fprintln(out)
		}

		if path, _ := cmd.Flags().GetString("svg"); path != "" {
			if err := writeFile(path, func(w io.Writer) error {
				return report.OrbitSVG(w, meta.Bodies, states, 800, 800)
			}); err != nil {
				return err
			}
			fmt.Fprintf(out, "svg: %s\n", path)
		}
		return nil

	default:
		return fmt.Errorf("run %s: unknown kind %q", runID, meta.Kind)
	}
}
