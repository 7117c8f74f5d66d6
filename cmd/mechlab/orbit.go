package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pkg/profile"
	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/gravity"
	"github.com/san-kum/mechlab/internal/metrics"
	"github.com/san-kum/mechlab/internal/report"
	"github.com/san-kum/mechlab/internal/storage"
	"github.com/san-kum/mechlab/internal/viz"
	"github.com/spf13/cobra"
)

const defaultOrbitPreset = "earth-moon"

// orbitConfig resolves a preset or config file, then applies explicit flags on top.
func orbitConfig(cmd *cobra.Command) (*config.OrbitConfig, string, error) {
	flags := cmd.Flags()
	presetName, _ := flags.GetString("preset")
	configFile, _ := flags.GetString("config")

	var cfg *config.OrbitConfig
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = &loaded.Orbit
		presetName = ""
	default:
		if presetName == "" {
			presetName = defaultOrbitPreset
		}
		cfg = config.GetOrbitPreset(presetName)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListOrbitPresets())
		}
	}

	if flags.Changed("frames") {
		cfg.Frames, _ = flags.GetInt("frames")
	}
	if flags.Changed("dt-days") {
		cfg.TimestepDays, _ = flags.GetFloat64("dt-days")
	}
	if flags.Changed("g") {
		cfg.G, _ = flags.GetFloat64("g")
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, presetName, nil
}

func runOrbit(cmd *cobra.Command, st *storage.Store) error {
	cfg, presetName, err := orbitConfig(cmd)
	if err != nil {
		return err
	}
	sys, err := cfg.System()
	if err != nil {
		return err
	}
	if err := st.Init(); err != nil {
		return err
	}

	params := cfg.Params()
	ms := metrics.Defaults(params.G)
	tr := &storage.Trajectory{}
	observe := func(s *gravity.System) bool {
		tr.Record(s)
		for _, m := range ms {
			m.Observe(s)
		}
		return true
	}
	observe(sys)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %d steps of %.3g days...\n", cfg.Frames, cfg.TimestepDays)
	start := time.Now()

	if err := sys.Run(cmd.Context(), params, cfg.Frames, observe); err != nil {
		return err
	}
	elapsed := time.Since(start)

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	runID, err := st.SaveOrbit(storage.RunMetadata{
		Preset:  presetName,
		G:       params.G,
		Dt:      params.Dt,
		Steps:   sys.Steps,
		Metrics: values,
	}, tr)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n\n", runID)
	fmt.Fprint(out, viz.Bodies(sys))
	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range ms {
		fmt.Fprintf(out, "  %s: %.6g\n", m.Name(), m.Value())
	}

	if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
		if err := writeFile(pdfPath, func(w io.Writer) error {
			return report.OrbitPDF(w, runID, sys, values)
		}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(out, "report: %s\n", pdfPath)
	}
	return nil
}

func liveOrbit(cmd *cobra.Command, args []string) error {
	cfg, presetName, err := orbitConfig(cmd)
	if err != nil {
		return err
	}
	sys, err := cfg.System()
	if err != nil {
		return err
	}
	fps, _ := cmd.Flags().GetInt("fps")

	title := presetName
	if title == "" {
		title = "orbit"
	}
	final, err := viz.RunOrbit(viz.NewOrbitModel(sys, cfg.Params(), cfg.Scale(), cfg.Frames, fps, title))
	if err != nil {
		return err
	}
	if final.Err() != nil {
		return final.Err()
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.Bodies(final.System()))
	return nil
}

func benchOrbit(cmd *cobra.Command, args []string) error {
	presetName, _ := cmd.Flags().GetString("preset")
	cfg := config.GetOrbitPreset(presetName)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListOrbitPresets())
	}

	if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop()
	}

	params := cfg.Params()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %s\n\n", presetName)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tTIME\tSTEPS/SEC")

	for _, n := range []int{1000, 10000, 100000} {
		sys, err := cfg.System()
		if err != nil {
			return err
		}
		start := time.Now()
		if err := sys.Run(context.Background(), params, n, nil); err != nil {
			return err
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d\t%v\t%.0f\n", n, elapsed.Round(time.Microsecond), float64(n)/elapsed.Seconds())
	}
	return w.Flush()
}
