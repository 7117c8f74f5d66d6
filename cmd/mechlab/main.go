package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("mechlab")
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "mechlab",
		Short:        "orbit integrator and axial bar solver",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("data", ".mechlab", "data directory (env MECHLAB_DATA)")
	_ = v.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	store := func() *storage.Store {
		return storage.New(v.GetString("data"))
	}

	orbitCmd := &cobra.Command{
		Use:   "orbit",
		Short: "n-body gravity simulation",
	}

	orbitRunCmd := &cobra.Command{
		Use:   "run",
		Short: "run an orbit simulation and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrbit(cmd, store())
		},
	}
	orbitFlags(orbitRunCmd)
	orbitRunCmd.Flags().String("pdf", "", "write a PDF report")

	orbitLiveCmd := &cobra.Command{
		Use:   "live",
		Short: "run an orbit simulation with live visualization",
		RunE:  liveOrbit,
	}
	orbitFlags(orbitLiveCmd)
	orbitLiveCmd.Flags().Int("fps", 10, "frame rate")

	orbitBenchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the integrator",
		RunE:  benchOrbit,
	}
	orbitBenchCmd.Flags().String("preset", "earth-moon", "orbit preset")
	orbitBenchCmd.Flags().String("profile", "", "write a cpu profile to this directory")

	orbitCmd.AddCommand(orbitRunCmd, orbitLiveCmd, orbitBenchCmd)

	beamCmd := &cobra.Command{
		Use:   "beam",
		Short: "axial bar stiffness solver",
	}

	beamSolveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a chain of axial elements and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveBeam(cmd, store())
		},
	}
	beamSolveCmd.Flags().String("config", "", "config file path (yaml)")
	beamSolveCmd.Flags().String("preset", "", "use preset configuration")
	beamSolveCmd.Flags().String("xlsx", "", "read elements from a spreadsheet")
	beamSolveCmd.Flags().String("xlsx-out", "", "write results to a spreadsheet")
	beamSolveCmd.Flags().String("pdf", "", "write a PDF report")

	beamTemplateCmd := &cobra.Command{
		Use:   "template [file]",
		Short: "write an element spreadsheet to fill in",
		Args:  cobra.ExactArgs(1),
		RunE:  beamTemplate,
	}
	beamTemplateCmd.Flags().String("preset", "single", "preset to prefill")

	beamCmd.AddCommand(beamSolveCmd, beamTemplateCmd)

	presetsCmd := &cobra.Command{
		Use:       "presets [orbit|beam]",
		Short:     "list available presets",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{storage.KindOrbit, storage.KindBeam},
		RunE:      listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, store())
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotRun(cmd, store(), args[0])
		},
	}
	plotCmd.Flags().String("svg", "", "also write orbit paths to an svg file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store().ExportJSON(cmd.OutOrStdout(), args[0])
		},
	}

	rootCmd.AddCommand(orbitCmd, beamCmd, presetsCmd, listCmd, plotCmd, exportJSONCmd)
	return rootCmd
}

func orbitFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "config file path (yaml)")
	cmd.Flags().String("preset", "", "use preset configuration")
	cmd.Flags().Int("frames", config.DefaultFrames, "number of steps")
	cmd.Flags().Float64("dt-days", config.DefaultTimestepDays, "timestep in days")
	cmd.Flags().Float64("g", config.DefaultG, "gravitational constant in units of 1e-11")
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	kinds := []string{storage.KindOrbit, storage.KindBeam}
	if len(args) == 1 {
		kinds = args
	}
	for _, kind := range kinds {
		var names []string
		switch kind {
		case storage.KindOrbit:
			names = config.ListOrbitPresets()
		case storage.KindBeam:
			names = config.ListBeamPresets()
		default:
			return fmt.Errorf("unknown preset kind: %s", kind)
		}
		fmt.Fprintf(out, "presets for %s:\n", kind)
		for _, p := range names {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}

func listRuns(cmd *cobra.Command, st *storage.Store) error {
	runs, err := st.List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tPRESET\tSTEPS")
	for _, run := range runs {
		p := run.Preset
		if p == "" {
			p = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			p,
			run.Steps,
		)
	}
	return w.Flush()
}
