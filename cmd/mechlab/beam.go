package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/fem"
	"github.com/san-kum/mechlab/internal/report"
	"github.com/san-kum/mechlab/internal/storage"
	"github.com/san-kum/mechlab/internal/viz"
	"github.com/spf13/cobra"
)

const defaultBeamPreset = "single"

func beamConfig(cmd *cobra.Command) (*config.BeamConfig, string, error) {
	flags := cmd.Flags()
	presetName, _ := flags.GetString("preset")
	configFile, _ := flags.GetString("config")
	xlsxPath, _ := flags.GetString("xlsx")

	var cfg *config.BeamConfig
	switch {
	case xlsxPath != "":
		elements, err := report.LoadElements(xlsxPath)
		if err != nil {
			return nil, "", err
		}
		cfg = &config.BeamConfig{Elements: elements}
		presetName = ""
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = &loaded.Beam
		presetName = ""
	default:
		if presetName == "" {
			presetName = defaultBeamPreset
		}
		cfg = config.GetBeamPreset(presetName)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListBeamPresets())
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, presetName, nil
}

func solveBeam(cmd *cobra.Command, st *storage.Store) error {
	cfg, presetName, err := beamConfig(cmd)
	if err != nil {
		return err
	}
	elements := cfg.Chain()
	res, err := fem.Solve(elements)
	if err != nil {
		return err
	}

	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.SaveBeam(storage.RunMetadata{Preset: presetName}, elements, res)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run id: %s\n\n", runID)
	fmt.Fprint(out, viz.Beam(elements, res))

	if path, _ := cmd.Flags().GetString("xlsx-out"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			return report.WriteBeamResult(w, elements, res)
		}); err != nil {
			return fmt.Errorf("write spreadsheet: %w", err)
		}
		fmt.Fprintf(out, "spreadsheet: %s\n", path)
	}
	if path, _ := cmd.Flags().GetString("pdf"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			return report.BeamPDF(w, runID, elements, res)
		}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(out, "report: %s\n", path)
	}
	return nil
}

func beamTemplate(cmd *cobra.Command, args []string) error {
	presetName, _ := cmd.Flags().GetString("preset")
	cfg := config.GetBeamPreset(presetName)
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListBeamPresets())
	}
	if err := writeFile(args[0], func(w io.Writer) error {
		return report.WriteElements(w, cfg.Elements)
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "template: %s\n", args[0])
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
