package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cubeworks/rampcurve/internal/domain/entities"
	"github.com/cubeworks/rampcurve/internal/infrastructure/config"
	"github.com/cubeworks/rampcurve/internal/infrastructure/system"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// sampleRecipes are the starter rows offered by init, keyed by profile name.
// Cooling steps use a negative rate.
var sampleRecipes = map[string][]string{
	"dark":    {"dark", "20", "0.5", "2", "50", "0.25", "-1", "28", "0.1", "0.5", "31", "1"},
	"milk":    {"milk", "20", "0.5", "2", "45", "0.25", "-1", "27", "0.1", "0.5", "30", "1"},
	"caramel": {"caramel", "25", "0", "3", "160", "0.2", "1", "180", "0.5"},
	"proof":   {"proof", "21", "1", "0.5", "27", "2"},
}

// sampleOrder fixes the order samples are offered and written in.
var sampleOrder = []string{"dark", "milk", "caramel", "proof"}

// InitOptions holds the answers that shape the generated project.
type InitOptions struct {
	Dir           string
	Title         string
	Format        string
	Samples       []string
	Force         bool
	NoInteractive bool
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a starter config, recipe file and plot set",
	Long: `Write config.yaml, recipes.csv and plots.yaml into dir (default: the
current directory). Unless --no-interactive is set, prompts for the chart
title, the default output format and which sample recipes to include.`,
	Example: `  rampcurve init
  rampcurve init kitchen --no-interactive --samples dark,caramel`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("title", "", "Chart title")
	initCmd.Flags().String("format", "", "Default output format")
	initCmd.Flags().StringSlice("samples", nil, "Sample recipes to include ("+strings.Join(sampleOrder, ", ")+")")
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("no-interactive", false, "Disable interactive prompts")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	opts := InitOptions{Dir: "."}
	if len(args) == 1 {
		opts.Dir = args[0]
	}

	opts.Title, _ = cmd.Flags().GetString("title")
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Samples, _ = cmd.Flags().GetStringSlice("samples")
	opts.Force, _ = cmd.Flags().GetBool("force")
	opts.NoInteractive, _ = cmd.Flags().GetBool("no-interactive")

	if !opts.NoInteractive {
		if err := promptInitOptions(&opts); err != nil {
			return err
		}
	}

	files, err := generateInitFiles(opts)
	if err != nil {
		return err
	}

	if err := writeInitFiles(opts.Dir, files, opts.Force); err != nil {
		return err
	}

	for _, name := range initFileOrder {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filepath.Join(opts.Dir, name))
	}
	return nil
}

func promptInitOptions(opts *InitOptions) error {
	var err error

	if opts.Title == "" {
		opts.Title = system.DefaultConfig().Chart.Title
		err = huh.NewInput().
			Title("Chart title").
			Value(&opts.Title).
			Run()
		if err != nil {
			return err
		}
	}

	if opts.Format == "" {
		err = huh.NewSelect[string]().
			Title("Default output format").
			Options(
				huh.NewOption("Table (terminal)", "table"),
				huh.NewOption("JSON", "json"),
				huh.NewOption("YAML", "yaml"),
				huh.NewOption("CSV (one row per waypoint)", "csv"),
			).
			Value(&opts.Format).
			Run()
		if err != nil {
			return err
		}
	}

	if len(opts.Samples) == 0 {
		options := make([]huh.Option[string], 0, len(sampleOrder))
		for _, name := range sampleOrder {
			options = append(options, huh.NewOption(name, name).Selected(true))
		}
		err = huh.NewMultiSelect[string]().
			Title("Sample recipes to include").
			Options(options...).
			Value(&opts.Samples).
			Run()
		if err != nil {
			return err
		}
	}

	return nil
}

// initFileOrder is the order files are reported in.
var initFileOrder = []string{"config.yaml", "recipes.csv", "plots.yaml"}

// generateInitFiles renders the starter files for opts.
func generateInitFiles(opts InitOptions) (map[string][]byte, error) {
	cfg := system.DefaultConfig()
	if opts.Title != "" {
		cfg.Chart.Title = opts.Title
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if err := system.NewConfigLoader().Validate(cfg); err != nil {
		return nil, err
	}

	samples := opts.Samples
	if len(samples) == 0 {
		samples = sampleOrder
	}

	var recipes strings.Builder
	recipes.WriteString("name,initial,hold,rate,target,...\n")
	for _, name := range samples {
		row, ok := sampleRecipes[name]
		if !ok {
			return nil, fmt.Errorf("unknown sample recipe: %s (available: %s)", name, strings.Join(sampleOrder, ", "))
		}
		recipes.WriteString(strings.Join(row, ",") + "\n")
	}

	configYAML, err := cfg.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}

	plotSet := config.PlotSetDocument{
		APIVersion: "1.0.0",
		Plots: []entities.PlotGroup{
			{Title: "All recipes", Profiles: samples},
		},
	}
	plotsYAML, err := yaml.Marshal(plotSet)
	if err != nil {
		return nil, fmt.Errorf("failed to render plot set: %w", err)
	}

	return map[string][]byte{
		"config.yaml": configYAML,
		"recipes.csv": []byte(recipes.String()),
		"plots.yaml":  plotsYAML,
	}, nil
}

// writeInitFiles writes files into dir. Existing files are left untouched
// unless force is set.
func writeInitFiles(dir string, files map[string][]byte, force bool) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if !force {
		for _, name := range initFileOrder {
			_, err := os.Stat(filepath.Join(dir, name))
			if err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", filepath.Join(dir, name))
			}
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}
	}

	for _, name := range initFileOrder {
		if err := os.WriteFile(filepath.Join(dir, name), files[name], 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}
