package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/cubeworks/rampcurve/internal/application/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys shared by flags, RAMPCURVE_* environment variables and the
// config file.
const (
	keyFormat        = "output.format"
	keyParallel      = "build.parallel"
	keyMaxConcurrent = "build.max_concurrent_rows"
	keySkipHeader    = "recipes.skip_header"
)

// CommonOptions contains flags shared across all commands.
type CommonOptions struct {
	// Output
	Format     string
	OutputFile string

	// Execution
	Timeout       time.Duration
	MaxConcurrent int

	// Flags (bools grouped for alignment)
	Parallel   bool
	NoColor    bool
	SkipHeader bool
}

// DefaultCommonOptions returns sensible defaults.
func DefaultCommonOptions() CommonOptions {
	return CommonOptions{
		Timeout:    2 * time.Minute,
		Format:     "table",
		Parallel:   true,
		SkipHeader: true,
	}
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	// Execution
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", opts.Timeout,
		"Global timeout for entire execution (0 to disable)")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", opts.Parallel,
		"Compile recipe rows in parallel")
	cmd.Flags().IntVar(&opts.MaxConcurrent, "max-concurrent", opts.MaxConcurrent,
		"Maximum rows compiled at once (0 = one per CPU)")
	cmd.Flags().BoolVar(&opts.SkipHeader, "skip-header", opts.SkipHeader,
		"Treat the first recipe record as column titles")

	// Output
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Output format: table, json, yaml, csv")
	cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable colored table output")
}

// BindConfig binds the command's flags to their config keys, so a flag set
// on the command line wins over RAMPCURVE_* variables, which win over the
// config file.
func (opts *CommonOptions) BindConfig(cmd *cobra.Command, v *viper.Viper) error {
	bindings := map[string]string{
		keyFormat:        "format",
		keyParallel:      "parallel",
		keyMaxConcurrent: "max-concurrent",
		keySkipHeader:    "skip-header",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

// Resolve reads the merged values back from v.
func (opts *CommonOptions) Resolve(v *viper.Viper) {
	opts.Format = v.GetString(keyFormat)
	opts.Parallel = v.GetBool(keyParallel)
	opts.MaxConcurrent = v.GetInt(keyMaxConcurrent)
	opts.SkipHeader = v.GetBool(keySkipHeader)
}

// ApplyToContext applies timeout to context.
// Returns new context and cancel function.
func (opts *CommonOptions) ApplyToContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	// No timeout - return no-op cancel
	return ctx, func() {}
}

// ValidateFlags validates common options against the available formats.
func (opts *CommonOptions) ValidateFlags(formats []string) error {
	if !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %s)", opts.Format, strings.Join(formats, ", "))
	}
	if opts.MaxConcurrent < 0 {
		return fmt.Errorf("--max-concurrent must not be negative, got %d", opts.MaxConcurrent)
	}
	return nil
}

// ExecutionOptions converts the options to the use-case form.
func (opts *CommonOptions) ExecutionOptions() dto.ExecutionOptions {
	return dto.ExecutionOptions{
		Parallel:          opts.Parallel,
		MaxConcurrentRows: opts.MaxConcurrent,
	}
}

// writeReport renders report in the selected format to the output file, or
// to stdout when none is set.
func (opts *CommonOptions) writeReport(factory ports.OutputFormatterFactory, stdout io.Writer, report *dto.PlotReport) error {
	writer := stdout
	if opts.OutputFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(opts.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
	}

	formatter, err := factory.Create(opts.Format, writer, ports.FormatterOptions{
		Indent:  true,
		NoColor: opts.NoColor || opts.OutputFile != "",
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}
