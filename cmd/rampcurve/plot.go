package main

import (
	"io"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/spf13/cobra"
)

var plotOpts = DefaultCommonOptions()

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot <recipes.csv> <plots.csv|plots.yaml>",
	Short: "Arrange compiled profiles into the plots of a plot set",
	Long: `Compile a recipe file, then resolve each group of a plot set against the
compiled profiles. Every plot shares the same time axis.

A CSV plot set lists one group per line. A YAML plot set names its groups:

  apiVersion: 1.0.0
  plots:
    - title: Chocolate
      profiles: [dark, milk]`,
	Args: cobra.ExactArgs(2),
	RunE: withContainer(&plotOpts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		return runPlot(cc, cmd.OutOrStdout(), args[0], args[1], &plotOpts)
	}),
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotOpts.RegisterFlags(plotCmd)
}

// runPlot implements the core logic for the plot command.
func runPlot(cc *CommandContext, stdout io.Writer, recipePath, plotSetPath string, opts *CommonOptions) error {
	report, err := cc.Container.PlotProfilesUseCase().Execute(cc.Context, dto.PlotProfilesRequest{
		RecipePath:  recipePath,
		PlotSetPath: plotSetPath,
		Metadata:    dto.RequestMetadata{RequestID: cc.RequestID},
		Execution:   opts.ExecutionOptions(),
	})
	if err != nil {
		return err
	}

	cc.Logger.Debug("writing report", "format", opts.Format, "file", opts.OutputFile)

	return opts.writeReport(cc.Container.FormatterFactory(), stdout, report)
}
