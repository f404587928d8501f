package main

import (
	"io"

	"github.com/cubeworks/rampcurve/internal/application/dto"
	"github.com/spf13/cobra"
)

var (
	compileOpts    = DefaultCommonOptions()
	compileFilters dto.FilterOptions
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile <recipes.csv>",
	Short: "Compile a recipe file and report every profile on one plot",
	Long: `Compile each recipe row into a profile and report the selected profiles
together. The time axis always spans the longest profile in the file.

Filtering:
  --profile choc,caramel          Report only these profiles
  --exclude-profile flat          Drop these profiles
  --filter "peak > 80"            Expression over name, initial, final,
                                  peak, duration and waypoints`,
	Example: `  rampcurve compile recipes.csv
  rampcurve compile recipes.csv --format csv -o profiles.csv
  rampcurve compile recipes.csv --filter "duration < 6 && peak >= 100"`,
	Args: cobra.ExactArgs(1),
	RunE: withContainer(&compileOpts, func(cc *CommandContext, cmd *cobra.Command, args []string) error {
		return runCompile(cc, cmd.OutOrStdout(), args[0], &compileOpts, compileFilters)
	}),
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileOpts.RegisterFlags(compileCmd)

	// Filtering flags
	compileCmd.Flags().StringSliceVar(&compileFilters.IncludeNames, "profile", nil, "Report only these profiles (comma-separated)")
	compileCmd.Flags().StringSliceVar(&compileFilters.ExcludeNames, "exclude-profile", nil, "Drop these profiles (comma-separated)")
	compileCmd.Flags().StringVar(&compileFilters.FilterExpression, "filter", "", "Filter expression (e.g. \"peak > 80\")")
}

// runCompile implements the core logic for the compile command.
func runCompile(cc *CommandContext, stdout io.Writer, recipePath string, opts *CommonOptions, filters dto.FilterOptions) error {
	report, err := cc.Container.CompileRecipesUseCase().Execute(cc.Context, dto.CompileRecipesRequest{
		RecipePath: recipePath,
		Metadata:   dto.RequestMetadata{RequestID: cc.RequestID},
		Filters:    filters,
		Execution:  opts.ExecutionOptions(),
	})
	if err != nil {
		return err
	}

	cc.Logger.Debug("writing report", "format", opts.Format, "file", opts.OutputFile)

	return opts.writeReport(cc.Container.FormatterFactory(), stdout, report)
}
