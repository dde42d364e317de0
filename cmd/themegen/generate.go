package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/themegen/internal/themegen"
)

var generateCmd = &cobra.Command{
	Use:     "generate [output]",
	Aliases: []string{"gen"},
	Short:   "Generate the theme file from design tokens",
	Long: `Load every token file, validate it, and write the composed @theme block.
The file is only rewritten when its content changes.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("diff", false, "Print a line diff of the theme when it changes")
}

func runGenerate(_ *cobra.Command, args []string) error {
	opts := buildWriteOptions(args)

	result, err := themegen.WriteThemeToFile(opts)
	if err != nil {
		return fmt.Errorf("failed to create theme file: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	reporter := themegen.NewReporter(os.Stdout, themegen.ShouldUseColors(getBoolWithFallback("color", "color", false)))
	reporter.PrintResult(result)
	if getBoolWithFallback("diff", "generate.diff", false) {
		reporter.PrintDiff(result)
	}

	return nil
}
