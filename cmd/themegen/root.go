package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "themegen [output]",
	Short: "Generate a CSS @theme block from design token files",
	Long: `Validate JSON design tokens (colors, fonts, spacing, text sizes, weights,
line heights, viewports) and render them as CSS custom properties in a single
@theme block. Spacing and text sizes become fluid clamp() values.

A bare argument is treated as the output path.`,
	Example: `  themegen                          # writes theme.css
  themegen --output dist/theme.css  # writes into dist/
  themegen watch                    # regenerate on token changes`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig must run here because generateCmd's PreRunE is not
	// triggered when delegating via rootCmd.RunE.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.StringP("output", "o", "theme.css", "Output path for the theme file")
	f.StringP("tokens-dir", "t", "design-tokens", "Directory containing the token JSON files")
	f.Float64("root-size", 16, "Root font size in pixels for rem conversion")
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("config", ".themegen.yaml", "Config file path")

	// Generate-only flags are accepted on the root command as well
	rootCmd.Flags().Bool("diff", false, "Print a line diff of the theme when it changes")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
