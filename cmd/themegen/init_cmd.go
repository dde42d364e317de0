package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .themegen.yaml config file",
	Long:  `Create a .themegen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".themegen.yaml"); err == nil && !force {
			return fmt.Errorf(".themegen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".themegen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .themegen.yaml")
		return nil
	},
}

const defaultConfig = `# themegen configuration
# Precedence: flags > THEMEGEN_* env vars > this file > defaults

tokens-dir: design-tokens
output: theme.css
root-size: 16      # px per rem
verbose: false
color: false

# Generation settings
generate:
  diff: false      # print a line diff when the theme changes

# Watch mode settings
watch:
  glob: "**/*.json"   # relative to tokens-dir
  debounce: 50ms
  ignore-file: ""     # defaults to <tokens-dir>/.gitignore
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
