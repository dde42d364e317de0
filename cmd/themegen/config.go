package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/themegen/internal/devloop"
	"github.com/yacobolo/themegen/internal/themegen"
)

var k = koanf.New(".")

// flagKeys maps subcommand flags onto their config file section.
var flagKeys = map[string]string{
	"diff":        "generate.diff",
	"glob":        "watch.glob",
	"debounce":    "watch.debounce",
	"ignore-file": "watch.ignore-file",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".themegen.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence; unchanged flags only fill gaps)
	provider := posflag.ProviderWithFlag(cmd.Flags(), ".", k, func(f *pflag.Flag) (string, interface{}) {
		key := f.Name
		if mapped, ok := flagKeys[key]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(cmd.Flags(), f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (THEMEGEN_* prefix)
	if err := k.Load(env.Provider("THEMEGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variables onto config keys:
//
//	THEMEGEN_TOKENS_DIR     -> tokens-dir
//	THEMEGEN_WATCH__GLOB    -> watch.glob
//	THEMEGEN_GENERATE__DIFF -> generate.diff
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "THEMEGEN_"))
	s = strings.ReplaceAll(s, "__", ".")
	return strings.ReplaceAll(s, "_", "-")
}

// buildWriteOptions constructs the generation options from koanf state.
// A positional argument overrides the configured output path.
func buildWriteOptions(args []string) themegen.WriteOptions {
	output := getStringWithFallback("output", "output", "theme.css")
	if len(args) > 0 && args[0] != "" {
		output = args[0]
	}

	return themegen.WriteOptions{
		OutputPath: output,
		TokensDir:  getStringWithFallback("tokens-dir", "tokens-dir", "design-tokens"),
		RootSize:   getFloat64WithFallback("root-size", "root-size", themegen.DefaultRootSize),
	}
}

// buildWatchOptions constructs the watcher options from koanf state.
func buildWatchOptions(args []string) devloop.Options {
	write := buildWriteOptions(args)

	ignoreFile := getStringWithFallback("ignore-file", "watch.ignore-file", "")
	if ignoreFile == "" {
		// Tokens dir .gitignore is honoured when present
		ignoreFile = filepath.Join(write.TokensDir, ".gitignore")
	}

	return devloop.Options{
		TokensDir:  write.TokensDir,
		OutputPath: write.OutputPath,
		RootSize:   write.RootSize,
		Glob:       getStringWithFallback("glob", "watch.glob", "**/*.json"),
		IgnoreFile: ignoreFile,
		Debounce:   getDurationWithFallback("debounce", "watch.debounce", devloop.DefaultDebounce),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}
