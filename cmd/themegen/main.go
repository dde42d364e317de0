// Package main provides the themegen CLI for generating a CSS theme from
// design token files.
package main

import (
	"context"
	"os"

	"github.com/yacobolo/themegen/internal/themegen"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		useColors := themegen.ShouldUseColors(getBoolWithFallback("color", "color", false))
		themegen.NewReporter(os.Stderr, useColors).PrintFailure(err)
		os.Exit(1)
	}
}
