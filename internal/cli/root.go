// Package cli implements the tokenscope command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	tserrors "github.com/tokenscope/tokenscope/internal/errors"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	info = color.New(color.FgCyan).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tokenscope",
		Short: "Measure token savings of page snapshots against raw HTML",
		Long: `Tokenscope compares the token footprint of a browser tool's condensed
page snapshots against the raw HTML they were produced from.

It feeds both texts through the same tokenizer (tiktoken when its
encoding data is available, a deterministic approximation otherwise)
and reports per-source and total savings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewCompareCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tokenscope %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print error with hint if available
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		var terr *tserrors.TokenscopeError
		if errors.As(err, &terr) && terr.Hint != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", dim(terr.Hint))
		}
		return err
	}
	return nil
}

// printSuccess prints a success message.
func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}

// printInfo prints an info line.
func printInfo(label, value string) {
	fmt.Printf("  %s: %s\n", dim(label), value)
}
