package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/salgue441/logo-dialect-analyzer/internal/diagfmt"
	"github.com/salgue441/logo-dialect-analyzer/internal/driver"
	"github.com/salgue441/logo-dialect-analyzer/internal/observ"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.logo",
	Short: "Tokenize a Logo source file",
	Long:  `Tokenize scans a Logo source file into its classified token stream`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("stats", false, "print scan statistics")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withStats, _ := cmd.Flags().GetBool("stats")

	limits, err := manifestLimits(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	scanPhase := timer.Begin("scan")
	start := time.Now()

	result, err := driver.Tokenize(filePath, driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Limits:         limits,
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	timer.End(scanPhase, fmt.Sprintf("%d tokens", len(result.Tokens)))

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	if !quiet(cmd) {
		switch format {
		case "pretty":
			if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
				return err
			}
		case "json":
			if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.FileSet); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if withStats {
		stats := driver.ComputeStats(result, time.Since(start))
		fmt.Fprint(os.Stderr, stats.Summary())
	}
	if showTimings(cmd) {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%d lexical errors in %s", result.Bag.ErrorCount(), filePath)
	}
	return nil
}
