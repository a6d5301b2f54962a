package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/salgue441/logo-dialect-analyzer/internal/diagfmt"
	"github.com/salgue441/logo-dialect-analyzer/internal/driver"
	"github.com/salgue441/logo-dialect-analyzer/internal/observ"
	"github.com/salgue441/logo-dialect-analyzer/internal/source"
	"github.com/salgue441/logo-dialect-analyzer/internal/ui"
)

var scanDirCmd = &cobra.Command{
	Use:   "scan-dir [flags] dir",
	Short: "Tokenize every *.logo file under a directory",
	Long:  `scan-dir walks a directory tree, scans every Logo file in parallel, and reports diagnostics per file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScanDir,
}

func init() {
	scanDirCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	scanDirCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
	scanDirCmd.Flags().Bool("progress", false, "render live per-file progress")
}

func runScanDir(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, _ := cmd.Flags().GetInt("jobs")
	withCache, _ := cmd.Flags().GetBool("cache")
	withProgress, _ := cmd.Flags().GetBool("progress")

	limits, err := manifestLimits(dir)
	if err != nil {
		return err
	}

	var cache *driver.TokenCache
	if withCache {
		cache, err = driver.OpenTokenCache("logo")
		if err != nil {
			return fmt.Errorf("failed to open token cache: %w", err)
		}
	}

	opts := driver.DirOptions{
		Options: driver.Options{
			MaxDiagnostics: maxDiagnostics(cmd),
			Limits:         limits,
		},
		Jobs:  jobs,
		Cache: cache,
	}

	timer := observ.NewTimer()
	scanPhase := timer.Begin("scan-dir")

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)

	if withProgress && isTerminal(os.Stdout) {
		files, err := driver.ListLogoFiles(dir)
		if err != nil {
			return err
		}

		events := make(chan driver.Event, len(files)*2+1)
		opts.Events = events

		var scanErr error
		scanDone := make(chan struct{})
		go func() {
			defer close(scanDone)
			fileSet, results, scanErr = driver.TokenizeDir(cmd.Context(), dir, opts)
		}()

		model := ui.NewProgressModel("scanning "+dir, files, events)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return err
		}
		<-scanDone
		if scanErr != nil {
			return scanErr
		}
	} else {
		fileSet, results, err = driver.TokenizeDir(context.Background(), dir, opts)
		if err != nil {
			return err
		}
	}
	timer.End(scanPhase, fmt.Sprintf("%d files", len(results)))

	totalErrors := 0
	totalTokens := 0
	cacheHits := 0
	for _, res := range results {
		totalErrors += res.Bag.ErrorCount()
		totalTokens += len(res.Tokens)
		if res.CacheHit {
			cacheHits++
		}

		// Load failures carry no spans; report them without source context.
		if res.Tokens == nil && res.Bag.HasErrors() {
			if first, ok := res.Bag.FirstError(); ok {
				fmt.Fprintf(os.Stderr, "%s: %s: %s\n", res.Path, first.Code.ID(), first.Message)
			}
			continue
		}

		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:    useColor(cmd, os.Stderr),
				PathMode: diagfmt.PathModeRelative,
			})
		}
	}

	if !quiet(cmd) {
		fmt.Fprintf(os.Stdout, "scanned %d files: %d tokens, %d errors",
			len(results), totalTokens, totalErrors)
		if withCache {
			fmt.Fprintf(os.Stdout, ", %d cache hits", cacheHits)
		}
		fmt.Fprintln(os.Stdout)
	}
	if showTimings(cmd) {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if totalErrors > 0 {
		return fmt.Errorf("%d lexical errors under %s", totalErrors, dir)
	}
	return nil
}
