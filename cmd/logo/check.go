package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/salgue441/logo-dialect-analyzer/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check file.logo",
	Short: "Fail-fast lexical check of a Logo source file",
	Long:  `check scans a Logo source file and stops at the first lexical error, exiting non-zero`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	limits, err := manifestLimits(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	result, err := driver.TokenizeStrict(filePath, driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Limits:         limits,
	})
	if err != nil {
		return err
	}

	if !quiet(cmd) {
		fmt.Fprintf(os.Stdout, "%s: ok (%d tokens)\n", filePath, len(result.Tokens))
	}
	return nil
}
