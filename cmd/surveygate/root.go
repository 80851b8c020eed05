package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "surveygate",
	Short: "Mock-driven verification for the survey intake pipeline",
	Long: "Surveygate validates the survey intake flow end to end (form layout,\n" +
		"response data, OCR auto-fill, spreadsheet write-back and confirmation\n" +
		"mail) against in-process mocks of every external system.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
