package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"surveygate/internal/collab/files"
	"surveygate/internal/collab/forms"
	"surveygate/internal/collab/mail"
	"surveygate/internal/collab/ocrengine"
	"surveygate/internal/collab/sheets"
	"surveygate/internal/harness"
	"surveygate/internal/platform/config"
	"surveygate/internal/platform/logger"
	"surveygate/internal/platform/metrics"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the verification suite and exit non-zero on any failure",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New()

	runner := harness.New(
		log,
		metrics.New(),
		cfg,
		forms.MockClient{Latency: cfg.Mocks.Forms},
		&sheets.MockClient{Latency: cfg.Mocks.Sheets},
		&mail.MockClient{Latency: cfg.Mocks.Mail},
		files.MockClient{Latency: cfg.Mocks.Files},
		ocrengine.MockClient{Latency: cfg.Mocks.OCR},
	)

	report := harness.NewReport()
	runner.Run(cmd.Context(), report)

	for _, result := range report.Results() {
		fmt.Printf("[%s] %s\n", result.Status, result.Name)
		if result.Err != nil {
			fmt.Printf("        %v\n", result.Err)
		}
	}
	passed, failed, errored := report.Tally()
	fmt.Printf("passed %d, failed %d, errored %d (%d%%)\n",
		passed, failed, errored, report.SuccessRate())

	if report.Failed() {
		return fmt.Errorf("verification suite failed: %d of %d checks did not pass",
			failed+errored, len(report.Results()))
	}
	return nil
}
