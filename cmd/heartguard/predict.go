package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/report"
	"github.com/hassaan217/HeartGuard-AI/internal/workflow"
)

var (
	predictSample string
	predictSets   []string
	predictExport bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Submit one assessment and print the result",
	Example: `  heartguard predict --sample highRisk
  heartguard predict --sample mediumRisk --set age=61 --set bp=150 --export`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cfg, logger)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := fillForm(s.ctrl, predictSample, predictSets); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		outcome := submit(cmd.Context(), s.ctrl, out)
		if outcome.Unreachable {
			return fmt.Errorf("prediction service unreachable at %s", s.endpoint)
		}
		if outcome.Status != workflow.StatusSucceeded {
			return fmt.Errorf("prediction %s", outcome.Status)
		}
		if predictExport {
			path, err := report.Export(s.exportDir, outcome.Result)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "report written to %s\n", path)
		}
		return nil
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictSample, "sample", "", "Start from a sample profile (lowRisk, mediumRisk, highRisk)")
	predictCmd.Flags().StringArrayVar(&predictSets, "set", nil, "Set a field, field=value (repeatable)")
	predictCmd.Flags().BoolVar(&predictExport, "export", false, "Write a report to the export directory")
}

func fillForm(ctrl *workflow.Controller, sample string, sets []string) error {
	if sample != "" {
		if err := ctrl.LoadSample(form.Profile(sample)); err != nil {
			return err
		}
	}
	for _, kv := range sets {
		field, value, err := parseAssignment(kv)
		if err != nil {
			return err
		}
		if err := ctrl.Set(field, value); err != nil {
			return err
		}
	}
	return nil
}
