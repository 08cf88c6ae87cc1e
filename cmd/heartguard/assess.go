package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
	"github.com/hassaan217/HeartGuard-AI/internal/report"
	"github.com/hassaan217/HeartGuard-AI/internal/workflow"
)

const attemptsShown = 20

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Interactive assessment session",
	Long: `Opens an interactive loop: fill the form field by field or from a sample
profile, submit it, browse the session history and export reports.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cfg, logger)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "HeartGuard assessment ready.")
		fmt.Fprintf(out, "  Service: %s (%s) | Reports: %s\n", s.endpoint, cfg.Service.Transport, s.exportDir)
		fmt.Fprintln(out, "Type 'help' for commands, 'quit' to exit.")
		return runAssess(cmd.Context(), s, cmd.InOrStdin(), out)
	},
}

// #region loop
func runAssess(ctx context.Context, s *session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			printHelp(out)
		case "fields":
			renderFields(out)
		case "show":
			renderSnapshot(out, s.ctrl.Snapshot(), s.ctrl.Completion())
			if r, ok := s.ctrl.Current(); ok {
				fmt.Fprintln(out)
				renderResult(out, r)
			}
		case "set":
			field, value, _ := strings.Cut(rest, " ")
			if field == "" {
				fmt.Fprintln(out, "usage: set <field> <value>")
				continue
			}
			if err := s.ctrl.Set(field, strings.TrimSpace(value)); err != nil {
				renderError(out, err.Error())
			}
		case "sample":
			if err := s.ctrl.LoadSample(form.Profile(rest)); err != nil {
				renderError(out, err.Error())
				continue
			}
			fmt.Fprintf(out, "loaded %s sample\n", rest)
		case "reset":
			if err := s.ctrl.Reset(); err != nil {
				renderError(out, err.Error())
			}
		case "submit":
			submit(ctx, s.ctrl, out)
		case "history":
			renderHistory(out, s.ctrl.History())
		case "export":
			if err := exportResult(s, rest, out); err != nil {
				renderError(out, err.Error())
			}
		case "attempts":
			entries, err := s.ledger.Recent(attemptsShown)
			if err != nil {
				renderError(out, err.Error())
				continue
			}
			renderAttempts(out, entries)
		default:
			fmt.Fprintf(out, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return scanner.Err()
}

// #endregion loop

func submit(ctx context.Context, ctrl *workflow.Controller, out io.Writer) workflow.Outcome {
	outcome := ctrl.Submit(ctx)
	renderWarnings(out, outcome.Warnings)
	switch outcome.Status {
	case workflow.StatusSucceeded:
		renderResult(out, outcome.Result)
	default:
		renderError(out, outcome.Message)
	}
	return outcome
}

// exportResult writes the current result, or the history entry with the given id.
func exportResult(s *session, id string, out io.Writer) error {
	var (
		r  prediction.Result
		ok bool
	)
	if id == "" {
		r, ok = s.ctrl.Current()
		if !ok {
			return errors.New("no result to export")
		}
	} else if r, ok = s.ctrl.Find(id); !ok {
		return fmt.Errorf("no result with id %q in history", id)
	}
	path, err := report.Export(s.exportDir, r)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "report written to %s\n", path)
	return nil
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  fields                 list form fields and their encodings
  show                   show the form and the current result
  set <field> <value>    edit one field
  sample <profile>       load lowRisk, mediumRisk or highRisk
  submit                 validate and request a prediction
  reset                  restore defaults (history is kept)
  history                list the last results of this session
  export [id]            write a report for the current or a past result
  attempts               list recent submit attempts
  quit                   leave
`)
}
