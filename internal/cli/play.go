package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versokit/verso/internal/harness"
)

// PlayOptions holds flags and collaborators for the play command.
type PlayOptions struct {
	*RootOptions
	TokenGen TokenGenerator
}

// PlayResult is the JSON payload of the play command.
type PlayResult struct {
	RunToken string                  `json:"run_token"`
	Scenario string                  `json:"scenario"`
	Pass     bool                    `json:"pass"`
	Trace    []harness.TraceEvent    `json:"trace"`
	Timeline []harness.TimelineEntry `json:"timeline"`
	Live     string                  `json:"live"`
	Errors   []string                `json:"errors,omitempty"`
}

// NewPlayCommand creates the play command. The token generator is injectable
// so tests can pin run tokens.
func NewPlayCommand(rootOpts *RootOptions, tokenGen TokenGenerator) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts, TokenGen: tokenGen}

	cmd := &cobra.Command{
		Use:   "play <scenario.yaml>",
		Short: "Play a timeline scenario and report its trace",
		Long: `Play a YAML timeline scenario against a fresh history engine.

The scenario's steps (save, undo, redo, restore) run in order; the command
prints one trace line per step, the final retained timeline, and the
assertion outcome.

Exit codes:
  0 - scenario ran and all assertions held
  1 - scenario ran but assertions failed
  2 - command error (missing file, invalid scenario, unknown op)

Examples:
  verso play examples/branch-truncation.yaml
  verso play examples/branch-truncation.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd, args[0])
		},
	}

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command, path string) error {
	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	payload := PlayResult{
		RunToken: opts.TokenGen.Generate(),
		Scenario: scenario.Name,
		Pass:     result.Pass,
		Trace:    result.Trace,
		Timeline: result.Timeline,
		Live:     result.Live,
		Errors:   result.Errors,
	}

	if opts.Format == "json" {
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		if result.Pass {
			if err := f.JSON(payload); err != nil {
				return err
			}
		} else {
			if err := f.JSONError("assertions failed", payload); err != nil {
				return err
			}
		}
	} else {
		printPlayText(cmd, opts, scenario, payload)
	}

	if !result.Pass {
		return NewExitError(ExitFailure, fmt.Sprintf("%d assertion(s) failed", len(result.Errors)))
	}
	return nil
}

func printPlayText(cmd *cobra.Command, opts *PlayOptions, scenario *harness.Scenario, payload PlayResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Scenario: %s (run %s)\n", payload.Scenario, payload.RunToken)
	if opts.Verbose && scenario.Description != "" {
		fmt.Fprintf(out, "%s\n", scenario.Description)
	}
	fmt.Fprintln(out)

	for _, ev := range payload.Trace {
		outcome := "applied"
		if !ev.Applied {
			outcome = "no-op"
		}
		fmt.Fprintf(out, "  [%d] %-7s %-7s version=%d count=%d live=%q\n",
			ev.Seq, ev.Op, outcome, ev.Version, ev.Count, ev.Live)
	}

	fmt.Fprintln(out)
	printTimelineText(out, payload.Timeline)

	fmt.Fprintln(out)
	if payload.Pass {
		fmt.Fprintf(out, "Assertions: %d passed\n", len(scenario.Assertions))
	} else {
		fmt.Fprintf(out, "Assertions: %d failed\n", len(payload.Errors))
		for _, msg := range payload.Errors {
			fmt.Fprintf(out, "  - %s\n", msg)
		}
	}
}
