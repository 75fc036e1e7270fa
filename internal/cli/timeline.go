package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/versokit/verso/internal/harness"
)

// TimelineOptions holds flags for the timeline command.
type TimelineOptions struct {
	*RootOptions
}

// TimelineResult is the JSON payload of the timeline command.
type TimelineResult struct {
	Scenario string                  `json:"scenario"`
	Timeline []harness.TimelineEntry `json:"timeline"`
}

// NewTimelineCommand creates the timeline command.
func NewTimelineCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimelineOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "timeline <scenario.yaml>",
		Short: "Play a scenario and print only the retained timeline",
		Long: `Play a YAML timeline scenario and print the final retained snapshot
sequence: version, optional tag, state, and capture time. Assertions are not
evaluated; use play for the full trace and assertion report.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeline(opts, cmd, args[0])
		},
	}

	return cmd
}

func runTimeline(opts *TimelineOptions, cmd *cobra.Command, path string) error {
	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	if opts.Format == "json" {
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return f.JSON(TimelineResult{Scenario: scenario.Name, Timeline: result.Timeline})
	}

	printTimelineText(cmd.OutOrStdout(), result.Timeline)
	return nil
}

// printTimelineText renders the retained timeline, oldest first. Shared by
// the play and timeline commands.
func printTimelineText(out io.Writer, timeline []harness.TimelineEntry) {
	fmt.Fprintln(out, "Timeline:")
	if len(timeline) == 0 {
		fmt.Fprintln(out, "  (empty)")
		return
	}
	for _, entry := range timeline {
		if entry.Tag != "" {
			fmt.Fprintf(out, "  v%-4d %-24q %s  tag=%s\n", entry.Version, entry.State, entry.CreatedAt, entry.Tag)
		} else {
			fmt.Fprintf(out, "  v%-4d %-24q %s\n", entry.Version, entry.State, entry.CreatedAt)
		}
	}
}
