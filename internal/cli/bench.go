package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ultralite-go/ultralite"
	"github.com/ultralite-go/ultralite/internal/bench"
	"github.com/ultralite-go/ultralite/internal/output"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Issue repeated GET requests and report latency percentiles",
	Long: `Bench issues a number of sequential GET requests against the URL and
prints a latency summary (min/p50/p90/p99/max) from an HDR histogram.
Requests run one at a time; there is no concurrent load generation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		count, _ := cmd.Flags().GetInt("requests")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if count < 1 {
			return fmt.Errorf("requests must be at least 1, got %d", count)
		}

		client := ultralite.NewClient(ultralite.WithTimeout(timeout))
		recorder := bench.NewRecorder()

		for i := 0; i < count; i++ {
			start := time.Now()
			resp, err := client.Get(cmd.Context(), url)
			latency := time.Since(start)

			failed := err != nil || resp.RaiseForStatus() != nil
			recorder.Record(latency, failed)
		}

		summary := recorder.Summarize()
		fmt.Fprint(cmd.OutOrStdout(), formatSummary(summary, noColor))
		return nil
	},
}

// formatSummary renders the latency summary for the terminal.
func formatSummary(s bench.Summary, noColor bool) string {
	icon := output.SuccessIcon(noColor)
	if s.Failures > 0 {
		icon = output.WarningIcon(noColor)
	}

	return fmt.Sprintf(
		"%s %d requests in %v (%d failed)\n"+
			"  min: %v\n"+
			"  p50: %v\n"+
			"  p90: %v\n"+
			"  p99: %v\n"+
			"  max: %v\n",
		icon, s.Requests, s.Elapsed.Round(time.Millisecond), s.Failures,
		s.Min, s.P50, s.P90, s.P99, s.Max)
}

func init() {
	benchCmd.Flags().IntP("requests", "n", 10, "Number of requests to issue")
	benchCmd.Flags().DurationP("timeout", "t", ultralite.DefaultTimeout, "Per-request timeout")
	benchCmd.Flags().Bool("no-color", false, "Disable colored output")
}
