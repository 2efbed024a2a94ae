package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stateanchor/stateanchor/internal/bank"
	"github.com/stateanchor/stateanchor/internal/verify"
)

var (
	verifyTimeout time.Duration
	verifyStrict  bool
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every source URL in the fact bank for citation rot",
	Long: `Verify fetches each source URL the bank cites (robots.txt permitting,
rate-limited per host) and reports status, page title, and authority tier.

The bank is hand-curated; this command is what keeps the curation honest.

Example:
  stateanchor verify
  stateanchor verify --strict   # non-zero exit if any link is dead`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 5*time.Minute, "total timeout for all checks")
	verifyCmd.Flags().BoolVar(&verifyStrict, "strict", false, "exit non-zero when any source link is dead")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
	defer cancel()

	cfg := buildConfig()
	checker := verify.NewChecker(cfg.Verify, cfg.HTTP)
	urls := bank.SourceURLs()

	fmt.Fprintf(os.Stderr, "Checking %d source URLs with %d workers...\n\n", len(urls), cfg.Verify.Workers)

	start := time.Now()
	results := checker.Check(ctx, urls)
	summary := verify.Summarize(results, time.Since(start))

	for _, r := range results {
		switch {
		case r.Skipped:
			fmt.Printf("SKIP %-9s %s (robots.txt)\n", r.Authority, r.URL)
		case r.Accessible:
			title := r.Title
			if title == "" {
				title = "-"
			}
			fmt.Printf("OK   %-9s %-3d %s | %s\n", r.Authority, r.StatusCode, r.URL, title)
		default:
			reason := r.Error
			if reason == "" {
				reason = fmt.Sprintf("status %d", r.StatusCode)
			}
			fmt.Printf("DEAD %-9s %s (%s)\n", r.Authority, r.URL, reason)
		}
	}

	fmt.Printf("\n%d checked in %v: %d ok, %d dead, %d skipped (%d primary sources)\n",
		summary.Total, summary.Elapsed.Round(time.Millisecond),
		summary.Accessible, summary.Dead, summary.Skipped, summary.Primary)

	if verifyStrict && summary.Dead > 0 {
		return fmt.Errorf("%d dead source links", summary.Dead)
	}
	return nil
}
