package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stateanchor/stateanchor/internal/pipeline"
)

var (
	sendTimeout time.Duration
	sendDate    string
	dryRun      bool
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Generate today's reflection and deliver it by email",
	Long: `Send performs one full daily run:
- Choose the day-of-year focus (categories + comparison profile)
- Select and resolve the 9-fact evidence pack (World Bank with fallbacks)
- Generate the reflection with the configured LLM provider
- Render the markdown subset to HTML and send one email

Example:
  stateanchor send
  stateanchor send --date 2026-03-01 --dry-run
  stateanchor send -v`,
	Args: cobra.NoArgs,
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 3*time.Minute, "overall run timeout")
	sendCmd.Flags().StringVar(&sendDate, "date", "", "run as this date (YYYY-MM-DD, default today UTC)")
	sendCmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate everything but skip the SMTP send")
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), sendTimeout)
	defer cancel()

	now, err := resolveDate(sendDate)
	if err != nil {
		return err
	}

	cfg := buildConfig()
	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	result, err := p.Run(ctx, now)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Day of year:   %d\n", result.DayOfYear)
		fmt.Fprintf(os.Stderr, "Focus:         %v\n", result.Focus.Categories)
		fmt.Fprintf(os.Stderr, "Pack size:     %d\n", len(result.Pack))
		fmt.Fprintf(os.Stderr, "Cited IDs:     %v\n", result.Reflection.CitedIDs)
		for _, w := range result.Reflection.Warnings {
			fmt.Fprintf(os.Stderr, "Warning:       %s\n", w)
		}
	}

	if dryRun {
		fmt.Fprintln(os.Stderr, "Dry run: skipping SMTP send")
		return nil
	}

	if err := p.Deliver(result); err != nil {
		return fmt.Errorf("deliver failed: %w", err)
	}
	return nil
}

// resolveDate parses --date, defaulting to now.
func resolveDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}
