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
	previewTimeout time.Duration
	previewDate    string
	previewHTML    string
	previewText    string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate today's reflection without sending it",
	Long: `Preview runs the full generation path and stops before SMTP:
the reflection text goes to stdout (or --text), the rendered HTML body
to --html if given.

Example:
  stateanchor preview
  stateanchor preview --date 2026-07-01 --html body.html --text body.txt`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().DurationVar(&previewTimeout, "timeout", 3*time.Minute, "overall run timeout")
	previewCmd.Flags().StringVar(&previewDate, "date", "", "run as this date (YYYY-MM-DD, default today UTC)")
	previewCmd.Flags().StringVar(&previewHTML, "html", "", "write rendered HTML body to this path")
	previewCmd.Flags().StringVar(&previewText, "text", "", "write reflection text to this path instead of stdout")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), previewTimeout)
	defer cancel()

	now, err := resolveDate(previewDate)
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

	if previewText != "" {
		if err := os.WriteFile(previewText, []byte(result.Reflection.Text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	} else {
		fmt.Println(result.Reflection.Text)
	}

	if previewHTML != "" {
		if err := os.WriteFile(previewHTML, []byte(result.HTML), 0o644); err != nil {
			return fmt.Errorf("write HTML: %w", err)
		}
	}

	for _, w := range result.Reflection.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	return nil
}
