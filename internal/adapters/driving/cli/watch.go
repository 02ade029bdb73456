package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run whenever new archives arrive",
	Long: `Watches the input directory and runs the batch each time new zip
archives appear. Archives written in quick succession are handled by one run.

A failed run is reported and watching continues. Declining the degraded-mode
confirmation stops the watch. Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var watchQuiet time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchQuiet, "quiet", 2*time.Second, "Wait this long after the last change before running")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}
	if watchArchives == nil {
		return errors.New("watcher not configured")
	}

	settings, err := resolveSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	batches, err := watchArchives(ctx, settings, watchQuiet)
	if err != nil {
		return fmt.Errorf("watching %s: %w", settings.InputDir, err)
	}

	cmd.Printf("Watching %s for %s (Ctrl+C to stop)\n", settings.InputDir, settings.ArchivePattern)

	for {
		select {
		case <-ctx.Done():
			return nil
		case batch, ok := <-batches:
			if !ok {
				return nil
			}
			cmd.Printf("\n%d new archive(s)\n", len(batch))

			summary, err := runService.Run(ctx, settings, &consoleObserver{cmd: cmd})
			switch {
			case errors.Is(err, domain.ErrDeclined):
				return describeRunError(err, settings)
			case ctx.Err() != nil:
				return nil
			case err != nil:
				logger.Warn("%v", describeRunError(err, settings))
				continue
			}

			// Confirmed once; later runs in this session do not ask again.
			settings.AssumeYes = true
			printSummary(cmd, summary, settings)
		}
	}
}
