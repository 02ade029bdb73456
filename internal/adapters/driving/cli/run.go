package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Extract, normalise and clean up once",
	Long: `Extracts every archive in the input directory, normalises each CSV file
found there into the output directory and deletes the extracted files.

Per-file failures are reported and skipped. The run fails when the input
directory is missing, nothing could be extracted, no CSV files were found,
or the degraded-mode confirmation is declined.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

var (
	heavyRule = strings.Repeat("=", 60)
	lightRule = strings.Repeat("-", 60)
)

func runBatch(cmd *cobra.Command, _ []string) error {
	if runService == nil {
		return errors.New("run service not configured")
	}

	settings, err := resolveSettings()
	if err != nil {
		return err
	}

	cmd.Println(heavyRule)
	cmd.Println("csvnorm: Japanese CSV normalisation")
	cmd.Println(heavyRule)
	cmd.Printf("\nInput:  %s\n", settings.InputDir)
	cmd.Printf("Output: %s\n\n", settings.OutputDir)

	summary, err := runService.Run(cmd.Context(), settings, &consoleObserver{cmd: cmd})
	if err != nil {
		return describeRunError(err, settings)
	}

	printSummary(cmd, summary, settings)
	return nil
}

// describeRunError adds operator guidance to fatal run errors.
func describeRunError(err error, settings domain.Settings) error {
	switch {
	case errors.Is(err, domain.ErrDeclined):
		return fmt.Errorf("aborted: %w", err)
	case errors.Is(err, domain.ErrInputDirNotFound):
		return fmt.Errorf("%w: %s (create it and place the zip archives there)", err, settings.InputDir)
	case errors.Is(err, domain.ErrNoArchives):
		return fmt.Errorf("%w in %s", err, settings.InputDir)
	case errors.Is(err, domain.ErrNoTables):
		return fmt.Errorf("%w matching %s in %s", err, settings.TablePattern, settings.InputDir)
	default:
		return fmt.Errorf("run failed: %w", err)
	}
}

func printSummary(cmd *cobra.Command, summary *domain.RunSummary, settings domain.Settings) {
	cmd.Println(heavyRule)
	cmd.Println("All done.")
	cmd.Printf("Normalised CSV files: %s\n", settings.OutputDir)
	if summary.Degraded {
		cmd.Println("Note: script normalisation was skipped.")
	}
	cmd.Println(heavyRule)
}

// consoleObserver prints run progress to the command's output.
type consoleObserver struct {
	cmd *cobra.Command
}

func (o *consoleObserver) PhaseStarted(phase domain.Phase, total int) {
	switch phase {
	case domain.PhaseExtract:
		o.cmd.Printf("[Extract] %d archive(s)\n", total)
	case domain.PhaseNormalise:
		o.cmd.Printf("[Normalise] %d CSV file(s)\n", total)
	case domain.PhaseCleanup:
		o.cmd.Println("[Cleanup] removing extracted files")
	}
	o.cmd.Println(lightRule)
}

func (o *consoleObserver) FileStarted(phase domain.Phase, path string) {
	switch phase {
	case domain.PhaseExtract:
		o.cmd.Printf("extracting: %s\n", filepath.Base(path))
	case domain.PhaseNormalise:
		o.cmd.Printf("normalising: %s\n", filepath.Base(path))
	}
}

func (o *consoleObserver) FileDone(result domain.FileResult) {
	name := filepath.Base(result.Path)
	switch result.Phase {
	case domain.PhaseExtract:
		if result.OK() {
			o.cmd.Printf("   ok (%d files)\n", result.Count)
		} else {
			o.cmd.Printf("   error: %v\n", result.Err)
		}
	case domain.PhaseNormalise:
		if result.OK() {
			o.cmd.Printf("   wrote: %s\n", filepath.Base(result.Output))
		} else {
			o.cmd.Printf("   error: %v\n", result.Err)
		}
	case domain.PhaseCleanup:
		if result.OK() {
			o.cmd.Printf("deleted: %s\n", name)
		} else {
			o.cmd.Printf("   delete failed: %s: %v\n", name, result.Err)
		}
	}
}

func (o *consoleObserver) PhaseDone(phase domain.Phase, results []domain.FileResult) {
	switch phase {
	case domain.PhaseExtract:
		files := 0
		for _, r := range results {
			files += r.Count
		}
		o.cmd.Printf("\nExtracted: %d file(s)\n\n", files)
	case domain.PhaseNormalise:
		o.cmd.Printf("\nNormalised: %d/%d file(s)\n\n", countOK(results), len(results))
	case domain.PhaseCleanup:
		o.cmd.Printf("\nCleanup: %d file(s) deleted\n\n", countOK(results))
	}
}

func countOK(results []domain.FileResult) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			n++
		}
	}
	return n
}
