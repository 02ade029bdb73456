// Package cli provides the cobra command tree for csvnorm.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
	"github.com/custodia-labs/csvnorm/internal/logger"
	"github.com/custodia-labs/csvnorm/internal/stages"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// ArchiveWatcher streams batches of new archive paths under the settings'
// input directory until ctx is cancelled.
type ArchiveWatcher func(ctx context.Context, settings domain.Settings, quiet time.Duration) (<-chan []string, error)

// Services holds everything the commands need.
type Services struct {
	Settings driving.SettingsService
	Run      driving.RunService

	// Normaliser builds a normalise service with or without the script stage.
	Normaliser func(scriptEnabled bool) driving.NormaliseService

	// Stages lists every stage that can be applied on its own.
	Stages *stages.Registry

	Watch ArchiveWatcher
}

// Builder creates the services once flags are parsed.
type Builder func(configDir string) (*Services, error)

var (
	settingsService driving.SettingsService
	runService      driving.RunService
	newNormaliser   func(scriptEnabled bool) driving.NormaliseService
	stageRegistry   *stages.Registry
	watchArchives   ArchiveWatcher

	builder Builder
)

// Persistent flag values.
var (
	verboseFlag  bool
	configDir    string
	inputFlag    string
	outputFlag   string
	assumeYes    bool
	noScriptFlag bool
	envFile      string
)

var rootCmd = &cobra.Command{
	Use:   "csvnorm",
	Short: "Normalise Japanese CSV exports",
	Long: `csvnorm extracts the zip archives in the input directory, normalises
every cell of the CSV files they contain and writes the results to the
output directory. Extracted intermediates are removed afterwards.

Normalisation folds character widths, converts Japanese era years to
Gregorian years, unifies dashes and long vowel marks and collapses
whitespace. Run 'csvnorm rules' to see every stage.

Running csvnorm without a subcommand is the same as 'csvnorm run'.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runBatch,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Show debug and info log output")
	flags.StringVar(&configDir, "config-dir", "", "Config directory (default ~/.csvnorm)")
	flags.StringVar(&envFile, "env-file", ".env", "Environment file to load before reading settings")
	flags.StringVarP(&inputFlag, "input", "i", "", "Input directory holding the zip archives")
	flags.StringVarP(&outputFlag, "output", "o", "", "Output directory for normalised CSV files")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "Continue without asking when script normalisation is unavailable")
	flags.BoolVar(&noScriptFlag, "no-script", false, "Skip the script normalisation stage")
}

// SetBuilder registers the function that wires services after flag parsing.
func SetBuilder(b Builder) {
	builder = b
}

// SetServices installs services directly.
func SetServices(s *Services) {
	settingsService = s.Settings
	runService = s.Run
	newNormaliser = s.Normaliser
	stageRegistry = s.Stages
	watchArchives = s.Watch
}

// SetVersion sets the version reported by 'csvnorm version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	loadEnvFile(envFile)

	if builder == nil {
		return nil
	}
	services, err := builder(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// resolveSettings merges stored settings, environment and flags.
func resolveSettings() (domain.Settings, error) {
	if settingsService == nil {
		return domain.Settings{}, errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return domain.Settings{}, err
	}
	if err := applyEnv(&settings, lookupEnv); err != nil {
		return domain.Settings{}, err
	}
	applyFlags(&settings)

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func applyFlags(settings *domain.Settings) {
	if inputFlag != "" {
		settings.InputDir = inputFlag
	}
	if outputFlag != "" {
		settings.OutputDir = outputFlag
	}
	if assumeYes {
		settings.AssumeYes = true
	}
	if noScriptFlag {
		settings.ScriptEnabled = false
	}
}
