// Command csvnorm normalises the Japanese CSV files shipped in zip archives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/csvnorm/internal/adapters/driven/archive"
	"github.com/custodia-labs/csvnorm/internal/adapters/driven/config/file"
	"github.com/custodia-labs/csvnorm/internal/adapters/driven/csvfile"
	"github.com/custodia-labs/csvnorm/internal/adapters/driven/prompt"
	"github.com/custodia-labs/csvnorm/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/csvnorm/internal/adapters/driving/cli"
	"github.com/custodia-labs/csvnorm/internal/connectors/filesystem"
	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
	"github.com/custodia-labs/csvnorm/internal/core/services"
	"github.com/custodia-labs/csvnorm/internal/logger"
	"github.com/custodia-labs/csvnorm/internal/normalisers/script"
	"github.com/custodia-labs/csvnorm/internal/stages"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBuilder(build)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// build wires the driven adapters into the core services.
func build(configDir string) (*cli.Services, error) {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	scriptNormaliser := script.New()
	factory := stages.NewFactory(scriptNormaliser)

	registry := stages.NewRegistry()
	stages.RegisterDefaults(registry, scriptNormaliser)

	codec := csvfile.New()

	runService := services.NewRunService(
		filesystem.Factory{},
		archive.New(),
		codec,
		codec,
		factory,
		prompt.NewStdio(),
	)

	return &cli.Services{
		Settings: services.NewSettingsService(store),
		Run:      runService,
		Normaliser: func(scriptEnabled bool) driving.NormaliseService {
			return services.NewNormaliseService(factory.New(scriptEnabled))
		},
		Stages: registry,
		Watch:  watchArchives,
	}, nil
}

func watchArchives(ctx context.Context, settings domain.Settings, quiet time.Duration) (<-chan []string, error) {
	ws, err := filesystem.New(settings.InputDir, settings.ArchivePattern, settings.TablePattern)
	if err != nil {
		return nil, err
	}
	if quiet <= 0 {
		quiet = filesystem.DefaultQuietPeriod
	}
	return ws.WatchArchives(ctx, quiet)
}
