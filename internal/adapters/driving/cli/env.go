package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/logger"
)

// Environment variables that override stored settings.
const (
	EnvInput          = "CSVNORM_INPUT"
	EnvOutput         = "CSVNORM_OUTPUT"
	EnvDelimiter      = "CSVNORM_DELIMITER"
	EnvArchivePattern = "CSVNORM_ARCHIVE_PATTERN"
	EnvTablePattern   = "CSVNORM_TABLE_PATTERN"
	EnvScript         = "CSVNORM_SCRIPT"
)

var lookupEnv = os.LookupEnv

// loadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("load %s: %v", path, err)
	}
}

// applyEnv overlays environment variables onto settings.
func applyEnv(settings *domain.Settings, lookup func(string) (string, bool)) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{EnvInput, &settings.InputDir},
		{EnvOutput, &settings.OutputDir},
		{EnvArchivePattern, &settings.ArchivePattern},
		{EnvTablePattern, &settings.TablePattern},
	}
	for _, s := range strs {
		if v, ok := lookup(s.name); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvDelimiter); ok && v != "" {
		r, err := domain.ParseDelimiter(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDelimiter, err)
		}
		settings.Delimiter = r
	}

	if v, ok := lookup(EnvScript); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", domain.ErrInvalidInput, EnvScript, v)
		}
		settings.ScriptEnabled = enabled
	}

	return nil
}
