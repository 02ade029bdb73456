package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driven"
	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyInputDir       = "paths.input"
	KeyOutputDir      = "paths.output"
	KeyDelimiter      = "csv.delimiter"
	KeyArchivePattern = "archive.pattern"
	KeyTablePattern   = "table.pattern"
	KeyScriptEnabled  = "script.enabled"
)

var settingKeys = []string{
	KeyInputDir,
	KeyOutputDir,
	KeyDelimiter,
	KeyArchivePattern,
	KeyTablePattern,
	KeyScriptEnabled,
}

// SettingsService manages run settings persisted in a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings with defaults for unset keys.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	delimiter, err := domain.ParseDelimiter(s.configStore.GetString(KeyDelimiter))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%s: %w", KeyDelimiter, err)
	}

	scriptEnabled := defaults.ScriptEnabled
	if v, ok := s.configStore.GetBool(KeyScriptEnabled); ok {
		scriptEnabled = v
	}

	settings := domain.Settings{
		InputDir:       s.getString(KeyInputDir, defaults.InputDir),
		OutputDir:      s.getString(KeyOutputDir, defaults.OutputDir),
		ArchivePattern: s.getString(KeyArchivePattern, defaults.ArchivePattern),
		TablePattern:   s.getString(KeyTablePattern, defaults.TablePattern),
		Delimiter:      delimiter,
		ScriptEnabled:  scriptEnabled,
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyInputDir, KeyOutputDir, KeyArchivePattern, KeyTablePattern:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		return s.save(key, value)
	case KeyDelimiter:
		if _, err := domain.ParseDelimiter(value); err != nil {
			return err
		}
		return s.save(key, value)
	case KeyScriptEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return s.save(key, b)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the supported setting keys.
func (s *SettingsService) Keys() []string {
	return append([]string(nil), settingKeys...)
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) save(key string, value any) error {
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
