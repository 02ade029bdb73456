package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Settings holds the configuration of a normalisation run.
type Settings struct {
	// InputDir holds the archives; extracted files are written here too.
	InputDir string

	// OutputDir receives the normalised tabular files.
	OutputDir string

	// ArchivePattern selects archive files within InputDir.
	ArchivePattern string

	// TablePattern selects tabular files within InputDir after extraction.
	TablePattern string

	// Delimiter is the field separator of the tabular files.
	Delimiter rune

	// ScriptEnabled controls the optional script normalisation stage.
	ScriptEnabled bool

	// AssumeYes skips the degraded-mode confirmation.
	AssumeYes bool
}

// Default settings values.
const (
	DefaultInputDir       = "data/download/RS_2024"
	DefaultOutputDir      = "data/year_2024"
	DefaultArchivePattern = "*.zip"
	DefaultTablePattern   = "*.csv"
	DefaultDelimiter      = ','
)

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		InputDir:       DefaultInputDir,
		OutputDir:      DefaultOutputDir,
		ArchivePattern: DefaultArchivePattern,
		TablePattern:   DefaultTablePattern,
		Delimiter:      DefaultDelimiter,
		ScriptEnabled:  true,
	}
}

// Validate checks the settings for obvious mistakes.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.InputDir) == "" {
		return fmt.Errorf("%w: input directory is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(s.ArchivePattern) == "" {
		return fmt.Errorf("%w: archive pattern is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(s.TablePattern) == "" {
		return fmt.Errorf("%w: table pattern is empty", ErrInvalidInput)
	}
	if !ValidDelimiter(s.Delimiter) {
		return fmt.Errorf("%w: delimiter %q", ErrInvalidInput, s.Delimiter)
	}
	return nil
}

// ValidDelimiter reports whether r can separate CSV fields.
func ValidDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' &&
		r != utf8.RuneError && utf8.ValidRune(r)
}

// ParseDelimiter converts a config value such as "," or "\t" to a rune.
func ParseDelimiter(value string) (rune, error) {
	switch value {
	case "":
		return DefaultDelimiter, nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(value)
	if size != len(value) || !ValidDelimiter(r) {
		return 0, fmt.Errorf("%w: delimiter %q", ErrInvalidInput, value)
	}
	return r, nil
}
