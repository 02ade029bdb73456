package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown stage or archive type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Run Errors. These end a batch run before any file is written.

	// ErrInputDirNotFound indicates the input directory does not exist.
	ErrInputDirNotFound = errors.New("input directory not found")

	// ErrNoArchives indicates no archive yielded any extracted file.
	ErrNoArchives = errors.New("no files extracted from archives")

	// ErrNoTables indicates no tabular files were found to normalise.
	ErrNoTables = errors.New("no tabular files found")

	// ErrDeclined indicates the operator declined to continue in degraded mode.
	ErrDeclined = errors.New("operator declined degraded mode")

	// File Errors. These are recorded per file and never abort a run.

	// ErrUnsafeArchiveEntry indicates an archive entry would be written
	// outside the extraction directory.
	ErrUnsafeArchiveEntry = errors.New("unsafe archive entry")

	// ErrDecode indicates a tabular file could not be decoded.
	ErrDecode = errors.New("decode failed")
)
