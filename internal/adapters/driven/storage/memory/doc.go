// Package memory provides in-memory implementations of driven ports.
// They are used when no config directory is usable and in tests.
package memory
