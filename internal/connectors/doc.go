// Package connectors holds the adapters that reach data at rest.
// The filesystem connector is the input directory of a batch run.
package connectors
