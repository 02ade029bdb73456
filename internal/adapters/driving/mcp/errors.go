// Package mcp provides an MCP (Model Context Protocol) server adapter for csvnorm.
// It lets AI assistants normalise Japanese text and tables with the same
// pipeline the batch run uses.
package mcp

import "errors"

// ErrMissingNormaliseService is returned when the normalise service is not provided.
var ErrMissingNormaliseService = errors.New("mcp: normalise service is required")
