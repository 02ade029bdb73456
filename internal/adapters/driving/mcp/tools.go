package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// NormaliseTextInput is the input schema for the normalise_text tool.
type NormaliseTextInput struct {
	Text string `json:"text" jsonschema:"the cell value to normalise"`
}

// NormaliseTextOutput is the output schema for the normalise_text tool.
type NormaliseTextOutput struct {
	Normalised string `json:"normalised"`
	Degraded   bool   `json:"degraded,omitempty"`
}

// NormaliseRowsInput is the input schema for the normalise_rows tool.
type NormaliseRowsInput struct {
	Rows [][]string `json:"rows" jsonschema:"table rows; every cell is normalised and the shape is preserved"`
}

// NormaliseRowsOutput is the output schema for the normalise_rows tool.
type NormaliseRowsOutput struct {
	Rows     [][]string `json:"rows"`
	Count    int        `json:"count"`
	Degraded bool       `json:"degraded,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalise_text",
		Description: "Normalise a single Japanese text value (width, eras, dashes, long vowels, spacing)",
	}, s.handleNormaliseText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalise_rows",
		Description: "Normalise every cell of a table given as rows of strings",
	}, s.handleNormaliseRows)
}

// handleNormaliseText handles the normalise_text tool invocation.
func (s *Server) handleNormaliseText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormaliseTextInput,
) (*mcp.CallToolResult, NormaliseTextOutput, error) {
	return nil, NormaliseTextOutput{
		Normalised: s.ports.Normalise.NormaliseText(input.Text),
		Degraded:   s.ports.Normalise.Degraded(),
	}, nil
}

// handleNormaliseRows handles the normalise_rows tool invocation.
func (s *Server) handleNormaliseRows(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormaliseRowsInput,
) (*mcp.CallToolResult, NormaliseRowsOutput, error) {
	rows := s.ports.Normalise.NormaliseRecord(domain.RecordFromStrings(input.Rows)).ToStrings()

	return nil, NormaliseRowsOutput{
		Rows:     rows,
		Count:    len(rows),
		Degraded: s.ports.Normalise.Degraded(),
	}, nil
}
