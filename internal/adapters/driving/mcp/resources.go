package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for csvnorm resources.
	uriScheme = "csvnorm://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stages",
		Name:        "stages",
		Description: "Normalisation stages in the order they run",
		MIMEType:    "application/json",
	}, s.handleStagesResource)
}

// stagesInfo is the JSON body of the stages resource.
type stagesInfo struct {
	Stages   []string `json:"stages"`
	Degraded bool     `json:"degraded"`
}

// handleStagesResource returns the pipeline's stage names.
func (s *Server) handleStagesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info := stagesInfo{
		Stages:   s.ports.Normalise.Stages(),
		Degraded: s.ports.Normalise.Degraded(),
	}
	if info.Stages == nil {
		info.Stages = []string{}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stages: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
