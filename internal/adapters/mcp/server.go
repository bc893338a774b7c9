// Package mcp exposes the converter to agent tooling over the Model
// Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/presentation/graph"
	"github.com/tmsim/tmconv/pkg/domain"
)

// ConvertResponse is the structured result of the convert_source tool.
type ConvertResponse struct {
	Configuration *domain.Configuration `json:"configuration" jsonschema_description:"The assembled machine configuration"`
}

// Server wraps the converter and exposes it as an MCP server.
type Server struct {
	converter *tmconv.Converter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(converter *tmconv.Converter) *Server {
	s := &Server{
		converter: converter,
		mcpServer: server.NewMCPServer("tmconv-mcp", tmconv.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: convert_source
	convertTool := mcp.NewTool("convert_source",
		mcp.WithDescription("Convert a human-readable Turing machine description into a structured configuration."),
		mcp.WithString("source", mcp.Required(), mcp.Description("The machine description text, one directive per line")),
		mcp.WithOutputSchema[ConvertResponse](),
	)
	s.mcpServer.AddTool(convertTool, mcp.NewStructuredToolHandler(s.handleConvert))

	// TOOL: render_graph
	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Render a machine description as a Mermaid state-transition diagram."),
		mcp.WithString("source", mcp.Required(), mcp.Description("The machine description text")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source := request.GetString("source", "")
		cfg, err := s.converter.ConvertString(source)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("conversion failed: %v", err)), nil
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(cfg)), nil
	})
}

func (s *Server) handleConvert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConvertResponse, error) {
	source, _ := args["source"].(string)

	cfg, err := s.converter.ConvertString(source)
	if err != nil {
		return ConvertResponse{}, fmt.Errorf("conversion failed: %w", err)
	}

	return ConvertResponse{Configuration: cfg}, nil
}
