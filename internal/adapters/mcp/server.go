package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/insist"
	"github.com/aretw0/insist/pkg/remover"
	"github.com/aretw0/insist/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CheckResponse is the structured output of check_args.
type CheckResponse struct {
	Valid  bool   `json:"valid" jsonschema_description:"Whether the values satisfy the signature"`
	Result []any  `json:"result,omitempty" jsonschema_description:"The shifted argument list"`
	Error  string `json:"error,omitempty" jsonschema_description:"Diagnostic when the values do not satisfy the signature"`
}

// StripResponse is the structured output of strip_assertions.
type StripResponse struct {
	Source  string `json:"source" jsonschema_description:"The source with assertion statements removed"`
	Removed int    `json:"removed" jsonschema_description:"Number of removed statements"`
	Kept    int    `json:"kept" jsonschema_description:"Number of calls kept because their result is used"`
}

// Server exposes a Checker and a Remover as MCP tools.
type Server struct {
	checker   *insist.Checker
	remover   *remover.Remover
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(checker *insist.Checker, rm *remover.Remover) *Server {
	s := &Server{
		checker:   checker,
		remover:   rm,
		mcpServer: server.NewMCPServer("insist-mcp", insist.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	checkTool := mcp.NewTool("check_args",
		mcp.WithDescription("Validate and shift an argument list against a signature of type expressions."),
		mcp.WithString("types", mcp.Required(), mcp.Description(`Comma separated type expressions, e.g. "String, Number?, [String]"`)),
		mcp.WithString("values", mcp.Required(), mcp.Description("JSON array of received values")),
		mcp.WithOutputSchema[CheckResponse](),
	)
	s.mcpServer.AddTool(checkTool, mcp.NewStructuredToolHandler(s.handleCheckArgs))

	stripTool := mcp.NewTool("strip_assertions",
		mcp.WithDescription("Remove standalone assertion statements from JavaScript source."),
		mcp.WithString("source", mcp.Required(), mcp.Description("JavaScript source text")),
		mcp.WithOutputSchema[StripResponse](),
	)
	s.mcpServer.AddTool(stripTool, mcp.NewStructuredToolHandler(s.handleStrip))
}

func (s *Server) handleCheckArgs(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CheckResponse, error) {
	list, _ := args["types"].(string)
	raw, _ := args["values"].(string)

	sig, err := types.ParseList(list)
	if err != nil {
		return CheckResponse{}, fmt.Errorf("invalid types: %w", err)
	}
	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return CheckResponse{}, fmt.Errorf("values must be a JSON array: %w", err)
	}
	if values == nil {
		values = []any{}
	}

	result, err := s.checker.Args(values, sig...)
	if err != nil {
		slog.Debug("MCP check_args: rejected", "error", err)
		return CheckResponse{Valid: false, Error: err.Error()}, nil
	}
	return CheckResponse{Valid: true, Result: result}, nil
}

func (s *Server) handleStrip(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StripResponse, error) {
	src, _ := args["source"].(string)
	source := []byte(src)

	refs, err := s.remover.Find(ctx, source)
	if err != nil {
		return StripResponse{}, fmt.Errorf("parse failed: %w", err)
	}
	resp := StripResponse{Source: string(s.remover.RemoveRefs(source, refs))}
	for _, ref := range refs {
		if ref.Shifting {
			resp.Kept++
		} else {
			resp.Removed++
		}
	}
	return resp, nil
}
