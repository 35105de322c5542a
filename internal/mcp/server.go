// Package mcp provides an MCP (Model Context Protocol) server for sideswipe.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/juanibiapina/sideswipe/internal/carousel"
	"github.com/juanibiapina/sideswipe/internal/deck"
	"github.com/juanibiapina/sideswipe/internal/paths"
	"github.com/juanibiapina/sideswipe/internal/storage"
	"github.com/juanibiapina/sideswipe/internal/telemetry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with sideswipe-specific functionality.
type Server struct {
	mcpServer *server.MCPServer
	dbPath    string
}

// NewServer creates a new MCP server for sideswipe.
func NewServer(version string) *Server {
	s := &Server{dbPath: paths.GetDatabasePath()}

	s.mcpServer = server.NewMCPServer(
		"sideswipe",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()

	return s
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ListToolNames returns the registered tool names in sorted order.
func (s *Server) ListToolNames() []string {
	var names []string
	for name := range s.mcpServer.ListTools() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) registerTools() {
	s.registerResolve()
	s.registerLayout()
	s.registerPositions()
}

// addTool registers a handler and records every call
func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		telemetry.MCPToolCall(tool.Name)
		return handler(ctx, request)
	})
}

// openStore opens the positions database, creating its directory if needed.
func (s *Server) openStore() (*storage.Store, error) {
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return storage.Open(s.dbPath)
}

// jsonResult marshals a result to JSON and returns a tool result.
func jsonResult(result any) (*mcp.CallToolResult, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) registerResolve() {
	tool := mcp.NewTool("sideswipe_resolve",
		mcp.WithDescription("Compute the index a carousel drag release settles on"),
		mcp.WithNumber("current_index",
			mcp.Required(),
			mcp.Description("Committed index when the drag started"),
		),
		mcp.WithNumber("item_width",
			mcp.Required(),
			mcp.Description("Page width"),
		),
		mcp.WithNumber("item_count",
			mcp.Required(),
			mcp.Description("Number of items in the carousel"),
		),
		mcp.WithNumber("dx",
			mcp.Required(),
			mcp.Description("Horizontal drag displacement; positive reveals earlier items"),
		),
		mcp.WithNumber("vx",
			mcp.Description("Horizontal release velocity in units per millisecond (default: 0)"),
		),
		mcp.WithNumber("drag_threshold",
			mcp.Description("Threshold added to the displacement before rounding (default: 0)"),
		),
	)

	s.addTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		current, err := request.RequireInt("current_index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		width, err := request.RequireFloat("item_width")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		count, err := request.RequireInt("item_count")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dx, err := request.RequireFloat("dx")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		vx := request.GetFloat("vx", 0)
		threshold := request.GetFloat("drag_threshold", 0)

		if width <= 0 {
			return mcp.NewToolResultError("item_width must be positive"), nil
		}
		if count < 1 {
			return mcp.NewToolResultError("item_count must be at least 1"), nil
		}
		if current < 0 || current >= count {
			return mcp.NewToolResultError(fmt.Sprintf("current_index must be in [0, %d]", count-1)), nil
		}

		target := carousel.Resolve(current, width, threshold, dx, vx, count)
		return jsonResult(map[string]any{
			"from":  current,
			"index": target,
			"pages": target - current,
		})
	})
}

func (s *Server) registerLayout() {
	tool := mcp.NewTool("sideswipe_layout",
		mcp.WithDescription("List the offset and length of every item in a carousel"),
		mcp.WithString("deck",
			mcp.Description("Path to a deck file; omit to lay out item_count untitled items"),
		),
		mcp.WithNumber("item_count",
			mcp.Description("Number of items when no deck is given"),
		),
		mcp.WithNumber("item_width",
			mcp.Required(),
			mcp.Description("Page width"),
		),
		mcp.WithNumber("content_offset",
			mcp.Description("Inset of the first item (default: 0)"),
		),
	)

	s.addTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		width, err := request.RequireFloat("item_width")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if width <= 0 {
			return mcp.NewToolResultError("item_width must be positive"), nil
		}
		g := carousel.Geometry{ItemWidth: width, ContentOffset: request.GetFloat("content_offset", 0)}

		var d *deck.Deck
		if path := request.GetString("deck", ""); path != "" {
			d, err = deck.Read(path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
		} else {
			count := request.GetInt("item_count", 0)
			if count < 1 {
				return mcp.NewToolResultError("either deck or a positive item_count is required"), nil
			}
			d = deck.Untitled(count)
		}

		return jsonResult(map[string]any{
			"title": d.Title,
			"items": d.Layout(g),
		})
	})
}

func (s *Server) registerPositions() {
	tool := mcp.NewTool("sideswipe_positions",
		mcp.WithDescription("List remembered carousel positions, or forget one"),
		mcp.WithString("forget",
			mcp.Description("Deck path whose remembered position should be deleted"),
		),
	)

	s.addTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		store, err := s.openStore()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		defer store.Close()

		if forget := request.GetString("forget", ""); forget != "" {
			if abs, err := filepath.Abs(forget); err == nil {
				forget = abs
			}
			removed, err := store.Forget(forget)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return jsonResult(map[string]any{
				"deck":    forget,
				"removed": removed,
			})
		}

		positions, err := store.Positions()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		items := make([]map[string]any, 0, len(positions))
		for _, p := range positions {
			items = append(items, map[string]any{
				"deck":       p.Deck,
				"index":      p.Index,
				"updated_at": p.UpdatedAt.Format(time.RFC3339),
			})
		}
		return jsonResult(map[string]any{"positions": items})
	})
}
