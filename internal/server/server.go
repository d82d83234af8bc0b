// Package server exposes the capture-discovery surface as MCP tools so agents
// can check support, obtain permission and pick targets without shelling out.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/scap/internal/logger"
	"github.com/mj1618/scap/internal/platform"
	"github.com/mj1618/scap/internal/version"
	"golang.org/x/sync/singleflight"
)

// Transports accepted by Serve.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server with the platform provider.
type Server struct {
	provider *platform.Provider
	log      logger.LoggerInterface
	mcp      *mcpserver.MCPServer

	// permission coalesces concurrent request_permission calls so at most
	// one OS prompt is outstanding.
	permission singleflight.Group
}

// New creates a Server with every scap tool registered.
func New(provider *platform.Provider, log logger.LoggerInterface) *Server {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	s := &Server{
		provider: provider,
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer(
		"scap",
		version.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.registerTools()
	return s
}

// Serve blocks serving the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case TransportStdio:
		s.log.Info("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case TransportHTTP:
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.log.Info("serving MCP over streamable HTTP", "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("is_supported",
			mcp.WithDescription("Report whether this host's OS version meets the minimum for screen capture"),
		),
		s.handleIsSupported,
	)

	s.mcp.AddTool(
		mcp.NewTool("has_permission",
			mcp.WithDescription("Check screen-recording permission without prompting the user"),
		),
		s.handleHasPermission,
	)

	s.mcp.AddTool(
		mcp.NewTool("request_permission",
			mcp.WithDescription("Ask the OS for screen-recording permission. May show a system prompt and block until the user answers."),
		),
		s.handleRequestPermission,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_targets",
			mcp.WithDescription("List capturable displays and active windows, displays first"),
			mcp.WithBoolean("displays", mcp.Description("Only return displays")),
			mcp.WithBoolean("windows", mcp.Description("Only return windows")),
		),
		s.handleGetTargets,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_main_display",
			mcp.WithDescription("Return the primary display as a target"),
		),
		s.handleGetMainDisplay,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_scale_factor",
			mcp.WithDescription("Return the integer backing scale (pixel width / logical width) of a display"),
			mcp.WithNumber("display_id", mcp.Description("Display ID (default: main display)")),
		),
		s.handleGetScaleFactor,
	)

	s.mcp.AddTool(
		mcp.NewTool("resolve_target",
			mcp.WithDescription("Confirm a target still exists and return it with its current title. Pass either target, or type and id."),
			mcp.WithString("target", mcp.Description("Target as type:id, e.g. 'display:1' or 'window:42'")),
			mcp.WithString("type", mcp.Description("Target type: display or window")),
			mcp.WithNumber("id", mcp.Description("Target ID")),
		),
		s.handleResolveTarget,
	)
}
