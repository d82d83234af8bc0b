package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/scap/internal/model"
	"github.com/mj1618/scap/internal/platform"
	"gopkg.in/yaml.v3"
)

// yamlResult serializes v to YAML for the MCP response.
func yamlResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("yaml encode: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// toolError reports err to the client as a tool error. Environment faults are
// logged at error level since the host cannot capture until fixed.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	if platform.IsEnvironmentFault(err) {
		s.log.Error("environment fault", "tool", tool, "error", err)
	} else {
		s.log.Warn("tool failed", "tool", tool, "error", err)
	}
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) handleIsSupported(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ok, err := s.provider.Version.IsSupported()
	if err != nil {
		return s.toolError("is_supported", err), nil
	}
	s.log.Debug("version check", "supported", ok)
	return yamlResult(model.SupportReport{Supported: ok}), nil
}

func (s *Server) handleHasPermission(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	granted := s.provider.Permission.HasPermission()
	s.log.Debug("permission preflight", "granted", granted)
	return yamlResult(model.PermissionReport{Granted: granted}), nil
}

func (s *Server) handleRequestPermission(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v, _, shared := s.permission.Do("request", func() (interface{}, error) {
		s.log.Info("requesting screen-recording permission")
		return s.provider.Permission.RequestPermission(), nil
	})
	granted := v.(bool)
	s.log.Info("permission request finished", "granted", granted, "shared", shared)
	return yamlResult(model.PermissionReport{Granted: granted, Requested: true}), nil
}

func (s *Server) handleGetTargets(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	displays := boolParam(params, "displays", false)
	windows := boolParam(params, "windows", false)

	targets, err := s.provider.Targets.GetTargets()
	if err != nil {
		return s.toolError("get_targets", err), nil
	}
	s.log.Debug("enumerated targets", "count", len(targets))
	for _, t := range targets {
		s.log.Trace("target", "type", t.Type, "id", t.ID, "title", t.Title)
	}
	return yamlResult(model.FilterTargets(targets, displays, windows)), nil
}

func (s *Server) handleGetMainDisplay(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	main, err := s.provider.Displays.GetMainDisplay()
	if err != nil {
		return s.toolError("get_main_display", err), nil
	}
	return yamlResult(main), nil
}

func (s *Server) handleGetScaleFactor(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	var displayID uint32
	if hasParam(params, "display_id") {
		id, err := idParam(params, "display_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		displayID = id
	} else {
		main, err := s.provider.Displays.GetMainDisplay()
		if err != nil {
			return s.toolError("get_scale_factor", err), nil
		}
		displayID = main.ID
	}

	scale, err := s.provider.Displays.GetScaleFactor(displayID)
	if err != nil {
		return s.toolError("get_scale_factor", err), nil
	}
	return yamlResult(model.ScaleReport{DisplayID: displayID, ScaleFactor: scale}), nil
}

func (s *Server) handleResolveTarget(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := targetKeyParam(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target, err := platform.Resolve(s.provider.Targets, key)
	if err != nil {
		return s.toolError("resolve_target", err), nil
	}
	return yamlResult(target), nil
}
