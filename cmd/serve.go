package cmd

import (
	"github.com/mj1618/scap/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing scap tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the scap
commands as tools. AI agents can call tools directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  scap serve
  scap serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from config, else stdio)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (default from config, else 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	serveCfg := server.Config{
		Transport: cfg.Serve.Transport,
		Port:      cfg.Serve.Port,
	}
	if cmd.Flags().Changed("transport") {
		serveCfg.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("port") {
		serveCfg.Port, _ = cmd.Flags().GetInt("port")
	}

	return server.New(provider, appLog).Serve(serveCfg)
}
