package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-bot/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search,
browse and read the indexed documents.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  sercha-bot mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  sercha-bot mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "sercha-bot": {
        "command": "/path/to/sercha-bot",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	a, err := setup()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search: a.search,
		Index:  a.index,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		return server.RunHTTP(cmd.Context(), fmt.Sprintf(":%d", port))
	}

	return server.Run(cmd.Context())
}
