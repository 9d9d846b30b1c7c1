package cmd

import (
	"github.com/chris-regnier/diarycal/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes diary tools
over stdio transport.

Available tools:
  - get_entry: Read the entry for a day
  - list_dates: List the days that have an entry
  - add_entry: Add the entry for a day that has none
  - update_entry: Replace an existing entry
  - remove_entry: Remove an entry (requires confirm=true)

Example usage in an MCP client config:
  {
    "mcpServers": {
      "diarycal": {
        "command": "/path/to/diarycal",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store, logger)

	logger.Printf("Starting diarycal MCP server (stdio transport)")
	logger.Printf("Storage backend: %s", appConfig.Storage)
	logger.Printf("Data directory: %s", appConfig.DataDir)

	// Blocks until the transport is closed
	return server.Run(cmd.Context(), &mcp.StdioTransport{})
}
