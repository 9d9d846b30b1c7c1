package mcptools

import (
	"context"
	"io"
	"log"

	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewDiaryMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewDiaryMCPServer(store storage.Store) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, nil)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered diary tools.
// logger receives one line per write; nil discards.
func CreateMCPServer(store storage.Store, logger *log.Logger) *mcp.Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "diarycal",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_entry",
		Description: "Read the diary entry for one day",
	}, GetEntryHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dates",
		Description: "List the days that have a diary entry",
	}, ListDatesHandler(store))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_entry",
		Description: "Add the diary entry for a day that has none yet",
	}, AddEntryHandler(store, logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_entry",
		Description: "Replace the text of an existing diary entry",
	}, UpdateEntryHandler(store, logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_entry",
		Description: "Remove the diary entry for a day; requires confirm=true",
	}, RemoveEntryHandler(store, logger))

	return server
}
