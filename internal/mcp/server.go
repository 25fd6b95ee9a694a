package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"up-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"get_user_id": mcp.NewTool("get_user_id",
			mcp.WithDescription("Verify the Up API token. Returns 'Authorized: <user-id>' when the token is valid or 'The token is invalid' when it is not."),
		),
		"get_accounts": mcp.NewTool("get_accounts",
			mcp.WithDescription("List all accounts for the user with id, name and balance."),
		),
		"get_account": mcp.NewTool("get_account",
			mcp.WithDescription("Get a single account as a human-readable summary string."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The ID of the account to get."),
			),
		),
		"get_categories": mcp.NewTool("get_categories",
			mcp.WithDescription("List all categories, or only the children of a specific parent category."),
			mcp.WithString("parent_id",
				mcp.Description("Optional: ID of the parent category to filter by."),
			),
		),
		"get_category": mcp.NewTool("get_category",
			mcp.WithDescription("Get a single category as a human-readable summary string."),
			mcp.WithString("category_id",
				mcp.Required(),
				mcp.Description("The ID of the category to get."),
			),
		),
		"categorize_transaction": mcp.NewTool("categorize_transaction",
			mcp.WithDescription("Assign a category to a transaction. Omit category_id to clear the transaction's categorization."),
			mcp.WithString("transaction_id",
				mcp.Required(),
				mcp.Description("The ID of the transaction to categorize."),
			),
			mcp.WithString("category_id",
				mcp.Description("The category ID to assign. Omit to remove categorization."),
			),
		),
		"get_tags": mcp.NewTool("get_tags",
			mcp.WithDescription("List all tags for the user."),
		),
		"add_transaction_tags": mcp.NewTool("add_transaction_tags",
			mcp.WithDescription("Add tags to a transaction in a single call."),
			mcp.WithString("transaction_id",
				mcp.Required(),
				mcp.Description("The ID of the transaction."),
			),
			mcp.WithArray("tags",
				mcp.Required(),
				mcp.Description("List of tag IDs to add."),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		"remove_transaction_tags": mcp.NewTool("remove_transaction_tags",
			mcp.WithDescription("Remove tags from a transaction in a single call."),
			mcp.WithString("transaction_id",
				mcp.Required(),
				mcp.Description("The ID of the transaction."),
			),
			mcp.WithArray("tags",
				mcp.Required(),
				mcp.Description("List of tag IDs to remove."),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		"get_transaction": mcp.NewTool("get_transaction",
			mcp.WithDescription("Get a single transaction as a human-readable summary string."),
			mcp.WithString("transaction_id",
				mcp.Required(),
				mcp.Description("The ID of the transaction to get."),
			),
		),
		"get_transactions": mcp.NewTool("get_transactions",
			mcp.WithDescription("List transactions with optional filters. The full matching window is fetched; longer windows take longer to load."),
			mcp.WithString("account_id",
				mcp.Description("Optional: account ID to filter by."),
			),
			mcp.WithString("status",
				mcp.Description("Optional: transaction status to filter by."),
				mcp.Enum("HELD", "SETTLED"),
			),
			mcp.WithString("since",
				mcp.Description("Optional: RFC3339 start time (defaults to 7 days before the call)."),
			),
			mcp.WithString("until",
				mcp.Description("Optional: RFC3339 end time."),
			),
			mcp.WithString("category_id",
				mcp.Description("Optional: category ID to filter by."),
			),
			mcp.WithString("tag_id",
				mcp.Description("Optional: tag ID to filter by."),
			),
			mcp.WithBoolean("verbose",
				mcp.Description("Include id, status and created_at in each record (default: false)."),
			),
		),
		"get_webhooks": mcp.NewTool("get_webhooks",
			mcp.WithDescription("List all webhooks with id, url and description."),
		),
		"create_webhook": mcp.NewTool("create_webhook",
			mcp.WithDescription("Create a new webhook. The secret key is returned exactly once; persist it immediately."),
			mcp.WithString("url",
				mcp.Required(),
				mcp.Description("The URL that this webhook should post events to."),
			),
			mcp.WithString("description",
				mcp.Description("Optional: human-readable description of the webhook."),
			),
		),
		"delete_webhook": mcp.NewTool("delete_webhook",
			mcp.WithDescription("Delete a webhook."),
			mcp.WithString("webhook_id",
				mcp.Required(),
				mcp.Description("The ID of the webhook to delete."),
			),
		),
		"ping_webhook": mcp.NewTool("ping_webhook",
			mcp.WithDescription("Send a test event to a webhook and return the generated delivery event."),
			mcp.WithString("webhook_id",
				mcp.Required(),
				mcp.Description("The ID of the webhook to ping."),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
