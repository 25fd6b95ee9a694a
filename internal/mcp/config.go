package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/edkranz/up-mcp/internal/config"
	"github.com/edkranz/up-mcp/internal/logging"
	"github.com/edkranz/up-mcp/internal/mcp/tools"
	"github.com/edkranz/up-mcp/internal/upbank"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.DefaultLogger(config.LogLevel()))

	client := upbank.NewClient(config.UpToken(),
		upbank.WithBaseURL(config.UpBaseURL()),
		upbank.WithPageSize(config.UpPageSize()),
		upbank.WithTimeout(config.HTTPTimeout()),
		upbank.WithLogger(baseLogger.WithName("upbank")),
	)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"get_user_id":             &tools.GetUserIDHandler{Client: client},
			"get_accounts":            &tools.GetAccountsHandler{Client: client},
			"get_account":             &tools.GetAccountHandler{Client: client},
			"get_categories":          &tools.GetCategoriesHandler{Client: client},
			"get_category":            &tools.GetCategoryHandler{Client: client},
			"categorize_transaction":  &tools.CategorizeTransactionHandler{Client: client},
			"get_tags":                &tools.GetTagsHandler{Client: client},
			"add_transaction_tags":    &tools.AddTransactionTagsHandler{Client: client},
			"remove_transaction_tags": &tools.RemoveTransactionTagsHandler{Client: client},
			"get_transaction":         &tools.GetTransactionHandler{Client: client},
			"get_transactions":        &tools.GetTransactionsHandler{Client: client},
			"get_webhooks":            &tools.GetWebhooksHandler{Client: client},
			"create_webhook":          &tools.CreateWebhookHandler{Client: client},
			"delete_webhook":          &tools.DeleteWebhookHandler{Client: client},
			"ping_webhook":            &tools.PingWebhookHandler{Client: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
