package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
	"github.com/edkranz/up-mcp/internal/upbank"
)

type GetAccountsHandler struct {
	Client *upbank.Client
}

func (h *GetAccountsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	accounts, err := sess.Accounts().All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]types.AccountRecord, 0, len(accounts))
	for _, a := range accounts {
		records = append(records, types.AccountRecord{
			ID:      a.ID,
			Name:    a.Name,
			Balance: a.Balance,
		})
	}
	return mcp.NewToolResultText(string(mustMarshal(records))), nil
}

type GetAccountHandler struct {
	Client *upbank.Client
}

func (h *GetAccountHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "id")
	if id == "" {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	account, err := sess.Account(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(account.String()), nil
}
