package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
	"github.com/edkranz/up-mcp/internal/upbank"
)

type GetTransactionHandler struct {
	Client *upbank.Client
}

func (h *GetTransactionHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "transaction_id")
	if id == "" {
		return mcp.NewToolResultError("transaction_id parameter is required"), nil
	}
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	tx, err := sess.Transaction(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(tx.String()), nil
}

type GetTransactionsHandler struct {
	Client *upbank.Client
}

func (h *GetTransactionsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	since, err := timeArg(args, "since")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	until, err := timeArg(args, "until")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// The default window is relative to the current invocation, never
	// captured at startup.
	if since == nil {
		weekAgo := time.Now().AddDate(0, 0, -7)
		since = &weekAgo
	}
	verbose, _ := args["verbose"].(bool)

	filter := upbank.TransactionFilter{
		Account:  stringArg(args, "account_id"),
		Status:   stringArg(args, "status"),
		Since:    since,
		Until:    until,
		Category: stringArg(args, "category_id"),
		Tag:      stringArg(args, "tag_id"),
	}

	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	transactions, err := sess.Transactions(filter).All(ctx)
	if err != nil {
		return nil, err
	}

	if verbose {
		records := make([]types.TransactionRecord, 0, len(transactions))
		for _, tx := range transactions {
			records = append(records, types.TransactionRecord{
				ID:          tx.ID,
				Description: tx.Description,
				Amount:      tx.Amount,
				Status:      tx.Status,
				CreatedAt:   tx.CreatedAt,
			})
		}
		return mcp.NewToolResultText(string(mustMarshal(records))), nil
	}

	records := make([]types.TransactionSummary, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, types.TransactionSummary{
			Description: tx.Description,
			Amount:      tx.Amount,
		})
	}
	return mcp.NewToolResultText(string(mustMarshal(records))), nil
}
