package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
	"github.com/edkranz/up-mcp/internal/upbank"
)

type GetCategoriesHandler struct {
	Client *upbank.Client
}

func (h *GetCategoriesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parentID := stringArg(req.GetArguments(), "parent_id")

	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	categories, err := sess.Categories(ctx, parentID)
	if err != nil {
		return nil, err
	}
	records := make([]types.CategoryRecord, 0, len(categories))
	for _, c := range categories {
		records = append(records, types.CategoryRecord{ID: c.ID, Name: c.Name})
	}
	return mcp.NewToolResultText(string(mustMarshal(records))), nil
}

type GetCategoryHandler struct {
	Client *upbank.Client
}

func (h *GetCategoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "category_id")
	if id == "" {
		return mcp.NewToolResultError("category_id parameter is required"), nil
	}
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	category, err := sess.Category(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(category.String()), nil
}

// CategorizeTransactionHandler assigns a category to a transaction. An
// omitted category_id clears the transaction's categorization.
type CategorizeTransactionHandler struct {
	Client *upbank.Client
}

func (h *CategorizeTransactionHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	transactionID := stringArg(args, "transaction_id")
	if transactionID == "" {
		return mcp.NewToolResultError("transaction_id parameter is required"), nil
	}
	categoryID := stringArg(args, "category_id")

	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := sess.Categorize(ctx, transactionID, categoryID); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(true))), nil
}
