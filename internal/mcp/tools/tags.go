package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
	"github.com/edkranz/up-mcp/internal/upbank"
)

type GetTagsHandler struct {
	Client *upbank.Client
}

func (h *GetTagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	tags, err := sess.Tags().All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]types.TagRecord, 0, len(tags))
	for _, tag := range tags {
		records = append(records, types.TagRecord{ID: tag.ID, Name: tag.Name})
	}
	return mcp.NewToolResultText(string(mustMarshal(records))), nil
}

type AddTransactionTagsHandler struct {
	Client *upbank.Client
}

func (h *AddTransactionTagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	transactionID := stringArg(args, "transaction_id")
	if transactionID == "" {
		return mcp.NewToolResultError("transaction_id parameter is required"), nil
	}
	tags := stringSliceArg(args, "tags")
	if len(tags) == 0 {
		return mcp.NewToolResultError("tags parameter must be a non-empty list of tag ids"), nil
	}

	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := sess.AddTags(ctx, transactionID, tags...); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(true))), nil
}

type RemoveTransactionTagsHandler struct {
	Client *upbank.Client
}

func (h *RemoveTransactionTagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	transactionID := stringArg(args, "transaction_id")
	if transactionID == "" {
		return mcp.NewToolResultError("transaction_id parameter is required"), nil
	}
	tags := stringSliceArg(args, "tags")
	if len(tags) == 0 {
		return mcp.NewToolResultError("tags parameter must be a non-empty list of tag ids"), nil
	}

	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := sess.RemoveTags(ctx, transactionID, tags...); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(true))), nil
}
