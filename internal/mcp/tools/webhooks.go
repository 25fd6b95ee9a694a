package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
	"github.com/edkranz/up-mcp/internal/upbank"
)

type GetWebhooksHandler struct {
	Client *upbank.Client
}

func (h *GetWebhooksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	webhooks, err := sess.Webhooks().All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]types.WebhookRecord, 0, len(webhooks))
	for _, wh := range webhooks {
		records = append(records, types.WebhookRecord{
			ID:          wh.ID,
			URL:         wh.URL,
			Description: wh.Description,
		})
	}
	return mcp.NewToolResultText(string(mustMarshal(records))), nil
}

// CreateWebhookHandler registers a webhook. The secret key in the result is
// returned exactly once; callers must persist it immediately.
type CreateWebhookHandler struct {
	Client *upbank.Client
}

func (h *CreateWebhookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	webhookURL := stringArg(args, "url")
	if webhookURL == "" {
		return mcp.NewToolResultError("url parameter is required"), nil
	}
	description := stringArg(args, "description")

	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	wh, err := sess.CreateWebhook(ctx, webhookURL, description)
	if err != nil {
		return nil, err
	}
	record := types.WebhookCreatedRecord{
		ID:          wh.ID,
		URL:         wh.URL,
		Description: wh.Description,
		SecretKey:   wh.SecretKey,
		CreatedAt:   wh.CreatedAt,
	}
	return mcp.NewToolResultText(string(mustMarshal(record))), nil
}

type DeleteWebhookHandler struct {
	Client *upbank.Client
}

func (h *DeleteWebhookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "webhook_id")
	if id == "" {
		return mcp.NewToolResultError("webhook_id parameter is required"), nil
	}
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	if err := sess.DeleteWebhook(ctx, id); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(mustMarshal(true))), nil
}

type PingWebhookHandler struct {
	Client *upbank.Client
}

func (h *PingWebhookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringArg(req.GetArguments(), "webhook_id")
	if id == "" {
		return mcp.NewToolResultError("webhook_id parameter is required"), nil
	}
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	event, err := sess.PingWebhook(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(event.String()), nil
}
