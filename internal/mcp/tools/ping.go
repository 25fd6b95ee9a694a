package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/edkranz/up-mcp/internal/upbank"
)

// GetUserIDHandler verifies the configured token. It is the only tool that
// downgrades an authorization failure into a normal result instead of
// propagating it.
type GetUserIDHandler struct {
	Client *upbank.Client
}

func (h *GetUserIDHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, err := h.Client.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	userID, err := sess.Ping(ctx)
	if err != nil {
		var authErr *upbank.NotAuthorizedError
		if errors.As(err, &authErr) {
			return mcp.NewToolResultText("The token is invalid"), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText("Authorized: " + userID), nil
}
