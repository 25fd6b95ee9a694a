package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
)

func TestGetTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[
			{"type":"tags","id":"coffee"},
			{"type":"tags","id":"holiday"}
		],"links":{"prev":null,"next":null}}`)
	})
	h := &GetTagsHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("tool adapter: %v", err)
	}
	var records []types.TagRecord
	if err := json.Unmarshal([]byte(resultText(t, res)), &records); err != nil {
		t.Fatalf("unmarshal records: %v", err)
	}
	if len(records) != 2 || records[0].ID != "coffee" || records[0].Name != "coffee" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestAddTransactionTags(t *testing.T) {
	var method, body string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusNoContent)
	})
	h := &AddTransactionTagsHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"transaction_id": "tx-1",
		"tags":           []any{"coffee", "work"},
	}))
	if err != nil {
		t.Fatalf("add tags: %v", err)
	}
	if got := resultText(t, res); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}
	if method != http.MethodPost {
		t.Fatalf("expected POST, got %s", method)
	}
	if n := gjson.Get(body, "data.#").Int(); n != 2 {
		t.Fatalf("expected 2 tag refs in one request, got body %s", body)
	}
}

func TestRemoveTransactionTags(t *testing.T) {
	var method string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	})
	h := &RemoveTransactionTagsHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"transaction_id": "tx-1",
		"tags":           []any{"coffee"},
	}))
	if err != nil {
		t.Fatalf("remove tags: %v", err)
	}
	if got := resultText(t, res); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}
	if method != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", method)
	}
}

func TestAddTransactionTagsEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no upstream call expected")
	})
	h := &AddTransactionTagsHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"transaction_id": "tx-1",
		"tags":           []any{},
	}))
	if err != nil {
		t.Fatalf("tool adapter: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected argument error result")
	}
}
