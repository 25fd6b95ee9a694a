package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/edkranz/up-mcp/internal/mcp/tools/types"
)

func TestGetCategoriesAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filter[parent]"); got != "" {
			t.Errorf("expected no parent filter, got %q", got)
		}
		fmt.Fprint(w, `{"data":[
			{"type":"categories","id":"good-life","attributes":{"name":"Good Life"}},
			{"type":"categories","id":"home","attributes":{"name":"Home"}}
		]}`)
	})
	h := &GetCategoriesHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("tool adapter: %v", err)
	}
	var records []types.CategoryRecord
	if err := json.Unmarshal([]byte(resultText(t, res)), &records); err != nil {
		t.Fatalf("unmarshal records: %v", err)
	}
	if len(records) != 2 || records[0].ID != "good-life" || records[1].Name != "Home" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestGetCategoriesChildlessParentIsEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	})
	h := &GetCategoriesHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"parent_id": "booze"}))
	if err != nil {
		t.Fatalf("tool adapter: %v", err)
	}
	if got := resultText(t, res); got != "[]" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestGetCategorySummaryString(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"type":"categories","id":"restaurants-and-cafes","attributes":{"name":"Restaurants & Cafes"}}}`)
	})
	h := &GetCategoryHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"category_id": "restaurants-and-cafes"}))
	if err != nil {
		t.Fatalf("tool adapter: %v", err)
	}
	if got := resultText(t, res); got != "<Category 'restaurants-and-cafes': Restaurants & Cafes>" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestCategorizeTransaction(t *testing.T) {
	var sawClear bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) == `{"data":null}` {
			sawClear = true
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := &CategorizeTransactionHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"transaction_id": "tx-1",
		"category_id":    "groceries",
	}))
	if err != nil {
		t.Fatalf("categorize: %v", err)
	}
	if got := resultText(t, res); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}

	res, err = h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"transaction_id": "tx-1",
	}))
	if err != nil {
		t.Fatalf("clear categorization: %v", err)
	}
	if got := resultText(t, res); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}
	if !sawClear {
		t.Fatalf("expected a null-data clear request")
	}
}

func TestCategorizeTransactionMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no upstream call expected")
	})
	h := &CategorizeTransactionHandler{Client: client}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"category_id": "groceries"}))
	if err != nil {
		t.Fatalf("tool adapter: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected argument error result")
	}
}
