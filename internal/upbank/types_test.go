package upbank

import (
	"encoding/json"
	"testing"
)

func TestAccountString(t *testing.T) {
	a := Account{Name: "Spending", Type: "TRANSACTIONAL", Balance: 150.5, Currency: "AUD"}
	want := "<Account 'Spending' (TRANSACTIONAL): 150.50 AUD>"
	if got := a.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTransactionString(t *testing.T) {
	tx := Transaction{Status: "SETTLED", Amount: -5, Currency: "AUD", Description: "7-Eleven"}
	want := "<Transaction SETTLED: -5.00 AUD [7-Eleven]>"
	if got := tx.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCategoryString(t *testing.T) {
	c := Category{ID: "restaurants-and-cafes", Name: "Restaurants & Cafes"}
	want := "<Category 'restaurants-and-cafes': Restaurants & Cafes>"
	if got := c.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWebhookEventString(t *testing.T) {
	e := WebhookEvent{EventType: "PING", WebhookID: "wh-1"}
	want := "<WebhookEvent PING: wh-1>"
	if got := e.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDecodeTransactionOptionalFields(t *testing.T) {
	raw := resource{
		Type: "transactions",
		ID:   "tx-1",
		Attributes: json.RawMessage(`{
			"status":"HELD",
			"rawText":null,
			"description":"Coles",
			"message":null,
			"amount":{"currencyCode":"AUD","value":"-42.80","valueInBaseUnits":-4280},
			"settledAt":null,
			"createdAt":"2024-02-01T10:00:00Z"
		}`),
	}
	tx, err := decodeTransaction(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tx.Amount != -42.80 || tx.Status != "HELD" || tx.SettledAt != nil {
		t.Fatalf("unexpected transaction %+v", tx)
	}
}

func TestDecodeAccountBadMoney(t *testing.T) {
	raw := resource{
		Type:       "accounts",
		ID:         "a1",
		Attributes: json.RawMessage(`{"displayName":"Spending","balance":{"currencyCode":"AUD","value":"not-a-number"}}`),
	}
	if _, err := decodeAccount(raw); err == nil {
		t.Fatalf("expected error for malformed money value")
	}
}

func TestDecodeTagFallsBackToID(t *testing.T) {
	tag, err := decodeTag(resource{Type: "tags", ID: "coffee"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tag.ID != "coffee" || tag.Name != "coffee" {
		t.Fatalf("unexpected tag %+v", tag)
	}
}
