package upbank

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// resource is the JSON:API envelope every Up entity arrives in.
type resource struct {
	Type          string          `json:"type"`
	ID            string          `json:"id"`
	Attributes    json.RawMessage `json:"attributes"`
	Relationships json.RawMessage `json:"relationships"`
}

type singleDocument struct {
	Data resource `json:"data"`
}

type listDocument struct {
	Data  []resource `json:"data"`
	Links pageLinks  `json:"links"`
}

type pageLinks struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

type moneyObject struct {
	CurrencyCode     string `json:"currencyCode"`
	Value            string `json:"value"`
	ValueInBaseUnits int64  `json:"valueInBaseUnits"`
}

func (m moneyObject) amount() (float64, error) {
	v, err := strconv.ParseFloat(m.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse money value %q: %w", m.Value, err)
	}
	return v, nil
}

// Account is a read-only view of an Up account.
type Account struct {
	ID        string
	Name      string
	Type      string
	Ownership string
	Balance   float64
	Currency  string
	CreatedAt time.Time
}

func (a Account) String() string {
	return fmt.Sprintf("<Account '%s' (%s): %.2f %s>", a.Name, a.Type, a.Balance, a.Currency)
}

func decodeAccount(r resource) (Account, error) {
	var attrs struct {
		DisplayName   string      `json:"displayName"`
		AccountType   string      `json:"accountType"`
		OwnershipType string      `json:"ownershipType"`
		Balance       moneyObject `json:"balance"`
		CreatedAt     time.Time   `json:"createdAt"`
	}
	if err := json.Unmarshal(r.Attributes, &attrs); err != nil {
		return Account{}, fmt.Errorf("decode account %s: %w", r.ID, err)
	}
	balance, err := attrs.Balance.amount()
	if err != nil {
		return Account{}, fmt.Errorf("decode account %s: %w", r.ID, err)
	}
	return Account{
		ID:        r.ID,
		Name:      attrs.DisplayName,
		Type:      attrs.AccountType,
		Ownership: attrs.OwnershipType,
		Balance:   balance,
		Currency:  attrs.Balance.CurrencyCode,
		CreatedAt: attrs.CreatedAt,
	}, nil
}

// Transaction is a single settled or held transaction.
type Transaction struct {
	ID          string
	Status      string
	RawText     string
	Description string
	Message     string
	Amount      float64
	Currency    string
	CreatedAt   time.Time
	SettledAt   *time.Time
}

func (t Transaction) String() string {
	return fmt.Sprintf("<Transaction %s: %.2f %s [%s]>", t.Status, t.Amount, t.Currency, t.Description)
}

func decodeTransaction(r resource) (Transaction, error) {
	var attrs struct {
		Status      string      `json:"status"`
		RawText     *string     `json:"rawText"`
		Description string      `json:"description"`
		Message     *string     `json:"message"`
		Amount      moneyObject `json:"amount"`
		SettledAt   *time.Time  `json:"settledAt"`
		CreatedAt   time.Time   `json:"createdAt"`
	}
	if err := json.Unmarshal(r.Attributes, &attrs); err != nil {
		return Transaction{}, fmt.Errorf("decode transaction %s: %w", r.ID, err)
	}
	amount, err := attrs.Amount.amount()
	if err != nil {
		return Transaction{}, fmt.Errorf("decode transaction %s: %w", r.ID, err)
	}
	tx := Transaction{
		ID:          r.ID,
		Status:      attrs.Status,
		Description: attrs.Description,
		Amount:      amount,
		Currency:    attrs.Amount.CurrencyCode,
		CreatedAt:   attrs.CreatedAt,
		SettledAt:   attrs.SettledAt,
	}
	if attrs.RawText != nil {
		tx.RawText = *attrs.RawText
	}
	if attrs.Message != nil {
		tx.Message = *attrs.Message
	}
	return tx, nil
}

// Category is a node in Up's fixed two-level category tree.
type Category struct {
	ID       string
	Name     string
	ParentID string
}

func (c Category) String() string {
	return fmt.Sprintf("<Category '%s': %s>", c.ID, c.Name)
}

func decodeCategory(r resource) (Category, error) {
	var attrs struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(r.Attributes, &attrs); err != nil {
		return Category{}, fmt.Errorf("decode category %s: %w", r.ID, err)
	}
	return Category{
		ID:       r.ID,
		Name:     attrs.Name,
		ParentID: gjson.GetBytes(r.Relationships, "parent.data.id").String(),
	}, nil
}

// Tag is a user-defined transaction label. Up tags have no display name
// separate from their identifier.
type Tag struct {
	ID   string
	Name string
}

func decodeTag(r resource) (Tag, error) {
	name := gjson.GetBytes(r.Attributes, "name").String()
	if name == "" {
		name = r.ID
	}
	return Tag{ID: r.ID, Name: name}, nil
}

// Webhook is a registered delivery endpoint. SecretKey is populated only
// on the response to a create call.
type Webhook struct {
	ID          string
	URL         string
	Description string
	SecretKey   string
	CreatedAt   time.Time
}

func decodeWebhook(r resource) (Webhook, error) {
	var attrs struct {
		URL         string    `json:"url"`
		Description *string   `json:"description"`
		SecretKey   *string   `json:"secretKey"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(r.Attributes, &attrs); err != nil {
		return Webhook{}, fmt.Errorf("decode webhook %s: %w", r.ID, err)
	}
	wh := Webhook{
		ID:        r.ID,
		URL:       attrs.URL,
		CreatedAt: attrs.CreatedAt,
	}
	if attrs.Description != nil {
		wh.Description = *attrs.Description
	}
	if attrs.SecretKey != nil {
		wh.SecretKey = *attrs.SecretKey
	}
	return wh, nil
}

// WebhookEvent is the delivery event generated by the API, for example in
// response to a ping.
type WebhookEvent struct {
	ID        string
	EventType string
	WebhookID string
	CreatedAt time.Time
}

func (e WebhookEvent) String() string {
	return fmt.Sprintf("<WebhookEvent %s: %s>", e.EventType, e.WebhookID)
}

func decodeWebhookEvent(r resource) (WebhookEvent, error) {
	var attrs struct {
		EventType string    `json:"eventType"`
		CreatedAt time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(r.Attributes, &attrs); err != nil {
		return WebhookEvent{}, fmt.Errorf("decode webhook event %s: %w", r.ID, err)
	}
	return WebhookEvent{
		ID:        r.ID,
		EventType: attrs.EventType,
		WebhookID: gjson.GetBytes(r.Relationships, "webhook.data.id").String(),
		CreatedAt: attrs.CreatedAt,
	}, nil
}
