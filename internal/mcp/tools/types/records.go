// Package types holds the plain serializable record shapes returned by the
// banking tools.
package types

import "time"

type AccountRecord struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type CategoryRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TagRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransactionSummary is the default transaction projection.
type TransactionSummary struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// TransactionRecord is the verbose transaction projection, a strict
// superset of TransactionSummary.
type TransactionRecord struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type WebhookRecord struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// WebhookCreatedRecord carries the secret key, which the API exposes
// exactly once at creation time.
type WebhookCreatedRecord struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	SecretKey   string    `json:"secret_key"`
	CreatedAt   time.Time `json:"created_at"`
}
