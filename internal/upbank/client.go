// Package upbank binds the Up banking API (https://api.up.com.au/api/v1):
// bearer authentication, JSON:API envelopes and link-following pagination.
package upbank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/edkranz/up-mcp/internal/logging"
)

const (
	DefaultBaseURL  = "https://api.up.com.au/api/v1"
	DefaultPageSize = 100
)

// Client holds the immutable configuration shared by all sessions: the
// bearer token read once at startup, the base URL and paging defaults.
type Client struct {
	token    string
	baseURL  string
	pageSize int
	timeout  time.Duration
	log      logging.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:    token,
		baseURL:  DefaultBaseURL,
		pageSize: DefaultPageSize,
		timeout:  30 * time.Second,
		log:      logging.New(logging.DefaultLogger("")).WithName("upbank"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session is a credential-bound connection context scoped to a single tool
// invocation. Callers must Close it on every exit path.
type Session struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	log        logging.Logger
}

// Session opens a fresh scoped session. An invalid token is not detected
// here; it surfaces on the first request.
func (c *Client) Session(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var hc *http.Client
	if c.token == "" {
		hc = &http.Client{Timeout: c.timeout}
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
		hc = oauth2.NewClient(ctx, ts)
		hc.Timeout = c.timeout
	}
	return &Session{
		baseURL:    c.baseURL,
		pageSize:   c.pageSize,
		httpClient: hc,
		log:        c.log,
	}, nil
}

// Close releases the session's transport resources.
func (s *Session) Close() error {
	s.httpClient.CloseIdleConnections()
	return nil
}

func (s *Session) endpoint(path string, query url.Values) string {
	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (s *Session) do(ctx context.Context, method, rawURL string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.log.Debug("upstream request", "method", method, "url", rawURL)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := errorFromResponse(resp.StatusCode, data)
		s.log.Debug("upstream error", "method", method, "url", rawURL, "status", resp.StatusCode)
		return apiErr
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (s *Session) get(ctx context.Context, rawURL string, out any) error {
	return s.do(ctx, http.MethodGet, rawURL, nil, out)
}

// Ping verifies the token and returns the authenticated user's id.
func (s *Session) Ping(ctx context.Context) (string, error) {
	var doc struct {
		Meta struct {
			ID          string `json:"id"`
			StatusEmoji string `json:"statusEmoji"`
		} `json:"meta"`
	}
	if err := s.get(ctx, s.endpoint("/util/ping", nil), &doc); err != nil {
		return "", err
	}
	return doc.Meta.ID, nil
}

// Accounts lists every account, paginated.
func (s *Session) Accounts() *Pager[Account] {
	q := url.Values{}
	q.Set("page[size]", strconv.Itoa(s.pageSize))
	return newPager(s, s.endpoint("/accounts", q), decodeAccount)
}

// Account fetches one account by id.
func (s *Session) Account(ctx context.Context, id string) (Account, error) {
	var doc singleDocument
	if err := s.get(ctx, s.endpoint("/accounts/"+url.PathEscape(id), nil), &doc); err != nil {
		return Account{}, err
	}
	return decodeAccount(doc.Data)
}

// Categories lists categories, optionally restricted to the children of
// parentID. The endpoint is not paginated.
func (s *Session) Categories(ctx context.Context, parentID string) ([]Category, error) {
	q := url.Values{}
	if parentID != "" {
		q.Set("filter[parent]", parentID)
	}
	var doc listDocument
	if err := s.get(ctx, s.endpoint("/categories", q), &doc); err != nil {
		return nil, err
	}
	categories := make([]Category, 0, len(doc.Data))
	for _, r := range doc.Data {
		cat, err := decodeCategory(r)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// Category fetches one category by id.
func (s *Session) Category(ctx context.Context, id string) (Category, error) {
	var doc singleDocument
	if err := s.get(ctx, s.endpoint("/categories/"+url.PathEscape(id), nil), &doc); err != nil {
		return Category{}, err
	}
	return decodeCategory(doc.Data)
}

type relationshipRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Categorize assigns categoryID to a transaction. An empty categoryID
// clears the transaction's categorization.
func (s *Session) Categorize(ctx context.Context, transactionID, categoryID string) error {
	payload := map[string]any{"data": nil}
	if categoryID != "" {
		payload["data"] = relationshipRef{Type: "categories", ID: categoryID}
	}
	u := s.endpoint("/transactions/"+url.PathEscape(transactionID)+"/relationships/category", nil)
	return s.do(ctx, http.MethodPatch, u, payload, nil)
}

// Tags lists every tag, paginated.
func (s *Session) Tags() *Pager[Tag] {
	q := url.Values{}
	q.Set("page[size]", strconv.Itoa(s.pageSize))
	return newPager(s, s.endpoint("/tags", q), decodeTag)
}

func tagRefs(tagIDs []string) map[string]any {
	refs := make([]relationshipRef, 0, len(tagIDs))
	for _, id := range tagIDs {
		refs = append(refs, relationshipRef{Type: "tags", ID: id})
	}
	return map[string]any{"data": refs}
}

// AddTags attaches the given tag ids to a transaction in one request.
func (s *Session) AddTags(ctx context.Context, transactionID string, tagIDs ...string) error {
	u := s.endpoint("/transactions/"+url.PathEscape(transactionID)+"/relationships/tags", nil)
	return s.do(ctx, http.MethodPost, u, tagRefs(tagIDs), nil)
}

// RemoveTags detaches the given tag ids from a transaction in one request.
func (s *Session) RemoveTags(ctx context.Context, transactionID string, tagIDs ...string) error {
	u := s.endpoint("/transactions/"+url.PathEscape(transactionID)+"/relationships/tags", nil)
	return s.do(ctx, http.MethodDelete, u, tagRefs(tagIDs), nil)
}

// Transaction fetches one transaction by id.
func (s *Session) Transaction(ctx context.Context, id string) (Transaction, error) {
	var doc singleDocument
	if err := s.get(ctx, s.endpoint("/transactions/"+url.PathEscape(id), nil), &doc); err != nil {
		return Transaction{}, err
	}
	return decodeTransaction(doc.Data)
}

// TransactionFilter narrows a transaction listing. Zero values mean no
// filtering on that dimension.
type TransactionFilter struct {
	Account  string
	Status   string
	Since    *time.Time
	Until    *time.Time
	Category string
	Tag      string
}

// Transactions lists transactions matching the filter, paginated. When
// filter.Account is set the account-scoped listing endpoint is used.
func (s *Session) Transactions(filter TransactionFilter) *Pager[Transaction] {
	q := url.Values{}
	q.Set("page[size]", strconv.Itoa(s.pageSize))
	if filter.Status != "" {
		q.Set("filter[status]", filter.Status)
	}
	if filter.Since != nil {
		q.Set("filter[since]", filter.Since.Format(time.RFC3339))
	}
	if filter.Until != nil {
		q.Set("filter[until]", filter.Until.Format(time.RFC3339))
	}
	if filter.Category != "" {
		q.Set("filter[category]", filter.Category)
	}
	if filter.Tag != "" {
		q.Set("filter[tag]", filter.Tag)
	}
	path := "/transactions"
	if filter.Account != "" {
		path = "/accounts/" + url.PathEscape(filter.Account) + "/transactions"
	}
	return newPager(s, s.endpoint(path, q), decodeTransaction)
}

// Webhooks lists every registered webhook, paginated.
func (s *Session) Webhooks() *Pager[Webhook] {
	q := url.Values{}
	q.Set("page[size]", strconv.Itoa(s.pageSize))
	return newPager(s, s.endpoint("/webhooks", q), decodeWebhook)
}

// CreateWebhook registers a delivery endpoint. The returned webhook is the
// only place its secret key is ever exposed.
func (s *Session) CreateWebhook(ctx context.Context, webhookURL, description string) (Webhook, error) {
	attrs := struct {
		URL         string  `json:"url"`
		Description *string `json:"description,omitempty"`
	}{URL: webhookURL}
	if description != "" {
		attrs.Description = &description
	}
	payload := map[string]any{"data": map[string]any{"attributes": attrs}}
	var doc singleDocument
	if err := s.do(ctx, http.MethodPost, s.endpoint("/webhooks", nil), payload, &doc); err != nil {
		return Webhook{}, err
	}
	return decodeWebhook(doc.Data)
}

// DeleteWebhook removes a webhook by id.
func (s *Session) DeleteWebhook(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, s.endpoint("/webhooks/"+url.PathEscape(id), nil), nil, nil)
}

// PingWebhook asks the API to deliver a test event to the webhook and
// returns the generated delivery event.
func (s *Session) PingWebhook(ctx context.Context, id string) (WebhookEvent, error) {
	var doc singleDocument
	u := s.endpoint("/webhooks/"+url.PathEscape(id)+"/ping", nil)
	if err := s.do(ctx, http.MethodPost, u, nil, &doc); err != nil {
		return WebhookEvent{}, err
	}
	return decodeWebhookEvent(doc.Data)
}
