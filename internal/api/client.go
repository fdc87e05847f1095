// Package api provides the HTTP client for the MeuFuturo REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/meufuturo/futuro/internal/common"
	"github.com/meufuturo/futuro/internal/model"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

const categoryCacheKey = "categories"

// Config holds API client configuration.
type Config struct {
	Tokens      *TokenStore
	BaseURL     string
	Timeout     time.Duration
	RateLimit   rate.Limit
	RateBurst   int
	CategoryTTL time.Duration
}

// Client talks to the MeuFuturo API. Every request carries the saved
// bearer token and a generated X-Request-ID for log correlation; an auth
// failure clears the stored token.
type Client struct {
	httpClient *http.Client
	tokens     *TokenStore
	limiter    *rate.Limiter
	categories *gocache.Cache
	logger     *slog.Logger
	baseURL    string
}

// NewClient creates a client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("%w: token store is required", common.ErrMissingConfig)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = rate.Limit(10)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 5
	}
	ttl := cfg.CategoryTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &Client{
		baseURL:    baseURL,
		tokens:     cfg.Tokens,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		categories: gocache.New(ttl, 2*ttl),
		logger:     slog.Default().With("component", "api"),
	}, nil
}

// TransactionPage is one page of the transaction listing plus its
// pagination metadata, normalized from the wire envelope.
type TransactionPage struct {
	Items      []model.Transaction
	Pagination model.PaginationInfo
}

// paginatedEnvelope is the wire shape for paginated listings.
type paginatedEnvelope struct {
	Items       []model.Transaction `json:"items"`
	Total       int                 `json:"total"`
	Page        int                 `json:"page"`
	Size        int                 `json:"size"`
	Pages       int                 `json:"pages"`
	HasNext     bool                `json:"has_next"`
	HasPrevious bool                `json:"has_previous"`
}

// errorEnvelope is the wire shape for failures.
type errorEnvelope struct {
	Detail  json.RawMessage   `json:"detail,omitempty"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ListTransactions fetches one filtered page.
func (c *Client) ListTransactions(ctx context.Context, params ListParams) (*TransactionPage, error) {
	var envelope paginatedEnvelope
	err := c.do(ctx, http.MethodGet, "/financial/transactions", params.Values(), nil, &envelope)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Items: envelope.Items,
		Pagination: model.PaginationInfo{
			CurrentPage: envelope.Page,
			PageSize:    envelope.Size,
			TotalItems:  envelope.Total,
			TotalPages:  envelope.Pages,
			HasNext:     envelope.HasNext,
			HasPrevious: envelope.HasPrevious,
		},
	}, nil
}

// GetTransaction fetches a single transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	var tx model.Transaction
	path := "/financial/transactions/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CreateTransaction posts a new transaction after local validation.
func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*model.Transaction, error) {
	if err := validatePayload(input); err != nil {
		return nil, err
	}

	var created model.Transaction
	if err := c.do(ctx, http.MethodPost, "/financial/transactions", nil, input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*model.Transaction, error) {
	if err := validatePayload(patch); err != nil {
		return nil, err
	}

	var updated model.Transaction
	path := "/financial/transactions/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	path := "/financial/transactions/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// GetTransactionSummary fetches the server-side totals for the period.
// Unlike the page-local stats, these cover every matching transaction.
func (c *Client) GetTransactionSummary(ctx context.Context, params SummaryParams) (*model.TransactionSummary, error) {
	var summary model.TransactionSummary
	if err := c.do(ctx, http.MethodGet, "/financial/summary", params.Values(), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetCategories returns the category reference data, served from the
// session cache when fresh.
func (c *Client) GetCategories(ctx context.Context, params CategoryParams) ([]model.Category, error) {
	if cached, ok := c.categories.Get(categoryCacheKey); ok {
		return cached.([]model.Category), nil
	}

	var categories []model.Category
	if err := c.do(ctx, http.MethodGet, "/financial/categories", params.Values(), nil, &categories); err != nil {
		return nil, err
	}

	c.categories.SetDefault(categoryCacheKey, categories)
	return categories, nil
}

// InvalidateCategories drops the cached category list.
func (c *Client) InvalidateCategories() {
	c.categories.Delete(categoryCacheKey)
}

// do executes one request: rate-limit wait, auth header, request ID,
// response decode, error classification. Auth failures clear the saved
// token before returning.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.ClassifyTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("API request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode >= 400 {
		return c.classifyResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// classifyResponse turns a non-2xx response into a structured APIError.
func (c *Client) classifyResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	message := http.StatusText(resp.StatusCode)
	fields := map[string]string{}

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			message = envelope.Message
		} else if len(envelope.Detail) > 0 {
			// detail is either a plain string or a list of field errors
			var detail string
			if json.Unmarshal(envelope.Detail, &detail) == nil && detail != "" {
				message = detail
			} else {
				var items []struct {
					Loc []any  `json:"loc"`
					Msg string `json:"msg"`
				}
				if json.Unmarshal(envelope.Detail, &items) == nil {
					for _, item := range items {
						if len(item.Loc) > 0 {
							fields[fmt.Sprint(item.Loc[len(item.Loc)-1])] = item.Msg
						}
					}
					if len(items) > 0 {
						message = items[0].Msg
					}
				}
			}
		}
		for k, v := range envelope.Details {
			fields[k] = v
		}
	}

	apiErr := common.ClassifyHTTP(resp.StatusCode, message, fields)

	if apiErr.Kind == common.ErrorAuth {
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn("Failed to clear token after auth error", "error", err)
		}
	}

	return apiErr
}
