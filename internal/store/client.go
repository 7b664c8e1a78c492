package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Error is returned for any non-2xx response from the store. The store's own
// response body is logged but never carried back to API clients.
type Error struct {
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("store responded with status %d", e.StatusCode)
}

// Client wraps the Supabase REST interface. All data persistence and
// credential verification lives behind it; the client itself holds no state
// beyond the connection pool and is safe for concurrent use.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   client,
		logger: logger,
	}
}

// Rpc calls a stored procedure under /rest/v1/rpc and returns the raw JSON
// result.
func (c *Client) Rpc(ctx context.Context, name string, args interface{}) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(args).
		Post("/rest/v1/rpc/" + name)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		c.logError("rpc", name, resp)
		return nil, &Error{StatusCode: resp.StatusCode()}
	}
	return json.RawMessage(resp.Body()), nil
}

// Select fetches rows from a table. Filters use PostgREST operator syntax
// ("store_code" -> "eq.S1"); order is a PostgREST order expression such as
// "created_at.desc".
func (c *Client) Select(ctx context.Context, table string, filters map[string]string, order string) (json.RawMessage, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("select", "*")
	for column, filter := range filters {
		req.SetQueryParam(column, filter)
	}
	if order != "" {
		req.SetQueryParam("order", order)
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		c.logError("select", table, resp)
		return nil, &Error{StatusCode: resp.StatusCode()}
	}
	return json.RawMessage(resp.Body()), nil
}

// Insert adds a record and returns the stored representation.
func (c *Client) Insert(ctx context.Context, table string, record interface{}) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(record).
		Post("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		c.logError("insert", table, resp)
		return nil, &Error{StatusCode: resp.StatusCode()}
	}
	return json.RawMessage(resp.Body()), nil
}

// Patch applies a partial update to the rows matched by filters.
func (c *Client) Patch(ctx context.Context, table string, filters map[string]string, partial interface{}) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(partial)
	for column, filter := range filters {
		req.SetQueryParam(column, filter)
	}

	resp, err := req.Patch("/rest/v1/" + table)
	if err != nil {
		return err
	}
	if resp.IsError() {
		c.logError("patch", table, resp)
		return &Error{StatusCode: resp.StatusCode()}
	}
	return nil
}

func (c *Client) logError(op, target string, resp *resty.Response) {
	c.logger.Error().
		Str("op", op).
		Str("target", target).
		Int("status", resp.StatusCode()).
		Str("body", string(resp.Body())).
		Msg("Store request failed")
}
