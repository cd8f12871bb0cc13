// Package menuclient talks to the menu service's JSON API.
package menuclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	http    HTTPClient
	logger  *zap.Logger
}

func New(baseURL string, httpClient HTTPClient, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// FetchMenu returns the catalog with discounted prices. Any failure is logged
// and yields no entries; there is no retry.
func (c *Client) FetchMenu(ctx context.Context) ([]Entry, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &items); err != nil {
		c.logger.Error("error fetching menu items", zap.Error(err))
		return []Entry{}, err
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, NewEntry(it))
	}
	return entries, nil
}

func (c *Client) FetchPopular(ctx context.Context, limit int) ([]PopularItem, error) {
	path := "/api/menu/popular"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}

	var items []PopularItem
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []PopularItem{}
	}
	return items, nil
}

// SubmitContact returns the error to the caller, which keeps the form so the
// user can try again.
func (c *Client) SubmitContact(ctx context.Context, contact Contact) (*ContactReceipt, error) {
	var receipt ContactReceipt
	if err := c.do(ctx, http.MethodPost, "/api/contact", contact, &receipt); err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}
	return &receipt, nil
}

func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (*OrderReceipt, error) {
	var receipt OrderReceipt
	if err := c.do(ctx, http.MethodPost, "/api/orders", order, &receipt); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return &receipt, nil
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorBody
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, e.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
