package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"orderdeck/internal/domain"
)

// Service is the remote orders service as seen by the client. List, Search
// and Delete are what the browse coordinator consumes; Get and Create back
// the view and create navigation targets.
type Service interface {
	List(ctx context.Context, page, pageSize int) (domain.Page, error)
	Search(ctx context.Context, query string, page, pageSize int) (domain.Page, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// Client talks JSON over HTTP to the orders service.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a client for the service at baseURL. The timeout applies
// per request.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// List fetches one page of all orders.
func (c *Client) List(ctx context.Context, page, pageSize int) (domain.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var result domain.Page
	if err := c.getJSON(ctx, "/orders?"+q.Encode(), &result); err != nil {
		return domain.Page{}, fmt.Errorf("list orders: %w", err)
	}
	return result, nil
}

// Search fetches one page of orders matching the query string.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) (domain.Page, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var result domain.Page
	if err := c.getJSON(ctx, "/orders/search?"+q.Encode(), &result); err != nil {
		return domain.Page{}, fmt.Errorf("search orders: %w", err)
	}
	return result, nil
}

// Get fetches a single order by id.
func (c *Client) Get(ctx context.Context, id string) (domain.Order, error) {
	var order domain.Order
	if err := c.getJSON(ctx, "/orders/"+url.PathEscape(id), &order); err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

// Create posts a new order and returns it as stored by the service.
func (c *Client) Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var order domain.Order
	if err := c.do(req, &order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// Delete removes an order by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/orders/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("orders service call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Include a snippet of the body so the log is actionable.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("orders service returned %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
