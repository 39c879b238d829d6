// Package trials provides a client for the disease name search service
// backing the clinical-trial search.
package trials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/llehouerou/trialsearch/internal/highlight"
)

// ErrMalformedResponse is returned when the service answers with a body
// that does not have the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

const (
	userAgent = "trialsearch/1.0 (https://github.com/llehouerou/trialsearch)"

	defaultTimeout = 10 * time.Second
	defaultRows    = 10

	initialDelay = 500 * time.Millisecond
	maxDelay     = 5 * time.Second

	resultOK = "00"
)

// Options configures a Client.
type Options struct {
	BaseURL     string        // full endpoint URL
	ServiceKey  string        // data portal service key, optional for mock servers
	Rows        int           // numOfRows
	Timeout     time.Duration // per HTTP attempt
	MinInterval time.Duration // minimum spacing between requests, 0 disables
	MaxRetries  int           // retries on 5xx and transport errors
	Parser      highlight.Parser
	HTTPClient  *http.Client // overrides Timeout when set
}

// Client is a disease name search client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
	rows       int
	limiter    *rate.Limiter
	maxRetries int
	parser     highlight.Parser
}

// New creates a new client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = defaultRows
	}
	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		serviceKey: opts.ServiceKey,
		rows:       rows,
		limiter:    rate.NewLimiter(limit, 1),
		maxRetries: max(opts.MaxRetries, 0),
		parser:     opts.Parser,
	}
}

// Search returns the diseases whose name matches query.
func (c *Client) Search(ctx context.Context, query string) (Page, error) {
	params := url.Values{}
	if c.serviceKey != "" {
		params.Set("serviceKey", c.serviceKey)
	}
	params.Set("searchText", query)
	params.Set("pageNo", "1")
	params.Set("numOfRows", strconv.Itoa(c.rows))
	params.Set("_type", "json")

	reqURL := c.baseURL + "?" + params.Encode()

	resp, err := c.doRequestWithRetry(ctx, reqURL)
	if err != nil {
		return Page{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Page{}, fmt.Errorf("unexpected status %s: %s", resp.Status, body)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Page{}, fmt.Errorf("%w: decode: %w", ErrMalformedResponse, err)
	}

	return c.convert(env)
}

func (c *Client) convert(env envelope) (Page, error) {
	if env.Response == nil {
		return Page{}, fmt.Errorf("%w: missing response", ErrMalformedResponse)
	}
	h := env.Response.Header
	if h.ResultCode != "" && h.ResultCode != resultOK {
		return Page{}, &APIError{Code: h.ResultCode, Message: h.ResultMsg}
	}
	body := env.Response.Body
	if body == nil {
		return Page{}, fmt.Errorf("%w: missing body", ErrMalformedResponse)
	}

	page := Page{Items: make([]Item, 0, len(body.Items))}
	seen := make(map[string]bool, len(body.Items))
	for _, wi := range body.Items {
		if wi.SickCd == "" || wi.SickNm == "" || seen[wi.SickCd] {
			continue
		}
		seen[wi.SickCd] = true

		raw := wi.OriginSickNm
		if raw == "" {
			raw = c.parser.Strip(wi.SickNm)
		}
		page.Items = append(page.Items, Item{
			Code:         wi.SickCd,
			DisplayLabel: wi.SickNm,
			RawName:      raw,
		})
	}

	page.TotalCount = len(page.Items)
	if body.TotalCount != "" {
		n, err := body.TotalCount.Int64()
		if err != nil {
			return Page{}, fmt.Errorf("%w: totalCount: %w", ErrMalformedResponse, err)
		}
		page.TotalCount = int(n)
	}
	return page, nil
}

// waitForRateLimit spaces requests by at least MinInterval. It fails
// without waiting when ctx would expire first.
func (c *Client) waitForRateLimit(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// doRequestWithRetry executes a GET with exponential backoff.
// Retries on 5xx responses and transport errors, never on context errors.
func (c *Client) doRequestWithRetry(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			t := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, ctx.Err()
			case <-t.C:
			}
			delay = min(delay*2, maxDelay)
		}

		if err := c.waitForRateLimit(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		// Success or client error (4xx) - don't retry
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %s", resp.Status)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
