// Package apiclient is the typed HTTP wrapper over the Karyana backend.
// Successful responses arrive wrapped as {"data": ...}; failures carry a
// {"message": ...} envelope decoded by internal/apierror. The client does
// request shaping and response unwrapping only — no business logic.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mustehsanCodes/ali-store-frontend/internal/apierror"
)

// Client bundles the per-resource APIs behind one HTTP client. There is no
// retry policy: a failed request is reported once and retried only by the
// user re-triggering the action.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Products  *ProductsAPI
	Sales     *SalesAPI
	Loans     *LoansAPI
	Dashboard *DashboardAPI
}

// New creates a client for the backend at baseURL (e.g.
// "http://localhost:5000/api"). A non-positive timeout defaults to 30s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	c.Products = &ProductsAPI{c: c}
	c.Sales = &SalesAPI{c: c}
	c.Loans = &LoansAPI{c: c}
	c.Dashboard = &DashboardAPI{c: c}
	return c
}

// dataEnvelope matches the backend's success body: {"data": ...}.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// do performs one request and decodes the data envelope into out (out may
// be nil for calls whose payload is ignored, e.g. DELETE).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api request")

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apierror.FromResponse(resp.StatusCode, payload)
	}
	if out == nil {
		return nil
	}

	var env dataEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("apiclient: decode envelope: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("apiclient: decode data: %w", err)
	}
	return nil
}

// download streams a non-JSON response body (the PDF endpoint) into w.
// A JSON payload on this path is an error envelope in disguise.
func (c *Client) download(ctx context.Context, path string, query url.Values, w io.Writer) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("apiclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode >= http.StatusBadRequest || strings.Contains(contentType, "application/json") {
		payload, _ := io.ReadAll(resp.Body)
		return apierror.FromResponse(resp.StatusCode, payload)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("apiclient: save download: %w", err)
	}
	return nil
}
