package gadgetsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/tidwall/gjson"
)

// Source is the remote catalog the engine browses. List fetches one page
// under a filter context; Search runs the upstream full-text search and
// returns every match in a single response (no pagination).
type Source interface {
	List(ctx context.Context, filters models.FilterState, page, limit int) (*ListResult, error)
	Search(ctx context.Context, query string) ([]models.Gadget, error)
}

// ListResult is one page of raw gadget records plus the server-reported
// total for the whole filtered set.
type ListResult struct {
	Gadgets []models.Gadget
	Total   int
}

// Client talks to the gadgets REST API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// List fetches one catalog page. Unset filter fields are never forwarded.
func (c *Client) List(ctx context.Context, filters models.FilterState, page, limit int) (*ListResult, error) {
	params := filters.QueryParams()
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/gadgets", params)
	if err != nil {
		return nil, err
	}

	if success := gjson.GetBytes(body, "success"); success.Exists() && !success.Bool() {
		return nil, fmt.Errorf("gadgets API reported failure: %s", gjson.GetBytes(body, "message").String())
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil, fmt.Errorf("gadgets API returned malformed list payload")
	}

	gadgets := decodeGadgets(data)

	total := len(gadgets)
	if t := gjson.GetBytes(body, "pagination.total"); t.Exists() {
		total = int(t.Int())
	} else if t := gjson.GetBytes(body, "count"); t.Exists() {
		total = int(t.Int())
	}

	return &ListResult{Gadgets: gadgets, Total: total}, nil
}

// Search runs the upstream full-text search.
func (c *Client) Search(ctx context.Context, query string) ([]models.Gadget, error) {
	params := url.Values{}
	params.Set("q", query)

	body, err := c.get(ctx, "/gadgets/search", params)
	if err != nil {
		return nil, err
	}

	if success := gjson.GetBytes(body, "success"); success.Exists() && !success.Bool() {
		return nil, fmt.Errorf("gadgets API reported search failure: %s", gjson.GetBytes(body, "message").String())
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil, fmt.Errorf("gadgets API returned malformed search payload")
	}

	return decodeGadgets(data), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gadgets API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gadgets API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gadgets API response: %w", err)
	}

	return body, nil
}
