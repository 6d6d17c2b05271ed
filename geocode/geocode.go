// Package geocode wraps a Nominatim-compatible forward geocoding service.
// It turns free-text place queries into coordinates plus structured address
// parts, and paces outbound requests to respect the provider's usage policy.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// ErrNotFound is returned when the service has no match for a query.
var ErrNotFound = errors.New("geocode: no match for query")

// Location is a resolved place.
type Location struct {
	Lat         float64
	Lon         float64
	DisplayName string            // full formatted address
	Address     map[string]string // raw address parts keyed by OSM class (city, town, hotel, ...)
}

// Name resolves a display name for the place: the "hotel" address part,
// then "tourism", then the first comma-delimited segment of the full address.
func (l *Location) Name() string {
	if v := firstAddressPart(l.Address, "hotel", "tourism"); v != "" {
		return v
	}
	if i := strings.Index(l.DisplayName, ","); i >= 0 {
		return strings.TrimSpace(l.DisplayName[:i])
	}
	return l.DisplayName
}

// City resolves the city-level address part, falling back through
// town, village, and county. Returns "" when nothing matches; callers
// choose their own default.
func (l *Location) City() string {
	return firstAddressPart(l.Address, "city", "town", "village", "county")
}

// firstAddressPart returns the first non-empty value among keys, in order.
func firstAddressPart(addr map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := addr[key]; v != "" {
			return v
		}
	}
	return ""
}

// Config holds geocoding client configuration.
type Config struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration // minimum delay between requests; 0 disables pacing
	MaxRetries  int
}

// Client resolves free-text queries against a Nominatim /search endpoint.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
	limiter *rate.Limiter
}

type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.ua)
	return t.base.RoundTrip(req)
}

// New creates a geocoding client.
func New(cfg Config) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.MaxRetries
	client.Logger = nil
	client.RetryWaitMin = time.Second
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.Timeout
	}

	// Nominatim requires an identifying User-Agent on every request.
	client.HTTPClient.Transport = &userAgentTransport{
		base: http.DefaultTransport,
		ua:   cfg.UserAgent,
	}

	var limiter *rate.Limiter
	if cfg.MinInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.MinInterval), 1)
	}

	return &Client{
		http:    client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: limiter,
	}
}

// searchResult mirrors one entry of the Nominatim JSON response.
type searchResult struct {
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

// Resolve looks up a free-text query and returns the best match.
// Returns ErrNotFound when the service has no result; any transport or
// decoding failure is returned as an error for the caller to degrade on.
func (c *Client) Resolve(ctx context.Context, query string) (*Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("geocode: empty query")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("geocode: waiting for rate limit: %w", err)
		}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: building request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", res.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode: decoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	best := results[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: parsing latitude %q: %w", best.Lat, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: parsing longitude %q: %w", best.Lon, err)
	}

	addr := best.Address
	if addr == nil {
		addr = map[string]string{}
	}

	return &Location{
		Lat:         lat,
		Lon:         lon,
		DisplayName: best.DisplayName,
		Address:     addr,
	}, nil
}
