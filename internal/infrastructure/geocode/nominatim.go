package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NominatimClient resolves addresses with an OpenStreetMap Nominatim server
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewNominatimClient creates a client from geocode configuration
func NewNominatimClient(cfg config.GeocodeConfig, logger *zap.Logger) *NominatimClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NominatimClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("nominatim"),
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Reverse returns the display name for loc
func (c *NominatimClient) Reverse(ctx context.Context, loc partner.Location) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(loc.Lng, 'f', -1, 64))

	var out reverseResponse
	if err := c.get(ctx, "/reverse", q, &out); err != nil {
		return "", err
	}
	if out.Error != "" || out.DisplayName == "" {
		return "", ErrNoResult
	}
	return out.DisplayName, nil
}

// Forward returns the best match for address
func (c *NominatimClient) Forward(ctx context.Context, address string) (partner.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return partner.Location{}, ErrNoResult
	}
	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", address)

	var out []searchResult
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return partner.Location{}, err
	}
	if len(out) == 0 {
		return partner.Location{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(out[0].Lat, 64)
	if err != nil {
		return partner.Location{}, fmt.Errorf("nominatim: bad lat %q: %w", out[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(out[0].Lon, 64)
	if err != nil {
		return partner.Location{}, fmt.Errorf("nominatim: bad lon %q: %w", out[0].Lon, err)
	}
	return partner.Location{Lat: lat, Lng: lng}, nil
}

func (c *NominatimClient) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("nominatim: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		// Nominatim's usage policy requires an identifying agent
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("nominatim request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("nominatim: decode: %w", err)
	}
	return nil
}

var _ Resolver = (*NominatimClient)(nil)
