// Package geo implements the Geocoder port against a Nominatim-compatible
// HTTP API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// HTTPGeocoder resolves addresses through a Nominatim-compatible search API.
// Requests ride a short client timeout so a slow provider cannot stall order
// assignment.
type HTTPGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGeocoder creates a geocoder client for the given provider base URL,
// e.g. "https://nominatim.openstreetmap.org".
func NewHTTPGeocoder(baseURL string) (*HTTPGeocoder, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &HTTPGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Forward resolves a free-text address to coordinates. An empty provider
// result maps to ports.ErrAddressNotResolved.
func (g *HTTPGeocoder) Forward(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	var results []searchResult
	if err := g.getJSON(ctx, "/search", query, &results); err != nil {
		return kernel.GeoPoint{}, err
	}
	if len(results) == 0 {
		return kernel.GeoPoint{}, fmt.Errorf("forward geocode %q: %w", address, ports.ErrAddressNotResolved)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return kernel.NewGeoPoint(lat, lng)
}

// Reverse resolves coordinates to a human-readable address.
func (g *HTTPGeocoder) Reverse(ctx context.Context, point kernel.GeoPoint) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(point.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(point.Lng(), 'f', -1, 64))
	query.Set("format", "json")

	var result reverseResult
	if err := g.getJSON(ctx, "/reverse", query, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", fmt.Errorf("reverse geocode (%f, %f): %w", point.Lat(), point.Lng(), ports.ErrAddressNotResolved)
	}

	return result.DisplayName, nil
}

func (g *HTTPGeocoder) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	requestURL := g.baseURL + path + "?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("build geocoder request: %w", err)
	}

	response, err := g.client.Do(request)
	if err != nil {
		return fmt.Errorf("call geocoder: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode geocoder response: %w", err)
	}
	return nil
}
