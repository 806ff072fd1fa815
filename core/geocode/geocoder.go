package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// ErrNoMatch is returned when an address resolves to no location.
var ErrNoMatch = errors.New("no geocoding match")

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Geocoder defines the interface for resolving postal addresses to coordinates.
type Geocoder interface {
	// Locate resolves an address. It returns ErrNoMatch when the provider
	// finds no candidate location.
	Locate(ctx context.Context, address string) (Point, error)
}

// NewGeocoder creates a new Google Maps geocoder based on the configuration.
func NewGeocoder(cfg Config) (Geocoder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("geocoding api key is required")
	}

	client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &googleGeocoder{client: client}, nil
}

type googleGeocoder struct {
	client *maps.Client
}

func (g *googleGeocoder) Locate(ctx context.Context, address string) (Point, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Point{}, ErrNoMatch
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return Point{}, fmt.Errorf("failed to geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return Point{}, ErrNoMatch
	}

	loc := results[0].Geometry.Location
	return Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// Noop is a Geocoder that never resolves anything. It stands in for the real
// provider when geocoding is disabled.
type Noop struct{}

func (Noop) Locate(ctx context.Context, address string) (Point, error) {
	return Point{}, ErrNoMatch
}
