package registration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"registration-manager/core/geocode"
	"registration-manager/feature/registration/models"

	"github.com/twpayne/go-kml/v2"
	"go.uber.org/zap"
)

// Exporter writes a KML document of children's homes for planning the bus
// routes. Each child gets one placemark at the family home, located by
// geocoding the primary parent's address.
type Exporter struct {
	geocoder geocode.Geocoder
	logger   *zap.Logger

	// cache maps a cleansed address to its location. A nil entry records
	// an address the provider could not resolve, so misses are not
	// retried within the process lifetime.
	cache map[string]*geocode.Point
}

func NewExporter(g geocode.Geocoder, logger *zap.Logger) *Exporter {
	return &Exporter{geocoder: g, logger: logger, cache: make(map[string]*geocode.Point)}
}

// Export geocodes every registration's home and writes the placemarks to
// path. Families whose address cannot be resolved are logged and left out.
func (e *Exporter) Export(ctx context.Context, regs []*models.Registration, path string) error {
	children := []kml.Element{kml.Name("Children's homes")}
	var located, missed int

	for _, reg := range regs {
		primary := reg.Primary()
		point, err := e.locate(ctx, primary.Address)
		if err != nil {
			return fmt.Errorf("geocode %q: %w", primary.Address, err)
		}
		if point == nil {
			missed++
			e.logger.Warn("No geocoding match for a family home",
				zap.String("registration", reg.ID.Pretty()),
				zap.String("address", primary.Address),
			)
			continue
		}

		located++
		for _, child := range reg.Children {
			children = append(children, kml.Placemark(
				kml.Name(child.FullName()),
				kml.Description(fmt.Sprintf("%s. Parent: %s", child.Grade, primary.FullName())),
				kml.Point(kml.Coordinates(kml.Coordinate{Lon: point.Lng, Lat: point.Lat})),
			))
		}
	}

	var buf bytes.Buffer
	if err := kml.KML(kml.Document(children...)).WriteIndent(&buf, "", "  "); err != nil {
		return fmt.Errorf("render kml: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write kml: %w", err)
	}

	e.logger.Info("Wrote children's homes KML",
		zap.String("path", path),
		zap.Int("located", located),
		zap.Int("missed", missed),
	)
	return nil
}

func (e *Exporter) locate(ctx context.Context, address string) (*geocode.Point, error) {
	key := strings.ToLower(strings.Join(strings.Fields(address), " "))
	if point, cached := e.cache[key]; cached {
		return point, nil
	}

	point, err := e.geocoder.Locate(ctx, address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoMatch) {
			e.cache[key] = nil
			return nil, nil
		}
		return nil, err
	}

	e.cache[key] = &point
	return &point, nil
}
