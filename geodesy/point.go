package geodesy

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Point is a geographical position in decimal degrees.
// Values are not range-checked.
type Point struct {
	Lat float64 `json:"lat"` // Latitude of the geographical point.
	Lng float64 `json:"lng"` // Longitude of the geographical point.
}

// Locator is implemented by every point representation the package accepts.
// Location returns the canonical point or an error when the representation
// does not carry both coordinates.
type Locator interface {
	Location() (Point, error)
}

// Pair is an ordered [latitude, longitude] pair.
type Pair [2]float64

// Record is a keyed point. Latitude is read from "lat" or "latitude" and
// longitude from "lon", "lng" or "longitude"; the first key present wins.
type Record map[string]float64

// Common errors for point extraction.
var (
	ErrMissingLatitude  = errors.New("point has no latitude")
	ErrMissingLongitude = errors.New("point has no longitude")
	ErrUnsupportedPoint = errors.New("unsupported point representation")
)

var (
	latitudeKeys  = []string{"lat", "latitude"}
	longitudeKeys = []string{"lon", "lng", "longitude"}
)

// Location implements Locator.
func (p Point) Location() (Point, error) {
	return p, nil
}

// Location implements Locator.
func (p Pair) Location() (Point, error) {
	return Point{Lat: p[0], Lng: p[1]}, nil
}

// Location implements Locator.
func (r Record) Location() (Point, error) {
	lat, ok := lookup(r, latitudeKeys)
	if !ok {
		return Point{}, ErrMissingLatitude
	}

	lng, ok := lookup(r, longitudeKeys)
	if !ok {
		return Point{}, ErrMissingLongitude
	}

	return Point{Lat: lat, Lng: lng}, nil
}

func lookup[V any](m map[string]V, keys []string) (V, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			return v, true
		}
	}

	var zero V
	return zero, false
}

// Locate normalizes v into a Point. Besides any Locator it accepts the shapes
// produced by encoding/json when decoding into an interface value: a two
// element array of numbers and an object keyed like Record.
func Locate(v any) (Point, error) {
	const pairLength = 2

	switch val := v.(type) {
	case Locator:
		return val.Location()
	case []float64:
		if len(val) != pairLength {
			return Point{}, fmt.Errorf("%w: expected %d coordinates, got %d", ErrUnsupportedPoint, pairLength, len(val))
		}
		return Point{Lat: val[0], Lng: val[1]}, nil
	case []any:
		if len(val) != pairLength {
			return Point{}, fmt.Errorf("%w: expected %d coordinates, got %d", ErrUnsupportedPoint, pairLength, len(val))
		}
		lat, err := number(val[0])
		if err != nil {
			return Point{}, fmt.Errorf("latitude: %w", err)
		}
		lng, err := number(val[1])
		if err != nil {
			return Point{}, fmt.Errorf("longitude: %w", err)
		}
		return Point{Lat: lat, Lng: lng}, nil
	case map[string]float64:
		return Record(val).Location()
	case map[string]any:
		rawLat, ok := lookup(val, latitudeKeys)
		if !ok {
			return Point{}, ErrMissingLatitude
		}
		rawLng, ok := lookup(val, longitudeKeys)
		if !ok {
			return Point{}, ErrMissingLongitude
		}
		lat, err := number(rawLat)
		if err != nil {
			return Point{}, fmt.Errorf("latitude: %w", err)
		}
		lng, err := number(rawLng)
		if err != nil {
			return Point{}, fmt.Errorf("longitude: %w", err)
		}
		return Point{Lat: lat, Lng: lng}, nil
	default:
		return Point{}, fmt.Errorf("%w: %T", ErrUnsupportedPoint, v)
	}
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnsupportedPoint, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: coordinate of type %T", ErrUnsupportedPoint, v)
	}
}
