package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/UnknownOlympus/geocalc/geodesy"
)

// Common errors for query decoding and argument validation.
var (
	ErrEmptyQuery      = errors.New("query is empty")
	ErrMissingPoints   = errors.New("query has too few points")
	ErrTooManyPoints   = errors.New("query has too many points")
	ErrMissingArgument = errors.New("query is missing an argument")
	ErrNonFiniteResult = errors.New("result is not a finite number")
	ErrUnsupportedArea = errors.New("unsupported area kind")
)

// Area kinds accepted by in_area.
const (
	AreaCircle    = "circle"
	AreaRectangle = "rectangle"
	AreaEllipse   = "ellipse"
)

// Query is a single geodesic computation request.
//
// Points accept every representation geodesy.Locate understands: [lat, lng]
// arrays and objects keyed by lat/latitude and lon/lng/longitude.
type Query struct {
	Operation OperationType `json:"operation"`
	Points    []any         `json:"points,omitempty"`
	Bearing   *float64      `json:"bearing,omitempty"`  // radians
	Bearing2  *float64      `json:"bearing2,omitempty"` // radians, second path of intersection_point
	Distance  *float64      `json:"distance,omitempty"` // meters
	Radius    *float64      `json:"radius,omitempty"`   // meters
	Latitude  *float64      `json:"latitude,omitempty"` // degrees
	Degrees   *float64      `json:"degrees,omitempty"`
	Radians   *float64      `json:"radians,omitempty"`
	Area      *Area         `json:"area,omitempty"`
	DMS       string        `json:"dms,omitempty"` // e.g. 52°30'27.15"N
}

// Area describes the shape tested by in_area. The first query point is its
// center. Lengths are in meters and Azimuth, the orientation of the long axis,
// in radians.
type Area struct {
	Kind          string   `json:"kind"`
	Radius        *float64 `json:"radius,omitempty"`
	LongSemiAxis  *float64 `json:"long_semi_axis,omitempty"`
	ShortSemiAxis *float64 `json:"short_semi_axis,omitempty"`
	Azimuth       *float64 `json:"azimuth,omitempty"`
}

// Decode reads one JSON query from r. Unknown fields are rejected.
func Decode(r io.Reader) (Query, error) {
	var q Query

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&q); err != nil {
		if errors.Is(err, io.EOF) {
			return Query{}, ErrEmptyQuery
		}
		return Query{}, fmt.Errorf("failed to decode query: %w", err)
	}

	if q.Operation == "" {
		return Query{}, fmt.Errorf("%w: operation is required", ErrMissingArgument)
	}

	return q, nil
}

// points locates exactly n points.
func (q Query) points(n int) ([]geodesy.Point, error) {
	if len(q.Points) < n {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrMissingPoints, n, len(q.Points))
	}
	if len(q.Points) > n {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrTooManyPoints, n, len(q.Points))
	}

	points := make([]geodesy.Point, 0, n)
	for i, raw := range q.Points {
		p, err := geodesy.Locate(raw)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}

	return points, nil
}

// locators wraps every point lazily so that operations over point sets can
// skip the ones that cannot be located.
func (q Query) locators() []geodesy.Locator {
	locators := make([]geodesy.Locator, 0, len(q.Points))
	for _, raw := range q.Points {
		locators = append(locators, rawPoint{value: raw})
	}

	return locators
}

type rawPoint struct {
	value any
}

func (r rawPoint) Location() (geodesy.Point, error) {
	return geodesy.Locate(r.value)
}

// shape builds the geodesy shape centered on center.
func (a Area) shape(center geodesy.Point) (geodesy.Shape, error) {
	switch a.Kind {
	case AreaCircle:
		radius, err := argument("area.radius", a.Radius)
		if err != nil {
			return nil, err
		}
		return geodesy.Circle{Center: center, Radius: radius}, nil
	case AreaRectangle, AreaEllipse:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedArea, a.Kind)
	}

	long, err := argument("area.long_semi_axis", a.LongSemiAxis)
	if err != nil {
		return nil, err
	}
	short, err := argument("area.short_semi_axis", a.ShortSemiAxis)
	if err != nil {
		return nil, err
	}
	var azimuth float64
	if a.Azimuth != nil {
		azimuth = *a.Azimuth
	}

	if a.Kind == AreaRectangle {
		return geodesy.Rectangle{Center: center, LongSemiAxis: long, ShortSemiAxis: short, Azimuth: azimuth}, nil
	}

	return geodesy.Ellipse{Center: center, LongSemiAxis: long, ShortSemiAxis: short, Azimuth: azimuth}, nil
}

func argument(name string, v *float64) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}

	return *v, nil
}
