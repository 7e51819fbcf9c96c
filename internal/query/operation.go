package query

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/geocalc/geodesy"
)

// OperationType names a geodesic operation.
type OperationType string

const (
	OperationDistanceBetween      OperationType = "distance_between"
	OperationWithin               OperationType = "within"
	OperationBearing              OperationType = "bearing"
	OperationDestinationPoint     OperationType = "destination_point"
	OperationIntersectionPoint    OperationType = "intersection_point"
	OperationBoundingBox          OperationType = "bounding_box"
	OperationBoundingBoxForPoints OperationType = "bounding_box_for_points"
	OperationGeographicCenter     OperationType = "geographic_center"
	OperationMaxLatitude          OperationType = "max_latitude"
	OperationCrossTrackDistance   OperationType = "cross_track_distance_to"
	OperationCrossingParallels    OperationType = "crossing_parallels"
	OperationRadiansToDegrees     OperationType = "radians_to_degrees"
	OperationDegreesToRadians     OperationType = "degrees_to_radians"
	OperationInArea               OperationType = "in_area"
	OperationDMSToDecimal         OperationType = "dms_to_decimal"
)

// ErrUnsupportedOperation is returned by NewOperation for unknown operation types.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Operation evaluates a query and returns its value.
type Operation func(q Query) (any, error)

// Longitudes is the pair of longitudes returned by crossing_parallels.
type Longitudes struct {
	Lng1 float64 `json:"lng1"`
	Lng2 float64 `json:"lng2"`
}

// NewOperation returns the operation registered for typ.
func NewOperation(typ OperationType) (Operation, error) {
	switch typ {
	case OperationDistanceBetween:
		return distanceBetween, nil
	case OperationWithin:
		return within, nil
	case OperationBearing:
		return bearing, nil
	case OperationDestinationPoint:
		return destinationPoint, nil
	case OperationIntersectionPoint:
		return intersectionPoint, nil
	case OperationBoundingBox:
		return boundingBox, nil
	case OperationBoundingBoxForPoints:
		return boundingBoxForPoints, nil
	case OperationGeographicCenter:
		return geographicCenter, nil
	case OperationMaxLatitude:
		return maxLatitude, nil
	case OperationCrossTrackDistance:
		return crossTrackDistance, nil
	case OperationCrossingParallels:
		return crossingParallels, nil
	case OperationRadiansToDegrees:
		return radiansToDegrees, nil
	case OperationDegreesToRadians:
		return degreesToRadians, nil
	case OperationInArea:
		return inArea, nil
	case OperationDMSToDecimal:
		return dmsToDecimal, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, typ)
	}
}

func distanceBetween(q Query) (any, error) {
	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	return geodesy.DistanceBetween(points[0], points[1]), nil
}

func within(q Query) (any, error) {
	radius, err := argument("radius", q.Radius)
	if err != nil {
		return nil, err
	}

	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	return geodesy.Within(radius, points[0], points[1]), nil
}

func bearing(q Query) (any, error) {
	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	return geodesy.Bearing(points[0], points[1]), nil
}

// destinationPoint takes either a bearing and one point or two points, the
// second giving the direction of travel.
func destinationPoint(q Query) (any, error) {
	distance, err := argument("distance", q.Distance)
	if err != nil {
		return nil, err
	}

	if q.Bearing != nil {
		points, err := q.points(1)
		if err != nil {
			return nil, err
		}
		return geodesy.DestinationPoint(points[0], *q.Bearing, distance)
	}

	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	return geodesy.DestinationPointTowards(points[0], points[1], distance)
}

func intersectionPoint(q Query) (any, error) {
	bearing1, err := argument("bearing", q.Bearing)
	if err != nil {
		return nil, err
	}

	bearing2, err := argument("bearing2", q.Bearing2)
	if err != nil {
		return nil, err
	}

	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	return geodesy.IntersectionPoint(points[0], bearing1, points[1], bearing2)
}

func boundingBox(q Query) (any, error) {
	radius, err := argument("radius", q.Radius)
	if err != nil {
		return nil, err
	}

	points, err := q.points(1)
	if err != nil {
		return nil, err
	}

	return geodesy.BoundingBox(points[0], radius), nil
}

func boundingBoxForPoints(q Query) (any, error) {
	return geodesy.BoundingBoxForPoints(q.locators())
}

func geographicCenter(q Query) (any, error) {
	return geodesy.GeographicCenter(q.locators())
}

func maxLatitude(q Query) (any, error) {
	b, err := argument("bearing", q.Bearing)
	if err != nil {
		return nil, err
	}

	points, err := q.points(1)
	if err != nil {
		return nil, err
	}

	return geodesy.MaxLatitude(points[0], b), nil
}

func crossTrackDistance(q Query) (any, error) {
	points, err := q.points(3)
	if err != nil {
		return nil, err
	}

	return geodesy.CrossTrackDistanceTo(points[0], points[1], points[2]), nil
}

func crossingParallels(q Query) (any, error) {
	latitude, err := argument("latitude", q.Latitude)
	if err != nil {
		return nil, err
	}

	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	lng1, lng2, err := geodesy.CrossingParallels(points[0], points[1], latitude)
	if err != nil {
		return nil, err
	}

	return Longitudes{Lng1: lng1, Lng2: lng2}, nil
}

func radiansToDegrees(q Query) (any, error) {
	radians, err := argument("radians", q.Radians)
	if err != nil {
		return nil, err
	}

	return geodesy.RadiansToDegrees(radians), nil
}

func degreesToRadians(q Query) (any, error) {
	degrees, err := argument("degrees", q.Degrees)
	if err != nil {
		return nil, err
	}

	return geodesy.DegreesToRadians(degrees), nil
}

// inArea reports whether the second point lies in the area centered on the first.
func inArea(q Query) (any, error) {
	if q.Area == nil {
		return nil, fmt.Errorf("%w: area", ErrMissingArgument)
	}

	points, err := q.points(2)
	if err != nil {
		return nil, err
	}

	shape, err := q.Area.shape(points[0])
	if err != nil {
		return nil, err
	}

	return geodesy.InArea(shape, points[1]), nil
}

func dmsToDecimal(q Query) (any, error) {
	if q.DMS == "" {
		return nil, fmt.Errorf("%w: dms", ErrMissingArgument)
	}

	dms, err := geodesy.ParseDMS(q.DMS)
	if err != nil {
		return nil, err
	}

	return dms.ToDecimal()
}
