package query_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/geocalc/geodesy"
	"github.com/UnknownOlympus/geocalc/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

var (
	berlin = []any{52.5075419, 13.4251364}
	paris  = map[string]any{"lat": 48.8588589, "lng": 2.3475569}
)

func TestNewOperation(t *testing.T) {
	t.Run("every operation type is registered", func(t *testing.T) {
		types := []query.OperationType{
			query.OperationDistanceBetween,
			query.OperationWithin,
			query.OperationBearing,
			query.OperationDestinationPoint,
			query.OperationIntersectionPoint,
			query.OperationBoundingBox,
			query.OperationBoundingBoxForPoints,
			query.OperationGeographicCenter,
			query.OperationMaxLatitude,
			query.OperationCrossTrackDistance,
			query.OperationCrossingParallels,
			query.OperationRadiansToDegrees,
			query.OperationDegreesToRadians,
			query.OperationInArea,
			query.OperationDMSToDecimal,
		}
		for _, typ := range types {
			op, err := query.NewOperation(typ)

			require.NoError(t, err, typ)
			assert.NotNil(t, op, typ)
		}
	})

	t.Run("unsupported operation type", func(t *testing.T) {
		op, err := query.NewOperation("rhumb_line")

		require.ErrorIs(t, err, query.ErrUnsupportedOperation)
		assert.Nil(t, op)
		assert.Contains(t, err.Error(), "unsupported operation: rhumb_line")
	})

	t.Run("empty operation type", func(t *testing.T) {
		_, err := query.NewOperation("")

		assert.ErrorIs(t, err, query.ErrUnsupportedOperation)
	})
}

func TestOperations(t *testing.T) {
	run := func(t *testing.T, q query.Query) (any, error) {
		t.Helper()
		op, err := query.NewOperation(q.Operation)
		require.NoError(t, err)
		return op(q)
	}

	t.Run("distance between mixed point shapes", func(t *testing.T) {
		v, err := run(t, query.Query{Operation: query.OperationDistanceBetween, Points: []any{berlin, paris}})

		require.NoError(t, err)
		assert.InDelta(t, 878327.4291149472, v, 1e-6)
	})

	t.Run("within", func(t *testing.T) {
		v, err := run(t, query.Query{Operation: query.OperationWithin, Points: []any{berlin, paris}, Radius: ptr(-1)})

		require.NoError(t, err)
		assert.Equal(t, false, v)
	})

	t.Run("destination by bearing", func(t *testing.T) {
		v, err := run(t, query.Query{
			Operation: query.OperationDestinationPoint,
			Points:    []any{berlin},
			Bearing:   ptr(-1.9739245359361486),
			Distance:  ptr(100000),
		})

		require.NoError(t, err)
		require.IsType(t, geodesy.Point{}, v)
		assert.InDelta(t, 52.147030316318904, v.(geodesy.Point).Lat, 1e-9)
		assert.InDelta(t, 12.076990111001148, v.(geodesy.Point).Lng, 1e-9)
	})

	t.Run("destination towards a point", func(t *testing.T) {
		v, err := run(t, query.Query{
			Operation: query.OperationDestinationPoint,
			Points:    []any{berlin, paris},
			Distance:  ptr(100000),
		})

		require.NoError(t, err)
		assert.InDelta(t, 52.147030316318904, v.(geodesy.Point).Lat, 1e-9)
	})

	t.Run("intersection without solution", func(t *testing.T) {
		_, err := run(t, query.Query{
			Operation: query.OperationIntersectionPoint,
			Points:    []any{berlin, berlin},
			Bearing:   ptr(0),
			Bearing2:  ptr(0),
		})

		assert.ErrorIs(t, err, geodesy.ErrNoIntersection)
	})

	t.Run("crossing parallels", func(t *testing.T) {
		v, err := run(t, query.Query{
			Operation: query.OperationCrossingParallels,
			Points:    []any{[]any{0.0, 0.0}, []any{60.0, 30.0}},
			Latitude:  ptr(30),
		})

		require.NoError(t, err)
		require.IsType(t, query.Longitudes{}, v)
		assert.InDelta(t, 9.59406822686046, v.(query.Longitudes).Lng1, 1e-9)
		assert.InDelta(t, 170.40593177313954, v.(query.Longitudes).Lng2, 1e-9)
	})

	t.Run("geographic center skips unusable points", func(t *testing.T) {
		v, err := run(t, query.Query{
			Operation: query.OperationGeographicCenter,
			Points:    []any{map[string]any{"lat": 1.0}, "nowhere", paris},
		})

		require.NoError(t, err)
		assert.InDelta(t, 48.8588589, v.(geodesy.Point).Lat, 1e-9)
	})

	t.Run("conversions", func(t *testing.T) {
		v, err := run(t, query.Query{Operation: query.OperationDegreesToRadians, Degrees: ptr(180)})
		require.NoError(t, err)
		assert.InDelta(t, 3.141592653589793, v, 1e-15)

		v, err = run(t, query.Query{Operation: query.OperationRadiansToDegrees, Radians: ptr(3.141592653589793)})
		require.NoError(t, err)
		assert.InDelta(t, 180.0, v, 1e-12)
	})

	t.Run("in area", func(t *testing.T) {
		towardsParis := geodesy.Bearing(geodesy.Point{Lat: 52.5075419, Lng: 13.4251364}, geodesy.Point{Lat: 48.8588589, Lng: 2.3475569})

		tests := []struct {
			name string
			area query.Area
			want bool
		}{
			{"circle", query.Area{Kind: query.AreaCircle, Radius: ptr(900000)}, true},
			{"small circle", query.Area{Kind: query.AreaCircle, Radius: ptr(800000)}, false},
			{
				"ellipse along the path",
				query.Area{Kind: query.AreaEllipse, LongSemiAxis: ptr(900000), ShortSemiAxis: ptr(1000), Azimuth: ptr(towardsParis)},
				true,
			},
			{
				"ellipse across the path",
				query.Area{Kind: query.AreaEllipse, LongSemiAxis: ptr(900000), ShortSemiAxis: ptr(1000), Azimuth: ptr(towardsParis + math.Pi/2)},
				false,
			},
			{"short rectangle", query.Area{Kind: query.AreaRectangle, LongSemiAxis: ptr(800000), ShortSemiAxis: ptr(800000)}, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				area := tt.area
				v, err := run(t, query.Query{Operation: query.OperationInArea, Points: []any{berlin, paris}, Area: &area})

				require.NoError(t, err)
				assert.Equal(t, tt.want, v)
			})
		}

		_, err := run(t, query.Query{
			Operation: query.OperationInArea,
			Points:    []any{berlin, paris},
			Area:      &query.Area{Kind: "triangle"},
		})
		require.ErrorIs(t, err, query.ErrUnsupportedArea)

		_, err = run(t, query.Query{
			Operation: query.OperationInArea,
			Points:    []any{berlin, paris},
			Area:      &query.Area{Kind: query.AreaEllipse, LongSemiAxis: ptr(1)},
		})
		require.ErrorIs(t, err, query.ErrMissingArgument)
		assert.Contains(t, err.Error(), "area.short_semi_axis")
	})

	t.Run("dms to decimal", func(t *testing.T) {
		v, err := run(t, query.Query{Operation: query.OperationDMSToDecimal, DMS: `52°30'27.15"N`})
		require.NoError(t, err)
		assert.InDelta(t, 52.50754166666667, v, 1e-9)

		v, err = run(t, query.Query{Operation: query.OperationDMSToDecimal, DMS: "2 21 W"})
		require.NoError(t, err)
		assert.InDelta(t, -2.35, v, 1e-12)

		_, err = run(t, query.Query{Operation: query.OperationDMSToDecimal, DMS: "91 0 0 N"})
		require.ErrorIs(t, err, geodesy.ErrInvalidDMS)
	})

	t.Run("missing arguments", func(t *testing.T) {
		queries := []query.Query{
			{Operation: query.OperationWithin, Points: []any{berlin, paris}},
			{Operation: query.OperationDestinationPoint, Points: []any{berlin}, Bearing: ptr(0)},
			{Operation: query.OperationIntersectionPoint, Points: []any{berlin, paris}, Bearing: ptr(0)},
			{Operation: query.OperationBoundingBox, Points: []any{berlin}},
			{Operation: query.OperationMaxLatitude, Points: []any{berlin}},
			{Operation: query.OperationCrossingParallels, Points: []any{berlin, paris}},
			{Operation: query.OperationRadiansToDegrees},
			{Operation: query.OperationDegreesToRadians},
			{Operation: query.OperationInArea, Points: []any{berlin, paris}},
			{Operation: query.OperationDMSToDecimal},
		}
		for _, q := range queries {
			_, err := run(t, q)
			assert.ErrorIs(t, err, query.ErrMissingArgument, q.Operation)
		}
	})

	t.Run("point count", func(t *testing.T) {
		_, err := run(t, query.Query{Operation: query.OperationBearing, Points: []any{berlin}})
		require.ErrorIs(t, err, query.ErrMissingPoints)

		_, err = run(t, query.Query{Operation: query.OperationCrossTrackDistance, Points: []any{berlin, paris, berlin, paris}})
		require.ErrorIs(t, err, query.ErrTooManyPoints)
	})

	t.Run("malformed point", func(t *testing.T) {
		_, err := run(t, query.Query{Operation: query.OperationBearing, Points: []any{berlin, map[string]any{"lng": 1.0}}})

		require.ErrorIs(t, err, geodesy.ErrMissingLatitude)
		assert.Contains(t, err.Error(), "point 1")
	})
}
