package geodesy_test

import (
	"testing"

	"github.com/UnknownOlympus/geocalc/geodesy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossingParallels(t *testing.T) {
	t.Run("unreachable latitude", func(t *testing.T) {
		_, _, err := geodesy.CrossingParallels(geodesy.Point{Lat: 0, Lng: 0}, geodesy.Point{Lat: -180, Lng: -90}, 45.0)

		require.ErrorIs(t, err, geodesy.ErrNoCrossing)
		assert.Equal(t, "Not found", err.Error())
	})

	t.Run("latitude above the vertex", func(t *testing.T) {
		a := geodesy.Point{Lat: 0, Lng: 0}
		b := geodesy.Point{Lat: 60, Lng: 30}
		top := geodesy.MaxLatitude(a, geodesy.Bearing(a, b))

		_, _, err := geodesy.CrossingParallels(a, b, top+1)

		assert.ErrorIs(t, err, geodesy.ErrNoCrossing)
	})

	t.Run("coincident points", func(t *testing.T) {
		_, _, err := geodesy.CrossingParallels(berlin, berlin, 10)

		assert.ErrorIs(t, err, geodesy.ErrNoCrossing)
	})

	t.Run("northern crossing", func(t *testing.T) {
		lng1, lng2, err := geodesy.CrossingParallels(geodesy.Point{Lat: 0, Lng: 0}, geodesy.Point{Lat: 60, Lng: 30}, 30)

		require.NoError(t, err)
		assert.InDelta(t, 9.59406822686046, lng1, 1e-9)
		assert.InDelta(t, 170.40593177313954, lng2, 1e-9)
	})

	t.Run("southern crossing is not wrapped", func(t *testing.T) {
		lng1, lng2, err := geodesy.CrossingParallels(geodesy.Point{Lat: 0, Lng: 0}, geodesy.Point{Lat: 60, Lng: 30}, -30)

		require.NoError(t, err)
		assert.InDelta(t, -9.59406822686046, lng1, 1e-9)
		assert.InDelta(t, 189.59406822686046, lng2, 1e-9)
	})

	t.Run("crossings lie on the great circle", func(t *testing.T) {
		a := geodesy.Point{Lat: 10, Lng: -20}
		b := geodesy.Point{Lat: 40, Lng: 50}

		lng1, lng2, err := geodesy.CrossingParallels(a, b, 30)
		require.NoError(t, err)

		for _, lng := range []float64{lng1, lng2} {
			xt := geodesy.CrossTrackDistanceTo(geodesy.Point{Lat: 30, Lng: lng}, a, b)
			assert.InDelta(t, 0.0, xt, 1e-3)
		}
	})
}
