package kernel_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		tests := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"colombo", 6.9271, 79.8612},
			{"equator prime meridian", 0, 0},
			{"north pole", 90, 0},
			{"south pole", -90, 0},
			{"date line west", 51.5, -180},
			{"date line east", 51.5, 180},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tt.lat, tt.lng)

				require.NoError(t, err)
				assert.InDelta(t, tt.lat, point.Lat(), 0)
				assert.InDelta(t, tt.lng, point.Lng(), 0)
				require.NoError(t, point.Validate())
			})
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		tests := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"latitude above max", 90.0001, 0},
			{"latitude below min", -90.0001, 0},
			{"longitude above max", 0, 180.0001},
			{"longitude below min", 0, -180.0001},
			{"both out of range", 120, 200},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tt.lat, tt.lng)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance from a point to itself is zero", func(t *testing.T) {
		points := [][2]float64{
			{6.9271, 79.8612},
			{0, 0},
			{-33.8688, 151.2093},
			{55.7558, 37.6173},
		}

		for _, coords := range points {
			t.Run(fmt.Sprintf("(%v,%v)", coords[0], coords[1]), func(t *testing.T) {
				point, err := kernel.NewGeoPoint(coords[0], coords[1])
				require.NoError(t, err)

				distance, err := point.DistanceKm(point)

				require.NoError(t, err)
				assert.InDelta(t, 0, distance, 1e-9)
			})
		}
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(6.9271, 79.8612)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(7.2906, 80.6337)
		require.NoError(t, err)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(0, 1)
		require.NoError(t, err)

		distance, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.2, distance, 1.0)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		var zero kernel.GeoPoint
		point, err := kernel.NewGeoPoint(6.9271, 79.8612)
		require.NoError(t, err)

		_, err = point.DistanceKm(zero)

		require.Error(t, err)
	})
}

func TestGeoPoint_IsWithinRadius(t *testing.T) {
	t.Run("boundary is inclusive", func(t *testing.T) {
		origin, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		other, err := kernel.NewGeoPoint(0, 1)
		require.NoError(t, err)

		distance, err := origin.DistanceKm(other)
		require.NoError(t, err)

		// Exactly the distance itself must match; the tiniest shortfall must not.
		within, err := origin.IsWithinRadius(other, distance)
		require.NoError(t, err)
		assert.True(t, within)

		within, err = origin.IsWithinRadius(other, distance-0.001)
		require.NoError(t, err)
		assert.False(t, within)
	})

	t.Run("nearby courier is within five kilometers", func(t *testing.T) {
		customer, err := kernel.NewGeoPoint(6.9271, 79.8612)
		require.NoError(t, err)
		courier, err := kernel.NewGeoPoint(6.9300, 79.8600)
		require.NoError(t, err)

		within, err := customer.IsWithinRadius(courier, 5)

		require.NoError(t, err)
		assert.True(t, within)
	})

	t.Run("distant courier is not within five kilometers", func(t *testing.T) {
		customer, err := kernel.NewGeoPoint(6.9271, 79.8612)
		require.NoError(t, err)
		courier, err := kernel.NewGeoPoint(7.2906, 80.6337)
		require.NoError(t, err)

		within, err := customer.IsWithinRadius(courier, 5)

		require.NoError(t, err)
		assert.False(t, within)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates compare equal", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(6.9271, 79.8612)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(6.9271, 79.8612)
		require.NoError(t, err)
		c, err := kernel.NewGeoPoint(7.2906, 80.6337)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(6.9271, 79.8612)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(6.927100,79.861200)", point.String())
}
