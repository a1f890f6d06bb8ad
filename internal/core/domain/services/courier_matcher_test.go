package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, lat, lng float64) *order.AssignedOrder {
	t.Helper()
	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), location)
	require.NoError(t, err)
	return assigned
}

func newTestCourier(t *testing.T, name string, lat, lng float64, available bool) *courier.Courier {
	t.Helper()
	location, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	c, err := courier.RestoreCourier(kernel.NewUUID(), name, "+94770000000", "", 0, location, available)
	require.NoError(t, err)
	return c
}

func TestCourierMatcher_Match(t *testing.T) {
	matcher := services.NewCourierMatcher()

	t.Run("matches only available couriers within the radius", func(t *testing.T) {
		// Customer in Colombo; courier A ~0.35 km away, courier B in Kandy ~94 km away.
		assigned := newTestOrder(t, 6.9271, 79.8612)
		courierA := newTestCourier(t, "A", 6.9300, 79.8600, true)
		courierB := newTestCourier(t, "B", 7.2906, 80.6337, true)

		matched, err := matcher.Match(assigned, []*courier.Courier{courierA, courierB})

		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.True(t, matched[0].IsEqual(courierA))
	})

	t.Run("skips unavailable couriers regardless of distance", func(t *testing.T) {
		assigned := newTestOrder(t, 6.9271, 79.8612)
		nearbyButOff := newTestCourier(t, "A", 6.9300, 79.8600, false)

		matched, err := matcher.Match(assigned, []*courier.Courier{nearbyButOff})

		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("empty pool matches nobody", func(t *testing.T) {
		assigned := newTestOrder(t, 6.9271, 79.8612)

		matched, err := matcher.Match(assigned, nil)

		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("preserves pool order", func(t *testing.T) {
		assigned := newTestOrder(t, 6.9271, 79.8612)
		first := newTestCourier(t, "first", 6.9280, 79.8610, true)
		second := newTestCourier(t, "second", 6.9260, 79.8615, true)

		matched, err := matcher.Match(assigned, []*courier.Courier{first, second})

		require.NoError(t, err)
		require.Len(t, matched, 2)
		assert.True(t, matched[0].IsEqual(first))
		assert.True(t, matched[1].IsEqual(second))
	})

	t.Run("unconstructed order fails", func(t *testing.T) {
		var assigned order.AssignedOrder

		_, err := matcher.Match(&assigned, nil)

		require.Error(t, err)
	})
}
