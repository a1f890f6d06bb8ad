package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(6.9271, 79.8612)
	require.NoError(t, err)
	return location
}

func TestNewAssignedOrder(t *testing.T) {
	t.Run("should create pending order without courier", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		location := testLocation(t)

		assigned, err := order.NewAssignedOrder(id, orderID, location)

		require.NoError(t, err)
		assert.True(t, assigned.ID().IsEqual(id))
		assert.True(t, assigned.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Pending, assigned.Status())
		assert.Nil(t, assigned.Courier())
		require.NoError(t, assigned.Validate())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		var zeroID kernel.UUID
		var zeroLocation kernel.GeoPoint

		_, err := order.NewAssignedOrder(zeroID, kernel.NewUUID(), testLocation(t))
		require.Error(t, err)

		_, err = order.NewAssignedOrder(kernel.NewUUID(), zeroID, testLocation(t))
		require.Error(t, err)

		_, err = order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), zeroLocation)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var assigned order.AssignedOrder

		err := assigned.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrAssignedOrderIsNotConstructed, err)
	})
}

func TestRestoreAssignedOrder(t *testing.T) {
	t.Run("restores accepted order with courier", func(t *testing.T) {
		courierID := kernel.NewUUID()

		assigned, err := order.RestoreAssignedOrder(
			kernel.NewUUID(), kernel.NewUUID(), testLocation(t), order.Accepted, &courierID)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, assigned.Status())
		require.NotNil(t, assigned.Courier())
		assert.True(t, assigned.Courier().IsEqual(courierID))
	})

	t.Run("rejects pending order with courier", func(t *testing.T) {
		courierID := kernel.NewUUID()

		_, err := order.RestoreAssignedOrder(
			kernel.NewUUID(), kernel.NewUUID(), testLocation(t), order.Pending, &courierID)

		require.Error(t, err)
	})

	t.Run("rejects accepted order without courier", func(t *testing.T) {
		_, err := order.RestoreAssignedOrder(
			kernel.NewUUID(), kernel.NewUUID(), testLocation(t), order.Accepted, nil)

		require.Error(t, err)
	})
}

func TestAssignedOrder_Accept(t *testing.T) {
	t.Run("pending order is accepted by first courier", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()

		err = assigned.Accept(courierID)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, assigned.Status())
		require.NotNil(t, assigned.Courier())
		assert.True(t, assigned.Courier().IsEqual(courierID))
	})

	t.Run("second accept conflicts and courier stays unchanged", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, assigned.Accept(first))
		err = assigned.Accept(second)

		require.ErrorIs(t, err, order.ErrOrderAlreadyTaken)
		assert.True(t, assigned.Courier().IsEqual(first))
	})

	t.Run("invalid courier id is rejected", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		var zeroID kernel.UUID

		err = assigned.Accept(zeroID)

		require.Error(t, err)
		assert.Equal(t, order.Pending, assigned.Status())
	})
}

func TestAssignedOrder_MarkPickedUp(t *testing.T) {
	t.Run("owning courier picks up accepted order", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, assigned.Accept(courierID))

		err = assigned.MarkPickedUp(courierID)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, assigned.Status())
	})

	t.Run("other courier is forbidden", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		require.NoError(t, assigned.Accept(kernel.NewUUID()))

		err = assigned.MarkPickedUp(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotOrderCourier)
		assert.Equal(t, order.Accepted, assigned.Status())
	})

	t.Run("pending order cannot be picked up", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)

		err = assigned.MarkPickedUp(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotOrderCourier)
	})

	t.Run("pickup twice is an invalid transition", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, assigned.Accept(courierID))
		require.NoError(t, assigned.MarkPickedUp(courierID))

		err = assigned.MarkPickedUp(courierID)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestAssignedOrder_Complete(t *testing.T) {
	t.Run("completes after pickup", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, assigned.Accept(courierID))
		require.NoError(t, assigned.MarkPickedUp(courierID))

		err = assigned.Complete(courierID)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, assigned.Status())
	})

	t.Run("completes directly from accepted", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, assigned.Accept(courierID))

		err = assigned.Complete(courierID)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, assigned.Status())
	})

	t.Run("other courier is forbidden", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		require.NoError(t, assigned.Accept(kernel.NewUUID()))

		err = assigned.Complete(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrNotOrderCourier)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		assigned, err := order.NewAssignedOrder(kernel.NewUUID(), kernel.NewUUID(), testLocation(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		require.NoError(t, assigned.Accept(courierID))
		require.NoError(t, assigned.Complete(courierID))

		err = assigned.Complete(courierID)

		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}
