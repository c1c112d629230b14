package delivery_test

import (
	"testing"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(kernel.NewUUID(), "u1", "12:00", []string{"pizza"}, 15)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create delivery in ordered status without driver", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := delivery.NewDelivery(id, "u1", "12:00", []string{"pizza", "cola"}, 19.5)

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "u1", d.UserID())
		assert.Nil(t, d.DriverID())
		assert.Equal(t, delivery.Ordered, d.Status())
		assert.Equal(t, []string{"pizza", "cola"}, d.Foods())
		assert.Equal(t, "12:00", d.Time())
		assert.InDelta(t, 19.5, d.TotalPrice(), 0.0001)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.UUID{}, "u1", "12:00", []string{"pizza"}, 15)
		require.Error(t, err)
	})

	t.Run("should reject missing required payload fields", func(t *testing.T) {
		id := kernel.NewUUID()

		testCases := []struct {
			name   string
			userID string
			time   string
			foods  []string
		}{
			{"missing userId", "", "12:00", []string{"pizza"}},
			{"missing time", "u1", "", []string{"pizza"}},
			{"missing foods", "u1", "12:00", nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := delivery.NewDelivery(id, tc.userID, tc.time, tc.foods, 15)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("should allow empty foods list", func(t *testing.T) {
		// Presence is required, content is opaque.
		_, err := delivery.NewDelivery(kernel.NewUUID(), "u1", "12:00", []string{}, 0)
		require.NoError(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore in any valid status", func(t *testing.T) {
		driverID := "d1"

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "u1", &driverID, delivery.InTransit, "12:00", []string{"pizza"}, 15)

		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, d.Status())
		require.NotNil(t, d.DriverID())
		assert.Equal(t, "d1", *d.DriverID())
		require.NoError(t, d.Validate())
	})

	t.Run("should restore delivered without driver", func(t *testing.T) {
		// Completion straight from ordered leaves no driver behind.
		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "u1", nil, delivery.Delivered, "12:00", []string{"pizza"}, 15)

		require.NoError(t, err)
		assert.Nil(t, d.DriverID())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "u1", nil, delivery.Unknown, "12:00", []string{"pizza"}, 15)
		require.Error(t, err)
	})

	t.Run("should reject driver on ordered delivery", func(t *testing.T) {
		driverID := "d1"

		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "u1", &driverID, delivery.Ordered, "12:00", []string{"pizza"}, 15)
		require.Error(t, err)
	})

	t.Run("should reject in_transit without driver", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), "u1", nil, delivery.InTransit, "12:00", []string{"pizza"}, 15)
		require.Error(t, err)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("should reject zero-value delivery", func(t *testing.T) {
		var d delivery.Delivery

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, err)
	})

	t.Run("should reject nil delivery", func(t *testing.T) {
		var d *delivery.Delivery
		require.Error(t, d.Validate())
	})
}

func TestDelivery_AssignDriver(t *testing.T) {
	t.Run("should assign driver and move to in_transit", func(t *testing.T) {
		d := validDelivery(t)

		err := d.AssignDriver("d1")

		require.NoError(t, err)
		assert.Equal(t, delivery.InTransit, d.Status())
		require.NotNil(t, d.DriverID())
		assert.Equal(t, "d1", *d.DriverID())
	})

	t.Run("should reject empty driver id", func(t *testing.T) {
		d := validDelivery(t)

		err := d.AssignDriver("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, delivery.Ordered, d.Status())
	})

	t.Run("should reject second assignment", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.AssignDriver("d1"))

		err := d.AssignDriver("d2")

		require.Error(t, err)
		assert.Equal(t, "d1", *d.DriverID(), "driverId must never change once set")
	})

	t.Run("should reject assignment on delivered record", func(t *testing.T) {
		d := validDelivery(t)
		_, err := d.Complete()
		require.NoError(t, err)

		err = d.AssignDriver("d1")

		require.Error(t, err)
		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_Complete(t *testing.T) {
	t.Run("should complete from in_transit", func(t *testing.T) {
		d := validDelivery(t)
		require.NoError(t, d.AssignDriver("d1"))

		changed, err := d.Complete()

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("should complete from ordered", func(t *testing.T) {
		d := validDelivery(t)

		changed, err := d.Complete()

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.Nil(t, d.DriverID())
	})

	t.Run("should be idempotent on delivered record", func(t *testing.T) {
		d := validDelivery(t)
		_, err := d.Complete()
		require.NoError(t, err)

		changed, err := d.Complete()

		require.NoError(t, err)
		assert.False(t, changed, "second completion must be a no-op")
		assert.Equal(t, delivery.Delivered, d.Status())
	})
}

func TestDelivery_IsEqual(t *testing.T) {
	t.Run("should compare by id", func(t *testing.T) {
		id := kernel.NewUUID()
		d1, err := delivery.NewDelivery(id, "u1", "12:00", []string{"pizza"}, 15)
		require.NoError(t, err)
		d2, err := delivery.NewDelivery(id, "u2", "13:00", []string{"sushi"}, 30)
		require.NoError(t, err)

		assert.True(t, d1.IsEqual(d2))
		assert.False(t, d1.IsEqual(validDelivery(t)))
		assert.False(t, d1.IsEqual(nil))
	})
}

func TestDelivery_StatusMonotonicity(t *testing.T) {
	t.Run("status never regresses over operation sequences", func(t *testing.T) {
		d := validDelivery(t)
		seen := []delivery.Status{d.Status()}

		require.NoError(t, d.AssignDriver("d1"))
		seen = append(seen, d.Status())

		_, err := d.Complete()
		require.NoError(t, err)
		seen = append(seen, d.Status())

		_, err = d.Complete()
		require.NoError(t, err)
		seen = append(seen, d.Status())

		for i := 1; i < len(seen); i++ {
			assert.GreaterOrEqual(t, int(seen[i]), int(seen[i-1]))
		}
	})
}
