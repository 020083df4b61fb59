package shipment_test

import (
	"testing"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusHistoryEntry(t *testing.T) {
	validID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	actingUser := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should create valid entry", func(t *testing.T) {
		location := "Dubai hub"

		e, err := shipment.NewStatusHistoryEntry(
			validID, shipmentID, shipment.StatusInTransit, &location, "Departed facility", actingUser, now)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(validID))
		assert.True(t, e.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, shipment.StatusInTransit, e.Status())
		require.NotNil(t, e.Location())
		assert.Equal(t, "Dubai hub", *e.Location())
		assert.Equal(t, "Departed facility", e.Notes())
		require.NotNil(t, e.CreatedBy())
		assert.True(t, e.CreatedBy().IsEqual(actingUser))
		assert.Equal(t, now, e.CreatedAt())
	})

	t.Run("should default empty notes", func(t *testing.T) {
		e, err := shipment.NewStatusHistoryEntry(
			validID, shipmentID, shipment.StatusOnHold, nil, "", actingUser, now)

		require.NoError(t, err)
		assert.Equal(t, shipment.NoteStatusUpdated, e.Notes())
		assert.Nil(t, e.Location())
	})

	t.Run("should fail with unknown status", func(t *testing.T) {
		e, err := shipment.NewStatusHistoryEntry(
			validID, shipmentID, "misplaced", nil, "", actingUser, now)

		require.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("should fail with invalid shipment id", func(t *testing.T) {
		e, err := shipment.NewStatusHistoryEntry(
			validID, kernel.UUID{}, shipment.StatusPending, nil, "", actingUser, now)

		require.Error(t, err)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreStatusHistoryEntry(t *testing.T) {
	t.Run("should allow absent attribution", func(t *testing.T) {
		e, err := shipment.RestoreStatusHistoryEntry(
			kernel.NewUUID(), kernel.NewUUID(), shipment.StatusReturned, nil, "Returned to shipper",
			nil, time.Now().UTC())

		require.NoError(t, err)
		assert.Nil(t, e.CreatedBy())
		assert.Equal(t, "Returned to shipper", e.Notes())
	})

	t.Run("should keep persisted notes verbatim", func(t *testing.T) {
		e, err := shipment.RestoreStatusHistoryEntry(
			kernel.NewUUID(), kernel.NewUUID(), shipment.StatusPending, nil, "",
			nil, time.Now().UTC())

		require.NoError(t, err)
		assert.Empty(t, e.Notes())
	})
}

func TestStatusHistoryEntryValidate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var e shipment.StatusHistoryEntry

		err := e.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, shipment.ErrHistoryEntryIsNotConstructed)
	})
}
