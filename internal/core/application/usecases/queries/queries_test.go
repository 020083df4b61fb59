package queries_test

import (
	"testing"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetShipmentQuery(id)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.ShipmentID().IsEqual(id))
	})

	t.Run("zero-value id", func(t *testing.T) {
		_, err := queries.NewGetShipmentQuery(kernel.UUID{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestGetShipmentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}

func TestNewTrackShipmentQuery(t *testing.T) {
	t.Run("valid tracking number", func(t *testing.T) {
		tn := shipment.GenerateTrackingNumber()
		query, err := queries.NewTrackShipmentQuery(tn)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.TrackingNumber().IsEqual(tn))
	})

	t.Run("zero-value tracking number", func(t *testing.T) {
		_, err := queries.NewTrackShipmentQuery(shipment.TrackingNumber{})
		require.Error(t, err)
		assert.ErrorIs(t, err, shipment.ErrTrackingNumberIsNotConstructed)
	})
}

func TestNewGetStatusHistoryQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		query, err := queries.NewGetStatusHistoryQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("zero-value id", func(t *testing.T) {
		_, err := queries.NewGetStatusHistoryQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetUserQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetUserQuery(id)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.UserID().IsEqual(id))
	})

	t.Run("zero-value id", func(t *testing.T) {
		_, err := queries.NewGetUserQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetUsersQuery_Valid(t *testing.T) {
	query := queries.NewGetUsersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUsersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUsersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUsersQueryIsNotConstructed)
}
