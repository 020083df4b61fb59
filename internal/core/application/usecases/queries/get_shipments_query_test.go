package queries_test

import (
	"testing"
	"time"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetShipmentsQuery(2, 25, queries.ShipmentFilter{})
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.Limit())
}

func TestNewGetShipmentsQuery_ClampsPagination(t *testing.T) {
	t.Run("non-positive page falls back to first", func(t *testing.T) {
		query, err := queries.NewGetShipmentsQuery(0, 25, queries.ShipmentFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())

		query, err = queries.NewGetShipmentsQuery(-3, 25, queries.ShipmentFilter{})
		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		query, err := queries.NewGetShipmentsQuery(1, 0, queries.ShipmentFilter{})
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultPageLimit, query.Limit())
	})

	t.Run("oversized limit is capped", func(t *testing.T) {
		query, err := queries.NewGetShipmentsQuery(1, 5000, queries.ShipmentFilter{})
		require.NoError(t, err)
		assert.Equal(t, queries.MaxPageLimit, query.Limit())
	})
}

func TestNewGetShipmentsQuery_Filter(t *testing.T) {
	t.Run("accepts valid filter values", func(t *testing.T) {
		status := shipment.StatusInTransit
		service := shipment.ServiceExpress
		destination := "dubai"
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		query, err := queries.NewGetShipmentsQuery(1, 10, queries.ShipmentFilter{
			Status:      &status,
			Service:     &service,
			Destination: &destination,
			StartDate:   &start,
			EndDate:     &end,
		})
		require.NoError(t, err)
		assert.Equal(t, &status, query.Filter().Status)
		assert.Equal(t, &destination, query.Filter().Destination)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		status := shipment.Status("misplaced")
		_, err := queries.NewGetShipmentsQuery(1, 10, queries.ShipmentFilter{Status: &status})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown service type", func(t *testing.T) {
		service := shipment.ServiceType("carrier-pigeon")
		_, err := queries.NewGetShipmentsQuery(1, 10, queries.ShipmentFilter{Service: &service})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentsQueryIsNotConstructed)
}
