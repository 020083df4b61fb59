package shipment_test

import (
	"testing"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should accept every member of the closed set", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.StatusPending,
			shipment.StatusInTransit,
			shipment.StatusDelivered,
			shipment.StatusCancelled,
			shipment.StatusReturned,
			shipment.StatusOnHold,
		}

		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown value", func(t *testing.T) {
		err := shipment.Status("misplaced").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty value", func(t *testing.T) {
		require.Error(t, shipment.Status("").Validate())
	})
}

func TestEnumValidate(t *testing.T) {
	t.Run("should reject unknown service type", func(t *testing.T) {
		require.Error(t, shipment.ServiceType("carrier-pigeon").Validate())
	})

	t.Run("should reject unknown shipment type", func(t *testing.T) {
		require.Error(t, shipment.ShipmentType("crate").Validate())
	})

	t.Run("should reject unknown currency", func(t *testing.T) {
		require.Error(t, shipment.Currency("btc").Validate())
	})

	t.Run("should treat empty invoice type as unset", func(t *testing.T) {
		require.NoError(t, shipment.InvoiceType("").Validate())
		require.Error(t, shipment.InvoiceType("receipt").Validate())
	})
}
