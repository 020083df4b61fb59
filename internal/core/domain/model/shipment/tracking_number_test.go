package shipment_test

import (
	"strings"
	"testing"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingNumber(t *testing.T) {
	t.Run("should produce valid number with CN prefix", func(t *testing.T) {
		tn := shipment.GenerateTrackingNumber()

		require.NoError(t, tn.Validate())
		assert.True(t, strings.HasPrefix(tn.String(), shipment.TrackingNumberPrefix))
	})

	t.Run("should round-trip through FromString", func(t *testing.T) {
		tn := shipment.GenerateTrackingNumber()

		parsed, err := shipment.TrackingNumberFromString(tn.String())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(tn))
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("should accept well-formed number", func(t *testing.T) {
		tn, err := shipment.TrackingNumberFromString("CN1725000000000012")

		require.NoError(t, err)
		assert.Equal(t, "CN1725000000000012", tn.String())
	})

	t.Run("should reject overlong payload", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("CN1725000000000012345")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing prefix", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("1725000000000012")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-digit payload", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("CN17250000abcd0012")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := shipment.TrackingNumberFromString("")

		require.Error(t, err)
	})
}

func TestTrackingNumberValidate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var tn shipment.TrackingNumber

		err := tn.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, shipment.ErrTrackingNumberIsNotConstructed)
	})
}
