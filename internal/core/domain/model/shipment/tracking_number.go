package shipment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"shipments/internal/pkg/errs"
)

// TrackingNumberPrefix starts every public tracking number.
const TrackingNumberPrefix = "CN"

// trackingNumberPattern matches the prefix followed by the millisecond
// timestamp and the 0-999 random suffix, concatenated as decimal digits.
var trackingNumberPattern = regexp.MustCompile(`^CN\d{14,16}$`)

// ErrTrackingNumberIsNotConstructed is returned when validating a zero-value
// TrackingNumber that bypassed the constructors.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via GenerateTrackingNumber or TrackingNumberFromString")

// TrackingNumber is the public-facing identifier of a shipment, distinct
// from its internal id. It is immutable after creation and globally unique;
// the persistence layer enforces uniqueness with a constraint and the create
// path regenerates on collision.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a new likely-unique tracking number from
// the current time in milliseconds and a random 0-999 suffix. The timestamp
// alone is not collision-safe under concurrent creation, so callers must be
// prepared for a uniqueness-constraint failure and regenerate.
func GenerateTrackingNumber() TrackingNumber {
	return TrackingNumber{
		value: fmt.Sprintf("%s%d%d", TrackingNumberPrefix, time.Now().UnixMilli(), rand.IntN(1000)),
	}
}

// TrackingNumberFromString reconstructs a tracking number from its textual
// form, e.g. when parsing a public tracking lookup request.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%q does not match the expected format", s))
	}
	return TrackingNumber{value: s}, nil
}

// String returns the textual form of the tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual reports whether two tracking numbers are the same.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns an error for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
