package shipment

import (
	"fmt"

	"shipments/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// Statuses form a closed set but do not restrict transitions: operators may
// move a shipment between any two states, and every change is recorded in
// the status history.
type Status string

const (
	// StatusPending is the initial status of every created shipment.
	StatusPending Status = "pending"

	// StatusInTransit indicates the shipment left the origin facility.
	StatusInTransit Status = "inTransit"

	// StatusDelivered indicates the shipment reached the receiver.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the shipment was cancelled.
	StatusCancelled Status = "cancelled"

	// StatusReturned indicates the shipment was returned to the shipper.
	StatusReturned Status = "returned"

	// StatusOnHold indicates the shipment is held, e.g. at customs.
	StatusOnHold Status = "onHold"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusInTransit: {},
		StatusDelivered: {},
		StatusCancelled: {},
		StatusReturned:  {},
		StatusOnHold:    {},
	}
}

// Validate checks that the status belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
