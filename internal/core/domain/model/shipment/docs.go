// Package shipment contains the shipment aggregate and its satellite types:
// closed enumerations for service, type, currency and invoice classification,
// the tracking number value object with its generator, the append-only status
// history entry, and the partial-update payload.
//
// A shipment is always created in pending status with exactly one history
// entry. Every later status change flows through the dual write of the
// shipment's status field and a new history entry; the application layer
// wraps both writes in one transaction.
package shipment
