package shipment

import (
	"errors"
	"time"

	"shipments/internal/core/domain/model/kernel"
)

// Synthetic notes written when no explicit note accompanies a change.
const (
	// NoteShipmentCreated is the note on the single history entry appended
	// atomically with shipment creation.
	NoteShipmentCreated = "Shipment created"

	// NoteStatusUpdated is the default note when a status changes without
	// caller-supplied notes.
	NoteStatusUpdated = "Status updated"
)

// ErrHistoryEntryIsNotConstructed is returned when a StatusHistoryEntry was
// not created through its constructors.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"StatusHistoryEntry must be created via NewStatusHistoryEntry or RestoreStatusHistoryEntry")

// StatusHistoryEntry is one row of a shipment's append-only audit trail.
// Entries are never mutated or deleted while their shipment exists; they are
// removed only by the cascading delete of the owning shipment.
type StatusHistoryEntry struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	status     Status
	location   *string
	notes      string
	createdBy  *kernel.UUID
	createdAt  time.Time

	isConstructed bool
}

// NewStatusHistoryEntry creates a history entry with a server-assigned
// timestamp. Empty notes default to NoteStatusUpdated.
func NewStatusHistoryEntry(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status Status,
	location *string,
	notes string,
	createdBy kernel.UUID,
	now time.Time,
) (*StatusHistoryEntry, error) {
	if notes == "" {
		notes = NoteStatusUpdated
	}

	e := &StatusHistoryEntry{
		location:      location,
		notes:         notes,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShipmentID(shipmentID),
		e.setStatus(status),
		e.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreStatusHistoryEntry reconstructs an entry from persistence.
// The creating user may be absent when the attribution was never set.
func RestoreStatusHistoryEntry(
	id kernel.UUID,
	shipmentID kernel.UUID,
	status Status,
	location *string,
	notes string,
	createdBy *kernel.UUID,
	createdAt time.Time,
) (*StatusHistoryEntry, error) {
	e := &StatusHistoryEntry{
		location:      location,
		notes:         notes,
		createdBy:     createdBy,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setShipmentID(shipmentID),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the entry was created through a constructor.
func (e *StatusHistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *StatusHistoryEntry) ID() kernel.UUID {
	return e.id
}

// ShipmentID returns the id of the owning shipment.
func (e *StatusHistoryEntry) ShipmentID() kernel.UUID {
	return e.shipmentID
}

// Status returns the status value recorded by this entry.
func (e *StatusHistoryEntry) Status() Status {
	return e.status
}

// Location returns the optional location, nil when none was supplied.
func (e *StatusHistoryEntry) Location() *string {
	return e.location
}

// Notes returns the entry notes; never empty after construction.
func (e *StatusHistoryEntry) Notes() string {
	return e.notes
}

// CreatedBy returns the attributed user id, nil when unset.
func (e *StatusHistoryEntry) CreatedBy() *kernel.UUID {
	return e.createdBy
}

// CreatedAt returns the server-assigned creation timestamp.
func (e *StatusHistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *StatusHistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *StatusHistoryEntry) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.shipmentID = id
	return nil
}

func (e *StatusHistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *StatusHistoryEntry) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	e.createdBy = &createdBy
	return nil
}
