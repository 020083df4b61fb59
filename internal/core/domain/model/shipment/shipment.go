package shipment

import (
	"errors"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructor")

// Data carries the caller-supplied attributes of a shipment. It is consumed
// by NewShipment and produced again by Shipment.Data for duplication, which
// deliberately excludes identity and audit fields (id, tracking number,
// status, timestamps, history).
type Data struct {
	Service               ServiceType
	ShipmentType          ShipmentType
	Currency              Currency
	InvoiceType           InvoiceType
	CompanyName           string
	AccountNo             string
	Shipper               Party
	Receiver              Party
	Pieces                int
	Description           string
	Fragile               bool
	Weight                float64
	TotalVolumetricWeight float64
	Dimensions            string
	ShipperReference      string
	Comments              string
}

// Shipment is the aggregate root for a courier shipment. It owns the
// denormalized current status; the matching history entries are appended by
// the application layer within the same transaction as any status change.
//
// Invariants:
//   - tracking number is immutable after creation and globally unique
//   - status always belongs to the closed set, initial value pending
//   - pieces >= 1, weight >= 0, totalVolumetricWeight >= 0
//   - enumerated fields belong to their closed sets
type Shipment struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	status         Status
	data           Data
	createdBy      kernel.UUID
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewShipment creates a shipment in pending status. Any status supplied by
// the caller is ignored: the initial status is always pending, matched by
// the initial history entry the create use case appends.
func NewShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	data Data,
	createdBy kernel.UUID,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setData(data),
		s.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// stored status and timestamps. Validation matches NewShipment.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	status Status,
	data Data,
	createdBy kernel.UUID,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setStatus(status),
		s.setData(data),
		s.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the internal unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the public tracking number.
func (s *Shipment) TrackingNumber() TrackingNumber {
	return s.trackingNumber
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Data returns the caller-supplied attributes without identity or audit
// fields. Duplication feeds this straight into NewShipment.
func (s *Shipment) Data() Data {
	return s.data
}

// CreatedBy returns the id of the user who created the shipment.
func (s *Shipment) CreatedBy() kernel.UUID {
	return s.createdBy
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ApplyUpdate applies the fields present in upd, leaving omitted fields
// untouched. Returns ErrNoFieldsToUpdate when upd carries no recognized
// field. The returned flag reports whether a status value was supplied;
// the caller must then append a history entry in the same transaction,
// even when the supplied status equals the current one.
func (s *Shipment) ApplyUpdate(upd UpdateData, now time.Time) (statusChanged bool, err error) {
	if err = s.Validate(); err != nil {
		return false, err
	}

	if upd.IsEmpty() {
		return false, ErrNoFieldsToUpdate
	}

	if upd.Status != nil {
		if err = upd.Status.Validate(); err != nil {
			return false, err
		}
	}

	merged := s.data
	upd.mergeInto(&merged)
	if err = validateData(merged); err != nil {
		return false, err
	}

	s.data = merged
	if upd.Status != nil {
		s.status = *upd.Status
		statusChanged = true
	}
	s.updatedAt = now

	return statusChanged, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(tn TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	s.trackingNumber = tn
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	s.createdBy = createdBy
	return nil
}

func (s *Shipment) setData(data Data) error {
	if err := validateData(data); err != nil {
		return err
	}
	s.data = data
	return nil
}

func validateData(data Data) error {
	var err error

	if data.Pieces < 1 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("pieces", data.Pieces, 1, 10000))
	}
	if data.Weight < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("weight"))
	}
	if data.TotalVolumetricWeight < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("totalVolumetricWeight"))
	}

	return errors.Join(
		err,
		data.Service.Validate(),
		data.ShipmentType.Validate(),
		data.Currency.Validate(),
		data.InvoiceType.Validate(),
	)
}
