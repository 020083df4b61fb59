package shipment

import "errors"

// ErrNoFieldsToUpdate is returned when a partial update payload contains no
// recognized field. Callers report it as a "nothing to update" outcome, not
// a server failure.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// UpdateData is a partial-update payload. A nil pointer means the field was
// omitted and must be left untouched; a non-nil pointer replaces the stored
// value, including replacement with an empty string for optional free-text
// fields.
type UpdateData struct {
	Service               *ServiceType
	Status                *Status
	ShipmentType          *ShipmentType
	Currency              *Currency
	InvoiceType           *InvoiceType
	CompanyName           *string
	AccountNo             *string
	ShipperCompanyName    *string
	ShipperName           *string
	ShipperPhone          *string
	ShipperAddress        *string
	ShipperCity           *string
	ShipperCountry        *string
	ShipperPostal         *string
	ReceiverCompanyName   *string
	ReceiverName          *string
	ReceiverEmail         *string
	ReceiverPhone         *string
	ReceiverAddress       *string
	ReceiverCity          *string
	ReceiverCountry       *string
	ReceiverZip           *string
	Pieces                *int
	Description           *string
	Fragile               *bool
	Weight                *float64
	TotalVolumetricWeight *float64
	Dimensions            *string
	ShipperReference      *string
	Comments              *string
}

// IsEmpty reports whether the payload carries no updatable field.
func (u UpdateData) IsEmpty() bool {
	return u.Service == nil &&
		u.Status == nil &&
		u.ShipmentType == nil &&
		u.Currency == nil &&
		u.InvoiceType == nil &&
		u.CompanyName == nil &&
		u.AccountNo == nil &&
		u.ShipperCompanyName == nil &&
		u.ShipperName == nil &&
		u.ShipperPhone == nil &&
		u.ShipperAddress == nil &&
		u.ShipperCity == nil &&
		u.ShipperCountry == nil &&
		u.ShipperPostal == nil &&
		u.ReceiverCompanyName == nil &&
		u.ReceiverName == nil &&
		u.ReceiverEmail == nil &&
		u.ReceiverPhone == nil &&
		u.ReceiverAddress == nil &&
		u.ReceiverCity == nil &&
		u.ReceiverCountry == nil &&
		u.ReceiverZip == nil &&
		u.Pieces == nil &&
		u.Description == nil &&
		u.Fragile == nil &&
		u.Weight == nil &&
		u.TotalVolumetricWeight == nil &&
		u.Dimensions == nil &&
		u.ShipperReference == nil &&
		u.Comments == nil
}

// mergeInto copies every set field onto data. Status is handled separately
// by Shipment.ApplyUpdate because it triggers the history dual write.
func (u UpdateData) mergeInto(data *Data) {
	if u.Service != nil {
		data.Service = *u.Service
	}
	if u.ShipmentType != nil {
		data.ShipmentType = *u.ShipmentType
	}
	if u.Currency != nil {
		data.Currency = *u.Currency
	}
	if u.InvoiceType != nil {
		data.InvoiceType = *u.InvoiceType
	}
	if u.CompanyName != nil {
		data.CompanyName = *u.CompanyName
	}
	if u.AccountNo != nil {
		data.AccountNo = *u.AccountNo
	}
	if u.ShipperCompanyName != nil {
		data.Shipper.CompanyName = *u.ShipperCompanyName
	}
	if u.ShipperName != nil {
		data.Shipper.Name = *u.ShipperName
	}
	if u.ShipperPhone != nil {
		data.Shipper.Phone = *u.ShipperPhone
	}
	if u.ShipperAddress != nil {
		data.Shipper.Address = *u.ShipperAddress
	}
	if u.ShipperCity != nil {
		data.Shipper.City = *u.ShipperCity
	}
	if u.ShipperCountry != nil {
		data.Shipper.Country = *u.ShipperCountry
	}
	if u.ShipperPostal != nil {
		data.Shipper.Postal = *u.ShipperPostal
	}
	if u.ReceiverCompanyName != nil {
		data.Receiver.CompanyName = *u.ReceiverCompanyName
	}
	if u.ReceiverName != nil {
		data.Receiver.Name = *u.ReceiverName
	}
	if u.ReceiverEmail != nil {
		data.Receiver.Email = *u.ReceiverEmail
	}
	if u.ReceiverPhone != nil {
		data.Receiver.Phone = *u.ReceiverPhone
	}
	if u.ReceiverAddress != nil {
		data.Receiver.Address = *u.ReceiverAddress
	}
	if u.ReceiverCity != nil {
		data.Receiver.City = *u.ReceiverCity
	}
	if u.ReceiverCountry != nil {
		data.Receiver.Country = *u.ReceiverCountry
	}
	if u.ReceiverZip != nil {
		data.Receiver.Zip = *u.ReceiverZip
	}
	if u.Pieces != nil {
		data.Pieces = *u.Pieces
	}
	if u.Description != nil {
		data.Description = *u.Description
	}
	if u.Fragile != nil {
		data.Fragile = *u.Fragile
	}
	if u.Weight != nil {
		data.Weight = *u.Weight
	}
	if u.TotalVolumetricWeight != nil {
		data.TotalVolumetricWeight = *u.TotalVolumetricWeight
	}
	if u.Dimensions != nil {
		data.Dimensions = *u.Dimensions
	}
	if u.ShipperReference != nil {
		data.ShipperReference = *u.ShipperReference
	}
	if u.Comments != nil {
		data.Comments = *u.Comments
	}
}
