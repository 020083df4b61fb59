// Package shipmentrepo persists shipment aggregates with GORM. It handles
// the conversion between the domain aggregate and its flat relational row,
// including the denormalized current status column.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database row for a shipment aggregate. The
// tracking number carries a unique index so concurrent creations with the
// same generated number fail at the constraint instead of racing.
type ShipmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber        string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status                string    `gorm:"type:varchar(32);not null"`
	Service               string    `gorm:"type:varchar(32);not null"`
	ShipmentType          string    `gorm:"type:varchar(32);not null"`
	Currency              string    `gorm:"type:varchar(8);not null"`
	InvoiceType           string    `gorm:"type:varchar(32)"`
	CompanyName           string    `gorm:"type:varchar(255)"`
	AccountNo             string    `gorm:"type:varchar(64)"`
	Shipper               PartyDTO  `gorm:"embedded;embeddedPrefix:shipper_"`
	Receiver              PartyDTO  `gorm:"embedded;embeddedPrefix:receiver_"`
	Pieces                int       `gorm:"type:int;not null"`
	Description           string    `gorm:"type:text"`
	Fragile               bool      `gorm:"type:boolean;not null"`
	Weight                float64   `gorm:"type:numeric"`
	TotalVolumetricWeight float64   `gorm:"type:numeric"`
	Dimensions            string    `gorm:"type:varchar(255)"`
	ShipperReference      string    `gorm:"type:varchar(255)"`
	Comments              string    `gorm:"type:text"`
	CreatedBy             uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt             time.Time `gorm:"type:timestamptz;not null;index"`
	UpdatedAt             time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents the embedded shipper or receiver columns.
type PartyDTO struct {
	CompanyName string `gorm:"type:varchar(255)"`
	Name        string `gorm:"type:varchar(255);not null"`
	Phone       string `gorm:"type:varchar(64)"`
	Email       string `gorm:"type:varchar(255)"`
	Address     string `gorm:"type:text"`
	City        string `gorm:"type:varchar(128)"`
	Country     string `gorm:"type:varchar(128)"`
	Postal      string `gorm:"type:varchar(32)"`
	Zip         string `gorm:"type:varchar(32)"`
}

func partyFromDomain(p shipment.Party) PartyDTO {
	return PartyDTO{
		CompanyName: p.CompanyName,
		Name:        p.Name,
		Phone:       p.Phone,
		Email:       p.Email,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Postal:      p.Postal,
		Zip:         p.Zip,
	}
}

func partyToDomain(dto PartyDTO) shipment.Party {
	return shipment.Party{
		CompanyName: dto.CompanyName,
		Name:        dto.Name,
		Phone:       dto.Phone,
		Email:       dto.Email,
		Address:     dto.Address,
		City:        dto.City,
		Country:     dto.Country,
		Postal:      dto.Postal,
		Zip:         dto.Zip,
	}
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	data := aggregate.Data()

	return ShipmentDTO{
		ID:                    aggregate.ID().Bytes(),
		TrackingNumber:        aggregate.TrackingNumber().String(),
		Status:                aggregate.Status().String(),
		Service:               data.Service.String(),
		ShipmentType:          data.ShipmentType.String(),
		Currency:              data.Currency.String(),
		InvoiceType:           data.InvoiceType.String(),
		CompanyName:           data.CompanyName,
		AccountNo:             data.AccountNo,
		Shipper:               partyFromDomain(data.Shipper),
		Receiver:              partyFromDomain(data.Receiver),
		Pieces:                data.Pieces,
		Description:           data.Description,
		Fragile:               data.Fragile,
		Weight:                data.Weight,
		TotalVolumetricWeight: data.TotalVolumetricWeight,
		Dimensions:            data.Dimensions,
		ShipperReference:      data.ShipperReference,
		Comments:              data.Comments,
		CreatedBy:             aggregate.CreatedBy().Bytes(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row back to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := shipment.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	data := shipment.Data{
		Service:               shipment.ServiceType(dto.Service),
		ShipmentType:          shipment.ShipmentType(dto.ShipmentType),
		Currency:              shipment.Currency(dto.Currency),
		InvoiceType:           shipment.InvoiceType(dto.InvoiceType),
		CompanyName:           dto.CompanyName,
		AccountNo:             dto.AccountNo,
		Shipper:               partyToDomain(dto.Shipper),
		Receiver:              partyToDomain(dto.Receiver),
		Pieces:                dto.Pieces,
		Description:           dto.Description,
		Fragile:               dto.Fragile,
		Weight:                dto.Weight,
		TotalVolumetricWeight: dto.TotalVolumetricWeight,
		Dimensions:            dto.Dimensions,
		ShipperReference:      dto.ShipperReference,
		Comments:              dto.Comments,
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		shipment.Status(dto.Status),
		data,
		createdBy,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
