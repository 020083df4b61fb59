// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain aggregates and read optimized models straight
// from the database.
package queries

import (
	"time"

	"github.com/google/uuid"

	"shipments/internal/core/domain/model/kernel"
)

// PartyResponse carries shipper or receiver contact details in the read model.
type PartyResponse struct {
	CompanyName string
	Name        string
	Phone       string
	Email       string
	Address     string
	City        string
	Country     string
	Postal      string
	Zip         string
}

// ShipmentResponse is the full shipment read model returned by queries.
type ShipmentResponse struct {
	ID                    kernel.UUID
	TrackingNumber        string
	Status                string
	Service               string
	ShipmentType          string
	Currency              string
	InvoiceType           string
	CompanyName           string
	AccountNo             string
	Shipper               PartyResponse
	Receiver              PartyResponse
	Pieces                int
	Description           string
	Fragile               bool
	Weight                float64
	TotalVolumetricWeight float64
	Dimensions            string
	ShipperReference      string
	Comments              string
	CreatedBy             kernel.UUID
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// StatusHistoryEntryResponse is one ledger entry in the read model. CreatedByName
// is resolved from the users table and empty when the author account is gone.
type StatusHistoryEntryResponse struct {
	ID            kernel.UUID
	ShipmentID    kernel.UUID
	Status        string
	Location      *string
	Notes         string
	CreatedByName string
	CreatedAt     time.Time
}

// UserResponse is the account read model. The password hash never leaves
// the persistence layer.
type UserResponse struct {
	ID        kernel.UUID
	Email     string
	FullName  string
	Phone     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// shipmentRow mirrors the shipments table for scanning list and get queries.
type shipmentRow struct {
	ID                    uuid.UUID `gorm:"column:id"`
	TrackingNumber        string    `gorm:"column:tracking_number"`
	Status                string    `gorm:"column:status"`
	Service               string    `gorm:"column:service"`
	ShipmentType          string    `gorm:"column:shipment_type"`
	Currency              string    `gorm:"column:currency"`
	InvoiceType           string    `gorm:"column:invoice_type"`
	CompanyName           string    `gorm:"column:company_name"`
	AccountNo             string    `gorm:"column:account_no"`
	ShipperCompanyName    string    `gorm:"column:shipper_company_name"`
	ShipperName           string    `gorm:"column:shipper_name"`
	ShipperPhone          string    `gorm:"column:shipper_phone"`
	ShipperEmail          string    `gorm:"column:shipper_email"`
	ShipperAddress        string    `gorm:"column:shipper_address"`
	ShipperCity           string    `gorm:"column:shipper_city"`
	ShipperCountry        string    `gorm:"column:shipper_country"`
	ShipperPostal         string    `gorm:"column:shipper_postal"`
	ShipperZip            string    `gorm:"column:shipper_zip"`
	ReceiverCompanyName   string    `gorm:"column:receiver_company_name"`
	ReceiverName          string    `gorm:"column:receiver_name"`
	ReceiverPhone         string    `gorm:"column:receiver_phone"`
	ReceiverEmail         string    `gorm:"column:receiver_email"`
	ReceiverAddress       string    `gorm:"column:receiver_address"`
	ReceiverCity          string    `gorm:"column:receiver_city"`
	ReceiverCountry       string    `gorm:"column:receiver_country"`
	ReceiverPostal        string    `gorm:"column:receiver_postal"`
	ReceiverZip           string    `gorm:"column:receiver_zip"`
	Pieces                int       `gorm:"column:pieces"`
	Description           string    `gorm:"column:description"`
	Fragile               bool      `gorm:"column:fragile"`
	Weight                float64   `gorm:"column:weight"`
	TotalVolumetricWeight float64   `gorm:"column:total_volumetric_weight"`
	Dimensions            string    `gorm:"column:dimensions"`
	ShipperReference      string    `gorm:"column:shipper_reference"`
	Comments              string    `gorm:"column:comments"`
	CreatedBy             uuid.UUID `gorm:"column:created_by"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (r shipmentRow) toResponse() (ShipmentResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	createdBy, err := kernel.UUIDFromBytes(r.CreatedBy[:])
	if err != nil {
		return ShipmentResponse{}, err
	}

	return ShipmentResponse{
		ID:             id,
		TrackingNumber: r.TrackingNumber,
		Status:         r.Status,
		Service:        r.Service,
		ShipmentType:   r.ShipmentType,
		Currency:       r.Currency,
		InvoiceType:    r.InvoiceType,
		CompanyName:    r.CompanyName,
		AccountNo:      r.AccountNo,
		Shipper: PartyResponse{
			CompanyName: r.ShipperCompanyName,
			Name:        r.ShipperName,
			Phone:       r.ShipperPhone,
			Email:       r.ShipperEmail,
			Address:     r.ShipperAddress,
			City:        r.ShipperCity,
			Country:     r.ShipperCountry,
			Postal:      r.ShipperPostal,
			Zip:         r.ShipperZip,
		},
		Receiver: PartyResponse{
			CompanyName: r.ReceiverCompanyName,
			Name:        r.ReceiverName,
			Phone:       r.ReceiverPhone,
			Email:       r.ReceiverEmail,
			Address:     r.ReceiverAddress,
			City:        r.ReceiverCity,
			Country:     r.ReceiverCountry,
			Postal:      r.ReceiverPostal,
			Zip:         r.ReceiverZip,
		},
		Pieces:                r.Pieces,
		Description:           r.Description,
		Fragile:               r.Fragile,
		Weight:                r.Weight,
		TotalVolumetricWeight: r.TotalVolumetricWeight,
		Dimensions:            r.Dimensions,
		ShipperReference:      r.ShipperReference,
		Comments:              r.Comments,
		CreatedBy:             createdBy,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}, nil
}

const shipmentColumns = `
		id,
		tracking_number,
		status,
		service,
		shipment_type,
		currency,
		invoice_type,
		company_name,
		account_no,
		shipper_company_name,
		shipper_name,
		shipper_phone,
		shipper_email,
		shipper_address,
		shipper_city,
		shipper_country,
		shipper_postal,
		shipper_zip,
		receiver_company_name,
		receiver_name,
		receiver_phone,
		receiver_email,
		receiver_address,
		receiver_city,
		receiver_country,
		receiver_postal,
		receiver_zip,
		pieces,
		description,
		fragile,
		weight,
		total_volumetric_weight,
		dimensions,
		shipper_reference,
		comments,
		created_by,
		created_at,
		updated_at`
