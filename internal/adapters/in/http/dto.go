package http

import (
	"time"

	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/domain/model/user"
)

// Boundary types. JSON uses camelCase; the snake_case mapping lives only
// in the persistence DTOs.

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=admin operator viewer"`
}

type updateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin operator viewer"`
	IsActive *bool   `json:"isActive"`
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// shipperRequest and receiverRequest share the Party shape but not the
// rules: the receiver additionally needs a deliverable contact, so its
// email is mandatory and must parse, and its zip is required where the
// shipper carries a postal code instead.
type shipperRequest struct {
	CompanyName string `json:"companyName"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Postal      string `json:"postal" validate:"required"`
	Zip         string `json:"zip"`
}

type receiverRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Postal      string `json:"postal"`
	Zip         string `json:"zip" validate:"required"`
}

type createShipmentRequest struct {
	Service               string          `json:"service" validate:"required,oneof=express standard economy overnight international"`
	ShipmentType          string          `json:"shipmentType" validate:"required,oneof=docs nonDocsFlyer nonDocsBox"`
	Currency              string          `json:"currency" validate:"required,oneof=usd eur gbp aed pkr"`
	InvoiceType           string          `json:"invoiceType" validate:"omitempty,oneof=commercial gift performance sample"`
	CompanyName           string          `json:"companyName" validate:"required"`
	AccountNo             string          `json:"accountNo" validate:"required"`
	Shipper               shipperRequest  `json:"shipper" validate:"required"`
	Receiver              receiverRequest `json:"receiver" validate:"required"`
	Pieces                int             `json:"pieces" validate:"required,gte=1"`
	Description           string          `json:"description" validate:"required"`
	Fragile               bool            `json:"fragile"`
	Weight                float64         `json:"weight" validate:"gte=0"`
	TotalVolumetricWeight float64         `json:"totalVolumetricWeight" validate:"gte=0"`
	Dimensions            string          `json:"dimensions"`
	ShipperReference      string          `json:"shipperReference"`
	Comments              string          `json:"comments"`
}

type updateShipmentRequest struct {
	Service               *string  `json:"service" validate:"omitempty,oneof=express standard economy overnight international"`
	Status                *string  `json:"status" validate:"omitempty,oneof=pending inTransit delivered cancelled returned onHold"`
	ShipmentType          *string  `json:"shipmentType" validate:"omitempty,oneof=docs nonDocsFlyer nonDocsBox"`
	Currency              *string  `json:"currency" validate:"omitempty,oneof=usd eur gbp aed pkr"`
	InvoiceType           *string  `json:"invoiceType" validate:"omitempty,oneof=commercial gift performance sample"`
	CompanyName           *string  `json:"companyName"`
	AccountNo             *string  `json:"accountNo"`
	ShipperCompanyName    *string  `json:"shipperCompanyName"`
	ShipperName           *string  `json:"shipperName"`
	ShipperPhone          *string  `json:"shipperPhone"`
	ShipperAddress        *string  `json:"shipperAddress"`
	ShipperCity           *string  `json:"shipperCity"`
	ShipperCountry        *string  `json:"shipperCountry"`
	ShipperPostal         *string  `json:"shipperPostal"`
	ReceiverCompanyName   *string  `json:"receiverCompanyName"`
	ReceiverName          *string  `json:"receiverName"`
	ReceiverPhone         *string  `json:"receiverPhone"`
	ReceiverEmail         *string  `json:"receiverEmail" validate:"omitempty,email"`
	ReceiverAddress       *string  `json:"receiverAddress"`
	ReceiverCity          *string  `json:"receiverCity"`
	ReceiverCountry       *string  `json:"receiverCountry"`
	ReceiverZip           *string  `json:"receiverZip"`
	Pieces                *int     `json:"pieces" validate:"omitempty,gte=1"`
	Description           *string  `json:"description"`
	Fragile               *bool    `json:"fragile"`
	Weight                *float64 `json:"weight" validate:"omitempty,gte=0"`
	TotalVolumetricWeight *float64 `json:"totalVolumetricWeight" validate:"omitempty,gte=0"`
	Dimensions            *string  `json:"dimensions"`
	ShipperReference      *string  `json:"shipperReference"`
	Comments              *string  `json:"comments"`
}

type duplicateShipmentRequest struct {
	InvoiceType string `json:"invoiceType" validate:"omitempty,oneof=commercial gift performance sample"`
}

type addStatusRequest struct {
	Status   string  `json:"status" validate:"required,oneof=pending inTransit delivered cancelled returned onHold"`
	Location *string `json:"location"`
	Notes    string  `json:"notes"`
}

type partyResponse struct {
	CompanyName string `json:"companyName"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Postal      string `json:"postal"`
	Zip         string `json:"zip"`
}

type shipmentResponse struct {
	ID                    string        `json:"id"`
	TrackingNumber        string        `json:"trackingNumber"`
	Status                string        `json:"status"`
	Service               string        `json:"service"`
	ShipmentType          string        `json:"shipmentType"`
	Currency              string        `json:"currency"`
	InvoiceType           string        `json:"invoiceType,omitempty"`
	CompanyName           string        `json:"companyName"`
	AccountNo             string        `json:"accountNo"`
	Shipper               partyResponse `json:"shipper"`
	Receiver              partyResponse `json:"receiver"`
	Pieces                int           `json:"pieces"`
	Description           string        `json:"description"`
	Fragile               bool          `json:"fragile"`
	Weight                float64       `json:"weight"`
	TotalVolumetricWeight float64       `json:"totalVolumetricWeight"`
	Dimensions            string        `json:"dimensions"`
	ShipperReference      string        `json:"shipperReference"`
	Comments              string        `json:"comments"`
	CreatedBy             string        `json:"createdBy"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

type historyEntryResponse struct {
	ID            string    `json:"id"`
	ShipmentID    string    `json:"shipmentId"`
	Status        string    `json:"status"`
	Location      *string   `json:"location"`
	Notes         string    `json:"notes"`
	CreatedByName string    `json:"createdByName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type shipmentListResponse struct {
	Shipments  []shipmentResponse `json:"shipments"`
	Pagination paginationResponse `json:"pagination"`
}

type trackingResponse struct {
	Shipment shipmentResponse       `json:"shipment"`
	History  []historyEntryResponse `json:"history"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r createShipmentRequest) toData() shipment.Data {
	return shipment.Data{
		Service:               shipment.ServiceType(r.Service),
		ShipmentType:          shipment.ShipmentType(r.ShipmentType),
		Currency:              shipment.Currency(r.Currency),
		InvoiceType:           shipment.InvoiceType(r.InvoiceType),
		CompanyName:           r.CompanyName,
		AccountNo:             r.AccountNo,
		Shipper:               r.Shipper.toParty(),
		Receiver:              r.Receiver.toParty(),
		Pieces:                r.Pieces,
		Description:           r.Description,
		Fragile:               r.Fragile,
		Weight:                r.Weight,
		TotalVolumetricWeight: r.TotalVolumetricWeight,
		Dimensions:            r.Dimensions,
		ShipperReference:      r.ShipperReference,
		Comments:              r.Comments,
	}
}

func (r shipperRequest) toParty() shipment.Party {
	return shipment.Party{
		CompanyName: r.CompanyName,
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		Postal:      r.Postal,
		Zip:         r.Zip,
	}
}

func (r receiverRequest) toParty() shipment.Party {
	return shipment.Party{
		CompanyName: r.CompanyName,
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		City:        r.City,
		Country:     r.Country,
		Postal:      r.Postal,
		Zip:         r.Zip,
	}
}

func (r updateShipmentRequest) toUpdateData() shipment.UpdateData {
	upd := shipment.UpdateData{
		CompanyName:           r.CompanyName,
		AccountNo:             r.AccountNo,
		ShipperCompanyName:    r.ShipperCompanyName,
		ShipperName:           r.ShipperName,
		ShipperPhone:          r.ShipperPhone,
		ShipperAddress:        r.ShipperAddress,
		ShipperCity:           r.ShipperCity,
		ShipperCountry:        r.ShipperCountry,
		ShipperPostal:         r.ShipperPostal,
		ReceiverCompanyName:   r.ReceiverCompanyName,
		ReceiverName:          r.ReceiverName,
		ReceiverPhone:         r.ReceiverPhone,
		ReceiverEmail:         r.ReceiverEmail,
		ReceiverAddress:       r.ReceiverAddress,
		ReceiverCity:          r.ReceiverCity,
		ReceiverCountry:       r.ReceiverCountry,
		ReceiverZip:           r.ReceiverZip,
		Pieces:                r.Pieces,
		Description:           r.Description,
		Fragile:               r.Fragile,
		Weight:                r.Weight,
		TotalVolumetricWeight: r.TotalVolumetricWeight,
		Dimensions:            r.Dimensions,
		ShipperReference:      r.ShipperReference,
		Comments:              r.Comments,
	}

	if r.Service != nil {
		service := shipment.ServiceType(*r.Service)
		upd.Service = &service
	}
	if r.Status != nil {
		status := shipment.Status(*r.Status)
		upd.Status = &status
	}
	if r.ShipmentType != nil {
		shipmentType := shipment.ShipmentType(*r.ShipmentType)
		upd.ShipmentType = &shipmentType
	}
	if r.Currency != nil {
		currency := shipment.Currency(*r.Currency)
		upd.Currency = &currency
	}
	if r.InvoiceType != nil {
		invoiceType := shipment.InvoiceType(*r.InvoiceType)
		upd.InvoiceType = &invoiceType
	}

	return upd
}

func (r updateUserRequest) toUpdateData() user.UpdateData {
	upd := user.UpdateData{
		Email:    r.Email,
		FullName: r.FullName,
		Phone:    r.Phone,
		IsActive: r.IsActive,
	}
	if r.Role != nil {
		role := user.Role(*r.Role)
		upd.Role = &role
	}
	return upd
}

func shipmentFromDomain(aggregate *shipment.Shipment) shipmentResponse {
	data := aggregate.Data()

	return shipmentResponse{
		ID:                    aggregate.ID().String(),
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
		CreatedBy:             aggregate.CreatedBy().String(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

func partyFromDomain(p shipment.Party) partyResponse {
	return partyResponse{
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

func shipmentFromReadModel(m queries.ShipmentResponse) shipmentResponse {
	return shipmentResponse{
		ID:                    m.ID.String(),
		TrackingNumber:        m.TrackingNumber,
		Status:                m.Status,
		Service:               m.Service,
		ShipmentType:          m.ShipmentType,
		Currency:              m.Currency,
		InvoiceType:           m.InvoiceType,
		CompanyName:           m.CompanyName,
		AccountNo:             m.AccountNo,
		Shipper:               partyFromReadModel(m.Shipper),
		Receiver:              partyFromReadModel(m.Receiver),
		Pieces:                m.Pieces,
		Description:           m.Description,
		Fragile:               m.Fragile,
		Weight:                m.Weight,
		TotalVolumetricWeight: m.TotalVolumetricWeight,
		Dimensions:            m.Dimensions,
		ShipperReference:      m.ShipperReference,
		Comments:              m.Comments,
		CreatedBy:             m.CreatedBy.String(),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func partyFromReadModel(p queries.PartyResponse) partyResponse {
	return partyResponse{
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

func historyFromReadModel(m queries.StatusHistoryEntryResponse) historyEntryResponse {
	return historyEntryResponse{
		ID:            m.ID.String(),
		ShipmentID:    m.ShipmentID.String(),
		Status:        m.Status,
		Location:      m.Location,
		Notes:         m.Notes,
		CreatedByName: m.CreatedByName,
		CreatedAt:     m.CreatedAt,
	}
}

func historyFromDomain(entry *shipment.StatusHistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID:         entry.ID().String(),
		ShipmentID: entry.ShipmentID().String(),
		Status:     entry.Status().String(),
		Location:   entry.Location(),
		Notes:      entry.Notes(),
		CreatedAt:  entry.CreatedAt(),
	}
}

func userFromDomain(account *user.User) userResponse {
	return userResponse{
		ID:        account.ID().String(),
		Email:     account.Email(),
		FullName:  account.FullName(),
		Phone:     account.Phone(),
		Role:      account.Role().String(),
		IsActive:  account.IsActive(),
		CreatedAt: account.CreatedAt(),
		UpdatedAt: account.UpdatedAt(),
	}
}

func userFromReadModel(m queries.UserResponse) userResponse {
	return userResponse{
		ID:        m.ID.String(),
		Email:     m.Email,
		FullName:  m.FullName,
		Phone:     m.Phone,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
