package shipment

import (
	"fmt"

	"shipments/internal/pkg/errs"
)

// ServiceType is the closed set of courier service levels.
type ServiceType string

const (
	ServiceExpress       ServiceType = "express"
	ServiceStandard      ServiceType = "standard"
	ServiceEconomy       ServiceType = "economy"
	ServiceOvernight     ServiceType = "overnight"
	ServiceInternational ServiceType = "international"
)

func validServiceTypes() map[ServiceType]struct{} {
	return map[ServiceType]struct{}{
		ServiceExpress:       {},
		ServiceStandard:      {},
		ServiceEconomy:       {},
		ServiceOvernight:     {},
		ServiceInternational: {},
	}
}

// Validate checks that the service type belongs to the closed set.
func (t ServiceType) Validate() error {
	if _, ok := validServiceTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service",
			fmt.Errorf("%q is not a valid service type", string(t)))
	}
	return nil
}

func (t ServiceType) String() string {
	return string(t)
}

// ShipmentType is the closed set of packaging classifications.
type ShipmentType string

const (
	TypeDocs         ShipmentType = "docs"
	TypeNonDocsFlyer ShipmentType = "nonDocsFlyer"
	TypeNonDocsBox   ShipmentType = "nonDocsBox"
)

func validShipmentTypes() map[ShipmentType]struct{} {
	return map[ShipmentType]struct{}{
		TypeDocs:         {},
		TypeNonDocsFlyer: {},
		TypeNonDocsBox:   {},
	}
}

// Validate checks that the shipment type belongs to the closed set.
func (t ShipmentType) Validate() error {
	if _, ok := validShipmentTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("shipmentType",
			fmt.Errorf("%q is not a valid shipment type", string(t)))
	}
	return nil
}

func (t ShipmentType) String() string {
	return string(t)
}

// InvoiceType is the closed set of invoice classifications.
// The empty value means no invoice type was supplied; it is optional.
type InvoiceType string

const (
	InvoiceCommercial  InvoiceType = "commercial"
	InvoiceGift        InvoiceType = "gift"
	InvoicePerformance InvoiceType = "performance"
	InvoiceSample      InvoiceType = "sample"
)

func validInvoiceTypes() map[InvoiceType]struct{} {
	return map[InvoiceType]struct{}{
		InvoiceCommercial:  {},
		InvoiceGift:        {},
		InvoicePerformance: {},
		InvoiceSample:      {},
	}
}

// Validate checks that the invoice type is empty or belongs to the closed set.
func (t InvoiceType) Validate() error {
	if t == "" {
		return nil
	}
	if _, ok := validInvoiceTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("invoiceType",
			fmt.Errorf("%q is not a valid invoice type", string(t)))
	}
	return nil
}

func (t InvoiceType) String() string {
	return string(t)
}

// Currency is the closed set of supported billing currencies.
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
	CurrencyGBP Currency = "gbp"
	CurrencyAED Currency = "aed"
	CurrencyPKR Currency = "pkr"
)

func validCurrencies() map[Currency]struct{} {
	return map[Currency]struct{}{
		CurrencyUSD: {},
		CurrencyEUR: {},
		CurrencyGBP: {},
		CurrencyAED: {},
		CurrencyPKR: {},
	}
}

// Validate checks that the currency belongs to the closed set.
func (c Currency) Validate() error {
	if _, ok := validCurrencies()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a valid currency", string(c)))
	}
	return nil
}

func (c Currency) String() string {
	return string(c)
}
