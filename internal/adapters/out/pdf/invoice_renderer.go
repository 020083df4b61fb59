// Package pdf renders shipment invoices as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"shipments/internal/core/application/usecases/queries"
)

// InvoiceRenderer produces the downloadable invoice for a shipment.
type InvoiceRenderer struct{}

// NewInvoiceRenderer creates an invoice renderer.
func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{}
}

// Render builds the invoice PDF for a shipment read model.
func (r *InvoiceRenderer) Render(m queries.ShipmentResponse) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Invoice "+m.TrackingNumber, false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 12, "Shipment Invoice")
	doc.Ln(14)

	doc.SetFont("Helvetica", "", 11)
	writeRow(doc, "Tracking number", m.TrackingNumber)
	writeRow(doc, "Date", m.CreatedAt.Format("2006-01-02"))
	writeRow(doc, "Service", m.Service)
	writeRow(doc, "Shipment type", m.ShipmentType)
	if m.InvoiceType != "" {
		writeRow(doc, "Invoice type", m.InvoiceType)
	}
	writeRow(doc, "Currency", strings.ToUpper(m.Currency))
	doc.Ln(6)

	writePartyBlock(doc, "Shipper", m.Shipper)
	doc.Ln(4)
	writePartyBlock(doc, "Receiver", m.Receiver)
	doc.Ln(6)

	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 8, "Package details")
	doc.Ln(10)
	doc.SetFont("Helvetica", "", 11)
	writeRow(doc, "Pieces", fmt.Sprintf("%d", m.Pieces))
	writeRow(doc, "Weight", fmt.Sprintf("%.2f kg", m.Weight))
	writeRow(doc, "Volumetric weight", fmt.Sprintf("%.2f kg", m.TotalVolumetricWeight))
	if m.Dimensions != "" {
		writeRow(doc, "Dimensions", m.Dimensions)
	}
	if m.Description != "" {
		writeRow(doc, "Description", m.Description)
	}
	if m.Fragile {
		writeRow(doc, "Handling", "FRAGILE")
	}
	if m.ShipperReference != "" {
		writeRow(doc, "Reference", m.ShipperReference)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeRow(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(50, 7, label)
	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 7, value)
	doc.Ln(7)
}

func writePartyBlock(doc *gofpdf.Fpdf, title string, p queries.PartyResponse) {
	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 8, title)
	doc.Ln(9)

	doc.SetFont("Helvetica", "", 11)
	lines := []string{p.CompanyName, p.Name, p.Address}

	cityLine := strings.TrimSpace(strings.Join(nonEmpty(p.City, p.Postal, p.Zip), " "))
	lines = append(lines, cityLine, p.Country, p.Phone, p.Email)

	for _, line := range lines {
		if line == "" {
			continue
		}
		doc.Cell(0, 6, line)
		doc.Ln(6)
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
