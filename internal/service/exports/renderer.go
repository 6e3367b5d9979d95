// Package exports renders admin downloads: the filtered bookings workbook
// and a one-page booking confirmation.
package exports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	"github.com/m04kA/SMC-TheatreBooking/internal/pricing"
)

const sheetName = "Bookings"

// Columns заголовки выгрузки в порядке столбцов
var Columns = []string{
	"Booking ID",
	"Status",
	"Created At",
	"Name",
	"Phone",
	"Email",
	"Address",
	"Location",
	"Date",
	"Time",
	"Package",
	"Occasion",
	"Cake",
	"Gold Package",
	"Total Price",
	"Additional Options",
	"Occasion Details",
}

// Renderer строит XLSX и PDF, время создания выводится в loc
type Renderer struct {
	loc *time.Location
}

// NewRenderer создает рендерер; nil loc означает UTC
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{loc: loc}
}

// BookingsXLSX выгружает бронирования на один лист
func (r *Renderer) BookingsXLSX(bookings []*domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, b := range bookings {
		row, err := r.row(b)
		if err != nil {
			return nil, err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) row(b *domain.Booking) ([]interface{}, error) {
	options, err := json.Marshal(b.AdditionalOptions)
	if err != nil {
		return nil, fmt.Errorf("encode options for %s: %w", b.ID, err)
	}
	details, err := domain.MarshalOccasionDetails(b.Occasion)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		b.ID.String(),
		string(b.Status),
		b.CreatedAt.In(r.loc).Format("2006-01-02 15:04:05"),
		b.Name,
		b.Phone,
		b.Email,
		b.Address,
		b.Location,
		b.Date,
		b.Time,
		b.Package,
		string(b.OccasionKind()),
		b.Cake,
		yesNo(b.NeedsPackage),
		"Rs. " + pricing.FormatRupees(b.TotalPrice),
		string(options),
		string(details),
	}, nil
}

// ConfirmationPDF подтверждение бронирования на одной странице A4
func (r *Renderer) ConfirmationPDF(b *domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Booking Confirmation")
	pdf.Ln(14)

	rows := [][2]string{
		{"Booking ID", b.ID.String()},
		{"Name", b.Name},
		{"Email", b.Email},
		{"Phone", b.Phone},
		{"Location", b.Location},
		{"Date", b.Date},
		{"Time", b.Time},
		{"Package", b.Package},
		{"Occasion", string(b.OccasionKind())},
		{"Cake", b.Cake},
		{"Gold Package", yesNo(b.NeedsPackage)},
		{"Total Price", "Rs. " + pricing.FormatRupees(b.TotalPrice)},
		{"Status", string(b.Status)},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(45, 8, row[0]+":")
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, row[1])
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Issued "+b.CreatedAt.In(r.loc).Format("02 Jan 2006 15:04"), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf for %s: %w", b.ID, err)
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
