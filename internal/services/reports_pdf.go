package services

import (
	"fmt"
	"time"

	"modernband/internal/booking"
	"modernband/internal/utils"
)

var bookingsTable = pdfTable{
	Header: []string{"Name", "Phone", "Package", "Date", "Venue", "Amount"},
	Widths: []float64{34, 24, 38, 24, 38, 24},
	Align:  []string{"L", "L", "L", "C", "L", "R"},
	Fill:   brandColor,
}

// RenderBookingsReport lays out the filtered bookings as an A4 table with totals.
func RenderBookingsReport(records []booking.Record, f BookingFilter, generated time.Time) ([]byte, string, error) {
	pdf := newPDF("Modern Band - Booking Report", generated)
	pdf.footer("Modern Band Booking System")
	pdf.AddPage()

	pdf.title("Modern Band - Booking Report")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on "+generated.Format("January 2, 2006 3:04 PM"), "", 1, "C", false, 0, "")

	if filters := f.Describe(); len(filters) > 0 {
		pdf.section("Applied Filters")
		for _, line := range filters {
			pdf.line(line)
		}
	}
	pdf.Ln(4)

	var total int64
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		total += r.Amount
		rows = append(rows, []string{
			safe(r.Name, "-"),
			safe(r.Phone, "-"),
			safe(string(r.PackageType), "-"),
			safe(utils.ShortDate(r.Date), "-"),
			safe(joinNonEmpty(r.Venue, r.City), "-"),
			utils.FormatRupeesPlain(r.Amount),
		})
	}
	if len(rows) == 0 {
		pdf.line("No bookings match the selected filters.")
	} else {
		pdf.table(bookingsTable, rows)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Bookings: %d", len(records)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Total Amount: "+utils.FormatRupeesPlain(total), "", 1, "L", false, 0, "")

	out, err := pdf.bytes()
	if err != nil {
		return nil, "", err
	}
	return out, "bookings-report-" + utils.FormatDate(generated) + ".pdf", nil
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		p = safe(p, "")
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
