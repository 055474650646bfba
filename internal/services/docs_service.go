package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"modernband/internal/booking"
	"modernband/internal/domain/models"
	"modernband/internal/utils"
)

// DocsService renders the customer booking slip and the employee statement.
type DocsService struct {
	Bookings       BookingDirectory
	Employees      EmployeeDirectory
	Token          string
	RequestID      string
	Now            func() time.Time
	Loader         func(ctx context.Context, identifier string) (booking.Record, error)
	EmployeeLoader func(ctx context.Context, username string) (models.Employee, error)
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s DocsService) BookingSlip(ctx context.Context, identifier string) ([]byte, string, error) {
	rec, err := s.loadBooking(ctx, identifier)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "booking_slip", "booking_id="+rec.ID.String())
	return buildBookingSlipPDF(rec, s.now())
}

func (s DocsService) EmployeeStatement(ctx context.Context, username string) ([]byte, string, error) {
	e, err := s.loadEmployee(ctx, username)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "employee_statement", "username="+e.Username)
	return buildEmployeeStatementPDF(e, s.now())
}

func (s DocsService) loadBooking(ctx context.Context, identifier string) (booking.Record, error) {
	if s.Loader != nil {
		return s.Loader(ctx, identifier)
	}
	return LookupService{Bookings: s.Bookings, RequestID: s.RequestID}.Find(ctx, identifier)
}

func (s DocsService) loadEmployee(ctx context.Context, username string) (models.Employee, error) {
	if s.EmployeeLoader != nil {
		return s.EmployeeLoader(ctx, username)
	}
	v, err := EmployeeService{Employees: s.Employees, Token: s.Token, RequestID: s.RequestID}.Get(ctx, username)
	if err != nil {
		return models.Employee{}, err
	}
	return v.Employee, nil
}

func buildBookingSlipPDF(rec booking.Record, generated time.Time) ([]byte, string, error) {
	pdf := newPDF("Modern Band - Booking Confirmation", generated)
	pdf.footer("Modern Band - Thank you for choosing us")
	pdf.AddPage()

	pdf.title("Modern Band")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, "Booking Confirmation", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated on "+generated.Format("January 2, 2006 3:04 PM"), "", 1, "C", false, 0, "")

	pdf.section("Booking")
	bookedOn := "-"
	if rec.CreatedAt != "" {
		bookedOn = utils.DateLabel(rec.CreatedAt)
	}
	pdf.keyValues(brandColor, [][2]string{
		{"Booking ID", safe(rec.ID.String(), "-")},
		{"Booked On", bookedOn},
	})

	pdf.section("Customer")
	pdf.keyValues(brandColor, [][2]string{
		{"Name", safe(rec.Name, "-")},
		{"Email", safe(rec.Email, "-")},
		{"Phone", safe(rec.Phone, "-")},
		{"Additional Phone", safe(rec.AdditionalPhone, "-")},
	})

	pdf.section("Event")
	pdf.keyValues(brandColor, [][2]string{
		{"Package", safe(rec.PackageType.Label(), "-")},
		{"Event Date", safe(utils.DateLabel(rec.Date), "-")},
		{"Venue", safe(rec.Venue, "-")},
		{"City", safe(rec.City, "-")},
	})

	if details := FeatureRows(rec.Draft); len(details) > 0 {
		pdf.section("Package Details")
		pdf.keyValues(brandColor, details)
	}

	sum := booking.Summarize(rec.Draft)
	pdf.section("Payment Summary")
	payment := [][2]string{{"Package Amount", utils.FormatRupeesPlain(sum.BaseAmount)}}
	if rec.Fireworks {
		payment = append(payment, [2]string{"Fireworks", utils.FormatRupeesPlain(sum.FireworksAmount)})
	}
	payment = append(payment,
		[2]string{"Total Amount", utils.FormatRupeesPlain(sum.TotalAmount)},
		[2]string{"Advance Paid", utils.FormatRupeesPlain(sum.AdvancePayment)},
		[2]string{"Remaining Amount", utils.FormatRupeesPlain(sum.RemainingAmount)},
	)
	pdf.keyValues(brandColor, payment)

	out, err := pdf.bytes()
	if err != nil {
		return nil, "", err
	}
	return out, "booking-" + utils.SafeFilenamePart(rec.ID.String()) + ".pdf", nil
}

// FeatureRows lists the step-3 answers that apply to the booking's package, as label/value pairs.
func FeatureRows(d booking.Draft) [][2]string {
	out := [][2]string{}
	for _, f := range booking.RelevantFields(d.PackageType, d.Toggles()) {
		switch f {
		case booking.FieldBandTime:
			out = append(out, [2]string{"Band Time", safe(string(d.BandTime), "Not specified")})
		case booking.FieldCustomTimeSlot:
			out = append(out, [2]string{"Custom Time Slot", safe(d.CustomTimeSlot, "-")})
		case booking.FieldNumberOfPeople:
			out = append(out, [2]string{"Number of People", strconv.Itoa(d.NumberOfPeople)})
		case booking.FieldNumberOfLights:
			out = append(out, [2]string{"Number of Lights", strconv.Itoa(d.NumberOfLights)})
		case booking.FieldGhodiForBaraat:
			out = append(out, [2]string{"Ghodi for Baraat", yesNo(d.GhodiForBaraat)})
		case booking.FieldGhodaBaggi:
			out = append(out, [2]string{"Ghoda Baggi", strconv.Itoa(d.GhodaBaggi)})
		case booking.FieldNumberOfDhols:
			out = append(out, [2]string{"Number of Dhols", strconv.Itoa(d.NumberOfDhols)})
		case booking.FieldFireworks:
			out = append(out, [2]string{"Fireworks", yesNo(d.Fireworks)})
		case booking.FieldFireworksAmount:
			out = append(out, [2]string{"Fireworks Amount", utils.FormatRupeesPlain(d.FireworksAmount)})
		case booking.FieldFlowerCanon:
			out = append(out, [2]string{"Flower Canon", yesNo(d.FlowerCanon)})
		case booking.FieldDoliForVidai:
			out = append(out, [2]string{"Doli for Vidai", yesNo(d.DoliForVidai)})
		case booking.FieldCustomization:
			if d.Customization != "" {
				out = append(out, [2]string{"Special Requests", d.Customization})
			}
		}
	}
	return out
}

var paymentsTable = pdfTable{
	Header: []string{"#", "Date", "Amount"},
	Widths: []float64{20, 82, 80},
	Align:  []string{"C", "L", "R"},
	Fill:   accentColor,
}

func buildEmployeeStatementPDF(e models.Employee, generated time.Time) ([]byte, string, error) {
	pdf := newPDF("Employee Details Report", generated)
	pdf.footer("Modern Band")
	pdf.AddPage()

	pdf.title("Employee Details Report")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+generated.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Employee: %s (%s)", safe(e.Name, "-"), safe(e.Username, "-")), "", 1, "C", false, 0, "")

	pdf.section("Personal Information")
	pdf.keyValues(accentColor, [][2]string{
		{"Name", safe(e.Name, "-")},
		{"Username", safe(e.Username, "-")},
		{"Email", safe(e.Email, "-")},
		{"Mobile Number", safe(e.MobileNumber, "-")},
		{"Address", safe(e.Address, "-")},
	})

	t := TotalsFor(e)
	pdf.section("Financial Information")
	pdf.keyValues(accentColor, [][2]string{
		{"Total Amount to be Paid", "Rs. " + utils.FormatAmount(t.TotalToBePaid)},
		{"Advance Payment", "Rs. " + utils.FormatAmount(t.Advance)},
		{"Total Paid (with advance)", "Rs. " + utils.FormatAmount(t.TotalWithAdvance)},
		{"Remaining Balance", "Rs. " + utils.FormatAmount(t.Remaining)},
	})

	pdf.section("Payment History")
	if len(e.Payments) == 0 {
		pdf.line("No payment records found")
	} else {
		rows := make([][]string, 0, len(e.Payments))
		for i, p := range e.Payments {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				safe(utils.DateLabel(p.Date), "-"),
				"Rs. " + utils.FormatAmount(p.AmountPaid.Float()),
			})
		}
		pdf.table(paymentsTable, rows)
	}

	out, err := pdf.bytes()
	if err != nil {
		return nil, "", err
	}
	return out, "employee-" + utils.SafeFilenamePart(e.Username) + "-details.pdf", nil
}
