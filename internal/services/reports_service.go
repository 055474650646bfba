package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"modernband/internal/backend"
	"modernband/internal/booking"
	"modernband/internal/utils"
)

// BookingFilter narrows the admin bookings list. Zero values match everything.
type BookingFilter struct {
	Name       string
	Phone      string
	Month      int // 1-12, any year
	Date       string
	Package    string
	ActiveOnly bool
}

func (f BookingFilter) Match(r booking.Record, today time.Time) bool {
	if !utils.ContainsFold(r.Name, f.Name) {
		return false
	}
	if f.Phone != "" && !strings.Contains(r.Phone, strings.TrimSpace(f.Phone)) {
		return false
	}
	if f.Package != "" && string(r.PackageType) != f.Package {
		return false
	}

	date, dateErr := utils.ParseDate(r.Date)
	if f.Month > 0 && (dateErr != nil || int(date.Month()) != f.Month) {
		return false
	}
	if f.Date != "" && (dateErr != nil || utils.FormatDate(date) != utils.DateOnly(f.Date)) {
		return false
	}
	if f.ActiveOnly && dateErr == nil && date.Before(utils.StartOfDay(today)) {
		return false
	}
	return true
}

func (f BookingFilter) Apply(records []booking.Record, today time.Time) []booking.Record {
	out := make([]booking.Record, 0, len(records))
	for _, r := range records {
		if f.Match(r, today) {
			out = append(out, r)
		}
	}
	return out
}

// Describe lists the applied filters for the report header.
func (f BookingFilter) Describe() []string {
	out := []string{}
	if f.Name != "" {
		out = append(out, "Name: "+f.Name)
	}
	if f.Phone != "" {
		out = append(out, "Phone: "+f.Phone)
	}
	if f.Month > 0 {
		out = append(out, "Month: "+time.Month(f.Month).String())
	}
	if f.Date != "" {
		out = append(out, "Date: "+utils.DateLabel(f.Date))
	}
	if f.Package != "" {
		out = append(out, "Package: "+f.Package)
	}
	if f.ActiveOnly {
		out = append(out, "Showing active bookings only")
	}
	return out
}

// PackageTypesOf returns the distinct package types present, sorted, for the filter dropdown.
func PackageTypesOf(records []booking.Record) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range records {
		p := string(r.PackageType)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

type ReportsService struct {
	Bookings  BookingDirectory
	Employees EmployeeDirectory
	RequestID string
	Now       func() time.Time
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListBookings returns the filtered bookings plus the package types of the unfiltered list.
func (s ReportsService) ListBookings(ctx context.Context, f BookingFilter) ([]booking.Record, []string, error) {
	all, err := s.Bookings.ListBookings(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "reports", "list_bookings", err)
		return nil, nil, backend.AsDomain(err)
	}
	return f.Apply(all, s.now()), PackageTypesOf(all), nil
}

func (s ReportsService) BookingsReport(ctx context.Context, f BookingFilter) ([]byte, string, error) {
	records, _, err := s.ListBookings(ctx, f)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "bookings_pdf", fmt.Sprintf("rows=%d", len(records)))
	return RenderBookingsReport(records, f, s.now())
}

func (s ReportsService) DeleteBooking(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("delete booking: empty id")
	}
	if err := s.Bookings.DeleteBooking(ctx, id); err != nil {
		utils.LogError(s.RequestID, "reports", "delete_booking", err)
		return backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "reports", "delete_booking", "booking_id="+id)
	return nil
}

func (s ReportsService) DeletePastBookings(ctx context.Context) (int, error) {
	n, err := s.Bookings.DeletePastBookings(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "reports", "delete_past", err)
		return 0, backend.AsDomain(err)
	}
	utils.LogEvent(s.RequestID, "reports", "delete_past", fmt.Sprintf("deleted=%d", n))
	return n, nil
}

// DashboardStats feeds the admin dashboard.
type DashboardStats struct {
	TotalBookings    int            `json:"totalBookings"`
	ThisMonth        int            `json:"thisMonth"`
	Upcoming         int            `json:"upcoming"`
	Monthly          [12]int        `json:"monthly"`
	Year             int            `json:"year"`
	TotalEmployees   int            `json:"totalEmployees"`
	EmployeeTotals   EmployeeTotals `json:"employeeTotals"`
	EmployeesSkipped bool           `json:"employeesSkipped,omitempty"`
}

// ComputeDashboard counts bookings by event date. Events dated today count as upcoming.
func ComputeDashboard(records []booking.Record, now time.Time) DashboardStats {
	today := utils.StartOfDay(now)
	stats := DashboardStats{TotalBookings: len(records), Year: today.Year()}
	for _, r := range records {
		d, err := utils.ParseDate(r.Date)
		if err != nil {
			continue
		}
		if d.Year() == today.Year() {
			stats.Monthly[d.Month()-1]++
			if d.Month() == today.Month() {
				stats.ThisMonth++
			}
		}
		if !d.Before(today) {
			stats.Upcoming++
		}
	}
	return stats
}

// Dashboard combines booking counts with employee payment totals. Employee figures
// are left empty when that call fails so the booking numbers still show.
func (s ReportsService) Dashboard(ctx context.Context, token string) (DashboardStats, error) {
	records, err := s.Bookings.ListBookings(ctx)
	if err != nil {
		utils.LogError(s.RequestID, "reports", "dashboard", err)
		return DashboardStats{}, backend.AsDomain(err)
	}
	stats := ComputeDashboard(records, s.now())

	if s.Employees == nil {
		return stats, nil
	}
	employees, err := s.Employees.ListEmployees(ctx, token)
	if err != nil {
		utils.LogError(s.RequestID, "reports", "dashboard_employees", err)
		stats.EmployeesSkipped = true
		return stats, nil
	}
	stats.TotalEmployees = len(employees)
	stats.EmployeeTotals = SumEmployeeTotals(employees)
	return stats, nil
}
