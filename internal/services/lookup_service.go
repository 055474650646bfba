package services

import (
	"context"
	"strings"

	"modernband/internal/backend"
	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/utils"
)

// LookupService finds a customer's booking by id or by the phone number used to book.
type LookupService struct {
	Bookings  BookingDirectory
	RequestID string
}

// Find treats a ten-digit identifier as a phone number and anything else as a booking id.
// When a phone matches several bookings the first one wins.
func (s LookupService) Find(ctx context.Context, identifier string) (booking.Record, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return booking.Record{}, domain.ValidationError{Field: "identifier", Msg: "Please enter a Booking ID or Phone Number"}
	}

	q := backend.LookupQuery{BookingID: identifier}
	if utils.IsTenDigitPhone(identifier) {
		q = backend.LookupQuery{ContactNumber: identifier}
	}

	res, err := s.Bookings.GetBooking(ctx, q)
	if err != nil {
		utils.LogError(s.RequestID, "lookup", "get_booking", err)
		return booking.Record{}, backend.AsDomain(err)
	}
	rec, ok := res.First()
	if !ok {
		return booking.Record{}, domain.NotFoundError{Resource: "booking"}
	}
	utils.LogEvent(s.RequestID, "lookup", "found", "booking_id="+rec.ID.String())
	return rec, nil
}
