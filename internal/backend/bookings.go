package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"modernband/internal/booking"
)

type createBookingResponse struct {
	Message string         `json:"message"`
	Booking booking.Record `json:"booking"`
}

const msgBookingNotConfirmed = "The booking service did not confirm the booking. Please try again."

// CreateBooking posts a booking payload to /book. A 2xx reply that does not carry
// the created booking counts as a failed submission.
func (c *Client) CreateBooking(ctx context.Context, payload booking.Draft) (booking.Record, error) {
	var resp createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/book", "", payload, &resp); err != nil {
		if errors.Is(err, ErrBadResponse) {
			return booking.Record{}, &APIError{Status: http.StatusBadGateway, Message: msgBookingNotConfirmed}
		}
		return booking.Record{}, err
	}
	if strings.TrimSpace(resp.Booking.ID.String()) == "" {
		return booking.Record{}, &APIError{Status: http.StatusBadGateway, Message: msgBookingNotConfirmed}
	}
	return resp.Booking, nil
}

// LookupQuery selects a booking by id or by contact number; BookingID wins when both are set.
type LookupQuery struct {
	BookingID     string
	ContactNumber string
}

type LookupResult struct {
	Booking  *booking.Record  `json:"booking"`
	Bookings []booking.Record `json:"bookings"`
}

// First returns the single booking, or the first of several.
func (r LookupResult) First() (booking.Record, bool) {
	if r.Booking != nil {
		return *r.Booking, true
	}
	if len(r.Bookings) > 0 {
		return r.Bookings[0], true
	}
	return booking.Record{}, false
}

func (c *Client) GetBooking(ctx context.Context, q LookupQuery) (LookupResult, error) {
	params := url.Values{}
	switch {
	case q.BookingID != "":
		params.Set("booking_id", q.BookingID)
	case q.ContactNumber != "":
		params.Set("contact_number", q.ContactNumber)
	default:
		return LookupResult{}, fmt.Errorf("lookup needs a booking id or contact number")
	}
	var out LookupResult
	if err := c.do(ctx, http.MethodGet, "/booking?"+params.Encode(), "", nil, &out); err != nil {
		return LookupResult{}, err
	}
	return out, nil
}

// ListBookings accepts {bookings}, {data}, {results} or a bare array.
func (c *Client) ListBookings(ctx context.Context) ([]booking.Record, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/bookings", "", nil, &raw); err != nil {
		return nil, err
	}
	return decodeBookingList(raw)
}

func decodeBookingList(raw json.RawMessage) ([]booking.Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return []booking.Record{}, nil
	}
	if raw[0] == '[' {
		var list []booking.Record
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode bookings: %w", err)
		}
		return list, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	for _, key := range []string{"bookings", "data", "results"} {
		if inner, ok := envelope[key]; ok {
			return decodeBookingList(inner)
		}
	}
	return []booking.Record{}, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), "", nil, nil)
}

// DeletePastBookings removes bookings whose date has passed and returns how many went.
func (c *Client) DeletePastBookings(ctx context.Context) (int, error) {
	var out struct {
		DeletedCount int `json:"deleted_count"`
	}
	if err := c.do(ctx, http.MethodDelete, "/bookings/past", "", nil, &out); err != nil {
		return 0, err
	}
	return out.DeletedCount, nil
}
