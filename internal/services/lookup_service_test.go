package services

import (
	"context"
	"testing"

	"modernband/internal/backend"
	"modernband/internal/booking"
	"modernband/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByPhoneOrID(t *testing.T) {
	rec := booking.Record{ID: "BK-9", Draft: booking.Draft{Name: "Asha"}}
	dir := &fakeBookings{lookup: backend.LookupResult{Bookings: []booking.Record{rec, {ID: "BK-10"}}}}
	svc := LookupService{Bookings: dir}

	got, err := svc.Find(context.Background(), " 9876543210 ")
	require.NoError(t, err)
	assert.Equal(t, "BK-9", got.ID.String())
	assert.Equal(t, backend.LookupQuery{ContactNumber: "9876543210"}, dir.lastQuery)

	_, err = svc.Find(context.Background(), "98765")
	require.NoError(t, err)
	assert.Equal(t, backend.LookupQuery{BookingID: "98765"}, dir.lastQuery)
}

func TestLookupEmptyIdentifier(t *testing.T) {
	_, err := LookupService{Bookings: &fakeBookings{}}.Find(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "identifier: Please enter a Booking ID or Phone Number", err.Error())
}

func TestLookupNotFound(t *testing.T) {
	svc := LookupService{Bookings: &fakeBookings{}}
	_, err := svc.Find(context.Background(), "BK-404")
	assert.True(t, domain.IsNotFound(err))

	svc = LookupService{Bookings: &fakeBookings{lookupErr: &backend.APIError{Status: 404, Message: "Booking not found"}}}
	_, err = svc.Find(context.Background(), "BK-404")
	assert.True(t, domain.IsNotFound(err))
}
