package services

import (
	"context"
	"errors"

	"modernband/internal/backend"
	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/domain/models"
)

// BookingGateway submits a finished booking.
type BookingGateway interface {
	CreateBooking(ctx context.Context, payload booking.Draft) (booking.Record, error)
}

type BookingDirectory interface {
	GetBooking(ctx context.Context, q backend.LookupQuery) (backend.LookupResult, error)
	ListBookings(ctx context.Context) ([]booking.Record, error)
	DeleteBooking(ctx context.Context, id string) error
	DeletePastBookings(ctx context.Context) (int, error)
}

type EmployeeDirectory interface {
	ListEmployees(ctx context.Context, token string) ([]models.Employee, error)
	GetEmployee(ctx context.Context, token, username string) (models.Employee, error)
	SaveEmployee(ctx context.Context, token string, req models.EmployeeRequest) (models.Employee, error)
	DeleteEmployee(ctx context.Context, token, username string) error
	AddPayment(ctx context.Context, token, username string, req models.PaymentRequest) (models.Payment, error)
	DeletePayment(ctx context.Context, token, username, paymentID string) error
}

type AdminDirectory interface {
	AdminLogin(ctx context.Context, username, password string) (models.Admin, error)
	CreateAdmin(ctx context.Context, token string, req models.AdminRequest) error
}

// submissionError keeps the backend's message, or a generic one when the backend was unreachable.
func submissionError(err error) domain.UpstreamError {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return domain.UpstreamError{Status: apiErr.Status, Msg: apiErr.Message, Err: err}
	}
	return domain.UpstreamError{Msg: "Failed to submit booking. Please try again.", Err: err}
}
