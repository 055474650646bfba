package services

import (
	"context"

	"modernband/internal/backend"
	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/domain/models"

	"github.com/stretchr/testify/mock"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateBooking(ctx context.Context, payload booking.Draft) (booking.Record, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(booking.Record), args.Error(1)
}

type fakeBookings struct {
	records   []booking.Record
	listErr   error
	lookup    backend.LookupResult
	lookupErr error
	lastQuery backend.LookupQuery
	deleted   []string
	pastCount int
}

func (f *fakeBookings) GetBooking(_ context.Context, q backend.LookupQuery) (backend.LookupResult, error) {
	f.lastQuery = q
	return f.lookup, f.lookupErr
}

func (f *fakeBookings) ListBookings(context.Context) ([]booking.Record, error) {
	return f.records, f.listErr
}

func (f *fakeBookings) DeleteBooking(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookings) DeletePastBookings(context.Context) (int, error) {
	return f.pastCount, nil
}

type fakeEmployees struct {
	list      []models.Employee
	listErr   error
	saved     []models.EmployeeRequest
	payments  []models.PaymentRequest
	lastToken string
}

func (f *fakeEmployees) ListEmployees(_ context.Context, token string) ([]models.Employee, error) {
	f.lastToken = token
	return f.list, f.listErr
}

func (f *fakeEmployees) GetEmployee(_ context.Context, token, username string) (models.Employee, error) {
	f.lastToken = token
	for _, e := range f.list {
		if e.Username == username {
			return e, nil
		}
	}
	return models.Employee{}, &backend.APIError{Status: 404, Message: "Employee not found"}
}

func (f *fakeEmployees) SaveEmployee(_ context.Context, token string, req models.EmployeeRequest) (models.Employee, error) {
	f.lastToken = token
	f.saved = append(f.saved, req)
	return models.Employee{Name: req.Name, Username: req.Username}, nil
}

func (f *fakeEmployees) DeleteEmployee(_ context.Context, token, _ string) error {
	f.lastToken = token
	return nil
}

func (f *fakeEmployees) AddPayment(_ context.Context, token, _ string, req models.PaymentRequest) (models.Payment, error) {
	f.lastToken = token
	f.payments = append(f.payments, req)
	return models.Payment{AmountPaid: domain.Amount(req.AmountPaid), Date: req.Date}, nil
}

func (f *fakeEmployees) DeletePayment(_ context.Context, token, _, _ string) error {
	f.lastToken = token
	return nil
}

type fakeAdmins struct {
	admin   models.Admin
	err     error
	created []models.AdminRequest
}

func (f *fakeAdmins) AdminLogin(context.Context, string, string) (models.Admin, error) {
	return f.admin, f.err
}

func (f *fakeAdmins) CreateAdmin(_ context.Context, _ string, req models.AdminRequest) error {
	f.created = append(f.created, req)
	return nil
}
