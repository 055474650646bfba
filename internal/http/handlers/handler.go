package handlers

import (
	"context"
	"time"

	"modernband/internal/booking"
	"modernband/internal/config"
	"modernband/internal/http/middleware"
	"modernband/internal/services"
	"modernband/internal/session"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the backend API answers.
type HealthChecker interface {
	Health(ctx context.Context) (map[string]any, error)
}

// Deps are the long-lived collaborators shared by all handlers. Services are
// built per request so they carry the request id.
type Deps struct {
	Env       config.Env
	Gateway   services.BookingGateway
	Bookings  services.BookingDirectory
	Employees services.EmployeeDirectory
	Admins    services.AdminDirectory
	Backend   HealthChecker
	Wizards   services.WizardStore
	Validator *booking.Validator
	Sessions  session.Store
	Media     services.MediaBucket
	Now       func() time.Time
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Validator == nil {
		d.Validator = booking.NewValidator(d.Now)
	}
	return &Handler{Deps: d}
}

func (h *Handler) wizardService(c *gin.Context) services.WizardService {
	return services.WizardService{
		Store:     h.Wizards,
		Gateway:   h.Gateway,
		Validator: h.Validator,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) lookupService(c *gin.Context) services.LookupService {
	return services.LookupService{Bookings: h.Bookings, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  h.Bookings,
		Employees: h.Employees,
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
}

func (h *Handler) reportsService(c *gin.Context) services.ReportsService {
	return services.ReportsService{
		Bookings:  h.Bookings,
		Employees: h.Employees,
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
}

// employeeService uses the signed-in admin's token when there is one.
func (h *Handler) employeeService(c *gin.Context) services.EmployeeService {
	svc := services.EmployeeService{Employees: h.Employees, RequestID: middleware.GetRequestID(c)}
	if admin, ok := middleware.CurrentAdmin(c); ok {
		svc.Token = admin.BearerToken()
	}
	return svc
}

func (h *Handler) adminService(c *gin.Context) services.AdminService {
	return services.AdminService{Admins: h.Admins, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) enquiryService(c *gin.Context) services.EnquiryService {
	return services.EnquiryService{WhatsAppNumber: h.Env.WhatsAppNumber, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) galleryService(c *gin.Context) services.GalleryService {
	svc := services.GalleryService{Prefix: h.Env.R2.Prefix, RequestID: middleware.GetRequestID(c)}
	if h.Media != nil {
		svc.Bucket = h.Media
	}
	return svc
}
