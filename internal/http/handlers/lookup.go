package handlers

import (
	"net/http"
	"strings"

	"modernband/internal/booking"
	"modernband/internal/domain"
	"modernband/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingDetails struct {
	Booking  booking.Record  `json:"booking"`
	Package  string          `json:"packageLabel"`
	Features [][2]string     `json:"features"`
	Summary  booking.Summary `json:"summary"`
}

func detailsOf(rec booking.Record) bookingDetails {
	return bookingDetails{
		Booking:  rec,
		Package:  rec.PackageType.Label(),
		Features: services.FeatureRows(rec.Draft),
		Summary:  booking.Summarize(rec.Draft),
	}
}

// GET /check-booking
func (h *Handler) CheckBookingPage(c *gin.Context) {
	identifier := strings.TrimSpace(c.Query("identifier"))
	data := gin.H{"Identifier": identifier}
	status := http.StatusOK
	if _, asked := c.GetQuery("identifier"); asked {
		rec, err := h.lookupService(c).Find(c.Request.Context(), identifier)
		switch {
		case err == nil:
			data["Details"] = detailsOf(rec)
		case domain.IsNotFound(err):
			data["Error"] = "Booking not found. Please check your Booking ID or Phone Number."
		case domain.IsValidation(err):
			data["Error"] = "Please enter a Booking ID or Phone Number"
		default:
			data["Error"] = err.Error()
			status = http.StatusBadGateway
		}
	}
	c.HTML(status, "check_booking.html", h.page(c, "Check Booking", "check", data))
}

// GET /api/booking?identifier=
func (h *Handler) LookupBooking(c *gin.Context) {
	rec, err := h.lookupService(c).Find(c.Request.Context(), c.Query("identifier"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detailsOf(rec))
}

// GET /api/booking/slip?identifier=
func (h *Handler) BookingSlipPDF(c *gin.Context) {
	pdf, filename, err := h.docsService(c).BookingSlip(c.Request.Context(), c.Query("identifier"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}
