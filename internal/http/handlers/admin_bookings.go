package handlers

import (
	"net/http"
	"strings"

	"modernband/internal/booking"
	"modernband/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingFilterFromQuery(c *gin.Context) services.BookingFilter {
	month := queryInt(c, "month")
	if month < 1 || month > 12 {
		month = 0
	}
	return services.BookingFilter{
		Name:       strings.TrimSpace(c.Query("name")),
		Phone:      strings.TrimSpace(c.Query("phone")),
		Month:      month,
		Date:       strings.TrimSpace(c.Query("date")),
		Package:    strings.TrimSpace(c.Query("package")),
		ActiveOnly: queryBool(c, "active"),
	}
}

// GET /admin/api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	token := ""
	if admin, ok := adminFrom(c); ok {
		token = admin.BearerToken()
	}
	stats, err := h.reportsService(c).Dashboard(c.Request.Context(), token)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /admin/api/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	f := bookingFilterFromQuery(c)
	records, packageTypes, err := h.reportsService(c).ListBookings(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	if records == nil {
		records = []booking.Record{}
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":     records,
		"count":        len(records),
		"totalAmount":  total,
		"packageTypes": packageTypes,
		"filters":      f.Describe(),
	})
}

// GET /admin/api/bookings/report.pdf
func (h *Handler) BookingsReportPDF(c *gin.Context) {
	pdf, filename, err := h.reportsService(c).BookingsReport(c.Request.Context(), bookingFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}

// DELETE /admin/api/bookings/:id
func (h *Handler) DeleteBooking(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		RespondError(c, http.StatusBadRequest, "invalid booking id", nil)
		return
	}
	if err := h.reportsService(c).DeleteBooking(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "id": id})
}

// DELETE /admin/api/bookings/past
func (h *Handler) DeletePastBookings(c *gin.Context) {
	n, err := h.reportsService(c).DeletePastBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Past bookings deleted successfully", "deleted_count": n})
}
