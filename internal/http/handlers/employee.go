package handlers

import (
	"net/http"
	"strings"

	"modernband/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /employee?username= lets an employee see their own payment statement.
func (h *Handler) EmployeePage(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	data := gin.H{"Username": username}
	status := http.StatusOK
	if username != "" {
		v, err := h.employeeService(c).Get(c.Request.Context(), username)
		switch {
		case err == nil:
			data["Employee"] = v
		case domain.IsNotFound(err):
			data["Error"] = "Employee not found. Please check the username."
		default:
			data["Error"] = err.Error()
			status = http.StatusBadGateway
		}
	}
	c.HTML(status, "employee.html", h.page(c, "Employee Details", "employee", data))
}

// GET /api/employee/:username
func (h *Handler) EmployeeDetails(c *gin.Context) {
	v, err := h.employeeService(c).Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// GET /api/employee/:username/statement.pdf
func (h *Handler) EmployeeStatementPDF(c *gin.Context) {
	pdf, filename, err := h.docsService(c).EmployeeStatement(c.Request.Context(), c.Param("username"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sendPDF(c, pdf, filename)
}
