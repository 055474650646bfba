package handlers

import (
	"net/http"
	"strings"

	"modernband/internal/domain/models"
	"modernband/internal/http/middleware"
	"modernband/internal/services"

	"github.com/gin-gonic/gin"
)

func adminFrom(c *gin.Context) (models.Admin, bool) {
	return middleware.CurrentAdmin(c)
}

// GET /admin/api/employees
func (h *Handler) ListEmployees(c *gin.Context) {
	f := services.EmployeeFilter{
		Name:     strings.TrimSpace(c.Query("name")),
		Username: strings.TrimSpace(c.Query("username")),
		Phone:    strings.TrimSpace(c.Query("phone")),
	}
	list, err := h.employeeService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	all := make([]models.Employee, 0, len(list))
	for _, v := range list {
		all = append(all, v.Employee)
	}
	c.JSON(http.StatusOK, gin.H{
		"employees": list,
		"count":     len(list),
		"totals":    services.SumEmployeeTotals(all),
	})
}

// GET /admin/api/employees/:username
func (h *Handler) GetEmployee(c *gin.Context) {
	v, err := h.employeeService(c).Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /admin/api/employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req models.EmployeeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	e, err := h.employeeService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Employee registered successfully", "employee": e})
}

// DELETE /admin/api/employees/:username
func (h *Handler) DeleteEmployee(c *gin.Context) {
	username := c.Param("username")
	if err := h.employeeService(c).Delete(c.Request.Context(), username); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully", "username": username})
}

// POST /admin/api/employees/:username/payments
func (h *Handler) AddEmployeePayment(c *gin.Context) {
	var req models.PaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := h.employeeService(c).AddPayment(c.Request.Context(), c.Param("username"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment added successfully", "payment": p})
}

// DELETE /admin/api/employees/:username/payments/:paymentId
func (h *Handler) DeleteEmployeePayment(c *gin.Context) {
	if err := h.employeeService(c).DeletePayment(c.Request.Context(), c.Param("username"), c.Param("paymentId")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
