package handlers

import (
	"errors"
	"net/http"

	"modernband/internal/domain/models"
	"modernband/internal/http/middleware"
	"modernband/internal/session"
	"modernband/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /admin/api/login
func (h *Handler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	admin, err := h.adminService(c).Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := h.Sessions.Set(c.Writer, admin); err != nil {
		utils.LogError(middleware.GetRequestID(c), "admin", "session_set", err)
		RespondError(c, http.StatusInternalServerError, "could not start session", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": admin.ToPublic()})
}

// POST /admin/api/logout
func (h *Handler) AdminLogout(c *gin.Context) {
	h.Sessions.Clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GET /admin/api/session reports whether the cookie holds a live admin session.
func (h *Handler) AdminSession(c *gin.Context) {
	admin, err := h.Sessions.Get(c.Request)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			h.Sessions.Clear(c.Writer)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "admin": admin.ToPublic()})
}

// POST /admin/api/admins
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req models.AdminRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	admin, _ := middleware.CurrentAdmin(c)
	if err := h.adminService(c).CreateAdmin(c.Request.Context(), admin.BearerToken(), req); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin created successfully"})
}
