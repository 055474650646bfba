package handlers

import (
	"net/http"
	"sync"

	"modernband/internal/http/middleware"
	"modernband/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "modern band server is running"})
}

// BackendHealth proxies the backend API's health endpoint.
func (h *Handler) BackendHealth(c *gin.Context) {
	if h.Backend == nil {
		respondError(c, http.StatusServiceUnavailable, "backend_unconfigured", "backend API is not configured", nil)
		return
	}
	body, err := h.Backend.Health(c.Request.Context())
	if err != nil {
		utils.LogError(middleware.GetRequestID(c), "system", "backend_health", err)
		c.JSON(http.StatusBadGateway, gin.H{"status": "down", "api_url": h.Env.APIURL, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "api_url": h.Env.APIURL, "backend": body})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
