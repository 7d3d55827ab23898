package handler

import (
	"net/http"

	"rwa-ledger/internal/adapter/http/dto"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves caller introspection. Tokens are issued out of band
// by rwactl.
type AuthHandler struct {
	access ports.AccessService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(access ports.AccessService) *AuthHandler {
	return &AuthHandler{access: access}
}

// WhoAmI handles GET /v1/me.
func (h *AuthHandler) WhoAmI(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}
	roles, err := h.access.Capabilities(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CallerResponse{Account: account, Roles: roles})
}

// HealthCheck handles GET /health: a deep check of every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
