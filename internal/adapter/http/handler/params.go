package handler

import (
	"strconv"

	"rwa-ledger/internal/adapter/http/dto"
	"rwa-ledger/internal/adapter/http/middleware"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// Each helper writes the error response itself and reports false, so
// handlers simply return.

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	dto.SanitizeStruct(req)
	return true
}

func caller(c *gin.Context) (domain.AccountID, bool) {
	account, ok := middleware.CallerAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return account, true
}

func parseAccount(c *gin.Context, field, raw string) (domain.AccountID, bool) {
	account, err := domain.ParseAccount(raw)
	if err != nil {
		response.Error(c, apperror.Validation(field+": "+err.Error()))
		return "", false
	}
	return account, true
}

func accountParam(c *gin.Context) (domain.AccountID, bool) {
	return parseAccount(c, "account", c.Param("account"))
}

func uintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperror.Validation(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

func assetIDParam(c *gin.Context) (domain.AssetID, bool) {
	id, ok := uintParam(c, "id")
	return domain.AssetID(id), ok
}

func requestIDParam(c *gin.Context) (domain.RequestID, bool) {
	id, ok := uintParam(c, "id")
	return domain.RequestID(id), ok
}

// parseAmount reads a validated amount field.
func parseAmount(c *gin.Context, field, raw string) (amount.Amount, bool) {
	amt, err := amount.Parse(raw)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount(field+" must be a base-10 integer"))
		return amount.Amount{}, false
	}
	return amt, true
}

func queryUint(c *gin.Context, name string, def uint64) (uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation(name+" must be a non-negative integer"))
		return 0, false
	}
	return v, true
}
