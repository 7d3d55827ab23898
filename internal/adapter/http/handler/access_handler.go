package handler

import (
	"rwa-ledger/internal/adapter/http/dto"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccessHandler serves role administration and the KYC registry.
type AccessHandler struct {
	access   ports.AccessService
	identity ports.IdentityService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(access ports.AccessService, identity ports.IdentityService) *AccessHandler {
	return &AccessHandler{access: access, identity: identity}
}

func (h *AccessHandler) bindRole(c *gin.Context) (domain.AccountID, domain.AccountID, domain.Role, bool) {
	actor, ok := caller(c)
	if !ok {
		return "", "", 0, false
	}
	var req dto.RoleRequest
	if !bindJSON(c, &req) {
		return "", "", 0, false
	}
	account, ok := parseAccount(c, "account", req.Account)
	if !ok {
		return "", "", 0, false
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return "", "", 0, false
	}
	return actor, account, role, true
}

// GrantRole handles POST /v1/roles/grants.
func (h *AccessHandler) GrantRole(c *gin.Context) {
	actor, account, role, ok := h.bindRole(c)
	if !ok {
		return
	}
	roles, err := h.access.GrantRole(c.Request.Context(), actor, account, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RolesResponse{Account: account, Roles: roles})
}

// RevokeRole handles POST /v1/roles/revocations.
func (h *AccessHandler) RevokeRole(c *gin.Context) {
	actor, account, role, ok := h.bindRole(c)
	if !ok {
		return
	}
	roles, err := h.access.RevokeRole(c.Request.Context(), actor, account, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RolesResponse{Account: account, Roles: roles})
}

// ListRoleGrants handles GET /v1/roles.
func (h *AccessHandler) ListRoleGrants(c *gin.Context) {
	grants, err := h.access.ListRoleGrants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grants)
}

// Capabilities handles GET /v1/accounts/:account/roles.
func (h *AccessHandler) Capabilities(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	roles, err := h.access.Capabilities(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RolesResponse{Account: account, Roles: roles})
}

// HasRole handles GET /v1/accounts/:account/roles/:role.
func (h *AccessHandler) HasRole(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	has, err := h.access.HasRole(c.Request.Context(), account, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.HasRoleResponse{Account: account, Role: role, HasRole: has})
}

// SetVerified handles PUT /v1/identities/:account.
func (h *AccessHandler) SetVerified(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	account, ok := accountParam(c)
	if !ok {
		return
	}
	var req dto.IdentityRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.identity.SetVerified(c.Request.Context(), actor, account, *req.Verified)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, record)
}

// IsVerified handles GET /v1/identities/:account.
func (h *AccessHandler) IsVerified(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	verified, err := h.identity.IsVerified(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.IdentityResponse{Account: account, Verified: verified})
}
