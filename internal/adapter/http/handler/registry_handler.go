package handler

import (
	"context"
	"strings"

	"rwa-ledger/internal/adapter/http/dto"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler serves asset records and their lifecycle.
type RegistryHandler struct {
	registry ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registry ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// bindAsset converts a registration body into service input.
func bindAsset(c *gin.Context) (ports.RegisterAssetInput, bool) {
	var req dto.RegisterAssetRequest
	if !bindJSON(c, &req) {
		return ports.RegisterAssetInput{}, false
	}
	value, ok := parseAmount(c, "value", req.Value)
	if !ok {
		return ports.RegisterAssetInput{}, false
	}
	return ports.RegisterAssetInput{
		AssetType:       domain.NormalizeAssetType(req.AssetType),
		ExternalAssetID: req.ExternalAssetID,
		Value:           value,
		Tag:             req.Tag,
		Metadata:        req.Metadata,
	}, true
}

// RegisterAsset handles POST /v1/assets.
func (h *RegistryHandler) RegisterAsset(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	in, ok := bindAsset(c)
	if !ok {
		return
	}
	asset, err := h.registry.RegisterAsset(c.Request.Context(), actor, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, asset)
}

// VerifyAsset handles POST /v1/assets/:id/verification.
func (h *RegistryHandler) VerifyAsset(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.VerifyAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.registry.VerifyAsset(c.Request.Context(), actor, id, *req.Approve, req.Proof)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, asset)
}

// MarkAsTokenized handles POST /v1/assets/:id/mark-tokenized.
func (h *RegistryHandler) MarkAsTokenized(c *gin.Context) {
	h.transition(c, h.registry.MarkAsTokenized)
}

// MarkAsRedeemed handles POST /v1/assets/:id/mark-redeemed.
func (h *RegistryHandler) MarkAsRedeemed(c *gin.Context) {
	h.transition(c, h.registry.MarkAsRedeemed)
}

func (h *RegistryHandler) transition(c *gin.Context, fn func(context.Context, domain.AccountID, domain.AssetID) (*domain.Asset, error)) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	asset, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, asset)
}

// GetAsset handles GET /v1/assets/:id.
func (h *RegistryHandler) GetAsset(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	asset, err := h.registry.GetAsset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, asset)
}

// ListAssets handles GET /v1/assets. It filters by ?owner= or by
// ?status=pending|verified|tokenized; exactly one filter is required.
func (h *RegistryHandler) ListAssets(c *gin.Context) {
	ctx := c.Request.Context()
	owner := c.Query("owner")
	status := strings.ToLower(c.Query("status"))

	var (
		assets []domain.Asset
		err    error
	)
	switch {
	case owner != "" && status != "":
		response.Error(c, apperror.Validation("use either owner or status, not both"))
		return
	case owner != "":
		account, ok := parseAccount(c, "owner", owner)
		if !ok {
			return
		}
		assets, err = h.registry.GetAssetsByOwner(ctx, account)
	case status == "pending":
		assets, err = h.registry.GetPendingAssets(ctx)
	case status == "verified":
		assets, err = h.registry.GetVerifiedAssets(ctx)
	case status == "tokenized":
		assets, err = h.registry.GetTokenizedAssets(ctx)
	default:
		response.Error(c, apperror.Validation("owner or status (pending, verified, tokenized) is required"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	response.OK(c, assets)
}

// CountAssets handles GET /v1/registry/count.
func (h *RegistryHandler) CountAssets(c *gin.Context) {
	n, err := h.registry.GetTotalAssets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CountResponse{Count: n})
}

// IsAssetVerified handles GET /v1/assets/:id/verified.
func (h *RegistryHandler) IsAssetVerified(c *gin.Context) {
	h.flag(c, h.registry.IsAssetVerified)
}

// IsAssetTokenized handles GET /v1/assets/:id/tokenized.
func (h *RegistryHandler) IsAssetTokenized(c *gin.Context) {
	h.flag(c, h.registry.IsAssetTokenized)
}

func (h *RegistryHandler) flag(c *gin.Context, fn func(context.Context, domain.AssetID) (bool, error)) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	v, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AssetFlagResponse{AssetID: id, Value: v})
}
