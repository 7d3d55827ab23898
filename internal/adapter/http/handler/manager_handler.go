package handler

import (
	"context"

	"rwa-ledger/internal/adapter/http/dto"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultEventPage = 100
	maxEventPage     = 1000
)

// ManagerHandler serves the orchestration facade: the asset-type allowlist,
// verifiers, compound flows, fractional issuance and the dashboard views.
type ManagerHandler struct {
	manager ports.ManagerService
}

// NewManagerHandler creates a new ManagerHandler.
func NewManagerHandler(manager ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{manager: manager}
}

// AddAssetType handles POST /v1/asset-types.
func (h *ManagerHandler) AddAssetType(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var req dto.AssetTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.manager.AddAssetType(c.Request.Context(), actor, domain.NormalizeAssetType(req.Type)); err != nil {
		response.Error(c, err)
		return
	}
	h.GetSupportedAssetTypes(c)
}

// RemoveAssetType handles DELETE /v1/asset-types/:type.
func (h *ManagerHandler) RemoveAssetType(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	t := domain.NormalizeAssetType(c.Param("type"))
	if err := h.manager.RemoveAssetType(c.Request.Context(), actor, t); err != nil {
		response.Error(c, err)
		return
	}
	h.GetSupportedAssetTypes(c)
}

// GetSupportedAssetTypes handles GET /v1/asset-types.
func (h *ManagerHandler) GetSupportedAssetTypes(c *gin.Context) {
	types, err := h.manager.GetSupportedAssetTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if types == nil {
		types = []domain.SupportedAssetType{}
	}
	response.OK(c, types)
}

// RegisterAsset handles POST /v1/manager/assets. Unlike the registry
// endpoint it refuses types outside the allowlist.
func (h *ManagerHandler) RegisterAsset(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	in, ok := bindAsset(c)
	if !ok {
		return
	}
	asset, err := h.manager.RegisterAssetWithValidation(c.Request.Context(), actor, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, asset)
}

// RegisterVerifier handles POST /v1/verifiers.
func (h *ManagerHandler) RegisterVerifier(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var req dto.VerifierRequest
	if !bindJSON(c, &req) {
		return
	}
	account, ok := parseAccount(c, "account", req.Account)
	if !ok {
		return
	}
	info, err := h.manager.RegisterVerifier(c.Request.Context(), actor, account, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, info)
}

// GetVerifiers handles GET /v1/verifiers.
func (h *ManagerHandler) GetVerifiers(c *gin.Context) {
	verifiers, err := h.manager.GetVerifiers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if verifiers == nil {
		verifiers = []domain.VerifierInfo{}
	}
	response.OK(c, verifiers)
}

// VerifyAndTokenize handles POST /v1/assets/:id/verify-and-tokenize.
func (h *ManagerHandler) VerifyAndTokenize(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.VerifyAndTokenizeRequest
	if !bindJSON(c, &req) {
		return
	}
	var tokenAmount amount.Amount
	if *req.Approve {
		if req.TokenAmount == "" {
			response.Error(c, apperror.Validation("token_amount is required when approving"))
			return
		}
		if tokenAmount, ok = parseAmount(c, "token_amount", req.TokenAmount); !ok {
			return
		}
	}
	view, err := h.manager.VerifyAndTokenize(c.Request.Context(), actor, id, *req.Approve, req.Proof, tokenAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// ProcessRedemptionFlow handles POST /v1/redemptions/:id/complete.
func (h *ManagerHandler) ProcessRedemptionFlow(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := requestIDParam(c)
	if !ok {
		return
	}
	r, err := h.manager.ProcessRedemptionFlow(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, r)
}

// TokenizeAsset handles POST /v1/assets/:id/fractions.
func (h *ManagerHandler) TokenizeAsset(c *gin.Context) {
	h.fractional(c, h.manager.TokenizeAsset, true)
}

// RedeemTokens handles POST /v1/assets/:id/fractions/redeem.
func (h *ManagerHandler) RedeemTokens(c *gin.Context) {
	h.fractional(c, h.manager.RedeemTokens, false)
}

func (h *ManagerHandler) fractional(c *gin.Context, fn func(context.Context, domain.AccountID, domain.AssetID, amount.Amount) (*domain.TokenIssuance, error), created bool) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.AmountRequest
	if !bindJSON(c, &req) {
		return
	}
	amt, ok := parseAmount(c, "amount", req.Amount)
	if !ok {
		return
	}
	iss, err := fn(c.Request.Context(), actor, id, amt)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, iss)
		return
	}
	response.OK(c, iss)
}

// GetTokenizationRatio handles GET /v1/assets/:id/ratio.
func (h *ManagerHandler) GetTokenizationRatio(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	bps, err := h.manager.GetTokenizationRatio(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RatioResponse{AssetID: id, BasisPoints: bps})
}

// GetAssetBackingPerToken handles GET /v1/assets/:id/backing-per-token.
func (h *ManagerHandler) GetAssetBackingPerToken(c *gin.Context) {
	h.assetAmount(c, h.manager.GetAssetBackingPerToken)
}

// GetRemainingTokenizationAmount handles GET /v1/assets/:id/remaining.
func (h *ManagerHandler) GetRemainingTokenizationAmount(c *gin.Context) {
	h.assetAmount(c, h.manager.GetRemainingTokenizationAmount)
}

// GetTokenizationAmount handles GET /v1/assets/:id/tokenization-amount.
func (h *ManagerHandler) GetTokenizationAmount(c *gin.Context) {
	h.assetAmount(c, h.manager.GetTokenizationAmount)
}

// GetRedemptionAmount handles GET /v1/assets/:id/redemption-amount.
func (h *ManagerHandler) GetRedemptionAmount(c *gin.Context) {
	h.assetAmount(c, h.manager.GetRedemptionAmount)
}

func (h *ManagerHandler) assetAmount(c *gin.Context, fn func(context.Context, domain.AssetID) (amount.Amount, error)) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	amt, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AmountResponse{Amount: amt})
}

// GetAllTokenizedAssets handles GET /v1/issuances.
func (h *ManagerHandler) GetAllTokenizedAssets(c *gin.Context) {
	issuances, err := h.manager.GetAllTokenizedAssets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if issuances == nil {
		issuances = []domain.TokenIssuance{}
	}
	response.OK(c, issuances)
}

// GetUserAssets handles GET /v1/accounts/:account/assets.
func (h *ManagerHandler) GetUserAssets(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	view, err := h.manager.GetUserAssets(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// GetAssetStatus handles GET /v1/assets/:id/status.
func (h *ManagerHandler) GetAssetStatus(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	view, err := h.manager.GetAssetStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// GetSystemStats handles GET /v1/stats.
func (h *ManagerHandler) GetSystemStats(c *gin.Context) {
	stats, err := h.manager.GetSystemStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// CanRedeemAsset handles GET /v1/accounts/:account/can-redeem?asset_id=&amount=.
func (h *ManagerHandler) CanRedeemAsset(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	assetID, ok := queryUint(c, "asset_id", 0)
	if !ok {
		return
	}
	if assetID == 0 {
		response.Error(c, apperror.Validation("asset_id is required"))
		return
	}
	amt, ok := parseAmount(c, "amount", c.Query("amount"))
	if !ok {
		return
	}
	can, err := h.manager.CanRedeemAsset(c.Request.Context(), account, domain.AssetID(assetID), amt)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CanRedeemResponse{Account: account, AssetID: domain.AssetID(assetID), Amount: amt, CanRedeem: can})
}

// ListEvents handles GET /v1/events?after=&limit=.
func (h *ManagerHandler) ListEvents(c *gin.Context) {
	after, ok := queryUint(c, "after", 0)
	if !ok {
		return
	}
	limit, ok := queryUint(c, "limit", defaultEventPage)
	if !ok {
		return
	}
	if limit == 0 || limit > maxEventPage {
		limit = maxEventPage
	}
	events, err := h.manager.ListEvents(c.Request.Context(), after, int(limit))
	if err != nil {
		response.Error(c, err)
		return
	}
	next := after
	if len(events) > 0 {
		next = events[len(events)-1].Seq
	}
	if events == nil {
		events = []domain.Event{}
	}
	response.OK(c, dto.EventsResponse{Events: events, NextAfter: next})
}
