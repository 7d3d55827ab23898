package handler

import (
	"context"
	"net/http"

	"rwa-ledger/internal/adapter/http/dto"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler serves the claim-token ledger: minting, transfers, burns,
// redemptions and the pause switch.
type TokenHandler struct {
	tokens ports.TokenLedgerService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokens ports.TokenLedgerService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// MintForAsset handles POST /v1/assets/:id/mint.
func (h *TokenHandler) MintForAsset(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	var req dto.MintRequest
	if !bindJSON(c, &req) {
		return
	}
	amt, ok := parseAmount(c, "amount", req.Amount)
	if !ok {
		return
	}
	recipient, ok := parseAccount(c, "recipient", req.Recipient)
	if !ok {
		return
	}
	iss, err := h.tokens.MintForAsset(c.Request.Context(), actor, id, amt, recipient)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, iss)
}

// Burn handles POST /v1/burns.
func (h *TokenHandler) Burn(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var req dto.BurnRequest
	if !bindJSON(c, &req) {
		return
	}
	account, ok := parseAccount(c, "account", req.Account)
	if !ok {
		return
	}
	amt, ok := parseAmount(c, "amount", req.Amount)
	if !ok {
		return
	}
	if err := h.tokens.Burn(c.Request.Context(), actor, account, amt); err != nil {
		response.Error(c, err)
		return
	}
	h.respondBalance(c, account)
}

// Transfer handles POST /v1/transfers. Tokens move from the caller.
func (h *TokenHandler) Transfer(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if !bindJSON(c, &req) {
		return
	}
	to, ok := parseAccount(c, "to", req.To)
	if !ok {
		return
	}
	amt, ok := parseAmount(c, "amount", req.Amount)
	if !ok {
		return
	}
	if err := h.tokens.Transfer(c.Request.Context(), actor, to, amt); err != nil {
		response.Error(c, err)
		return
	}
	h.respondBalance(c, actor)
}

func (h *TokenHandler) respondBalance(c *gin.Context, account domain.AccountID) {
	bal, err := h.tokens.BalanceOf(c.Request.Context(), account)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Account: account, Balance: bal})
}

// RequestRedemption handles POST /v1/redemptions.
func (h *TokenHandler) RequestRedemption(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var req dto.RedemptionRequest
	if !bindJSON(c, &req) {
		return
	}
	amt, ok := parseAmount(c, "amount", req.Amount)
	if !ok {
		return
	}
	r, err := h.tokens.RequestRedemption(c.Request.Context(), actor, domain.AssetID(req.AssetID), amt)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, r)
}

// ApproveRedemption handles POST /v1/redemptions/:id/approve.
func (h *TokenHandler) ApproveRedemption(c *gin.Context) {
	h.redemptionStep(c, h.tokens.ApproveRedemption)
}

// ProcessRedemption handles POST /v1/redemptions/:id/process.
func (h *TokenHandler) ProcessRedemption(c *gin.Context) {
	h.redemptionStep(c, h.tokens.ProcessRedemption)
}

func (h *TokenHandler) redemptionStep(c *gin.Context, fn func(context.Context, domain.AccountID, domain.RequestID) (*domain.RedemptionRequest, error)) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	id, ok := requestIDParam(c)
	if !ok {
		return
	}
	r, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, r)
}

// Pause handles POST /v1/pause.
func (h *TokenHandler) Pause(c *gin.Context) {
	h.setPaused(c, true)
}

// Unpause handles POST /v1/unpause.
func (h *TokenHandler) Unpause(c *gin.Context) {
	h.setPaused(c, false)
}

func (h *TokenHandler) setPaused(c *gin.Context, paused bool) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var err error
	if paused {
		err = h.tokens.Pause(c.Request.Context(), actor)
	} else {
		err = h.tokens.Unpause(c.Request.Context(), actor)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PausedResponse{Paused: paused})
}

// IsPaused handles GET /v1/paused.
func (h *TokenHandler) IsPaused(c *gin.Context) {
	paused, err := h.tokens.IsPaused(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.PausedResponse{Paused: paused})
}

// GetTokensForAsset handles GET /v1/assets/:id/tokens.
func (h *TokenHandler) GetTokensForAsset(c *gin.Context) {
	id, ok := assetIDParam(c)
	if !ok {
		return
	}
	amt, err := h.tokens.GetTokensForAsset(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AmountResponse{Amount: amt})
}

// GetAssetForTokenAmount handles GET /v1/issuances/lookup?amount=.
func (h *TokenHandler) GetAssetForTokenAmount(c *gin.Context) {
	raw := c.Query("amount")
	if raw == "" {
		response.Error(c, apperror.Validation("amount is required"))
		return
	}
	amt, ok := parseAmount(c, "amount", raw)
	if !ok {
		return
	}
	id, err := h.tokens.GetAssetForTokenAmount(c.Request.Context(), amt)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AssetIDResponse{AssetID: id})
}

// GetRedemptionRequest handles GET /v1/redemptions/:id.
func (h *TokenHandler) GetRedemptionRequest(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}
	r, err := h.tokens.GetRedemptionRequest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, r)
}

// ListRedemptionRequests handles GET /v1/redemptions, optionally filtered
// by ?account=.
func (h *TokenHandler) ListRedemptionRequests(c *gin.Context) {
	var (
		requests []domain.RedemptionRequest
		err      error
	)
	if raw := c.Query("account"); raw != "" {
		account, ok := parseAccount(c, "account", raw)
		if !ok {
			return
		}
		requests, err = h.tokens.GetRedemptionRequestsByUser(c.Request.Context(), account)
	} else {
		requests, err = h.tokens.GetAllRedemptionRequests(c.Request.Context())
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if requests == nil {
		requests = []domain.RedemptionRequest{}
	}
	response.OK(c, requests)
}

// BalanceOf handles GET /v1/accounts/:account/balance.
func (h *TokenHandler) BalanceOf(c *gin.Context) {
	account, ok := accountParam(c)
	if !ok {
		return
	}
	h.respondBalance(c, account)
}

// TotalSupply handles GET /v1/supply.
func (h *TokenHandler) TotalSupply(c *gin.Context) {
	supply, err := h.tokens.TotalSupply(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	response.JSON(c, http.StatusOK, dto.AmountResponse{Amount: supply})
}
