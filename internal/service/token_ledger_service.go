package service

import (
	"context"
	"sort"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// TokenLedgerServiceImpl implements ports.TokenLedgerService.
type TokenLedgerServiceImpl struct {
	core *LedgerCore
	log  zerolog.Logger
}

// NewTokenLedgerService creates a new TokenLedgerServiceImpl.
func NewTokenLedgerService(core *LedgerCore, log zerolog.Logger) *TokenLedgerServiceImpl {
	return &TokenLedgerServiceImpl{core: core, log: log}
}

// MintForAsset issues tokens against a Tokenized asset. Requires Minter.
func (s *TokenLedgerServiceImpl) MintForAsset(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount, recipient domain.AccountID) (*domain.TokenIssuance, error) {
	var iss *domain.TokenIssuance
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleMinter); err != nil {
			return err
		}
		var err error
		iss, err = s.core.mint(tx, caller, id, amt, recipient)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(id)).
		Str("recipient", recipient.String()).
		Str("amount", amt.String()).
		Msg("tokens minted")
	return iss, nil
}

// Burn destroys tokens held by account. Requires Burner.
func (s *TokenLedgerServiceImpl) Burn(ctx context.Context, caller, account domain.AccountID, amt amount.Amount) error {
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleBurner); err != nil {
			return err
		}
		return s.core.burn(tx, caller, account, amt)
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("account", account.String()).
		Str("amount", amt.String()).
		Msg("tokens burned")
	return nil
}

// Transfer moves tokens from caller to to.
func (s *TokenLedgerServiceImpl) Transfer(ctx context.Context, caller, to domain.AccountID, amt amount.Amount) error {
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		return s.core.transfer(tx, caller, to, amt)
	})
	if err != nil {
		return err
	}

	s.log.Debug().
		Str("from", caller.String()).
		Str("to", to.String()).
		Str("amount", amt.String()).
		Msg("transfer committed")
	return nil
}

// RequestRedemption queues a redemption of caller's tokens against an asset.
func (s *TokenLedgerServiceImpl) RequestRedemption(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.RedemptionRequest, error) {
	var req *domain.RedemptionRequest
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		var err error
		req, err = s.core.requestRedemption(tx, caller, id, amt)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("request_id", uint64(req.ID)).
		Uint64("asset_id", uint64(id)).
		Str("requester", caller.String()).
		Str("amount", amt.String()).
		Msg("redemption requested")
	return req, nil
}

// ApproveRedemption requires Admin.
func (s *TokenLedgerServiceImpl) ApproveRedemption(ctx context.Context, caller domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error) {
	return s.adminRedemption(ctx, caller, id, "redemption approved", s.core.approveRedemption)
}

// ProcessRedemption requires Admin.
func (s *TokenLedgerServiceImpl) ProcessRedemption(ctx context.Context, caller domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error) {
	return s.adminRedemption(ctx, caller, id, "redemption processed", s.core.processRedemption)
}

func (s *TokenLedgerServiceImpl) adminRedemption(
	ctx context.Context,
	caller domain.AccountID,
	id domain.RequestID,
	msg string,
	step func(tx ports.LedgerTx, actor domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error),
) (*domain.RedemptionRequest, error) {
	var req *domain.RedemptionRequest
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		var err error
		req, err = step(tx, caller, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("request_id", uint64(id)).
		Str("caller", caller.String()).
		Msg(msg)
	return req, nil
}

// Pause requires Admin.
func (s *TokenLedgerServiceImpl) Pause(ctx context.Context, caller domain.AccountID) error {
	return s.setPaused(ctx, caller, true)
}

// Unpause requires Admin.
func (s *TokenLedgerServiceImpl) Unpause(ctx context.Context, caller domain.AccountID) error {
	return s.setPaused(ctx, caller, false)
}

func (s *TokenLedgerServiceImpl) setPaused(ctx context.Context, caller domain.AccountID, paused bool) error {
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		return s.core.setPaused(tx, caller, paused)
	})
	if err != nil {
		return err
	}
	s.log.Warn().Str("caller", caller.String()).Bool("paused", paused).Msg("ledger pause state changed")
	return nil
}

func (s *TokenLedgerServiceImpl) IsPaused(ctx context.Context) (bool, error) {
	var paused bool
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		paused = tx.Meta().Paused
		return nil
	})
	return paused, err
}

// GetTokensForAsset returns the amount issued against an asset, zero if none.
func (s *TokenLedgerServiceImpl) GetTokensForAsset(ctx context.Context, id domain.AssetID) (amount.Amount, error) {
	issued := amount.Zero()
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		if iss, ok := tx.Issuance(id); ok {
			issued = iss.AmountIssued
		}
		return nil
	})
	return issued, err
}

// GetAssetForTokenAmount returns the asset whose issued amount equals amt and
// whose issuance record changed most recently (a fractional top-up counts).
// Amounts are not unique across assets; ties go to the higher asset id.
func (s *TokenLedgerServiceImpl) GetAssetForTokenAmount(ctx context.Context, amt amount.Amount) (domain.AssetID, error) {
	var match domain.AssetID
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		var candidates []domain.TokenIssuance
		for _, iss := range tx.Issuances() {
			if iss.AmountIssued.Equal(amt) {
				candidates = append(candidates, iss)
			}
		}
		if len(candidates) == 0 {
			return apperror.ErrNotFound("asset for token amount")
		}
		sort.Slice(candidates, func(i, j int) bool {
			if !candidates[i].UpdatedAt.Equal(candidates[j].UpdatedAt) {
				return candidates[i].UpdatedAt.After(candidates[j].UpdatedAt)
			}
			return candidates[i].AssetID > candidates[j].AssetID
		})
		match = candidates[0].AssetID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return match, nil
}

func (s *TokenLedgerServiceImpl) GetRedemptionRequest(ctx context.Context, id domain.RequestID) (*domain.RedemptionRequest, error) {
	var req *domain.RedemptionRequest
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		var err error
		req, err = s.core.getRedemption(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *TokenLedgerServiceImpl) GetAllRedemptionRequests(ctx context.Context) ([]domain.RedemptionRequest, error) {
	var reqs []domain.RedemptionRequest
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		reqs = tx.Redemptions()
		return nil
	})
	return reqs, err
}

func (s *TokenLedgerServiceImpl) GetRedemptionRequestsByUser(ctx context.Context, account domain.AccountID) ([]domain.RedemptionRequest, error) {
	var reqs []domain.RedemptionRequest
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		reqs = tx.RedemptionsByRequester(account)
		return nil
	})
	return reqs, err
}

func (s *TokenLedgerServiceImpl) BalanceOf(ctx context.Context, account domain.AccountID) (amount.Amount, error) {
	bal := amount.Zero()
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		bal = tx.Balance(account).Amount
		return nil
	})
	return bal, err
}

func (s *TokenLedgerServiceImpl) TotalSupply(ctx context.Context) (amount.Amount, error) {
	supply := amount.Zero()
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		supply = tx.Meta().TotalSupply
		return nil
	})
	return supply, err
}
