package service

import (
	"context"
	"fmt"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// ManagerServiceImpl implements ports.ManagerService. Every compound
// operation runs as one ledger transaction; sub-steps run with the authority
// of the manager rather than the caller.
type ManagerServiceImpl struct {
	core *LedgerCore
	log  zerolog.Logger
}

// NewManagerService creates a new ManagerServiceImpl.
func NewManagerService(core *LedgerCore, log zerolog.Logger) *ManagerServiceImpl {
	return &ManagerServiceImpl{core: core, log: log}
}

// ---- asset types & verifiers ----

// AddAssetType requires Admin. Adding a supported type again is a no-op.
func (s *ManagerServiceImpl) AddAssetType(ctx context.Context, caller domain.AccountID, t domain.AssetType) error {
	t = domain.NormalizeAssetType(string(t))
	if t == "" {
		return apperror.Validation("asset type is required")
	}
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		return addAssetType(tx, caller, t)
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("asset_type", string(t)).Str("caller", caller.String()).Msg("asset type added")
	return nil
}

func addAssetType(tx ports.LedgerTx, actor domain.AccountID, t domain.AssetType) error {
	if tx.HasAssetType(t) {
		return nil
	}
	if err := tx.PutAssetType(domain.SupportedAssetType{Type: t, AddedBy: actor, AddedAt: tx.Now()}); err != nil {
		return putErr("asset type", err)
	}
	tx.Emit(domain.Event{
		Type:  domain.EventAssetTypeAdded,
		Actor: actor,
		Attrs: map[string]string{"asset_type": string(t)},
	})
	return nil
}

// RemoveAssetType requires Admin. Existing assets of the type are unaffected.
func (s *ManagerServiceImpl) RemoveAssetType(ctx context.Context, caller domain.AccountID, t domain.AssetType) error {
	t = domain.NormalizeAssetType(string(t))
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		if !tx.HasAssetType(t) {
			return apperror.ErrNotFound("asset type")
		}
		if err := tx.DeleteAssetType(t); err != nil {
			return putErr("asset type", err)
		}
		tx.Emit(domain.Event{
			Type:  domain.EventAssetTypeRemoved,
			Actor: caller,
			Attrs: map[string]string{"asset_type": string(t)},
		})
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("asset_type", string(t)).Str("caller", caller.String()).Msg("asset type removed")
	return nil
}

func (s *ManagerServiceImpl) GetSupportedAssetTypes(ctx context.Context) ([]domain.SupportedAssetType, error) {
	var types []domain.SupportedAssetType
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		types = tx.AssetTypes()
		return nil
	})
	return types, err
}

// RegisterAssetWithValidation registers an asset whose type is on the allowlist.
func (s *ManagerServiceImpl) RegisterAssetWithValidation(ctx context.Context, caller domain.AccountID, in ports.RegisterAssetInput) (*domain.Asset, error) {
	in.AssetType = domain.NormalizeAssetType(string(in.AssetType))

	var asset *domain.Asset
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if !tx.HasAssetType(in.AssetType) {
			return apperror.ErrUnsupportedAssetType(string(in.AssetType))
		}
		var err error
		asset, err = s.core.registerAsset(tx, caller, in)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(asset.ID)).
		Str("owner", caller.String()).
		Str("asset_type", string(asset.AssetType)).
		Msg("asset registered with validation")
	return asset, nil
}

// RegisterVerifier records roster metadata only; use GrantRole for the capability.
func (s *ManagerServiceImpl) RegisterVerifier(ctx context.Context, caller, account domain.AccountID, description string) (*domain.VerifierInfo, error) {
	if err := requireAccount(account, "verifier account"); err != nil {
		return nil, err
	}

	var info *domain.VerifierInfo
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		var err error
		info, err = registerVerifier(tx, caller, account, description)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("verifier", account.String()).Msg("verifier registered")
	return info, nil
}

func registerVerifier(tx ports.LedgerTx, actor, account domain.AccountID, description string) (*domain.VerifierInfo, error) {
	info := domain.VerifierInfo{
		Account:      account,
		Description:  description,
		RegisteredBy: actor,
		RegisteredAt: tx.Now(),
	}
	if err := tx.PutVerifier(info); err != nil {
		return nil, putErr("verifier", err)
	}
	tx.Emit(domain.Event{
		Type:    domain.EventVerifierRegistered,
		Actor:   actor,
		Account: account,
		Reason:  description,
	})
	return &info, nil
}

func (s *ManagerServiceImpl) GetVerifiers(ctx context.Context) ([]domain.VerifierInfo, error) {
	var verifiers []domain.VerifierInfo
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		verifiers = tx.Verifiers()
		return nil
	})
	return verifiers, err
}

// ---- compound flows ----

// VerifyAndTokenize verifies an asset and, on approval, tokenizes it and
// mints tokenAmount to its owner. Requires Verifier. Either every step
// commits or none does.
func (s *ManagerServiceImpl) VerifyAndTokenize(ctx context.Context, caller domain.AccountID, id domain.AssetID, approve bool, proof string, tokenAmount amount.Amount) (*ports.AssetStatusView, error) {
	var view *ports.AssetStatusView
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleVerifier); err != nil {
			return err
		}
		if _, err := s.core.verifyAsset(tx, caller, id, approve, proof); err != nil {
			return err
		}
		if approve {
			if _, err := s.core.markTokenized(tx, caller, id); err != nil {
				return err
			}
			asset, err := s.core.getAsset(tx, id)
			if err != nil {
				return err
			}
			if _, err := s.core.mint(tx, caller, id, tokenAmount, asset.Owner); err != nil {
				return err
			}
			tx.Emit(domain.Event{
				Type:    domain.EventCompleteAssetFlow,
				Actor:   caller,
				Account: asset.Owner,
				AssetID: id,
			}.WithAmount(tokenAmount))
		}
		var err error
		view, err = s.core.assetStatus(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(id)).
		Str("verifier", caller.String()).
		Bool("approved", approve).
		Str("token_amount", tokenAmount.String()).
		Msg("verify and tokenize completed")
	return view, nil
}

// ProcessRedemptionFlow approves and processes a redemption request in one
// transaction. Requires Admin.
func (s *ManagerServiceImpl) ProcessRedemptionFlow(ctx context.Context, caller domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error) {
	var req *domain.RedemptionRequest
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		if _, err := s.core.approveRedemption(tx, caller, id); err != nil {
			return err
		}
		var err error
		req, err = s.core.processRedemption(tx, caller, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint64("request_id", uint64(id)).Str("caller", caller.String()).Msg("redemption flow completed")
	return req, nil
}

// ---- fractional tokenization ----

func (s *ManagerServiceImpl) requireFractional() error {
	if s.core.Mode() != domain.IssuanceModeFractional {
		return apperror.ErrInvalidState("fractional tokenization is disabled in simple mode")
	}
	return nil
}

// TokenizeAsset tokenizes a Verified asset for a fraction of its value and
// mints the tokens to the owner. Callable by the owner or an Admin.
func (s *ManagerServiceImpl) TokenizeAsset(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.TokenIssuance, error) {
	if err := s.requireFractional(); err != nil {
		return nil, err
	}

	var iss *domain.TokenIssuance
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireNotPaused(tx.Meta()); err != nil {
			return err
		}
		asset, err := s.core.getAsset(tx, id)
		if err != nil {
			return err
		}
		if err := requireOwnerOrRole(capabilities(tx, caller), caller, asset, domain.RoleAdmin); err != nil {
			return err
		}
		if _, issued := tx.Issuance(id); issued || asset.Status == domain.AssetStatusTokenized {
			return apperror.ErrAlreadyTokenized()
		}
		if asset.Status != domain.AssetStatusVerified {
			return apperror.ErrInvalidState(fmt.Sprintf("asset is %s, want %s", asset.Status, domain.AssetStatusVerified))
		}
		if err := requirePositive(amt, "tokenization amount"); err != nil {
			return err
		}
		if amt.GreaterThan(asset.Value) {
			return apperror.ErrInvalidAmount("tokenization amount exceeds asset value")
		}
		if _, err := s.core.markTokenized(tx, caller, id); err != nil {
			return err
		}
		iss, err = s.core.mint(tx, caller, id, amt, asset.Owner)
		if err != nil {
			return err
		}
		tx.Emit(domain.Event{
			Type:    domain.EventFractionalTokenized,
			Actor:   caller,
			Account: asset.Owner,
			AssetID: id,
			Attrs:   map[string]string{"backing_ratio_bps": fmt.Sprint(iss.BackingRatioBps)},
		}.WithAmount(amt))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(id)).
		Str("amount", amt.String()).
		Uint64("backing_ratio_bps", iss.BackingRatioBps).
		Msg("asset tokenized")
	return iss, nil
}

// RedeemTokens burns caller's tokens against an asset's remaining issuance,
// marking the asset Redeemed once nothing remains.
func (s *ManagerServiceImpl) RedeemTokens(ctx context.Context, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.TokenIssuance, error) {
	if err := s.requireFractional(); err != nil {
		return nil, err
	}

	var iss *domain.TokenIssuance
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireNotPaused(tx.Meta()); err != nil {
			return err
		}
		if err := requirePositive(amt, "redemption amount"); err != nil {
			return err
		}
		asset, err := s.core.getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.Status != domain.AssetStatusTokenized {
			return apperror.ErrInvalidState(fmt.Sprintf("asset is %s, want %s", asset.Status, domain.AssetStatusTokenized))
		}
		if tx.Balance(caller).Amount.LessThan(amt) {
			return apperror.ErrInsufficientTokenBalance()
		}
		iss, err = s.core.retire(tx, id, amt)
		if err != nil {
			return err
		}
		if err := s.core.burnFrom(tx, caller, amt, apperror.ErrInsufficientTokenBalance); err != nil {
			return err
		}
		tx.Emit(domain.Event{
			Type:    domain.EventFractionalRedeemed,
			Actor:   caller,
			Account: caller,
			AssetID: id,
		}.WithAmount(amt))
		if iss.IsRetired() {
			if _, err := s.core.markRedeemed(tx, caller, id, "fully redeemed"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(id)).
		Str("account", caller.String()).
		Str("amount", amt.String()).
		Str("remaining", iss.RemainingRedeemable.String()).
		Msg("tokens redeemed")
	return iss, nil
}

// issuanceOf loads a known asset and its issuance, which is nil when none exists.
func (s *ManagerServiceImpl) issuanceOf(ctx context.Context, id domain.AssetID, fn func(asset *domain.Asset, iss *domain.TokenIssuance) error) error {
	return s.core.view(ctx, func(tx ports.LedgerReader) error {
		asset, err := s.core.getAsset(tx, id)
		if err != nil {
			return err
		}
		iss, _ := tx.Issuance(id)
		return fn(asset, iss)
	})
}

// GetTokenizationRatio returns issued/value in basis points, 0 when untokenized.
func (s *ManagerServiceImpl) GetTokenizationRatio(ctx context.Context, id domain.AssetID) (uint64, error) {
	var bps uint64
	err := s.issuanceOf(ctx, id, func(_ *domain.Asset, iss *domain.TokenIssuance) error {
		if iss != nil {
			bps = iss.BackingRatioBps
		}
		return nil
	})
	return bps, err
}

// GetAssetBackingPerToken returns value/issued scaled to token base units.
func (s *ManagerServiceImpl) GetAssetBackingPerToken(ctx context.Context, id domain.AssetID) (amount.Amount, error) {
	per := amount.Zero()
	err := s.issuanceOf(ctx, id, func(asset *domain.Asset, iss *domain.TokenIssuance) error {
		if iss == nil || iss.AmountIssued.IsZero() {
			return apperror.ErrInvalidState("asset has no tokens issued")
		}
		var err error
		per, err = domain.BackingPerToken(asset.Value, iss.AmountIssued, s.core.opts.TokenDecimals)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("backing per token: %w", err))
		}
		return nil
	})
	return per, err
}

func (s *ManagerServiceImpl) GetRemainingTokenizationAmount(ctx context.Context, id domain.AssetID) (amount.Amount, error) {
	return s.issuanceAmount(ctx, id, func(iss *domain.TokenIssuance) amount.Amount { return iss.RemainingRedeemable })
}

func (s *ManagerServiceImpl) GetTokenizationAmount(ctx context.Context, id domain.AssetID) (amount.Amount, error) {
	return s.issuanceAmount(ctx, id, func(iss *domain.TokenIssuance) amount.Amount { return iss.AmountIssued })
}

func (s *ManagerServiceImpl) GetRedemptionAmount(ctx context.Context, id domain.AssetID) (amount.Amount, error) {
	return s.issuanceAmount(ctx, id, func(iss *domain.TokenIssuance) amount.Amount { return iss.Redeemed })
}

func (s *ManagerServiceImpl) issuanceAmount(ctx context.Context, id domain.AssetID, pick func(*domain.TokenIssuance) amount.Amount) (amount.Amount, error) {
	out := amount.Zero()
	err := s.issuanceOf(ctx, id, func(_ *domain.Asset, iss *domain.TokenIssuance) error {
		if iss != nil {
			out = pick(iss)
		}
		return nil
	})
	return out, err
}

func (s *ManagerServiceImpl) GetAllTokenizedAssets(ctx context.Context) ([]domain.TokenIssuance, error) {
	var out []domain.TokenIssuance
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		out = tx.Issuances()
		return nil
	})
	return out, err
}

// ---- aggregate views ----

func (c *LedgerCore) assetStatus(tx ports.LedgerReader, id domain.AssetID) (*ports.AssetStatusView, error) {
	asset, err := c.getAsset(tx, id)
	if err != nil {
		return nil, err
	}
	view := &ports.AssetStatusView{
		Asset:       *asset,
		TokenAmount: amount.Zero(),
		IsVerified:  asset.IsVerified(),
		IsTokenized: asset.IsTokenized(),
	}
	if iss, ok := tx.Issuance(id); ok {
		view.TokenAmount = iss.AmountIssued
		view.Issuance = iss
	}
	return view, nil
}

func (s *ManagerServiceImpl) GetAssetStatus(ctx context.Context, id domain.AssetID) (*ports.AssetStatusView, error) {
	var view *ports.AssetStatusView
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		var err error
		view, err = s.core.assetStatus(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ManagerServiceImpl) GetUserAssets(ctx context.Context, account domain.AccountID) (*ports.UserAssets, error) {
	var out *ports.UserAssets
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		owned := tx.AssetsByOwner(account)
		out = &ports.UserAssets{
			Account: account,
			Balance: tx.Balance(account).Amount,
			Assets:  make([]ports.UserAsset, 0, len(owned)),
		}
		for _, a := range owned {
			ua := ports.UserAsset{Asset: a, TokensIssued: amount.Zero()}
			if iss, ok := tx.Issuance(a.ID); ok {
				ua.TokensIssued = iss.AmountIssued
			}
			out.Assets = append(out.Assets, ua)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ManagerServiceImpl) GetSystemStats(ctx context.Context) (*ports.SystemStats, error) {
	var stats *ports.SystemStats
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		meta := tx.Meta()
		stats = &ports.SystemStats{
			TotalSupply:  meta.TotalSupply,
			Paused:       meta.Paused,
			Mode:         s.core.Mode(),
			LastEventSeq: meta.EventSeq,
			Redemptions:  uint64(meta.NextRequestID - 1),
		}
		for _, a := range tx.AllAssets() {
			stats.TotalAssets++
			if a.IsVerified() {
				stats.VerifiedAssets++
			}
			switch a.Status {
			case domain.AssetStatusPending:
				stats.PendingAssets++
			case domain.AssetStatusRejected:
				stats.RejectedAssets++
			case domain.AssetStatusTokenized:
				stats.TokenizedAssets++
			case domain.AssetStatusRedeemed:
				stats.RedeemedAssets++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// CanRedeemAsset reports whether a redemption request for amt would pass
// its preconditions right now.
func (s *ManagerServiceImpl) CanRedeemAsset(ctx context.Context, account domain.AccountID, id domain.AssetID, amt amount.Amount) (bool, error) {
	var ok bool
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		if tx.Meta().Paused || !amt.IsPositive() {
			return nil
		}
		asset, found := tx.Asset(id)
		if !found || asset.Status != domain.AssetStatusTokenized {
			return nil
		}
		ok = !tx.Balance(account).Amount.LessThan(amt)
		return nil
	})
	return ok, err
}

// ListEvents pages through the committed event log.
func (s *ManagerServiceImpl) ListEvents(ctx context.Context, after uint64, limit int) ([]domain.Event, error) {
	var events []domain.Event
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		events = tx.Events(after, limit)
		return nil
	})
	return events, err
}
