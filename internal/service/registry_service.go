package service

import (
	"context"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService.
type RegistryServiceImpl struct {
	core *LedgerCore
	log  zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(core *LedgerCore, log zerolog.Logger) *RegistryServiceImpl {
	return &RegistryServiceImpl{core: core, log: log}
}

// RegisterAsset records a new Pending asset owned by caller.
func (s *RegistryServiceImpl) RegisterAsset(ctx context.Context, caller domain.AccountID, in ports.RegisterAssetInput) (*domain.Asset, error) {
	var asset *domain.Asset
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
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
		Msg("asset registered")
	return asset, nil
}

// VerifyAsset approves or rejects a Pending asset. Requires Verifier.
func (s *RegistryServiceImpl) VerifyAsset(ctx context.Context, caller domain.AccountID, id domain.AssetID, approve bool, proof string) (*domain.Asset, error) {
	var asset *domain.Asset
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleVerifier); err != nil {
			return err
		}
		var err error
		asset, err = s.core.verifyAsset(tx, caller, id, approve, proof)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(id)).
		Str("verifier", caller.String()).
		Str("status", string(asset.Status)).
		Msg("asset verification recorded")
	return asset, nil
}

// MarkAsTokenized moves a Verified asset to Tokenized. Requires Admin.
func (s *RegistryServiceImpl) MarkAsTokenized(ctx context.Context, caller domain.AccountID, id domain.AssetID) (*domain.Asset, error) {
	return s.adminTransition(ctx, caller, id, s.core.markTokenized)
}

// MarkAsRedeemed moves a Tokenized asset to Redeemed. Requires Admin.
func (s *RegistryServiceImpl) MarkAsRedeemed(ctx context.Context, caller domain.AccountID, id domain.AssetID) (*domain.Asset, error) {
	return s.adminTransition(ctx, caller, id, func(tx ports.LedgerTx, actor domain.AccountID, id domain.AssetID) (*domain.Asset, error) {
		return s.core.markRedeemed(tx, actor, id, "")
	})
}

func (s *RegistryServiceImpl) adminTransition(
	ctx context.Context,
	caller domain.AccountID,
	id domain.AssetID,
	step func(tx ports.LedgerTx, actor domain.AccountID, id domain.AssetID) (*domain.Asset, error),
) (*domain.Asset, error) {
	var asset *domain.Asset
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		var err error
		asset, err = step(tx, caller, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Uint64("asset_id", uint64(id)).
		Str("caller", caller.String()).
		Str("status", string(asset.Status)).
		Msg("asset status changed")
	return asset, nil
}

// GetAsset returns one asset or NotFound.
func (s *RegistryServiceImpl) GetAsset(ctx context.Context, id domain.AssetID) (*domain.Asset, error) {
	var asset *domain.Asset
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		var err error
		asset, err = s.core.getAsset(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *RegistryServiceImpl) GetAssetsByOwner(ctx context.Context, owner domain.AccountID) ([]domain.Asset, error) {
	return s.list(ctx, func(tx ports.LedgerReader) []domain.Asset { return tx.AssetsByOwner(owner) })
}

func (s *RegistryServiceImpl) GetPendingAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.byStatus(ctx, domain.AssetStatusPending)
}

func (s *RegistryServiceImpl) GetVerifiedAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.byStatus(ctx, domain.AssetStatusVerified)
}

func (s *RegistryServiceImpl) GetTokenizedAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.byStatus(ctx, domain.AssetStatusTokenized)
}

func (s *RegistryServiceImpl) byStatus(ctx context.Context, status domain.AssetStatus) ([]domain.Asset, error) {
	return s.list(ctx, func(tx ports.LedgerReader) []domain.Asset { return tx.AssetsByStatus(status) })
}

func (s *RegistryServiceImpl) list(ctx context.Context, fn func(tx ports.LedgerReader) []domain.Asset) ([]domain.Asset, error) {
	var assets []domain.Asset
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		assets = fn(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// GetTotalAssets counts every asset ever registered.
func (s *RegistryServiceImpl) GetTotalAssets(ctx context.Context) (uint64, error) {
	var total uint64
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		total = uint64(tx.Meta().NextAssetID - 1)
		return nil
	})
	return total, err
}

// IsAssetVerified is false for unknown assets.
func (s *RegistryServiceImpl) IsAssetVerified(ctx context.Context, id domain.AssetID) (bool, error) {
	return s.check(ctx, id, (*domain.Asset).IsVerified)
}

// IsAssetTokenized is false for unknown assets.
func (s *RegistryServiceImpl) IsAssetTokenized(ctx context.Context, id domain.AssetID) (bool, error) {
	return s.check(ctx, id, (*domain.Asset).IsTokenized)
}

func (s *RegistryServiceImpl) check(ctx context.Context, id domain.AssetID, pred func(*domain.Asset) bool) (bool, error) {
	var ok bool
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		if asset, found := tx.Asset(id); found {
			ok = pred(asset)
		}
		return nil
	})
	return ok, err
}
