package service

import (
	"context"
	"strconv"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// IdentityServiceImpl implements ports.IdentityService.
type IdentityServiceImpl struct {
	core *LedgerCore
	log  zerolog.Logger
}

// NewIdentityService creates a new IdentityServiceImpl.
func NewIdentityService(core *LedgerCore, log zerolog.Logger) *IdentityServiceImpl {
	return &IdentityServiceImpl{core: core, log: log}
}

// SetVerified overwrites the KYC flag of account. Requires KycAdmin.
func (s *IdentityServiceImpl) SetVerified(ctx context.Context, caller, account domain.AccountID, verified bool) (*domain.IdentityRecord, error) {
	if err := requireAccount(account, "account"); err != nil {
		return nil, err
	}

	var rec *domain.IdentityRecord
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleKYCAdmin); err != nil {
			return err
		}
		var err error
		rec, err = setIdentity(tx, caller, account, verified)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("caller", caller.String()).
		Str("account", account.String()).
		Bool("verified", verified).
		Msg("identity updated")
	return rec, nil
}

func setIdentity(tx ports.LedgerTx, actor, account domain.AccountID, verified bool) (*domain.IdentityRecord, error) {
	rec := domain.IdentityRecord{
		Account:   account,
		Verified:  verified,
		UpdatedBy: actor,
		UpdatedAt: tx.Now(),
	}
	if err := tx.PutIdentity(rec); err != nil {
		return nil, putErr("identity", err)
	}
	tx.Emit(domain.Event{
		Type:    domain.EventIdentityUpdated,
		Actor:   actor,
		Account: account,
		Attrs:   map[string]string{"verified": strconv.FormatBool(verified)},
	})
	return &rec, nil
}

// IsVerified is false for unknown accounts.
func (s *IdentityServiceImpl) IsVerified(ctx context.Context, account domain.AccountID) (bool, error) {
	var ok bool
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		ok = s.core.isVerified(tx, account)
		return nil
	})
	return ok, err
}
