package service

import (
	"context"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccessServiceImpl implements ports.AccessService.
type AccessServiceImpl struct {
	core *LedgerCore
	log  zerolog.Logger
}

// NewAccessService creates a new AccessServiceImpl.
func NewAccessService(core *LedgerCore, log zerolog.Logger) *AccessServiceImpl {
	return &AccessServiceImpl{core: core, log: log}
}

// GrantRole adds role to account. Requires Admin. Granting a held role is a no-op.
func (s *AccessServiceImpl) GrantRole(ctx context.Context, caller, account domain.AccountID, role domain.Role) (domain.RoleSet, error) {
	return s.changeRole(ctx, caller, account, role, true)
}

// RevokeRole removes role from account. Requires Admin.
func (s *AccessServiceImpl) RevokeRole(ctx context.Context, caller, account domain.AccountID, role domain.Role) (domain.RoleSet, error) {
	return s.changeRole(ctx, caller, account, role, false)
}

func (s *AccessServiceImpl) changeRole(ctx context.Context, caller, account domain.AccountID, role domain.Role, grant bool) (domain.RoleSet, error) {
	if !role.IsValid() {
		return 0, apperror.Validation("unknown role")
	}
	if err := requireAccount(account, "account"); err != nil {
		return 0, err
	}

	var roles domain.RoleSet
	err := s.core.update(ctx, func(tx ports.LedgerTx) error {
		if err := requireRole(capabilities(tx, caller), domain.RoleAdmin); err != nil {
			return err
		}
		var err error
		roles, err = setRole(tx, caller, account, role, grant)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Str("caller", caller.String()).
		Str("account", account.String()).
		Str("role", role.String()).
		Bool("grant", grant).
		Msg("role updated")
	return roles, nil
}

// setRole applies a grant or revoke without checking the caller.
func setRole(tx ports.LedgerTx, actor, account domain.AccountID, role domain.Role, grant bool) (domain.RoleSet, error) {
	current := tx.Roles(account)
	next := current.Without(role)
	eventType := domain.EventRoleRevoked
	if grant {
		next = current.With(role)
		eventType = domain.EventRoleGranted
	}
	if next == current {
		return current, nil
	}
	if err := tx.PutRoles(domain.RoleGrant{Account: account, Roles: next}); err != nil {
		return 0, putErr("roles", err)
	}
	tx.Emit(domain.Event{
		Type:    eventType,
		Actor:   actor,
		Account: account,
		Attrs:   map[string]string{"role": role.String()},
	})
	return next, nil
}

// HasRole reports whether account holds role.
func (s *AccessServiceImpl) HasRole(ctx context.Context, account domain.AccountID, role domain.Role) (bool, error) {
	var has bool
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		has = capabilities(tx, account).Has(role)
		return nil
	})
	return has, err
}

// Capabilities returns every role held by account.
func (s *AccessServiceImpl) Capabilities(ctx context.Context, account domain.AccountID) (domain.RoleSet, error) {
	var caps domain.RoleSet
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		caps = capabilities(tx, account)
		return nil
	})
	return caps, err
}

// ListRoleGrants returns all accounts holding at least one role.
func (s *AccessServiceImpl) ListRoleGrants(ctx context.Context) ([]domain.RoleGrant, error) {
	var grants []domain.RoleGrant
	err := s.core.view(ctx, func(tx ports.LedgerReader) error {
		grants = tx.RoleGrants()
		return nil
	})
	return grants, err
}
