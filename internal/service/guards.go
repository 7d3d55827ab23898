package service

import (
	"errors"
	"fmt"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"
)

// Authorization guards. They are pure functions of a capability set so each
// public operation can look up capabilities once and check them up front.

func capabilities(tx ports.LedgerReader, account domain.AccountID) domain.RoleSet {
	return tx.Roles(account)
}

func requireRole(caps domain.RoleSet, role domain.Role) error {
	if !caps.Has(role) {
		return apperror.ErrUnauthorized(role.String())
	}
	return nil
}

// requireOwnerOrRole passes when caller owns the asset or holds role.
func requireOwnerOrRole(caps domain.RoleSet, caller domain.AccountID, asset *domain.Asset, role domain.Role) error {
	if asset.Owner == caller {
		return nil
	}
	return requireRole(caps, role)
}

func requireNotPaused(meta domain.LedgerMeta) error {
	if meta.Paused {
		return apperror.ErrSystemPaused()
	}
	return nil
}

func requirePositive(amt amount.Amount, what string) error {
	if !amt.IsPositive() {
		return apperror.ErrInvalidAmount(fmt.Sprintf("%s must be greater than 0", what))
	}
	return nil
}

func requireAccount(account domain.AccountID, what string) error {
	if account.IsZero() {
		return apperror.Validation(fmt.Sprintf("%s is required", what))
	}
	return nil
}

// asAppError passes AppErrors through and wraps anything else as internal.
func asAppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(err)
}
