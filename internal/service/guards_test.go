package service

import (
	"errors"
	"testing"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	caps := domain.NewRoleSet(domain.RoleVerifier)

	assert.NoError(t, requireRole(caps, domain.RoleVerifier))

	err := requireRole(caps, domain.RoleAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized(""))
	assert.Contains(t, err.Error(), "ADMIN")

	assert.ErrorIs(t, requireRole(0, domain.RoleKYCAdmin), apperror.ErrUnauthorized(""))
}

func TestRequireOwnerOrRole(t *testing.T) {
	asset := &domain.Asset{Owner: "alice"}

	assert.NoError(t, requireOwnerOrRole(0, "alice", asset, domain.RoleAdmin))
	assert.NoError(t, requireOwnerOrRole(domain.NewRoleSet(domain.RoleAdmin), "admin", asset, domain.RoleAdmin))
	assert.ErrorIs(t, requireOwnerOrRole(domain.NewRoleSet(domain.RoleMinter), "bob", asset, domain.RoleAdmin), apperror.ErrUnauthorized(""))
}

func TestRequireNotPaused(t *testing.T) {
	assert.NoError(t, requireNotPaused(domain.LedgerMeta{}))
	assert.ErrorIs(t, requireNotPaused(domain.LedgerMeta{Paused: true}), apperror.ErrSystemPaused())
}

func TestRequirePositive(t *testing.T) {
	assert.NoError(t, requirePositive(amount.New(1), "amount"))
	assert.ErrorIs(t, requirePositive(amount.Zero(), "amount"), apperror.ErrInvalidAmount(""))
}

func TestRequireAccount(t *testing.T) {
	assert.NoError(t, requireAccount("bob", "recipient"))
	assert.ErrorIs(t, requireAccount("", "recipient"), apperror.Validation(""))
}

func TestAsAppError(t *testing.T) {
	assert.Nil(t, asAppError(nil))

	notFound := apperror.ErrNotFound("asset")
	assert.Same(t, notFound, asAppError(notFound))

	wrapped := asAppError(errors.New("disk on fire"))
	assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(wrapped))
}
