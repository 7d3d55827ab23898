package service

import (
	"context"
	"testing"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessService_GrantRole_Success(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})
	ctx := context.Background()

	roles, err := l.access.GrantRole(ctx, admin, alice, domain.RoleMinter)
	require.NoError(t, err)
	assert.True(t, roles.Has(domain.RoleMinter))

	has, err := l.access.HasRole(ctx, alice, domain.RoleMinter)
	require.NoError(t, err)
	assert.True(t, has)

	events, err := l.manager.ListEvents(ctx, 0, 0)
	require.NoError(t, err)
	last := events[len(events)-1]
	assert.Equal(t, domain.EventRoleGranted, last.Type)
	assert.Equal(t, admin, last.Actor)
	assert.Equal(t, alice, last.Account)
	assert.Equal(t, "MINTER", last.Attrs["role"])
}

func TestAccessService_GrantRole_Unauthorized(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})

	_, err := l.access.GrantRole(context.Background(), mallory, mallory, domain.RoleAdmin)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized(""))

	has, err := l.access.HasRole(context.Background(), mallory, domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestAccessService_GrantRole_InvalidRole(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})

	_, err := l.access.GrantRole(context.Background(), admin, alice, domain.Role(0))
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}

func TestAccessService_GrantRole_NoChangeEmitsNothing(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})
	ctx := context.Background()
	before := l.eventSeq(t)

	roles, err := l.access.GrantRole(ctx, admin, verifier, domain.RoleVerifier)
	require.NoError(t, err)
	assert.True(t, roles.Has(domain.RoleVerifier))
	assert.Equal(t, before, l.eventSeq(t))
}

func TestAccessService_RevokeRole(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})
	ctx := context.Background()

	roles, err := l.access.RevokeRole(ctx, admin, minter, domain.RoleMinter)
	require.NoError(t, err)
	assert.True(t, roles.IsEmpty())

	_, err = l.tokens.MintForAsset(ctx, minter, 1, units(1), alice)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized(""))

	grants, err := l.access.ListRoleGrants(ctx)
	require.NoError(t, err)
	for _, g := range grants {
		assert.NotEqual(t, minter, g.Account)
	}
}

func TestAccessService_Capabilities(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})
	ctx := context.Background()

	_, err := l.access.GrantRole(ctx, admin, alice, domain.RoleBurner)
	require.NoError(t, err)
	_, err = l.access.GrantRole(ctx, admin, alice, domain.RoleVerifier)
	require.NoError(t, err)

	caps, err := l.access.Capabilities(ctx, alice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Role{domain.RoleVerifier, domain.RoleBurner}, caps.Roles())

	caps, err = l.access.Capabilities(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, caps.IsEmpty())
}

func TestIdentityService_SetVerified(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})
	ctx := context.Background()

	rec, err := l.identity.SetVerified(ctx, kycAdmin, mallory, true)
	require.NoError(t, err)
	assert.True(t, rec.Verified)
	assert.Equal(t, kycAdmin, rec.UpdatedBy)

	ok, err := l.identity.IsVerified(ctx, mallory)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = l.identity.SetVerified(ctx, kycAdmin, mallory, false)
	require.NoError(t, err)
	ok, err = l.identity.IsVerified(ctx, mallory)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIdentityService_SetVerified_Unauthorized(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})

	_, err := l.identity.SetVerified(context.Background(), admin, mallory, true)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized(""))
}

func TestIdentityService_IsVerified_Unknown(t *testing.T) {
	l := newTestLedger(t, LedgerOptions{})

	ok, err := l.identity.IsVerified(context.Background(), "stranger")
	require.NoError(t, err)
	assert.False(t, ok)
}
