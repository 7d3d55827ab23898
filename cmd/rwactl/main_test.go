package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rwa-ledger/config"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-32bytes!!"

func TestIssueToken_ValidatesWithSameSecret(t *testing.T) {
	var out bytes.Buffer
	cfg := config.JWTConfig{Secret: testSecret, Expiry: time.Hour, Issuer: "rwa-test"}

	require.NoError(t, issueToken(&out, cfg, " 0xABCdef ", 0))

	token := strings.SplitN(out.String(), "\n", 2)[0]
	claims, err := service.NewJWTTokenService(testSecret, time.Hour, "rwa-test").Validate(token)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("0xabcdef"), claims.Account)
	assert.Contains(t, out.String(), "account=0xabcdef")
}

func TestIssueToken_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.JWTConfig
		account string
		wantErr string
	}{
		{"missing secret", config.JWTConfig{Expiry: time.Hour}, "alice", "jwt.secret"},
		{"empty account", config.JWTConfig{Secret: testSecret, Expiry: time.Hour}, "  ", "account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := issueToken(&out, tt.cfg, tt.account, 0)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestTokenIssueCommand(t *testing.T) {
	t.Setenv("RWA_JWT_SECRET", testSecret)

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "issue", "--account", "alice", "--ttl", "5m"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "account=alice")
}

func TestTokenIssueCommand_RequiresAccount(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "issue"})

	assert.Error(t, cmd.Execute())
}

func TestBootstrapCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
roles:
  - account: admin
    roles: [ADMIN, MINTER]
asset_types: [real_estate]
identities:
  - account: alice
    verified: true
verifiers:
  - account: verifier
    description: Appraiser
`), 0o600))

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"bootstrap", "check", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "bootstrap plan OK")
	assert.Contains(t, out.String(), "type     REAL_ESTATE")
	assert.Contains(t, out.String(), "1 role grants, 1 asset types, 1 identities, 1 verifiers")
}

func TestBootstrapCheckCommand_RejectsPlanWithoutAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("roles:\n  - account: minter\n    roles: [MINTER]\n"), 0o600))

	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"bootstrap", "check", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ADMIN")
}
