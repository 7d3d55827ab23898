package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "rwa-ledger/internal/adapter/http/handler"
	"rwa-ledger/internal/adapter/http/middleware"
	"rwa-ledger/internal/adapter/storage/ledgerstore"
	redisStore "rwa-ledger/internal/adapter/storage/redis"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/internal/metrics"
	"rwa-ledger/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the real ledger, services, JWT auth and Redis stores
// (miniredis) behind an httptest server.
type testApp struct {
	server *httptest.Server
	tokens map[domain.AccountID]string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := zerolog.Nop()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	store, err := ledgerstore.New(log)
	require.NoError(t, err)
	core := service.NewLedgerCore(store, service.LedgerOptions{TokenDecimals: 18})

	plan, err := service.ParseBootstrapPlan([]byte(`
roles:
  - account: admin
    roles: [ADMIN]
  - account: verifier
    roles: [VERIFIER]
  - account: minter
    roles: [MINTER]
asset_types: [REAL_ESTATE]
identities:
  - account: alice
    verified: true
  - account: bob
    verified: true
`))
	require.NoError(t, err)
	applied, err := service.NewBootstrapService(core, log).Apply(context.Background(), plan)
	require.NoError(t, err)
	require.True(t, applied)

	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", time.Hour, "rwa-test")
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Access:           service.NewAccessService(core, log),
		Identity:         service.NewIdentityService(core, log),
		Registry:         service.NewRegistryService(core, log),
		Tokens:           service.NewTokenLedgerService(core, log),
		Manager:          service.NewManagerService(core, log),
		TokenSvc:         tokenSvc,
		RateLimitStore:   redisStore.NewRateLimitStore(rdb),
		IdempotencyCache: redisStore.NewIdempotencyCache(rdb),
		IdempotencyLock:  redisStore.NewIdempotencyLock(rdb),
		IdempotencyTTL:   time.Hour,
		RequestTimeout:   5 * time.Second,
		HealthCheckers:   []ports.HealthChecker{store, redisStore.NewHealthCheck(rdb)},
		Metrics:          m,
		MetricsHandler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:           log,
	})

	app := &testApp{server: httptest.NewServer(router), tokens: map[domain.AccountID]string{}}
	t.Cleanup(app.server.Close)
	for _, a := range []domain.AccountID{"admin", "verifier", "minter", "alice", "bob"} {
		tok, _, err := tokenSvc.Generate(a)
		require.NoError(t, err)
		app.tokens[a] = tok
	}
	return app
}

type apiResponse struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func (a *testApp) call(t *testing.T, method, path string, as domain.AccountID, body interface{}, headers ...string) (int, http.Header, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != "" {
		req.Header.Set("Authorization", "Bearer "+a.tokens[as])
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, resp.Header, out
}

func decode[T any](t *testing.T, r apiResponse) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(r.Data, &v))
	return v
}

func balanceOf(t *testing.T, app *testApp, account domain.AccountID) string {
	t.Helper()
	code, _, resp := app.call(t, http.MethodGet, "/v1/accounts/"+account.String()+"/balance", "alice", nil)
	require.Equal(t, http.StatusOK, code)
	return decode[struct {
		Balance string `json:"balance"`
	}](t, resp).Balance
}

func TestServer_AssetLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Register through the allowlist-checked endpoint.
	code, _, resp := app.call(t, http.MethodPost, "/v1/manager/assets", "alice", map[string]string{
		"asset_type":        "real_estate",
		"external_asset_id": "deed-42",
		"value":             "1000000",
	})
	require.Equal(t, http.StatusCreated, code, resp.ErrorCode)
	asset := decode[domain.Asset](t, resp)
	assert.Equal(t, domain.AssetID(1), asset.ID)
	assert.Equal(t, domain.AssetStatusPending, asset.Status)

	// Same external ID again is refused.
	code, _, resp = app.call(t, http.MethodPost, "/v1/manager/assets", "bob", map[string]string{
		"asset_type": "REAL_ESTATE", "external_asset_id": "deed-42", "value": "5",
	})
	assert.Equal(t, "LED_003", resp.ErrorCode)
	assert.GreaterOrEqual(t, code, 400)

	// Only verifiers may verify.
	_, _, resp = app.call(t, http.MethodPost, "/v1/assets/1/verify-and-tokenize", "alice", map[string]interface{}{
		"approve": true, "proof": "self", "token_amount": "1000000",
	})
	assert.Equal(t, "ACL_001", resp.ErrorCode)

	code, _, resp = app.call(t, http.MethodPost, "/v1/assets/1/verify-and-tokenize", "verifier", map[string]interface{}{
		"approve": true, "proof": "ipfs://deed", "token_amount": "1000000",
	})
	require.Equal(t, http.StatusOK, code, resp.ErrorCode)
	status := decode[ports.AssetStatusView](t, resp)
	assert.True(t, status.IsTokenized)
	assert.Equal(t, "1000000", balanceOf(t, app, "alice"))

	// Transfer 400000 to bob, retried with the same Idempotency-Key.
	for i := 0; i < 2; i++ {
		code, hdr, resp := app.call(t, http.MethodPost, "/v1/transfers", "alice",
			map[string]string{"to": "bob", "amount": "400000"},
			middleware.HeaderIdempotencyKey, "transfer-1")
		require.Equal(t, http.StatusOK, code, resp.ErrorCode)
		if i == 1 {
			assert.Equal(t, "true", hdr.Get(middleware.HeaderIdempotentReplay))
		}
	}
	assert.Equal(t, "600000", balanceOf(t, app, "alice"))
	assert.Equal(t, "400000", balanceOf(t, app, "bob"))

	// Bob redeems his share; the admin completes the flow in one call.
	code, _, resp = app.call(t, http.MethodPost, "/v1/redemptions", "bob", map[string]interface{}{"asset_id": 1, "amount": "400000"})
	require.Equal(t, http.StatusCreated, code, resp.ErrorCode)
	req := decode[domain.RedemptionRequest](t, resp)

	code, _, resp = app.call(t, http.MethodPost, "/v1/redemptions/1/complete", "admin", nil)
	require.Equal(t, http.StatusOK, code, resp.ErrorCode)
	done := decode[domain.RedemptionRequest](t, resp)
	assert.Equal(t, req.ID, done.ID)
	assert.True(t, done.Processed)

	assert.Equal(t, "0", balanceOf(t, app, "bob"))

	code, _, resp = app.call(t, http.MethodGet, "/v1/stats", "alice", nil)
	require.Equal(t, http.StatusOK, code)
	stats := decode[ports.SystemStats](t, resp)
	assert.Equal(t, "600000", stats.TotalSupply.String())
	assert.Equal(t, uint64(1), stats.RedeemedAssets)
	assert.Equal(t, uint64(1), stats.Redemptions)

	// The event log pages from the beginning.
	code, _, resp = app.call(t, http.MethodGet, "/v1/events?limit=3", "alice", nil)
	require.Equal(t, http.StatusOK, code)
	page := decode[struct {
		Events    []domain.Event `json:"events"`
		NextAfter uint64         `json:"next_after"`
	}](t, resp)
	require.Len(t, page.Events, 3)
	assert.Equal(t, uint64(1), page.Events[0].Seq)
	assert.Equal(t, uint64(3), page.NextAfter)
	require.NoError(t, domain.VerifyChain(domain.GenesisHash, page.Events))
}

func TestServer_PauseBlocksMutations(t *testing.T) {
	app := newTestApp(t)

	code, _, _ := app.call(t, http.MethodPost, "/v1/pause", "admin", nil)
	require.Equal(t, http.StatusOK, code)

	code, _, resp := app.call(t, http.MethodPost, "/v1/assets", "alice", map[string]string{
		"asset_type": "REAL_ESTATE", "external_asset_id": "deed-1", "value": "10",
	})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "LED_013", resp.ErrorCode)

	code, _, _ = app.call(t, http.MethodPost, "/v1/unpause", "admin", nil)
	require.Equal(t, http.StatusOK, code)
	code, _, _ = app.call(t, http.MethodPost, "/v1/assets", "alice", map[string]string{
		"asset_type": "REAL_ESTATE", "external_asset_id": "deed-1", "value": "10",
	})
	assert.Equal(t, http.StatusCreated, code)
}

func TestServer_RejectsForgedToken(t *testing.T) {
	app := newTestApp(t)
	app.tokens["eve"] = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJhZG1pbiJ9.forged"

	code, _, resp := app.call(t, http.MethodPost, "/v1/pause", "eve", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "ACL_002", resp.ErrorCode)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	code, _, _ := app.call(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)

	// One request to populate the latency histogram.
	app.call(t, http.MethodGet, "/v1/supply", "alice", nil)

	resp, err := app.server.Client().Get(app.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "rwa_ledger_http_request_duration_seconds")
}
