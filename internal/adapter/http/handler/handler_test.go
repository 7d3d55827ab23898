package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/internal/core/ports/mocks"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// harness serves the full router over mocked services. Bearer tokens are
// the caller's account name.
type harness struct {
	router   *gin.Engine
	access   *mocks.MockAccessService
	identity *mocks.MockIdentityService
	registry *mocks.MockRegistryService
	tokens   *mocks.MockTokenLedgerService
	manager  *mocks.MockManagerService
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		access:   mocks.NewMockAccessService(ctrl),
		identity: mocks.NewMockIdentityService(ctrl),
		registry: mocks.NewMockRegistryService(ctrl),
		tokens:   mocks.NewMockTokenLedgerService(ctrl),
		manager:  mocks.NewMockManagerService(ctrl),
	}
	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate(gomock.Any()).DoAndReturn(func(tok string) (*ports.TokenClaims, error) {
		return &ports.TokenClaims{Account: domain.AccountID(tok)}, nil
	}).AnyTimes()

	h.router = SetupRouter(RouterDeps{
		Access:   h.access,
		Identity: h.identity,
		Registry: h.registry,
		Tokens:   h.tokens,
		Manager:  h.manager,
		TokenSvc: tokenSvc,
		Logger:   zerolog.Nop(),
	})
	return h
}

func (h *harness) do(t *testing.T, method, path, account string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(b)
			require.NoError(t, err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if account != "" {
		req.Header.Set("Authorization", "Bearer "+account)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func data(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no object data: %v", resp)
	return d
}

// --- Routing and auth ---

func TestRouter_RequiresBearerToken(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodGet, "/v1/supply", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidToken, resp["error_code"])
}

func TestRouter_HealthIsPublic(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])
}

func TestWhoAmI(t *testing.T) {
	h := newHarness(t)
	h.access.EXPECT().Capabilities(gomock.Any(), domain.AccountID("admin")).
		Return(domain.NewRoleSet(domain.RoleAdmin, domain.RoleMinter), nil)

	w, resp := h.do(t, http.MethodGet, "/v1/me", "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, resp)
	assert.Equal(t, "admin", d["account"])
	assert.Equal(t, []interface{}{"ADMIN", "MINTER"}, d["roles"])
}

// --- Access ---

func TestGrantRole_Success(t *testing.T) {
	h := newHarness(t)
	h.access.EXPECT().GrantRole(gomock.Any(), domain.AccountID("admin"), domain.AccountID("carol"), domain.RoleVerifier).
		Return(domain.NewRoleSet(domain.RoleVerifier), nil)

	w, resp := h.do(t, http.MethodPost, "/v1/roles/grants", "admin", map[string]string{"account": "carol", "role": "verifier"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"VERIFIER"}, data(t, resp)["roles"])
}

func TestGrantRole_UnknownRole(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodPost, "/v1/roles/grants", "admin", map[string]string{"account": "carol", "role": "root"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, resp["error_code"])
}

func TestRevokeRole_Unauthorized(t *testing.T) {
	h := newHarness(t)
	h.access.EXPECT().RevokeRole(gomock.Any(), domain.AccountID("mallory"), domain.AccountID("admin"), domain.RoleAdmin).
		Return(domain.RoleSet(0), apperror.ErrUnauthorized("ADMIN"))

	w, resp := h.do(t, http.MethodPost, "/v1/roles/revocations", "mallory", map[string]string{"account": "admin", "role": "ADMIN"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperror.CodeUnauthorized, resp["error_code"])
}

func TestHasRole(t *testing.T) {
	h := newHarness(t)
	h.access.EXPECT().HasRole(gomock.Any(), domain.AccountID("bob"), domain.RoleBurner).Return(false, nil)

	w, resp := h.do(t, http.MethodGet, "/v1/accounts/bob/roles/burner_role", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, data(t, resp)["has_role"])
	assert.Equal(t, "BURNER", data(t, resp)["role"])
}

func TestSetVerified_RequiresFlag(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(t, http.MethodPut, "/v1/identities/alice", "kyc", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetVerified_Success(t *testing.T) {
	h := newHarness(t)
	h.identity.EXPECT().SetVerified(gomock.Any(), domain.AccountID("kyc"), domain.AccountID("carol"), false).
		Return(&domain.IdentityRecord{Account: "carol", Verified: false, UpdatedBy: "kyc"}, nil)

	w, resp := h.do(t, http.MethodPut, "/v1/identities/carol", "kyc", map[string]bool{"verified": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, data(t, resp)["verified"])
}

// --- Registry ---

func TestRegisterAsset_Success(t *testing.T) {
	h := newHarness(t)
	h.registry.EXPECT().RegisterAsset(gomock.Any(), domain.AccountID("alice"), ports.RegisterAssetInput{
		AssetType:       "REAL_ESTATE",
		ExternalAssetID: "deed-1",
		Value:           amount.MustParse("1000000"),
		Tag:             "flat",
	}).Return(&domain.Asset{ID: 1, Owner: "alice", AssetType: "REAL_ESTATE", Value: amount.MustParse("1000000"), Status: domain.AssetStatusPending}, nil)

	w, resp := h.do(t, http.MethodPost, "/v1/assets", "alice", map[string]string{
		"asset_type":        " real_estate ",
		"external_asset_id": "deed-1",
		"value":             "1000000",
		"tag":               "flat",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	d := data(t, resp)
	assert.Equal(t, float64(1), d["id"])
	assert.Equal(t, "1000000", d["value"])
	assert.Equal(t, "PENDING", d["status"])
}

func TestRegisterAsset_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"malformed json", `{"asset_type":`},
		{"negative value", `{"asset_type":"ART","external_asset_id":"a","value":"-1"}`},
		{"fractional value", `{"asset_type":"ART","external_asset_id":"a","value":"1.5"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			w, resp := h.do(t, http.MethodPost, "/v1/assets", "alice", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apperror.CodeValidation, resp["error_code"])
		})
	}
}

func TestRegisterAsset_RejectsNonJSON(t *testing.T) {
	h := newHarness(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/assets", bytes.NewReader([]byte("value=1")))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Authorization", "Bearer alice")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestVerifyAsset_MapsServiceError(t *testing.T) {
	h := newHarness(t)
	h.registry.EXPECT().VerifyAsset(gomock.Any(), domain.AccountID("verifier"), domain.AssetID(9), true, "ok").
		Return(nil, apperror.ErrNotFound("asset"))

	w, resp := h.do(t, http.MethodPost, "/v1/assets/9/verification", "verifier", map[string]interface{}{"approve": true, "proof": "ok"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, resp["error_code"])
}

func TestGetAsset_BadID(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/v1/assets/0", "/v1/assets/abc", "/v1/assets/-3"} {
		w, _ := h.do(t, http.MethodGet, path, "alice", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestListAssets_Filters(t *testing.T) {
	h := newHarness(t)
	h.registry.EXPECT().GetAssetsByOwner(gomock.Any(), domain.AccountID("0xabc")).
		Return([]domain.Asset{{ID: 2, Owner: "0xabc"}}, nil)
	h.registry.EXPECT().GetPendingAssets(gomock.Any()).Return(nil, nil)

	w, resp := h.do(t, http.MethodGet, "/v1/assets?owner=0xABC", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 1)

	w, resp = h.do(t, http.MethodGet, "/v1/assets?status=PENDING", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, resp["data"])

	w, _ = h.do(t, http.MethodGet, "/v1/assets", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(t, http.MethodGet, "/v1/assets?owner=a&status=pending", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountAssets(t *testing.T) {
	h := newHarness(t)
	h.registry.EXPECT().GetTotalAssets(gomock.Any()).Return(uint64(4), nil)

	w, resp := h.do(t, http.MethodGet, "/v1/registry/count", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), data(t, resp)["count"])
}

// --- Token ledger ---

func TestMintForAsset_Success(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().MintForAsset(gomock.Any(), domain.AccountID("minter"), domain.AssetID(3), amount.MustParse("500"), domain.AccountID("alice")).
		Return(&domain.TokenIssuance{AssetID: 3, AmountIssued: amount.MustParse("500")}, nil)

	w, resp := h.do(t, http.MethodPost, "/v1/assets/3/mint", "minter", map[string]string{"amount": "500", "recipient": "alice"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "500", data(t, resp)["amount_issued"])
}

func TestTransfer_Success(t *testing.T) {
	h := newHarness(t)
	gomock.InOrder(
		h.tokens.EXPECT().Transfer(gomock.Any(), domain.AccountID("alice"), domain.AccountID("bob"), amount.MustParse("40")).Return(nil),
		h.tokens.EXPECT().BalanceOf(gomock.Any(), domain.AccountID("alice")).Return(amount.MustParse("60"), nil),
	)

	w, resp := h.do(t, http.MethodPost, "/v1/transfers", "alice", map[string]string{"to": "bob", "amount": "40"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "60", data(t, resp)["balance"])
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().Transfer(gomock.Any(), domain.AccountID("alice"), domain.AccountID("bob"), amount.MustParse("1000")).
		Return(apperror.ErrInsufficientBalance())

	w, resp := h.do(t, http.MethodPost, "/v1/transfers", "alice", map[string]string{"to": "bob", "amount": "1000"})
	assert.Equal(t, apperror.CodeInsufficientBalance, resp["error_code"])
	assert.GreaterOrEqual(t, w.Code, 400)
}

func TestBurn_Success(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().Burn(gomock.Any(), domain.AccountID("burner"), domain.AccountID("alice"), amount.MustParse("5")).Return(nil)
	h.tokens.EXPECT().BalanceOf(gomock.Any(), domain.AccountID("alice")).Return(amount.MustParse("95"), nil)

	w, resp := h.do(t, http.MethodPost, "/v1/burns", "burner", map[string]string{"account": "alice", "amount": "5"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "95", data(t, resp)["balance"])
}

func TestRedemptionLifecycle(t *testing.T) {
	h := newHarness(t)
	req := &domain.RedemptionRequest{ID: 1, AssetID: 2, Requester: "alice", TokenAmount: amount.MustParse("10")}
	h.tokens.EXPECT().RequestRedemption(gomock.Any(), domain.AccountID("alice"), domain.AssetID(2), amount.MustParse("10")).Return(req, nil)
	h.tokens.EXPECT().ApproveRedemption(gomock.Any(), domain.AccountID("admin"), domain.RequestID(1)).Return(req, nil)
	h.tokens.EXPECT().ProcessRedemption(gomock.Any(), domain.AccountID("admin"), domain.RequestID(1)).
		Return(nil, apperror.ErrAlreadyProcessed())

	w, _ := h.do(t, http.MethodPost, "/v1/redemptions", "alice", map[string]interface{}{"asset_id": 2, "amount": "10"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = h.do(t, http.MethodPost, "/v1/redemptions/1/approve", "admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, resp := h.do(t, http.MethodPost, "/v1/redemptions/1/process", "admin", nil)
	assert.Equal(t, apperror.CodeAlreadyProcessed, resp["error_code"])
}

func TestListRedemptionRequests(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().GetAllRedemptionRequests(gomock.Any()).Return([]domain.RedemptionRequest{{ID: 1}, {ID: 2}}, nil)
	h.tokens.EXPECT().GetRedemptionRequestsByUser(gomock.Any(), domain.AccountID("bob")).Return(nil, nil)

	_, resp := h.do(t, http.MethodGet, "/v1/redemptions", "admin", nil)
	assert.Len(t, resp["data"], 2)

	_, resp = h.do(t, http.MethodGet, "/v1/redemptions?account=bob", "admin", nil)
	assert.Equal(t, []interface{}{}, resp["data"])
}

func TestPauseAndUnpause(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().Pause(gomock.Any(), domain.AccountID("admin")).Return(nil)
	h.tokens.EXPECT().Unpause(gomock.Any(), domain.AccountID("admin")).Return(apperror.ErrInvalidState("ledger is not paused"))

	w, resp := h.do(t, http.MethodPost, "/v1/pause", "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data(t, resp)["paused"])

	_, resp = h.do(t, http.MethodPost, "/v1/unpause", "admin", nil)
	assert.Equal(t, apperror.CodeInvalidState, resp["error_code"])
}

func TestGetAssetForTokenAmount(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().GetAssetForTokenAmount(gomock.Any(), amount.MustParse("750")).Return(domain.AssetID(5), nil)

	_, resp := h.do(t, http.MethodGet, "/v1/issuances/lookup?amount=750", "alice", nil)
	assert.Equal(t, float64(5), data(t, resp)["asset_id"])

	w, _ := h.do(t, http.MethodGet, "/v1/issuances/lookup", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTotalSupply(t *testing.T) {
	h := newHarness(t)
	h.tokens.EXPECT().TotalSupply(gomock.Any()).Return(amount.MustParse("123456789012345678901234567890"), nil)

	w, resp := h.do(t, http.MethodGet, "/v1/supply", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "123456789012345678901234567890", data(t, resp)["amount"])
}

// --- Manager ---

func TestAddAssetType_ReturnsAllowlist(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().AddAssetType(gomock.Any(), domain.AccountID("admin"), domain.AssetType("VEHICLE")).Return(nil)
	h.manager.EXPECT().GetSupportedAssetTypes(gomock.Any()).Return([]domain.SupportedAssetType{{Type: "VEHICLE"}}, nil)

	w, resp := h.do(t, http.MethodPost, "/v1/asset-types", "admin", map[string]string{"type": "vehicle"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 1)
}

func TestRemoveAssetType_NotFound(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().RemoveAssetType(gomock.Any(), domain.AccountID("admin"), domain.AssetType("YACHT")).
		Return(apperror.ErrNotFound("asset type"))

	w, _ := h.do(t, http.MethodDelete, "/v1/asset-types/yacht", "admin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterAssetWithValidation_Unsupported(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().RegisterAssetWithValidation(gomock.Any(), domain.AccountID("alice"), gomock.Any()).
		Return(nil, apperror.ErrUnsupportedAssetType("YACHT"))

	_, resp := h.do(t, http.MethodPost, "/v1/manager/assets", "alice", map[string]string{
		"asset_type": "yacht", "external_asset_id": "y-1", "value": "10",
	})
	assert.Equal(t, apperror.CodeUnsupportedAssetType, resp["error_code"])
}

func TestVerifyAndTokenize_RequiresAmountOnApprove(t *testing.T) {
	h := newHarness(t)

	w, resp := h.do(t, http.MethodPost, "/v1/assets/1/verify-and-tokenize", "verifier", map[string]interface{}{"approve": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, resp["error_code"])
}

func TestVerifyAndTokenize_RejectSkipsAmount(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().VerifyAndTokenize(gomock.Any(), domain.AccountID("verifier"), domain.AssetID(1), false, "forged", amount.Zero()).
		Return(&ports.AssetStatusView{Asset: domain.Asset{ID: 1, Status: domain.AssetStatusRejected}}, nil)

	w, resp := h.do(t, http.MethodPost, "/v1/assets/1/verify-and-tokenize", "verifier", map[string]interface{}{"approve": false, "proof": "forged"})
	require.Equal(t, http.StatusOK, w.Code)
	asset := data(t, resp)["asset"].(map[string]interface{})
	assert.Equal(t, "REJECTED", asset["status"])
}

func TestFractionalTokenizeAndRedeem(t *testing.T) {
	h := newHarness(t)
	iss := &domain.TokenIssuance{AssetID: 4, AmountIssued: amount.MustParse("300"), RemainingRedeemable: amount.MustParse("300")}
	h.manager.EXPECT().TokenizeAsset(gomock.Any(), domain.AccountID("alice"), domain.AssetID(4), amount.MustParse("300")).Return(iss, nil)
	h.manager.EXPECT().RedeemTokens(gomock.Any(), domain.AccountID("alice"), domain.AssetID(4), amount.MustParse("1000")).
		Return(nil, apperror.ErrInsufficientTokenBalance())

	w, _ := h.do(t, http.MethodPost, "/v1/assets/4/fractions", "alice", map[string]string{"amount": "300"})
	assert.Equal(t, http.StatusCreated, w.Code)

	_, resp := h.do(t, http.MethodPost, "/v1/assets/4/fractions/redeem", "alice", map[string]string{"amount": "1000"})
	assert.Equal(t, apperror.CodeInsufficientTokenBalance, resp["error_code"])
}

func TestFractionalQueries(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().GetTokenizationRatio(gomock.Any(), domain.AssetID(4)).Return(uint64(3000), nil)
	h.manager.EXPECT().GetRemainingTokenizationAmount(gomock.Any(), domain.AssetID(4)).Return(amount.MustParse("700"), nil)
	h.manager.EXPECT().GetAssetBackingPerToken(gomock.Any(), domain.AssetID(4)).Return(amount.Amount{}, apperror.ErrInvalidState("nothing issued"))

	_, resp := h.do(t, http.MethodGet, "/v1/assets/4/ratio", "alice", nil)
	assert.Equal(t, float64(3000), data(t, resp)["basis_points"])

	_, resp = h.do(t, http.MethodGet, "/v1/assets/4/remaining", "alice", nil)
	assert.Equal(t, "700", data(t, resp)["amount"])

	_, resp = h.do(t, http.MethodGet, "/v1/assets/4/backing-per-token", "alice", nil)
	assert.Equal(t, apperror.CodeInvalidState, resp["error_code"])
}

func TestCanRedeemAsset(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().CanRedeemAsset(gomock.Any(), domain.AccountID("bob"), domain.AssetID(2), amount.MustParse("50")).Return(true, nil)

	_, resp := h.do(t, http.MethodGet, "/v1/accounts/bob/can-redeem?asset_id=2&amount=50", "alice", nil)
	assert.Equal(t, true, data(t, resp)["can_redeem"])

	w, _ := h.do(t, http.MethodGet, "/v1/accounts/bob/can-redeem?amount=50", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEvents_Paging(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().ListEvents(gomock.Any(), uint64(10), 2).
		Return([]domain.Event{{Seq: 11, Type: domain.EventTransfer}, {Seq: 12, Type: domain.EventPaused}}, nil)
	h.manager.EXPECT().ListEvents(gomock.Any(), uint64(0), maxEventPage).Return(nil, nil)

	_, resp := h.do(t, http.MethodGet, "/v1/events?after=10&limit=2", "alice", nil)
	d := data(t, resp)
	assert.Equal(t, float64(12), d["next_after"])
	assert.Len(t, d["events"], 2)

	_, resp = h.do(t, http.MethodGet, "/v1/events?limit=5000", "alice", nil)
	d = data(t, resp)
	assert.Equal(t, float64(0), d["next_after"])
	assert.Equal(t, []interface{}{}, d["events"])

	w, _ := h.do(t, http.MethodGet, "/v1/events?after=x", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSystemStats(t *testing.T) {
	h := newHarness(t)
	h.manager.EXPECT().GetSystemStats(gomock.Any()).Return(&ports.SystemStats{
		TotalAssets: 3, TotalSupply: amount.MustParse("900"), Mode: domain.IssuanceModeFractional,
	}, nil)

	_, resp := h.do(t, http.MethodGet, "/v1/stats", "alice", nil)
	d := data(t, resp)
	assert.Equal(t, float64(3), d["total_assets"])
	assert.Equal(t, "900", d["total_supply"])
}
