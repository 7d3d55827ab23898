package handler

import (
	"net/http"
	"time"

	"rwa-ledger/internal/adapter/http/middleware"
	redisStore "rwa-ledger/internal/adapter/storage/redis"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Access   ports.AccessService
	Identity ports.IdentityService
	Registry ports.RegistryService
	Tokens   ports.TokenLedgerService
	Manager  ports.ManagerService
	TokenSvc ports.TokenService

	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit        int64                      // mutations per minute per caller; 0 = defaults
	IdempotencyCache ports.IdempotencyCache     // nil = Idempotency-Key ignored
	IdempotencyLock  ports.IdempotencyLock      // nil = no in-flight guard
	IdempotencyTTL   time.Duration
	RequestTimeout   time.Duration

	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler // nil = /metrics not served
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger, deps.Metrics))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.Timeout(deps.RequestTimeout))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	rules := middleware.DefaultRateLimitRules()
	if deps.RateLimit > 0 {
		rules = middleware.ScaledRateLimitRules(deps.RateLimit)
	}
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}
	idempotent := middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyLock, deps.IdempotencyTTL, deps.Logger)

	// Every API route is authenticated; rate limits key on the caller.
	v1 := r.Group("/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger), middleware.RequireJSON())
	reads := v1.Group("", rl(middleware.GroupReads))
	writes := v1.Group("", rl(middleware.GroupMutations), idempotent)
	admin := v1.Group("", rl(middleware.GroupAdmin), idempotent)

	authH := NewAuthHandler(deps.Access)
	accessH := NewAccessHandler(deps.Access, deps.Identity)
	registryH := NewRegistryHandler(deps.Registry)
	tokenH := NewTokenHandler(deps.Tokens)
	managerH := NewManagerHandler(deps.Manager)

	reads.GET("/me", authH.WhoAmI)

	// --- Access control and KYC ---
	admin.POST("/roles/grants", accessH.GrantRole)
	admin.POST("/roles/revocations", accessH.RevokeRole)
	reads.GET("/roles", accessH.ListRoleGrants)
	reads.GET("/accounts/:account/roles", accessH.Capabilities)
	reads.GET("/accounts/:account/roles/:role", accessH.HasRole)
	admin.PUT("/identities/:account", accessH.SetVerified)
	reads.GET("/identities/:account", accessH.IsVerified)

	// --- Asset registry ---
	writes.POST("/assets", registryH.RegisterAsset)
	writes.POST("/assets/:id/verification", registryH.VerifyAsset)
	writes.POST("/assets/:id/mark-tokenized", registryH.MarkAsTokenized)
	writes.POST("/assets/:id/mark-redeemed", registryH.MarkAsRedeemed)
	reads.GET("/assets", registryH.ListAssets)
	reads.GET("/assets/:id", registryH.GetAsset)
	reads.GET("/assets/:id/verified", registryH.IsAssetVerified)
	reads.GET("/assets/:id/tokenized", registryH.IsAssetTokenized)
	reads.GET("/registry/count", registryH.CountAssets)

	// --- Token ledger ---
	writes.POST("/assets/:id/mint", tokenH.MintForAsset)
	writes.POST("/burns", tokenH.Burn)
	writes.POST("/transfers", tokenH.Transfer)
	writes.POST("/redemptions", tokenH.RequestRedemption)
	writes.POST("/redemptions/:id/approve", tokenH.ApproveRedemption)
	writes.POST("/redemptions/:id/process", tokenH.ProcessRedemption)
	admin.POST("/pause", tokenH.Pause)
	admin.POST("/unpause", tokenH.Unpause)
	reads.GET("/paused", tokenH.IsPaused)
	reads.GET("/assets/:id/tokens", tokenH.GetTokensForAsset)
	reads.GET("/issuances/lookup", tokenH.GetAssetForTokenAmount)
	reads.GET("/redemptions", tokenH.ListRedemptionRequests)
	reads.GET("/redemptions/:id", tokenH.GetRedemptionRequest)
	reads.GET("/accounts/:account/balance", tokenH.BalanceOf)
	reads.GET("/supply", tokenH.TotalSupply)

	// --- Asset manager ---
	admin.POST("/asset-types", managerH.AddAssetType)
	admin.DELETE("/asset-types/:type", managerH.RemoveAssetType)
	reads.GET("/asset-types", managerH.GetSupportedAssetTypes)
	writes.POST("/manager/assets", managerH.RegisterAsset)
	admin.POST("/verifiers", managerH.RegisterVerifier)
	reads.GET("/verifiers", managerH.GetVerifiers)
	writes.POST("/assets/:id/verify-and-tokenize", managerH.VerifyAndTokenize)
	writes.POST("/redemptions/:id/complete", managerH.ProcessRedemptionFlow)
	writes.POST("/assets/:id/fractions", managerH.TokenizeAsset)
	writes.POST("/assets/:id/fractions/redeem", managerH.RedeemTokens)
	reads.GET("/assets/:id/ratio", managerH.GetTokenizationRatio)
	reads.GET("/assets/:id/backing-per-token", managerH.GetAssetBackingPerToken)
	reads.GET("/assets/:id/remaining", managerH.GetRemainingTokenizationAmount)
	reads.GET("/assets/:id/tokenization-amount", managerH.GetTokenizationAmount)
	reads.GET("/assets/:id/redemption-amount", managerH.GetRedemptionAmount)
	reads.GET("/assets/:id/status", managerH.GetAssetStatus)
	reads.GET("/issuances", managerH.GetAllTokenizedAssets)
	reads.GET("/accounts/:account/assets", managerH.GetUserAssets)
	reads.GET("/accounts/:account/can-redeem", managerH.CanRedeemAsset)
	reads.GET("/stats", managerH.GetSystemStats)
	reads.GET("/events", managerH.ListEvents)

	return r
}
