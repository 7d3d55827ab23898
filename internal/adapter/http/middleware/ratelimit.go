package middleware

import (
	"strconv"
	"time"

	redisStore "rwa-ledger/internal/adapter/storage/redis"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

const (
	GroupMutations = "mutations"
	GroupAdmin     = "admin"
	GroupReads     = "reads"
)

const defaultMutationsPerMinute = 120

// DefaultRateLimitRules returns the per-caller limits of each endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return ScaledRateLimitRules(defaultMutationsPerMinute)
}

// ScaledRateLimitRules derives every group's limit from the per-minute
// mutation budget: admin calls get a quarter of it, reads five times it.
func ScaledRateLimitRules(mutationsPerMinute int64) map[string]RateLimitRule {
	admin := mutationsPerMinute / 4
	if admin < 1 {
		admin = 1
	}
	return map[string]RateLimitRule{
		GroupMutations: {Limit: mutationsPerMinute, Window: time.Minute},
		GroupAdmin:     {Limit: admin, Window: time.Minute},
		GroupReads:     {Limit: mutationsPerMinute * 5, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractIdentifier(c) + ":" + group

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys limits by caller account, or by client IP before
// authentication has run.
func extractIdentifier(c *gin.Context) string {
	if account, ok := CallerAccount(c); ok {
		return "acct:" + account.String()
	}
	return "ip:" + c.ClientIP()
}
