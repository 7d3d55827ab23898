package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/apperror"
	"rwa-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotentReplay = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 128
	idempotencyLockTTL      = 30 * time.Second
)

// bodyRecorder tees the handler's response body so it can be cached.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a caller retries a mutating
// request with the same Idempotency-Key. A key reused with a different
// payload is refused. Requests without the header pass through. The lock is
// optional; store failures degrade to running the request normally.
func Idempotency(cache ports.IdempotencyCache, lock ports.IdempotencyLock, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader(HeaderIdempotencyKey)
		if rawKey == "" || cache == nil {
			c.Next()
			return
		}
		if len(rawKey) > maxIdempotencyKeyLength {
			response.Error(c, apperror.Validation("Idempotency-Key is too long"))
			c.Abort()
			return
		}
		account, ok := CallerAccount(c)
		if !ok {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		ctx := c.Request.Context()
		// Bookkeeping after the handler must survive a request deadline.
		storeCtx := context.WithoutCancel(ctx)
		key := domain.BuildIdempotencyKey(account, rawKey)
		fingerprint := domain.RequestFingerprint(c.Request.Method, c.Request.URL.Path, body)
		logger := log.With().Str("account", account.String()).Str("idempotency_key", rawKey).Logger()

		cached, err := cache.Get(ctx, key)
		if err != nil {
			logger.Warn().Err(err).Msg("idempotency lookup failed, running request")
			c.Next()
			return
		}
		if cached != nil {
			replay(c, cached, fingerprint, logger)
			return
		}

		if lock != nil {
			acquired, err := lock.Acquire(ctx, key, idempotencyLockTTL)
			switch {
			case err != nil:
				logger.Warn().Err(err).Msg("idempotency lock failed, running request")
			case !acquired:
				response.Error(c, apperror.ErrIdempotencyInFlight())
				c.Abort()
				return
			default:
				defer func() {
					if err := lock.Release(storeCtx, key); err != nil {
						logger.Warn().Err(err).Msg("failed to release idempotency lock")
					}
				}()
				// The previous holder may have recorded its response
				// between the first lookup and the acquire.
				cached, err := cache.Get(ctx, key)
				if err != nil {
					logger.Warn().Err(err).Msg("idempotency lookup under lock failed, running request")
				} else if cached != nil {
					replay(c, cached, fingerprint, logger)
					return
				}
			}
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		// 5xx and rate-limit responses are transient; let the retry run again.
		status := rec.Status()
		if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
			return
		}
		stored := rec.body.Bytes()
		if len(stored) == 0 {
			stored = []byte("null")
		}
		entry, err := json.Marshal(domain.IdempotentResponse{
			Fingerprint: fingerprint,
			StatusCode:  status,
			Body:        json.RawMessage(stored),
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to encode idempotent response")
			return
		}
		if err := cache.Set(storeCtx, key, entry, ttl); err != nil {
			logger.Warn().Err(err).Msg("failed to store idempotent response")
		}
	}
}

func replay(c *gin.Context, cached []byte, fingerprint string, log zerolog.Logger) {
	var stored domain.IdempotentResponse
	if err := json.Unmarshal(cached, &stored); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable idempotent response")
		c.Next()
		return
	}
	if stored.Fingerprint != fingerprint {
		response.Error(c, apperror.ErrIdempotencyMismatch())
		c.Abort()
		return
	}
	c.Header(HeaderIdempotentReplay, "true")
	c.Data(stored.StatusCode, "application/json; charset=utf-8", stored.Body)
	c.Abort()
}
