package domain

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"golang.org/x/crypto/sha3"
)

// IdempotentResponse is a cached result of a mutating call, replayed when the
// same caller retries with the same Idempotency-Key.
type IdempotentResponse struct {
	Fingerprint string          `json:"fingerprint"`
	StatusCode  int             `json:"status_code"`
	Body        json.RawMessage `json:"body"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BuildIdempotencyKey scopes a client-chosen key to the calling account.
func BuildIdempotencyKey(account AccountID, key string) string {
	return account.String() + ":" + key
}

// RequestFingerprint identifies the request a key was first used with, so a
// reused key with a different payload can be refused.
func RequestFingerprint(method, path string, body []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(method))
	h.Write([]byte{0})
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
