package domain

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rwa-ledger/pkg/amount"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// EventType names a committed ledger mutation.
type EventType string

const (
	EventAssetRegistered     EventType = "ASSET_REGISTERED"
	EventAssetVerified       EventType = "ASSET_VERIFIED"
	EventAssetRejected       EventType = "ASSET_REJECTED"
	EventAssetTokenized      EventType = "ASSET_TOKENIZED"
	EventAssetRedeemed       EventType = "ASSET_REDEEMED"
	EventTokensMinted        EventType = "TOKENS_MINTED"
	EventTokensBurned        EventType = "TOKENS_BURNED"
	EventTransfer            EventType = "TRANSFER"
	EventRedemptionRequested EventType = "REDEMPTION_REQUESTED"
	EventRedemptionApproved  EventType = "REDEMPTION_APPROVED"
	EventRedemptionProcessed EventType = "REDEMPTION_PROCESSED"
	EventRoleGranted         EventType = "ROLE_GRANTED"
	EventRoleRevoked         EventType = "ROLE_REVOKED"
	EventIdentityUpdated     EventType = "IDENTITY_UPDATED"
	EventAssetTypeAdded      EventType = "ASSET_TYPE_ADDED"
	EventAssetTypeRemoved    EventType = "ASSET_TYPE_REMOVED"
	EventVerifierRegistered  EventType = "VERIFIER_REGISTERED"
	EventPaused              EventType = "PAUSED"
	EventUnpaused            EventType = "UNPAUSED"
	EventCompleteAssetFlow   EventType = "COMPLETE_ASSET_FLOW"
	EventFractionalTokenized EventType = "FRACTIONAL_TOKENIZED"
	EventFractionalRedeemed  EventType = "FRACTIONAL_REDEEMED"
)

// ErrJournalDiverged reports that the durable journal and the ledger hold
// different events for the same sequence numbers.
var ErrJournalDiverged = errors.New("event journal diverged from ledger")

// GenesisHash is the PrevHash of the first event.
var GenesisHash = strings.Repeat("0", 64)

// Event is one entry of the ledger's append-only, hash-chained log. The
// store fills Seq, ID, CreatedAt, PrevHash and Hash at commit.
type Event struct {
	Seq       uint64            `json:"seq"`
	ID        uuid.UUID         `json:"id"`
	Type      EventType         `json:"type"`
	Actor     AccountID         `json:"actor"`
	Account   AccountID         `json:"account,omitempty"`
	AssetID   AssetID           `json:"asset_id,omitempty"`
	RequestID RequestID         `json:"request_id,omitempty"`
	Amount    *amount.Amount    `json:"amount,omitempty"`
	Reason    string            `json:"reason,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	PrevHash  string            `json:"prev_hash"`
	Hash      string            `json:"hash"`
}

// WithAmount sets the event amount.
func (e Event) WithAmount(a amount.Amount) Event {
	e.Amount = &a
	return e
}

// Digest returns the Keccak-256 of the event's canonical encoding, with Hash
// excluded.
func (e Event) Digest() (string, error) {
	e.Hash = ""
	payload, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("encoding event: %w", err)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Seal links e to prev and sets its Hash.
func (e *Event) Seal(prev string) error {
	e.PrevHash = prev
	digest, err := e.Digest()
	if err != nil {
		return err
	}
	e.Hash = digest
	return nil
}

// VerifyChain checks that events are contiguous, each links to its
// predecessor and each Hash matches its content. prev is the hash preceding
// events[0].
func VerifyChain(prev string, events []Event) error {
	for i, e := range events {
		if e.PrevHash != prev {
			return fmt.Errorf("event %d: prev hash mismatch", e.Seq)
		}
		if i > 0 && e.Seq != events[i-1].Seq+1 {
			return fmt.Errorf("event %d: sequence gap after %d", e.Seq, events[i-1].Seq)
		}
		digest, err := e.Digest()
		if err != nil {
			return err
		}
		if digest != e.Hash {
			return fmt.Errorf("event %d: hash mismatch", e.Seq)
		}
		prev = e.Hash
	}
	return nil
}
