package domain

import (
	"errors"
	"math"
	"time"

	"rwa-ledger/pkg/amount"
)

// IssuanceMode selects how claim-tokens are issued against an asset.
type IssuanceMode string

const (
	// IssuanceModeSimple mints once per asset.
	IssuanceModeSimple IssuanceMode = "simple"
	// IssuanceModeFractional mints up to the asset value and tracks cumulative redemption.
	IssuanceModeFractional IssuanceMode = "fractional"
)

// BasisPoints is 100%.
const BasisPoints = 10000

// TokenIssuance records the tokens issued against one asset.
type TokenIssuance struct {
	AssetID             AssetID       `json:"asset_id"`
	Mode                IssuanceMode  `json:"mode"`
	AmountIssued        amount.Amount `json:"amount_issued"`
	Redeemed            amount.Amount `json:"redeemed"`
	RemainingRedeemable amount.Amount `json:"remaining_redeemable"`
	BackingRatioBps     uint64        `json:"backing_ratio_bps"`
	IssuedAt            time.Time     `json:"issued_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// IsRetired reports whether every issued token has been redeemed.
func (t *TokenIssuance) IsRetired() bool {
	return t.RemainingRedeemable.IsZero()
}

// BackingRatioBps computes issued * 10000 / value, truncated. Ratios beyond
// the uint64 range saturate at math.MaxUint64.
func BackingRatioBps(issued, value amount.Amount) (uint64, error) {
	bps, err := issued.MulDiv(amount.New(BasisPoints), value)
	if errors.Is(err, amount.ErrOverflow) {
		return math.MaxUint64, nil
	}
	if err != nil {
		return 0, err
	}
	v, ok := bps.Uint64()
	if !ok {
		return math.MaxUint64, nil
	}
	return v, nil
}

// BackingPerToken computes value / issued expressed in token base units,
// i.e. value * 10^decimals / issued.
func BackingPerToken(value, issued amount.Amount, decimals uint8) (amount.Amount, error) {
	return value.MulDiv(amount.Unit(decimals), issued)
}
