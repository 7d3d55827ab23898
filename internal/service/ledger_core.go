package service

import (
	"context"
	"fmt"
	"strings"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/pkg/amount"
	"rwa-ledger/pkg/apperror"
)

// LedgerOptions fixes the per-deployment behavior of the ledger.
type LedgerOptions struct {
	Mode            domain.IssuanceMode
	ComplianceGated bool
	TokenDecimals   uint8
}

// LedgerCore holds the transaction-level state transitions shared by the
// registry, token ledger and manager services. Its methods take an open
// transaction and perform no capability checks: callers authorize first and
// then compose core steps, so a compound operation is one commit.
type LedgerCore struct {
	store ports.LedgerStore
	opts  LedgerOptions
}

// NewLedgerCore wires the core to a store.
func NewLedgerCore(store ports.LedgerStore, opts LedgerOptions) *LedgerCore {
	if opts.Mode == "" {
		opts.Mode = domain.IssuanceModeSimple
	}
	return &LedgerCore{store: store, opts: opts}
}

// Mode returns the configured issuance mode.
func (c *LedgerCore) Mode() domain.IssuanceMode { return c.opts.Mode }

func (c *LedgerCore) update(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	return asAppError(c.store.Update(ctx, fn))
}

func (c *LedgerCore) view(ctx context.Context, fn func(tx ports.LedgerReader) error) error {
	return asAppError(c.store.View(ctx, fn))
}

func putErr(what string, err error) error {
	if err == nil {
		return nil
	}
	return apperror.InternalError(fmt.Errorf("put %s: %w", what, err))
}

// ---- registry ----

func (c *LedgerCore) registerAsset(tx ports.LedgerTx, caller domain.AccountID, in ports.RegisterAssetInput) (*domain.Asset, error) {
	if err := requireAccount(caller, "caller"); err != nil {
		return nil, err
	}
	in.AssetType = domain.NormalizeAssetType(string(in.AssetType))
	externalID := strings.TrimSpace(in.ExternalAssetID)
	if externalID == "" {
		return nil, apperror.Validation("external asset id is required")
	}
	if in.AssetType == "" {
		return nil, apperror.Validation("asset type is required")
	}
	if !in.Value.IsPositive() {
		return nil, apperror.ErrInvalidValue()
	}
	if _, taken := tx.AssetByExternalID(externalID); taken {
		return nil, apperror.ErrDuplicateExternalID()
	}

	meta := tx.Meta()
	asset := domain.Asset{
		ID:              meta.NextAssetID,
		Owner:           caller,
		AssetType:       in.AssetType,
		ExternalAssetID: externalID,
		Value:           in.Value,
		Tag:             in.Tag,
		Metadata:        in.Metadata,
		Status:          domain.AssetStatusPending,
		CreatedAt:       tx.Now(),
	}
	meta.NextAssetID++

	if err := tx.PutAsset(asset); err != nil {
		return nil, putErr("asset", err)
	}
	if err := tx.PutMeta(meta); err != nil {
		return nil, putErr("meta", err)
	}

	tx.Emit(domain.Event{
		Type:    domain.EventAssetRegistered,
		Actor:   caller,
		Account: caller,
		AssetID: asset.ID,
		Attrs: map[string]string{
			"asset_type":        string(asset.AssetType),
			"external_asset_id": asset.ExternalAssetID,
		},
	}.WithAmount(asset.Value))

	return &asset, nil
}

func (c *LedgerCore) getAsset(tx ports.LedgerReader, id domain.AssetID) (*domain.Asset, error) {
	asset, ok := tx.Asset(id)
	if !ok {
		return nil, apperror.ErrNotFound("asset")
	}
	return asset, nil
}

func (c *LedgerCore) verifyAsset(tx ports.LedgerTx, caller domain.AccountID, id domain.AssetID, approve bool, proof string) (*domain.Asset, error) {
	asset, err := c.getAsset(tx, id)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetStatusPending {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("asset is %s, want %s", asset.Status, domain.AssetStatusPending))
	}

	now := tx.Now()
	eventType := domain.EventAssetVerified
	asset.Status = domain.AssetStatusVerified
	if !approve {
		asset.Status = domain.AssetStatusRejected
		eventType = domain.EventAssetRejected
	}
	asset.Verifier = caller
	asset.VerificationProof = proof
	asset.VerifiedAt = &now

	if err := tx.PutAsset(*asset); err != nil {
		return nil, putErr("asset", err)
	}
	tx.Emit(domain.Event{
		Type:    eventType,
		Actor:   caller,
		AssetID: asset.ID,
		Reason:  proof,
	})
	return asset, nil
}

// transition moves an asset one step along the lifecycle.
func (c *LedgerCore) transition(tx ports.LedgerTx, actor domain.AccountID, id domain.AssetID, to domain.AssetStatus, eventType domain.EventType, reason string) (*domain.Asset, error) {
	asset, err := c.getAsset(tx, id)
	if err != nil {
		return nil, err
	}
	if !asset.Status.CanTransitionTo(to) {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("asset is %s, cannot become %s", asset.Status, to))
	}
	asset.Status = to
	if err := tx.PutAsset(*asset); err != nil {
		return nil, putErr("asset", err)
	}
	tx.Emit(domain.Event{
		Type:    eventType,
		Actor:   actor,
		AssetID: asset.ID,
		Reason:  reason,
	})
	return asset, nil
}

func (c *LedgerCore) markTokenized(tx ports.LedgerTx, actor domain.AccountID, id domain.AssetID) (*domain.Asset, error) {
	return c.transition(tx, actor, id, domain.AssetStatusTokenized, domain.EventAssetTokenized, "")
}

func (c *LedgerCore) markRedeemed(tx ports.LedgerTx, actor domain.AccountID, id domain.AssetID, reason string) (*domain.Asset, error) {
	return c.transition(tx, actor, id, domain.AssetStatusRedeemed, domain.EventAssetRedeemed, reason)
}

// ---- balances ----

func (c *LedgerCore) credit(tx ports.LedgerTx, account domain.AccountID, amt amount.Amount) error {
	bal := tx.Balance(account)
	next, err := bal.Amount.Add(amt)
	if err != nil {
		return apperror.ErrInvalidAmount("amount overflows balance")
	}
	bal.Amount = next
	bal.UpdatedAt = tx.Now()
	return putErr("balance", tx.PutBalance(bal))
}

// debit removes amt from account, failing with insufficient when short.
func (c *LedgerCore) debit(tx ports.LedgerTx, account domain.AccountID, amt amount.Amount, insufficient func() *apperror.AppError) error {
	bal := tx.Balance(account)
	next, err := bal.Amount.Sub(amt)
	if err != nil {
		return insufficient()
	}
	bal.Amount = next
	bal.UpdatedAt = tx.Now()
	return putErr("balance", tx.PutBalance(bal))
}

func (c *LedgerCore) adjustSupply(tx ports.LedgerTx, amt amount.Amount, increase bool) error {
	meta := tx.Meta()
	var (
		next amount.Amount
		err  error
	)
	if increase {
		next, err = meta.TotalSupply.Add(amt)
	} else {
		next, err = meta.TotalSupply.Sub(amt)
	}
	if err != nil {
		return apperror.InternalError(fmt.Errorf("total supply: %w", err))
	}
	meta.TotalSupply = next
	return putErr("meta", tx.PutMeta(meta))
}

func (c *LedgerCore) isVerified(tx ports.LedgerReader, account domain.AccountID) bool {
	rec, ok := tx.Identity(account)
	return ok && rec.Verified
}

func (c *LedgerCore) requireCompliant(tx ports.LedgerReader, recipient domain.AccountID) error {
	if c.opts.ComplianceGated && !c.isVerified(tx, recipient) {
		return apperror.ErrRecipientNotVerified()
	}
	return nil
}

// burnFrom debits account and shrinks total supply.
func (c *LedgerCore) burnFrom(tx ports.LedgerTx, account domain.AccountID, amt amount.Amount, insufficient func() *apperror.AppError) error {
	if err := c.debit(tx, account, amt, insufficient); err != nil {
		return err
	}
	return c.adjustSupply(tx, amt, false)
}

// ---- issuance ----

func (c *LedgerCore) mint(tx ports.LedgerTx, actor domain.AccountID, id domain.AssetID, amt amount.Amount, recipient domain.AccountID) (*domain.TokenIssuance, error) {
	if err := requireNotPaused(tx.Meta()); err != nil {
		return nil, err
	}
	if err := requirePositive(amt, "mint amount"); err != nil {
		return nil, err
	}
	if err := requireAccount(recipient, "recipient"); err != nil {
		return nil, err
	}
	asset, err := c.getAsset(tx, id)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetStatusTokenized {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("asset is %s, want %s", asset.Status, domain.AssetStatusTokenized))
	}
	if err := c.requireCompliant(tx, recipient); err != nil {
		return nil, err
	}

	now := tx.Now()
	iss, exists := tx.Issuance(id)
	switch {
	case exists && c.opts.Mode == domain.IssuanceModeSimple:
		return nil, apperror.ErrAlreadyIssued()
	case !exists:
		iss = &domain.TokenIssuance{
			AssetID:  id,
			Mode:     c.opts.Mode,
			IssuedAt: now,
		}
	}

	issued, err := iss.AmountIssued.Add(amt)
	if err != nil {
		return nil, apperror.ErrInvalidAmount("mint amount overflows")
	}
	if c.opts.Mode == domain.IssuanceModeFractional && issued.GreaterThan(asset.Value) {
		return nil, apperror.ErrInvalidAmount("issued amount would exceed asset value")
	}
	remaining, err := iss.RemainingRedeemable.Add(amt)
	if err != nil {
		return nil, apperror.ErrInvalidAmount("mint amount overflows")
	}
	bps, err := domain.BackingRatioBps(issued, asset.Value)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("backing ratio: %w", err))
	}
	iss.AmountIssued = issued
	iss.RemainingRedeemable = remaining
	iss.BackingRatioBps = bps
	iss.UpdatedAt = now

	if err := tx.PutIssuance(*iss); err != nil {
		return nil, putErr("issuance", err)
	}
	if err := c.credit(tx, recipient, amt); err != nil {
		return nil, err
	}
	if err := c.adjustSupply(tx, amt, true); err != nil {
		return nil, err
	}

	tx.Emit(domain.Event{
		Type:    domain.EventTokensMinted,
		Actor:   actor,
		Account: recipient,
		AssetID: id,
	}.WithAmount(amt))
	return iss, nil
}

// retire records amt as redeemed against the asset's issuance.
func (c *LedgerCore) retire(tx ports.LedgerTx, id domain.AssetID, amt amount.Amount) (*domain.TokenIssuance, error) {
	iss, ok := tx.Issuance(id)
	if !ok {
		return nil, apperror.ErrInvalidState("asset has no token issuance")
	}
	if amt.GreaterThan(iss.RemainingRedeemable) {
		return nil, apperror.ErrInvalidAmount("amount exceeds remaining redeemable tokens")
	}
	remaining, err := iss.RemainingRedeemable.Sub(amt)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	redeemed, err := iss.Redeemed.Add(amt)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	iss.RemainingRedeemable = remaining
	iss.Redeemed = redeemed
	iss.UpdatedAt = tx.Now()
	if err := tx.PutIssuance(*iss); err != nil {
		return nil, putErr("issuance", err)
	}
	return iss, nil
}

// ---- transfers ----

func (c *LedgerCore) burn(tx ports.LedgerTx, actor, account domain.AccountID, amt amount.Amount) error {
	if err := requireNotPaused(tx.Meta()); err != nil {
		return err
	}
	if err := requirePositive(amt, "burn amount"); err != nil {
		return err
	}
	if err := requireAccount(account, "account"); err != nil {
		return err
	}
	if err := c.burnFrom(tx, account, amt, apperror.ErrInsufficientBalance); err != nil {
		return err
	}
	tx.Emit(domain.Event{
		Type:    domain.EventTokensBurned,
		Actor:   actor,
		Account: account,
	}.WithAmount(amt))
	return nil
}

func (c *LedgerCore) transfer(tx ports.LedgerTx, from, to domain.AccountID, amt amount.Amount) error {
	if err := requireNotPaused(tx.Meta()); err != nil {
		return err
	}
	if err := requirePositive(amt, "transfer amount"); err != nil {
		return err
	}
	if err := requireAccount(to, "recipient"); err != nil {
		return err
	}
	if err := c.requireCompliant(tx, to); err != nil {
		return err
	}
	if err := c.debit(tx, from, amt, apperror.ErrInsufficientBalance); err != nil {
		return err
	}
	if err := c.credit(tx, to, amt); err != nil {
		return err
	}
	tx.Emit(domain.Event{
		Type:    domain.EventTransfer,
		Actor:   from,
		Account: to,
	}.WithAmount(amt))
	return nil
}

// ---- redemptions ----

func (c *LedgerCore) requestRedemption(tx ports.LedgerTx, caller domain.AccountID, id domain.AssetID, amt amount.Amount) (*domain.RedemptionRequest, error) {
	meta := tx.Meta()
	if err := requireNotPaused(meta); err != nil {
		return nil, err
	}
	if err := requirePositive(amt, "token amount"); err != nil {
		return nil, err
	}
	asset, err := c.getAsset(tx, id)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetStatusTokenized {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("asset is %s, want %s", asset.Status, domain.AssetStatusTokenized))
	}
	if tx.Balance(caller).Amount.LessThan(amt) {
		return nil, apperror.ErrInsufficientBalance()
	}

	req := domain.RedemptionRequest{
		ID:          meta.NextRequestID,
		Requester:   caller,
		AssetID:     id,
		TokenAmount: amt,
		RequestTime: tx.Now(),
	}
	meta.NextRequestID++
	if err := tx.PutRedemption(req); err != nil {
		return nil, putErr("redemption", err)
	}
	if err := tx.PutMeta(meta); err != nil {
		return nil, putErr("meta", err)
	}

	tx.Emit(domain.Event{
		Type:      domain.EventRedemptionRequested,
		Actor:     caller,
		Account:   caller,
		AssetID:   id,
		RequestID: req.ID,
	}.WithAmount(amt))
	return &req, nil
}

func (c *LedgerCore) getRedemption(tx ports.LedgerReader, id domain.RequestID) (*domain.RedemptionRequest, error) {
	req, ok := tx.Redemption(id)
	if !ok {
		return nil, apperror.ErrNotFound("redemption request")
	}
	return req, nil
}

// approveRedemption is idempotent for an already approved request.
func (c *LedgerCore) approveRedemption(tx ports.LedgerTx, actor domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error) {
	if err := requireNotPaused(tx.Meta()); err != nil {
		return nil, err
	}
	req, err := c.getRedemption(tx, id)
	if err != nil {
		return nil, err
	}
	if req.Processed {
		return nil, apperror.ErrAlreadyProcessed()
	}
	if req.Approved {
		return req, nil
	}

	now := tx.Now()
	req.Approved = true
	req.ApprovedAt = &now
	if err := tx.PutRedemption(*req); err != nil {
		return nil, putErr("redemption", err)
	}
	tx.Emit(domain.Event{
		Type:      domain.EventRedemptionApproved,
		Actor:     actor,
		Account:   req.Requester,
		AssetID:   req.AssetID,
		RequestID: req.ID,
	})
	return req, nil
}

// processRedemption burns the requested tokens and, once the issuance is
// retired, marks the asset redeemed in the same transaction.
func (c *LedgerCore) processRedemption(tx ports.LedgerTx, actor domain.AccountID, id domain.RequestID) (*domain.RedemptionRequest, error) {
	if err := requireNotPaused(tx.Meta()); err != nil {
		return nil, err
	}
	req, err := c.getRedemption(tx, id)
	if err != nil {
		return nil, err
	}
	if req.Processed {
		return nil, apperror.ErrAlreadyProcessed()
	}
	if !req.Approved {
		return nil, apperror.ErrNotApproved()
	}

	iss, err := c.retire(tx, req.AssetID, req.TokenAmount)
	if err != nil {
		return nil, err
	}
	if err := c.burnFrom(tx, req.Requester, req.TokenAmount, apperror.ErrInsufficientBalance); err != nil {
		return nil, err
	}

	now := tx.Now()
	req.Processed = true
	req.ProcessedAt = &now
	if err := tx.PutRedemption(*req); err != nil {
		return nil, putErr("redemption", err)
	}
	tx.Emit(domain.Event{
		Type:      domain.EventRedemptionProcessed,
		Actor:     actor,
		Account:   req.Requester,
		AssetID:   req.AssetID,
		RequestID: req.ID,
	}.WithAmount(req.TokenAmount))

	if c.opts.Mode == domain.IssuanceModeSimple || iss.IsRetired() {
		reason := fmt.Sprintf("redemption request %d", req.ID)
		if _, err := c.markRedeemed(tx, actor, req.AssetID, reason); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// ---- admin ----

func (c *LedgerCore) setPaused(tx ports.LedgerTx, actor domain.AccountID, paused bool) error {
	meta := tx.Meta()
	if meta.Paused == paused {
		if paused {
			return apperror.ErrInvalidState("ledger is already paused")
		}
		return apperror.ErrInvalidState("ledger is not paused")
	}
	meta.Paused = paused
	if err := tx.PutMeta(meta); err != nil {
		return putErr("meta", err)
	}
	eventType := domain.EventUnpaused
	if paused {
		eventType = domain.EventPaused
	}
	tx.Emit(domain.Event{Type: eventType, Actor: actor})
	return nil
}
