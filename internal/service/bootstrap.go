package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// BootstrapActor is recorded as the actor of every genesis event.
const BootstrapActor domain.AccountID = "bootstrap"

var errAlreadyBootstrapped = errors.New("ledger already has state")

// BootstrapPlan is the genesis state applied to an empty ledger.
type BootstrapPlan struct {
	Roles      []BootstrapRole     `yaml:"roles"`
	AssetTypes []string            `yaml:"asset_types"`
	Identities []BootstrapIdentity `yaml:"identities"`
	Verifiers  []BootstrapVerifier `yaml:"verifiers"`
}

type BootstrapRole struct {
	Account string        `yaml:"account"`
	Roles   []domain.Role `yaml:"roles"`
}

type BootstrapIdentity struct {
	Account  string `yaml:"account"`
	Verified bool   `yaml:"verified"`
}

type BootstrapVerifier struct {
	Account     string `yaml:"account"`
	Description string `yaml:"description"`
}

// LoadBootstrapPlan reads and validates a YAML plan file.
func LoadBootstrapPlan(path string) (*BootstrapPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bootstrap plan: %w", err)
	}
	return ParseBootstrapPlan(data)
}

// ParseBootstrapPlan decodes and validates a YAML plan.
func ParseBootstrapPlan(data []byte) (*BootstrapPlan, error) {
	var plan BootstrapPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse bootstrap plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks every account, role and asset type in the plan and
// normalizes them in place.
func (p *BootstrapPlan) Validate() error {
	hasAdmin := false
	for i := range p.Roles {
		acct, err := domain.ParseAccount(p.Roles[i].Account)
		if err != nil {
			return fmt.Errorf("roles[%d]: %w", i, err)
		}
		p.Roles[i].Account = acct.String()
		if len(p.Roles[i].Roles) == 0 {
			return fmt.Errorf("roles[%d]: no roles listed", i)
		}
		for _, r := range p.Roles[i].Roles {
			if !r.IsValid() {
				return fmt.Errorf("roles[%d]: invalid role", i)
			}
			if r == domain.RoleAdmin {
				hasAdmin = true
			}
		}
	}
	if len(p.Roles) > 0 && !hasAdmin {
		return fmt.Errorf("plan grants roles but no ADMIN")
	}
	for i, t := range p.AssetTypes {
		n := domain.NormalizeAssetType(t)
		if n == "" {
			return fmt.Errorf("asset_types[%d]: empty asset type", i)
		}
		p.AssetTypes[i] = string(n)
	}
	for i := range p.Identities {
		acct, err := domain.ParseAccount(p.Identities[i].Account)
		if err != nil {
			return fmt.Errorf("identities[%d]: %w", i, err)
		}
		p.Identities[i].Account = acct.String()
	}
	for i := range p.Verifiers {
		acct, err := domain.ParseAccount(p.Verifiers[i].Account)
		if err != nil {
			return fmt.Errorf("verifiers[%d]: %w", i, err)
		}
		p.Verifiers[i].Account = acct.String()
	}
	return nil
}

// BootstrapService applies a genesis plan.
type BootstrapService struct {
	core *LedgerCore
	log  zerolog.Logger
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(core *LedgerCore, log zerolog.Logger) *BootstrapService {
	return &BootstrapService{core: core, log: log}
}

// Apply writes plan in one transaction if the ledger has never committed an
// event. It reports whether the plan was applied.
func (s *BootstrapService) Apply(ctx context.Context, plan *BootstrapPlan) (bool, error) {
	err := s.core.store.Update(ctx, func(tx ports.LedgerTx) error {
		if tx.Meta().EventSeq != 0 {
			return errAlreadyBootstrapped
		}
		for _, g := range plan.Roles {
			for _, r := range g.Roles {
				if _, err := setRole(tx, BootstrapActor, domain.AccountID(g.Account), r, true); err != nil {
					return err
				}
			}
		}
		for _, t := range plan.AssetTypes {
			if err := addAssetType(tx, BootstrapActor, domain.AssetType(t)); err != nil {
				return err
			}
		}
		for _, id := range plan.Identities {
			if _, err := setIdentity(tx, BootstrapActor, domain.AccountID(id.Account), id.Verified); err != nil {
				return err
			}
		}
		for _, v := range plan.Verifiers {
			if _, err := registerVerifier(tx, BootstrapActor, domain.AccountID(v.Account), v.Description); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errAlreadyBootstrapped) {
		s.log.Info().Msg("bootstrap: ledger already initialized, skipping plan")
		return false, nil
	}
	if err != nil {
		return false, asAppError(err)
	}

	s.log.Info().
		Int("role_grants", len(plan.Roles)).
		Int("asset_types", len(plan.AssetTypes)).
		Int("identities", len(plan.Identities)).
		Int("verifiers", len(plan.Verifiers)).
		Msg("bootstrap: plan applied")
	return true, nil
}
