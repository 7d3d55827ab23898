package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is a single capability an account may hold.
type Role uint8

const (
	RoleAdmin Role = 1 << iota
	RoleVerifier
	RoleMinter
	RoleBurner
	RoleKYCAdmin
)

var roleNames = map[Role]string{
	RoleAdmin:    "ADMIN",
	RoleVerifier: "VERIFIER",
	RoleMinter:   "MINTER",
	RoleBurner:   "BURNER",
	RoleKYCAdmin: "KYC_ADMIN",
}

// AllRoles returns every role in a stable order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleVerifier, RoleMinter, RoleBurner, RoleKYCAdmin}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ROLE(%d)", uint8(r))
}

// ParseRole accepts role names case-insensitively, with or without a _ROLE suffix.
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "_ROLE")
	if name == "KYCADMIN" {
		name = "KYC_ADMIN"
	}
	for _, r := range AllRoles() {
		if roleNames[r] == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// IsValid reports whether r is exactly one known role.
func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("unknown role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RoleSet is the capability set held by one account.
type RoleSet uint8

// NewRoleSet builds a set from roles.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s = s.With(r)
	}
	return s
}

func (s RoleSet) Has(r Role) bool        { return r != 0 && RoleSet(r)&s == RoleSet(r) }
func (s RoleSet) With(r Role) RoleSet    { return s | RoleSet(r) }
func (s RoleSet) Without(r Role) RoleSet { return s &^ RoleSet(r) }
func (s RoleSet) IsEmpty() bool          { return s == 0 }

// Roles lists the members of s in AllRoles order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(roleNames))
	for _, r := range AllRoles() {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Roles())
}

func (s *RoleSet) UnmarshalJSON(b []byte) error {
	var roles []Role
	if err := json.Unmarshal(b, &roles); err != nil {
		return err
	}
	*s = NewRoleSet(roles...)
	return nil
}

// RoleGrant is the stored capability set of one account.
type RoleGrant struct {
	Account AccountID `json:"account"`
	Roles   RoleSet   `json:"roles"`
}
