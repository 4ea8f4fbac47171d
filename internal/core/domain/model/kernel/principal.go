package kernel

import (
	"fmt"
	"strings"

	"seaport/internal/pkg/errs"
)

// Principal is an opaque caller identity. Ownership checks compare principals
// by equality.
type Principal string

// NewPrincipal trims surrounding whitespace and rejects empty identities.
func NewPrincipal(raw string) (Principal, error) {
	p := Principal(strings.TrimSpace(raw))
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p Principal) Validate() error {
	if p == "" {
		return errs.NewValueIsRequiredError("principal")
	}
	return nil
}

func (p Principal) String() string {
	return string(p)
}

// Role is a capability granted to a principal through the authorization gate.
type Role string

const (
	RoleContractOwner     Role = "contract-owner"
	RolePortOperator      Role = "port-operator"
	RoleAuthorizedHandler Role = "authorized-handler"
	RoleCustomsOfficer    Role = "customs-officer"
)

// ParseRole maps a role tag to a Role.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleContractOwner, RolePortOperator, RoleAuthorizedHandler, RoleCustomsOfficer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
