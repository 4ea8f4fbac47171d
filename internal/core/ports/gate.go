package ports

import (
	"context"

	"seaport/internal/core/domain/model/kernel"
)

// AuthorizationGate answers whether a caller may act in a role.
type AuthorizationGate interface {
	IsAuthorized(ctx context.Context, caller kernel.Principal, role kernel.Role) (bool, error)
}

// Clock reads the shared logical clock. The core never advances it.
type Clock interface {
	Now() kernel.Tick
}
