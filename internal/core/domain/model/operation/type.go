package operation

import (
	"fmt"
	"strings"

	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/pkg/errs"
)

// Type is the kind of handling work an operation performs.
type Type int

const (
	UnknownType Type = iota
	Loading
	Unloading
	Transfer
)

// Standard durations in ticks used to score efficiency.
const (
	StandardLoading   int64 = 120
	StandardUnloading int64 = 100
	StandardTransfer  int64 = 80
)

// ParseType accepts loading, unloading and transfer. Anything else is an
// InvalidOperation error.
func ParseType(raw string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "loading":
		return Loading, nil
	case "unloading":
		return Unloading, nil
	case "transfer":
		return Transfer, nil
	default:
		return UnknownType, errs.NewInvalidOperationErrorWithCause("operation type", fmt.Errorf("%q is not supported", raw))
	}
}

func (t Type) String() string {
	switch t {
	case Loading:
		return "loading"
	case Unloading:
		return "unloading"
	case Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}

func (t Type) Validate() error {
	if t < Loading || t > Transfer {
		return errs.NewInvalidOperationErrorWithCause("operation type", fmt.Errorf("%d is not supported", t))
	}
	return nil
}

// StandardDuration is the reference handling time for the type.
func (t Type) StandardDuration() int64 {
	switch t {
	case Loading:
		return StandardLoading
	case Unloading:
		return StandardUnloading
	default:
		return StandardTransfer
	}
}

// ContainerStatusOnStart is the status a container takes while the operation runs.
func (t Type) ContainerStatusOnStart() cargo.Status {
	switch t {
	case Loading:
		return cargo.Loading
	case Unloading:
		return cargo.Unloading
	default:
		return cargo.InTransit
	}
}

// ContainerStatusOnCompletion is the status a container takes once the operation ends.
func (t Type) ContainerStatusOnCompletion() cargo.Status {
	switch t {
	case Unloading:
		return cargo.InYard
	case Loading:
		return cargo.Loaded
	default:
		return cargo.Transferred
	}
}
