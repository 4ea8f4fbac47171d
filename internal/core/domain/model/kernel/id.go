package kernel

import (
	"fmt"
	"strconv"

	"seaport/internal/pkg/errs"
)

// ID identifies an entity within its EntityClass. Identifiers start at 1 and
// are never reused; the zero value is invalid.
type ID uint64

// NewID wraps a raw identifier, rejecting zero.
func NewID(raw uint64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports whether the identifier was issued by the allocator.
func (id ID) Validate() error {
	if id == 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}
	return nil
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// EntityClass names an identifier namespace.
type EntityClass string

const (
	VesselClass    EntityClass = "vessel"
	BerthClass     EntityClass = "berth"
	ScheduleClass  EntityClass = "schedule"
	ContainerClass EntityClass = "container"
	OperationClass EntityClass = "operation"
	TransportClass EntityClass = "transport"
	QueueClass     EntityClass = "queue"
)

// Validate rejects classes the allocator does not issue identifiers for.
func (c EntityClass) Validate() error {
	switch c {
	case VesselClass, BerthClass, ScheduleClass, ContainerClass, OperationClass, TransportClass, QueueClass:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("entity class", fmt.Errorf("%q is not a known class", string(c)))
	}
}
