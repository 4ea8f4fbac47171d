package cargo

import (
	"errors"
	"fmt"
	"strings"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

// MaxWeight is the exclusive upper bound on container weight.
const MaxWeight = 50000

// Handling priorities, highest first.
const (
	PriorityHazardous  = 10
	PriorityPerishable = 9
	PriorityReefer     = 8
	PriorityFragile    = 7
	PriorityDefault    = 5
)

var (
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
	ErrCargoTypeIsRequired       = errs.NewValueIsRequiredError("cargo type")
	ErrContainerDeparted         = errs.NewInvalidStatusError("container")
	ErrContainerInOperation      = errs.NewInvalidStatusError("container operation")
)

// Spec carries the registration attributes of a container.
type Spec struct {
	Weight        int
	CargoType     string
	ContainerType string
	Size          string
	VesselID      *kernel.ID
	Location      string
	Destination   string
}

type Container struct {
	id               kernel.ID
	weight           int
	cargoType        string
	containerType    string
	size             string
	owner            kernel.Principal
	vesselID         *kernel.ID
	location         string
	destination      string
	status           Status
	handlingPriority int
	guard            guard.ConstructorGuard
}

// NewContainer registers a container. It starts Arriving when it is bound to
// a vessel and InYard otherwise.
func NewContainer(id kernel.ID, owner kernel.Principal, spec Spec) (*Container, error) {
	c := &Container{
		containerType: normalize(spec.ContainerType),
		size:          strings.TrimSpace(spec.Size),
		location:      strings.TrimSpace(spec.Location),
		destination:   strings.TrimSpace(spec.Destination),
		status:        InYard,
		guard:         guard.NewConstructorGuard(),
	}
	if spec.VesselID != nil {
		c.status = Arriving
	}

	if err := errors.Join(
		c.setID(id),
		c.setOwner(owner),
		c.setWeight(spec.Weight),
		c.setCargoType(spec.CargoType),
		c.setVessel(spec.VesselID),
	); err != nil {
		return nil, err
	}

	c.handlingPriority = HandlingPriority(c.cargoType, c.containerType)
	return c, nil
}

// RestoreContainer rebuilds a container from storage.
func RestoreContainer(
	id kernel.ID,
	owner kernel.Principal,
	spec Spec,
	status Status,
	handlingPriority int,
) (*Container, error) {
	c, err := NewContainer(id, owner, spec)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	c.status = status
	c.handlingPriority = handlingPriority
	return c, nil
}

// HandlingPriority applies the first matching rule: hazardous cargo, then
// perishable cargo, then reefer containers, then fragile cargo.
func HandlingPriority(cargoType, containerType string) int {
	switch {
	case normalize(cargoType) == "hazardous":
		return PriorityHazardous
	case normalize(cargoType) == "perishable":
		return PriorityPerishable
	case normalize(containerType) == "reefer":
		return PriorityReefer
	case normalize(cargoType) == "fragile":
		return PriorityFragile
	default:
		return PriorityDefault
	}
}

func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

func (c *Container) ID() kernel.ID { return c.id }

func (c *Container) Weight() int { return c.weight }

func (c *Container) CargoType() string { return c.cargoType }

func (c *Container) ContainerType() string { return c.containerType }

func (c *Container) Size() string { return c.size }

func (c *Container) Owner() kernel.Principal { return c.owner }

func (c *Container) VesselID() *kernel.ID { return c.vesselID }

func (c *Container) Location() string { return c.location }

func (c *Container) Destination() string { return c.destination }

func (c *Container) Status() Status { return c.status }

func (c *Container) HandlingPriority() int { return c.handlingPriority }

func (c *Container) IsOwnedBy(p kernel.Principal) bool { return c.owner == p }

// Spec returns the registration attributes with the current location.
func (c *Container) Spec() Spec {
	return Spec{
		Weight:        c.weight,
		CargoType:     c.cargoType,
		ContainerType: c.containerType,
		Size:          c.size,
		VesselID:      c.vesselID,
		Location:      c.location,
		Destination:   c.destination,
	}
}

// BeginHandling puts the container into the status of a starting operation.
// A container takes part in one operation at a time.
func (c *Container) BeginHandling(next Status) error {
	if c.status == Departed {
		return fmt.Errorf("%w: container %s has departed", ErrContainerDeparted, c.id)
	}
	if c.status.IsHandling() {
		return fmt.Errorf("%w: container %s is already %s", ErrContainerInOperation, c.id, c.status)
	}
	return c.setStatus(next)
}

// FinishHandling records the outcome of a completed operation.
func (c *Container) FinishHandling(next Status) error {
	return c.setStatus(next)
}

// Move records a tracked movement to location with the reported status.
// Operation statuses are left to operations: a container being handled
// cannot be moved, and a movement cannot report one.
func (c *Container) Move(location string, next Status) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if c.status.IsHandling() {
		return fmt.Errorf("%w: container %s is %s", ErrContainerInOperation, c.id, c.status)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if next.IsHandling() {
		return errs.NewInvalidStatusErrorWithCause("container status",
			fmt.Errorf("%s is set by operations only", next))
	}
	if err := c.setStatus(next); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Container) setStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	c.status = next
	return nil
}

func (c *Container) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setOwner(p kernel.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.owner = p
	return nil
}

func (c *Container) setWeight(w int) error {
	if w <= 0 || w >= MaxWeight {
		return errs.NewValueIsOutOfRangeError("weight", w, 1, MaxWeight-1)
	}
	c.weight = w
	return nil
}

func (c *Container) setCargoType(raw string) error {
	t := normalize(raw)
	if t == "" {
		return ErrCargoTypeIsRequired
	}
	c.cargoType = t
	return nil
}

func (c *Container) setVessel(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	c.vesselID = id
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
