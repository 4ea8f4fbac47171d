// Package berth provides the Berth aggregate: a docking location with an
// envelope limit, a supported vessel class and an occupancy slot for a
// single vessel.
package berth

import (
	"errors"
	"fmt"
	"strings"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var (
	ErrBerthIsNotConstructed = errors.New("Berth must be created via NewBerth constructor")
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrBerthOccupied         = errs.NewResourceOccupiedError("berth")
	ErrVesselTooLarge        = errs.NewCapacityExceededError("berth envelope")
	ErrBerthNotOperational   = errs.NewInvalidStatusError("berth operational flag")
	ErrVesselNotAtBerth      = errs.NewInvalidStatusError("berth occupant")
)

// Berth holds at most one vessel. occupied is derived from currentVessel, so
// the two can never disagree.
type Berth struct {
	id             kernel.ID
	name           string
	envelope       kernel.Dimensions
	supportedClass vessel.Class
	craneCapacity  int
	hourlyRate     int64
	operational    bool
	currentVessel  *kernel.ID
	guard          guard.ConstructorGuard
}

// NewBerth creates an operational, unoccupied berth.
func NewBerth(
	id kernel.ID,
	name string,
	envelope kernel.Dimensions,
	supportedClass vessel.Class,
	craneCapacity int,
	hourlyRate int64,
) (*Berth, error) {
	b := &Berth{
		operational: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setEnvelope(envelope),
		b.setSupportedClass(supportedClass),
		b.setCraneCapacity(craneCapacity),
		b.setHourlyRate(hourlyRate),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBerth rebuilds a berth from storage.
func RestoreBerth(
	id kernel.ID,
	name string,
	envelope kernel.Dimensions,
	supportedClass vessel.Class,
	craneCapacity int,
	hourlyRate int64,
	operational bool,
	currentVessel *kernel.ID,
) (*Berth, error) {
	b, err := NewBerth(id, name, envelope, supportedClass, craneCapacity, hourlyRate)
	if err != nil {
		return nil, err
	}
	if currentVessel != nil {
		if err = currentVessel.Validate(); err != nil {
			return nil, err
		}
	}

	b.operational = operational
	b.currentVessel = currentVessel
	return b, nil
}

func (b *Berth) Validate() error {
	if b == nil {
		return ErrBerthIsNotConstructed
	}
	return b.guard.Validate(ErrBerthIsNotConstructed)
}

func (b *Berth) ID() kernel.ID { return b.id }

func (b *Berth) Name() string { return b.name }

func (b *Berth) Envelope() kernel.Dimensions { return b.envelope }

func (b *Berth) SupportedClass() vessel.Class { return b.supportedClass }

func (b *Berth) CraneCapacity() int { return b.craneCapacity }

func (b *Berth) HourlyRate() int64 { return b.hourlyRate }

func (b *Berth) IsOperational() bool { return b.operational }

func (b *Berth) IsOccupied() bool { return b.currentVessel != nil }

func (b *Berth) CurrentVessel() *kernel.ID { return b.currentVessel }

// CheckAvailable fails with ErrBerthOccupied or ErrBerthNotOperational.
func (b *Berth) CheckAvailable() error {
	if b.currentVessel != nil {
		return fmt.Errorf("%w: berth %s holds vessel %s", ErrBerthOccupied, b.id, *b.currentVessel)
	}
	if !b.operational {
		return fmt.Errorf("%w: berth %s is out of service", ErrBerthNotOperational, b.id)
	}
	return nil
}

// CheckFits fails with ErrVesselTooLarge naming every dimension over the envelope.
func (b *Berth) CheckFits(hull kernel.Dimensions) error {
	if over := hull.Exceeding(b.envelope); len(over) > 0 {
		return fmt.Errorf("%w: %s exceeds %s on %s", ErrVesselTooLarge, hull, b.envelope, strings.Join(over, ", "))
	}
	return nil
}

// Accepts reports whether the berth is free, in service, large enough and
// compatible with the vessel class.
func (b *Berth) Accepts(hull kernel.Dimensions, class vessel.Class) bool {
	return b.CheckAvailable() == nil && b.CheckFits(hull) == nil && b.supportedClass.Accepts(class)
}

// Occupy records vesselID as the current occupant.
func (b *Berth) Occupy(vesselID kernel.ID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}
	if err := b.CheckAvailable(); err != nil {
		return err
	}
	b.currentVessel = &vesselID
	return nil
}

// Vacate frees the berth. Only the current occupant can be removed.
func (b *Berth) Vacate(vesselID kernel.ID) error {
	if b.currentVessel == nil || *b.currentVessel != vesselID {
		return fmt.Errorf("%w: vessel %s is not at berth %s", ErrVesselNotAtBerth, vesselID, b.id)
	}
	b.currentVessel = nil
	return nil
}

// SetOperational toggles the service flag. An occupied berth cannot be taken
// out of service.
func (b *Berth) SetOperational(operational bool) error {
	if !operational && b.currentVessel != nil {
		return fmt.Errorf("%w: berth %s holds vessel %s", ErrBerthOccupied, b.id, *b.currentVessel)
	}
	b.operational = operational
	return nil
}

func (b *Berth) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Berth) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	b.name = name
	return nil
}

func (b *Berth) setEnvelope(envelope kernel.Dimensions) error {
	if err := envelope.Validate(); err != nil {
		return err
	}
	b.envelope = envelope
	return nil
}

func (b *Berth) setSupportedClass(c vessel.Class) error {
	if err := c.Validate(); err != nil {
		return err
	}
	b.supportedClass = c
	return nil
}

func (b *Berth) setCraneCapacity(capacity int) error {
	if capacity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("crane capacity", fmt.Errorf("%d is negative", capacity))
	}
	b.craneCapacity = capacity
	return nil
}

func (b *Berth) setHourlyRate(rate int64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("hourly rate", fmt.Errorf("%d is negative", rate))
	}
	b.hourlyRate = rate
	return nil
}
