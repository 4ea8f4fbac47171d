package vessel

import (
	"errors"
	"fmt"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

const (
	// NearTermWindow is how many ticks ahead an arrival still counts as imminent.
	NearTermWindow int64 = 144

	PriorityEmergency = 10
	PriorityNearTerm  = 7
	PriorityCargo     = 5
	PriorityDefault   = 3
)

var (
	ErrVesselIsNotConstructed = errors.New("Vessel must be created via NewVessel constructor")
	ErrAlreadyAssigned        = errs.NewAlreadyAssignedError("vessel")
	ErrNoBerthAssigned        = errs.NewObjectNotFoundError("berth assignment", "none")
	ErrCapacityIsRequired     = errs.NewValueIsRequiredError("cargo capacity")
	ErrDepartureNotInFuture   = errs.NewValueIsInvalidError("departure time")
)

// Vessel is the aggregate root for a registered ship.
//
// Invariants:
//   - dimensions and cargo capacity are strictly positive
//   - a berth is referenced exactly while the vessel is Docked or ScheduledDeparture
//   - priority is fixed at registration
type Vessel struct {
	id                 kernel.ID
	dimensions         kernel.Dimensions
	cargoCapacity      int
	class              Class
	owner              kernel.Principal
	requestedArrival   kernel.Tick
	priority           int
	status             Status
	berthID            *kernel.ID
	scheduledDeparture *kernel.Tick
	guard              guard.ConstructorGuard
}

// NewVessel registers a vessel and derives its priority relative to now.
//
// Example:
//
//	hull, _ := kernel.NewDimensions(200, 30, 10)
//	v, err := vessel.NewVessel(1, hull, 5000, vessel.Cargo, "acme-shipping", now+1, now)
//	v.Priority() // 5
func NewVessel(
	id kernel.ID,
	dimensions kernel.Dimensions,
	cargoCapacity int,
	class Class,
	owner kernel.Principal,
	requestedArrival kernel.Tick,
	now kernel.Tick,
) (*Vessel, error) {
	v := &Vessel{
		status: Registered,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setDimensions(dimensions),
		v.setCargoCapacity(cargoCapacity),
		v.setClass(class),
		v.setOwner(owner),
		v.setRequestedArrival(requestedArrival),
	); err != nil {
		return nil, err
	}

	v.priority = ComputePriority(class, requestedArrival, now)
	return v, nil
}

// RestoreVessel rebuilds a vessel from storage without recomputing priority.
func RestoreVessel(
	id kernel.ID,
	dimensions kernel.Dimensions,
	cargoCapacity int,
	class Class,
	owner kernel.Principal,
	requestedArrival kernel.Tick,
	priority int,
	status Status,
	berthID *kernel.ID,
	scheduledDeparture *kernel.Tick,
) (*Vessel, error) {
	v := &Vessel{
		priority:           priority,
		scheduledDeparture: scheduledDeparture,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setDimensions(dimensions),
		v.setCargoCapacity(cargoCapacity),
		v.setClass(class),
		v.setOwner(owner),
		v.setRequestedArrival(requestedArrival),
		v.setStatus(status, berthID),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// ComputePriority ranks a vessel: emergency 10, cargo 5, otherwise 7 when the
// requested arrival is within NearTermWindow ticks of now and 3 beyond it.
func ComputePriority(class Class, requestedArrival, now kernel.Tick) int {
	switch {
	case class == Emergency:
		return PriorityEmergency
	case class == Cargo:
		return PriorityCargo
	case requestedArrival.Since(now) <= NearTermWindow:
		return PriorityNearTerm
	default:
		return PriorityDefault
	}
}

func (v *Vessel) Validate() error {
	if v == nil {
		return ErrVesselIsNotConstructed
	}
	return v.guard.Validate(ErrVesselIsNotConstructed)
}

func (v *Vessel) ID() kernel.ID { return v.id }
func (v *Vessel) Dimensions() kernel.Dimensions { return v.dimensions }
func (v *Vessel) CargoCapacity() int { return v.cargoCapacity }
func (v *Vessel) Class() Class { return v.class }
func (v *Vessel) Owner() kernel.Principal { return v.owner }
func (v *Vessel) RequestedArrival() kernel.Tick { return v.requestedArrival }
func (v *Vessel) Priority() int { return v.priority }
func (v *Vessel) Status() Status { return v.status }
func (v *Vessel) Berth() *kernel.ID { return v.berthID }
func (v *Vessel) ScheduledDeparture() *kernel.Tick { return v.scheduledDeparture }
func (v *Vessel) IsOwnedBy(p kernel.Principal) bool { return v.owner == p }

// IsAssigned reports whether the vessel currently holds a berth.
func (v *Vessel) IsAssigned() bool {
	return v.berthID != nil
}

// Enqueue places a registered vessel in the waiting queue.
func (v *Vessel) Enqueue() error {
	next, err := v.status.Enqueue()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

// Dock binds the vessel to a berth. A vessel already holding a berth is
// rejected with ErrAlreadyAssigned before the status is checked.
func (v *Vessel) Dock(berthID kernel.ID) error {
	if err := berthID.Validate(); err != nil {
		return err
	}
	if v.berthID != nil {
		return fmt.Errorf("%w: vessel %s is at berth %s", ErrAlreadyAssigned, v.id, *v.berthID)
	}

	next, err := v.status.Dock()
	if err != nil {
		return err
	}

	v.status = next
	v.berthID = &berthID
	return nil
}

// ScheduleDeparture records a departure strictly after now.
func (v *Vessel) ScheduleDeparture(departure, now kernel.Tick) error {
	if !departure.After(now) {
		return fmt.Errorf("%w: %d is not after %d", ErrDepartureNotInFuture, departure, now)
	}

	next, err := v.status.ScheduleDeparture()
	if err != nil {
		return err
	}

	v.status = next
	v.scheduledDeparture = &departure
	return nil
}

// Depart clears the berth assignment and returns the berth that was released.
func (v *Vessel) Depart() (kernel.ID, error) {
	if v.berthID == nil {
		return 0, fmt.Errorf("%w: vessel %s", ErrNoBerthAssigned, v.id)
	}

	next, err := v.status.Depart()
	if err != nil {
		return 0, err
	}

	released := *v.berthID
	v.status = next
	v.berthID = nil
	return released, nil
}

func (v *Vessel) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vessel) setDimensions(d kernel.Dimensions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	v.dimensions = d
	return nil
}

func (v *Vessel) setCargoCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d is not greater than 0", ErrCapacityIsRequired, capacity)
	}
	v.cargoCapacity = capacity
	return nil
}

func (v *Vessel) setClass(c Class) error {
	if err := c.ValidateForVessel(); err != nil {
		return err
	}
	v.class = c
	return nil
}

func (v *Vessel) setOwner(p kernel.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	v.owner = p
	return nil
}

func (v *Vessel) setRequestedArrival(t kernel.Tick) error {
	if t < 0 {
		return errs.NewValueIsInvalidErrorWithCause("requested arrival", fmt.Errorf("%d is negative", t))
	}
	v.requestedArrival = t
	return nil
}

func (v *Vessel) setStatus(s Status, berthID *kernel.ID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.ValidateCanHaveBerth(berthID != nil); err != nil {
		return err
	}
	v.status = s
	v.berthID = berthID
	return nil
}
