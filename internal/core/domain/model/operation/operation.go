// Package operation provides the cargo Operation aggregate: one container
// handled by one reserved equipment unit, from start to completion.
package operation

import (
	"errors"
	"fmt"

	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var ErrOperationIsNotConstructed = errors.New("Operation must be created via NewOperation constructor")

type Status int

const (
	UnknownStatus Status = iota
	InProgress
	Completed
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

func (s Status) Validate() error {
	if s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("operation status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Operation holds equipment unit `unit` of `equipmentType` while InProgress.
type Operation struct {
	id            kernel.ID
	opType        Type
	containerID   kernel.ID
	vesselID      *kernel.ID
	equipmentType string
	unit          int
	operator      kernel.Principal
	start         kernel.Tick
	end           *kernel.Tick
	status        Status
	efficiency    float64
	guard         guard.ConstructorGuard
}

// NewOperation starts an operation at now.
func NewOperation(
	id kernel.ID,
	opType Type,
	containerID kernel.ID,
	vesselID *kernel.ID,
	equipmentType string,
	unit int,
	operator kernel.Principal,
	now kernel.Tick,
) (*Operation, error) {
	var unitErr error
	if unit < 1 {
		unitErr = errs.NewValueIsInvalidErrorWithCause("equipment unit", fmt.Errorf("%d is not a unit number", unit))
	}
	var typeErr error
	if equipment.NormalizeType(equipmentType) == "" {
		typeErr = equipment.ErrTypeIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		opType.Validate(),
		containerID.Validate(),
		typeErr,
		unitErr,
		operator.Validate(),
	); err != nil {
		return nil, err
	}

	return &Operation{
		id:            id,
		opType:        opType,
		containerID:   containerID,
		vesselID:      vesselID,
		equipmentType: equipment.NormalizeType(equipmentType),
		unit:          unit,
		operator:      operator,
		start:         now,
		status:        InProgress,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOperation rebuilds an operation from storage.
func RestoreOperation(
	id kernel.ID,
	opType Type,
	containerID kernel.ID,
	vesselID *kernel.ID,
	equipmentType string,
	unit int,
	operator kernel.Principal,
	start kernel.Tick,
	end *kernel.Tick,
	status Status,
	efficiency float64,
) (*Operation, error) {
	o, err := NewOperation(id, opType, containerID, vesselID, equipmentType, unit, operator, start)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.end = end
	o.status = status
	o.efficiency = efficiency
	return o, nil
}

// Efficiency scores a duration against a standard time. Exactly standard
// scores 100; faster runs score above 100 by the inverse ratio and slower
// runs by the direct ratio. A zero duration counts as one tick.
func Efficiency(duration, standard int64) float64 {
	if duration < 1 {
		duration = 1
	}
	if duration <= standard {
		return 100 * float64(standard) / float64(duration)
	}
	return 100 * float64(duration) / float64(standard)
}

func (o *Operation) Validate() error {
	if o == nil {
		return ErrOperationIsNotConstructed
	}
	return o.guard.Validate(ErrOperationIsNotConstructed)
}

func (o *Operation) ID() kernel.ID { return o.id }

func (o *Operation) Type() Type { return o.opType }

func (o *Operation) ContainerID() kernel.ID { return o.containerID }

func (o *Operation) VesselID() *kernel.ID { return o.vesselID }

func (o *Operation) EquipmentType() string { return o.equipmentType }

func (o *Operation) Unit() int { return o.unit }

func (o *Operation) Operator() kernel.Principal { return o.operator }

func (o *Operation) Start() kernel.Tick { return o.start }

func (o *Operation) End() *kernel.Tick { return o.end }

func (o *Operation) Status() Status { return o.status }

func (o *Operation) Efficiency() float64 { return o.efficiency }

// Duration is the elapsed ticks of a completed operation.
func (o *Operation) Duration() int64 {
	if o.end == nil {
		return 0
	}
	return o.end.Since(o.start)
}

// Complete closes the operation on behalf of caller. Only the operator that
// started it may complete it, and only while it is in progress. On failure
// no field changes.
func (o *Operation) Complete(caller kernel.Principal, now kernel.Tick) error {
	if caller != o.operator {
		return errs.NewUnauthorizedError(caller.String(), fmt.Sprintf("complete operation %s", o.id))
	}
	if o.status != InProgress {
		return errs.NewInvalidStatusErrorWithCause(
			"operation status",
			fmt.Errorf("operation %s is %s", o.id, o.status),
		)
	}

	o.status = Completed
	o.end = &now
	o.efficiency = Efficiency(now.Since(o.start), o.opType.StandardDuration())
	return nil
}
