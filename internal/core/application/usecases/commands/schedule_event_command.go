package commands

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var (
	ErrRecordArrivalCommandIsNotConstructed = errors.New(
		"RecordArrivalCommand must be created via NewRecordArrivalCommand constructor",
	)
	ErrRecordDepartureCommandIsNotConstructed = errors.New(
		"RecordDepartureCommand must be created via NewRecordDepartureCommand constructor",
	)
)

type scheduleCommand struct {
	caller     kernel.Principal
	scheduleID kernel.ID

	guard guard.ConstructorGuard
}

func newScheduleCommand(caller string, scheduleID uint64) (scheduleCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	id, idErr := kernel.NewID(scheduleID)
	if err := errors.Join(callerErr, idErr); err != nil {
		return scheduleCommand{}, err
	}
	return scheduleCommand{caller: principal, scheduleID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c scheduleCommand) Caller() kernel.Principal { return c.caller }

func (c scheduleCommand) ScheduleID() kernel.ID { return c.scheduleID }

// RecordArrivalCommand stamps the actual arrival of a scheduled vessel.
type RecordArrivalCommand struct {
	scheduleCommand
}

func NewRecordArrivalCommand(caller string, scheduleID uint64) (RecordArrivalCommand, error) {
	c, err := newScheduleCommand(caller, scheduleID)
	if err != nil {
		return RecordArrivalCommand{}, err
	}
	return RecordArrivalCommand{scheduleCommand: c}, nil
}

func (c RecordArrivalCommand) Validate() error {
	return c.guard.Validate(ErrRecordArrivalCommandIsNotConstructed)
}

// RecordDepartureCommand completes an arrived schedule.
type RecordDepartureCommand struct {
	scheduleCommand
}

func NewRecordDepartureCommand(caller string, scheduleID uint64) (RecordDepartureCommand, error) {
	c, err := newScheduleCommand(caller, scheduleID)
	if err != nil {
		return RecordDepartureCommand{}, err
	}
	return RecordDepartureCommand{scheduleCommand: c}, nil
}

func (c RecordDepartureCommand) Validate() error {
	return c.guard.Validate(ErrRecordDepartureCommandIsNotConstructed)
}
