package vessel

import (
	"fmt"

	"seaport/internal/pkg/errs"
)

// Status is the lifecycle state of a vessel.
type Status int

const (
	Unknown Status = iota
	Registered
	Queued
	Docked
	ScheduledDeparture
	Departed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "unknown",
		Registered:         "registered",
		Queued:             "queued",
		Docked:             "docked",
		ScheduledDeparture: "scheduled-departure",
		Departed:           "departed",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if s <= Unknown || s > Departed {
		return errs.NewValueIsInvalidErrorWithCause("vessel status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Enqueue moves a freshly registered vessel into the waiting queue.
func (s Status) Enqueue() (Status, error) {
	if s != Registered {
		return 0, invalidTransition(s, Queued)
	}
	return Queued, nil
}

// Dock is allowed straight from registration or from the queue.
func (s Status) Dock() (Status, error) {
	if s != Registered && s != Queued {
		return 0, invalidTransition(s, Docked)
	}
	return Docked, nil
}

func (s Status) ScheduleDeparture() (Status, error) {
	if s != Docked {
		return 0, invalidTransition(s, ScheduledDeparture)
	}
	return ScheduledDeparture, nil
}

// Depart is allowed from Docked or ScheduledDeparture.
func (s Status) Depart() (Status, error) {
	if s != Docked && s != ScheduledDeparture {
		return 0, invalidTransition(s, Departed)
	}
	return Departed, nil
}

// ValidateCanHaveBerth checks that only docked vessels reference a berth.
func (s Status) ValidateCanHaveBerth(hasBerth bool) error {
	docked := s == Docked || s == ScheduledDeparture
	if hasBerth != docked {
		return errs.NewInvalidStatusErrorWithCause(
			"vessel status",
			fmt.Errorf("%s vessel cannot have berth assigned=%t", s, hasBerth),
		)
	}
	return nil
}

func invalidTransition(from, to Status) error {
	return errs.NewInvalidStatusErrorWithCause(
		"vessel status",
		fmt.Errorf("cannot move from %s to %s", from, to),
	)
}
