package schedule

import (
	"fmt"

	"seaport/internal/pkg/errs"
)

// Status is the lifecycle state of a schedule. Transitions are strictly
// Scheduled -> Arrived -> Completed.
type Status int

const (
	Unknown Status = iota
	Scheduled
	Arrived
	Completed
)

func (s Status) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Arrived:
		return "arrived"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

func (s Status) Validate() error {
	if s < Scheduled || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("schedule status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) Arrive() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewInvalidStatusErrorWithCause("schedule status", fmt.Errorf("cannot arrive from %s", s))
	}
	return Arrived, nil
}

func (s Status) Complete() (Status, error) {
	if s != Arrived {
		return 0, errs.NewInvalidStatusErrorWithCause("schedule status", fmt.Errorf("cannot complete from %s", s))
	}
	return Completed, nil
}
