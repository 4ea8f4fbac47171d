package commands

import (
	"errors"
	"strings"

	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"
)

var (
	ErrTrackCargoMovementCommandIsNotConstructed = errors.New(
		"TrackCargoMovementCommand must be created via NewTrackCargoMovementCommand constructor",
	)
	ErrCheckpointLabelIsRequired = errs.NewValueIsRequiredError("checkpoint label")
	ErrLocationIsRequired        = errs.NewValueIsRequiredError("location")
)

// TrackCargoMovementCommand records that a container passed a named checkpoint.
type TrackCargoMovementCommand struct {
	caller      kernel.Principal
	containerID kernel.ID
	label       string
	location    string
	status      cargo.Status
	notes       string

	guard guard.ConstructorGuard
}

// NewTrackCargoMovementCommand rejects a status outside the container status
// set with an errs.InvalidStatusError.
func NewTrackCargoMovementCommand(
	caller string,
	containerID uint64,
	label, location, status, notes string,
) (TrackCargoMovementCommand, error) {
	principal, callerErr := kernel.NewPrincipal(caller)
	id, idErr := kernel.NewID(containerID)
	s, statusErr := cargo.ParseStatus(status)

	var labelErr, locationErr error
	if strings.TrimSpace(label) == "" {
		labelErr = ErrCheckpointLabelIsRequired
	}
	if strings.TrimSpace(location) == "" {
		locationErr = ErrLocationIsRequired
	}

	if err := errors.Join(callerErr, idErr, statusErr, labelErr, locationErr); err != nil {
		return TrackCargoMovementCommand{}, err
	}

	return TrackCargoMovementCommand{
		caller:      principal,
		containerID: id,
		label:       strings.TrimSpace(label),
		location:    strings.TrimSpace(location),
		status:      s,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c TrackCargoMovementCommand) Validate() error {
	return c.guard.Validate(ErrTrackCargoMovementCommandIsNotConstructed)
}

func (c TrackCargoMovementCommand) Caller() kernel.Principal { return c.caller }

func (c TrackCargoMovementCommand) ContainerID() kernel.ID { return c.containerID }

func (c TrackCargoMovementCommand) Label() string { return c.label }

func (c TrackCargoMovementCommand) Location() string { return c.location }

func (c TrackCargoMovementCommand) Status() cargo.Status { return c.status }

func (c TrackCargoMovementCommand) Notes() string { return c.notes }
