package cargo

import (
	"errors"
	"strings"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/errs"
	"seaport/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrCheckpointIsNotConstructed = errors.New("Checkpoint must be created via NewCheckpoint constructor")
	ErrCheckpointExists           = errs.NewAlreadyExistsError("checkpoint")
)

// Checkpoint is an immutable movement record. A container has at most one
// checkpoint per label.
type Checkpoint struct {
	id          uuid.UUID
	containerID kernel.ID
	label       string
	location    string
	status      Status
	notes       string
	recordedBy  kernel.Principal
	recordedAt  kernel.Tick
	guard       guard.ConstructorGuard
}

func NewCheckpoint(
	id uuid.UUID,
	containerID kernel.ID,
	label, location string,
	status Status,
	notes string,
	recordedBy kernel.Principal,
	recordedAt kernel.Tick,
) (*Checkpoint, error) {
	label = strings.TrimSpace(label)
	location = strings.TrimSpace(location)

	var idErr error
	if id == uuid.Nil {
		idErr = errs.NewValueIsRequiredError("checkpoint id")
	}
	var labelErr error
	if label == "" {
		labelErr = errs.NewValueIsRequiredError("checkpoint label")
	}
	var locationErr error
	if location == "" {
		locationErr = errs.NewValueIsRequiredError("location")
	}

	if err := errors.Join(
		idErr,
		containerID.Validate(),
		labelErr,
		locationErr,
		status.Validate(),
		recordedBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &Checkpoint{
		id:          id,
		containerID: containerID,
		label:       label,
		location:    location,
		status:      status,
		notes:       strings.TrimSpace(notes),
		recordedBy:  recordedBy,
		recordedAt:  recordedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c *Checkpoint) Validate() error {
	if c == nil {
		return ErrCheckpointIsNotConstructed
	}
	return c.guard.Validate(ErrCheckpointIsNotConstructed)
}

func (c *Checkpoint) ID() uuid.UUID { return c.id }

func (c *Checkpoint) ContainerID() kernel.ID { return c.containerID }

func (c *Checkpoint) Label() string { return c.label }

func (c *Checkpoint) Location() string { return c.location }

func (c *Checkpoint) Status() Status { return c.status }

func (c *Checkpoint) Notes() string { return c.notes }

func (c *Checkpoint) RecordedBy() kernel.Principal { return c.recordedBy }

func (c *Checkpoint) RecordedAt() kernel.Tick { return c.recordedAt }
