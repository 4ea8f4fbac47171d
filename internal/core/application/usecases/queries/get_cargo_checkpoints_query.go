package queries

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetCargoCheckpointsQueryIsNotConstructed = errors.New(
	"GetCargoCheckpointsQuery must be created via NewGetCargoCheckpointsQuery constructor",
)

// GetCargoCheckpointsQuery lists the movement history of a container in the
// order it was recorded.
type GetCargoCheckpointsQuery struct {
	containerID kernel.ID
	guard       guard.ConstructorGuard
}

func NewGetCargoCheckpointsQuery(containerID uint64) (GetCargoCheckpointsQuery, error) {
	id, err := kernel.NewID(containerID)
	if err != nil {
		return GetCargoCheckpointsQuery{}, err
	}
	return GetCargoCheckpointsQuery{containerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCargoCheckpointsQuery) Validate() error {
	return q.guard.Validate(ErrGetCargoCheckpointsQueryIsNotConstructed)
}

func (q GetCargoCheckpointsQuery) ContainerID() kernel.ID {
	return q.containerID
}

type GetCargoCheckpointsQueryResponse struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	RecordedBy string    `json:"recordedBy"`
	RecordedAt int64     `json:"recordedAt"`
}
