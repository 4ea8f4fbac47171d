package queries

import (
	"errors"

	"seaport/internal/pkg/guard"
)

var ErrGetVesselQueueQueryIsNotConstructed = errors.New(
	"GetVesselQueueQuery must be created via NewGetVesselQueueQuery constructor",
)

// GetVesselQueueQuery lists waiting vessels in the order the allocation job
// serves them: highest priority first, then queue position.
type GetVesselQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetVesselQueueQuery() GetVesselQueueQuery {
	return GetVesselQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q GetVesselQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetVesselQueueQueryIsNotConstructed)
}

type GetVesselQueueQueryResponse struct {
	Position      uint64 `json:"position"`
	VesselID      uint64 `json:"vesselId"`
	Priority      int    `json:"priority"`
	EstimatedWait int64  `json:"estimatedWait"`
	EnqueuedAt    int64  `json:"enqueuedAt"`
}
