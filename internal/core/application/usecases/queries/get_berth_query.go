package queries

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrGetBerthQueryIsNotConstructed = errors.New("GetBerthQuery must be created via NewGetBerthQuery constructor")

type GetBerthQuery struct {
	berthID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetBerthQuery(berthID uint64) (GetBerthQuery, error) {
	id, err := kernel.NewID(berthID)
	if err != nil {
		return GetBerthQuery{}, err
	}
	return GetBerthQuery{berthID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBerthQuery) Validate() error {
	return q.guard.Validate(ErrGetBerthQueryIsNotConstructed)
}

func (q GetBerthQuery) BerthID() kernel.ID {
	return q.berthID
}

type GetBerthQueryResponse struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	MaxLength       int     `json:"maxLength"`
	MaxBeam         int     `json:"maxBeam"`
	MaxDraft        int     `json:"maxDraft"`
	SupportedClass  string  `json:"supportedClass"`
	CraneCapacity   int     `json:"craneCapacity"`
	HourlyRate      int64   `json:"hourlyRate"`
	Operational     bool    `json:"operational"`
	CurrentVesselID *uint64 `json:"currentVesselId"`
}
