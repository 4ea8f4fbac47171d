package queries

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrGetContainerQueryIsNotConstructed = errors.New("GetContainerQuery must be created via NewGetContainerQuery constructor")

type GetContainerQuery struct {
	containerID kernel.ID
	guard       guard.ConstructorGuard
}

func NewGetContainerQuery(containerID uint64) (GetContainerQuery, error) {
	id, err := kernel.NewID(containerID)
	if err != nil {
		return GetContainerQuery{}, err
	}
	return GetContainerQuery{containerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetContainerQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerQueryIsNotConstructed)
}

func (q GetContainerQuery) ContainerID() kernel.ID {
	return q.containerID
}

type GetContainerQueryResponse struct {
	ID               uint64  `json:"id"`
	Weight           int     `json:"weight"`
	CargoType        string  `json:"cargoType"`
	ContainerType    string  `json:"containerType"`
	Size             string  `json:"size"`
	Owner            string  `json:"owner"`
	VesselID         *uint64 `json:"vesselId"`
	Location         string  `json:"location"`
	Destination      string  `json:"destination"`
	Status           string  `json:"status"`
	HandlingPriority int     `json:"handlingPriority"`
}
