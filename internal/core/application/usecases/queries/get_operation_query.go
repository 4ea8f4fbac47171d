package queries

import (
	"errors"

	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/pkg/guard"
)

var ErrGetOperationQueryIsNotConstructed = errors.New("GetOperationQuery must be created via NewGetOperationQuery constructor")

type GetOperationQuery struct {
	operationID kernel.ID
	guard       guard.ConstructorGuard
}

func NewGetOperationQuery(operationID uint64) (GetOperationQuery, error) {
	id, err := kernel.NewID(operationID)
	if err != nil {
		return GetOperationQuery{}, err
	}
	return GetOperationQuery{operationID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOperationQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationQueryIsNotConstructed)
}

func (q GetOperationQuery) OperationID() kernel.ID {
	return q.operationID
}

// GetOperationQueryResponse is the operation read model. End is nil while
// the operation is in progress and Efficiency is zero until it completes.
type GetOperationQueryResponse struct {
	ID            uint64  `json:"id"`
	Type          string  `json:"type"`
	ContainerID   uint64  `json:"containerId"`
	VesselID      *uint64 `json:"vesselId"`
	EquipmentType string  `json:"equipmentType"`
	Unit          int     `json:"unit"`
	Operator      string  `json:"operator"`
	Start         int64   `json:"start"`
	End           *int64  `json:"end"`
	Status        string  `json:"status"`
	Efficiency    float64 `json:"efficiency"`
}
