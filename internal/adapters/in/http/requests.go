package http

// Request bodies. Numeric bounds are checked again by the command
// constructors; the tags reject obviously malformed input early.

type RegisterVesselRequest struct {
	Length           int    `json:"length" validate:"gt=0"`
	Beam             int    `json:"beam" validate:"gt=0"`
	Draft            int    `json:"draft" validate:"gt=0"`
	CargoCapacity    int    `json:"cargoCapacity" validate:"gt=0"`
	Class            string `json:"class" validate:"required"`
	RequestedArrival int64  `json:"requestedArrival" validate:"gte=0"`
}

type AssignBerthRequest struct {
	BerthID uint64 `json:"berthId" validate:"required"`
}

type ScheduleDepartureRequest struct {
	Departure int64 `json:"departure" validate:"gte=0"`
}

type RegisterBerthRequest struct {
	Name           string `json:"name" validate:"required,max=128"`
	MaxLength      int    `json:"maxLength" validate:"gt=0"`
	MaxBeam        int    `json:"maxBeam" validate:"gt=0"`
	MaxDraft       int    `json:"maxDraft" validate:"gt=0"`
	SupportedClass string `json:"supportedClass" validate:"required"`
	CraneCapacity  int    `json:"craneCapacity" validate:"gte=0"`
	HourlyRate     int64  `json:"hourlyRate" validate:"gte=0"`
}

type SetOperationalRequest struct {
	Operational *bool `json:"operational" validate:"required"`
}

type CreateScheduleRequest struct {
	VesselID           uint64 `json:"vesselId" validate:"required"`
	BerthID            uint64 `json:"berthId" validate:"required"`
	RequestedArrival   int64  `json:"requestedArrival" validate:"gte=0"`
	RequestedDeparture int64  `json:"requestedDeparture" validate:"gtfield=RequestedArrival"`
}

type RegisterContainerRequest struct {
	Weight        int    `json:"weight" validate:"gt=0"`
	CargoType     string `json:"cargoType" validate:"required"`
	ContainerType string `json:"containerType"`
	Size          string `json:"size"`
	VesselID      uint64 `json:"vesselId"`
	Location      string `json:"location"`
	Destination   string `json:"destination"`
}

type TrackMovementRequest struct {
	Label    string `json:"label" validate:"required"`
	Location string `json:"location" validate:"required"`
	Status   string `json:"status" validate:"required"`
	Notes    string `json:"notes"`
}

type CreateOperationRequest struct {
	Type          string `json:"type" validate:"required,oneof=loading unloading transfer"`
	ContainerID   uint64 `json:"containerId" validate:"required"`
	EquipmentType string `json:"equipmentType" validate:"required"`
}

type UpdateEquipmentRequest struct {
	Total       int `json:"total" validate:"gt=0"`
	Available   int `json:"available" validate:"gte=0,ltefield=Total"`
	Maintenance int `json:"maintenance" validate:"gte=0,ltefield=Total"`
}

type RecordMetricRequest struct {
	Name   string  `json:"name" validate:"required"`
	Value  float64 `json:"value" validate:"gte=0"`
	Target float64 `json:"target" validate:"gt=0"`
}

type AdvanceClockRequest struct {
	Ticks int64 `json:"ticks" validate:"gt=0"`
}

type IDResponse struct {
	ID uint64 `json:"id"`
}

type QueuePositionResponse struct {
	Position uint64 `json:"position"`
}

type AllocationResponse struct {
	VesselID uint64 `json:"vesselId"`
	BerthID  uint64 `json:"berthId"`
}

type EfficiencyResponse struct {
	Efficiency float64 `json:"efficiency"`
}

type CheckpointResponse struct {
	ID string `json:"id"`
}

type ClockResponse struct {
	Now int64 `json:"now"`
}
