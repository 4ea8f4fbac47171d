// Package http exposes the port engine over a JSON API built on echo.
//
// The caller identity is taken from the X-Caller-ID header and passed to the
// commands unchanged; authorization happens in the command handlers.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/application/usecases/queries"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/ports"
	"seaport/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CallerHeader carries the principal issuing a request.
const CallerHeader = "X-Caller-ID"

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	RegisterVessel        commands.RegisterVesselCommandHandler
	AddToQueue            commands.AddToQueueCommandHandler
	AssignBerth           commands.AssignBerthCommandHandler
	ReleaseBerth          commands.ReleaseBerthCommandHandler
	ScheduleDeparture     commands.ScheduleDepartureCommandHandler
	AllocateQueuedVessel  commands.AllocateQueuedVesselCommandHandler
	RegisterBerth         commands.RegisterBerthCommandHandler
	SetBerthOperational   commands.SetBerthOperationalCommandHandler
	CreateSchedule        commands.CreateScheduleCommandHandler
	ScheduleEvents        commands.ScheduleEventCommandHandler
	RegisterContainer     commands.RegisterContainerCommandHandler
	TrackCargoMovement    commands.TrackCargoMovementCommandHandler
	CreateOperation       commands.CreateOperationCommandHandler
	CompleteOperation     commands.CompleteOperationCommandHandler
	UpdateEquipment       commands.UpdateEquipmentInventoryCommandHandler
	RecordMetric          commands.RecordPerformanceMetricCommandHandler
	ChangeRole            commands.ChangeRoleCommandHandler
}

// Queries groups the query handlers the server reads through.
type Queries struct {
	Vessel             queries.GetVesselQueryHandler
	Berth              queries.GetBerthQueryHandler
	Schedule           queries.GetScheduleQueryHandler
	Container          queries.GetContainerQueryHandler
	Operation          queries.GetOperationQueryHandler
	EquipmentStatus    queries.GetEquipmentStatusQueryHandler
	PortCapacity       queries.GetPortCapacityQueryHandler
	PerformanceMetric  queries.GetPerformanceMetricQueryHandler
	TurnaroundEstimate queries.GetTurnaroundEstimateQueryHandler
	CargoCheckpoints   queries.GetCargoCheckpointsQueryHandler
	VesselQueue        queries.GetVesselQueueQueryHandler
}

// Clock is the logical clock as seen by administrators.
type Clock interface {
	ports.Clock
	Advance(delta int64) kernel.Tick
}

// Server implements the HTTP handlers.
type Server struct {
	commands Commands
	queries  Queries
	clock    Clock
	gate     ports.AuthorizationGate
	logger   *slog.Logger
}

func NewServer(cmds Commands, qs Queries, clock Clock, gate ports.AuthorizationGate, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		clock:    clock,
		gate:     gate,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	v1 := e.Group("/api/v1")

	v1.POST("/vessels", s.RegisterVessel)
	v1.GET("/vessels/:id", s.GetVessel)
	v1.POST("/vessels/:id/queue", s.AddToQueue)
	v1.PUT("/vessels/:id/berth", s.AssignBerth)
	v1.DELETE("/vessels/:id/berth", s.ReleaseBerth)
	v1.PUT("/vessels/:id/departure", s.ScheduleDeparture)

	v1.GET("/queue", s.GetVesselQueue)
	v1.POST("/queue/allocations", s.AllocateQueuedVessel)

	v1.POST("/berths", s.RegisterBerth)
	v1.GET("/berths/:id", s.GetBerth)
	v1.PUT("/berths/:id/operational", s.SetBerthOperational)

	v1.POST("/schedules", s.CreateSchedule)
	v1.GET("/schedules/:id", s.GetSchedule)
	v1.POST("/schedules/:id/arrival", s.RecordArrival)
	v1.POST("/schedules/:id/departure", s.RecordDeparture)
	v1.GET("/schedules/:id/turnaround", s.GetTurnaroundEstimate)

	v1.POST("/containers", s.RegisterContainer)
	v1.GET("/containers/:id", s.GetContainer)
	v1.POST("/containers/:id/checkpoints", s.TrackCargoMovement)
	v1.GET("/containers/:id/checkpoints", s.GetCargoCheckpoints)

	v1.POST("/operations", s.CreateOperation)
	v1.GET("/operations/:id", s.GetOperation)
	v1.POST("/operations/:id/completion", s.CompleteOperation)

	v1.PUT("/equipment/:type", s.UpdateEquipment)
	v1.GET("/equipment/:type", s.GetEquipmentStatus)

	v1.GET("/capacity", s.GetPortCapacity)
	v1.POST("/performance-metrics", s.RecordPerformanceMetric)
	v1.GET("/performance-metrics/:name", s.GetPerformanceMetric)

	v1.PUT("/roles/:principal/:role", s.GrantRole)
	v1.DELETE("/roles/:principal/:role", s.RevokeRole)

	v1.GET("/clock", s.GetClock)
	v1.POST("/clock/advance", s.AdvanceClock)
}

func (s *Server) RegisterVessel(c echo.Context) error {
	var req RegisterVesselRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterVesselCommand(
		caller(c), req.Length, req.Beam, req.Draft, req.CargoCapacity, req.Class, req.RequestedArrival,
	)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.commands.RegisterVessel.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: uint64(id)})
}

func (s *Server) GetVessel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetVesselQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	v, err := s.queries.Vessel.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if v == nil {
		return s.fail(c, errs.NewObjectNotFoundError("vessel", id))
	}
	return c.JSON(http.StatusOK, v)
}

func (s *Server) AddToQueue(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewAddToQueueCommand(caller(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	position, err := s.commands.AddToQueue.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, QueuePositionResponse{Position: uint64(position)})
}

func (s *Server) AssignBerth(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req AssignBerthRequest
	if err = bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAssignBerthCommand(caller(c), id, req.BerthID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.AssignBerth.Handle(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ReleaseBerth(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewReleaseBerthCommand(caller(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ReleaseBerth.Handle(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ScheduleDeparture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req ScheduleDepartureRequest
	if err = bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewScheduleDepartureCommand(caller(c), id, req.Departure)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ScheduleDeparture.Handle(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetVesselQueue(c echo.Context) error {
	entries, err := s.queries.VesselQueue.Handle(ctx(c), queries.NewGetVesselQueueQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// AllocateQueuedVessel answers 204 when nobody is waiting.
func (s *Server) AllocateQueuedVessel(c echo.Context) error {
	cmd, err := commands.NewAllocateQueuedVesselCommand(caller(c))
	if err != nil {
		return s.fail(c, err)
	}

	allocation, err := s.commands.AllocateQueuedVessel.Handle(ctx(c), cmd)
	if errors.Is(err, commands.ErrQueueIsEmpty) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, AllocationResponse{
		VesselID: uint64(allocation.VesselID),
		BerthID:  uint64(allocation.BerthID),
	})
}

func (s *Server) RegisterBerth(c echo.Context) error {
	var req RegisterBerthRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterBerthCommand(caller(c), commands.RegisterBerthSpec{
		Name:           req.Name,
		MaxLength:      req.MaxLength,
		MaxBeam:        req.MaxBeam,
		MaxDraft:       req.MaxDraft,
		SupportedClass: req.SupportedClass,
		CraneCapacity:  req.CraneCapacity,
		HourlyRate:     req.HourlyRate,
	})
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.commands.RegisterBerth.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: uint64(id)})
}

func (s *Server) GetBerth(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetBerthQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	b, err := s.queries.Berth.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if b == nil {
		return s.fail(c, errs.NewObjectNotFoundError("berth", id))
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) SetBerthOperational(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req SetOperationalRequest
	if err = bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewSetBerthOperationalCommand(caller(c), id, *req.Operational)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.SetBerthOperational.Handle(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) CreateSchedule(c echo.Context) error {
	var req CreateScheduleRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateScheduleCommand(
		caller(c), req.VesselID, req.BerthID, req.RequestedArrival, req.RequestedDeparture,
	)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.commands.CreateSchedule.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: uint64(id)})
}

func (s *Server) GetSchedule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetScheduleQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	sch, err := s.queries.Schedule.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if sch == nil {
		return s.fail(c, errs.NewObjectNotFoundError("schedule", id))
	}
	return c.JSON(http.StatusOK, sch)
}

func (s *Server) RecordArrival(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRecordArrivalCommand(caller(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ScheduleEvents.HandleArrival(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RecordDeparture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewRecordDepartureCommand(caller(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ScheduleEvents.HandleDeparture(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetTurnaroundEstimate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetTurnaroundEstimateQuery(id, c.QueryParam("cargoType"))
	if err != nil {
		return s.fail(c, err)
	}

	estimate, err := s.queries.TurnaroundEstimate.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if estimate == nil {
		return s.fail(c, errs.NewObjectNotFoundError("schedule", id))
	}
	return c.JSON(http.StatusOK, estimate)
}

func (s *Server) RegisterContainer(c echo.Context) error {
	var req RegisterContainerRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterContainerCommand(caller(c), commands.RegisterContainerSpec{
		Weight:        req.Weight,
		CargoType:     req.CargoType,
		ContainerType: req.ContainerType,
		Size:          req.Size,
		VesselID:      req.VesselID,
		Location:      req.Location,
		Destination:   req.Destination,
	})
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.commands.RegisterContainer.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: uint64(id)})
}

func (s *Server) GetContainer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetContainerQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	container, err := s.queries.Container.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if container == nil {
		return s.fail(c, errs.NewObjectNotFoundError("container", id))
	}
	return c.JSON(http.StatusOK, container)
}

func (s *Server) TrackCargoMovement(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req TrackMovementRequest
	if err = bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTrackCargoMovementCommand(caller(c), id, req.Label, req.Location, req.Status, req.Notes)
	if err != nil {
		return s.fail(c, err)
	}

	checkpointID, err := s.commands.TrackCargoMovement.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CheckpointResponse{ID: checkpointID.String()})
}

func (s *Server) GetCargoCheckpoints(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetCargoCheckpointsQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	checkpoints, err := s.queries.CargoCheckpoints.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, checkpoints)
}

func (s *Server) CreateOperation(c echo.Context) error {
	var req CreateOperationRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOperationCommand(caller(c), req.Type, req.ContainerID, req.EquipmentType)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.commands.CreateOperation.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, IDResponse{ID: uint64(id)})
}

func (s *Server) GetOperation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetOperationQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	op, err := s.queries.Operation.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if op == nil {
		return s.fail(c, errs.NewObjectNotFoundError("operation", id))
	}
	return c.JSON(http.StatusOK, op)
}

func (s *Server) CompleteOperation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCompleteOperationCommand(caller(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	efficiency, err := s.commands.CompleteOperation.Handle(ctx(c), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, EfficiencyResponse{Efficiency: efficiency})
}

func (s *Server) UpdateEquipment(c echo.Context) error {
	var req UpdateEquipmentRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateEquipmentInventoryCommand(
		caller(c), c.Param("type"), req.Total, req.Available, req.Maintenance,
	)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateEquipment.Handle(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetEquipmentStatus(c echo.Context) error {
	query, err := queries.NewGetEquipmentStatusQuery(c.Param("type"))
	if err != nil {
		return s.fail(c, err)
	}

	status, err := s.queries.EquipmentStatus.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if status == nil {
		return s.fail(c, errs.NewObjectNotFoundError("equipment", query.EquipmentType()))
	}
	return c.JSON(http.StatusOK, status)
}

func (s *Server) GetPortCapacity(c echo.Context) error {
	capacity, err := s.queries.PortCapacity.Handle(ctx(c), queries.NewGetPortCapacityQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, capacity)
}

func (s *Server) RecordPerformanceMetric(c echo.Context) error {
	var req RecordMetricRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRecordPerformanceMetricCommand(caller(c), req.Name, req.Value, req.Target)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.RecordMetric.Handle(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetPerformanceMetric(c echo.Context) error {
	query, err := queries.NewGetPerformanceMetricQuery(c.Param("name"))
	if err != nil {
		return s.fail(c, err)
	}

	m, err := s.queries.PerformanceMetric.Handle(ctx(c), query)
	if err != nil {
		return s.fail(c, err)
	}
	if m == nil {
		return s.fail(c, errs.NewObjectNotFoundError("performance metric", query.Name()))
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) GrantRole(c echo.Context) error {
	cmd, err := commands.NewChangeRoleCommand(caller(c), c.Param("principal"), c.Param("role"))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ChangeRole.Grant(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) RevokeRole(c echo.Context) error {
	cmd, err := commands.NewChangeRoleCommand(caller(c), c.Param("principal"), c.Param("role"))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.ChangeRole.Revoke(ctx(c), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetClock(c echo.Context) error {
	return c.JSON(http.StatusOK, ClockResponse{Now: int64(s.clock.Now())})
}

// AdvanceClock is reserved to the contract owner.
func (s *Server) AdvanceClock(c echo.Context) error {
	principal, err := kernel.NewPrincipal(caller(c))
	if err != nil {
		return s.fail(c, err)
	}
	var req AdvanceClockRequest
	if err = bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	ok, err := s.gate.IsAuthorized(ctx(c), principal, kernel.RoleContractOwner)
	if err != nil {
		return s.fail(c, err)
	}
	if !ok {
		return s.fail(c, errs.NewUnauthorizedError(principal.String(), "advance the clock"))
	}

	now := s.clock.Advance(req.Ticks)
	return c.JSON(http.StatusOK, ClockResponse{Now: int64(now)})
}

func (s *Server) fail(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx(c), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}
	return c.JSON(status, Error{Code: status, Message: message})
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	if err := c.Validate(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func caller(c echo.Context) string {
	return c.Request().Header.Get(CallerHeader)
}

func ctx(c echo.Context) context.Context {
	return c.Request().Context()
}
