package queries_test

import (
	"context"
	"testing"

	"seaport/internal/adapters/out/postgres"
	"seaport/internal/adapters/out/postgres/berthrepo"
	"seaport/internal/adapters/out/postgres/cargorepo"
	"seaport/internal/adapters/out/postgres/counterrepo"
	"seaport/internal/adapters/out/postgres/equipmentrepo"
	"seaport/internal/adapters/out/postgres/metricrepo"
	"seaport/internal/adapters/out/postgres/operationrepo"
	"seaport/internal/adapters/out/postgres/queuerepo"
	"seaport/internal/adapters/out/postgres/schedulerepo"
	"seaport/internal/adapters/out/postgres/vesselrepo"
	"seaport/internal/core/application/usecases/queries"
	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/cargo"
	"seaport/internal/core/domain/model/equipment"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/metric"
	"seaport/internal/core/domain/model/operation"
	"seaport/internal/core/domain/model/queue"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(string, string, any) {}

type QueriesTestSuite struct {
	suite.Suite
	ctx context.Context
	db  *gorm.DB
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) SetupTest() {
	db, err := postgres.NewTestConnection()
	s.Require().NoError(err)
	s.db = db
	s.ctx = context.Background()
}

func (s *QueriesTestSuite) TearDownTest() {
	s.Require().NoError(postgres.Close(s.db))
}

func (s *QueriesTestSuite) addVessel(id kernel.ID, class vessel.Class, cargoCapacity int) *vessel.Vessel {
	hull, err := kernel.NewDimensions(200, 30, 10)
	s.Require().NoError(err)
	v, err := vessel.NewVessel(id, hull, cargoCapacity, class, "acme-shipping", 400, 0)
	s.Require().NoError(err)
	s.Require().NoError(vesselrepo.NewGormVesselRepository(s.db, noopTracker{}).Add(s.ctx, v))
	return v
}

func (s *QueriesTestSuite) addBerth(id kernel.ID) *berth.Berth {
	envelope, err := kernel.NewDimensions(250, 40, 12)
	s.Require().NoError(err)
	b, err := berth.NewBerth(id, "East 2", envelope, vessel.Any, 2, 750)
	s.Require().NoError(err)
	s.Require().NoError(berthrepo.NewGormBerthRepository(s.db, noopTracker{}).Add(s.ctx, b))
	return b
}

func (s *QueriesTestSuite) addOperation(id kernel.ID, opType operation.Type, start, end kernel.Tick) {
	repo := operationrepo.NewGormOperationRepository(s.db, noopTracker{})
	op, err := operation.NewOperation(id, opType, 1, nil, "crane", int(id), "harbour-master", start)
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(s.ctx, op))
	if end > 0 {
		s.Require().NoError(op.Complete("harbour-master", end))
		s.Require().NoError(repo.Update(s.ctx, op))
	}
}

func (s *QueriesTestSuite) TestGetVessel() {
	v := s.addVessel(1, vessel.Cargo, 6000)
	s.Require().NoError(v.Dock(2))
	s.Require().NoError(vesselrepo.NewGormVesselRepository(s.db, noopTracker{}).Update(s.ctx, v))

	query, err := queries.NewGetVesselQuery(1)
	s.Require().NoError(err)
	resp, err := queries.NewGetVesselQueryHandler(s.db).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Equal(uint64(1), resp.ID)
	s.Equal(200, resp.Length)
	s.Equal(6000, resp.CargoCapacity)
	s.Equal("cargo", resp.Class)
	s.Equal("acme-shipping", resp.Owner)
	s.Equal(vessel.PriorityCargo, resp.Priority)
	s.Equal("docked", resp.Status)
	s.Require().NotNil(resp.BerthID)
	s.Equal(uint64(2), *resp.BerthID)
	s.Nil(resp.ScheduledDeparture)
}

func (s *QueriesTestSuite) TestMissingEntitiesReturnNil() {
	vq, err := queries.NewGetVesselQuery(9)
	s.Require().NoError(err)
	v, err := queries.NewGetVesselQueryHandler(s.db).Handle(s.ctx, vq)
	s.Require().NoError(err)
	s.Nil(v)

	bq, err := queries.NewGetBerthQuery(9)
	s.Require().NoError(err)
	b, err := queries.NewGetBerthQueryHandler(s.db).Handle(s.ctx, bq)
	s.Require().NoError(err)
	s.Nil(b)

	eq, err := queries.NewGetEquipmentStatusQuery("reach-stacker")
	s.Require().NoError(err)
	e, err := queries.NewGetEquipmentStatusQueryHandler(s.db).Handle(s.ctx, eq)
	s.Require().NoError(err)
	s.Nil(e)

	mq, err := queries.NewGetPerformanceMetricQuery("crane-moves")
	s.Require().NoError(err)
	m, err := queries.NewGetPerformanceMetricQueryHandler(s.db).Handle(s.ctx, mq)
	s.Require().NoError(err)
	s.Nil(m)

	tq, err := queries.NewGetTurnaroundEstimateQuery(9, "bulk")
	s.Require().NoError(err)
	ta, err := queries.NewGetTurnaroundEstimateQueryHandler(s.db).Handle(s.ctx, tq)
	s.Require().NoError(err)
	s.Nil(ta)

	cq, err := queries.NewGetCargoCheckpointsQuery(9)
	s.Require().NoError(err)
	cps, err := queries.NewGetCargoCheckpointsQueryHandler(s.db).Handle(s.ctx, cq)
	s.Require().NoError(err)
	s.Empty(cps)
}

func (s *QueriesTestSuite) TestInvalidQueriesAreRejected() {
	_, err := queries.NewGetVesselQueryHandler(s.db).Handle(s.ctx, queries.GetVesselQuery{})
	s.Require().ErrorIs(err, queries.ErrGetVesselQueryIsNotConstructed)

	_, err = queries.NewGetVesselQuery(0)
	s.Require().Error(err)

	_, err = queries.NewGetEquipmentStatusQuery("  ")
	s.Require().ErrorIs(err, equipment.ErrTypeIsRequired)
}

func (s *QueriesTestSuite) TestGetBerth() {
	s.addBerth(2)

	query, err := queries.NewGetBerthQuery(2)
	s.Require().NoError(err)
	resp, err := queries.NewGetBerthQueryHandler(s.db).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Equal(&queries.GetBerthQueryResponse{
		ID:             2,
		Name:           "East 2",
		MaxLength:      250,
		MaxBeam:        40,
		MaxDraft:       12,
		SupportedClass: "any",
		CraneCapacity:  2,
		HourlyRate:     750,
		Operational:    true,
	}, resp)
}

func (s *QueriesTestSuite) TestGetPortCapacity() {
	handler := queries.NewGetPortCapacityQueryHandler(s.db)

	empty, err := handler.Handle(s.ctx, queries.NewGetPortCapacityQuery())
	s.Require().NoError(err)
	s.Equal(queries.GetPortCapacityQueryResponse{}, empty)

	s.addBerth(1)
	s.addBerth(2)
	s.Require().NoError(counterrepo.NewGormCounterRepository(s.db).Increment(s.ctx, ports.BerthsInUse))

	resp, err := handler.Handle(s.ctx, queries.NewGetPortCapacityQuery())
	s.Require().NoError(err)
	s.Equal(queries.GetPortCapacityQueryResponse{
		TotalBerths:    2,
		CurrentLoad:    1,
		AvailableSlots: 1,
		Utilization:    50,
	}, resp)
}

func (s *QueriesTestSuite) TestGetVesselQueue() {
	repo := queuerepo.NewGormQueueRepository(s.db, noopTracker{})
	for _, e := range []struct {
		position, vesselID kernel.ID
		priority           int
	}{{1, 5, 3}, {2, 6, 10}, {3, 7, 7}} {
		entry, err := queue.NewEntry(e.position, e.vesselID, e.priority, 12)
		s.Require().NoError(err)
		s.Require().NoError(repo.Add(s.ctx, entry))
	}

	resp, err := queries.NewGetVesselQueueQueryHandler(s.db).Handle(s.ctx, queries.NewGetVesselQueueQuery())

	s.Require().NoError(err)
	s.Require().Len(resp, 3)
	s.Equal(uint64(6), resp[0].VesselID)
	s.Equal(uint64(7), resp[1].VesselID)
	s.Equal(uint64(5), resp[2].VesselID)
	s.Equal(queue.EstimateWait(10), resp[0].EstimatedWait)
	s.Equal(int64(12), resp[2].EnqueuedAt)
}

func (s *QueriesTestSuite) TestGetScheduleAndTurnaround() {
	s.addVessel(1, vessel.Standard, 6000)
	s.addBerth(2)
	sch, err := schedule.NewSchedule(1, 1, 2, 100, 400, 3, 0)
	s.Require().NoError(err)
	s.Require().NoError(schedulerepo.NewGormScheduleRepository(s.db, noopTracker{}).Add(s.ctx, sch))

	sq, err := queries.NewGetScheduleQuery(1)
	s.Require().NoError(err)
	got, err := queries.NewGetScheduleQueryHandler(s.db).Handle(s.ctx, sq)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("scheduled", got.Status)
	s.Equal(int64(300), got.EstimatedDuration)
	s.Nil(got.ActualArrival)

	handler := queries.NewGetTurnaroundEstimateQueryHandler(s.db)

	tq, err := queries.NewGetTurnaroundEstimateQuery(1, "Container")
	s.Require().NoError(err)
	fits, err := handler.Handle(s.ctx, tq)
	s.Require().NoError(err)
	s.Require().NotNil(fits)
	s.Equal(queries.GetTurnaroundEstimateQueryResponse{
		ScheduleID:     1,
		VesselID:       1,
		CargoCapacity:  6000,
		CargoType:      "container",
		Throughput:     30,
		EstimatedTicks: 200,
		BookedTicks:    300,
		FitsWindow:     true,
	}, *fits)

	tq, err = queries.NewGetTurnaroundEstimateQuery(1, "timber")
	s.Require().NoError(err)
	slow, err := handler.Handle(s.ctx, tq)
	s.Require().NoError(err)
	s.Equal(20, slow.Throughput)
	s.Equal(int64(300), slow.EstimatedTicks)
	s.True(slow.FitsWindow)
}

func (s *QueriesTestSuite) TestGetEquipmentStatus() {
	repo := equipmentrepo.NewGormEquipmentRepository(s.db, noopTracker{})
	inv, err := equipment.NewInventory("crane", 4, 4, 1)
	s.Require().NoError(err)
	_, err = inv.Reserve()
	s.Require().NoError(err)
	s.Require().NoError(repo.Add(s.ctx, inv))

	query, err := queries.NewGetEquipmentStatusQuery("CRANE")
	s.Require().NoError(err)
	resp, err := queries.NewGetEquipmentStatusQueryHandler(s.db).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Equal(queries.GetEquipmentStatusQueryResponse{
		Type:        "crane",
		Total:       4,
		Available:   3,
		Maintenance: 1,
		InUse:       1,
		Utilization: 25,
	}, *resp)
}

func (s *QueriesTestSuite) TestGetContainerAndCheckpoints() {
	vesselID := kernel.ID(3)
	c, err := cargo.NewContainer(1, "acme-shipping", cargo.Spec{
		Weight:      12000,
		CargoType:   "hazardous",
		Size:        "20ft",
		VesselID:    &vesselID,
		Destination: "Hamburg",
	})
	s.Require().NoError(err)
	s.Require().NoError(cargorepo.NewGormContainerRepository(s.db, noopTracker{}).Add(s.ctx, c))

	checkpoints := cargorepo.NewGormCheckpointRepository(s.db, noopTracker{})
	late, err := cargo.NewCheckpoint(uuid.New(), 1, "yard", "block C", cargo.InYard, "", "customs", 30)
	s.Require().NoError(err)
	early, err := cargo.NewCheckpoint(uuid.New(), 1, "quay", "berth 2", cargo.Unloading, "crane 1", "customs", 20)
	s.Require().NoError(err)
	s.Require().NoError(checkpoints.Add(s.ctx, late))
	s.Require().NoError(checkpoints.Add(s.ctx, early))

	cq, err := queries.NewGetContainerQuery(1)
	s.Require().NoError(err)
	container, err := queries.NewGetContainerQueryHandler(s.db).Handle(s.ctx, cq)
	s.Require().NoError(err)
	s.Require().NotNil(container)
	s.Equal("arriving", container.Status)
	s.Equal(cargo.PriorityHazardous, container.HandlingPriority)
	s.Require().NotNil(container.VesselID)
	s.Equal(uint64(3), *container.VesselID)

	pq, err := queries.NewGetCargoCheckpointsQuery(1)
	s.Require().NoError(err)
	history, err := queries.NewGetCargoCheckpointsQueryHandler(s.db).Handle(s.ctx, pq)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(early.ID(), history[0].ID)
	s.Equal("unloading", history[0].Status)
	s.Equal("crane 1", history[0].Notes)
	s.Equal("yard", history[1].Label)
	s.Equal("in-yard", history[1].Status)
}

func (s *QueriesTestSuite) TestGetOperation() {
	s.addOperation(1, operation.Transfer, 10, 50)

	query, err := queries.NewGetOperationQuery(1)
	s.Require().NoError(err)
	resp, err := queries.NewGetOperationQueryHandler(s.db).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Equal("transfer", resp.Type)
	s.Equal("completed", resp.Status)
	s.Equal("crane", resp.EquipmentType)
	s.Equal("harbour-master", resp.Operator)
	s.Require().NotNil(resp.End)
	s.Equal(int64(50), *resp.End)
	s.InDelta(200.0, resp.Efficiency, 1e-9)
	s.Nil(resp.VesselID)
}

func (s *QueriesTestSuite) TestGetPerformanceMetric() {
	m, err := metric.NewPerformanceMetric("Crane-Moves", 27, 30, "harbour-master", 40)
	s.Require().NoError(err)
	s.Require().NoError(metricrepo.NewGormMetricRepository(s.db, noopTracker{}).Save(s.ctx, m))

	// Loading standard is 120 ticks: 120 scores 100 and 60 scores 200.
	s.addOperation(1, operation.Loading, 0, 120)
	s.addOperation(2, operation.Loading, 0, 60)
	s.addOperation(3, operation.Loading, 0, 0)

	query, err := queries.NewGetPerformanceMetricQuery("  CRANE-moves ")
	s.Require().NoError(err)
	resp, err := queries.NewGetPerformanceMetricQueryHandler(s.db).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Equal("crane-moves", resp.Name)
	s.InDelta(90.0, resp.EfficiencyRatio, 1e-9)
	s.Equal("harbour-master", resp.RecordedBy)
	s.Equal(int64(40), resp.RecordedAt)
	s.Equal(2, resp.Operations.Count)
	s.InDelta(150.0, resp.Operations.Mean, 1e-9)
	s.InDelta(70.7106781, resp.Operations.StdDev, 1e-6)
	s.InDelta(100.0, resp.Operations.Min, 1e-9)
	s.InDelta(200.0, resp.Operations.Max, 1e-9)
}
