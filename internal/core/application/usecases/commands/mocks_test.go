package commands_test

import (
	"context"

	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/domain/model/berth"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/queue"
	"seaport/internal/core/domain/model/schedule"
	"seaport/internal/core/domain/model/vessel"
	"seaport/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockGate struct {
	mock.Mock
}

func (m *MockGate) IsAuthorized(ctx context.Context, caller kernel.Principal, role kernel.Role) (bool, error) {
	args := m.Called(ctx, caller, role)
	return args.Bool(0), args.Error(1)
}

type MockClock struct {
	now kernel.Tick
}

func (c MockClock) Now() kernel.Tick { return c.now }

type MockVesselRepository struct {
	mock.Mock
}

func (m *MockVesselRepository) Add(ctx context.Context, v *vessel.Vessel) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVesselRepository) Update(ctx context.Context, v *vessel.Vessel) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVesselRepository) Get(ctx context.Context, id kernel.ID) (*vessel.Vessel, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*vessel.Vessel)
	return v, args.Error(1)
}

type MockBerthRepository struct {
	mock.Mock
}

func (m *MockBerthRepository) Add(ctx context.Context, b *berth.Berth) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBerthRepository) Update(ctx context.Context, b *berth.Berth) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBerthRepository) Get(ctx context.Context, id kernel.ID) (*berth.Berth, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*berth.Berth)
	return b, args.Error(1)
}

func (m *MockBerthRepository) GetAllFree(ctx context.Context) ([]*berth.Berth, error) {
	args := m.Called(ctx)
	berths, _ := args.Get(0).([]*berth.Berth)
	return berths, args.Error(1)
}

type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) Add(ctx context.Context, entry *queue.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQueueRepository) Update(ctx context.Context, entry *queue.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQueueRepository) GetWaiting(ctx context.Context) ([]*queue.Entry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]*queue.Entry)
	return entries, args.Error(1)
}

func (m *MockQueueRepository) GetWaitingByVessel(ctx context.Context, vesselID kernel.ID) (*queue.Entry, error) {
	args := m.Called(ctx, vesselID)
	entry, _ := args.Get(0).(*queue.Entry)
	return entry, args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Add(ctx context.Context, s *schedule.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) Get(ctx context.Context, id kernel.ID) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*schedule.Schedule)
	return s, args.Error(1)
}

func (m *MockScheduleRepository) GetActiveByVessel(ctx context.Context, vesselID kernel.ID) ([]*schedule.Schedule, error) {
	args := m.Called(ctx, vesselID)
	schedules, _ := args.Get(0).([]*schedule.Schedule)
	return schedules, args.Error(1)
}

func (m *MockScheduleRepository) GetActiveByBerth(ctx context.Context, berthID kernel.ID) ([]*schedule.Schedule, error) {
	args := m.Called(ctx, berthID)
	schedules, _ := args.Get(0).([]*schedule.Schedule)
	return schedules, args.Error(1)
}

type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) NextID(ctx context.Context, class kernel.EntityClass) (kernel.ID, error) {
	args := m.Called(ctx, class)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockCounterRepository) Increment(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCounterRepository) Decrement(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockUoW hands out whichever repositories a test registers; the rest are nil.
type MockUoW struct {
	mock.Mock

	vessels   ports.VesselRepository
	berths    ports.BerthRepository
	schedules ports.ScheduleRepository
	queue     ports.QueueRepository
	counters  ports.CounterRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) VesselRepository() ports.VesselRepository { return m.vessels }

func (m *MockUoW) BerthRepository() ports.BerthRepository { return m.berths }

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository { return m.schedules }

func (m *MockUoW) QueueRepository() ports.QueueRepository { return m.queue }

func (m *MockUoW) EquipmentRepository() ports.EquipmentRepository { return nil }

func (m *MockUoW) ContainerRepository() ports.ContainerRepository { return nil }

func (m *MockUoW) CheckpointRepository() ports.CheckpointRepository { return nil }

func (m *MockUoW) OperationRepository() ports.OperationRepository { return nil }

func (m *MockUoW) MetricRepository() ports.MetricRepository { return nil }

func (m *MockUoW) RoleRepository() ports.RoleRepository { return nil }

func (m *MockUoW) CounterRepository() ports.CounterRepository { return m.counters }

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
