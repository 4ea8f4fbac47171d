package commands_test

import (
	"errors"
	"testing"

	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/domain/model/kernel"
	"seaport/internal/core/domain/model/vessel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterVesselCommandHandler(t *testing.T) {
	handler := commands.NewRegisterVesselCommandHandler(new(MockUoWFactory), MockClock{})

	assert.NotNil(t, handler)
}

func TestRegisterVesselCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterVesselCommand("acme-shipping", 200, 30, 10, 5000, "emergency", 400)
	require.NoError(t, err)

	vessels := new(MockVesselRepository)
	counters := new(MockCounterRepository)
	uow := &MockUoW{vessels: vessels, counters: counters}
	factory := new(MockUoWFactory)

	var stored *vessel.Vessel
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		counters.On("NextID", ctx, kernel.VesselClass).Return(kernel.ID(7), nil).Once(),
		vessels.On("Add", ctx, mock.AnythingOfType("*vessel.Vessel")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*vessel.Vessel) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewRegisterVesselCommandHandler(factory, MockClock{now: 100})

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(7), id)
	require.NotNil(t, stored)
	assert.Equal(t, kernel.Principal("acme-shipping"), stored.Owner())
	assert.Equal(t, vessel.Registered, stored.Status())
	assert.Equal(t, vessel.PriorityEmergency, stored.Priority())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	vessels.AssertExpectations(t)
	counters.AssertExpectations(t)
}

func TestRegisterVesselCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	handler := commands.NewRegisterVesselCommandHandler(factory, MockClock{})

	_, err := handler.Handle(ctx, commands.RegisterVesselCommand{})

	require.ErrorIs(t, err, commands.ErrRegisterVesselCommandIsNotConstructed)
	factory.AssertExpectations(t)
}

func TestRegisterVesselCommandHandler_Handle_NextIDError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterVesselCommand("acme-shipping", 200, 30, 10, 5000, "cargo", 400)
	require.NoError(t, err)

	expectedError := errors.New("counter table locked")
	vessels := new(MockVesselRepository)
	counters := new(MockCounterRepository)
	uow := &MockUoW{vessels: vessels, counters: counters}
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	counters.On("NextID", ctx, kernel.VesselClass).Return(kernel.ID(0), expectedError).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewRegisterVesselCommandHandler(factory, MockClock{})

	id, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, expectedError)
	assert.Zero(t, id)
	vessels.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestRegisterVesselCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterVesselCommand("acme-shipping", 200, 30, 10, 5000, "cargo", 400)
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	uow := &MockUoW{}
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(expectedError).Once()

	handler := commands.NewRegisterVesselCommandHandler(factory, MockClock{})

	_, err = handler.Handle(ctx, cmd)

	assert.Equal(t, expectedError, err)
	uow.AssertExpectations(t)
}
