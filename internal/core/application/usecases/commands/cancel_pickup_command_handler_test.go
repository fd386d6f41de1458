package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	scheduled := restoredShipment(shipment.PickupScheduled, nowUTC())

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockShipmentUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("ShipmentRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	repo.On("Get", mock.Anything, scheduled.ID()).Return(scheduled, nil).Once()
	repo.On("UpdateWithStatusCheck", mock.Anything, scheduled, shipment.PickupScheduled).Return(nil).Once()

	carrier := new(MockCarrierAdapter)
	carrier.On("CancelPickup", mock.Anything, scheduled.ID()).Return(nil).Once()

	handler := commands.NewCancelPickupCommandHandler(factory, carrier)
	cmd, err := commands.NewCancelPickupCommand(scheduled.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, shipment.Created, scheduled.Status())

	repo.AssertExpectations(t)
	carrier.AssertExpectations(t)
}

func TestCancelPickupCommandHandler_Handle_NoPickupScheduled(t *testing.T) {
	ctx := t.Context()

	for _, status := range []shipment.Status{
		shipment.Pending,
		shipment.Created,
		shipment.Shipped,
		shipment.Delivered,
	} {
		t.Run(status.String(), func(t *testing.T) {
			aggregate := restoredShipment(status, nowUTC())

			repo := new(MockShipmentRepository)
			uow := new(MockUoW)
			factory := new(MockShipmentUoWFactory)

			factory.On("Create").Return(uow)
			uow.On("ShipmentRepository").Return(repo)
			repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

			carrier := new(MockCarrierAdapter)

			handler := commands.NewCancelPickupCommandHandler(factory, carrier)
			cmd, err := commands.NewCancelPickupCommand(aggregate.ID())
			require.NoError(t, err)

			err = handler.Handle(ctx, cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, status, aggregate.Status())
			carrier.AssertNotCalled(t, "CancelPickup")
		})
	}
}

func TestCancelPickupCommandHandler_Handle_CarrierFailureLeavesScheduled(t *testing.T) {
	ctx := t.Context()
	scheduled := restoredShipment(shipment.PickupScheduled, nowUTC())

	repo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockShipmentUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("ShipmentRepository").Return(repo)
	repo.On("Get", mock.Anything, scheduled.ID()).Return(scheduled, nil).Once()

	carrier := new(MockCarrierAdapter)
	carrier.On("CancelPickup", mock.Anything, scheduled.ID()).
		Return(errs.NewCarrierError(errs.CarrierAlreadyPickedUp, "driver already collected")).Once()

	handler := commands.NewCancelPickupCommandHandler(factory, carrier)
	cmd, err := commands.NewCancelPickupCommand(scheduled.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCarrierRejected)
	assert.Equal(t, shipment.PickupScheduled, scheduled.Status())
	repo.AssertNotCalled(t, "UpdateWithStatusCheck", mock.Anything, mock.Anything, mock.Anything)
}
