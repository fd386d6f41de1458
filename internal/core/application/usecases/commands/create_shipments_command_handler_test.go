package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testShipperAddress = "1 Warehouse Way, Springfield"
	testService        = "Ground"
)

func approvedItem(orderID, sellerID kernel.UUID, quantity int, unitWeight, itemTotal float64) order.OrderItem {
	return order.OrderItem{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		SellerID:   sellerID,
		Status:     order.ItemStatusApproved,
		Quantity:   quantity,
		Price:      itemTotal / float64(quantity),
		ItemTotal:  itemTotal,
		UnitWeight: unitWeight,
	}
}

func TestCreateShipmentsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	sellerA := kernel.NewUUID()
	sellerB := kernel.NewUUID()

	items := []order.OrderItem{
		approvedItem(orderID, sellerA, 2, 1.5, 40),
		approvedItem(orderID, sellerA, 1, 0.5, 10),
		approvedItem(orderID, sellerB, 3, 2, 90),
		{ID: kernel.NewUUID(), OrderID: orderID, SellerID: sellerB, Status: order.ItemStatusRejected, Quantity: 1},
	}

	repo := new(MockShipmentRepository)
	reader := new(MockOrderItemReader)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderItemReader").Return(reader).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	reader.On("GetByOrder", mock.Anything, orderID).Return(items, nil).Once()
	repo.On("GetActiveByOrderAndSeller", mock.Anything, orderID, mock.Anything).
		Return(nil, errs.ErrObjectNotFound).Twice()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Twice()
	repo.On("UpdateWithStatusCheck", mock.Anything, mock.AnythingOfType("*shipment.Shipment"), shipment.Pending).
		Return(nil).Twice()

	carrier := new(MockCarrierAdapter)
	carrier.On("CreateShipment", mock.Anything, mock.AnythingOfType("ports.CreateShipmentRequest")).
		Return(ports.ShipmentStub{CarrierRef: "REF-1"}, nil).Twice()
	carrier.On("ProcessShipment", mock.Anything, mock.AnythingOfType("kernel.UUID")).
		Return(ports.ProcessResult{TrackingNumber: "1Z999AA10123456784", LabelPayload: "bGFiZWw="}, nil).Twice()

	handler := commands.NewCreateShipmentsCommandHandler(factory, carrier, testShipperAddress, testService)
	cmd, err := commands.NewCreateShipmentsCommand(orderID)
	require.NoError(t, err)

	created, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, created, 2)

	bySeller := map[kernel.UUID]commands.CreatedShipment{}
	for _, c := range created {
		assert.Equal(t, shipment.Created, c.Status)
		assert.Equal(t, "1Z999AA10123456784", c.TrackingNumber)
		bySeller[c.SellerID] = c
	}

	assert.InDelta(t, 3.5, bySeller[sellerA].Weight, 1e-9)
	assert.InDelta(t, 50.0, bySeller[sellerA].Total, 1e-9)
	assert.InDelta(t, 6.0, bySeller[sellerB].Weight, 1e-9)
	assert.InDelta(t, 90.0, bySeller[sellerB].Total, 1e-9)

	repo.AssertExpectations(t)
	reader.AssertExpectations(t)
	carrier.AssertExpectations(t)
}

func TestCreateShipmentsCommandHandler_Handle_NoShippableItems(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	items := []order.OrderItem{
		{ID: kernel.NewUUID(), OrderID: orderID, SellerID: kernel.NewUUID(), Status: order.ItemStatusPending, Quantity: 1},
		{ID: kernel.NewUUID(), OrderID: orderID, SellerID: kernel.NewUUID(), Status: order.ItemStatusCancelled, Quantity: 1},
	}

	reader := new(MockOrderItemReader)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderItemReader").Return(reader).Once()
	reader.On("GetByOrder", mock.Anything, orderID).Return(items, nil).Once()

	carrier := new(MockCarrierAdapter)

	handler := commands.NewCreateShipmentsCommandHandler(factory, carrier, testShipperAddress, testService)
	cmd, err := commands.NewCreateShipmentsCommand(orderID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNoShippableItems)
	carrier.AssertNotCalled(t, "CreateShipment")
}

func TestCreateShipmentsCommandHandler_Handle_ActiveShipmentConflict(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	existing := restoredShipment(shipment.Created, nowUTC())

	repo := new(MockShipmentRepository)
	reader := new(MockOrderItemReader)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderItemReader").Return(reader).Once()
	uow.On("ShipmentRepository").Return(repo)

	reader.On("GetByOrder", mock.Anything, orderID).
		Return([]order.OrderItem{approvedItem(orderID, sellerID, 1, 1, 10)}, nil).Once()
	repo.On("GetActiveByOrderAndSeller", mock.Anything, orderID, sellerID).Return(existing, nil).Once()

	carrier := new(MockCarrierAdapter)

	handler := commands.NewCreateShipmentsCommandHandler(factory, carrier, testShipperAddress, testService)
	cmd, err := commands.NewCreateShipmentsCommand(orderID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	carrier.AssertNotCalled(t, "CreateShipment")
	repo.AssertNotCalled(t, "Add")
}

func TestCreateShipmentsCommandHandler_Handle_ProcessFailureLeavesPending(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	repo := new(MockShipmentRepository)
	reader := new(MockOrderItemReader)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderItemReader").Return(reader).Once()
	uow.On("ShipmentRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	reader.On("GetByOrder", mock.Anything, orderID).
		Return([]order.OrderItem{approvedItem(orderID, sellerID, 1, 1, 10)}, nil).Once()
	repo.On("GetActiveByOrderAndSeller", mock.Anything, orderID, sellerID).
		Return(nil, errs.ErrObjectNotFound).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()

	carrier := new(MockCarrierAdapter)
	carrier.On("CreateShipment", mock.Anything, mock.AnythingOfType("ports.CreateShipmentRequest")).
		Return(ports.ShipmentStub{}, nil).Once()
	carrier.On("ProcessShipment", mock.Anything, mock.AnythingOfType("kernel.UUID")).
		Return(ports.ProcessResult{}, errs.NewNetworkError("process shipment", assert.AnError)).Once()

	handler := commands.NewCreateShipmentsCommandHandler(factory, carrier, testShipperAddress, testService)
	cmd, err := commands.NewCreateShipmentsCommand(orderID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNetwork)

	// The pending row was persisted; the created status was never committed.
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateWithStatusCheck", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateShipmentsCommandHandler_Handle_CarrierCreateFailure(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	repo := new(MockShipmentRepository)
	reader := new(MockOrderItemReader)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("OrderItemReader").Return(reader).Once()
	uow.On("ShipmentRepository").Return(repo)

	reader.On("GetByOrder", mock.Anything, orderID).
		Return([]order.OrderItem{approvedItem(orderID, sellerID, 1, 1, 10)}, nil).Once()
	repo.On("GetActiveByOrderAndSeller", mock.Anything, orderID, sellerID).
		Return(nil, errs.ErrObjectNotFound).Once()

	carrier := new(MockCarrierAdapter)
	carrier.On("CreateShipment", mock.Anything, mock.AnythingOfType("ports.CreateShipmentRequest")).
		Return(ports.ShipmentStub{}, errs.NewCarrierError(errs.CarrierRejectedOther, "invalid address")).Once()

	handler := commands.NewCreateShipmentsCommandHandler(factory, carrier, testShipperAddress, testService)
	cmd, err := commands.NewCreateShipmentsCommand(orderID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCarrierRejected)

	// Nothing was persisted for the failed group.
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateShipmentsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockUoWFactory)
	carrier := new(MockCarrierAdapter)
	handler := commands.NewCreateShipmentsCommandHandler(factory, carrier, testShipperAddress, testService)

	_, err := handler.Handle(ctx, commands.CreateShipmentsCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateShipmentsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
