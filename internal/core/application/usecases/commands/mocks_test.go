package commands_test

import (
	"context"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) UpdateWithStatusCheck(
	ctx context.Context, s *shipment.Shipment, expected shipment.Status,
) error {
	args := m.Called(ctx, s, expected)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetActiveByOrderAndSeller(
	ctx context.Context, orderID, sellerID kernel.UUID,
) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetBySeller(
	ctx context.Context, sellerID kernel.UUID, orderID *kernel.UUID,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, sellerID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllInStatuses(
	ctx context.Context, statuses []shipment.Status,
) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockOrderItemReader struct{ mock.Mock }

func (m *MockOrderItemReader) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]order.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderItem), args.Error(1)
}

type MockUoW struct{ mock.Mock }

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

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) OrderItemReader() ports.OrderItemReader {
	args := m.Called()
	return args.Get(0).(ports.OrderItemReader)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockCarrierAdapter struct{ mock.Mock }

func (m *MockCarrierAdapter) CreateShipment(
	ctx context.Context, req ports.CreateShipmentRequest,
) (ports.ShipmentStub, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.ShipmentStub), args.Error(1)
}

func (m *MockCarrierAdapter) ProcessShipment(
	ctx context.Context, shipmentID kernel.UUID,
) (ports.ProcessResult, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).(ports.ProcessResult), args.Error(1)
}

func (m *MockCarrierAdapter) SchedulePickup(
	ctx context.Context, shipmentID kernel.UUID, window kernel.PickupWindow,
) error {
	args := m.Called(ctx, shipmentID, window)
	return args.Error(0)
}

func (m *MockCarrierAdapter) CancelPickup(ctx context.Context, shipmentID kernel.UUID) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

func (m *MockCarrierAdapter) VoidShipment(ctx context.Context, shipmentID kernel.UUID) error {
	args := m.Called(ctx, shipmentID)
	return args.Error(0)
}

func (m *MockCarrierAdapter) TrackShipment(
	ctx context.Context, shipmentID kernel.UUID, simulateStatus string,
) (ports.TrackingStatus, error) {
	args := m.Called(ctx, shipmentID, simulateStatus)
	return args.Get(0).(ports.TrackingStatus), args.Error(1)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// restoredShipment rebuilds a shipment at a given lifecycle point for
// handler tests. Tracking fields are filled for any status past pending.
func restoredShipment(status shipment.Status, createdAt time.Time) *shipment.Shipment {
	trackingNumber := ""
	labelPayload := ""
	if status != shipment.Pending {
		trackingNumber = "1Z999AA10123456784"
		labelPayload = "bGFiZWw="
	}

	var window *kernel.PickupWindow
	if status == shipment.PickupScheduled {
		w, err := kernel.NewPickupWindow("20250314", "090000", "170000")
		if err != nil {
			panic(err)
		}
		window = &w
	}

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		status,
		trackingNumber,
		labelPayload,
		4.5,
		"Ground",
		"1 Warehouse Way, Springfield",
		window,
		createdAt,
		createdAt,
	)
	if err != nil {
		panic(err)
	}
	return s
}
