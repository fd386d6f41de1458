// Package http provides the inbound HTTP API for the shipment lifecycle:
// creation, processing, pickup scheduling, voiding, tracking, and seller
// listings. Handlers translate between the wire format and application
// commands/queries; all business rules stay in the core.
package http

import (
	"net/http"

	"shipping/internal/core/application/simulation"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles shipment HTTP requests, coordinating between handlers and
// application use cases.
type Server struct {
	createShipmentsHandler commands.CreateShipmentsCommandHandler
	processShipmentHandler commands.ProcessShipmentCommandHandler
	schedulePickupHandler  commands.SchedulePickupCommandHandler
	cancelPickupHandler    commands.CancelPickupCommandHandler
	voidShipmentHandler    commands.VoidShipmentCommandHandler
	trackShipmentHandler   commands.TrackShipmentCommandHandler

	getSellerShipmentsHandler queries.GetSellerShipmentsQueryHandler

	// simulator is nil outside development deployments; when nil the
	// simulation-statuses route is not registered at all.
	simulator *simulation.TrackingSimulator
}

// NewServer creates a new HTTP server with the required command and query
// handlers. simulator may be nil to disable the development surface.
func NewServer(
	createShipmentsHandler commands.CreateShipmentsCommandHandler,
	processShipmentHandler commands.ProcessShipmentCommandHandler,
	schedulePickupHandler commands.SchedulePickupCommandHandler,
	cancelPickupHandler commands.CancelPickupCommandHandler,
	voidShipmentHandler commands.VoidShipmentCommandHandler,
	trackShipmentHandler commands.TrackShipmentCommandHandler,
	getSellerShipmentsHandler queries.GetSellerShipmentsQueryHandler,
	simulator *simulation.TrackingSimulator,
) *Server {
	return &Server{
		createShipmentsHandler:    createShipmentsHandler,
		processShipmentHandler:    processShipmentHandler,
		schedulePickupHandler:     schedulePickupHandler,
		cancelPickupHandler:       cancelPickupHandler,
		voidShipmentHandler:       voidShipmentHandler,
		trackShipmentHandler:      trackShipmentHandler,
		getSellerShipmentsHandler: getSellerShipmentsHandler,
		simulator:                 simulator,
	}
}

// RegisterRoutes mounts the shipment API under /api/v1/shipments.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/shipments")

	g.POST("/create/:orderId", s.CreateShipments)
	g.POST("/process/:shipmentId", s.ProcessShipment)
	g.POST("/schedule-pickup/:shipmentId", s.SchedulePickup)
	g.DELETE("/cancel-pickup/:shipmentId", s.CancelPickup)
	g.DELETE("/void/:shipmentId", s.VoidShipment)
	g.PUT("/track/:shipmentId", s.TrackShipment)
	g.GET("/seller/:sellerId", s.GetSellerShipments)

	if s.simulator != nil {
		g.GET("/simulation-statuses", s.GetSimulationStatuses)
	}
}

// CreateShipments handles POST /create/:orderId. Creates one shipment per
// seller group of the order's approved items.
func (s *Server) CreateShipments(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCreateShipmentsCommand(orderID)
	if err != nil {
		return failWithError(ctx, err)
	}

	created, err := s.createShipmentsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failWithError(ctx, err)
	}

	return ok(ctx, http.StatusCreated, "shipments created", toCreatedShipmentResponses(created))
}

// ProcessShipment handles POST /process/:shipmentId. Purchases the label
// for a pending shipment.
func (s *Server) ProcessShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	cmd, err := commands.NewProcessShipmentCommand(shipmentID)
	if err != nil {
		return failWithError(ctx, err)
	}

	processed, err := s.processShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failWithError(ctx, err)
	}

	return ok(ctx, http.StatusOK, "shipment processed", processedShipmentResponse{
		TrackingNumber: processed.TrackingNumber,
		LabelPayload:   processed.LabelPayload,
	})
}

// SchedulePickup handles POST /schedule-pickup/:shipmentId.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	var req schedulePickupRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSchedulePickupCommand(shipmentID, req.PickupDate, req.ReadyTime, req.CloseTime)
	if err != nil {
		return failWithError(ctx, err)
	}

	if err = s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWithError(ctx, err)
	}

	return ok(ctx, http.StatusOK, "pickup scheduled", nil)
}

// CancelPickup handles DELETE /cancel-pickup/:shipmentId.
func (s *Server) CancelPickup(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	cmd, err := commands.NewCancelPickupCommand(shipmentID)
	if err != nil {
		return failWithError(ctx, err)
	}

	if err = s.cancelPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failWithError(ctx, err)
	}

	return ok(ctx, http.StatusOK, "pickup cancelled", nil)
}

// VoidShipment handles DELETE /void/:shipmentId. An ineligible shipment is
// not an error: the response reports the specific reason with success=false
// and HTTP 200, since the request itself was well-formed.
func (s *Server) VoidShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	cmd, err := commands.NewVoidShipmentCommand(shipmentID)
	if err != nil {
		return failWithError(ctx, err)
	}

	decision, err := s.voidShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failWithError(ctx, err)
	}

	if !decision.Eligible {
		return ctx.JSON(http.StatusOK, envelope{
			Success: false,
			Message: "shipment is not eligible for voiding",
			Data:    voidDecisionResponse{Eligible: false, Reason: decision.Reason},
		})
	}

	return ok(ctx, http.StatusOK, "shipment voided", voidDecisionResponse{Eligible: true})
}

// TrackShipment handles PUT /track/:shipmentId. The optional request body
// carries a simulation key honored only in development deployments.
func (s *Server) TrackShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid shipment id")
	}

	var req trackShipmentRequest
	if ctx.Request().ContentLength > 0 {
		if err = ctx.Bind(&req); err != nil {
			return fail(ctx, http.StatusBadRequest, "invalid request body")
		}
	}

	cmd, err := commands.NewTrackShipmentCommand(shipmentID, req.SimulateStatus)
	if err != nil {
		return failWithError(ctx, err)
	}

	tracked, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return failWithError(ctx, err)
	}

	return ok(ctx, http.StatusOK, "tracking refreshed", trackedShipmentResponse{
		ShipmentID:     tracked.ShipmentID,
		Status:         tracked.Status.String(),
		TrackingNumber: tracked.TrackingNumber,
		Description:    tracked.Description,
	})
}

// GetSellerShipments handles GET /seller/:sellerId with an optional orderId
// query parameter.
func (s *Server) GetSellerShipments(ctx echo.Context) error {
	sellerID, err := kernel.UUIDFromString(ctx.Param("sellerId"))
	if err != nil {
		return fail(ctx, http.StatusBadRequest, "invalid seller id")
	}

	var orderID *kernel.UUID
	if raw := ctx.QueryParam("orderId"); raw != "" {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return fail(ctx, http.StatusBadRequest, "invalid order id")
		}
		orderID = &id
	}

	query, err := queries.NewGetSellerShipmentsQuery(sellerID, orderID)
	if err != nil {
		return failWithError(ctx, err)
	}

	shipments, err := s.getSellerShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failWithError(ctx, err)
	}

	return ok(ctx, http.StatusOK, "seller shipments", toSellerShipmentResponses(shipments))
}

// GetSimulationStatuses handles GET /simulation-statuses. Registered only
// when the tracking simulator is enabled.
func (s *Server) GetSimulationStatuses(ctx echo.Context) error {
	return ok(ctx, http.StatusOK, "simulation statuses", s.simulator.Statuses())
}

func ok(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func fail(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, envelope{Success: false, Message: message})
}

func failWithError(ctx echo.Context, err error) error {
	return fail(ctx, statusFor(err), err.Error())
}
