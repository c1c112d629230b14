// Package http implements the inbound HTTP adapter: the REST surface used
// by the front end and the callback endpoint the event bus delivers
// subscribed events to.
package http

import (
	"errors"
	"net/http"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/application/usecases/queries"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
	"deliveries/internal/metrics"
	"deliveries/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	processOrderEventHandler commands.ProcessOrderEventCommandHandler
	createDeliveryHandler    commands.CreateDeliveryCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	completeDeliveryHandler  commands.CompleteDeliveryCommandHandler

	getDeliveryHandler         queries.GetDeliveryQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler

	metrics *metrics.Metrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrderEventHandler commands.ProcessOrderEventCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	m *metrics.Metrics,
) *Server {
	return &Server{
		processOrderEventHandler:   processOrderEventHandler,
		createDeliveryHandler:      createDeliveryHandler,
		assignDriverHandler:        assignDriverHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		getDeliveryHandler:         getDeliveryHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		metrics:                    m,
	}
}

// RegisterRoutes binds all endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Health)
	e.POST("/events", s.HandleEvent)
	e.POST("/api/delivery/create", s.CreateDelivery)
	e.PUT("/api/delivery/driver/assign", s.AssignDriver)
	e.PUT("/api/delivery/complete", s.CompleteDelivery)
	e.GET("/api/delivery/active", s.GetActiveDeliveries)
	e.GET("/api/delivery/:id", s.GetDelivery)
	e.GET("/metrics", echo.WrapHandler(s.metrics.HTTPHandler()))
}

type messageResponse struct {
	Message string `json:"message"`
}

type deliveryResponse struct {
	Delivery any    `json:"delivery"`
	Message  string `json:"message"`
}

type eventRequest struct {
	Type string           `json:"type"`
	Data eventRequestData `json:"data"`
}

type eventRequestData struct {
	Status     string   `json:"status"`
	UserID     string   `json:"userId"`
	Time       string   `json:"time"`
	Foods      []string `json:"foods"`
	TotalPrice float64  `json:"totalPrice"`
}

type createDeliveryRequest struct {
	UserID     *string  `json:"userId"`
	Time       *string  `json:"time"`
	Foods      []string `json:"foods"`
	TotalPrice *float64 `json:"totalPrice"`
}

type assignDriverRequest struct {
	ID       *string `json:"_id"`
	DriverID *string `json:"driverId"`
}

type completeDeliveryRequest struct {
	ID *string `json:"_id"`
}

// Health handles GET / - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, messageResponse{Message: "ok"})
}

// HandleEvent handles POST /events - the bus callback for subscribed events.
// Unrecognized event types are acknowledged with 200 so the bus does not
// retry them; the subscription filter is advisory, not a contract.
func (s *Server) HandleEvent(ctx echo.Context) error {
	var req eventRequest
	if err := ctx.Bind(&req); err != nil {
		s.metrics.EventProcessed("error")
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	cmd, err := commands.NewProcessOrderEventCommand(
		req.Type, req.Data.Status, req.Data.UserID, req.Data.Time,
		req.Data.Foods, req.Data.TotalPrice,
	)
	if err != nil {
		s.metrics.EventProcessed("error")
		return s.mapError(ctx, err)
	}

	created, err := s.processOrderEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, delivery.ErrInsufficientFunds) {
			s.metrics.EventProcessed("rejected")
		} else {
			s.metrics.EventProcessed("error")
		}
		return s.mapError(ctx, err)
	}

	if created == nil {
		s.metrics.EventProcessed("ignored")
		return ctx.JSON(http.StatusOK, map[string]any{})
	}

	s.metrics.EventProcessed("created")
	return ctx.JSON(http.StatusCreated, deliveryResponse{
		Delivery: ports.DeliveryDataFromDomain(created),
		Message:  "Delivery successfully Added",
	})
}

// CreateDelivery handles POST /api/delivery/create - requests a new delivery.
// The response is optimistic: the record materializes when the processed
// order comes back through the bus.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	if req.UserID == nil || req.Time == nil || req.Foods == nil || req.TotalPrice == nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	cmd, err := commands.NewCreateDeliveryCommand(*req.UserID, *req.Time, req.Foods, *req.TotalPrice)
	if err != nil {
		return s.mapError(ctx, err)
	}

	event, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryResponse{
		Delivery: event,
		Message:  "Delivery successfully Created",
	})
}

// AssignDriver handles PUT /api/delivery/driver/assign - moves a delivery
// to in_transit with the given driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	var req assignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	if req.ID == nil || req.DriverID == nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	deliveryID, err := kernel.UUIDFromString(*req.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, *req.DriverID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	updated, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponse{
		Delivery: ports.DeliveryDataFromDomain(updated),
		Message:  "Driver successfully assigned.",
	})
}

// CompleteDelivery handles PUT /api/delivery/complete - marks a delivery
// delivered. Completing an already delivered record answers 200 with the
// stored record.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var req completeDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	if req.ID == nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	deliveryID, err := kernel.UUIDFromString(*req.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	updated, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryResponse{
		Delivery: ports.DeliveryDataFromDomain(updated),
		Message:  "Delivery has been completed.",
	})
}

// GetDelivery handles GET /api/delivery/:id - retrieves one delivery record.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	result, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryData(result))
}

// GetActiveDeliveries handles GET /api/delivery/active - lists all
// deliveries that have not been delivered yet.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	results, err := s.getActiveDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]ports.DeliveryData, 0, len(results))
	for _, r := range results {
		response = append(response, toDeliveryData(r))
	}

	return ctx.JSON(http.StatusOK, response)
}

func toDeliveryData(r queries.DeliveryResponse) ports.DeliveryData {
	return ports.DeliveryData{
		ID:         r.ID.String(),
		UserID:     r.UserID,
		DriverID:   r.DriverID,
		Status:     r.Status,
		Foods:      r.Foods,
		Time:       r.Time,
		TotalPrice: r.TotalPrice,
	}
}

func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, delivery.ErrInsufficientFunds):
		return ctx.JSON(http.StatusNotFound, messageResponse{Message: "Insufficient Funds."})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, messageResponse{Message: "Delivery not found."})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: "Body not complete."})
	case errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, delivery.ErrDriverAlreadyAssigned),
		errors.Is(err, ports.ErrConcurrentTransition):
		return ctx.JSON(http.StatusConflict, messageResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error."})
	}
}
