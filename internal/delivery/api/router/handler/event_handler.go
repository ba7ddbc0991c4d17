package handler

import (
	"log/slog"
	"net/http"

	"notifyd/internal/delivery/api/response"
	"notifyd/internal/delivery/api/validator"
	"notifyd/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// EventHandler accepts business events from out-of-process producers
type EventHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// EnqueueEvent validates and queues an event. Delivery happens asynchronously.
func (h *EventHandler) EnqueueEvent(c echo.Context) error {
	var req usecase.EnqueueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid event input", validator.FieldErrors(err))
	}

	event, err := h.dispatchUC.Enqueue(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]any{
		"event_id":   event.ID,
		"status":     event.Status,
		"dedupe_key": event.DedupeKey,
	})
}
