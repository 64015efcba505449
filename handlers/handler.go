package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"caseboard/config"
	"caseboard/services"
	"caseboard/store"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves the JSON API on top of the record store
type Handler struct {
	clients   *services.ClientService
	cases     *services.CaseService
	notes     *services.NoteService
	documents *services.DocumentService
	dashboard *services.DashboardService
	logger    *zap.Logger
}

// New wires the services around s
func New(s *store.Store, cfg *config.Config, logger *zap.Logger) *Handler {
	submit := services.Latency{Delay: cfg.SubmitDelay}
	upload := services.Latency{Delay: cfg.UploadDelay}
	notes := services.NewNoteService(s, logger)

	return &Handler{
		clients:   services.NewClientService(s, submit, logger),
		cases:     services.NewCaseService(s, submit, logger),
		notes:     notes,
		documents: services.NewDocumentService(s, upload, cfg.MaxUploadSize, logger),
		dashboard: services.NewDashboardService(s, notes),
		logger:    logger,
	}
}

// listResponse wraps collection results
type listResponse struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

// validationResponse carries per-field messages
type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// fail maps a service error to an HTTP response. notFound is the message
// used when the record does not exist.
func (h *Handler) fail(c echo.Context, err error, notFound string) error {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.JSON(http.StatusUnprocessableEntity, validationResponse{
			Message: "validation failed",
			Errors:  verrs,
		})
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrFileTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Request cancelled")
	default:
		h.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

// requireConfirmation guards destructive actions: the caller must pass
// ?confirm=true.
func requireConfirmation(c echo.Context) error {
	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))
	if !confirmed {
		return echo.NewHTTPError(http.StatusPreconditionRequired, "Deletion must be confirmed with ?confirm=true")
	}
	return nil
}
