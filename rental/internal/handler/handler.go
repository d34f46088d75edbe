package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rentacar/rental-service/pkg/kafka"
	"github.com/rentacar/rental-service/pkg/validate"
	"github.com/rentacar/rental-service/rental/internal/errs"
	"github.com/rentacar/rental-service/rental/internal/model"
)

type Handler struct {
	bookingSvc BookingService
	events     EventLog
	log        *zap.Logger
}

func New(bookingSvc BookingService, events EventLog, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		events:     events,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/rentals", h.Rent)
	api.DELETE("/rentals/:rentalId", h.Cancel)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Rent(c echo.Context) error {
	var req model.RentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	rental, err := h.bookingSvc.Rent(ctx, req)
	if err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}

	h.logEvent(kafka.OpRent, rental.Reservation)

	return c.JSON(http.StatusCreated, rental)
}

func (h *Handler) Cancel(c echo.Context) error {
	var req model.CancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ReservationID = c.Param("rentalId")
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := h.bookingSvc.Cancel(ctx, req); err != nil {
		return echo.NewHTTPError(httpStatus(err), err.Error())
	}

	h.logEvent(kafka.OpCancel, model.Reservation{
		ClientID: req.ClientID,
		Plate:    req.VehiclePlate,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) logEvent(op string, res model.Reservation) {
	if h.events == nil {
		return
	}
	if err := h.events.Booking(op, res); err != nil {
		h.log.Warn("event log", zap.String("op", op), zap.Error(err))
	}
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrNoRentalDays),
		errors.Is(err, errs.ErrDataMismatch):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrClientNotFound),
		errors.Is(err, errs.ErrVehicleNotFound),
		errors.Is(err, errs.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVehicleOccupied),
		errors.Is(err, errs.ErrAmbiguousInvoice):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
