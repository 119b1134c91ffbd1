package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/southtrails/tours-api/internal/api/metrics"
	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

// BookingHandler serves self-service bookings and their back-office CRUD.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// ListMine returns the authenticated user's bookings.
//
// @Summary      My bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listBookingsResponse
// @Failure      401    {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListForUser(c.Request().Context(), userID, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBookingsResponse{
		Data: result.Bookings,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Create books a package for the authenticated user. The total is always
// priced server-side from the live package.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), userID, ports.CreateBookingInput{
		PackageID:       req.PackageID,
		Passengers:      toPassengers(req.Passengers),
		TravelDate:      req.TravelDate,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return err
	}
	metrics.BookingsCreatedTotal.WithLabelValues("self_service").Inc()

	return c.JSON(http.StatusCreated, bookingResponse{Booking: booking})
}

// AdminList returns a page of all bookings, optionally filtered by status.
//
// @Summary      List bookings (back office)
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Param        status  query     string  false  "Status filter"
// @Success      200     {object}  listBookingsResponse
// @Failure      403     {object}  errorResponse
// @Router       /admin/bookings [get]
func (h *BookingHandler) AdminList(c echo.Context) error {
	status := domain.BookingStatus(c.QueryParam("status"))

	result, err := h.service.AdminList(c.Request().Context(), status, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBookingsResponse{
		Data: result.Bookings,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// AdminGet returns a single booking by id.
//
// @Summary      Get a booking (back office)
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/bookings/{id} [get]
func (h *BookingHandler) AdminGet(c echo.Context) error {
	booking, err := h.service.AdminGet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Booking: booking})
}

// AdminCreate records a booking on behalf of any user, e.g. one taken over
// the phone.
//
// @Summary      Create a booking (back office)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adminCreateBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/bookings [post]
func (h *BookingHandler) AdminCreate(c echo.Context) error {
	var req adminCreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.AdminCreate(c.Request().Context(), &domain.Booking{
		UserID:          req.UserID,
		PackageID:       req.PackageID,
		Passengers:      toPassengers(req.Passengers),
		TotalAmount:     req.TotalAmount,
		Status:          domain.BookingStatus(req.Status),
		PaymentStatus:   domain.PaymentStatus(req.PaymentStatus),
		TravelDate:      req.TravelDate,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return err
	}
	metrics.BookingsCreatedTotal.WithLabelValues("back_office").Inc()

	return c.JSON(http.StatusCreated, bookingResponse{Booking: booking})
}

// AdminUpdate applies a partial update, enforcing the status state machine.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Booking id"
// @Param        body  body      adminUpdateBookingRequest  true  "Fields to update"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/bookings/{id} [put]
func (h *BookingHandler) AdminUpdate(c echo.Context) error {
	var req adminUpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.AdminUpdateBookingInput{
		TravelDate:      req.TravelDate,
		SpecialRequests: req.SpecialRequests,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		input.Status = &status
	}
	if req.PaymentStatus != nil {
		payment := domain.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &payment
	}

	booking, err := h.service.AdminUpdate(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Booking: booking})
}

// AdminDelete removes a booking outright.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/bookings/{id} [delete]
func (h *BookingHandler) AdminDelete(c echo.Context) error {
	if err := h.service.AdminDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "booking deleted"})
}
