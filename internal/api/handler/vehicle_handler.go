package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

// VehicleHandler serves the public fleet listing and its back-office CRUD.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// List returns vehicles matching the query filters.
//
// @Summary      Browse the fleet
// @Tags         vehicles
// @Produce      json
// @Param        type       query     string  false  "Vehicle type"
// @Param        seats      query     int     false  "Minimum seating capacity"
// @Param        max_price  query     number  false  "Maximum price per day"
// @Param        available  query     bool    false  "Only available vehicles"
// @Param        search     query     string  false  "Free-text search"
// @Success      200        {object}  listVehiclesResponse
// @Router       /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	filter := ports.VehicleFilter{
		Type:     domain.VehicleType(c.QueryParam("type")),
		MinSeats: queryInt(c, "seats", 0),
		MaxPrice: queryFloat(c, "max_price", 0),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("available"); raw != "" {
		available := raw == "true"
		filter.IsAvailable = &available
	}

	vehicles, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listVehiclesResponse{Data: vehicles})
}

// Get returns a single vehicle.
//
// @Summary      Vehicle detail
// @Tags         vehicles
// @Produce      json
// @Param        id  path      string  true  "Vehicle id"
// @Success      200  {object}  vehicleResponse
// @Failure      404  {object}  errorResponse
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	vehicle, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicleResponse{Vehicle: vehicle})
}

// Create adds a vehicle to the fleet.
//
// @Summary      Create a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleRequest  true  "Vehicle details"
// @Success      201   {object}  vehicleResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Year > maxVehicleYear() {
		return echo.NewHTTPError(http.StatusBadRequest, "year is in the future")
	}

	vehicle, err := h.service.Create(c.Request().Context(), &domain.Vehicle{
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		Type:            domain.VehicleType(req.Type),
		SeatingCapacity: req.SeatingCapacity,
		Features:        req.Features,
		Description:     req.Description,
		Images:          req.Images,
		IsAvailable:     req.IsAvailable,
		BasePricePerDay: req.BasePricePerDay,
		Driver: domain.Driver{
			Name:          req.Driver.Name,
			Mobile:        req.Driver.Mobile,
			Experience:    req.Driver.Experience,
			LicenseNumber: req.Driver.LicenseNumber,
			Description:   req.Driver.Description,
			Image:         req.Driver.Image,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vehicleResponse{Vehicle: vehicle})
}

// Update applies a partial update to a vehicle.
//
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Vehicle id"
// @Param        body  body      updateVehicleRequest  true  "Fields to update"
// @Success      200   {object}  vehicleResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/vehicles/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	var req updateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Year != nil && *req.Year > maxVehicleYear() {
		return echo.NewHTTPError(http.StatusBadRequest, "year is in the future")
	}

	input := ports.VehicleUpdateInput{
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		SeatingCapacity: req.SeatingCapacity,
		Features:        req.Features,
		Description:     req.Description,
		Images:          req.Images,
		IsAvailable:     req.IsAvailable,
		BasePricePerDay: req.BasePricePerDay,
	}
	if req.Type != nil {
		t := domain.VehicleType(*req.Type)
		input.Type = &t
	}
	if req.Driver != nil {
		input.Driver = &ports.DriverUpdate{
			Name:          req.Driver.Name,
			Mobile:        req.Driver.Mobile,
			Experience:    req.Driver.Experience,
			LicenseNumber: req.Driver.LicenseNumber,
			Description:   req.Driver.Description,
			Image:         req.Driver.Image,
		}
	}

	vehicle, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicleResponse{Vehicle: vehicle})
}

// Delete removes a vehicle from the fleet.
//
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Vehicle id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "vehicle deleted"})
}

// ToggleAvailability flips a vehicle's availability flag.
//
// @Summary      Toggle vehicle availability
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Vehicle id"
// @Success      200  {object}  vehicleResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/vehicles/{id}/toggle [patch]
func (h *VehicleHandler) ToggleAvailability(c echo.Context) error {
	vehicle, err := h.service.ToggleAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicleResponse{Vehicle: vehicle})
}
