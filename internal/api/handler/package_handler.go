package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

// PackageHandler serves the public tour catalogue and its back-office CRUD.
type PackageHandler struct {
	service ports.PackageService
}

func NewPackageHandler(service ports.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

// List returns a filtered page of active packages.
//
// @Summary      Browse the catalogue
// @Tags         packages
// @Produce      json
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Param        region     query     string  false  "Region filter"
// @Param        min_price  query     number  false  "Minimum price per pax"
// @Param        max_price  query     number  false  "Maximum price per pax"
// @Param        pax        query     int     false  "Group size the package must accept"
// @Param        search     query     string  false  "Free-text search"
// @Success      200        {object}  listPackagesResponse
// @Router       /packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	filter := ports.PackageFilter{
		Region:   domain.Region(c.QueryParam("region")),
		MinPrice: queryFloat(c, "min_price", 0),
		MaxPrice: queryFloat(c, "max_price", 0),
		MinPax:   queryInt(c, "pax", 0),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}

	result, err := h.service.List(c.Request().Context(), filter, queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listPackagesResponse{
		Data: result.Packages,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Featured returns the featured packages for the home page.
//
// @Summary      Featured packages
// @Tags         packages
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of packages"
// @Success      200    {object}  packagesResponse
// @Router       /packages/featured [get]
func (h *PackageHandler) Featured(c echo.Context) error {
	pkgs, err := h.service.Featured(c.Request().Context(), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packagesResponse{Data: pkgs})
}

// ByRegion returns active packages for one region.
//
// @Summary      Packages by region
// @Tags         packages
// @Produce      json
// @Param        region  path      string  true   "Region"
// @Param        limit   query     int     false  "Maximum number of packages"
// @Success      200     {object}  packagesResponse
// @Router       /packages/region/{region} [get]
func (h *PackageHandler) ByRegion(c echo.Context) error {
	pkgs, err := h.service.ByRegion(c.Request().Context(), domain.Region(c.Param("region")), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packagesResponse{Data: pkgs})
}

// BySlug returns a single active package and bumps its view counter.
//
// @Summary      Package detail
// @Tags         packages
// @Produce      json
// @Param        slug  path      string  true  "Package slug"
// @Success      200   {object}  packageResponse
// @Failure      404   {object}  errorResponse
// @Router       /packages/{slug} [get]
func (h *PackageHandler) BySlug(c echo.Context) error {
	pkg, err := h.service.BySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packageResponse{Package: pkg})
}

// AdminList returns a page of all packages, active or not.
//
// @Summary      List packages (back office)
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listPackagesResponse
// @Failure      403    {object}  errorResponse
// @Router       /admin/packages [get]
func (h *PackageHandler) AdminList(c echo.Context) error {
	result, err := h.service.AdminList(c.Request().Context(), queryInt(c, "page", 1), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPackagesResponse{
		Data: result.Packages,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// AdminGet returns a single package by id regardless of active state.
//
// @Summary      Get a package (back office)
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Package id"
// @Success      200  {object}  packageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/packages/{id} [get]
func (h *PackageHandler) AdminGet(c echo.Context) error {
	pkg, err := h.service.AdminGet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packageResponse{Package: pkg})
}

// Create adds a new package to the catalogue.
//
// @Summary      Create a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      packageRequest  true  "Package details"
// @Success      201   {object}  packageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/packages [post]
func (h *PackageHandler) Create(c echo.Context) error {
	var req packageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, packageResponse{Package: pkg})
}

// Update replaces a package's editable fields.
//
// @Summary      Update a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Package id"
// @Param        body  body      packageRequest  true  "Package details"
// @Success      200   {object}  packageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/packages/{id} [put]
func (h *PackageHandler) Update(c echo.Context) error {
	var req packageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packageResponse{Package: pkg})
}

// Delete removes a package.
//
// @Summary      Delete a package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Package id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/packages/{id} [delete]
func (h *PackageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "package deleted"})
}
