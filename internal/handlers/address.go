package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
)

type AddressHandler struct {
	Addresses *service.AddressService
}

func (h *AddressHandler) List(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	list, err := h.Addresses.List(c.Request().Context(), p.ID)
	if err != nil {
		return fail(c, "address.list", "list_addresses_error", err, "")
	}
	if list == nil {
		list = []models.Address{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AddressHandler) Create(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req transport.AddressRequest
	if err := bind(c, "address.create", &req); err != nil {
		return err
	}

	a, err := h.Addresses.Create(c.Request().Context(), p.ID, req)
	if err != nil {
		return fail(c, "address.create", "create_address_error", err, "Failed to create address")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AddressHandler) Update(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req transport.PatchAddressRequest
	if err := bind(c, "address.update", &req); err != nil {
		return err
	}

	a, err := h.Addresses.Update(c.Request().Context(), c.Param("id"), p.ID, req)
	if err != nil {
		return fail(c, "address.update", "update_address_error", err, "")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.Addresses.Delete(c.Request().Context(), c.Param("id"), p.ID); err != nil {
		return fail(c, "address.delete", "delete_address_error", err, "")
	}
	return message(c, "Address deleted successfully")
}

func (h *AddressHandler) SetPrimary(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.Addresses.SetPrimary(c.Request().Context(), c.Param("id"), p.ID); err != nil {
		return fail(c, "address.set_primary", "set_primary_error", err, "")
	}
	return message(c, "Primary address updated successfully")
}
