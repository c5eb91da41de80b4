package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
)

type BannerHandler struct {
	Banners *service.BannerService
}

func (h *BannerHandler) list(c echo.Context, activeOnly bool) error {
	list, err := h.Banners.List(c.Request().Context(), activeOnly)
	if err != nil {
		return fail(c, "banner.list", "list_banners_error", err, "")
	}
	if list == nil {
		list = []models.Banner{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *BannerHandler) GetBanners(c echo.Context) error { return h.list(c, true) }

func (h *BannerHandler) AdminGetBanners(c echo.Context) error { return h.list(c, false) }

func (h *BannerHandler) Create(c echo.Context) error {
	var req transport.BannerRequest
	if err := bind(c, "banner.create", &req); err != nil {
		return err
	}
	b, err := h.Banners.Create(c.Request().Context(), req)
	if err != nil {
		return fail(c, "banner.create", "create_banner_error", err, "")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BannerHandler) Update(c echo.Context) error {
	var req transport.PatchBannerRequest
	if err := bind(c, "banner.update", &req); err != nil {
		return err
	}
	b, err := h.Banners.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, "banner.update", "update_banner_error", err, "")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BannerHandler) Delete(c echo.Context) error {
	if err := h.Banners.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, "banner.delete", "delete_banner_error", err, "")
	}
	return message(c, "Banner deleted successfully")
}
