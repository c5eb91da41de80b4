package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

// ProductHandler serves categories and products, both the public
// storefront reads and the admin writes.
type ProductHandler struct {
	Catalog *service.CatalogService
}

func (h *ProductHandler) categories(c echo.Context, activeOnly bool) error {
	list, err := h.Catalog.ListCategories(c.Request().Context(), activeOnly)
	if err != nil {
		return fail(c, "catalog.list_categories", "list_categories_error", err, "")
	}
	if list == nil {
		list = []models.Category{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ProductHandler) GetCategories(c echo.Context) error { return h.categories(c, true) }

func (h *ProductHandler) AdminGetCategories(c echo.Context) error { return h.categories(c, false) }

func (h *ProductHandler) GetCategory(c echo.Context) error {
	cat, err := h.Catalog.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, "catalog.get_category", "get_category_error", err, "")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *ProductHandler) CreateCategory(c echo.Context) error {
	var req transport.CategoryRequest
	if err := bind(c, "catalog.create_category", &req); err != nil {
		return err
	}
	cat, err := h.Catalog.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return fail(c, "catalog.create_category", "create_category_error", err, "")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *ProductHandler) UpdateCategory(c echo.Context) error {
	var req transport.PatchCategoryRequest
	if err := bind(c, "catalog.update_category", &req); err != nil {
		return err
	}
	cat, err := h.Catalog.UpdateCategory(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, "catalog.update_category", "update_category_error", err, "")
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *ProductHandler) DeleteCategory(c echo.Context) error {
	if err := h.Catalog.DeactivateCategory(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, "catalog.delete_category", "delete_category_error", err, "")
	}
	return message(c, "Category deleted successfully")
}

func (h *ProductHandler) products(c echo.Context, f repo.ProductFilter) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "catalog.list_products")
	f.Category = c.QueryParam("category")
	if raw := c.QueryParam("bestseller"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			l.Warn("list_products_error", "status", 400, "reason", "bad bestseller flag", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "bestseller must be true or false")
		}
		f.Bestseller = &v
	}

	items, err := h.Catalog.ListProducts(c.Request().Context(), f)
	if err != nil {
		return fail(c, "catalog.list_products", "list_products_error", err, "")
	}
	if items == nil {
		items = []models.Product{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	return h.products(c, repo.ProductFilter{ActiveOnly: true})
}

func (h *ProductHandler) AdminGetProducts(c echo.Context) error {
	return h.products(c, repo.ProductFilter{})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	p, err := h.Catalog.Product(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return fail(c, "catalog.get_product", "get_product_error", err, "")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req transport.ProductRequest
	if err := bind(c, "catalog.create_product", &req); err != nil {
		return err
	}
	p, err := h.Catalog.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return fail(c, "catalog.create_product", "create_product_error", err, "")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	var req transport.PatchProductRequest
	if err := bind(c, "catalog.patch_product", &req); err != nil {
		return err
	}
	p, err := h.Catalog.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return fail(c, "catalog.patch_product", "patch_product_error", err, "")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.Catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, "catalog.delete_product", "delete_product_error", err, "")
	}
	return message(c, "Product deleted successfully")
}
