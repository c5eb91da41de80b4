package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/internal/util"
)

type ReviewHandler struct {
	Reviews *service.ReviewService
}

func (h *ReviewHandler) Create(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req transport.CreateReviewRequest
	if err := bind(c, "review.create", &req); err != nil {
		return err
	}

	rv, err := h.Reviews.Create(c.Request().Context(), p, req)
	if err != nil {
		return fail(c, "review.create", "create_review_error", err, "Failed to create review")
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) ProductReviews(c echo.Context) error {
	skip := util.ParseIntDefault(c.QueryParam("skip"), 0)
	limit := util.ParseIntDefault(c.QueryParam("limit"), 0)

	list, err := h.Reviews.ListForProduct(c.Request().Context(), c.Param("id"), skip, limit)
	if err != nil {
		return fail(c, "review.list_product", "list_product_reviews_error", err, "")
	}
	if list.Reviews == nil {
		list.Reviews = []models.Review{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) ProductRating(c echo.Context) error {
	r, err := h.Reviews.Rating(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, "review.rating", "product_rating_error", err, "")
	}
	return c.JSON(http.StatusOK, r)
}

func (h *ReviewHandler) UserReviews(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	list, err := h.Reviews.ListByUser(c.Request().Context(), p.ID)
	if err != nil {
		return fail(c, "review.list_user", "list_user_reviews_error", err, "")
	}
	if list == nil {
		list = []models.Review{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) Reviewable(c echo.Context) error {
	p, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	resp, err := h.Reviews.Reviewable(c.Request().Context(), c.Param("id"), p.ID)
	if err != nil {
		return fail(c, "review.reviewable", "reviewable_products_error", err, "")
	}
	return c.JSON(http.StatusOK, resp)
}
