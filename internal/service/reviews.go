package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/repo"
	"github.com/dheerghayush/naturals/internal/transport"
	"github.com/dheerghayush/naturals/pkg/logging"
)

const (
	minRating          = 1
	maxRating          = 5
	defaultReviewLimit = 10
	maxReviewLimit     = 100
)

type reviewStore interface {
	ReviewStore
	OrderForUser(ctx context.Context, id, userID string) (*models.Order, error)
}

type ReviewService struct {
	Store reviewStore
	Now   Clock
}

func (s *ReviewService) Create(ctx context.Context, p *Principal, req transport.CreateReviewRequest) (*models.Review, error) {
	o, err := s.Store.OrderForUser(ctx, req.OrderID, p.ID)
	if err != nil {
		return nil, notFoundOrder(err)
	}
	if o.OrderStatus != models.StatusDelivered {
		return nil, newErr(ErrValidation, "Can only review delivered orders")
	}
	if !o.HasItem(req.ProductID) {
		return nil, newErr(ErrValidation, "Product not found in this order")
	}
	exists, err := s.Store.ReviewExists(ctx, p.ID, req.ProductID, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("lookup review: %w", err)
	}
	if exists {
		return nil, newErr(ErrConflict, "You have already reviewed this product for this order")
	}
	if req.Rating < minRating || req.Rating > maxRating {
		return nil, newErr(ErrValidation, "Rating must be between 1 and 5")
	}

	rv := &models.Review{
		ID:                 uuid.NewString(),
		ProductID:          req.ProductID,
		UserID:             p.ID,
		OrderID:            req.OrderID,
		UserName:           p.Name,
		Rating:             req.Rating,
		ReviewText:         req.ReviewText,
		IsVerifiedPurchase: true,
		CreatedAt:          s.Now.now(),
	}
	if err := s.Store.CreateReview(ctx, rv); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, newErr(ErrConflict, "You have already reviewed this product for this order")
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	logging.FromContext(ctx).Info("review_created", "product_id", rv.ProductID, "user_id", p.ID)
	return rv, nil
}

func (s *ReviewService) ListForProduct(ctx context.Context, productID string, skip, limit int) (*transport.ReviewList, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}
	total, list, err := s.Store.ListReviewsForProduct(ctx, productID, skip, limit)
	if err != nil {
		return nil, err
	}
	return &transport.ReviewList{Reviews: list, Total: total}, nil
}

// Rating aggregates every review of productID. The mean is rounded to one
// decimal, halves away from zero.
func (s *ReviewService) Rating(ctx context.Context, productID string) (*transport.ProductRating, error) {
	ratings, err := s.Store.ProductRatings(ctx, productID)
	if err != nil {
		return nil, err
	}
	return AggregateRatings(productID, ratings), nil
}

func AggregateRatings(productID string, ratings []int) *transport.ProductRating {
	dist := make(map[string]int, maxRating)
	for r := minRating; r <= maxRating; r++ {
		dist[strconv.Itoa(r)] = 0
	}
	out := &transport.ProductRating{ProductID: productID, RatingDistribution: dist}
	if len(ratings) == 0 {
		return out
	}

	sum := 0
	for _, r := range ratings {
		sum += r
		if r >= minRating && r <= maxRating {
			dist[strconv.Itoa(r)]++
		}
	}
	out.TotalReviews = len(ratings)
	out.AverageRating = decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(ratings)))).
		Round(1).
		InexactFloat64()
	return out
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.Store.ListReviewsByUser(ctx, userID)
}

func (s *ReviewService) Reviewable(ctx context.Context, orderID, userID string) (*transport.ReviewableProducts, error) {
	o, err := s.Store.OrderForUser(ctx, orderID, userID)
	if err != nil {
		return nil, notFoundOrder(err)
	}
	if o.OrderStatus != models.StatusDelivered {
		return &transport.ReviewableProducts{Products: []transport.ReviewableProduct{}, Message: "Order not yet delivered"}, nil
	}
	ids, err := s.Store.ReviewedProductIDs(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	reviewed := make(map[string]bool, len(ids))
	for _, id := range ids {
		reviewed[id] = true
	}
	out := &transport.ReviewableProducts{Products: make([]transport.ReviewableProduct, 0, len(o.Items))}
	for _, it := range o.Items {
		out.Products = append(out.Products, transport.ReviewableProduct{OrderItem: it, Reviewed: reviewed[it.ID]})
	}
	return out, nil
}
