package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dheerghayush/naturals/internal/models"
	"github.com/dheerghayush/naturals/internal/transport"
)

type dashboardStore interface {
	CountOrders(ctx context.Context, status string) (int64, error)
	PaidRevenue(ctx context.Context) (float64, error)
	CountProducts(ctx context.Context, activeOnly bool) (int64, error)
	CountCategories(ctx context.Context, activeOnly bool) (int64, error)
}

type DashboardService struct {
	Store dashboardStore
}

func (s *DashboardService) Stats(ctx context.Context) (*transport.DashboardStats, error) {
	var (
		st  transport.DashboardStats
		err error
	)
	if st.TotalOrders, err = s.Store.CountOrders(ctx, ""); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if st.PendingOrders, err = s.Store.CountOrders(ctx, models.StatusPending); err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}
	if st.DeliveredOrders, err = s.Store.CountOrders(ctx, models.StatusDelivered); err != nil {
		return nil, fmt.Errorf("count delivered orders: %w", err)
	}
	revenue, err := s.Store.PaidRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("paid revenue: %w", err)
	}
	st.TotalRevenue = decimal.NewFromFloat(revenue).Round(2).InexactFloat64()
	if st.TotalProducts, err = s.Store.CountProducts(ctx, true); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if st.TotalCategories, err = s.Store.CountCategories(ctx, true); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return &st, nil
}
