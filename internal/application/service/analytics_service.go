package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sangkips/shopadmin-api/internal/domain/analytics"
	"github.com/sangkips/shopadmin-api/internal/domain/repository"
)

// AnalyticsService builds the order analytics dashboard
type AnalyticsService struct {
	orderRepo repository.OrderRepository
	location  *time.Location
}

// NewAnalyticsService creates a new analytics service. Orders are bucketed
// into calendar days in loc.
func NewAnalyticsService(orderRepo repository.OrderRepository, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{orderRepo: orderRepo, location: loc}
}

// GetAnalytics loads every order and aggregates it. The result is computed
// fresh on each call.
func (s *AnalyticsService) GetAnalytics(ctx context.Context) (*analytics.Result, error) {
	start := time.Now()

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders for analytics: %w", err)
	}

	result := analytics.Compute(orders, s.location)

	log.Printf("Analytics computed over %d orders in %v", result.TotalOrders, time.Since(start))
	return &result, nil
}
