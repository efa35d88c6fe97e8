package service

import (
	"context"
	"fmt"

	"ecommerce-api-client/internal/clients/supplier"
	"ecommerce-api-client/internal/core/logger"
	"ecommerce-api-client/internal/features/orders/domain"
	"ecommerce-api-client/internal/features/orders/ports"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderServiceImpl implements ports.OrderService. It relays orders to the
// supplier and keeps a rolling log of accepted submissions.
type OrderServiceImpl struct {
	placer ports.OrderPlacer
	log    ports.SubmissionLog
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(placer ports.OrderPlacer, log ports.SubmissionLog) *OrderServiceImpl {
	return &OrderServiceImpl{
		placer: placer,
		log:    log,
	}
}

// PlaceOrder validates the order, relays it to the supplier, and records the
// accepted submission. Product lines with a zero quantity are bumped to one
// unit before sending.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, order supplier.CreateOrderRequest) (*supplier.CreateOrderResponse, *domain.Submission, error) {
	if len(order.OrderProducts) == 0 {
		return nil, nil, domain.ErrEmptySubmission
	}

	// The quantity default is applied to a copy so it never writes through
	// to the caller's slice.
	products := make([]supplier.CreateOrderProduct, len(order.OrderProducts))
	copy(products, order.OrderProducts)
	for i := range products {
		product := &products[i]
		if product.UnitPrice != nil && *product.UnitPrice < 0 {
			return nil, nil, domain.ErrInvalidAmount
		}
		if product.Quantity == 0 {
			product.Quantity = 1
		}
	}
	order.OrderProducts = products

	response, err := s.placer.CreateOrder(ctx, order)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to relay order: %w", err)
	}

	submission := domain.NewSubmission(
		response.Order.ID,
		response.Order.CustomerOrderReference,
		response.Order.GrossTotal,
		len(response.OrderProducts),
	)

	// A log write failure must not fail an order the supplier already accepted.
	if err := s.log.Record(ctx, submission); err != nil {
		logger.Get().Warn("Failed to record submission",
			zap.String("submission_id", submission.ID),
			zap.Uint64("order_id", submission.OrderID),
			zap.Error(err),
		)
	}

	return response, submission, nil
}

// RecentActivity returns the logged submissions together with their summed
// gross total. Entries whose total does not parse are left out of the sum.
func (s *OrderServiceImpl) RecentActivity(ctx context.Context) (*domain.ActivitySummary, error) {
	submissions, err := s.log.Recent(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read submission log: %w", err)
	}

	total := decimal.Zero
	for _, submission := range submissions {
		amount, err := decimal.NewFromString(submission.GrossTotal)
		if err != nil {
			logger.Get().Warn("Skipping submission with unparseable total",
				zap.String("submission_id", submission.ID),
				zap.String("gross_total", submission.GrossTotal),
			)
			continue
		}
		total = total.Add(amount)
	}

	return &domain.ActivitySummary{
		Submissions: submissions,
		GrossTotal:  total.String(),
	}, nil
}
