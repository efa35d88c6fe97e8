package ports

import (
	"context"

	"ecommerce-api-client/internal/clients/supplier"
	"ecommerce-api-client/internal/features/orders/domain"
)

// OrderService defines the primary port for relaying orders.
type OrderService interface {
	// PlaceOrder validates and relays an order to the supplier, returning the
	// supplier response and the recorded submission.
	PlaceOrder(ctx context.Context, order supplier.CreateOrderRequest) (*supplier.CreateOrderResponse, *domain.Submission, error)
	// RecentActivity returns the logged submissions with their summed total.
	RecentActivity(ctx context.Context) (*domain.ActivitySummary, error)
}

// OrderPlacer defines the secondary port for creating orders upstream.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, order supplier.CreateOrderRequest) (*supplier.CreateOrderResponse, error)
}

// SubmissionLog defines the secondary port for persisting accepted submissions.
type SubmissionLog interface {
	// Record appends a submission to the log.
	Record(ctx context.Context, submission *domain.Submission) error
	// Recent returns the logged submissions, newest first.
	Recent(ctx context.Context) ([]domain.Submission, error)
}
