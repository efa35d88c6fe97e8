package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptySubmission is returned when an order carries no product lines.
	ErrEmptySubmission = errors.New("order has no products")
	// ErrInvalidAmount is returned when a product line carries a negative unit price.
	ErrInvalidAmount = errors.New("unit price must not be negative")
)

// Submission is the record of one order accepted by the supplier.
type Submission struct {
	// ID is the unique identifier assigned to this submission.
	ID string `json:"id"`
	// OrderID is the order number assigned by the supplier.
	OrderID uint64 `json:"order_id"`
	// Reference is the merchant reference echoed back by the supplier.
	Reference string `json:"reference,omitempty"`
	// GrossTotal is the supplier-reported order total, kept as decimal text.
	GrossTotal string `json:"gross_total"`
	// ProductCount is the number of fulfilled order lines.
	ProductCount int `json:"product_count"`
	// SubmittedAt is when the supplier accepted the order.
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewSubmission creates a Submission for a supplier-accepted order.
func NewSubmission(orderID uint64, reference, grossTotal string, productCount int) *Submission {
	return &Submission{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		Reference:    reference,
		GrossTotal:   grossTotal,
		ProductCount: productCount,
		SubmittedAt:  time.Now().UTC(),
	}
}

// ActivitySummary aggregates the recent submissions.
type ActivitySummary struct {
	// Submissions holds the logged submissions, newest first.
	Submissions []Submission `json:"submissions"`
	// GrossTotal is the exact decimal sum of the submissions' gross totals.
	GrossTotal string `json:"gross_total"`
}
