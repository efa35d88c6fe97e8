package handler

import (
	"errors"
	"net/http"

	"ecommerce-api-client/internal/clients/supplier"
	"ecommerce-api-client/internal/core/logger"
	"ecommerce-api-client/internal/features/orders/domain"
	"ecommerce-api-client/internal/features/orders/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// OrderHandler handles HTTP requests for relaying orders to the supplier.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// AddressbookPayload carries address fields for an order or a single line.
// A missing country falls back to the supplier default.
type AddressbookPayload struct {
	Country    string  `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Address2   *string `json:"address2"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Comments   *string `json:"comments"`
}

// ProductPayload is one requested order line.
type ProductPayload struct {
	ProductCode *string             `json:"product_code"`
	Quantity    uint32              `json:"quantity"`
	Addressbook *AddressbookPayload `json:"addressbook"`
	UnitPrice   *float64            `json:"unit_price" validate:"omitempty,gte=0"`
	Currency    *string             `json:"currency" validate:"omitempty,len=3"`
}

// PlaceOrderRequest represents the request body for relaying an order.
type PlaceOrderRequest struct {
	CustomerOrderReference *string             `json:"customer_order_reference"`
	Addressbook            *AddressbookPayload `json:"addressbook"`
	OrderProducts          []ProductPayload    `json:"order_products" validate:"required,min=1,dive"`
	CommentsCustomer       *string             `json:"comments_customer"`
}

// PlaceOrderResponse pairs the supplier's response with the submission record.
type PlaceOrderResponse struct {
	SubmissionID  string                  `json:"submission_id"`
	Order         supplier.Order          `json:"order"`
	OrderProducts []supplier.OrderProduct `json:"order_products"`
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
	// Retryable hints whether retrying the same request may succeed.
	Retryable bool `json:"retryable"`
}

// PlaceOrder handles POST /api/orders.
// @Summary Relay an order to the supplier
// @Description Validates the order, forwards it to the supplier API, and records the accepted submission.
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body PlaceOrderRequest true "Order details"
// @Success 201 {object} PlaceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	rayID := requestRayID(c)

	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid order: " + err.Error(),
			RayID:   rayID,
		})
	}

	response, submission, err := h.service.PlaceOrder(c.Context(), toSupplierOrder(req))
	if err != nil {
		return h.renderOrderError(c, rayID, err)
	}

	return c.Status(http.StatusCreated).JSON(PlaceOrderResponse{
		SubmissionID:  submission.ID,
		Order:         response.Order,
		OrderProducts: response.OrderProducts,
	})
}

// RecentActivity handles GET /api/orders/recent.
// @Summary List recently relayed orders
// @Description Returns the logged submissions, newest first, with their summed gross total.
// @Tags Orders
// @Produce json
// @Success 200 {object} domain.ActivitySummary
// @Failure 500 {object} ErrorResponse
// @Router /api/orders/recent [get]
func (h *OrderHandler) RecentActivity(c *fiber.Ctx) error {
	summary, err := h.service.RecentActivity(c.Context())
	if err != nil {
		rayID := requestRayID(c)
		logger.Get().Error("Failed to read recent activity",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(summary)
}

// renderOrderError translates service failures into HTTP responses. Statuses
// the supplier reported pass through; transport failures become a 502 so the
// caller can tell the gateway from the supplier.
func (h *OrderHandler) renderOrderError(c *fiber.Ctx, rayID string, err error) error {
	if errors.Is(err, domain.ErrEmptySubmission) || errors.Is(err, domain.ErrInvalidAmount) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	var apiErr *supplier.Error
	if errors.As(err, &apiErr) {
		logger.Get().Error("Supplier rejected order",
			zap.String("kind", string(apiErr.Kind)),
			zap.String("ray_id", rayID),
			zap.Error(apiErr),
		)

		status := http.StatusBadGateway
		if code, ok := apiErr.StatusCode(); ok {
			status = code
		} else if apiErr.Kind == supplier.ErrorKindInvalidURL || apiErr.Kind == supplier.ErrorKindInvalidCredentials {
			status = http.StatusInternalServerError
		}

		return c.Status(status).JSON(ErrorResponse{
			Message:   apiErr.Error(),
			RayID:     rayID,
			Retryable: apiErr.Retryable(),
		})
	}

	logger.Get().Error("Failed to place order",
		zap.String("ray_id", rayID),
		zap.Error(err),
	)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal Server Error",
		RayID:   rayID,
	})
}

// toSupplierOrder maps the inbound payload onto the supplier request types.
func toSupplierOrder(req PlaceOrderRequest) supplier.CreateOrderRequest {
	order := supplier.CreateOrderRequest{
		CustomerOrderReference: req.CustomerOrderReference,
		Addressbook:            toSupplierAddressbook(req.Addressbook),
		OrderProducts:          make([]supplier.CreateOrderProduct, 0, len(req.OrderProducts)),
		CommentsCustomer:       req.CommentsCustomer,
	}

	for _, line := range req.OrderProducts {
		product := supplier.CreateOrderProduct{
			Quantity:    line.Quantity,
			Addressbook: toSupplierAddressbook(line.Addressbook),
			UnitPrice:   line.UnitPrice,
			Currency:    line.Currency,
		}
		if line.ProductCode != nil {
			code := supplier.ProductCode(*line.ProductCode)
			product.ProductCode = &code
		}
		order.OrderProducts = append(order.OrderProducts, product)
	}

	return order
}

func toSupplierAddressbook(payload *AddressbookPayload) *supplier.Addressbook {
	if payload == nil {
		return nil
	}

	book := supplier.NewAddressbook()
	if payload.Country != "" {
		book.Country = payload.Country
	}
	book.Name = payload.Name
	book.Address = payload.Address
	book.Address2 = payload.Address2
	book.City = payload.City
	book.Province = payload.Province
	book.PostalCode = payload.PostalCode
	book.Phone = payload.Phone
	book.Email = payload.Email
	book.Comments = payload.Comments

	return &book
}

func requestRayID(c *fiber.Ctx) string {
	if rayID, ok := c.Locals("requestid").(string); ok {
		return rayID
	}
	return "unknown"
}
