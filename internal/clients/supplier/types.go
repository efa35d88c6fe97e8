package supplier

import "encoding/json"

// defaultCountry is applied when an addressbook is built without one.
const defaultCountry = "US"

// OrderID identifies an order on the supplier side.
// It serializes as a bare JSON string.
type OrderID string

// CustomerOrderReference is the merchant-chosen reference attached to an order.
// It serializes as a bare JSON string.
type CustomerOrderReference string

// ProductCode identifies a product in the supplier catalog.
// It serializes as a bare JSON string.
type ProductCode string

// Addressbook carries postal and contact details for an order or for a
// single order line. Optional fields are omitted from the payload when nil;
// a pointer to an empty string is still sent as "".
type Addressbook struct {
	Country    string  `json:"country"`
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	Address2   *string `json:"address2,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Comments   *string `json:"comments,omitempty"`
}

// NewAddressbook returns an Addressbook with the default country "US" and
// every other field unset.
func NewAddressbook() Addressbook {
	return Addressbook{Country: defaultCountry}
}

// CreateOrderProduct is one line of a create order request.
type CreateOrderProduct struct {
	ProductCode *ProductCode `json:"product_code,omitempty"`
	Quantity    uint32       `json:"quantity"`
	Addressbook *Addressbook `json:"addressbook,omitempty"`
	UnitPrice   *float64     `json:"unit_price,omitempty"`
	Currency    *string      `json:"currency,omitempty"`
}

// NewProduct returns a single-unit order line for the given product code.
func NewProduct(code ProductCode) CreateOrderProduct {
	return CreateOrderProduct{
		ProductCode: &code,
		Quantity:    1,
	}
}

// CreateOrderRequest is the payload for creating an order. Line item order
// is preserved on the wire.
type CreateOrderRequest struct {
	CustomerOrderReference *string              `json:"customer_order_reference,omitempty"`
	Addressbook            *Addressbook         `json:"addressbook,omitempty"`
	OrderProducts          []CreateOrderProduct `json:"order_products"`
	CommentsCustomer       *string              `json:"comments_customer,omitempty"`
}

// NewCreateOrderRequest returns an empty request whose order_products field
// serializes as [] rather than null.
func NewCreateOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		OrderProducts: make([]CreateOrderProduct, 0, 1),
	}
}

// MarshalJSON always emits order_products as an array. A zero-value request
// carries a nil slice, which would otherwise serialize as null.
func (r CreateOrderRequest) MarshalJSON() ([]byte, error) {
	type createOrderRequest CreateOrderRequest
	out := createOrderRequest(r)
	if out.OrderProducts == nil {
		out.OrderProducts = []CreateOrderProduct{}
	}
	return json.Marshal(out)
}

// Order is the order record returned by the supplier. Monetary amounts
// arrive as decimal strings and are kept verbatim, never parsed into floats.
type Order struct {
	ID                     uint64  `json:"id"`
	StatusOrderID          uint64  `json:"status_order_id"`
	CustomerID             uint64  `json:"customer_id"`
	CustomerOrderReference string  `json:"customer_order_reference"`
	GrossTotal             string  `json:"gross_total"`
	AddressbookID          uint64  `json:"addressbook_id"`
	CreatedAt              *string `json:"created_at,omitempty"`
	UpdatedAt              *string `json:"updated_at,omitempty"`
	CommentsCustomer       *string `json:"comments_customer,omitempty"`
	InvoiceNo              *string `json:"invoice_no,omitempty"`
}

// OrderProduct is one fulfilled line of a created order. Quantity and the
// price fields are decimal strings on the wire and stay that way.
type OrderProduct struct {
	ID            uint64  `json:"id"`
	OrderID       uint64  `json:"order_id"`
	ProductID     uint64  `json:"product_id"`
	Quantity      string  `json:"quantity"`
	Price         string  `json:"price"`
	FinalPrice    string  `json:"final_price"`
	AddressbookID *uint64 `json:"addressbook_id,omitempty"`
	CreatedAt     *string `json:"created_at,omitempty"`
	UpdatedAt     *string `json:"updated_at,omitempty"`
}

// CreateOrderResponse is the payload returned on successful order creation.
type CreateOrderResponse struct {
	Order         Order          `json:"order"`
	OrderProducts []OrderProduct `json:"order_products"`
}
