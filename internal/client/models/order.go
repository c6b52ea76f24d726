package models

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentMethod names how the buyer pays.
type PaymentMethod string

const (
	PayAlipay PaymentMethod = "alipay"
	PayWechat PaymentMethod = "wechat"
	PayCash   PaymentMethod = "cash"
)

// PaymentStatus tracks money movement independently of OrderStatus.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// DeliveryMethod names how the item changes hands.
type DeliveryMethod string

const (
	DeliveryPickup  DeliveryMethod = "pickup"
	DeliveryExpress DeliveryMethod = "express"
)

// Order is a purchase record. The *_username and item fields are filled by
// the API on joined queries.
type Order struct {
	OrderID        int64          `json:"order_id"`
	OrderNumber    string         `json:"order_number"`
	BuyerID        int64          `json:"buyer_id"`
	SellerID       int64          `json:"seller_id"`
	ItemID         int64          `json:"item_id"`
	AddressID      *int64         `json:"address_id,omitempty"`
	OrderStatus    OrderStatus    `json:"order_status"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	TotalAmount    float64        `json:"total_amount"`
	Remarks        string         `json:"remarks,omitempty"`
	OrderDate      string         `json:"order_date,omitempty"`
	PaymentDate    *string        `json:"payment_date,omitempty"`
	DeliveryDate   *string        `json:"delivery_date,omitempty"`
	CompletionDate *string        `json:"completion_date,omitempty"`
	ItemTitle      string         `json:"item_title,omitempty"`
	ItemImages     []string       `json:"item_images,omitempty"`
	BuyerUsername  string         `json:"buyer_username,omitempty"`
	SellerUsername string         `json:"seller_username,omitempty"`
}

// CreateOrderParams is the payload for placing an order.
type CreateOrderParams struct {
	BuyerID        int64          `json:"buyer_id"`
	ItemID         int64          `json:"item_id"`
	AddressID      *int64         `json:"address_id,omitempty"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	Remarks        string         `json:"remarks,omitempty"`
}

// OrderRoleStats aggregates orders for one side of the trade.
type OrderRoleStats struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	CompletedOrders int     `json:"completed_orders"`
	CancelledOrders int     `json:"cancelled_orders"`
	TotalSpent      float64 `json:"total_spent,omitempty"`
	TotalEarned     float64 `json:"total_earned,omitempty"`
}

// OrderStatistics is the per-user order summary, split by role.
type OrderStatistics struct {
	BuyerStats  OrderRoleStats `json:"buyer_stats"`
	SellerStats OrderRoleStats `json:"seller_stats"`
}
