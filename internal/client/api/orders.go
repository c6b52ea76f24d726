package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// CreateOrderResult is the unwrapped payload of a placed order.
type CreateOrderResult struct {
	Message     string `json:"message"`
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// CreateOrder places an order for an item.
func (c *Client) CreateOrder(ctx context.Context, params models.CreateOrderParams) (*CreateOrderResult, error) {
	var result CreateOrderResult
	if err := c.post(ctx, "/orders", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder fetches one order.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	var envelope struct {
		Order *models.Order `json:"order"`
	}
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", orderID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Order, nil
}

// ListUserOrders lists the user's orders. role is "buyer", "seller" or ""
// for both sides.
func (c *Client) ListUserOrders(ctx context.Context, userID int64, role string, status models.OrderStatus) ([]models.Order, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", role)
	}
	if status != "" {
		query.Set("status", string(status))
	}

	var envelope struct {
		Orders []models.Order `json:"orders"`
	}
	if err := c.get(ctx, fmt.Sprintf("/orders/user/%d", userID), query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

// UpdateOrderStatus advances the order through its lifecycle. userID must
// be a party of the order.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, userID int64, status models.OrderStatus) error {
	body := map[string]any{"status": string(status), "user_id": userID}
	return c.put(ctx, fmt.Sprintf("/orders/%d/status", orderID), body, nil)
}

// UpdatePaymentStatus records a payment-state change.
func (c *Client) UpdatePaymentStatus(ctx context.Context, orderID, userID int64, status models.PaymentStatus) error {
	body := map[string]any{"payment_status": string(status), "user_id": userID}
	return c.put(ctx, fmt.Sprintf("/orders/%d/payment", orderID), body, nil)
}

// CancelOrder cancels a pending order and releases the item.
func (c *Client) CancelOrder(ctx context.Context, orderID, userID int64) error {
	body := map[string]any{"user_id": userID}
	return c.put(ctx, fmt.Sprintf("/orders/%d/cancel", orderID), body, nil)
}

// OrderStatistics summarises the user's orders by role.
func (c *Client) OrderStatistics(ctx context.Context, userID int64) (*models.OrderStatistics, error) {
	query := url.Values{"user_id": {strconv.FormatInt(userID, 10)}}
	var stats models.OrderStatistics
	if err := c.get(ctx, "/orders/statistics", query, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
