package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// AddAddress creates a delivery address and returns its id.
func (c *Client) AddAddress(ctx context.Context, params models.AddressParams) (int64, error) {
	var result struct {
		AddressID int64 `json:"address_id"`
	}
	if err := c.post(ctx, "/addresses", params, &result); err != nil {
		return 0, err
	}
	return result.AddressID, nil
}

// ListUserAddresses fetches the user's address book.
func (c *Client) ListUserAddresses(ctx context.Context, userID int64) ([]models.Address, error) {
	var envelope struct {
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.get(ctx, fmt.Sprintf("/addresses/user/%d", userID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Addresses, nil
}

// GetAddress fetches one address.
func (c *Client) GetAddress(ctx context.Context, addressID int64) (*models.Address, error) {
	var envelope struct {
		Address *models.Address `json:"address"`
	}
	if err := c.get(ctx, fmt.Sprintf("/addresses/%d", addressID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Address, nil
}

// UpdateAddress rewrites an address. params.UserID must be the owner.
func (c *Client) UpdateAddress(ctx context.Context, addressID int64, params models.AddressParams) error {
	return c.put(ctx, fmt.Sprintf("/addresses/%d", addressID), params, nil)
}

// DeleteAddress removes an address.
func (c *Client) DeleteAddress(ctx context.Context, addressID, userID int64) error {
	body := map[string]any{"user_id": userID}
	return c.delete(ctx, fmt.Sprintf("/addresses/%d", addressID), body, nil)
}

// SetDefaultAddress marks one address as the user's default.
func (c *Client) SetDefaultAddress(ctx context.Context, addressID, userID int64) error {
	body := map[string]any{"user_id": userID}
	return c.put(ctx, fmt.Sprintf("/addresses/%d/default", addressID), body, nil)
}

// SearchAddresses finds the user's addresses matching a keyword.
func (c *Client) SearchAddresses(ctx context.Context, userID int64, keyword string) ([]models.Address, error) {
	query := url.Values{
		"user_id": {strconv.FormatInt(userID, 10)},
		"keyword": {keyword},
	}
	var envelope struct {
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.get(ctx, "/addresses/search", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Addresses, nil
}

// GetDefaultAddress fetches the user's default address, or nil when none
// is set.
func (c *Client) GetDefaultAddress(ctx context.Context, userID int64) (*models.Address, error) {
	var envelope struct {
		Address *models.Address `json:"address"`
	}
	if err := c.get(ctx, fmt.Sprintf("/addresses/default/%d", userID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Address, nil
}

// AddressStatistics summarises the user's address book.
func (c *Client) AddressStatistics(ctx context.Context, userID int64) (*models.AddressStatistics, error) {
	var stats models.AddressStatistics
	if err := c.get(ctx, fmt.Sprintf("/addresses/statistics/%d", userID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
