package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// ItemPage is one page of listings.
type ItemPage struct {
	Items      []models.Item     `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

// CreateItem publishes a listing and returns its id.
func (c *Client) CreateItem(ctx context.Context, params models.CreateItemParams) (int64, error) {
	var result struct {
		ItemID int64 `json:"item_id"`
	}
	if err := c.post(ctx, "/items/", params, &result); err != nil {
		return 0, err
	}
	return result.ItemID, nil
}

// ListItems browses listings with the given filter.
func (c *Client) ListItems(ctx context.Context, filter models.ItemFilter) (*ItemPage, error) {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.CategoryID > 0 {
		query.Set("category_id", strconv.FormatInt(filter.CategoryID, 10))
	}
	if filter.UserID > 0 {
		query.Set("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.SortBy != "" {
		query.Set("sort_by", filter.SortBy)
	}
	if filter.SortOrder != "" {
		query.Set("sort_order", filter.SortOrder)
	}

	var page ItemPage
	if err := c.get(ctx, "/items/", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchItems runs a keyword search over listings.
func (c *Client) SearchItems(ctx context.Context, search models.ItemSearch) ([]models.Item, error) {
	query := url.Values{"keyword": {search.Keyword}}
	if search.CategoryID > 0 {
		query.Set("category_id", strconv.FormatInt(search.CategoryID, 10))
	}
	if search.MinPrice != nil {
		query.Set("min_price", strconv.FormatFloat(*search.MinPrice, 'f', -1, 64))
	}
	if search.MaxPrice != nil {
		query.Set("max_price", strconv.FormatFloat(*search.MaxPrice, 'f', -1, 64))
	}
	if search.ConditionLevel != "" {
		query.Set("condition_level", string(search.ConditionLevel))
	}
	if search.SortBy != "" {
		query.Set("sort_by", search.SortBy)
	}
	if search.SortOrder != "" {
		query.Set("sort_order", search.SortOrder)
	}

	var envelope struct {
		Items []models.Item `json:"items"`
	}
	if err := c.get(ctx, "/items/search", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// GetItem fetches one listing (the server bumps its view count).
func (c *Client) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	var envelope struct {
		Item *models.Item `json:"item"`
	}
	if err := c.get(ctx, fmt.Sprintf("/items/%d", itemID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Item, nil
}

// UpdateItem applies a partial listing update. userID must be the owner.
func (c *Client) UpdateItem(ctx context.Context, itemID, userID int64, update models.ItemUpdate) error {
	body := struct {
		models.ItemUpdate
		UserID int64 `json:"user_id"`
	}{update, userID}
	return c.put(ctx, fmt.Sprintf("/items/%d", itemID), body, nil)
}

// DeleteItem removes a listing. userID must be the owner.
func (c *Client) DeleteItem(ctx context.Context, itemID, userID int64) error {
	body := map[string]any{"user_id": userID}
	return c.delete(ctx, fmt.Sprintf("/items/%d", itemID), body, nil)
}

// ListCategories fetches the category tree.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var envelope struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.get(ctx, "/items/categories", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Categories, nil
}

// ListUserItems browses one seller's listings.
func (c *Client) ListUserItems(ctx context.Context, userID int64, status models.ItemStatus, page, limit int) (*ItemPage, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result ItemPage
	if err := c.get(ctx, fmt.Sprintf("/items/user/%d", userID), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
