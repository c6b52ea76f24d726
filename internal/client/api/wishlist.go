package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// WishlistPage is one page of a user's favorites.
type WishlistPage struct {
	Wishlist   []models.WishlistEntry `json:"wishlist"`
	Pagination models.Pagination      `json:"pagination"`
}

// WishlistStatus is the favorite state of one (user, item) pair.
type WishlistStatus struct {
	IsFavorited  bool                  `json:"is_favorited"`
	WishlistInfo *models.WishlistEntry `json:"wishlist_info,omitempty"`
}

// AddToWishlist favorites an item and returns the wishlist entry id.
func (c *Client) AddToWishlist(ctx context.Context, params models.WishlistParams) (int64, error) {
	var result struct {
		WishlistID int64 `json:"wishlist_id"`
	}
	if err := c.post(ctx, "/wishlist", params, &result); err != nil {
		return 0, err
	}
	return result.WishlistID, nil
}

// ListWishlist fetches a page of the user's favorites.
func (c *Client) ListWishlist(ctx context.Context, userID int64, page, limit int) (*WishlistPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result WishlistPage
	if err := c.get(ctx, fmt.Sprintf("/wishlist/%d", userID), query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveFromWishlist unfavorites one item.
func (c *Client) RemoveFromWishlist(ctx context.Context, userID, itemID int64) error {
	body := map[string]any{"user_id": userID, "item_id": itemID}
	return c.delete(ctx, "/wishlist", body, nil)
}

// CheckWishlistStatus reports whether the user favorited the item.
func (c *Client) CheckWishlistStatus(ctx context.Context, userID, itemID int64) (*WishlistStatus, error) {
	query := url.Values{
		"user_id": {strconv.FormatInt(userID, 10)},
		"item_id": {strconv.FormatInt(itemID, 10)},
	}
	var status WishlistStatus
	if err := c.get(ctx, "/wishlist/check", query, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// BatchRemoveFromWishlist unfavorites several items at once and returns
// how many were removed.
func (c *Client) BatchRemoveFromWishlist(ctx context.Context, userID int64, itemIDs []int64) (int, error) {
	body := map[string]any{"user_id": userID, "item_ids": itemIDs}
	var result struct {
		RemovedCount int `json:"removed_count"`
	}
	if err := c.delete(ctx, "/wishlist/batch", body, &result); err != nil {
		return 0, err
	}
	return result.RemovedCount, nil
}

// UpdateWishlistNotes rewrites the note on one favorite.
func (c *Client) UpdateWishlistNotes(ctx context.Context, wishlistID, userID int64, notes string) error {
	body := map[string]any{"user_id": userID, "notes": notes}
	return c.put(ctx, fmt.Sprintf("/wishlist/%d/notes", wishlistID), body, nil)
}

// WishlistStatistics summarises the user's favorites.
func (c *Client) WishlistStatistics(ctx context.Context, userID int64) (*models.WishlistStatistics, error) {
	var stats models.WishlistStatistics
	if err := c.get(ctx, fmt.Sprintf("/wishlist/statistics/%d", userID), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ItemWishlistCount returns how many users favorited the item.
func (c *Client) ItemWishlistCount(ctx context.Context, itemID int64) (int, error) {
	var envelope struct {
		WishlistCount int `json:"wishlist_count"`
	}
	if err := c.get(ctx, fmt.Sprintf("/wishlist/item/%d/count", itemID), nil, &envelope); err != nil {
		return 0, err
	}
	return envelope.WishlistCount, nil
}
