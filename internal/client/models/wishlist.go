package models

// WishlistEntry is one favorited item, with the listing joined in.
type WishlistEntry struct {
	WishlistID   int64   `json:"wishlist_id"`
	UserID       int64   `json:"user_id"`
	ItemID       int64   `json:"item_id"`
	Notes        string  `json:"notes,omitempty"`
	WishlistDate string  `json:"wishlist_date,omitempty"`
	Item         *Item   `json:"item,omitempty"`
	Title        string  `json:"title,omitempty"`
	Price        float64 `json:"price,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// WishlistParams is the payload for favoriting an item.
type WishlistParams struct {
	UserID int64  `json:"user_id"`
	ItemID int64  `json:"item_id"`
	Notes  string `json:"notes,omitempty"`
}

// WishlistCategoryStat counts favorites per item category.
type WishlistCategoryStat struct {
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
}

// WishlistStatusStat counts favorites per listing status.
type WishlistStatusStat struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// WishlistStatistics summarises a user's favorites.
type WishlistStatistics struct {
	TotalCount    int                    `json:"total_count"`
	CategoryStats []WishlistCategoryStat `json:"category_stats"`
	StatusStats   []WishlistStatusStat   `json:"status_stats"`
}
