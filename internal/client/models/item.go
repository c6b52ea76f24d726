package models

// ConditionLevel grades the wear of a secondhand item.
type ConditionLevel string

const (
	ConditionBrandNew   ConditionLevel = "brand_new"
	ConditionLikeNew    ConditionLevel = "like_new"
	ConditionVeryGood   ConditionLevel = "very_good"
	ConditionGood       ConditionLevel = "good"
	ConditionAcceptable ConditionLevel = "acceptable"
)

// ItemStatus is the listing state of an item.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemSold      ItemStatus = "sold"
	ItemDeleted   ItemStatus = "deleted"
)

// Item is a marketplace listing. Seller fields (Username, Avatar,
// CreditScore) and CategoryName are filled by the API on joined queries.
type Item struct {
	ItemID         int64          `json:"item_id"`
	UserID         int64          `json:"user_id"`
	CategoryID     int64          `json:"category_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	OriginalPrice  *float64       `json:"original_price,omitempty"`
	ConditionLevel ConditionLevel `json:"condition_level"`
	Images         []string       `json:"images,omitempty"`
	Location       string         `json:"location,omitempty"`
	PublishDate    string         `json:"publish_date,omitempty"`
	ViewCount      int            `json:"view_count"`
	Status         ItemStatus     `json:"status"`
	Username       string         `json:"username,omitempty"`
	Avatar         *string        `json:"avatar,omitempty"`
	CreditScore    *int           `json:"credit_score,omitempty"`
	CategoryName   string         `json:"category_name,omitempty"`
}

// Category is a node of the item category tree.
type Category struct {
	CategoryID       int64      `json:"category_id"`
	CategoryName     string     `json:"category_name"`
	ParentCategoryID *int64     `json:"parent_category_id,omitempty"`
	Description      string     `json:"description,omitempty"`
	Icon             string     `json:"icon,omitempty"`
	SortOrder        int        `json:"sort_order"`
	ItemCount        *int       `json:"item_count,omitempty"`
	Children         []Category `json:"children,omitempty"`
}

// CreateItemParams is the payload for publishing a listing.
type CreateItemParams struct {
	CategoryID     int64          `json:"category_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	OriginalPrice  *float64       `json:"original_price,omitempty"`
	ConditionLevel ConditionLevel `json:"condition_level"`
	Images         []string       `json:"images,omitempty"`
	Location       string         `json:"location,omitempty"`
	UserID         int64          `json:"user_id"`
}

// ItemUpdate carries the mutable listing fields.
type ItemUpdate struct {
	Title          *string         `json:"title,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	OriginalPrice  *float64        `json:"original_price,omitempty"`
	CategoryID     *int64          `json:"category_id,omitempty"`
	ConditionLevel *ConditionLevel `json:"condition_level,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Status         *ItemStatus     `json:"status,omitempty"`
}

// ItemFilter narrows and orders listing queries.
type ItemFilter struct {
	Page       int
	Limit      int
	CategoryID int64
	UserID     int64
	Status     ItemStatus
	SortBy     string // publish_date, price or view_count
	SortOrder  string // ASC or DESC
}

// ItemSearch is a full-text item search query.
type ItemSearch struct {
	Keyword        string
	CategoryID     int64
	MinPrice       *float64
	MaxPrice       *float64
	ConditionLevel ConditionLevel
	SortBy         string
	SortOrder      string
}

// Pagination describes the slice of a paginated listing response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
