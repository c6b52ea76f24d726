package models

// AddressType classifies a delivery address.
type AddressType string

const (
	AddressDorm  AddressType = "dorm"
	AddressHome  AddressType = "home"
	AddressOther AddressType = "other"
)

// Address is a delivery address owned by a user.
type Address struct {
	AddressID       int64       `json:"address_id"`
	UserID          int64       `json:"user_id"`
	ReceiverName    string      `json:"receiver_name"`
	ReceiverPhone   string      `json:"receiver_phone"`
	Province        string      `json:"province"`
	City            string      `json:"city"`
	District        string      `json:"district"`
	DetailedAddress string      `json:"detailed_address"`
	PostalCode      string      `json:"postal_code,omitempty"`
	AddressType     AddressType `json:"address_type"`
	IsDefault       bool        `json:"is_default"`
}

// AddressParams is the payload for creating or updating an address.
type AddressParams struct {
	UserID          int64       `json:"user_id"`
	ReceiverName    string      `json:"receiver_name"`
	ReceiverPhone   string      `json:"receiver_phone"`
	Province        string      `json:"province"`
	City            string      `json:"city"`
	District        string      `json:"district"`
	DetailedAddress string      `json:"detailed_address"`
	PostalCode      string      `json:"postal_code,omitempty"`
	AddressType     AddressType `json:"address_type,omitempty"`
	IsDefault       *bool       `json:"is_default,omitempty"`
}

// AddressTypeStat counts addresses per type.
type AddressTypeStat struct {
	AddressType AddressType `json:"address_type"`
	Count       int         `json:"count"`
}

// AddressCityStat counts addresses per province/city pair.
type AddressCityStat struct {
	Province string `json:"province"`
	City     string `json:"city"`
	Count    int    `json:"count"`
}

// AddressStatistics summarises a user's address book.
type AddressStatistics struct {
	TotalCount int               `json:"total_count"`
	TypeStats  []AddressTypeStat `json:"type_stats"`
	CityStats  []AddressCityStat `json:"city_stats"`
}
