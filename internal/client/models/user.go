// Package models defines the typed records exchanged with the marketplace
// API. The structs mirror the server's JSON field names; optional fields
// are pointers so "absent" and "zero" stay distinguishable.
package models

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserFrozen  UserStatus = "frozen"
	UserDeleted UserStatus = "deleted"
)

// User is the account record as returned by the API. The password is never
// present in responses and never stored client-side.
type User struct {
	UserID           int64      `json:"user_id"`
	StudentID        string     `json:"student_id,omitempty"`
	Username         string     `json:"username"`
	RealName         string     `json:"real_name,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Email            string     `json:"email,omitempty"`
	Avatar           *string    `json:"avatar,omitempty"`
	CreditScore      int        `json:"credit_score"`
	RegistrationDate string     `json:"registration_date,omitempty"`
	LastLogin        *string    `json:"last_login,omitempty"`
	Status           UserStatus `json:"status,omitempty"`
}

// LoginParams are the credentials accepted by the login endpoint.
// LoginField may be a username, student id, or phone number.
type LoginParams struct {
	LoginField string `json:"login_field"`
	Password   string `json:"password"`
}

// RegisterParams is the payload for account creation.
type RegisterParams struct {
	StudentID string  `json:"student_id"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	RealName  string  `json:"real_name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Avatar    *string `json:"avatar,omitempty"`
}

// UserUpdate carries the mutable profile fields. Nil fields are left
// untouched by the server and by the local merge.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	RealName *string `json:"real_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}
