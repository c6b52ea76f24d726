package models

// MessageType distinguishes text messages from image messages.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
)

// Message is a single chat message between two users, optionally attached
// to an item. Sender/receiver display fields come from joined queries.
type Message struct {
	MessageID        int64       `json:"message_id"`
	SenderID         int64       `json:"sender_id"`
	ReceiverID       int64       `json:"receiver_id"`
	ItemID           *int64      `json:"item_id,omitempty"`
	Content          string      `json:"content"`
	MessageType      MessageType `json:"message_type"`
	IsRead           bool        `json:"is_read"`
	SendTime         string      `json:"send_time,omitempty"`
	SenderUsername   string      `json:"sender_username,omitempty"`
	SenderAvatar     *string     `json:"sender_avatar,omitempty"`
	ReceiverUsername string      `json:"receiver_username,omitempty"`
	ItemTitle        string      `json:"item_title,omitempty"`
}

// Conversation is one entry of a user's inbox: the latest message against
// each (other user, item) pair plus the unread count.
type Conversation struct {
	OtherUserID     int64   `json:"other_user_id"`
	OtherUsername   string  `json:"other_username"`
	OtherAvatar     *string `json:"other_avatar,omitempty"`
	ItemID          *int64  `json:"item_id,omitempty"`
	ItemTitle       string  `json:"item_title,omitempty"`
	LastMessage     string  `json:"last_message"`
	LastMessageTime string  `json:"last_message_time"`
	UnreadCount     int     `json:"unread_count"`
}

// SendMessageParams is the payload for sending a message.
type SendMessageParams struct {
	SenderID    int64       `json:"sender_id"`
	ReceiverID  int64       `json:"receiver_id"`
	ItemID      *int64      `json:"item_id,omitempty"`
	Content     string      `json:"content"`
	MessageType MessageType `json:"message_type"`
}
