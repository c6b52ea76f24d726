package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// SendMessage delivers a chat message and returns its id.
func (c *Client) SendMessage(ctx context.Context, params models.SendMessageParams) (int64, error) {
	var result struct {
		MessageID int64 `json:"message_id"`
	}
	if err := c.post(ctx, "/messages", params, &result); err != nil {
		return 0, err
	}
	return result.MessageID, nil
}

// ListConversations fetches the user's inbox.
func (c *Client) ListConversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	var envelope struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	if err := c.get(ctx, fmt.Sprintf("/messages/conversations/%d", userID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Conversations, nil
}

// ListConversationMessages fetches the message history of one conversation.
// itemID narrows the thread to a listing; pass 0 for item-less chats.
func (c *Client) ListConversationMessages(ctx context.Context, userID, otherUserID, itemID int64) ([]models.Message, error) {
	query := url.Values{
		"user_id":       {strconv.FormatInt(userID, 10)},
		"other_user_id": {strconv.FormatInt(otherUserID, 10)},
	}
	if itemID > 0 {
		query.Set("item_id", strconv.FormatInt(itemID, 10))
	}

	var envelope struct {
		Messages []models.Message `json:"messages"`
	}
	if err := c.get(ctx, "/messages/conversation", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Messages, nil
}

// MarkMessageRead marks one received message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID, userID int64) error {
	body := map[string]any{"user_id": userID}
	return c.put(ctx, fmt.Sprintf("/messages/%d/read", messageID), body, nil)
}

// UnreadCount returns the number of unread messages.
func (c *Client) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var envelope struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.get(ctx, fmt.Sprintf("/messages/unread/%d", userID), nil, &envelope); err != nil {
		return 0, err
	}
	return envelope.UnreadCount, nil
}

// SearchMessages runs a keyword search over the user's messages.
func (c *Client) SearchMessages(ctx context.Context, userID int64, keyword string) ([]models.Message, error) {
	query := url.Values{
		"user_id": {strconv.FormatInt(userID, 10)},
		"keyword": {keyword},
	}
	var envelope struct {
		Messages []models.Message `json:"messages"`
	}
	if err := c.get(ctx, "/messages/search", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Messages, nil
}

// DeleteMessage removes a message the user sent or received.
func (c *Client) DeleteMessage(ctx context.Context, messageID, userID int64) error {
	body := map[string]any{"user_id": userID}
	return c.delete(ctx, fmt.Sprintf("/messages/%d", messageID), body, nil)
}

// BatchMarkRead marks a whole conversation as read and returns how many
// messages were affected.
func (c *Client) BatchMarkRead(ctx context.Context, userID, otherUserID, itemID int64) (int, error) {
	body := map[string]any{
		"user_id":       userID,
		"other_user_id": otherUserID,
	}
	if itemID > 0 {
		body["item_id"] = itemID
	}

	var result struct {
		Count int `json:"count"`
	}
	if err := c.put(ctx, "/messages/batch-read", body, &result); err != nil {
		return 0, err
	}
	return result.Count, nil
}
