package dto

import "time"

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	DisplayDate    string    `json:"display_date"`
	Read           bool      `json:"read"`
	Mine           bool      `json:"mine"`
}

type ConversationItemResponse struct {
	ID          string           `json:"id"`
	Participant UserResponse     `json:"participant"`
	LastMessage *MessageResponse `json:"last_message"`
	UnreadCount int              `json:"unread_count"`
	Active      bool             `json:"active"`
}

type ConversationsResponse struct {
	Items       []ConversationItemResponse `json:"items"`
	UnreadTotal int                        `json:"unread_total"`
}

type ConversationThreadResponse struct {
	Conversation ConversationItemResponse `json:"conversation"`
	Messages     []MessageResponse        `json:"messages"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"max=2000"`
}

type SendMessageResponse struct {
	Sent    bool             `json:"sent"`
	Message *MessageResponse `json:"message"`
}
