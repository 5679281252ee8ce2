package model

type Conversation struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	LastMessage  *Message  `json:"last_message,omitempty"`
	UnreadCount  int       `json:"unread_count"`
}

// OtherParticipant returns the participant that is not userID, or "" when
// userID is not part of the conversation.
func (c Conversation) OtherParticipant(userID string) string {
	switch userID {
	case c.Participants[0]:
		return c.Participants[1]
	case c.Participants[1]:
		return c.Participants[0]
	default:
		return ""
	}
}

func (c Conversation) Clone() Conversation {
	out := c
	if c.LastMessage != nil {
		last := *c.LastMessage
		out.LastMessage = &last
	}
	return out
}
