package memory

import (
	"time"

	"github.com/ivankudzin/heartlink/internal/domain/model"
)

func Conversations() []model.Conversation {
	return []model.Conversation{
		{ID: "conv1", Participants: [2]string{CurrentUserID, "user1"}, UnreadCount: 2},
		{ID: "conv2", Participants: [2]string{CurrentUserID, "user2"}, UnreadCount: 0},
		{ID: "conv3", Participants: [2]string{CurrentUserID, "user3"}, UnreadCount: 1},
	}
}

// Messages returns the seed thread for conversationID, oldest first. Unknown
// ids yield an empty slice.
func Messages(conversationID string, now time.Time) []model.Message {
	var out []model.Message
	for _, msg := range seedMessages(now) {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	if out == nil {
		return []model.Message{}
	}
	return out
}

func seedMessages(now time.Time) []model.Message {
	return []model.Message{
		{
			ID:             "msg1",
			ConversationID: "conv1",
			SenderID:       "user1",
			ReceiverID:     CurrentUserID,
			Content:        "Hey there! I noticed we both like hiking. Have you tried any trails around here?",
			Timestamp:      now.Add(-day),
			Read:           true,
		},
		{
			ID:             "msg2",
			ConversationID: "conv1",
			SenderID:       CurrentUserID,
			ReceiverID:     "user1",
			Content:        "Hi! Yes, I love the trails at Bear Mountain. Have you been there?",
			Timestamp:      now.Add(-23 * time.Hour),
			Read:           true,
		},
		{
			ID:             "msg3",
			ConversationID: "conv1",
			SenderID:       "user1",
			ReceiverID:     CurrentUserID,
			Content:        "Not yet, but I'd love to go sometime! Maybe we could plan a hike?",
			Timestamp:      now.Add(-time.Hour),
			Read:           false,
		},
		{
			ID:             "msg4",
			ConversationID: "conv1",
			SenderID:       "user1",
			ReceiverID:     CurrentUserID,
			Content:        "I'm free this weekend if you're interested!",
			Timestamp:      now.Add(-30 * time.Minute),
			Read:           false,
		},
		{
			ID:             "msg5",
			ConversationID: "conv2",
			SenderID:       CurrentUserID,
			ReceiverID:     "user2",
			Content:        "I saw you like cooking too. What's your favorite dish to make?",
			Timestamp:      now.Add(-3 * day),
			Read:           true,
		},
		{
			ID:             "msg6",
			ConversationID: "conv2",
			SenderID:       "user2",
			ReceiverID:     CurrentUserID,
			Content:        "I love making homemade pasta! Especially ravioli with a butternut squash filling. What about you?",
			Timestamp:      now.Add(-2 * day),
			Read:           true,
		},
		{
			ID:             "msg7",
			ConversationID: "conv3",
			SenderID:       "user3",
			ReceiverID:     CurrentUserID,
			Content:        "Your photography portfolio is amazing! How long have you been taking photos?",
			Timestamp:      now.Add(-12 * time.Hour),
			Read:           false,
		},
	}
}
