package memory

import (
	"testing"
	"time"
)

func TestUsersHaveUniqueIDs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seen := map[string]bool{CurrentUserID: true}
	for _, u := range Users(now) {
		if seen[u.ID] {
			t.Fatalf("duplicate user id %q", u.ID)
		}
		seen[u.ID] = true
		if !u.Gender.Valid() {
			t.Fatalf("user %s has invalid gender %q", u.ID, u.Gender)
		}
	}
	if CurrentUser(now).ID != CurrentUserID {
		t.Fatalf("unexpected current user id: %s", CurrentUser(now).ID)
	}
}

func TestSeedMatchesAreValid(t *testing.T) {
	matches := Matches(time.Now())
	if len(matches) != 4 {
		t.Fatalf("unexpected seed match count: %d", len(matches))
	}
	for _, m := range matches {
		if !m.Valid() {
			t.Fatalf("match %s compatibility out of range: %d", m.ID, m.Compatibility)
		}
		if m.UserID != CurrentUserID {
			t.Fatalf("match %s not owned by current user", m.ID)
		}
	}
}

func TestMessagesAreOrderedOldestFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, conv := range Conversations() {
		msgs := Messages(conv.ID, now)
		if len(msgs) == 0 {
			t.Fatalf("conversation %s has no seed messages", conv.ID)
		}
		for i := 1; i < len(msgs); i++ {
			if msgs[i].Timestamp.Before(msgs[i-1].Timestamp) {
				t.Fatalf("conversation %s not ordered at index %d", conv.ID, i)
			}
		}
		for _, msg := range msgs {
			if conv.OtherParticipant(msg.SenderID) == "" || conv.OtherParticipant(msg.ReceiverID) == "" {
				t.Fatalf("message %s not attributed to conversation %s participants", msg.ID, conv.ID)
			}
		}
	}
}

func TestMessagesUnknownConversationIsEmpty(t *testing.T) {
	msgs := Messages("nope", time.Now())
	if msgs == nil || len(msgs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", msgs)
	}
}

func TestSeedsReturnFreshCopies(t *testing.T) {
	now := time.Now()
	first := Users(now)
	first[0].Interests[0] = "changed"
	if Users(now)[0].Interests[0] == "changed" {
		t.Fatalf("seed users must not share slices between calls")
	}
}
