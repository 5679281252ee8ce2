package memory

import (
	"time"

	"github.com/ivankudzin/heartlink/internal/domain/model"
)

const day = 24 * time.Hour

// Matches is the seed match list returned by every match fetch.
func Matches(now time.Time) []model.Match {
	return []model.Match{
		{
			ID:              "1",
			UserID:          CurrentUserID,
			MatchedUserID:   "user1",
			Compatibility:   95,
			CreatedAt:       now.Add(-2 * day),
			LastInteraction: now.Add(-time.Hour),
		},
		{
			ID:              "2",
			UserID:          CurrentUserID,
			MatchedUserID:   "user2",
			Compatibility:   87,
			CreatedAt:       now.Add(-5 * day),
			LastInteraction: now.Add(-day),
		},
		{
			ID:              "3",
			UserID:          CurrentUserID,
			MatchedUserID:   "user3",
			Compatibility:   78,
			CreatedAt:       now.Add(-7 * day),
			LastInteraction: now.Add(-2 * day),
		},
		{
			ID:              "4",
			UserID:          CurrentUserID,
			MatchedUserID:   "user4",
			Compatibility:   92,
			CreatedAt:       now.Add(-day),
			LastInteraction: now.Add(-30 * time.Minute),
		},
	}
}
