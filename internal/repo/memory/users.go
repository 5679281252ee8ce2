// Package memory holds the fixed mock data set that stands in for a backend.
// Every function returns fresh values; callers own what they get.
package memory

import (
	"time"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
	"github.com/ivankudzin/heartlink/internal/domain/model"
)

const CurrentUserID = "current-user"

const photoQuery = "?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=500&q=60"

func photo(id string) string {
	return "https://images.unsplash.com/" + id + photoQuery
}

func preference(p enums.SexualPreference) *enums.SexualPreference {
	return &p
}

// CurrentUser is the signed-in user's profile.
func CurrentUser(now time.Time) model.User {
	return model.User{
		ID:        CurrentUserID,
		Name:      "Alex Morgan",
		Age:       28,
		Location:  "New York, NY",
		Bio:       "Software developer by day, amateur chef by night. Love hiking, photography, and trying new restaurants.",
		Interests: []string{"hiking", "cooking", "photography", "travel", "technology"},
		Photos: []string{
			photo("photo-1494790108377-be9c29b29330"),
			photo("photo-1517841905240-472988babdf9"),
			photo("photo-1522075469751-3a6694fb2f61"),
		},
		Gender:           enums.GenderFemale,
		LookingFor:       []enums.Gender{enums.GenderMale, enums.GenderNonBinary},
		SexualPreference: preference(enums.SexualPreferenceStraight),
		LastActive:       now,
		Email:            "alex@example.com",
	}
}

// Users is the candidate catalog in display order.
func Users(now time.Time) []model.User {
	return []model.User{
		{
			ID:        "user1",
			Name:      "Jordan Smith",
			Age:       30,
			Location:  "Brooklyn, NY",
			Bio:       "Music producer and coffee enthusiast. Looking for someone to explore the city with.",
			Interests: []string{"music", "coffee", "art", "fitness", "travel"},
			Photos: []string{
				photo("photo-1500648767791-00dcc994a43e"),
				photo("photo-1506794778202-cad84cf45f1d"),
			},
			Gender:           enums.GenderMale,
			LookingFor:       []enums.Gender{enums.GenderFemale, enums.GenderNonBinary},
			SexualPreference: preference(enums.SexualPreferenceStraight),
			LastActive:       now.Add(-time.Hour),
		},
		{
			ID:        "user2",
			Name:      "Taylor Reed",
			Age:       26,
			Location:  "Manhattan, NY",
			Bio:       "Marketing specialist who loves dogs, wine, and good conversation.",
			Interests: []string{"dogs", "wine", "reading", "yoga", "cooking"},
			Photos: []string{
				photo("photo-1534528741775-53994a69daeb"),
				photo("photo-1521119989659-a83eee488004"),
			},
			Gender:           enums.GenderFemale,
			LookingFor:       []enums.Gender{enums.GenderMale},
			SexualPreference: preference(enums.SexualPreferenceStraight),
			LastActive:       now.Add(-24 * time.Hour),
		},
		{
			ID:        "user3",
			Name:      "Casey Johnson",
			Age:       32,
			Location:  "Queens, NY",
			Bio:       "Architect and weekend hiker. Looking for someone to share adventures with.",
			Interests: []string{"architecture", "hiking", "photography", "craft beer", "movies"},
			Photos: []string{
				photo("photo-1507003211169-0a1dd7228f2d"),
				photo("photo-1502378735452-bc7d86632805"),
			},
			Gender:           enums.GenderNonBinary,
			LookingFor:       []enums.Gender{enums.GenderFemale, enums.GenderMale, enums.GenderNonBinary},
			SexualPreference: preference(enums.SexualPreferencePansexual),
			LastActive:       now.Add(-48 * time.Hour),
		},
		{
			ID:        "user4",
			Name:      "Riley Parker",
			Age:       29,
			Location:  "Hoboken, NJ",
			Bio:       "Tech startup founder who loves rock climbing and trying new restaurants.",
			Interests: []string{"technology", "rock climbing", "food", "travel", "entrepreneurship"},
			Photos: []string{
				photo("photo-1539571696357-5a69c17a67c6"),
				photo("photo-1517841905240-472988babdf9"),
			},
			Gender:           enums.GenderMale,
			LookingFor:       []enums.Gender{enums.GenderFemale},
			SexualPreference: preference(enums.SexualPreferenceStraight),
			LastActive:       now.Add(-12 * time.Hour),
		},
		{
			ID:        "user5",
			Name:      "Morgan Lee",
			Age:       27,
			Location:  "Jersey City, NJ",
			Bio:       "Yoga instructor and plant enthusiast. Looking for genuine connections.",
			Interests: []string{"yoga", "plants", "meditation", "vegan cooking", "sustainability"},
			Photos: []string{
				photo("photo-1517365830460-955ce3ccd263"),
				photo("photo-1496440737103-cd596325d314"),
			},
			Gender:           enums.GenderFemale,
			LookingFor:       []enums.Gender{enums.GenderMale, enums.GenderNonBinary},
			SexualPreference: preference(enums.SexualPreferenceBisexual),
			LastActive:       now.Add(-2 * time.Hour),
		},
	}
}
