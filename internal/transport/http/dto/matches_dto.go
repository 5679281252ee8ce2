package dto

import "time"

type MatchItemResponse struct {
	ID              string        `json:"id"`
	MatchedUserID   string        `json:"matched_user_id"`
	Compatibility   int           `json:"compatibility"`
	CreatedAt       time.Time     `json:"created_at"`
	LastInteraction time.Time     `json:"last_interaction"`
	User            *UserResponse `json:"user,omitempty"`
}

type MatchesResponse struct {
	Items []MatchItemResponse `json:"items"`
}

type DiscoverResponse struct {
	Items []UserResponse `json:"items"`
}

type LikeResponse struct {
	Matched bool               `json:"matched"`
	Match   *MatchItemResponse `json:"match"`
}
