package model

import "time"

const (
	CompatibilityMin = 0
	CompatibilityMax = 100
)

type Match struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	MatchedUserID   string    `json:"matched_user_id"`
	Compatibility   int       `json:"compatibility"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

func (m Match) Valid() bool {
	return m.Compatibility >= CompatibilityMin && m.Compatibility <= CompatibilityMax
}
