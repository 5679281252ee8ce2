package dto

import "time"

type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Location         string    `json:"location"`
	Bio              string    `json:"bio"`
	Interests        []string  `json:"interests"`
	Photos           []string  `json:"photos"`
	Gender           string    `json:"gender"`
	LookingFor       []string  `json:"looking_for"`
	SexualPreference *string   `json:"sexual_preference,omitempty"`
	LastActive       time.Time `json:"last_active"`
	Email            string    `json:"email,omitempty"`
}
