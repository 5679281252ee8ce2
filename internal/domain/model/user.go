package model

import (
	"time"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
)

type User struct {
	ID               string                  `json:"id" yaml:"id"`
	Name             string                  `json:"name" yaml:"name"`
	Age              int                     `json:"age" yaml:"age"`
	Location         string                  `json:"location" yaml:"location"`
	Bio              string                  `json:"bio" yaml:"bio"`
	Interests        []string                `json:"interests" yaml:"interests"`
	Photos           []string                `json:"photos" yaml:"photos"`
	Gender           enums.Gender            `json:"gender" yaml:"gender"`
	LookingFor       []enums.Gender          `json:"looking_for" yaml:"looking_for"`
	SexualPreference *enums.SexualPreference `json:"sexual_preference,omitempty" yaml:"sexual_preference,omitempty"`
	LastActive       time.Time               `json:"last_active" yaml:"last_active"`
	Email            string                  `json:"email,omitempty" yaml:"email,omitempty"`
}

// Clone returns a deep copy so callers can't mutate slices held by a store.
func (u User) Clone() User {
	out := u
	out.Interests = append([]string(nil), u.Interests...)
	out.Photos = append([]string(nil), u.Photos...)
	out.LookingFor = append([]enums.Gender(nil), u.LookingFor...)
	if u.SexualPreference != nil {
		pref := *u.SexualPreference
		out.SexualPreference = &pref
	}
	return out
}
