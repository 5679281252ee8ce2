package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user"`
}

// ProfileUpdateRequest edits the signed-in profile. Absent fields keep their
// current value.
type ProfileUpdateRequest struct {
	Name             *string  `json:"name" validate:"omitempty,notblank,max=80"`
	Age              *int     `json:"age" validate:"omitempty,gte=18,lte=120"`
	Location         *string  `json:"location" validate:"omitempty,max=120"`
	Bio              *string  `json:"bio" validate:"omitempty,max=500"`
	Interests        []string `json:"interests" validate:"omitempty,max=20,dive,notblank"`
	Photos           []string `json:"photos" validate:"omitempty,max=6,dive,url"`
	Gender           *string  `json:"gender" validate:"omitempty,gender"`
	LookingFor       []string `json:"looking_for" validate:"omitempty,dive,gender"`
	SexualPreference *string  `json:"sexual_preference" validate:"omitempty,sexual_preference"`
	Email            *string  `json:"email" validate:"omitempty,email"`
}
