package handlers

import (
	"time"

	"github.com/ivankudzin/heartlink/internal/domain/enums"
	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/domain/rules"
	"github.com/ivankudzin/heartlink/internal/transport/http/dto"
)

func toUserResponse(u model.User) dto.UserResponse {
	lookingFor := make([]string, 0, len(u.LookingFor))
	for _, g := range u.LookingFor {
		lookingFor = append(lookingFor, string(g))
	}

	var pref *string
	if u.SexualPreference != nil {
		v := string(*u.SexualPreference)
		pref = &v
	}

	interests := append([]string{}, u.Interests...)
	photos := append([]string{}, u.Photos...)

	return dto.UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Age:              u.Age,
		Location:         u.Location,
		Bio:              u.Bio,
		Interests:        interests,
		Photos:           photos,
		Gender:           string(u.Gender),
		LookingFor:       lookingFor,
		SexualPreference: pref,
		LastActive:       u.LastActive,
		Email:            u.Email,
	}
}

func toMatchItem(m model.Match, user *model.User) dto.MatchItemResponse {
	item := dto.MatchItemResponse{
		ID:              m.ID,
		MatchedUserID:   m.MatchedUserID,
		Compatibility:   m.Compatibility,
		CreatedAt:       m.CreatedAt,
		LastInteraction: m.LastInteraction,
	}
	if user != nil {
		resp := toUserResponse(*user)
		item.User = &resp
	}
	return item
}

type messageView struct {
	currentUserID string
	now           time.Time
	loc           *time.Location
}

func (v messageView) message(m model.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Content:        m.Content,
		Timestamp:      m.Timestamp,
		DisplayDate:    rules.FormatMessageDate(m.Timestamp, v.now, v.loc),
		Read:           m.Read,
		Mine:           m.SenderID == v.currentUserID,
	}
}

// applyProfileUpdate overlays the present fields of req onto user.
func applyProfileUpdate(user model.User, req dto.ProfileUpdateRequest) model.User {
	out := user.Clone()
	if req.Name != nil {
		out.Name = *req.Name
	}
	if req.Age != nil {
		out.Age = *req.Age
	}
	if req.Location != nil {
		out.Location = *req.Location
	}
	if req.Bio != nil {
		out.Bio = *req.Bio
	}
	if req.Interests != nil {
		out.Interests = append([]string{}, req.Interests...)
	}
	if req.Photos != nil {
		out.Photos = append([]string{}, req.Photos...)
	}
	if req.Gender != nil {
		out.Gender = enums.Gender(*req.Gender)
	}
	if req.LookingFor != nil {
		out.LookingFor = make([]enums.Gender, 0, len(req.LookingFor))
		for _, g := range req.LookingFor {
			out.LookingFor = append(out.LookingFor, enums.Gender(g))
		}
	}
	if req.SexualPreference != nil {
		pref := enums.SexualPreference(*req.SexualPreference)
		out.SexualPreference = &pref
	}
	if req.Email != nil {
		out.Email = *req.Email
	}
	return out
}
