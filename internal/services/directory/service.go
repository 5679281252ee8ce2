// Package directory is the read-only catalog of profiles shared by every
// store and by the HTTP layer.
package directory

import (
	"github.com/ivankudzin/heartlink/internal/domain/model"
)

type Service struct {
	currentUser model.User
	users       []model.User
	byID        map[string]int
}

// NewService copies currentUser and users; later changes to the inputs are
// not visible through the directory.
func NewService(currentUser model.User, users []model.User) *Service {
	s := &Service{
		currentUser: currentUser.Clone(),
		users:       make([]model.User, 0, len(users)),
		byID:        make(map[string]int, len(users)),
	}
	for _, u := range users {
		if u.ID == currentUser.ID {
			continue
		}
		if _, dup := s.byID[u.ID]; dup {
			continue
		}
		s.byID[u.ID] = len(s.users)
		s.users = append(s.users, u.Clone())
	}
	return s
}

func (s *Service) CurrentUserID() string {
	return s.currentUser.ID
}

func (s *Service) CurrentUser() model.User {
	return s.currentUser.Clone()
}

// GetUserByID resolves the signed-in user or a catalog entry. Unknown ids
// return false; callers hide the entry instead of failing.
func (s *Service) GetUserByID(id string) (model.User, bool) {
	if id == s.currentUser.ID {
		return s.currentUser.Clone(), true
	}
	idx, ok := s.byID[id]
	if !ok {
		return model.User{}, false
	}
	return s.users[idx].Clone(), true
}

// Candidates lists catalog users in catalog order, without the signed-in user.
func (s *Service) Candidates() []model.User {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}
