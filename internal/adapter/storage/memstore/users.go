package memstore

import (
	"context"

	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func (s *MemStorage) CreateUser(_ context.Context, u *user.User) (*user.User, error) {
	defer s.lock()()

	for _, existing := range s.data.users {
		if existing.Email == u.Email {
			return nil, user.ErrEmailDuplicate
		}
	}

	stored := *u
	stored.ID = s.data.userSeq
	s.data.userSeq++
	s.data.users[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	defer s.lock()()

	for _, u := range collect(s.data.users) {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *MemStorage) GetUserByID(_ context.Context, id int) (*user.User, error) {
	defer s.lock()()

	u, ok := s.data.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
