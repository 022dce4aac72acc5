package memstore

import (
	"context"

	"github.com/mmsswimming/go_academy_backend/internal/domain/coach"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

func (s *MemStorage) CreateMember(_ context.Context, m *member.Member) (*member.Member, error) {
	defer s.lock()()

	stored := *m
	stored.ID = s.data.memberSeq
	s.data.memberSeq++
	s.data.members[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) GetMemberByUserID(_ context.Context, userID int) (*member.Member, error) {
	defer s.lock()()

	for _, m := range collect(s.data.members) {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (s *MemStorage) GetMemberByID(_ context.Context, id int) (*member.Member, error) {
	defer s.lock()()

	m, ok := s.data.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func (s *MemStorage) ListMembers(_ context.Context) ([]*member.Member, error) {
	defer s.lock()()
	return collect(s.data.members), nil
}

func (s *MemStorage) UpdateMember(_ context.Context, id int, upd member.Update) (*member.Member, error) {
	defer s.lock()()

	cur, ok := s.data.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}

	merged := upd.Apply(*cur)
	s.data.members[id] = &merged
	return &merged, nil
}

func (s *MemStorage) CreateCoach(_ context.Context, c *coach.Coach) (*coach.Coach, error) {
	defer s.lock()()

	stored := *c
	stored.ID = s.data.coachSeq
	s.data.coachSeq++
	s.data.coaches[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) GetCoachByUserID(_ context.Context, userID int) (*coach.Coach, error) {
	defer s.lock()()

	for _, c := range collect(s.data.coaches) {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, coach.ErrCoachNotFound
}

func (s *MemStorage) ListCoaches(_ context.Context) ([]*coach.Coach, error) {
	defer s.lock()()
	return collect(s.data.coaches), nil
}

func (s *MemStorage) UpdateCoach(_ context.Context, id int, upd coach.Update) (*coach.Coach, error) {
	defer s.lock()()

	cur, ok := s.data.coaches[id]
	if !ok {
		return nil, coach.ErrCoachNotFound
	}

	merged := upd.Apply(*cur)
	s.data.coaches[id] = &merged
	return &merged, nil
}
