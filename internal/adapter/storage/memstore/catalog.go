package memstore

import (
	"context"

	"github.com/mmsswimming/go_academy_backend/internal/domain/catalog"
)

func (s *MemStorage) CreateProgram(_ context.Context, p *catalog.Program) (*catalog.Program, error) {
	defer s.lock()()

	stored := *p
	stored.ID = s.data.programSeq
	s.data.programSeq++
	s.data.programs[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) GetProgramByID(_ context.Context, id int) (*catalog.Program, error) {
	defer s.lock()()

	p, ok := s.data.programs[id]
	if !ok {
		return nil, catalog.ErrProgramNotFound
	}
	return p, nil
}

func (s *MemStorage) ListPrograms(_ context.Context) ([]*catalog.Program, error) {
	defer s.lock()()
	return collect(s.data.programs), nil
}

func (s *MemStorage) CreateClass(_ context.Context, c *catalog.Class) (*catalog.Class, error) {
	defer s.lock()()

	stored := *c
	stored.ID = s.data.classSeq
	s.data.classSeq++
	s.data.classes[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) GetClassByID(_ context.Context, id int) (*catalog.Class, error) {
	defer s.lock()()

	c, ok := s.data.classes[id]
	if !ok {
		return nil, catalog.ErrClassNotFound
	}
	return c, nil
}

func (s *MemStorage) ListClasses(_ context.Context) ([]*catalog.Class, error) {
	defer s.lock()()
	return collect(s.data.classes), nil
}

func (s *MemStorage) ListClassesByCoach(_ context.Context, coachID int) ([]*catalog.Class, error) {
	defer s.lock()()

	out := make([]*catalog.Class, 0)
	for _, c := range collect(s.data.classes) {
		if c.CoachID == coachID {
			out = append(out, c)
		}
	}
	return out, nil
}
