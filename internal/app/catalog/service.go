package catalog

import (
	"context"
	"log/slog"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/catalog"
	"github.com/mmsswimming/go_academy_backend/internal/domain/coach"
)

// Service serves the public academy catalog: programs, classes and the
// coaching staff.
type Service struct {
	logger *slog.Logger
	store  storage.Storage
}

func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{logger: logger, store: store}
}

func (s *Service) ListPrograms(ctx context.Context) ([]*catalog.Program, error) {
	return s.store.ListPrograms(ctx)
}

func (s *Service) GetProgramByID(ctx context.Context, id int) (*catalog.Program, error) {
	return s.store.GetProgramByID(ctx, id)
}

func (s *Service) ListClasses(ctx context.Context) ([]*catalog.Class, error) {
	return s.store.ListClasses(ctx)
}

func (s *Service) ListClassesByCoach(ctx context.Context, coachID int) ([]*catalog.Class, error) {
	return s.store.ListClassesByCoach(ctx, coachID)
}

func (s *Service) ListCoaches(ctx context.Context) ([]*coach.Coach, error) {
	return s.store.ListCoaches(ctx)
}

func (s *Service) CreateProgram(ctx context.Context, p *catalog.Program) (*catalog.Program, error) {
	created, err := s.store.CreateProgram(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("program created", "program_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) CreateClass(ctx context.Context, c *catalog.Class) (*catalog.Class, error) {
	if _, err := s.store.GetProgramByID(ctx, c.ProgramID); err != nil {
		return nil, err
	}
	created, err := s.store.CreateClass(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info("class created", "class_id", created.ID, "program_id", created.ProgramID)
	return created, nil
}
