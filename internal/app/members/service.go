package members

import (
	"context"
	"log/slog"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

type Service struct {
	logger *slog.Logger
	store  storage.Storage
}

func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{logger: logger, store: store}
}

func (s *Service) List(ctx context.Context) ([]*member.Member, error) {
	return s.store.ListMembers(ctx)
}

// GetByUserID resolves the member profile of an authenticated user. Coach
// and admin accounts have no member profile and get ErrMemberNotFound.
func (s *Service) GetByUserID(ctx context.Context, userID int) (*member.Member, error) {
	return s.store.GetMemberByUserID(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id int, upd member.Update) (*member.Member, error) {
	m, err := s.store.UpdateMember(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info("member updated", "member_id", id)
	return m, nil
}
