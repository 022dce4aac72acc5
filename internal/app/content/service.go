package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
)

type EventPublisher interface {
	PublishEvents(events ...domain.Event) error
}

// Service covers the site's editorial surface: the blog and the contact
// inbox.
type Service struct {
	logger *slog.Logger
	store  storage.Storage
	bus    EventPublisher
}

func New(store storage.Storage, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{logger: logger, store: store, bus: bus}
}

func (s *Service) ListBlogPosts(ctx context.Context) ([]*content.BlogPost, error) {
	return s.store.ListBlogPosts(ctx)
}

func (s *Service) GetBlogPostByID(ctx context.Context, id int) (*content.BlogPost, error) {
	return s.store.GetBlogPostByID(ctx, id)
}

func (s *Service) CreateBlogPost(ctx context.Context, p *content.BlogPost) (*content.BlogPost, error) {
	created, err := s.store.CreateBlogPost(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("blog post created", "post_id", created.ID, "title", created.Title)
	return created, nil
}

func (s *Service) SubmitContact(ctx context.Context, c *content.Contact) (*content.Contact, error) {
	created, err := s.store.CreateContact(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := s.bus.PublishEvents(content.ContactReceivedEvent{
		At:        time.Now().UTC(),
		ContactID: created.ID,
		Email:     created.Email,
		Subject:   created.Subject,
	}); err != nil {
		s.logger.Error("failed to publish events", "error", err)
	}

	return created, nil
}

func (s *Service) ListContacts(ctx context.Context) ([]*content.Contact, error) {
	return s.store.ListContacts(ctx)
}

func (s *Service) UpdateContact(ctx context.Context, id int, upd content.ContactUpdate) (*content.Contact, error) {
	return s.store.UpdateContact(ctx, id, upd)
}
