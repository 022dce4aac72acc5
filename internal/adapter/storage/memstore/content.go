package memstore

import (
	"context"

	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
)

func (s *MemStorage) CreateBlogPost(_ context.Context, p *content.BlogPost) (*content.BlogPost, error) {
	defer s.lock()()

	stored := *p
	stored.ID = s.data.postSeq
	s.data.postSeq++
	s.data.posts[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) GetBlogPostByID(_ context.Context, id int) (*content.BlogPost, error) {
	defer s.lock()()

	p, ok := s.data.posts[id]
	if !ok {
		return nil, content.ErrPostNotFound
	}
	return p, nil
}

func (s *MemStorage) ListBlogPosts(_ context.Context) ([]*content.BlogPost, error) {
	defer s.lock()()
	return collect(s.data.posts), nil
}

func (s *MemStorage) CreateContact(_ context.Context, c *content.Contact) (*content.Contact, error) {
	defer s.lock()()

	stored := *c
	stored.ID = s.data.contactSeq
	s.data.contactSeq++
	s.data.contacts[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) ListContacts(_ context.Context) ([]*content.Contact, error) {
	defer s.lock()()
	return collect(s.data.contacts), nil
}

func (s *MemStorage) UpdateContact(_ context.Context, id int, upd content.ContactUpdate) (*content.Contact, error) {
	defer s.lock()()

	cur, ok := s.data.contacts[id]
	if !ok {
		return nil, content.ErrContactNotFound
	}

	merged := upd.Apply(*cur)
	s.data.contacts[id] = &merged
	return &merged, nil
}
