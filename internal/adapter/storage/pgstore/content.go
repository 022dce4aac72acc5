package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
)

func (s *PgStorage) CreateBlogPost(ctx context.Context, p *content.BlogPost) (*content.BlogPost, error) {
	stored := *p

	q := sqlf.InsertInto("blog_posts").
		Set("title", p.Title).
		Set("content", p.Content).
		Set("excerpt", p.Excerpt).
		Set("author", p.Author).
		Set("image_url", p.ImageURL).
		Set("category", p.Category).
		Set("published_date", p.PublishedDate).
		Set("status", p.Status).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func blogQuery(p *content.BlogPost) *sqlf.Stmt {
	return sqlf.From("blog_posts").
		Select("id").To(&p.ID).
		Select("title").To(&p.Title).
		Select("content").To(&p.Content).
		Select("excerpt").To(&p.Excerpt).
		Select("author").To(&p.Author).
		Select("image_url").To(&p.ImageURL).
		Select("category").To(&p.Category).
		Select("published_date").To(&p.PublishedDate).
		Select("status").To(&p.Status)
}

func (s *PgStorage) GetBlogPostByID(ctx context.Context, id int) (*content.BlogPost, error) {
	var p content.BlogPost

	q := blogQuery(&p).Where("id = ?", id)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrPostNotFound
		}
		return nil, storage.InternalError(err)
	}
	return &p, nil
}

func (s *PgStorage) ListBlogPosts(ctx context.Context) ([]*content.BlogPost, error) {
	var tmp content.BlogPost
	posts := make([]*content.BlogPost, 0)

	q := blogQuery(&tmp).OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		p := tmp
		posts = append(posts, &p)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return posts, nil
}

func (s *PgStorage) CreateContact(ctx context.Context, c *content.Contact) (*content.Contact, error) {
	stored := *c

	q := sqlf.InsertInto("contacts").
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("subject", c.Subject).
		Set("message", c.Message).
		Set("status", c.Status).
		Set("created_at", c.CreatedAt).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func contactQuery(c *content.Contact) *sqlf.Stmt {
	return sqlf.From("contacts").
		Select("id").To(&c.ID).
		Select("name").To(&c.Name).
		Select("email").To(&c.Email).
		Select("phone").To(&c.Phone).
		Select("subject").To(&c.Subject).
		Select("message").To(&c.Message).
		Select("status").To(&c.Status).
		Select("created_at").To(&c.CreatedAt)
}

func (s *PgStorage) ListContacts(ctx context.Context) ([]*content.Contact, error) {
	var tmp content.Contact
	contacts := make([]*content.Contact, 0)

	q := contactQuery(&tmp).OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		c := tmp
		contacts = append(contacts, &c)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return contacts, nil
}

func (s *PgStorage) UpdateContact(ctx context.Context, id int, upd content.ContactUpdate) (*content.Contact, error) {
	var cur content.Contact

	q := contactQuery(&cur).Where("id = ?", id)
	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, content.ErrContactNotFound
		}
		return nil, storage.InternalError(err)
	}

	merged := upd.Apply(cur)

	log, _ := diff.Diff(cur, merged)
	if len(log) == 0 {
		return &merged, nil
	}

	uq := makeUpdateQuery(sqlf.Update("contacts").Where("id = ?", id), log)
	res, err := uq.Exec(ctx, s.db)
	if err := assertUpdated(res, err, content.ErrContactNotFound); err != nil {
		return nil, err
	}
	return &merged, nil
}
