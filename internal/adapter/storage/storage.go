package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmsswimming/go_academy_backend/internal/domain/catalog"
	"github.com/mmsswimming/go_academy_backend/internal/domain/coach"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

var (
	ErrInternal = errors.New("internal storage error")
)

// Storage is the repository abstraction the rest of the application is built
// against. Create methods assign the identifier and return the stored copy;
// identifiers are unique and monotonically increasing per collection. List
// methods return entities in insertion order. Update methods merge partial
// changes and fail with the entity's not-found error before mutating state.
type Storage interface {
	// Atomic runs fn against a transactional view of the store: a database
	// transaction for persistent backends, a store-wide critical section for
	// the in-memory one. Multi-step writes (user + member at registration)
	// go through here.
	Atomic(ctx context.Context, fn func(Storage) error) error

	CreateUser(ctx context.Context, u *user.User) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id int) (*user.User, error)

	CreateMember(ctx context.Context, m *member.Member) (*member.Member, error)
	GetMemberByUserID(ctx context.Context, userID int) (*member.Member, error)
	GetMemberByID(ctx context.Context, id int) (*member.Member, error)
	ListMembers(ctx context.Context) ([]*member.Member, error)
	UpdateMember(ctx context.Context, id int, upd member.Update) (*member.Member, error)

	CreateCoach(ctx context.Context, c *coach.Coach) (*coach.Coach, error)
	GetCoachByUserID(ctx context.Context, userID int) (*coach.Coach, error)
	ListCoaches(ctx context.Context) ([]*coach.Coach, error)
	UpdateCoach(ctx context.Context, id int, upd coach.Update) (*coach.Coach, error)

	CreateProgram(ctx context.Context, p *catalog.Program) (*catalog.Program, error)
	GetProgramByID(ctx context.Context, id int) (*catalog.Program, error)
	ListPrograms(ctx context.Context) ([]*catalog.Program, error)

	CreateClass(ctx context.Context, c *catalog.Class) (*catalog.Class, error)
	GetClassByID(ctx context.Context, id int) (*catalog.Class, error)
	ListClasses(ctx context.Context) ([]*catalog.Class, error)
	ListClassesByCoach(ctx context.Context, coachID int) ([]*catalog.Class, error)

	CreateBooking(ctx context.Context, b *enrollment.Booking) (*enrollment.Booking, error)
	ListBookingsByMember(ctx context.Context, memberID int) ([]*enrollment.Booking, error)
	ListBookingsByClass(ctx context.Context, classID int) ([]*enrollment.Booking, error)
	UpdateBooking(ctx context.Context, id int, upd enrollment.BookingUpdate) (*enrollment.Booking, error)

	CreatePayment(ctx context.Context, p *enrollment.Payment) (*enrollment.Payment, error)
	ListPaymentsByMember(ctx context.Context, memberID int) ([]*enrollment.Payment, error)
	ListPayments(ctx context.Context) ([]*enrollment.Payment, error)

	CreateProgress(ctx context.Context, p *enrollment.Progress) (*enrollment.Progress, error)
	ListProgressByMember(ctx context.Context, memberID int) ([]*enrollment.Progress, error)

	CreateBlogPost(ctx context.Context, p *content.BlogPost) (*content.BlogPost, error)
	GetBlogPostByID(ctx context.Context, id int) (*content.BlogPost, error)
	ListBlogPosts(ctx context.Context) ([]*content.BlogPost, error)

	CreateContact(ctx context.Context, c *content.Contact) (*content.Contact, error)
	ListContacts(ctx context.Context) ([]*content.Contact, error)
	UpdateContact(ctx context.Context, id int, upd content.ContactUpdate) (*content.Contact, error)
}

// DBContext abstracts a *sql.DB and a *sql.Tx behind one query surface so
// the Postgres store can run the same code inside and outside Atomic.
type DBContext interface {
	Begin(ctx context.Context) (DBContext, error)
	Commit() error
	Rollback() error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DB struct {
	*sql.DB
}

func (d *DB) Commit() error {
	return nil
}

func (d *DB) Rollback() error {
	return nil
}

func (d *DB) Begin(ctx context.Context) (DBContext, error) {
	tx, err := d.DB.BeginTx(ctx, nil)
	return &Tx{tx}, err
}

type Tx struct {
	*sql.Tx
}

func (t *Tx) Begin(ctx context.Context) (DBContext, error) {
	return t, nil
}

func InternalError(err error) error {
	return errors.Join(fmt.Errorf("internal storage error: %w", err), ErrInternal)
}
