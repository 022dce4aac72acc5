// Package memstore is the map-backed Storage implementation the service
// ships with. Collections are bounded and unindexed: foreign-key lookups
// are linear scans with first-match semantics, and listing walks the
// collection in identifier (= insertion) order.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/catalog"
	"github.com/mmsswimming/go_academy_backend/internal/domain/coach"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

type collections struct {
	users    map[int]*user.User
	members  map[int]*member.Member
	coaches  map[int]*coach.Coach
	programs map[int]*catalog.Program
	classes  map[int]*catalog.Class
	bookings map[int]*enrollment.Booking
	payments map[int]*enrollment.Payment
	progress map[int]*enrollment.Progress
	posts    map[int]*content.BlogPost
	contacts map[int]*content.Contact

	userSeq     int
	memberSeq   int
	coachSeq    int
	programSeq  int
	classSeq    int
	bookingSeq  int
	paymentSeq  int
	progressSeq int
	postSeq     int
	contactSeq  int
}

type MemStorage struct {
	// mu serializes the identifier-increment-and-insert sequence and every
	// other access; identifier uniqueness depends on it.
	mu   *sync.Mutex
	data *collections
	inTx bool
}

// New returns a store seeded with the fixed demo catalog.
func New() *MemStorage {
	s := &MemStorage{
		mu: &sync.Mutex{},
		data: &collections{
			users:    make(map[int]*user.User),
			members:  make(map[int]*member.Member),
			coaches:  make(map[int]*coach.Coach),
			programs: make(map[int]*catalog.Program),
			classes:  make(map[int]*catalog.Class),
			bookings: make(map[int]*enrollment.Booking),
			payments: make(map[int]*enrollment.Payment),
			progress: make(map[int]*enrollment.Progress),
			posts:    make(map[int]*content.BlogPost),
			contacts: make(map[int]*content.Contact),

			userSeq:     1,
			memberSeq:   1,
			coachSeq:    1,
			programSeq:  1,
			classSeq:    1,
			bookingSeq:  1,
			paymentSeq:  1,
			progressSeq: 1,
			postSeq:     1,
			contactSeq:  1,
		},
	}
	s.seed()
	return s
}

// Atomic serializes fn against the whole store. The view passed to fn
// shares the collections but skips locking, so storage calls inside fn do
// not deadlock on the already-held mutex.
func (s *MemStorage) Atomic(_ context.Context, fn func(storage.Storage) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&MemStorage{mu: s.mu, data: s.data, inTx: true})
}

func (s *MemStorage) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// collect returns map values ordered by key. Identifiers increase
// monotonically, so key order is insertion order.
func collect[T any](m map[int]*T) []*T {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
