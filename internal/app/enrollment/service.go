package enrollment

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

type EventPublisher interface {
	PublishEvents(events ...domain.Event) error
}

// Service handles everything a member does against the schedule: bookings,
// payments and stroke progress. The member is always resolved from the
// authenticated user id, never taken from a request body.
type Service struct {
	logger *slog.Logger
	store  storage.Storage
	bus    EventPublisher
}

func New(store storage.Storage, bus EventPublisher, logger *slog.Logger) *Service {
	return &Service{logger: logger, store: store, bus: bus}
}

func (s *Service) memberOf(ctx context.Context, userID int) (*member.Member, error) {
	return s.store.GetMemberByUserID(ctx, userID)
}

func (s *Service) CreateBooking(ctx context.Context, userID, classID int, status string, notes *string) (*enrollment.Booking, error) {
	m, err := s.memberOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	b, err := s.store.CreateBooking(ctx, enrollment.NewBooking(m.ID, classID, status, notes))
	if err != nil {
		return nil, err
	}

	if err := s.bus.PublishEvents(enrollment.BookingCreatedEvent{
		At:        time.Now().UTC(),
		BookingID: b.ID,
		MemberID:  b.MemberID,
		ClassID:   b.ClassID,
	}); err != nil {
		s.logger.Error("failed to publish events", "error", err)
	}

	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, userID int) ([]*enrollment.Booking, error) {
	m, err := s.memberOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListBookingsByMember(ctx, m.ID)
}

func (s *Service) CreatePayment(ctx context.Context, userID int, amount, method, status string, invoiceNumber, description *string) (*enrollment.Payment, error) {
	m, err := s.memberOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.store.CreatePayment(ctx, enrollment.NewPayment(m.ID, amount, method, status, invoiceNumber, description))
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded", "payment_id", p.ID, "member_id", p.MemberID, "amount", p.Amount)
	return p, nil
}

func (s *Service) ListPayments(ctx context.Context, userID int) ([]*enrollment.Payment, error) {
	m, err := s.memberOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListPaymentsByMember(ctx, m.ID)
}

func (s *Service) ListAllPayments(ctx context.Context) ([]*enrollment.Payment, error) {
	return s.store.ListPayments(ctx)
}

func (s *Service) CreateProgress(ctx context.Context, memberID, coachID int, stroke string, progress int, notes *string) (*enrollment.Progress, error) {
	return s.store.CreateProgress(ctx, enrollment.NewProgress(memberID, coachID, stroke, progress, notes))
}

func (s *Service) ListProgress(ctx context.Context, userID int) ([]*enrollment.Progress, error) {
	m, err := s.memberOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListProgressByMember(ctx, m.ID)
}
