package memstore

import (
	"context"

	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
)

func (s *MemStorage) CreateBooking(_ context.Context, b *enrollment.Booking) (*enrollment.Booking, error) {
	defer s.lock()()

	stored := *b
	stored.ID = s.data.bookingSeq
	s.data.bookingSeq++
	s.data.bookings[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) ListBookingsByMember(_ context.Context, memberID int) ([]*enrollment.Booking, error) {
	defer s.lock()()

	out := make([]*enrollment.Booking, 0)
	for _, b := range collect(s.data.bookings) {
		if b.MemberID == memberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemStorage) ListBookingsByClass(_ context.Context, classID int) ([]*enrollment.Booking, error) {
	defer s.lock()()

	out := make([]*enrollment.Booking, 0)
	for _, b := range collect(s.data.bookings) {
		if b.ClassID == classID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemStorage) UpdateBooking(_ context.Context, id int, upd enrollment.BookingUpdate) (*enrollment.Booking, error) {
	defer s.lock()()

	cur, ok := s.data.bookings[id]
	if !ok {
		return nil, enrollment.ErrBookingNotFound
	}

	merged := upd.Apply(*cur)
	s.data.bookings[id] = &merged
	return &merged, nil
}

func (s *MemStorage) CreatePayment(_ context.Context, p *enrollment.Payment) (*enrollment.Payment, error) {
	defer s.lock()()

	stored := *p
	stored.ID = s.data.paymentSeq
	s.data.paymentSeq++
	s.data.payments[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) ListPaymentsByMember(_ context.Context, memberID int) ([]*enrollment.Payment, error) {
	defer s.lock()()

	out := make([]*enrollment.Payment, 0)
	for _, p := range collect(s.data.payments) {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStorage) ListPayments(_ context.Context) ([]*enrollment.Payment, error) {
	defer s.lock()()
	return collect(s.data.payments), nil
}

func (s *MemStorage) CreateProgress(_ context.Context, p *enrollment.Progress) (*enrollment.Progress, error) {
	defer s.lock()()

	stored := *p
	stored.ID = s.data.progressSeq
	s.data.progressSeq++
	s.data.progress[stored.ID] = &stored
	return &stored, nil
}

func (s *MemStorage) ListProgressByMember(_ context.Context, memberID int) ([]*enrollment.Progress, error) {
	defer s.lock()()

	out := make([]*enrollment.Progress, 0)
	for _, p := range collect(s.data.progress) {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	return out, nil
}
