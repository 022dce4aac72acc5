package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/enrollment"
)

func (s *PgStorage) CreateBooking(ctx context.Context, b *enrollment.Booking) (*enrollment.Booking, error) {
	stored := *b

	q := sqlf.InsertInto("bookings").
		Set("member_id", b.MemberID).
		Set("class_id", b.ClassID).
		Set("booking_date", b.BookingDate).
		Set("status", b.Status).
		Set("notes", b.Notes).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func bookingQuery(b *enrollment.Booking) *sqlf.Stmt {
	return sqlf.From("bookings").
		Select("id").To(&b.ID).
		Select("member_id").To(&b.MemberID).
		Select("class_id").To(&b.ClassID).
		Select("booking_date").To(&b.BookingDate).
		Select("status").To(&b.Status).
		Select("notes").To(&b.Notes)
}

func (s *PgStorage) listBookings(ctx context.Context, whereClause string, whereArgs ...any) ([]*enrollment.Booking, error) {
	var tmp enrollment.Booking
	bookings := make([]*enrollment.Booking, 0)

	q := bookingQuery(&tmp).Where(whereClause, whereArgs...).OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		b := tmp
		bookings = append(bookings, &b)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return bookings, nil
}

func (s *PgStorage) ListBookingsByMember(ctx context.Context, memberID int) ([]*enrollment.Booking, error) {
	return s.listBookings(ctx, "member_id = ?", memberID)
}

func (s *PgStorage) ListBookingsByClass(ctx context.Context, classID int) ([]*enrollment.Booking, error) {
	return s.listBookings(ctx, "class_id = ?", classID)
}

func (s *PgStorage) UpdateBooking(ctx context.Context, id int, upd enrollment.BookingUpdate) (*enrollment.Booking, error) {
	var cur enrollment.Booking

	q := bookingQuery(&cur).Where("id = ?", id)
	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, enrollment.ErrBookingNotFound
		}
		return nil, storage.InternalError(err)
	}

	merged := upd.Apply(cur)

	log, _ := diff.Diff(cur, merged)
	if len(log) == 0 {
		return &merged, nil
	}

	uq := makeUpdateQuery(sqlf.Update("bookings").Where("id = ?", id), log)
	res, err := uq.Exec(ctx, s.db)
	if err := assertUpdated(res, err, enrollment.ErrBookingNotFound); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *PgStorage) CreatePayment(ctx context.Context, p *enrollment.Payment) (*enrollment.Payment, error) {
	stored := *p

	q := sqlf.InsertInto("payments").
		Set("member_id", p.MemberID).
		Set("amount", p.Amount).
		Set("payment_method", p.PaymentMethod).
		Set("payment_status", p.PaymentStatus).
		Set("payment_date", p.PaymentDate).
		Set("invoice_number", p.InvoiceNumber).
		Set("description", p.Description).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func paymentQuery(p *enrollment.Payment) *sqlf.Stmt {
	return sqlf.From("payments").
		Select("id").To(&p.ID).
		Select("member_id").To(&p.MemberID).
		Select("amount").To(&p.Amount).
		Select("payment_method").To(&p.PaymentMethod).
		Select("payment_status").To(&p.PaymentStatus).
		Select("payment_date").To(&p.PaymentDate).
		Select("invoice_number").To(&p.InvoiceNumber).
		Select("description").To(&p.Description)
}

func (s *PgStorage) listPayments(ctx context.Context, q *sqlf.Stmt, tmp *enrollment.Payment) ([]*enrollment.Payment, error) {
	payments := make([]*enrollment.Payment, 0)

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		p := *tmp
		payments = append(payments, &p)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return payments, nil
}

func (s *PgStorage) ListPaymentsByMember(ctx context.Context, memberID int) ([]*enrollment.Payment, error) {
	var tmp enrollment.Payment
	return s.listPayments(ctx, paymentQuery(&tmp).Where("member_id = ?", memberID).OrderBy("id"), &tmp)
}

func (s *PgStorage) ListPayments(ctx context.Context) ([]*enrollment.Payment, error) {
	var tmp enrollment.Payment
	return s.listPayments(ctx, paymentQuery(&tmp).OrderBy("id"), &tmp)
}

func (s *PgStorage) CreateProgress(ctx context.Context, p *enrollment.Progress) (*enrollment.Progress, error) {
	stored := *p

	q := sqlf.InsertInto("member_progress").
		Set("member_id", p.MemberID).
		Set("coach_id", p.CoachID).
		Set("stroke", p.Stroke).
		Set("progress", p.Progress).
		Set("notes", p.Notes).
		Set("evaluation_date", p.EvaluationDate).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func (s *PgStorage) ListProgressByMember(ctx context.Context, memberID int) ([]*enrollment.Progress, error) {
	var tmp enrollment.Progress
	entries := make([]*enrollment.Progress, 0)

	q := sqlf.From("member_progress").
		Select("id").To(&tmp.ID).
		Select("member_id").To(&tmp.MemberID).
		Select("coach_id").To(&tmp.CoachID).
		Select("stroke").To(&tmp.Stroke).
		Select("progress").To(&tmp.Progress).
		Select("notes").To(&tmp.Notes).
		Select("evaluation_date").To(&tmp.EvaluationDate).
		Where("member_id = ?", memberID).
		OrderBy("id")

	err := q.Query(ctx, s.db, func(_ *sql.Rows) {
		p := tmp
		entries = append(entries, &p)
	})
	if err != nil {
		return nil, storage.InternalError(err)
	}
	return entries, nil
}
