package enrollment

import (
	"errors"
	"time"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingPending   = "pending"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

const EventBookingCreated = "booking.created"

type Booking struct {
	ID          int       `json:"id" diff:"-"`
	MemberID    int       `json:"memberId" diff:"-"`
	ClassID     int       `json:"classId" diff:"class_id"`
	BookingDate time.Time `json:"bookingDate" diff:"-"`
	Status      string    `json:"status" diff:"status"`
	Notes       *string   `json:"notes" diff:"notes"`
}

func NewBooking(memberID, classID int, status string, notes *string) *Booking {
	if status == "" {
		status = BookingConfirmed
	}
	return &Booking{
		MemberID:    memberID,
		ClassID:     classID,
		BookingDate: time.Now().UTC(),
		Status:      status,
		Notes:       notes,
	}
}

type BookingUpdate struct {
	ClassID *int
	Status  *string
	Notes   *string
}

func (u BookingUpdate) Apply(b Booking) Booking {
	if u.ClassID != nil {
		b.ClassID = *u.ClassID
	}
	if u.Status != nil {
		b.Status = *u.Status
	}
	if u.Notes != nil {
		b.Notes = u.Notes
	}
	return b
}

// Payment amount is a decimal string, same representation as catalog prices.
type Payment struct {
	ID            int       `json:"id" diff:"-"`
	MemberID      int       `json:"memberId" diff:"-"`
	Amount        string    `json:"amount" diff:"amount"`
	PaymentMethod string    `json:"paymentMethod" diff:"payment_method"`
	PaymentStatus string    `json:"paymentStatus" diff:"payment_status"`
	PaymentDate   time.Time `json:"paymentDate" diff:"-"`
	InvoiceNumber *string   `json:"invoiceNumber" diff:"invoice_number"`
	Description   *string   `json:"description" diff:"description"`
}

func NewPayment(memberID int, amount, method, status string, invoiceNumber, description *string) *Payment {
	if status == "" {
		status = PaymentPending
	}
	return &Payment{
		MemberID:      memberID,
		Amount:        amount,
		PaymentMethod: method,
		PaymentStatus: status,
		PaymentDate:   time.Now().UTC(),
		InvoiceNumber: invoiceNumber,
		Description:   description,
	}
}

// Progress is a coach's per-stroke evaluation of a member, 0-100.
type Progress struct {
	ID             int       `json:"id" diff:"-"`
	MemberID       int       `json:"memberId" diff:"-"`
	CoachID        int       `json:"coachId" diff:"coach_id"`
	Stroke         string    `json:"stroke" diff:"stroke"`
	Progress       int       `json:"progress" diff:"progress"`
	Notes          *string   `json:"notes" diff:"notes"`
	EvaluationDate time.Time `json:"evaluationDate" diff:"-"`
}

func NewProgress(memberID, coachID int, stroke string, progress int, notes *string) *Progress {
	return &Progress{
		MemberID:       memberID,
		CoachID:        coachID,
		Stroke:         stroke,
		Progress:       progress,
		Notes:          notes,
		EvaluationDate: time.Now().UTC(),
	}
}

type BookingCreatedEvent struct {
	At        time.Time
	BookingID int
	MemberID  int
	ClassID   int
}

func (e BookingCreatedEvent) Type() string {
	return EventBookingCreated
}

func (e BookingCreatedEvent) PublishedAt() time.Time {
	return e.At
}
