package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

func (s *Server) MountEnrollment(g *echo.Group) {
	loginRequired := LoginRequired(s.authService.Authorizer)

	g.POST("/bookings", s.CreateBooking, loginRequired)
	g.GET("/bookings/me", s.ListMyBookings, loginRequired)

	g.POST("/payments", s.CreatePayment, loginRequired)
	g.GET("/payments/me", s.ListMyPayments, loginRequired)
	g.GET("/payments", s.ListAllPayments, loginRequired, AdminRequired())

	g.GET("/progress/me", s.ListMyProgress, loginRequired)
	g.POST("/progress", s.CreateProgress, loginRequired)
}

type createBookingReq struct {
	ClassID int     `json:"classId" validate:"required"`
	Status  string  `json:"status" validate:"omitempty,oneof=confirmed cancelled pending"`
	Notes   *string `json:"notes" validate:"omitempty"`
}

func (s *Server) CreateBooking(c echo.Context) error {
	var b createBookingReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	claims := currentUser(c)

	booking, err := s.enrollmentService.CreateBooking(c.Request().Context(), claims.ID, b.ClassID, b.Status, b.Notes)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return JsonError(c, http.StatusNotFound, "Member not found")
		}
		return JsonError(c, http.StatusBadRequest, "Failed to create booking")
	}
	return c.JSON(http.StatusOK, booking)
}

func (s *Server) ListMyBookings(c echo.Context) error {
	claims := currentUser(c)

	bookings, err := s.enrollmentService.ListBookings(c.Request().Context(), claims.ID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return JsonError(c, http.StatusNotFound, "Member not found")
		}
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}

type createPaymentReq struct {
	Amount        string  `json:"amount" validate:"required,numeric"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	PaymentStatus string  `json:"paymentStatus" validate:"omitempty,oneof=pending completed failed"`
	InvoiceNumber *string `json:"invoiceNumber" validate:"omitempty"`
	Description   *string `json:"description" validate:"omitempty"`
}

func (s *Server) CreatePayment(c echo.Context) error {
	var b createPaymentReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	claims := currentUser(c)

	payment, err := s.enrollmentService.CreatePayment(
		c.Request().Context(),
		claims.ID,
		b.Amount,
		b.PaymentMethod,
		b.PaymentStatus,
		b.InvoiceNumber,
		b.Description,
	)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return JsonError(c, http.StatusNotFound, "Member not found")
		}
		return JsonError(c, http.StatusBadRequest, "Failed to create payment")
	}
	return c.JSON(http.StatusOK, payment)
}

func (s *Server) ListMyPayments(c echo.Context) error {
	claims := currentUser(c)

	payments, err := s.enrollmentService.ListPayments(c.Request().Context(), claims.ID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return JsonError(c, http.StatusNotFound, "Member not found")
		}
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch payments")
	}
	return c.JSON(http.StatusOK, payments)
}

func (s *Server) ListAllPayments(c echo.Context) error {
	payments, err := s.enrollmentService.ListAllPayments(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch payments")
	}
	return c.JSON(http.StatusOK, payments)
}

type createProgressReq struct {
	MemberID int     `json:"memberId" validate:"required"`
	CoachID  int     `json:"coachId" validate:"required"`
	Stroke   string  `json:"stroke" validate:"required,oneof=freestyle backstroke breaststroke butterfly"`
	Progress int     `json:"progress" validate:"min=0,max=100"`
	Notes    *string `json:"notes" validate:"omitempty"`
}

func (s *Server) CreateProgress(c echo.Context) error {
	var b createProgressReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	progress, err := s.enrollmentService.CreateProgress(
		c.Request().Context(),
		b.MemberID,
		b.CoachID,
		b.Stroke,
		b.Progress,
		b.Notes,
	)
	if err != nil {
		return JsonError(c, http.StatusBadRequest, "Failed to create progress entry")
	}
	return c.JSON(http.StatusOK, progress)
}

func (s *Server) ListMyProgress(c echo.Context) error {
	claims := currentUser(c)

	progress, err := s.enrollmentService.ListProgress(c.Request().Context(), claims.ID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return JsonError(c, http.StatusNotFound, "Member not found")
		}
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch progress")
	}
	return c.JSON(http.StatusOK, progress)
}
