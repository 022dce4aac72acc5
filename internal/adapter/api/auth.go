package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"

	"github.com/mmsswimming/go_academy_backend/internal/app/auth"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func (s *Server) MountAuth(g *echo.Group) {
	authRoutes := g.Group("/auth")

	authRoutes.POST("/register", s.Register)
	authRoutes.POST("/login", s.Login)
}

type userResp struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type registerReq struct {
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=6"`
	FullName         string  `json:"fullName" validate:"required,min=2"`
	Phone            string  `json:"phone" validate:"required,min=10"`
	Age              int     `json:"age" validate:"required,min=4,max=100"`
	SwimmingLevel    string  `json:"swimmingLevel" validate:"required,oneof=beginner intermediate advanced competitive"`
	Program          string  `json:"program" validate:"required,oneof=kids adult competitive"`
	MedicalInfo      *string `json:"medicalInfo" validate:"omitempty"`
	EmergencyContact *string `json:"emergencyContact" validate:"omitempty"`
}

type registerResp struct {
	User   userResp `json:"user"`
	Member any      `json:"member"`
	Token  string   `json:"token"`
}

func (s *Server) Register(c echo.Context) error {
	var b registerReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	res, err := s.authService.Register(c.Request().Context(), auth.Registration{
		Email:            b.Email,
		Password:         b.Password,
		FullName:         b.FullName,
		Phone:            b.Phone,
		Age:              b.Age,
		SwimmingLevel:    b.SwimmingLevel,
		Program:          b.Program,
		MedicalInfo:      b.MedicalInfo,
		EmergencyContact: b.EmergencyContact,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserExists) {
			return JsonError(c, http.StatusBadRequest, "User already exists")
		}
		return JsonError(c, http.StatusInternalServerError, "Registration failed")
	}

	return c.JSON(http.StatusOK, registerResp{
		User: userResp{
			ID:    res.User.ID,
			Email: res.User.Email,
			Role:  res.User.Role,
		},
		Member: res.Member,
		Token:  res.Token,
	})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginResp struct {
	User    userResp `json:"user"`
	Profile any      `json:"profile"`
	Token   string   `json:"token"`
}

func (s *Server) Login(c echo.Context) error {
	var b loginReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	device := parseDevice(c)

	res, err := s.authService.Login(c.Request().Context(), b.Email, b.Password, device)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return JsonError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return JsonError(c, http.StatusInternalServerError, "Login failed")
	}

	return c.JSON(http.StatusOK, loginResp{
		User: userResp{
			ID:    res.User.ID,
			Email: res.User.Email,
			Role:  res.User.Role,
		},
		Profile: res.Profile,
		Token:   res.Token,
	})
}

func parseDevice(c echo.Context) user.Device {
	agent := useragent.Parse(c.Request().UserAgent())

	ipAddress := c.Request().RemoteAddr
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		ipAddress = fwd
	}

	return user.Device{
		Browser:   agent.Name,
		OS:        agent.OS,
		Model:     agent.Device,
		IPAddress: ipAddress,
	}
}
