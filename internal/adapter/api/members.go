package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmsswimming/go_academy_backend/internal/domain/member"
)

func (s *Server) MountMembers(g *echo.Group) {
	loginRequired := LoginRequired(s.authService.Authorizer)

	g.GET("/members", s.ListMembers, loginRequired, AdminRequired())
	g.GET("/members/me", s.GetMyMember, loginRequired)
}

func (s *Server) ListMembers(c echo.Context) error {
	members, err := s.memberService.List(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch members")
	}
	return c.JSON(http.StatusOK, members)
}

func (s *Server) GetMyMember(c echo.Context) error {
	claims := currentUser(c)

	m, err := s.memberService.GetByUserID(c.Request().Context(), claims.ID)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			return JsonError(c, http.StatusNotFound, "Member not found")
		}
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch member data")
	}
	return c.JSON(http.StatusOK, m)
}
