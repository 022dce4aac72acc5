package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) MountAdmin(g *echo.Group) {
	g.GET("/admin/stats", s.AdminStats, LoginRequired(s.authService.Authorizer), AdminRequired())
}

func (s *Server) AdminStats(c echo.Context) error {
	stats, err := s.adminService.Stats(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch admin stats")
	}
	return c.JSON(http.StatusOK, stats)
}
