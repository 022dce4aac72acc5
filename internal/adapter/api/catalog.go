package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) MountCatalog(g *echo.Group) {
	g.GET("/coaches", s.ListCoaches)
	g.GET("/programs", s.ListPrograms)
	g.GET("/classes", s.ListClasses)
}

func (s *Server) ListCoaches(c echo.Context) error {
	coaches, err := s.catalogService.ListCoaches(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch coaches")
	}
	return c.JSON(http.StatusOK, coaches)
}

func (s *Server) ListPrograms(c echo.Context) error {
	programs, err := s.catalogService.ListPrograms(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch programs")
	}
	return c.JSON(http.StatusOK, programs)
}

func (s *Server) ListClasses(c echo.Context) error {
	classes, err := s.catalogService.ListClasses(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch classes")
	}
	return c.JSON(http.StatusOK, classes)
}
