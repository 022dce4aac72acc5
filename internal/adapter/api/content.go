package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
)

func (s *Server) MountContent(g *echo.Group) {
	loginRequired := LoginRequired(s.authService.Authorizer)

	g.GET("/blog", s.ListBlogPosts)
	g.GET("/blog/:id", s.GetBlogPost)
	g.POST("/blog", s.CreateBlogPost, loginRequired, AdminRequired())

	g.POST("/contact", s.SubmitContact)
	g.GET("/contacts", s.ListContacts, loginRequired, AdminRequired())
}

func (s *Server) ListBlogPosts(c echo.Context) error {
	posts, err := s.contentService.ListBlogPosts(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch blog posts")
	}
	return c.JSON(http.StatusOK, posts)
}

type getBlogPostReq struct {
	ID int `param:"id"`
}

func (s *Server) GetBlogPost(c echo.Context) error {
	var b getBlogPostReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	post, err := s.contentService.GetBlogPostByID(c.Request().Context(), b.ID)
	if err != nil {
		if errors.Is(err, content.ErrPostNotFound) {
			return JsonError(c, http.StatusNotFound, "Blog post not found")
		}
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch blog post")
	}
	return c.JSON(http.StatusOK, post)
}

type createBlogPostReq struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Excerpt  string  `json:"excerpt" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	Category string  `json:"category" validate:"required"`
	Status   string  `json:"status" validate:"omitempty,oneof=draft published"`
}

func (s *Server) CreateBlogPost(c echo.Context) error {
	var b createBlogPostReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	post, err := s.contentService.CreateBlogPost(
		c.Request().Context(),
		content.NewBlogPost(b.Title, b.Content, b.Excerpt, b.Author, b.ImageURL, b.Category, b.Status),
	)
	if err != nil {
		return JsonError(c, http.StatusBadRequest, "Failed to create blog post")
	}
	return c.JSON(http.StatusOK, post)
}

type submitContactReq struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty"`
	Subject string  `json:"subject" validate:"required"`
	Message string  `json:"message" validate:"required"`
}

func (s *Server) SubmitContact(c echo.Context) error {
	var b submitContactReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	contactEntry, err := s.contentService.SubmitContact(
		c.Request().Context(),
		content.NewContact(b.Name, b.Email, b.Phone, b.Subject, b.Message),
	)
	if err != nil {
		return JsonError(c, http.StatusBadRequest, "Failed to submit contact form")
	}
	return c.JSON(http.StatusOK, contactEntry)
}

func (s *Server) ListContacts(c echo.Context) error {
	contacts, err := s.contentService.ListContacts(c.Request().Context())
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, "Failed to fetch contacts")
	}
	return c.JSON(http.StatusOK, contacts)
}
