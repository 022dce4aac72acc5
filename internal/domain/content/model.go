package content

import (
	"errors"
	"time"
)

var (
	ErrPostNotFound    = errors.New("blog post not found")
	ErrContactNotFound = errors.New("contact not found")
)

const (
	ContactNew     = "new"
	ContactRead    = "read"
	ContactReplied = "replied"
)

const EventContactReceived = "contact.received"

type BlogPost struct {
	ID            int       `json:"id" diff:"-"`
	Title         string    `json:"title" diff:"title"`
	Content       string    `json:"content" diff:"content"`
	Excerpt       string    `json:"excerpt" diff:"excerpt"`
	Author        string    `json:"author" diff:"author"`
	ImageURL      *string   `json:"imageUrl" diff:"image_url"`
	Category      string    `json:"category" diff:"category"`
	PublishedDate time.Time `json:"publishedDate" diff:"-"`
	Status        string    `json:"status" diff:"status"`
}

func NewBlogPost(title, contentBody, excerpt, author string, imageURL *string, category, status string) *BlogPost {
	if status == "" {
		status = "published"
	}
	return &BlogPost{
		Title:         title,
		Content:       contentBody,
		Excerpt:       excerpt,
		Author:        author,
		ImageURL:      imageURL,
		Category:      category,
		PublishedDate: time.Now().UTC(),
		Status:        status,
	}
}

type Contact struct {
	ID        int       `json:"id" diff:"-"`
	Name      string    `json:"name" diff:"name"`
	Email     string    `json:"email" diff:"email"`
	Phone     *string   `json:"phone" diff:"phone"`
	Subject   string    `json:"subject" diff:"subject"`
	Message   string    `json:"message" diff:"message"`
	Status    string    `json:"status" diff:"status"`
	CreatedAt time.Time `json:"createdAt" diff:"-"`
}

func NewContact(name, email string, phone *string, subject, message string) *Contact {
	return &Contact{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		Status:    ContactNew,
		CreatedAt: time.Now().UTC(),
	}
}

type ContactUpdate struct {
	Status *string
}

func (u ContactUpdate) Apply(c Contact) Contact {
	if u.Status != nil {
		c.Status = *u.Status
	}
	return c
}

type ContactReceivedEvent struct {
	At        time.Time
	ContactID int
	Email     string
	Subject   string
}

func (e ContactReceivedEvent) Type() string {
	return EventContactReceived
}

func (e ContactReceivedEvent) PublishedAt() time.Time {
	return e.At
}
