package coach

import (
	"errors"
)

var ErrCoachNotFound = errors.New("coach not found")

type Coach struct {
	ID             int      `json:"id" diff:"-"`
	UserID         int      `json:"userId" diff:"-"`
	FullName       string   `json:"fullName" diff:"full_name"`
	Phone          string   `json:"phone" diff:"phone"`
	Experience     int      `json:"experience" diff:"experience"`
	Certifications []string `json:"certifications" diff:"-"`
	Specialties    []string `json:"specialties" diff:"-"`
	Bio            *string  `json:"bio" diff:"bio"`
	ImageURL       *string  `json:"imageUrl" diff:"image_url"`
	Status         string   `json:"status" diff:"status"`
}

func New(
	userID int,
	fullName string,
	phone string,
	experience int,
	certifications []string,
	specialties []string,
	bio *string,
	imageURL *string,
) *Coach {
	return &Coach{
		UserID:         userID,
		FullName:       fullName,
		Phone:          phone,
		Experience:     experience,
		Certifications: certifications,
		Specialties:    specialties,
		Bio:            bio,
		ImageURL:       imageURL,
		Status:         "active",
	}
}

type Update struct {
	FullName       *string
	Phone          *string
	Experience     *int
	Certifications []string
	Specialties    []string
	Bio            *string
	ImageURL       *string
	Status         *string
}

func (u Update) Apply(c Coach) Coach {
	if u.FullName != nil {
		c.FullName = *u.FullName
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.Experience != nil {
		c.Experience = *u.Experience
	}
	if u.Certifications != nil {
		c.Certifications = u.Certifications
	}
	if u.Specialties != nil {
		c.Specialties = u.Specialties
	}
	if u.Bio != nil {
		c.Bio = u.Bio
	}
	if u.ImageURL != nil {
		c.ImageURL = u.ImageURL
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	return c
}
