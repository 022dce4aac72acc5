package memstore

import (
	"time"

	"github.com/mmsswimming/go_academy_backend/internal/domain/catalog"
	"github.com/mmsswimming/go_academy_backend/internal/domain/coach"
	"github.com/mmsswimming/go_academy_backend/internal/domain/content"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

// seed loads the fixed demo data the academy site ships with: three
// programs, the admin account, two coaches with their user accounts, two
// blog posts and two scheduled classes. Identifiers are assigned by the
// same counters regular creates use, so demo ids are stable.
func (s *MemStorage) seed() {
	d := s.data

	kids := &catalog.Program{
		ID:          d.programSeq,
		Name:        "Kids Program",
		Description: "Fun and safe swimming lessons for children with water safety focus",
		AgeGroup:    "4-12 years",
		Level:       "beginner",
		Price:       "800",
		Duration:    45,
		Capacity:    8,
		Status:      "active",
	}
	d.programSeq++
	d.programs[kids.ID] = kids

	adult := &catalog.Program{
		ID:          d.programSeq,
		Name:        "Adult Program",
		Description: "Professional swimming instruction for beginners to advanced levels",
		AgeGroup:    "18+",
		Level:       "all",
		Price:       "1200",
		Duration:    60,
		Capacity:    6,
		Status:      "active",
	}
	d.programSeq++
	d.programs[adult.ID] = adult

	competitive := &catalog.Program{
		ID:          d.programSeq,
		Name:        "Competitive Training",
		Description: "Elite training program for competitive swimmers and athletes",
		AgeGroup:    "12+",
		Level:       "advanced",
		Price:       "2000",
		Duration:    90,
		Capacity:    4,
		Status:      "active",
	}
	d.programSeq++
	d.programs[competitive.ID] = competitive

	// Demo accounts carry a placeholder hash; they are not loginable until
	// a real password is set.
	admin := &user.User{
		ID:           d.userSeq,
		Email:        "admin@mmsswimming.com",
		PasswordHash: "$2b$10$hashedpassword",
		Role:         user.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	d.userSeq++
	d.users[admin.ID] = admin

	coachUser1 := &user.User{
		ID:           d.userSeq,
		Email:        "ahmed.hassan@mmsswimming.com",
		PasswordHash: "$2b$10$hashedpassword",
		Role:         user.RoleCoach,
		CreatedAt:    time.Now().UTC(),
	}
	d.userSeq++
	d.users[coachUser1.ID] = coachUser1

	coach1 := &coach.Coach{
		ID:             d.coachSeq,
		UserID:         coachUser1.ID,
		FullName:       "Ahmed Hassan",
		Phone:          "+20 123 456 7890",
		Experience:     15,
		Certifications: []string{"Olympic training certified", "Water Safety Instructor"},
		Specialties:    []string{"Freestyle", "Butterfly"},
		Bio:            strPtr("15+ years experience, Olympic training certified"),
		ImageURL:       strPtr("https://images.unsplash.com/photo-1566492031773-4f4e44671857?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
		Status:         "active",
	}
	d.coachSeq++
	d.coaches[coach1.ID] = coach1

	coachUser2 := &user.User{
		ID:           d.userSeq,
		Email:        "sarah.mohamed@mmsswimming.com",
		PasswordHash: "$2b$10$hashedpassword",
		Role:         user.RoleCoach,
		CreatedAt:    time.Now().UTC(),
	}
	d.userSeq++
	d.users[coachUser2.ID] = coachUser2

	coach2 := &coach.Coach{
		ID:             d.coachSeq,
		UserID:         coachUser2.ID,
		FullName:       "Sarah Mohamed",
		Phone:          "+20 123 456 7891",
		Experience:     12,
		Certifications: []string{"Water Safety certified", "Kids Swimming Instructor"},
		Specialties:    []string{"Backstroke", "Breaststroke"},
		Bio:            strPtr("12+ years experience, Water Safety certified"),
		ImageURL:       strPtr("https://images.unsplash.com/photo-1494790108755-2616b667fcce?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"),
		Status:         "active",
	}
	d.coachSeq++
	d.coaches[coach2.ID] = coach2

	post1 := &content.BlogPost{
		ID:            d.postSeq,
		Title:         "Mastering the Freestyle Stroke",
		Content:       "Learn the fundamental techniques for perfect freestyle swimming...",
		Excerpt:       "Learn the fundamental techniques for perfect freestyle swimming, from body position to breathing patterns.",
		Author:        "Ahmed Hassan",
		ImageURL:      strPtr("https://images.unsplash.com/photo-1530549387789-4c1017266635?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300"),
		Category:      "Technique",
		PublishedDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Status:        "published",
	}
	d.postSeq++
	d.posts[post1.ID] = post1

	post2 := &content.BlogPost{
		ID:            d.postSeq,
		Title:         "Water Safety for Kids",
		Content:       "Essential safety tips every parent should know...",
		Excerpt:       "Essential safety tips every parent should know when teaching children to swim and enjoy water activities.",
		Author:        "Sarah Mohamed",
		ImageURL:      strPtr("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300"),
		Category:      "Safety",
		PublishedDate: time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		Status:        "published",
	}
	d.postSeq++
	d.posts[post2.ID] = post2

	class1 := &catalog.Class{
		ID:                d.classSeq,
		ProgramID:         kids.ID,
		CoachID:           coach2.ID,
		DayOfWeek:         "Monday",
		StartTime:         "09:00",
		EndTime:           "09:45",
		Capacity:          8,
		CurrentEnrollment: 5,
		Status:            "active",
	}
	d.classSeq++
	d.classes[class1.ID] = class1

	class2 := &catalog.Class{
		ID:                d.classSeq,
		ProgramID:         adult.ID,
		CoachID:           coach1.ID,
		DayOfWeek:         "Tuesday",
		StartTime:         "09:00",
		EndTime:           "10:00",
		Capacity:          6,
		CurrentEnrollment: 4,
		Status:            "active",
	}
	d.classSeq++
	d.classes[class2.ID] = class2
}

func strPtr(s string) *string {
	return &s
}
