package catalog

import (
	"errors"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrClassNotFound   = errors.New("class not found")
)

// Program price is a decimal string ("800", "1200.50") to keep the wire
// format stable for clients and to avoid float accumulation in revenue sums.
type Program struct {
	ID          int    `json:"id" diff:"-"`
	Name        string `json:"name" diff:"name"`
	Description string `json:"description" diff:"description"`
	AgeGroup    string `json:"ageGroup" diff:"age_group"`
	Level       string `json:"level" diff:"level"`
	Price       string `json:"price" diff:"price"`
	Duration    int    `json:"duration" diff:"duration"`
	Capacity    int    `json:"capacity" diff:"capacity"`
	Status      string `json:"status" diff:"status"`
}

func NewProgram(name, description, ageGroup, level, price string, duration, capacity int, status string) *Program {
	if status == "" {
		status = "active"
	}
	return &Program{
		Name:        name,
		Description: description,
		AgeGroup:    ageGroup,
		Level:       level,
		Price:       price,
		Duration:    duration,
		Capacity:    capacity,
		Status:      status,
	}
}

type Class struct {
	ID                int    `json:"id" diff:"-"`
	ProgramID         int    `json:"programId" diff:"program_id"`
	CoachID           int    `json:"coachId" diff:"coach_id"`
	DayOfWeek         string `json:"dayOfWeek" diff:"day_of_week"`
	StartTime         string `json:"startTime" diff:"start_time"`
	EndTime           string `json:"endTime" diff:"end_time"`
	Capacity          int    `json:"capacity" diff:"capacity"`
	CurrentEnrollment int    `json:"currentEnrollment" diff:"current_enrollment"`
	Status            string `json:"status" diff:"status"`
}

func NewClass(programID, coachID int, dayOfWeek, startTime, endTime string, capacity, currentEnrollment int, status string) *Class {
	if status == "" {
		status = "active"
	}
	return &Class{
		ProgramID:         programID,
		CoachID:           coachID,
		DayOfWeek:         dayOfWeek,
		StartTime:         startTime,
		EndTime:           endTime,
		Capacity:          capacity,
		CurrentEnrollment: currentEnrollment,
		Status:            status,
	}
}
