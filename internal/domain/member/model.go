package member

import (
	"errors"
	"time"
)

var ErrMemberNotFound = errors.New("member not found")

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

type Member struct {
	ID               int       `json:"id" diff:"-"`
	UserID           int       `json:"userId" diff:"-"`
	FullName         string    `json:"fullName" diff:"full_name"`
	Phone            string    `json:"phone" diff:"phone"`
	Age              int       `json:"age" diff:"age"`
	SwimmingLevel    string    `json:"swimmingLevel" diff:"swimming_level"`
	MedicalInfo      *string   `json:"medicalInfo" diff:"medical_info"`
	EmergencyContact *string   `json:"emergencyContact" diff:"emergency_contact"`
	Program          string    `json:"program" diff:"program"`
	RegistrationDate time.Time `json:"registrationDate" diff:"-"`
	Status           string    `json:"status" diff:"status"`
}

func New(
	userID int,
	fullName string,
	phone string,
	age int,
	swimmingLevel string,
	program string,
	medicalInfo *string,
	emergencyContact *string,
) *Member {
	return &Member{
		UserID:           userID,
		FullName:         fullName,
		Phone:            phone,
		Age:              age,
		SwimmingLevel:    swimmingLevel,
		MedicalInfo:      medicalInfo,
		EmergencyContact: emergencyContact,
		Program:          program,
		RegistrationDate: time.Now().UTC(),
		Status:           StatusActive,
	}
}

// Update carries a partial member change. Nil fields are left untouched.
type Update struct {
	FullName         *string
	Phone            *string
	Age              *int
	SwimmingLevel    *string
	MedicalInfo      *string
	EmergencyContact *string
	Program          *string
	Status           *string
}

// Apply merges the update into a copy of m and returns it.
func (u Update) Apply(m Member) Member {
	if u.FullName != nil {
		m.FullName = *u.FullName
	}
	if u.Phone != nil {
		m.Phone = *u.Phone
	}
	if u.Age != nil {
		m.Age = *u.Age
	}
	if u.SwimmingLevel != nil {
		m.SwimmingLevel = *u.SwimmingLevel
	}
	if u.MedicalInfo != nil {
		m.MedicalInfo = u.MedicalInfo
	}
	if u.EmergencyContact != nil {
		m.EmergencyContact = u.EmergencyContact
	}
	if u.Program != nil {
		m.Program = *u.Program
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	return m
}
