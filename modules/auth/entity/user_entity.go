package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// Departments mirror the closed set students pick from at signup.
var Departments = []string{
	"Computer Science",
	"Electrical Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Business Administration",
	"Other",
}

func ValidDepartment(d string) bool {
	for _, v := range Departments {
		if v == d {
			return true
		}
	}
	return false
}

type User struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Email      string     `db:"email" json:"email"`
	Password   string     `db:"password" json:"-"`
	Role       Role       `db:"role" json:"role"`
	Phone      *string    `db:"phone" json:"phone,omitempty"`
	StudentID  *string    `db:"student_id" json:"studentId,omitempty"`
	Department *string    `db:"department" json:"department,omitempty"`
	LastLogin  *time.Time `db:"last_login" json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updatedAt"`
}
