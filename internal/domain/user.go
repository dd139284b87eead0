package domain

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:student" json:"role"`
	StudentID    string    `gorm:"size:32" json:"studentId,omitempty"`
	Phone        string    `gorm:"size:32" json:"phone,omitempty"`
	Bio          string    `gorm:"size:500" json:"bio,omitempty"`
	Avatar       string    `gorm:"size:255" json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }
