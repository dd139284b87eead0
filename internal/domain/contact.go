package domain

import "time"

const (
	ContactPending = "pending"
	ContactRead    = "read"
	ContactReplied = "replied"
)

type Contact struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Email       string    `gorm:"size:191;not null" json:"email"`
	Phone       string    `gorm:"size:32" json:"phone,omitempty"`
	Subject     string    `gorm:"size:200;not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Status      string    `gorm:"size:16;not null;default:pending;index" json:"status"`
	Reply       string    `gorm:"type:text" json:"reply,omitempty"`
	RepliedByID *string   `gorm:"size:36" json:"-"`
	RepliedBy   *User     `gorm:"foreignKey:RepliedByID" json:"repliedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Contact) TableName() string { return "contacts" }
