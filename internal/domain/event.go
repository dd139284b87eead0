package domain

import "time"

type Event struct {
	ID                   string     `gorm:"primaryKey;size:36" json:"id"`
	Title                string     `gorm:"size:200;not null" json:"title"`
	Description          string     `gorm:"type:text;not null" json:"description"`
	Date                 time.Time  `gorm:"not null;index" json:"date"`
	Location             string     `gorm:"size:200;not null" json:"location"`
	OrganizerID          string     `gorm:"size:36;not null;index" json:"-"`
	Organizer            *User      `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Image                string     `gorm:"size:255" json:"image,omitempty"`
	Category             string     `gorm:"size:64;not null" json:"category"`
	RegistrationRequired bool       `gorm:"not null;default:false" json:"registrationRequired"`
	MaxParticipants      *int       `json:"maxParticipants,omitempty"`
	RegisteredUsers      []User     `gorm:"many2many:event_registrations" json:"registeredUsers"`
	Published            bool       `gorm:"not null;default:false" json:"published"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func (Event) TableName() string { return "events" }

// EventRegistration is the join row behind Event.RegisteredUsers. The
// composite primary key keeps a user from appearing twice no matter how
// requests interleave.
type EventRegistration struct {
	EventID   string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
}

func (EventRegistration) TableName() string { return "event_registrations" }
