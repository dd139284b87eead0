package domain

import "time"

type Gallery struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"size:500" json:"description,omitempty"`
	Images       StringList `gorm:"type:text;not null" json:"images"`
	EventID      *string    `gorm:"size:36;index" json:"-"`
	Event        *Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
	UploadedByID string     `gorm:"size:36;not null;index" json:"-"`
	UploadedBy   *User      `gorm:"foreignKey:UploadedByID" json:"uploadedBy,omitempty"`
	Published    bool       `gorm:"not null;default:false;index" json:"published"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Gallery) TableName() string { return "galleries" }
