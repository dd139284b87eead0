package domain

import "time"

const (
	CategoryArticle      = "article"
	CategoryAnnouncement = "announcement"
	CategoryUpdate       = "update"
)

type BlogPost struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	AuthorID      string     `gorm:"size:36;not null;index" json:"-"`
	Author        *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Category      string     `gorm:"size:32;not null;default:article;index" json:"category"`
	Tags          StringList `gorm:"type:text" json:"tags"`
	FeaturedImage string     `gorm:"size:255" json:"featuredImage,omitempty"`
	Published     bool       `gorm:"not null;default:false;index" json:"published"`
	Views         int        `gorm:"not null;default:0" json:"views"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (BlogPost) TableName() string { return "blog_posts" }
