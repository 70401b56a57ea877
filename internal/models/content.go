package models

import "time"

// Post is a blog article.
type Post struct {
	Record
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"not null" json:"title"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Category    string     `gorm:"index" json:"category"`
	Author      string     `json:"author"`
	CoverImage  string     `json:"cover_image"`
	Views       int64      `gorm:"not null;default:0" json:"views"`
	Citations   int64      `gorm:"not null;default:0" json:"citations"`
	Published   bool       `gorm:"index" json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (Post) TableName() string { return "posts" }

// PostCategoryCount is a category with the number of published posts in it.
type PostCategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CompanyNews is a press item shown in the news section.
type CompanyNews struct {
	Record
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"not null" json:"title"`
	Summary     string     `gorm:"type:text" json:"summary"`
	Content     string     `gorm:"type:text" json:"content"`
	Image       string     `json:"image"`
	Published   bool       `gorm:"index" json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (CompanyNews) TableName() string { return "company_news" }
