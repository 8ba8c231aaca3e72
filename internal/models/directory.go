package models

import (
	"time"

	"gorm.io/gorm"
)

var MentorStatuses = []string{"active", "inactive"}

type Mentor struct {
	ID              string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name            string   `gorm:"type:varchar(255);not null" json:"name"`
	Title           string   `gorm:"type:varchar(255)" json:"title"`
	Organization    string   `gorm:"type:varchar(255)" json:"organization"`
	Category        string   `gorm:"type:varchar(100);index" json:"category"`
	Expertise       []string `gorm:"serializer:json" json:"expertise"`
	Bio             string   `gorm:"type:text" json:"bio"`
	Avatar          string   `gorm:"type:text" json:"avatar"`
	Rating          float64  `json:"rating"`
	Sessions        int      `json:"sessions"`
	ExperienceYears int      `json:"experienceYears"`
	Available       bool     `json:"available"`
	Status          string   `gorm:"type:varchar(20);default:'active'" json:"status"`
}

func (Mentor) TableName() string {
	return "mentors"
}

func (m *Mentor) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}

func (m Mentor) Clone() Mentor {
	m.Expertise = cloneStrings(m.Expertise)
	return m
}

var VideoLevels = []string{"beginner", "intermediate", "advanced"}

var VideoStatuses = []string{"published", "draft"}

type VideoLecture struct {
	ID              string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Instructor      string    `gorm:"type:varchar(255)" json:"instructor"`
	Category        string    `gorm:"type:varchar(100);index" json:"category"`
	Level           string    `gorm:"type:varchar(20)" json:"level"`
	DurationMinutes int       `json:"duration"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	VideoURL        string    `gorm:"type:text" json:"videoUrl"`
	Thumbnail       string    `gorm:"type:text" json:"thumbnail"`
	Status          string    `gorm:"type:varchar(20);default:'published'" json:"status"`
	PublishedAt     time.Time `json:"publishedAt"`
}

func (VideoLecture) TableName() string {
	return "video_lectures"
}

func (v *VideoLecture) BeforeCreate(tx *gorm.DB) error {
	ensureID(&v.ID)
	return nil
}

var PaperStatuses = []string{"draft", "under_review", "published", "rejected"}

type Paper struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Authors     []string  `gorm:"serializer:json" json:"authors"`
	Abstract    string    `gorm:"type:text" json:"abstract"`
	Category    string    `gorm:"type:varchar(100);index" json:"category"`
	Status      string    `gorm:"type:varchar(20);default:'draft'" json:"status"`
	Downloads   int       `json:"downloads"`
	FileURL     string    `gorm:"type:text" json:"fileUrl"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (Paper) TableName() string {
	return "papers"
}

func (p *Paper) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	return nil
}

func (p Paper) Clone() Paper {
	p.Authors = cloneStrings(p.Authors)
	return p
}
