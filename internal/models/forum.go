package models

import (
	"time"

	"gorm.io/gorm"
)

var ForumUserStatuses = []string{"active", "suspended"}

// ForumAuthor is the author snapshot shown on posts and replies.
type ForumAuthor struct {
	Name   string `gorm:"type:varchar(255)" json:"name"`
	Avatar string `gorm:"type:text" json:"avatar"`
	Badge  string `gorm:"type:varchar(50)" json:"badge"`
	Points int    `json:"points"`
}

type ForumPost struct {
	ID        string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title     string      `gorm:"type:varchar(255);not null" json:"title"`
	Content   string      `gorm:"type:text" json:"content"`
	Category  string      `gorm:"type:varchar(100);index" json:"category"`
	Tags      []string    `gorm:"serializer:json" json:"tags"`
	Author    ForumAuthor `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Replies   int         `json:"replies"`
	Views     int         `json:"views"`
	Likes     int         `json:"likes"`
	Pinned    bool        `json:"pinned"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}

func (p *ForumPost) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}

func (p ForumPost) Clone() ForumPost {
	p.Tags = cloneStrings(p.Tags)
	return p
}

// ForumReply belongs to a post through PostID; replies are kept flat.
type ForumReply struct {
	ID        string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	PostID    string      `gorm:"type:varchar(64);index;not null" json:"postId"`
	Author    ForumAuthor `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Content   string      `gorm:"type:text;not null" json:"content"`
	Likes     int         `json:"likes"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}

func (ForumReply) TableName() string {
	return "forum_replies"
}

func (r *ForumReply) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}

type ForumUser struct {
	ID       string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Email    string    `gorm:"type:varchar(255)" json:"email"`
	Badge    string    `gorm:"type:varchar(50)" json:"badge"`
	Points   int       `json:"points"`
	Posts    int       `json:"posts"`
	Status   string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

func (ForumUser) TableName() string {
	return "forum_users"
}

func (u *ForumUser) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	if u.Status == "" {
		u.Status = "active"
	}
	return nil
}
