package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	CauseStatusActive    = "active"
	CauseStatusPaused    = "paused"
	CauseStatusCompleted = "completed"
)

var CauseStatuses = []string{CauseStatusActive, CauseStatusPaused, CauseStatusCompleted}

// Cause is a fundraising cause. Progress is always derived from the amounts.
type Cause struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)" json:"_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"type:varchar(100);index" json:"category"`
	Progress     int       `json:"progress"`
	RaisedAmount float64   `json:"raisedAmount"`
	GoalAmount   float64   `json:"goalAmount"`
	Image        string    `gorm:"type:text" json:"image"`
	Status       string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Cause) TableName() string {
	return "causes"
}

func (c *Cause) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	if c.Status == "" {
		c.Status = CauseStatusActive
	}
	return nil
}

// RecomputeProgress sets Progress from RaisedAmount and GoalAmount.
func (c *Cause) RecomputeProgress() {
	c.Progress = ProgressOf(c.RaisedAmount, c.GoalAmount)
}

// ProgressOf returns round(raised/goal*100) clamped to [0,100]. A goal of
// zero or less yields 0.
func ProgressOf(raised, goal float64) int {
	if goal <= 0 || math.IsNaN(raised) || math.IsNaN(goal) {
		return 0
	}
	p := math.Round(raised / goal * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(p)
}

// CauseHero is the singleton banner shown above the causes list.
type CauseHero struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"_id,omitempty"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Subtitle    string    `gorm:"type:varchar(255)" json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image"`
	VideoURL    string    `gorm:"type:text" json:"video"`
	CTAText     string    `gorm:"type:varchar(100)" json:"ctaText"`
	CTALink     string    `gorm:"type:text" json:"ctaLink"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CauseHero) TableName() string {
	return "cause_heroes"
}

// HeroID is the fixed key of the hero row in the local store.
const HeroID = "default"
