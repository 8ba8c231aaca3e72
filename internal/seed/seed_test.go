package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIntoIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := Into(context.Background(), db, zerolog.Nop()); err != nil {
			t.Fatalf("Into() run %d error = %v", i+1, err)
		}
	}

	var count int64
	db.Model(&models.Ticket{}).Count(&count)
	if int(count) != len(Tickets()) {
		t.Fatalf("tickets = %d, want %d", count, len(Tickets()))
	}

	var post models.ForumPost
	if err := db.First(&post, "id = ?", "post-1").Error; err != nil {
		t.Fatalf("First(post-1) error = %v", err)
	}
	if post.Author.Name != "Priya Sharma" || len(post.Tags) != 2 {
		t.Fatalf("post-1 = %+v", post)
	}
}

func TestForumCountersAreConsistent(t *testing.T) {
	replies := map[string]int{}
	for _, r := range ForumReplies() {
		replies[r.PostID]++
	}
	for _, p := range ForumPosts() {
		if p.Replies != replies[p.ID] {
			t.Fatalf("post %s replies = %d, want %d", p.ID, p.Replies, replies[p.ID])
		}
	}
}

func TestCauseProgressIsDerived(t *testing.T) {
	for _, c := range Causes() {
		if c.Progress != models.ProgressOf(c.RaisedAmount, c.GoalAmount) {
			t.Fatalf("cause %s progress = %d", c.ID, c.Progress)
		}
	}
}
