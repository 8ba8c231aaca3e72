package resources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zechsoft/new-trust-sub003/internal/config"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"github.com/zechsoft/new-trust-sub003/internal/seed"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func memorySet(t *testing.T) *Set {
	t.Helper()
	cfg := &config.Config{DataMode: config.DataModeMemory, TicketMaxMessages: 3}
	s := New(cfg, Backends{}, zerolog.Nop())
	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	return s
}

func TestSearchFindsPostByAuthor(t *testing.T) {
	s := memorySet(t)

	page := s.Posts.View(lr.Query{Search: "priya"})
	if page.Count == 0 {
		t.Fatal("search priya returned no posts")
	}
	for _, p := range page.Items {
		if p.Author.Name != "Priya Sharma" {
			t.Fatalf("unexpected post %q by %q", p.Title, p.Author.Name)
		}
	}
}

func TestResolvedTicketFilter(t *testing.T) {
	s := memorySet(t)

	page := s.Tickets.View(lr.Query{Status: "resolved"})
	if page.Count != 2 {
		t.Fatalf("resolved tickets = %d, want 2", page.Count)
	}
	for _, tk := range page.Items {
		if tk.Status != models.TicketStatusResolved {
			t.Fatalf("ticket %s has status %q", tk.ID, tk.Status)
		}
	}
	if got := page.Stats["resolved"]; got != 2 {
		t.Fatalf("stats[resolved] = %v, want 2", got)
	}
}

func TestCauseProgressFollowsEdits(t *testing.T) {
	s := memorySet(t)

	c, ok := s.Causes.Find("cause-1")
	if !ok || c.Progress != 45 {
		t.Fatalf("cause-1 progress = %d, want 45", c.Progress)
	}
	updated, err := s.Causes.Mutate(context.Background(), "cause-1", func(c *models.Cause) error {
		c.RaisedAmount = 9999
		c.Progress = 3
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate() error = %v", err)
	}
	if updated.Progress != 100 {
		t.Fatalf("progress after edit = %d, want 100", updated.Progress)
	}
}

func TestCauseValidation(t *testing.T) {
	s := memorySet(t)

	_, err := s.Causes.Create(context.Background(), models.Cause{Title: "Flood relief", Category: "relief", GoalAmount: -5})
	var ve *lr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "goalAmount" {
		t.Fatalf("Create() error = %v, want goalAmount validation", err)
	}

	created, err := s.Causes.Create(context.Background(), models.Cause{Title: "Flood relief", Category: "relief", GoalAmount: 200, RaisedAmount: 50})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" || created.Status != models.CauseStatusActive || created.Progress != 25 {
		t.Fatalf("created = %+v", created)
	}
}

func TestRegistrationsAreReadOnly(t *testing.T) {
	s := memorySet(t)
	if _, err := s.Registrations.Delete(context.Background(), "reg-1", lr.Confirmed[models.Registration]); !errors.Is(err, lr.ErrReadOnly) {
		t.Fatalf("Delete() error = %v, want ErrReadOnly", err)
	}
	if got := s.Registrations.Stats()["revenue"]; got != 900 {
		t.Fatalf("stats[revenue] = %v, want 900", got)
	}
}

func TestForumReplyCounters(t *testing.T) {
	s := memorySet(t)
	ctx := context.Background()

	reply, err := s.Forum.AddReply(ctx, "post-3", models.ForumReply{
		Author:  models.ForumAuthor{Name: "Arjun Mehta"},
		Content: "Count me in.",
	})
	if err != nil {
		t.Fatalf("AddReply() error = %v", err)
	}
	if post, _ := s.Posts.Find("post-3"); post.Replies != 1 {
		t.Fatalf("post-3 replies = %d, want 1", post.Replies)
	}
	if got := s.Forum.RepliesFor("post-3"); len(got) != 1 || got[0].ID != reply.ID {
		t.Fatalf("RepliesFor(post-3) = %+v", got)
	}

	if removed, err := s.Forum.DeleteReply(ctx, reply.ID, lr.Confirmed[models.ForumReply]); err != nil || !removed {
		t.Fatalf("DeleteReply() = %v, %v, want true, nil", removed, err)
	}
	if post, _ := s.Posts.Find("post-3"); post.Replies != 0 {
		t.Fatalf("post-3 replies after delete = %d, want 0", post.Replies)
	}
	if removed, err := s.Forum.DeleteReply(ctx, reply.ID, lr.Confirmed[models.ForumReply]); err != nil || removed {
		t.Fatalf("DeleteReply() again = %v, %v, want false, nil", removed, err)
	}

	if _, err := s.Forum.AddReply(ctx, "missing", models.ForumReply{Author: models.ForumAuthor{Name: "x"}, Content: "y"}); !errors.Is(err, lr.ErrNotFound) {
		t.Fatalf("AddReply(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDeletePostRemovesReplies(t *testing.T) {
	s := memorySet(t)

	if removed, err := s.Forum.DeletePost(context.Background(), "post-1", lr.Confirmed[models.ForumPost]); err != nil || !removed {
		t.Fatalf("DeletePost() = %v, %v, want true, nil", removed, err)
	}
	if _, ok := s.Posts.Find("post-1"); ok {
		t.Fatal("post-1 still listed")
	}
	for _, r := range s.Replies.Items() {
		if r.PostID == "post-1" {
			t.Fatalf("reply %s of deleted post survived", r.ID)
		}
	}
	if got := len(s.Replies.Items()); got != 1 {
		t.Fatalf("replies left = %d, want 1", got)
	}
}

func TestLeaderboard(t *testing.T) {
	s := memorySet(t)
	top := s.Forum.Leaderboard(2)
	if len(top) != 2 || top[0].Name != "Priya Sharma" || top[1].Name != "Arjun Mehta" {
		t.Fatalf("Leaderboard(2) = %+v", top)
	}
}

func TestTicketAppendMessage(t *testing.T) {
	s := memorySet(t)
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	s.Desk.Now = func() time.Time { return now }
	ctx := context.Background()

	for _, body := range []string{"first reply", "second reply", "third reply"} {
		if _, err := s.Desk.AppendMessage(ctx, "ticket-2", models.SenderSupport, body); err != nil {
			t.Fatalf("AppendMessage(%q) error = %v", body, err)
		}
	}
	tk, _ := s.Tickets.Find("ticket-2")
	if len(tk.Messages) != 3 {
		t.Fatalf("messages = %d, want cap of 3", len(tk.Messages))
	}
	if tk.Messages[0].Body != "first reply" || tk.Messages[2].Body != "third reply" {
		t.Fatalf("messages out of order: %+v", tk.Messages)
	}
	if !tk.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt = %v, want %v", tk.UpdatedAt, now)
	}

	if _, err := s.Desk.AppendMessage(ctx, "ticket-2", "robot", "hi"); err == nil {
		t.Fatal("AppendMessage() with unknown sender succeeded")
	}
	if _, err := s.Desk.AppendMessage(ctx, "ticket-2", models.SenderUser, "  "); err == nil {
		t.Fatal("AppendMessage() with blank body succeeded")
	}
	if _, err := s.Desk.AppendMessage(ctx, "nope", models.SenderUser, "hi"); !errors.Is(err, lr.ErrNotFound) {
		t.Fatalf("AppendMessage(nope) error = %v, want ErrNotFound", err)
	}
}

func TestHeroStoreMemory(t *testing.T) {
	s := memorySet(t)
	ctx := context.Background()

	h, err := s.Hero.Get(ctx)
	if err != nil || h.Title != seed.Hero().Title {
		t.Fatalf("Get() = %+v, %v", h, err)
	}
	if _, err := s.Hero.Save(ctx, models.CauseHero{Title: " "}); err == nil {
		t.Fatal("Save() with blank title succeeded")
	}
	h, err = s.Hero.SetMedia(ctx, "", "https://cdn.example.org/hero.mp4")
	if err != nil {
		t.Fatalf("SetMedia() error = %v", err)
	}
	if h.VideoURL != "https://cdn.example.org/hero.mp4" || h.ImageURL != seed.Hero().ImageURL {
		t.Fatalf("hero after SetMedia = %+v", h)
	}
}

func TestDatabaseMode(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open() error = %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	if err := seed.Into(context.Background(), db, zerolog.Nop()); err != nil {
		t.Fatalf("seed.Into() error = %v", err)
	}

	cfg := &config.Config{DataMode: config.DataModeDatabase, TicketMaxMessages: 200}
	s := New(cfg, Backends{DB: db}, zerolog.Nop())
	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	if _, err := s.Tickets.SetStatus(context.Background(), "ticket-1", models.TicketStatusResolved); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	var stored models.Ticket
	if err := db.First(&stored, "id = ?", "ticket-1").Error; err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if stored.Status != models.TicketStatusResolved || len(stored.Messages) != 1 {
		t.Fatalf("stored ticket = %+v", stored)
	}

	h, err := s.Hero.SetMedia(context.Background(), "/uploads/hero-image/a.png", "")
	if err != nil {
		t.Fatalf("SetMedia() error = %v", err)
	}
	var hero models.CauseHero
	db.First(&hero, "id = ?", models.HeroID)
	if hero.ImageURL != h.ImageURL {
		t.Fatalf("stored hero image = %q, want %q", hero.ImageURL, h.ImageURL)
	}
}
