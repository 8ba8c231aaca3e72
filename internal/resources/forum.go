package resources

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
)

// Forum keeps posts and their flat reply list consistent.
type Forum struct {
	Posts   *lr.Resource[models.ForumPost]
	Replies *lr.Resource[models.ForumReply]
	Users   *lr.Resource[models.ForumUser]
	log     zerolog.Logger
}

// RepliesFor returns the replies of one post, oldest first.
func (f *Forum) RepliesFor(postID string) []models.ForumReply {
	if strings.TrimSpace(postID) == "" {
		return []models.ForumReply{}
	}
	var out []models.ForumReply
	for _, r := range f.Replies.Items() {
		if r.PostID == postID {
			out = append(out, r)
		}
	}
	return lr.Apply(out, f.Replies.Spec(), lr.Query{Sort: "date", Order: lr.Asc})
}

// AddReply stores a reply and bumps the parent's reply counter.
func (f *Forum) AddReply(ctx context.Context, postID string, reply models.ForumReply) (models.ForumReply, error) {
	if strings.TrimSpace(postID) == "" {
		return models.ForumReply{}, lr.ErrMissingID
	}
	if _, ok := f.Posts.Find(postID); !ok {
		return models.ForumReply{}, lr.ErrNotFound
	}
	reply.ID = ""
	reply.PostID = postID
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = time.Now()
	}
	saved, err := f.Replies.Create(ctx, reply)
	if err != nil {
		return models.ForumReply{}, err
	}
	if _, err := f.Posts.Mutate(ctx, postID, func(p *models.ForumPost) error {
		p.Replies++
		return nil
	}); err != nil {
		f.log.Error().Err(err).Str("post", postID).Msg("reply counter not updated")
		return saved, err
	}
	return saved, nil
}

// DeleteReply removes a reply and decrements the parent's counter, never
// below zero. It reports false when no reply had that id.
func (f *Forum) DeleteReply(ctx context.Context, id string, confirm lr.ConfirmFunc[models.ForumReply]) (bool, error) {
	reply, _ := f.Replies.Find(id)
	removed, err := f.Replies.Delete(ctx, id, confirm)
	if err != nil || !removed {
		return removed, err
	}
	if _, found := f.Posts.Find(reply.PostID); !found {
		return true, nil
	}
	_, err = f.Posts.Mutate(ctx, reply.PostID, func(p *models.ForumPost) error {
		if p.Replies > 0 {
			p.Replies--
		}
		return nil
	})
	return true, err
}

// DeletePost removes a post together with its replies. It reports false when
// no post had that id.
func (f *Forum) DeletePost(ctx context.Context, id string, confirm lr.ConfirmFunc[models.ForumPost]) (bool, error) {
	removed, err := f.Posts.Delete(ctx, id, confirm)
	if err != nil || !removed {
		return removed, err
	}
	for _, r := range f.Replies.Items() {
		if r.PostID != id {
			continue
		}
		if _, err := f.Replies.Delete(ctx, r.ID, lr.Confirmed[models.ForumReply]); err != nil {
			f.log.Error().Err(err).Str("reply", r.ID).Msg("orphaned reply not removed")
			return true, err
		}
	}
	return true, nil
}

// Leaderboard returns the top n forum users by points.
func (f *Forum) Leaderboard(n int) []models.ForumUser {
	users := f.Users.View(lr.Query{Sort: "points", Order: lr.Desc}).Items
	if n > 0 && len(users) > n {
		users = users[:n]
	}
	return users
}
