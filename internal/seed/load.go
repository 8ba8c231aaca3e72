package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Into writes the demo records into db. Rows that already exist are left
// alone, so running it twice is harmless.
func Into(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	var (
		causes   = Causes()
		hero     = Hero()
		contacts = ContactSubmissions()
		regs     = Registrations()
		users    = ForumUsers()
		posts    = ForumPosts()
		replies  = ForumReplies()
		mentors  = Mentors()
		videos   = VideoLectures()
		papers   = Papers()
		tickets  = Tickets()
	)
	batches := []struct {
		name string
		rows interface{}
	}{
		{"causes", &causes},
		{"cause_heroes", &hero},
		{"contact_submissions", &contacts},
		{"registrations", &regs},
		{"forum_users", &users},
		{"forum_posts", &posts},
		{"forum_replies", &replies},
		{"mentors", &mentors},
		{"video_lectures", &videos},
		{"papers", &papers},
		{"tickets", &tickets},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range batches {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(b.rows)
			if res.Error != nil {
				return fmt.Errorf("seed %s: %w", b.name, res.Error)
			}
			log.Info().Str("table", b.name).Int64("inserted", res.RowsAffected).Msg("seeded")
		}
		return nil
	})
}
