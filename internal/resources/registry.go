package resources

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/zechsoft/new-trust-sub003/internal/config"
	"github.com/zechsoft/new-trust-sub003/internal/datasource"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"github.com/zechsoft/new-trust-sub003/internal/seed"
	"github.com/zechsoft/new-trust-sub003/internal/upstream"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Backends are the stores a Set can draw from. Either may be nil.
type Backends struct {
	DB     *gorm.DB
	Client *upstream.Client
}

// Set is every list the console serves, one shared Resource per entity.
type Set struct {
	Causes        *lr.Resource[models.Cause]
	Contacts      *lr.Resource[models.ContactSubmission]
	Registrations *lr.Resource[models.Registration]
	Posts         *lr.Resource[models.ForumPost]
	Replies       *lr.Resource[models.ForumReply]
	Users         *lr.Resource[models.ForumUser]
	Mentors       *lr.Resource[models.Mentor]
	Videos        *lr.Resource[models.VideoLecture]
	Papers        *lr.Resource[models.Paper]
	Tickets       *lr.Resource[models.Ticket]

	Hero  *HeroStore
	Forum *Forum
	Desk  *TicketDesk

	log     zerolog.Logger
	loaders []func(context.Context) error
	closers []func()
	states  map[string]func() (lr.State, error)
}

// New wires each entity to its data source. Causes and the hero come from
// the upstream backend when one is configured; everything else uses the
// local database in database mode and the demo seed otherwise.
func New(cfg *config.Config, b Backends, log zerolog.Logger) *Set {
	useDB := cfg.UsesDatabase() && b.DB != nil
	s := &Set{log: log, states: map[string]func() (lr.State, error){}}

	var causeSrc lr.DataSource[models.Cause]
	switch {
	case b.Client != nil:
		causeSrc = datasource.NewRemote[models.Cause](b.Client, "/api/causeList", CauseSpec().ID)
	case useDB:
		causeSrc = datasource.NewGorm[models.Cause](b.DB, "created_at desc", CauseSpec().ID)
	default:
		causeSrc = datasource.NewMemory(seed.Causes(), CauseSpec().ID, func(c *models.Cause, id string) { c.ID = id })
	}
	s.Causes = register(s, causeSrc, CauseSpec())

	s.Contacts = register(s, source(b.DB, useDB, "created_at desc", seed.ContactSubmissions(),
		func(c *models.ContactSubmission, id string) { c.ID = id }, ContactSpec().ID), ContactSpec())
	s.Registrations = register(s, source(b.DB, useDB, "registered_at desc", seed.Registrations(),
		func(r *models.Registration, id string) { r.ID = id }, RegistrationSpec().ID), RegistrationSpec())
	s.Posts = register(s, source(b.DB, useDB, "created_at desc", seed.ForumPosts(),
		func(p *models.ForumPost, id string) { p.ID = id }, PostSpec().ID), PostSpec())
	s.Replies = register(s, source(b.DB, useDB, "created_at asc", seed.ForumReplies(),
		func(r *models.ForumReply, id string) { r.ID = id }, ReplySpec().ID), ReplySpec())
	s.Users = register(s, source(b.DB, useDB, "points desc", seed.ForumUsers(),
		func(u *models.ForumUser, id string) { u.ID = id }, UserSpec().ID), UserSpec())
	s.Mentors = register(s, source(b.DB, useDB, "name asc", seed.Mentors(),
		func(m *models.Mentor, id string) { m.ID = id }, MentorSpec().ID), MentorSpec())
	s.Videos = register(s, source(b.DB, useDB, "published_at desc", seed.VideoLectures(),
		func(v *models.VideoLecture, id string) { v.ID = id }, VideoSpec().ID), VideoSpec())
	s.Papers = register(s, source(b.DB, useDB, "submitted_at desc", seed.Papers(),
		func(p *models.Paper, id string) { p.ID = id }, PaperSpec().ID), PaperSpec())
	s.Tickets = register(s, source(b.DB, useDB, "updated_at desc", seed.Tickets(),
		func(t *models.Ticket, id string) { t.ID = id }, TicketSpec().ID), TicketSpec())

	var heroSrc HeroSource
	switch {
	case b.Client != nil:
		heroSrc = &remoteHero{client: b.Client}
	case useDB:
		heroSrc = &gormHero{db: b.DB}
	default:
		heroSrc = &memoryHero{hero: seed.Hero()}
	}
	s.Hero = NewHeroStore(heroSrc, log)
	s.Forum = &Forum{Posts: s.Posts, Replies: s.Replies, Users: s.Users, log: log.With().Str("component", "forum").Logger()}
	s.Desk = &TicketDesk{Tickets: s.Tickets, MaxMessages: cfg.TicketMaxMessages, Now: time.Now}

	log.Info().
		Bool("upstream", b.Client != nil).
		Bool("database", useDB).
		Msg("resources wired")
	return s
}

func source[T any](db *gorm.DB, useDB bool, order string, items []T, setID func(*T, string), id func(T) string) lr.DataSource[T] {
	if useDB {
		return datasource.NewGorm[T](db, order, id)
	}
	return datasource.NewMemory(items, id, setID)
}

func register[T any](s *Set, src lr.DataSource[T], spec lr.Spec[T]) *lr.Resource[T] {
	r := lr.New[T](src, spec, s.log)
	s.loaders = append(s.loaders, r.Load)
	s.closers = append(s.closers, r.Close)
	s.states[spec.Name] = r.State
	return r
}

// States reports the load state of every list by resource name.
func (s *Set) States() map[string]lr.State {
	out := make(map[string]lr.State, len(s.states))
	for name, state := range s.states {
		st, _ := state()
		out[name] = st
	}
	return out
}

// LoadAll loads every list concurrently. A failing list does not stop the
// others; the first error is returned.
func (s *Set) LoadAll(ctx context.Context) error {
	var g errgroup.Group
	for _, load := range s.loaders {
		load := load
		g.Go(func() error { return load(ctx) })
	}
	g.Go(func() error {
		_, err := s.Hero.Load(ctx)
		return err
	})
	return g.Wait()
}

// Close discards any load still in flight.
func (s *Set) Close() {
	for _, c := range s.closers {
		c()
	}
}
