package resources

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/models"
	"github.com/zechsoft/new-trust-sub003/internal/upstream"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HeroSource reads and replaces the singleton hero banner.
type HeroSource interface {
	Get(ctx context.Context) (models.CauseHero, error)
	Save(ctx context.Context, h models.CauseHero) (models.CauseHero, error)
}

// HeroStore caches the hero banner. The hero has a single record, so a
// draft is just a copy of the cached value.
type HeroStore struct {
	src HeroSource
	log zerolog.Logger

	mu     sync.RWMutex
	hero   models.CauseHero
	loaded bool
}

func NewHeroStore(src HeroSource, log zerolog.Logger) *HeroStore {
	return &HeroStore{src: src, log: log.With().Str("resource", "cause-hero").Logger()}
}

func (s *HeroStore) Load(ctx context.Context) (models.CauseHero, error) {
	h, err := s.src.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load failed")
		return models.CauseHero{}, err
	}
	s.mu.Lock()
	s.hero = h
	s.loaded = true
	s.mu.Unlock()
	return h, nil
}

// Get returns the cached hero, loading it on first use.
func (s *HeroStore) Get(ctx context.Context) (models.CauseHero, error) {
	s.mu.RLock()
	h, ok := s.hero, s.loaded
	s.mu.RUnlock()
	if ok {
		return h, nil
	}
	return s.Load(ctx)
}

// Save validates and stores h. The cache changes only on success.
func (s *HeroStore) Save(ctx context.Context, h models.CauseHero) (models.CauseHero, error) {
	h.Title = strings.TrimSpace(h.Title)
	if err := lr.Required(lr.Field{Name: "title", Value: h.Title}); err != nil {
		return models.CauseHero{}, err
	}
	saved, err := s.src.Save(ctx, h)
	if err != nil {
		s.log.Error().Err(err).Msg("save failed")
		return models.CauseHero{}, err
	}
	s.mu.Lock()
	s.hero = saved
	s.loaded = true
	s.mu.Unlock()
	return saved, nil
}

// SetMedia stores an uploaded image or video URL on the hero.
func (s *HeroStore) SetMedia(ctx context.Context, image, video string) (models.CauseHero, error) {
	h, err := s.Get(ctx)
	if err != nil {
		return models.CauseHero{}, err
	}
	if image != "" {
		h.ImageURL = image
	}
	if video != "" {
		h.VideoURL = video
	}
	return s.Save(ctx, h)
}

type remoteHero struct {
	client *upstream.Client
}

func (r *remoteHero) Get(ctx context.Context) (models.CauseHero, error) {
	var h models.CauseHero
	err := r.client.GetJSON(ctx, "/api/causeHero", &h)
	return h, err
}

func (r *remoteHero) Save(ctx context.Context, h models.CauseHero) (models.CauseHero, error) {
	var out models.CauseHero
	if err := r.client.PostJSON(ctx, "/api/causeHero", h, &out); err != nil {
		if errors.Is(err, upstream.ErrEmptyBody) {
			return h, nil
		}
		return models.CauseHero{}, err
	}
	if out.Title == "" {
		return h, nil
	}
	return out, nil
}

type gormHero struct {
	db *gorm.DB
}

func (g *gormHero) Get(ctx context.Context) (models.CauseHero, error) {
	var h models.CauseHero
	err := g.db.WithContext(ctx).First(&h, "id = ?", models.HeroID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CauseHero{ID: models.HeroID}, nil
	}
	return h, err
}

func (g *gormHero) Save(ctx context.Context, h models.CauseHero) (models.CauseHero, error) {
	h.ID = models.HeroID
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&h).Error
	return h, err
}

type memoryHero struct {
	mu   sync.Mutex
	hero models.CauseHero
}

func (m *memoryHero) Get(ctx context.Context) (models.CauseHero, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hero, ctx.Err()
}

func (m *memoryHero) Save(ctx context.Context, h models.CauseHero) (models.CauseHero, error) {
	if err := ctx.Err(); err != nil {
		return models.CauseHero{}, err
	}
	h.ID = models.HeroID
	h.UpdatedAt = time.Now()
	m.mu.Lock()
	m.hero = h
	m.mu.Unlock()
	return h, nil
}
