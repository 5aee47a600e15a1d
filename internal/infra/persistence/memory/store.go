// Package memory is an in-process store used for local development and tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/infra/persistence"

	"github.com/google/uuid"
)

type subscriptionKey struct {
	subscriber uuid.UUID
	channel    uuid.UUID
}

type state struct {
	users         map[uuid.UUID]*entity.User
	videos        map[uuid.UUID]*entity.Video
	subscriptions map[subscriptionKey]*entity.Subscription
	playlists     map[uuid.UUID]*entity.Playlist
}

func (s *state) clone() *state {
	return &state{
		users:         maps.Clone(s.users),
		videos:        maps.Clone(s.videos),
		subscriptions: maps.Clone(s.subscriptions),
		playlists:     maps.Clone(s.playlists),
	}
}

// Store holds every collection behind one lock. Stored values are never
// mutated in place, so a shallow map clone is a consistent snapshot.
type Store struct {
	mu      sync.RWMutex
	data    *state
	timeout time.Duration
	now     func() time.Time
	// held marks a transaction view whose caller already owns the parent's write lock.
	held bool
}

// New creates an empty store using store.timeout for every call.
func New(cfg *config.Config) *Store {
	return NewWithTimeout(cfg.Store.Timeout)
}

// NewWithTimeout creates an empty store.
func NewWithTimeout(timeout time.Duration) *Store {
	return &Store{
		data: &state{
			users:         map[uuid.UUID]*entity.User{},
			videos:        map[uuid.UUID]*entity.Video{},
			subscriptions: map[subscriptionKey]*entity.Subscription{},
			playlists:     map[uuid.UUID]*entity.Playlist{},
		},
		timeout: timeout,
		now:     time.Now,
	}
}

// SeedVideo inserts a video. Videos are otherwise created by the upload pipeline.
func (s *Store) SeedVideo(video *entity.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := copyVideo(video)
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
		video.ID = v.ID
	}
	s.data.videos[v.ID] = v
}

// begin checks the caller's context before touching the store.
func (s *Store) begin(ctx context.Context, op string) (context.CancelFunc, error) {
	ctx, cancel := persistence.Bound(ctx, s.timeout)
	if err := ctx.Err(); err != nil {
		cancel()
		if persistence.DeadlineExceeded(ctx, err) {
			return nil, persistence.TimeoutError(op)
		}

		return nil, err
	}

	return cancel, nil
}

func (s *Store) read(ctx context.Context, op string, fn func(d *state) error) error {
	cancel, err := s.begin(ctx, op)
	if err != nil {
		return err
	}
	defer cancel()

	if s.held {
		return fn(s.data)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.data)
}

func (s *Store) write(ctx context.Context, op string, fn func(d *state) error) error {
	cancel, err := s.begin(ctx, op)
	if err != nil {
		return err
	}
	defer cancel()

	if s.held {
		return fn(s.data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.data)
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	c.WatchHistory = slices.Clone(u.WatchHistory)
	if u.Avatar != nil {
		avatar := *u.Avatar
		c.Avatar = &avatar
	}
	if u.CoverImage != nil {
		cover := *u.CoverImage
		c.CoverImage = &cover
	}

	return &c
}

func copyVideo(v *entity.Video) *entity.Video {
	c := *v
	if v.Owner != nil {
		owner := *v.Owner
		c.Owner = &owner
	}

	return &c
}

func copyPlaylist(p *entity.Playlist) *entity.Playlist {
	c := *p
	c.VideoIDs = slices.Clone(p.VideoIDs)

	return &c
}
