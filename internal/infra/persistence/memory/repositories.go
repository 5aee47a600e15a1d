package memory

import (
	"context"
	"slices"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct{ s *Store }

type videoRepository struct{ s *Store }

type subscriptionRepository struct{ s *Store }

type playlistRepository struct{ s *Store }

// NewUserRepository returns the user repository of s.
func NewUserRepository(s *Store) repository.UserRepository { return &userRepository{s} }

// NewVideoRepository returns the video repository of s.
func NewVideoRepository(s *Store) repository.VideoRepository { return &videoRepository{s} }

// NewSubscriptionRepository returns the subscription repository of s.
func NewSubscriptionRepository(s *Store) repository.SubscriptionRepository {
	return &subscriptionRepository{s}
}

// NewPlaylistRepository returns the playlist repository of s.
func NewPlaylistRepository(s *Store) repository.PlaylistRepository { return &playlistRepository{s} }

// --- users ---

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := r.s.read(ctx, "find user by id", func(d *state) error {
		u, ok := d.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = copyUser(u)

		return nil
	})

	return found, err
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.FindByUsernameOrEmail(ctx, username, "")
}

func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	var found *entity.User
	err := r.s.read(ctx, "find user by username or email", func(d *state) error {
		for _, u := range d.users {
			if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
				if found == nil || u.CreatedAt.Before(found.CreatedAt) {
					found = u
				}
			}
		}
		if found == nil {
			return repository.ErrUserNotFound
		}
		found = copyUser(found)

		return nil
	})

	return found, err
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.s.write(ctx, "create user", func(d *state) error {
		for _, u := range d.users {
			if u.Username == user.Username || u.Email == user.Email {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
			}
		}
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		now := r.s.now()
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		user.UpdatedAt = now
		d.users[user.ID] = copyUser(user)

		return nil
	})
}

// modify replaces the stored user with an edited copy.
func (r *userRepository) modify(ctx context.Context, op string, id uuid.UUID, edit func(d *state, u *entity.User) error) error {
	return r.s.write(ctx, op, func(d *state) error {
		existing, ok := d.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		u := copyUser(existing)
		if err := edit(d, u); err != nil {
			return err
		}
		u.UpdatedAt = r.s.now()
		d.users[id] = u

		return nil
	})
}

func (r *userRepository) UpdateAccount(ctx context.Context, id uuid.UUID, fullname, email string) error {
	return r.modify(ctx, "update account", id, func(d *state, u *entity.User) error {
		for otherID, other := range d.users {
			if otherID != id && other.Email == email {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already in use")
			}
		}
		u.Fullname = fullname
		u.Email = email

		return nil
	})
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar *entity.Media) error {
	return r.modify(ctx, "update avatar", id, func(_ *state, u *entity.User) error {
		u.Avatar = copyMedia(avatar)

		return nil
	})
}

func (r *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, cover *entity.Media) error {
	return r.modify(ctx, "update cover image", id, func(_ *state, u *entity.User) error {
		u.CoverImage = copyMedia(cover)

		return nil
	})
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.modify(ctx, "update password", id, func(_ *state, u *entity.User) error {
		u.PasswordHash = hash

		return nil
	})
}

func (r *userRepository) SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.modify(ctx, "store refresh token", id, func(_ *state, u *entity.User) error {
		u.RefreshTokenHash = hash

		return nil
	})
}

func (r *userRepository) RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, expected, next string) (bool, error) {
	rotated := false
	err := r.modify(ctx, "rotate refresh token", id, func(_ *state, u *entity.User) error {
		if expected == "" || u.RefreshTokenHash != expected {
			return nil
		}
		u.RefreshTokenHash = next
		rotated = true

		return nil
	})

	return rotated, err
}

func (r *userRepository) AppendWatchHistory(ctx context.Context, id, videoID uuid.UUID) error {
	return r.modify(ctx, "append watch history", id, func(d *state, u *entity.User) error {
		if _, ok := d.videos[videoID]; !ok {
			return repository.ErrVideoNotFound
		}
		u.WatchHistory = append(u.WatchHistory, videoID)

		return nil
	})
}

func (r *userRepository) FindWatchHistory(ctx context.Context, id uuid.UUID) ([]*entity.Video, error) {
	var videos []*entity.Video
	err := r.s.read(ctx, "find watch history", func(d *state) error {
		u, ok := d.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		videos = make([]*entity.Video, 0, len(u.WatchHistory))
		for _, videoID := range u.WatchHistory {
			v, ok := d.videos[videoID]
			if !ok {
				continue
			}
			video := copyVideo(v)
			if owner, ok := d.users[v.OwnerID]; ok {
				video.Owner = owner.Summary()
			}
			videos = append(videos, video)
		}

		return nil
	})

	return videos, err
}

func copyMedia(m *entity.Media) *entity.Media {
	if m == nil {
		return nil
	}
	c := *m

	return &c
}

// --- videos ---

func (r *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var found *entity.Video
	err := r.s.read(ctx, "find video by id", func(d *state) error {
		v, ok := d.videos[id]
		if !ok {
			return repository.ErrVideoNotFound
		}
		found = copyVideo(v)
		if owner, ok := d.users[v.OwnerID]; ok {
			found.Owner = owner.Summary()
		}

		return nil
	})

	return found, err
}

// --- subscriptions ---

func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	return r.s.write(ctx, "create subscription", func(d *state) error {
		key := subscriptionKey{subscriber: sub.SubscriberID, channel: sub.ChannelID}
		if _, exists := d.subscriptions[key]; exists {
			return domainerrors.ErrConflict.WrapMessage("already subscribed to channel")
		}
		if sub.ID == uuid.Nil {
			sub.ID = uuid.New()
		}
		if sub.CreatedAt.IsZero() {
			sub.CreatedAt = r.s.now()
		}
		c := *sub
		d.subscriptions[key] = &c

		return nil
	})
}

func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	return r.s.write(ctx, "delete subscription", func(d *state) error {
		key := subscriptionKey{subscriber: subscriberID, channel: channelID}
		if _, exists := d.subscriptions[key]; !exists {
			return repository.ErrSubscriptionNotFound
		}
		delete(d.subscriptions, key)

		return nil
	})
}

func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	exists := false
	err := r.s.read(ctx, "check subscription", func(d *state) error {
		_, exists = d.subscriptions[subscriptionKey{subscriber: subscriberID, channel: channelID}]

		return nil
	})

	return exists, err
}

func (r *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	return r.count(ctx, func(k subscriptionKey) bool { return k.channel == channelID })
}

func (r *subscriptionRepository) CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error) {
	return r.count(ctx, func(k subscriptionKey) bool { return k.subscriber == subscriberID })
}

func (r *subscriptionRepository) count(ctx context.Context, match func(subscriptionKey) bool) (int64, error) {
	var n int64
	err := r.s.read(ctx, "count subscriptions", func(d *state) error {
		for k := range d.subscriptions {
			if match(k) {
				n++
			}
		}

		return nil
	})

	return n, err
}

// --- playlists ---

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return r.s.write(ctx, "create playlist", func(d *state) error {
		if playlist.ID == uuid.Nil {
			playlist.ID = uuid.New()
		}
		now := r.s.now()
		playlist.CreatedAt, playlist.UpdatedAt = now, now
		d.playlists[playlist.ID] = copyPlaylist(playlist)

		return nil
	})
}

func (r *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var found *entity.Playlist
	err := r.s.read(ctx, "find playlist", func(d *state) error {
		p, ok := d.playlists[id]
		if !ok {
			return repository.ErrPlaylistNotFound
		}
		found = copyPlaylist(p)

		return nil
	})

	return found, err
}

func (r *playlistRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var found []*entity.Playlist
	err := r.s.read(ctx, "list playlists", func(d *state) error {
		found = make([]*entity.Playlist, 0)
		for _, p := range d.playlists {
			if p.OwnerID == ownerID {
				found = append(found, copyPlaylist(p))
			}
		}
		slices.SortFunc(found, func(a, b *entity.Playlist) int { return a.CreatedAt.Compare(b.CreatedAt) })

		return nil
	})

	return found, err
}

func (r *playlistRepository) modify(ctx context.Context, op string, id uuid.UUID, edit func(p *entity.Playlist)) error {
	return r.s.write(ctx, op, func(d *state) error {
		existing, ok := d.playlists[id]
		if !ok {
			return repository.ErrPlaylistNotFound
		}
		p := copyPlaylist(existing)
		edit(p)
		p.UpdatedAt = r.s.now()
		d.playlists[id] = p

		return nil
	})
}

func (r *playlistRepository) Update(ctx context.Context, id uuid.UUID, name, description string) error {
	return r.modify(ctx, "update playlist", id, func(p *entity.Playlist) {
		p.Name = name
		p.Description = description
	})
}

func (r *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, "delete playlist", func(d *state) error {
		if _, ok := d.playlists[id]; !ok {
			return repository.ErrPlaylistNotFound
		}
		delete(d.playlists, id)

		return nil
	})
}

func (r *playlistRepository) AddVideo(ctx context.Context, id, videoID uuid.UUID) error {
	return r.modify(ctx, "add video to playlist", id, func(p *entity.Playlist) {
		if !p.HasVideo(videoID) {
			p.VideoIDs = append(p.VideoIDs, videoID)
		}
	})
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, videoID uuid.UUID) error {
	return r.modify(ctx, "remove video from playlist", id, func(p *entity.Playlist) {
		p.VideoIDs = slices.DeleteFunc(p.VideoIDs, func(v uuid.UUID) bool { return v == videoID })
	})
}
