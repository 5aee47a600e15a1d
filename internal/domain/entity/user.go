// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the account that owns a channel, uploads media and holds a session.
type User struct {
	ID               uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Username         string      // Lowercased, unique handle used for login and channel URLs.
	Email            string      // Lowercased, unique contact email, also accepted at login.
	Fullname         string      // Display name.
	Avatar           *Media      // Required profile image.
	CoverImage       *Media      // Optional channel banner.
	WatchHistory     []uuid.UUID // Video IDs in the order they were watched.
	PasswordHash     string      // bcrypt hash; never leaves the service.
	RefreshTokenHash string      // SHA-256 of the single live refresh token, empty when signed out.
	CreatedAt        time.Time   // Timestamp of when this user account was created.
	UpdatedAt        time.Time   // Timestamp of the last modification to this user's data.
}

// HasSession reports whether a refresh token is currently stored for the user.
func (u *User) HasSession() bool {
	return u.RefreshTokenHash != ""
}

// Summary returns the public owner projection of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Avatar:   u.Avatar.URLOrEmpty(),
	}
}

// UserSummary is the subset of a user embedded in other resources.
type UserSummary struct {
	ID       uuid.UUID
	Username string
	Fullname string
	Avatar   string
}

// Media points at an object in the media store.
type Media struct {
	Key string // Storage key used for deletion.
	URL string // Public URL returned to clients.
}

// URLOrEmpty returns the URL of a possibly nil media reference.
func (m *Media) URLOrEmpty() string {
	if m == nil {
		return ""
	}

	return m.URL
}

// NormalizeHandle lowercases and trims usernames and emails before any store access.
func NormalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
