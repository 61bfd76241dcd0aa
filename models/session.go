// session.go - Server-side session rows backing the bearer tokens

package models

import "time"

// Session is created on login and deleted on logout. The ID travels as the
// JWT jti claim; a token whose session row is gone no longer authenticates.
type Session struct {
	ID        string `gorm:"primaryKey;size:36"` // UUID
	UserID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time
}
