// sessions.go - Named queries for the sessions table

package database

import (
	"context"

	"go-recipe-backend/models"
)

// CreateSession inserts a session row minted at login.
func (s *Store) CreateSession(ctx context.Context, sess *models.Session) error {
	return wrapError(s.db.WithContext(ctx).Create(sess).Error)
}

// SessionByID fetches one session by its UUID.
func (s *Store) SessionByID(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sess).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &sess, nil
}

// DeleteSession removes a session row, ending that login.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{})
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
