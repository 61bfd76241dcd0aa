// users.go - Named queries for the users table

package database

import (
	"context"
	"fmt"

	"go-recipe-backend/models"
)

// userColumns is the allow-list for user reads. The password hash is only
// selected by the credential lookups used for login and password change.
var userColumns = []string{"id", "username", "email", "first_name", "last_name", "is_admin", "created_at", "updated_at"}

// userUpdatable is the allow-list of columns a profile update may touch.
var userUpdatable = map[string]bool{
	"username":   true,
	"email":      true,
	"first_name": true,
	"last_name":  true,
	"password":   true,
}

// CreateUser inserts a new user row. The caller supplies the bcrypt hash.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return wrapError(s.db.WithContext(ctx).Create(user).Error)
}

// UserByID fetches one user by primary key, without the password hash.
func (s *Store) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Select(userColumns).First(&user, id).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// ListUsers returns every user row, without password hashes.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Select(userColumns).Order("id").Find(&users).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return users, nil
}

// UserCredentialsByEmail fetches the full row, hash included, for login.
func (s *Store) UserCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// UserCredentialsByID fetches the full row, hash included, for password change.
func (s *Store) UserCredentialsByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// UpdateUserFields applies one UPDATE with the changed columns. Column names
// are checked against the allow-list; values are always bound parameters.
func (s *Store) UpdateUserFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	for col := range fields {
		if !userUpdatable[col] {
			return fmt.Errorf("column %q is not updatable", col)
		}
	}
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes one user row by primary key.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
