// store_test.go - Store-level tests for the named queries and error taxonomy

package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go-recipe-backend/config"
	"go-recipe-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Load()
	cfg.DBPath = filepath.Join(t.TempDir(), "store_test.db")
	store, err := Connect(cfg)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	return store
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.ErrorIs(t, wrapError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, wrapError(gorm.ErrDuplicatedKey), ErrConflict)
	assert.ErrorIs(t, wrapError(errors.New("UNIQUE constraint failed: users.email")), ErrConflict)

	// Everything else keeps the driver message
	err := wrapError(errors.New("disk I/O error"))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestUserQueries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{Username: "rex", Email: "r@x.com", Password: "hash"}
	assert.NoError(t, store.CreateUser(ctx, &user))

	// Duplicate email is a conflict
	dup := models.User{Username: "rex2", Email: "r@x.com", Password: "hash"}
	assert.ErrorIs(t, store.CreateUser(ctx, &dup), ErrConflict)

	// The by-id read selects the allow-list, so the hash never loads
	got, err := store.UserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "rex", got.Username)
	assert.Empty(t, got.Password)

	// Credential lookups do load the hash
	cred, err := store.UserCredentialsByEmail(ctx, "r@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "hash", cred.Password)

	// Unknown id
	_, err = store.UserByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{Username: "sam", Email: "s@x.com", Password: "hash"}
	assert.NoError(t, store.CreateUser(ctx, &user))

	// Allowed columns apply as one update
	err := store.UpdateUserFields(ctx, user.ID, map[string]interface{}{
		"first_name": "Sam",
		"last_name":  "Lee",
	})
	assert.NoError(t, err)
	got, err := store.UserByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Sam", got.FirstName)

	// Unknown column is refused before any statement runs
	err = store.UpdateUserFields(ctx, user.ID, map[string]interface{}{"is_admin": true})
	assert.Error(t, err)

	// Missing row
	err = store.UpdateUserFields(ctx, 9999, map[string]interface{}{"first_name": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavoriteQueries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{Username: "tina", Email: "t@x.com", Password: "hash"}
	assert.NoError(t, store.CreateUser(ctx, &user))
	recipe := models.Recipe{UserID: user.ID, Title: "Salad"}
	assert.NoError(t, store.CreateRecipe(ctx, &recipe))

	fav := models.Favorite{UserID: user.ID, RecipeID: recipe.ID}
	assert.NoError(t, store.CreateFavorite(ctx, &fav))

	// The composite index rejects the pair a second time
	again := models.Favorite{UserID: user.ID, RecipeID: recipe.ID}
	assert.ErrorIs(t, store.CreateFavorite(ctx, &again), ErrConflict)

	favs, err := store.ListFavorites(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, favs, 1)

	assert.NoError(t, store.DeleteFavorite(ctx, user.ID, recipe.ID))
	assert.ErrorIs(t, store.DeleteFavorite(ctx, user.ID, recipe.ID), ErrNotFound)
}
