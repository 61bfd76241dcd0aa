// favorites.go - Named queries for the favorites and ratings tables

package database

import (
	"context"

	"go-recipe-backend/models"
)

// CreateFavorite inserts a (user, recipe) bookmark. A duplicate pair comes
// back as ErrConflict via the composite unique index.
func (s *Store) CreateFavorite(ctx context.Context, fav *models.Favorite) error {
	return wrapError(s.db.WithContext(ctx).Create(fav).Error)
}

// DeleteFavorite removes one bookmark by its (user, recipe) pair.
func (s *Store) DeleteFavorite(ctx context.Context, userID, recipeID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFavorites returns all bookmarks belonging to one user.
func (s *Store) ListFavorites(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favs).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return favs, nil
}

// ListRatings returns all ratings submitted by one user.
func (s *Store) ListRatings(ctx context.Context, userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ratings).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return ratings, nil
}

// CreateRating inserts a rating row. Not exposed over HTTP; used by seeding
// and tests.
func (s *Store) CreateRating(ctx context.Context, rating *models.Rating) error {
	return wrapError(s.db.WithContext(ctx).Create(rating).Error)
}
