// recipes.go - Named queries for the recipes table

package database

import (
	"context"

	"go-recipe-backend/models"
)

// CreateRecipe inserts a new recipe owned by user_id on the struct.
func (s *Store) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	return wrapError(s.db.WithContext(ctx).Create(recipe).Error)
}

// RecipeByID fetches one recipe by primary key.
func (s *Store) RecipeByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, id).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return &recipe, nil
}

// ListRecipes returns every recipe row.
func (s *Store) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return recipes, nil
}

// RecipesByOwner returns the recipes created by one user.
func (s *Store) RecipesByOwner(ctx context.Context, userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recipes).Error
	if err != nil {
		return nil, wrapError(err)
	}
	return recipes, nil
}
