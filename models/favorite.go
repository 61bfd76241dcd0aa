// favorite.go - Favorite and Rating associations between users and recipes

package models

import "time"

// Favorite links a user to a recipe they bookmarked. The composite unique
// index makes a second bookmark of the same recipe a constraint violation.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating records a user's score for a recipe. Read-only through the HTTP
// surface; rows are written out of band.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_ratings_user_recipe" json:"recipe_id"`
	Value     int       `gorm:"not null" json:"value"` // 1..5
	CreatedAt time.Time `json:"created_at"`
}
