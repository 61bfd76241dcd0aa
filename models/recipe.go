// recipe.go - Defines the Recipe model for the database

package models

import "time"

type Recipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                                             // Unique recipe ID
	UserID       uint      `gorm:"not null;index" json:"user_id"`                                    // Foreign key to users table (owner)
	User         User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Foreign key constraint
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`  // Newline-separated list
	Instructions string    `json:"instructions"` // Free-form preparation steps
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
