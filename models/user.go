// user.go - Defines the User model for the database

package models // Declares the package name

import "time"

type User struct { // User struct represents a user account in the database
	ID        uint      `gorm:"primaryKey" json:"id"`                    // Unique user ID (primary key)
	Username  string    `gorm:"size:50;unique;not null" json:"username"` // Username (must be unique, cannot be null)
	Email     string    `gorm:"size:100;unique;not null" json:"email"`   // Email (must be unique, cannot be null)
	Password  string    `gorm:"not null" json:"-"`                       // bcrypt hash, never serialized into responses
	FirstName string    `gorm:"size:50" json:"first_name"`               // Optional first name
	LastName  string    `gorm:"size:50" json:"last_name"`                // Optional last name
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`           // Admin flag
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
