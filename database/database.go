// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"time"

	"go-recipe-backend/config" // Project config
	"go-recipe-backend/models" // Database models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

// Store wraps the GORM handle and exposes one method per named query.
// It is constructed once in main and passed to the handlers explicitly;
// there is no package-level database global.
type Store struct {
	db *gorm.DB
}

func Connect(cfg *config.Config) (*Store, error) { // Connect opens the database and runs migrations
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		TranslateError: true, // surface duplicate keys as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}

	// Pool settings so concurrent requests never queue behind one connection.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Favorite{},
		&models.Rating{},
		&models.Session{},
	); err != nil {
		return nil, err
	}

	store := &Store{db: db}

	// Create default admin user if configured
	if err := store.createDefaultAdmin(cfg); err != nil {
		return nil, err
	}
	return store, nil
}

// createDefaultAdmin - Creates a default admin user if configured and none exists
// This uses environment variables for security instead of hardcoded credentials
func (s *Store) createDefaultAdmin(cfg *config.Config) error {
	// Only create admin if explicitly configured
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	// Check if any admin user exists
	var count int64
	if err := s.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		IsAdmin:  true,
	}
	return s.db.Create(&adminUser).Error
}
