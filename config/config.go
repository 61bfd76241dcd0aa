// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For parsing numeric/boolean env vars
)

type Config struct { // Config struct holds all configuration values
	Port            string // Port the HTTP server listens on
	DBPath          string // Path to the SQLite database file
	JWTSecret       string // Secret key for JWT authentication
	SessionTTLHours int    // How long a login session stays valid

	// Default admin seeding (only applied when CreateAdmin is set)
	CreateAdmin   bool   // Whether to create a default admin on startup
	AdminUsername string // Username for the seeded admin
	AdminEmail    string // Email for the seeded admin
	AdminPassword string // Password for the seeded admin (hashed before storing)
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "data.db"),
		JWTSecret:       getEnv("JWT_SECRET", "supersecret"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 72),
		CreateAdmin:     getEnvBool("CREATE_ADMIN", false),
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:      getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
