// main.go - Entry point for the recipe backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"go-recipe-backend/config"     // Project config management
	"go-recipe-backend/database"   // Database connection and the query store
	"go-recipe-backend/handlers"   // HTTP handlers for API endpoints
	"go-recipe-backend/middleware" // Middleware (authentication)

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/joho/godotenv" // .env loading
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and open the database
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}
	cfg := config.Load() // Load configuration (port, DB path, JWT secret)

	store, err := database.Connect(cfg) // Open the database, migrate, seed admin
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)
	h := handlers.New(store, cfg)

	// Public routes (no authentication required)
	r.POST("/register", h.Register)   // User registration
	r.POST("/login", h.Login)         // User login
	r.GET("/users", h.ListUsers)      // List all users
	r.GET("/recipes", h.ListRecipes)  // List all recipes
	r.GET("/recipes/:id", h.GetRecipe) // Fetch one recipe

	// Protected routes (require a valid session token)
	api := r.Group("/api")                   // Route group for protected endpoints
	api.Use(middleware.Auth(store, cfg))     // Apply session authentication middleware
	{
		api.POST("/logout", h.Logout)
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.DELETE("/profile", h.DeleteProfile)
		api.PUT("/password", h.ChangePassword)
		api.GET("/favorites", h.ListFavorites)
		api.POST("/favorites/:recipeId", h.AddFavorite)
		api.DELETE("/favorites/:recipeId", h.RemoveFavorite)
		api.GET("/ratings", h.ListRatings)
		api.GET("/recipes/my-profile", h.MyRecipes)
		api.POST("/recipes", h.CreateRecipe)
	}

	// STEP 3: Start the web server
	r.Run(":" + cfg.Port)
}
