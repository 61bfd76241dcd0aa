// testutil_test.go - Shared setup for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"         // For building request bodies
	"encoding/json" // For encoding/decoding JSON
	"net/http"
	"net/http/httptest" // HTTP test helpers
	"path/filepath"
	"testing"

	"go-recipe-backend/config"
	"go-recipe-backend/database"
	"go-recipe-backend/middleware"

	"github.com/gin-gonic/gin"
)

// setupTestEnv creates a fresh sqlite database under t.TempDir and a router
// with the full route table, mirroring main.
func setupTestEnv(t *testing.T) (*gin.Engine, *database.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.DBPath = filepath.Join(t.TempDir(), "test.db")
	cfg.JWTSecret = "test-secret"

	store, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}

	h := New(store, cfg)
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/users", h.ListUsers)
	r.GET("/recipes", h.ListRecipes)
	r.GET("/recipes/:id", h.GetRecipe)

	api := r.Group("/api")
	api.Use(middleware.Auth(store, cfg))
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
	return r, store, cfg
}

// doRequest serves one request and records the response. A non-nil body is
// JSON-encoded; a non-empty token goes into the Authorization header.
func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody parses a response body into a generic envelope map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerAndLogin creates a user through the API and returns a live token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()
	w := doRequest(t, r, "POST", "/register", RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d body %s", username, w.Code, w.Body.String())
	}
	w = doRequest(t, r, "POST", "/login", LoginInput{Email: email, Password: password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: got %d body %s", email, w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["token"].(string)
}
