// handler.go - Handler wiring: the store and config are injected once at startup

package handlers

import (
	"go-recipe-backend/config"
	"go-recipe-backend/database"
	"go-recipe-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies every route needs. Constructed once in
// main and shared across requests; it holds no per-request state.
type Handler struct {
	store *database.Store
	cfg   *config.Config
}

func New(store *database.Store, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// currentUserID reads the identity the auth middleware resolved.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
