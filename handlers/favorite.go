// favorite.go - Favorite management and the caller's rating listing

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go-recipe-backend/database"
	"go-recipe-backend/models"

	"github.com/gin-gonic/gin"
)

// ListFavorites - GET /api/favorites
func (h *Handler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	favs, err := h.store.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "favorites not found", "conflict")
		return
	}
	respondList(c, len(favs), favs)
}

// AddFavorite - POST /api/favorites/:recipeId
// The recipe must exist; bookmarking it twice is a conflict.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	recipeID, err := strconv.ParseUint(c.Param("recipeId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}

	if _, err := h.store.RecipeByID(c.Request.Context(), uint(recipeID)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(c, http.StatusNotFound, "recipe not found")
			return
		}
		respondStoreError(c, err, "recipe not found", "conflict")
		return
	}

	fav := models.Favorite{UserID: userID, RecipeID: uint(recipeID)}
	if err := h.store.CreateFavorite(c.Request.Context(), &fav); err != nil {
		respondStoreError(c, err, "recipe not found", "recipe already in favorites")
		return
	}
	respondData(c, http.StatusCreated, fav)
}

// RemoveFavorite - DELETE /api/favorites/:recipeId
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	recipeID, err := strconv.ParseUint(c.Param("recipeId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}
	if err := h.store.DeleteFavorite(c.Request.Context(), userID, uint(recipeID)); err != nil {
		respondStoreError(c, err, "favorite not found", "conflict")
		return
	}
	respondMessage(c, http.StatusOK, "favorite removed")
}

// ListRatings - GET /api/ratings
func (h *Handler) ListRatings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	ratings, err := h.store.ListRatings(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "ratings not found", "conflict")
		return
	}
	respondList(c, len(ratings), ratings)
}
