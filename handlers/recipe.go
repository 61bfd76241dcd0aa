// recipe.go - Recipe browsing and the caller's own recipe listing

package handlers

import (
	"net/http"
	"strconv"

	"go-recipe-backend/models"

	"github.com/gin-gonic/gin"
)

type CreateRecipeInput struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// ListRecipes - GET /recipes
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.store.ListRecipes(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "recipes not found", "conflict")
		return
	}
	respondList(c, len(recipes), recipes)
}

// GetRecipe - GET /recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid recipe id")
		return
	}
	recipe, err := h.store.RecipeByID(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, err, "recipe not found", "conflict")
		return
	}
	respondData(c, http.StatusOK, recipe)
}

// MyRecipes - GET /api/recipes/my-profile
// Lists the caller's own recipes, with a note when there are none yet.
func (h *Handler) MyRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}
	recipes, err := h.store.RecipesByOwner(c.Request.Context(), userID)
	if err != nil {
		respondStoreError(c, err, "recipes not found", "conflict")
		return
	}
	if len(recipes) == 0 {
		respondListMessage(c, 0, recipes, "you have not added any recipes yet")
		return
	}
	respondList(c, len(recipes), recipes)
}

// CreateRecipe - POST /api/recipes
func (h *Handler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var input CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	recipe := models.Recipe{
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
	}
	if err := h.store.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		respondStoreError(c, err, "recipe not found", "recipe already exists")
		return
	}
	respondData(c, http.StatusCreated, recipe)
}
