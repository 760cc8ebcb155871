package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartkuliner-seller-service/internal/dto"
	"smartkuliner-seller-service/internal/service"
)

type RecipeController struct {
	Recipes    *service.RecipeService
	Engagement *service.EngagementService
}

func NewRecipeController(recipes *service.RecipeService, engagement *service.EngagementService) *RecipeController {
	return &RecipeController{Recipes: recipes, Engagement: engagement}
}

// GET /recipes (public browse)
func (ctl *RecipeController) GetAll(c *gin.Context) {
	recipes, err := ctl.Recipes.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/:recipeId
func (ctl *RecipeController) GetByID(c *gin.Context) {
	recipe, err := ctl.Recipes.GetByID(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// POST /seller/recipes
func (ctl *RecipeController) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.Recipes.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// PUT /seller/recipes/:recipeId
func (ctl *RecipeController) Update(c *gin.Context) {
	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.Recipes.Update(c.Request.Context(), c.Param("recipeId"), c.GetString("userID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DELETE /seller/recipes/:recipeId
func (ctl *RecipeController) Delete(c *gin.Context) {
	if err := ctl.Recipes.Delete(c.Request.Context(), c.Param("recipeId"), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// POST /recipes/:recipeId/like
func (ctl *RecipeController) Like(c *gin.Context) {
	if err := ctl.Engagement.Like(c.Request.Context(), c.Param("recipeId"), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe liked"})
}

// DELETE /recipes/:recipeId/like
func (ctl *RecipeController) Unlike(c *gin.Context) {
	if err := ctl.Engagement.Unlike(c.Request.Context(), c.Param("recipeId"), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe unliked"})
}
