package handlers

import (
	"errors"
	"strconv"

	"github.com/whyismycodered/NomNom/domain"
	"github.com/whyismycodered/NomNom/internal/api/presenters"
	"github.com/whyismycodered/NomNom/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		FilterByBudget(c *fiber.Ctx) error
		FilterByBudgetRange(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	req := domain.RecipeListRequest{
		Servings:   queryInt(c, "servings", 0),
		Category:   c.Query("category", ""),
		Cuisine:    c.Query("cuisine", ""),
		Difficulty: c.Query("difficulty", ""),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 20),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}

	res, err := h.recipeService.ListRecipes(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) FilterByBudget(c *fiber.Ctx) error {
	req := domain.BudgetFilterRequest{
		Budget:   queryFloat(c, "budget"),
		Servings: queryInt(c, "servings", 0),
	}

	res, err := h.recipeService.FilterByBudget(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFilterRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessFilterRecipes)
}

func (h *recipeHandler) FilterByBudgetRange(c *fiber.Ctx) error {
	req := domain.BudgetRangeRequest{
		MinBudget: queryFloat(c, "min_budget"),
		MaxBudget: queryFloat(c, "max_budget"),
		Servings:  queryInt(c, "servings", 0),
	}

	res, err := h.recipeService.FilterByBudgetRange(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBudgetRange, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBudgetRange)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	if _, err := uuid.Parse(recipeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrParseUUID)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, queryInt(c, "servings", 0))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		if errors.Is(err, domain.ErrInvalidArgument) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func queryFloat(c *fiber.Ctx, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key, ""), 64)
	if err != nil {
		return 0
	}
	return v
}
