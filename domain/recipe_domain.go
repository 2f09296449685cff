package domain

import (
	"errors"
	"fmt"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessFilterRecipes   = "success filter recipes by budget"
	MessageSuccessBudgetRange     = "success filter recipes by budget range"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedFilterRecipes   = "failed to filter recipes by budget"
	MessageFailedBudgetRange     = "failed to filter recipes by budget range"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrEmptyIngredients = fmt.Errorf("%w: recipe has no ingredients", ErrInvalidArgument)
)

type (
	// Ingredient carries the cost-bearing fields the scaling engine works on.
	// TotalCost is always derived from Quantity * CostPerUnit, never authored.
	Ingredient struct {
		Name        string  `json:"name"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`
		CostPerUnit float64 `json:"cost_per_unit"`
		TotalCost   float64 `json:"total_cost"`
	}

	InstructionStep struct {
		StepNumber  int    `json:"step_number"`
		Description string `json:"description"`
	}

	// Recipe is the plain shape the engine and HTTP layer share. Servings is
	// the raw descriptor as authored: a number, or free text like "4 people".
	Recipe struct {
		ID              string            `json:"id"`
		Name            string            `json:"name"`
		Description     string            `json:"description"`
		Ingredients     []Ingredient      `json:"ingredients"`
		Instructions    []InstructionStep `json:"instructions"`
		Servings        interface{}       `json:"servings"`
		TotalCost       float64           `json:"total_cost"`
		PrepTimeMinutes int               `json:"prep_time_minutes,omitempty"`
		CookTimeMinutes int               `json:"cook_time_minutes,omitempty"`
		Difficulty      string            `json:"difficulty,omitempty"`
		Category        string            `json:"category,omitempty"`
		Cuisine         string            `json:"cuisine,omitempty"`
		Tags            []string          `json:"tags,omitempty"`
	}

	// ScaledRecipe is an ephemeral projection of a Recipe at a target serving
	// count. It is computed fresh per request and never persisted.
	ScaledRecipe struct {
		Recipe
		OriginalServings float64 `json:"original_servings"`
		TargetServings   float64 `json:"target_servings"`
		ScaleFactor      float64 `json:"scale_factor"`
		CostPerServing   float64 `json:"cost_per_serving"`
	}

	FilteredRecipe struct {
		ScaledRecipe
		FitsInBudget bool `json:"fits_in_budget"`
	}

	// IngredientShare is one row of the detail-view cost breakdown.
	IngredientShare struct {
		Name    string  `json:"name"`
		Cost    float64 `json:"cost"`
		Percent float64 `json:"percent"`
	}

	RecipeListRequest struct {
		Servings   int    `json:"servings"`
		Category   string `json:"category,omitempty"`
		Cuisine    string `json:"cuisine,omitempty"`
		Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=Easy Medium Hard"`
		Page       int    `json:"page"`
		Limit      int    `json:"limit"`
	}

	// Budget filter params carry no validation tags: non-positive or
	// missing values leniently produce an empty result, never a 400.
	BudgetFilterRequest struct {
		Budget   float64 `json:"budget"`
		Servings int     `json:"servings"`
	}

	BudgetRangeRequest struct {
		MinBudget float64 `json:"min_budget"`
		MaxBudget float64 `json:"max_budget"`
		Servings  int     `json:"servings"`
	}

	RecipeListResponse struct {
		Recipes []ScaledRecipe `json:"recipes"`
		Total   int64          `json:"total"`
		Page    int            `json:"page"`
		Limit   int            `json:"limit"`
	}

	FilteredRecipesResponse struct {
		Recipes        []FilteredRecipe `json:"recipes"`
		Total          int              `json:"total"`
		Budget         float64          `json:"budget,omitempty"`
		TargetServings int              `json:"target_servings,omitempty"`
	}

	RecipeDetailResponse struct {
		ScaledRecipe
		CostBreakdown []IngredientShare `json:"cost_breakdown"`
	}
)
