package recipe

import (
	"context"
	"errors"
	"strings"

	"github.com/whyismycodered/NomNom/domain"
	"github.com/whyismycodered/NomNom/entities"
	"github.com/whyismycodered/NomNom/pkg/scaling"

	"gorm.io/gorm"
)

// filterFetchPageSize is the repository page size used when a budget
// query loads the collection. Budget filtering ranks the whole
// collection, so loadAll walks every page.
const filterFetchPageSize = 200

type (
	RecipeService interface {
		ListRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error)
		FilterByBudget(ctx context.Context, req domain.BudgetFilterRequest) (domain.FilteredRecipesResponse, error)
		FilterByBudgetRange(ctx context.Context, req domain.BudgetRangeRequest) (domain.FilteredRecipesResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, targetServings int) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) ListRecipes(ctx context.Context, req domain.RecipeListRequest) (domain.RecipeListResponse, error) {
	filter := RecipeFilter{
		Category:   req.Category,
		Cuisine:    req.Cuisine,
		Difficulty: req.Difficulty,
	}

	records, count, err := s.recipeRepository.GetRecipes(ctx, filter, req.Page, req.Limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	scaled := make([]domain.ScaledRecipe, 0, len(records))
	for _, record := range records {
		recipe := toDomainRecipe(record)

		target := req.Servings
		if target <= 0 {
			target = int(scaling.ParseServings(recipe.Servings))
		}

		projection, err := scaling.ScaleToServings(recipe, target)
		if err != nil {
			// degenerate stored record, leave it out of the listing
			continue
		}
		scaled = append(scaled, projection)
	}

	return domain.RecipeListResponse{
		Recipes: scaled,
		Total:   count,
		Page:    req.Page,
		Limit:   req.Limit,
	}, nil
}

func (s *recipeService) FilterByBudget(ctx context.Context, req domain.BudgetFilterRequest) (domain.FilteredRecipesResponse, error) {
	recipes, err := s.loadAll(ctx)
	if err != nil {
		return domain.FilteredRecipesResponse{}, err
	}

	filtered := scaling.FilterAndRank(recipes, req.Budget, req.Servings)
	return domain.FilteredRecipesResponse{
		Recipes:        filtered,
		Total:          len(filtered),
		Budget:         req.Budget,
		TargetServings: req.Servings,
	}, nil
}

func (s *recipeService) FilterByBudgetRange(ctx context.Context, req domain.BudgetRangeRequest) (domain.FilteredRecipesResponse, error) {
	recipes, err := s.loadAll(ctx)
	if err != nil {
		return domain.FilteredRecipesResponse{}, err
	}

	filtered := scaling.FilterByBudgetRange(recipes, req.MinBudget, req.MaxBudget, req.Servings)
	return domain.FilteredRecipesResponse{
		Recipes:        filtered,
		Total:          len(filtered),
		TargetServings: req.Servings,
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, targetServings int) (domain.RecipeDetailResponse, error) {
	record, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	recipe := toDomainRecipe(record)
	if targetServings <= 0 {
		targetServings = int(scaling.ParseServings(recipe.Servings))
	}

	projection, err := scaling.ScaleToServings(recipe, targetServings)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return domain.RecipeDetailResponse{
		ScaledRecipe:  projection,
		CostBreakdown: scaling.CostBreakdown(projection),
	}, nil
}

func (s *recipeService) loadAll(ctx context.Context) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0)
	for page := 1; ; page++ {
		records, _, err := s.recipeRepository.GetRecipes(ctx, RecipeFilter{}, page, filterFetchPageSize)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			recipes = append(recipes, toDomainRecipe(record))
		}
		if len(records) < filterFetchPageSize {
			break
		}
	}
	return recipes, nil
}

// toDomainRecipe converts a stored record into the plain shape the
// scaling engine accepts. The engine never sees GORM types.
func toDomainRecipe(record *entities.Recipe) domain.Recipe {
	ingredients := make([]domain.Ingredient, len(record.Ingredients))
	for i, ing := range record.Ingredients {
		ingredients[i] = domain.Ingredient{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			CostPerUnit: ing.CostPerUnit,
			TotalCost:   ing.TotalCost,
		}
	}

	instructions := make([]domain.InstructionStep, len(record.Instructions))
	for i, step := range record.Instructions {
		instructions[i] = domain.InstructionStep{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		}
	}

	var tags []string
	if record.Tags != "" {
		tags = strings.Split(record.Tags, ",")
	}

	return domain.Recipe{
		ID:              record.ID.String(),
		Name:            record.Name,
		Description:     record.Description,
		Ingredients:     ingredients,
		Instructions:    instructions,
		Servings:        record.Servings,
		TotalCost:       record.TotalCost,
		PrepTimeMinutes: record.PrepTimeMinutes,
		CookTimeMinutes: record.CookTimeMinutes,
		Difficulty:      record.Difficulty,
		Category:        record.Category,
		Cuisine:         record.Cuisine,
		Tags:            tags,
	}
}
