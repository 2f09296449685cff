package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/whyismycodered/NomNom/internal/api/handlers"
	"github.com/whyismycodered/NomNom/internal/utils"
	"github.com/whyismycodered/NomNom/pkg/recipe"

	"github.com/whyismycodered/NomNom/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubRepository struct {
	recipes []*entities.Recipe
}

func (s *stubRepository) GetRecipes(ctx context.Context, filter recipe.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.recipes, int64(len(s.recipes)), nil
}

func (s *stubRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	for _, r := range s.recipes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepository) CreateRecipe(ctx context.Context, r *entities.Recipe) error {
	s.recipes = append(s.recipes, r)
	return nil
}

func (s *stubRepository) CountRecipes(ctx context.Context) (int64, error) {
	return int64(len(s.recipes)), nil
}

func newTestApp() (*fiber.App, *entities.Recipe) {
	utils.InitValidator()
	app := fiber.New()

	stored := &entities.Recipe{
		ID:        uuid.New(),
		Name:      "fried rice",
		Servings:  "4",
		TotalCost: 20,
		Ingredients: []entities.Ingredient{
			{ID: uuid.New(), Name: "rice", Quantity: 2, Unit: "cups", CostPerUnit: 10, TotalCost: 20},
		},
	}

	service := recipe.NewRecipeService(&stubRepository{recipes: []*entities.Recipe{stored}})
	handler := handlers.NewRecipeHandler(service, utils.Validate)

	cfg := Config{App: app, RecipeHandler: handler}
	cfg.Setup()
	return app, stored
}

func TestPing(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestListRecipesRoute(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/?servings=8", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Recipes []struct {
				Name        string  `json:"name"`
				ScaleFactor float64 `json:"scale_factor"`
				TotalCost   float64 `json:"total_cost"`
			} `json:"recipes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !body.Success || len(body.Data.Recipes) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Data.Recipes[0].ScaleFactor != 2 || body.Data.Recipes[0].TotalCost != 40 {
		t.Fatalf("recipe not scaled: %+v", body.Data.Recipes[0])
	}
}

func TestListRecipesRejectsBadDifficulty(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/?difficulty=Impossible", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestFilterRouteDegradesToEmpty(t *testing.T) {
	app, _ := newTestApp()

	// missing budget and servings is a normal no-match query, not an error
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/filter", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Recipes []interface{} `json:"recipes"`
			Total   int           `json:"total"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data.Total != 0 || len(body.Data.Recipes) != 0 {
		t.Fatalf("expected empty result, got %+v", body.Data)
	}
}

func TestDetailRouteNotFound(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+uuid.New().String(), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestDetailRouteRejectsMalformedID(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestDetailRouteScalesAndBreaksDown(t *testing.T) {
	app, stored := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+stored.ID.String()+"?servings=8", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			TotalCost      float64 `json:"total_cost"`
			CostPerServing float64 `json:"cost_per_serving"`
			CostBreakdown  []struct {
				Percent float64 `json:"percent"`
			} `json:"cost_breakdown"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Data.TotalCost != 40 || body.Data.CostPerServing != 5 {
		t.Fatalf("unexpected scaled costs: %+v", body.Data)
	}
	if len(body.Data.CostBreakdown) != 1 || body.Data.CostBreakdown[0].Percent != 100 {
		t.Fatalf("unexpected breakdown: %+v", body.Data.CostBreakdown)
	}
}
