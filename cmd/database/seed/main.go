package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/whyismycodered/NomNom/cmd/config"
	migration "github.com/whyismycodered/NomNom/cmd/database/migrate"
	"github.com/whyismycodered/NomNom/domain"
	"github.com/whyismycodered/NomNom/entities"
	"github.com/whyismycodered/NomNom/internal/utils"
	"github.com/whyismycodered/NomNom/pkg/recipe"
	"github.com/whyismycodered/NomNom/pkg/scaling"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type seedIngredient struct {
	Name        string
	Quantity    float64
	Unit        string
	CostPerUnit float64
}

type seedRecipe struct {
	Name        string
	Description string
	Servings    string
	Difficulty  string
	Category    string
	Cuisine     string
	PrepTime    int
	CookTime    int
	Tags        string
	Ingredients []seedIngredient
	Steps       []string
}

var seedRecipes = []seedRecipe{
	{
		Name:        "Chicken Fried Rice",
		Description: "Weeknight fried rice with chicken and vegetables.",
		Servings:    "4",
		Difficulty:  "Easy",
		Category:    "Main",
		Cuisine:     "Asian",
		PrepTime:    15,
		CookTime:    20,
		Tags:        "rice,quick,one-pan",
		Ingredients: []seedIngredient{
			{"jasmine rice", 2, "cups", 1.25},
			{"chicken breast", 1, "lbs", 4.50},
			{"eggs", 3, "pieces", 0.35},
			{"soy sauce", 3, "tbsp", 0.15},
			{"garlic", 3, "cloves", 0.12},
			{"frozen peas", 1, "cups", 0.90},
		},
		Steps: []string{
			"Cook the rice and let it cool.",
			"Stir-fry the chicken until cooked through.",
			"Scramble the eggs, then fold in rice, peas, garlic, and soy sauce.",
		},
	},
	{
		Name:        "Lentil Soup",
		Description: "Hearty red lentil soup for a crowd.",
		Servings:    "6 people",
		Difficulty:  "Easy",
		Category:    "Soup",
		Cuisine:     "Mediterranean",
		PrepTime:    10,
		CookTime:    35,
		Tags:        "vegetarian,budget",
		Ingredients: []seedIngredient{
			{"red lentils", 2, "cups", 0.95},
			{"onion", 1, "pieces", 0.60},
			{"carrots", 2, "pieces", 0.30},
			{"vegetable stock", 1.5, "liters", 1.20},
			{"olive oil", 2, "tbsp", 0.25},
			{"cumin", 1, "tsp", 0.10},
		},
		Steps: []string{
			"Sweat the onion and carrots in olive oil.",
			"Add lentils, cumin, and stock.",
			"Simmer until the lentils fall apart, then blend roughly.",
		},
	},
	{
		Name:        "Beef Lasagna",
		Description: "Classic layered lasagna with slow-cooked ragu.",
		Servings:    "8 to 10",
		Difficulty:  "Hard",
		Category:    "Main",
		Cuisine:     "Italian",
		PrepTime:    45,
		CookTime:    90,
		Tags:        "bake,weekend",
		Ingredients: []seedIngredient{
			{"ground beef", 2, "lbs", 5.80},
			{"lasagna sheets", 1, "pieces", 3.50},
			{"tomato passata", 700, "ml", 0.004},
			{"mozzarella", 400, "grams", 0.02},
			{"parmesan", 100, "grams", 0.03},
			{"onion", 1, "pieces", 0.60},
		},
		Steps: []string{
			"Brown the beef with onion and simmer with passata.",
			"Layer ragu, sheets, and cheese.",
			"Bake until bubbling and golden.",
		},
	},
}

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	repository := recipe.NewRecipeRepository(db)
	if err := runSeed(context.Background(), repository); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

// runSeed populates an empty database through the same repository the
// API serves from. A database that already holds recipes is left alone.
func runSeed(ctx context.Context, repository recipe.RecipeRepository) error {
	count, err := repository.CountRecipes(ctx)
	if err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	if count > 0 {
		fmt.Printf("database already holds %d recipes, skipping seed\n", count)
		return nil
	}

	for _, seed := range seedRecipes {
		record, err := buildRecipe(seed)
		if err != nil {
			return fmt.Errorf("bad seed recipe %q: %w", seed.Name, err)
		}
		if err := repository.CreateRecipe(ctx, record); err != nil {
			return fmt.Errorf("seed recipe %q: %w", seed.Name, err)
		}
		fmt.Printf("seeded %q (total cost %.2f)\n", record.Name, record.TotalCost)
	}
	return nil
}

// buildRecipe derives every cost field through the scaling engine so the
// stored totals obey the same invariants the API serves.
func buildRecipe(seed seedRecipe) (*entities.Recipe, error) {
	ingredients := make([]entities.Ingredient, len(seed.Ingredients))
	derived := make([]domain.Ingredient, len(seed.Ingredients))
	for i, ing := range seed.Ingredients {
		if !scaling.IsValidUnit(ing.Unit) {
			return nil, fmt.Errorf("unknown unit %q for ingredient %q", ing.Unit, ing.Name)
		}
		d := domain.Ingredient{
			Name:        ing.Name,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
			CostPerUnit: ing.CostPerUnit,
		}
		d.TotalCost = scaling.IngredientCost(d)
		derived[i] = d
		ingredients[i] = entities.Ingredient{
			ID:          uuid.New(),
			Name:        d.Name,
			Quantity:    d.Quantity,
			Unit:        d.Unit,
			CostPerUnit: d.CostPerUnit,
			TotalCost:   d.TotalCost,
		}
	}

	steps := make([]entities.InstructionStep, len(seed.Steps))
	for i, step := range seed.Steps {
		steps[i] = entities.InstructionStep{
			ID:          uuid.New(),
			StepNumber:  i + 1,
			Description: step,
		}
	}

	return &entities.Recipe{
		ID:              uuid.New(),
		Name:            seed.Name,
		Description:     seed.Description,
		Servings:        seed.Servings,
		TotalCost:       scaling.ComputeTotalCost(derived),
		PrepTimeMinutes: seed.PrepTime,
		CookTimeMinutes: seed.CookTime,
		Difficulty:      seed.Difficulty,
		Category:        seed.Category,
		Cuisine:         seed.Cuisine,
		Tags:            seed.Tags,
		Ingredients:     ingredients,
		Instructions:    steps,
	}, nil
}
