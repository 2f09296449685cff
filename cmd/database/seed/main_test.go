package main

import (
	"context"
	"testing"

	"github.com/whyismycodered/NomNom/domain"
	"github.com/whyismycodered/NomNom/entities"
	"github.com/whyismycodered/NomNom/pkg/recipe"
	"github.com/whyismycodered/NomNom/pkg/scaling"

	"gorm.io/gorm"
)

type memoryRepository struct {
	recipes []*entities.Recipe
}

func (m *memoryRepository) GetRecipes(ctx context.Context, filter recipe.RecipeFilter, page, limit int) ([]*entities.Recipe, int64, error) {
	return m.recipes, int64(len(m.recipes)), nil
}

func (m *memoryRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepository) CreateRecipe(ctx context.Context, r *entities.Recipe) error {
	m.recipes = append(m.recipes, r)
	return nil
}

func (m *memoryRepository) CountRecipes(ctx context.Context) (int64, error) {
	return int64(len(m.recipes)), nil
}

func TestRunSeedPopulatesEmptyDatabase(t *testing.T) {
	repo := &memoryRepository{}

	if err := runSeed(context.Background(), repo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.recipes) != len(seedRecipes) {
		t.Fatalf("seeded %d recipes, want %d", len(repo.recipes), len(seedRecipes))
	}
	for _, record := range repo.recipes {
		if record.TotalCost <= 0 {
			t.Errorf("recipe %q seeded with non-positive total %v", record.Name, record.TotalCost)
		}

		derived := make([]domain.Ingredient, len(record.Ingredients))
		for i, ing := range record.Ingredients {
			derived[i] = domain.Ingredient{
				Name:        ing.Name,
				Quantity:    ing.Quantity,
				Unit:        ing.Unit,
				CostPerUnit: ing.CostPerUnit,
			}
		}
		if got := scaling.ComputeTotalCost(derived); got != record.TotalCost {
			t.Errorf("recipe %q stored total %v, engine derives %v", record.Name, record.TotalCost, got)
		}
	}
}

func TestRunSeedSkipsPopulatedDatabase(t *testing.T) {
	repo := &memoryRepository{
		recipes: []*entities.Recipe{{Name: "already here"}},
	}

	if err := runSeed(context.Background(), repo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.recipes) != 1 {
		t.Fatalf("populated database must be left alone, now holds %d recipes", len(repo.recipes))
	}
}
