// Package scaling is the single arithmetic engine for serving-size-aware
// recipe cost computation. List pricing, budget filtering, and detail-view
// scaling all funnel through these functions so cost figures stay
// consistent everywhere they appear.
//
// Everything here is pure and stateless: no I/O, no shared mutable state,
// safe under concurrent calls.
package scaling

import (
	"math"
	"sort"

	"github.com/whyismycodered/NomNom/domain"
)

// Round2 rounds v to exactly 2 decimal places using half-up rounding on
// the value scaled by 100. Non-finite input collapses to 0 so NaN and
// Infinity never propagate into downstream totals.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Floor(v*100+0.5) / 100
}

// IngredientCost recomputes an ingredient's derived total from quantity
// and unit price. TotalCost is a cached derived value, never a source of
// truth.
func IngredientCost(ing domain.Ingredient) float64 {
	return Round2(ing.Quantity * ing.CostPerUnit)
}

// ComputeTotalCost recomputes a recipe's derived total as the rounded sum
// of its ingredient costs. Callers invoke this explicitly whenever the
// ingredient list changes.
func ComputeTotalCost(ingredients []domain.Ingredient) float64 {
	var sum float64
	for _, ing := range ingredients {
		sum += IngredientCost(ing)
	}
	return Round2(sum)
}

// ScaleToServings projects recipe onto targetServings, multiplying every
// ingredient quantity and cost by targetServings/originalServings.
//
// The recipe-level total is scaled from the original aggregate rather
// than re-summed from the rounded per-ingredient costs: per-ingredient
// rounding accumulates drift when summed, so the two can differ by a few
// cents. That inconsistency is intentional and bounded by roughly half a
// cent per ingredient.
//
// Returns domain.ErrInvalidArgument when recipe has no ingredients, a
// non-positive total cost, or targetServings is not positive.
func ScaleToServings(recipe domain.Recipe, targetServings int) (domain.ScaledRecipe, error) {
	if len(recipe.Ingredients) == 0 {
		return domain.ScaledRecipe{}, domain.ErrEmptyIngredients
	}
	if recipe.TotalCost <= 0 || targetServings <= 0 {
		return domain.ScaledRecipe{}, domain.ErrInvalidArgument
	}

	originalServings := ParseServings(recipe.Servings)
	target := float64(targetServings)

	// Identity short-circuit: re-scaling by 1 would only introduce
	// rounding noise, so the recipe passes through untouched.
	if originalServings == target {
		scaled := recipe
		scaled.Ingredients = append([]domain.Ingredient(nil), recipe.Ingredients...)
		return domain.ScaledRecipe{
			Recipe:           scaled,
			OriginalServings: originalServings,
			TargetServings:   target,
			ScaleFactor:      1,
			CostPerServing:   Round2(recipe.TotalCost / originalServings),
		}, nil
	}

	factor := target / originalServings

	scaled := recipe
	scaled.Ingredients = make([]domain.Ingredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ing.Quantity = Round2(ing.Quantity * factor)
		ing.TotalCost = Round2(ing.TotalCost * factor)
		scaled.Ingredients[i] = ing
	}
	scaled.TotalCost = Round2(recipe.TotalCost * factor)

	return domain.ScaledRecipe{
		Recipe:           scaled,
		OriginalServings: originalServings,
		TargetServings:   target,
		ScaleFactor:      Round2(factor),
		CostPerServing:   Round2(scaled.TotalCost / target),
	}, nil
}

// FilterAndRank keeps the recipes whose cost, scaled to targetServings,
// fits within budget (inclusive), ranked cheapest-per-serving first.
//
// A non-positive budget or serving count yields an empty list, never an
// error: budget queries are user-driven and "no matches" is always a
// valid answer.
func FilterAndRank(recipes []domain.Recipe, budget float64, targetServings int) []domain.FilteredRecipe {
	result := make([]domain.FilteredRecipe, 0)
	if budget <= 0 || targetServings <= 0 {
		return result
	}

	for _, recipe := range recipes {
		scaled, err := ScaleToServings(recipe, targetServings)
		if err != nil {
			continue
		}
		if scaled.TotalCost > budget {
			continue
		}
		result = append(result, domain.FilteredRecipe{
			ScaledRecipe: scaled,
			FitsInBudget: true,
		})
	}

	rankByCostPerServing(result)
	return result
}

// FilterByBudgetRange keeps the recipes whose cost falls inside the
// inclusive [minBudget, maxBudget] window. A negative minBudget behaves
// as 0; a non-positive maxBudget behaves as unbounded. When
// targetServings is not positive no scaling is applied: each recipe is
// compared at its own stored serving count with its native total.
func FilterByBudgetRange(recipes []domain.Recipe, minBudget, maxBudget float64, targetServings int) []domain.FilteredRecipe {
	if minBudget < 0 {
		minBudget = 0
	}
	if maxBudget <= 0 {
		maxBudget = math.MaxFloat64
	}

	result := make([]domain.FilteredRecipe, 0)
	for _, recipe := range recipes {
		var scaled domain.ScaledRecipe
		if targetServings > 0 {
			var err error
			scaled, err = ScaleToServings(recipe, targetServings)
			if err != nil {
				continue
			}
		} else {
			ownServings := ParseServings(recipe.Servings)
			scaled = domain.ScaledRecipe{
				Recipe:           recipe,
				OriginalServings: ownServings,
				TargetServings:   ownServings,
				ScaleFactor:      1,
				CostPerServing:   CostPerServing(recipe, 0),
			}
		}
		if scaled.TotalCost < minBudget || scaled.TotalCost > maxBudget {
			continue
		}
		result = append(result, domain.FilteredRecipe{
			ScaledRecipe: scaled,
			FitsInBudget: true,
		})
	}

	rankByCostPerServing(result)
	return result
}

// CostPerServing returns the recipe's cost per serving, rounded to 2
// decimals. A non-positive servings argument defaults to the recipe's
// own parsed serving count. Returns 0 rather than dividing by zero when
// the total cost or serving count is absent.
func CostPerServing(recipe domain.Recipe, servings int) float64 {
	count := float64(servings)
	if servings <= 0 {
		count = ParseServings(recipe.Servings)
	}
	if recipe.TotalCost == 0 || count == 0 {
		return 0
	}
	return Round2(recipe.TotalCost / count)
}

// CostBreakdown reports each ingredient's share of the scaled total, for
// the detail view. Shares are percentages of the recipe-level total, so
// they may not sum to exactly 100 after rounding.
func CostBreakdown(scaled domain.ScaledRecipe) []domain.IngredientShare {
	shares := make([]domain.IngredientShare, len(scaled.Ingredients))
	for i, ing := range scaled.Ingredients {
		share := domain.IngredientShare{
			Name: ing.Name,
			Cost: ing.TotalCost,
		}
		if scaled.TotalCost > 0 {
			share.Percent = Round2(ing.TotalCost / scaled.TotalCost * 100)
		}
		shares[i] = share
	}
	return shares
}

// Ties keep input order so equal-cost recipes stay in a stable order.
func rankByCostPerServing(recipes []domain.FilteredRecipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].CostPerServing < recipes[j].CostPerServing
	})
}
