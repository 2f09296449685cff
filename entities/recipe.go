package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Servings        string    `json:"servings"` // raw descriptor, e.g. "4" or "4 people"
	TotalCost       float64   `json:"total_cost"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	CookTimeMinutes int       `json:"cook_time_minutes"`
	Difficulty      string    `json:"difficulty"` // "Easy", "Medium", "Hard"
	Category        string    `json:"category"`
	Cuisine         string    `json:"cuisine"`
	Tags            string    `gorm:"type:text" json:"tags"` // comma separated

	Ingredients  []Ingredient      `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Instructions []InstructionStep `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"instructions"`
	Timestamp
}

type Ingredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	CostPerUnit float64   `json:"cost_per_unit"`
	TotalCost   float64   `json:"total_cost"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

type InstructionStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	StepNumber  int       `json:"step_number"`
	Description string    `gorm:"type:text" json:"description"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
