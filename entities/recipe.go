// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"time"
)

// Recipe macros are never stored; they are derived from Ingredients.
type Recipe struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string     `gorm:"not null" json:"name"`
	Quantity  float64    `gorm:"not null" json:"quantity"`
	HiddenAt  *time.Time `gorm:"type:timestamp" json:"hidden_at,omitempty"`
	StarredAt *time.Time `gorm:"type:timestamp" json:"starred_at,omitempty"`

	Ingredients []Ingredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	User        *User        `gorm:"foreignKey:UserID"`
	Timestamp
}

func (r *Recipe) OwnedBy(userID string) bool {
	return r.UserID.String() == userID
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	FoodID   uuid.UUID `gorm:"type:uuid;index;not null" json:"food_id"`
	Quantity float64   `gorm:"not null" json:"quantity"`

	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT"`
	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (i *Ingredient) OwnedBy(userID string) bool {
	return i.UserID.String() == userID
}
