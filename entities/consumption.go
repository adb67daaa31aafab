package entities

import (
	"github.com/google/uuid"
	"time"
)

// Consumption references exactly one of FoodID or RecipeID. The migration adds
// a CHECK constraint so the database enforces it as well.
type Consumption struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	FoodID     *uuid.UUID `gorm:"type:uuid;index" json:"food_id,omitempty"`
	RecipeID   *uuid.UUID `gorm:"type:uuid;index" json:"recipe_id,omitempty"`
	Quantity   float64    `gorm:"not null" json:"quantity"`
	ConsumedAt time.Time  `gorm:"type:date;index;not null" json:"consumed_at"`

	Food   *Food   `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

func (c *Consumption) OwnedBy(userID string) bool {
	return c.UserID.String() == userID
}

type Weight struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Weight     float64   `gorm:"not null" json:"weight"`
	MeasuredAt time.Time `gorm:"type:date;index;not null" json:"measured_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (w *Weight) OwnedBy(userID string) bool {
	return w.UserID.String() == userID
}
