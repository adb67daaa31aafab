// File: entities/food.go
package entities

import (
	"github.com/google/uuid"
	"time"
)

type Food struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string     `gorm:"not null" json:"name"`
	Kcal      float64    `json:"kcal"`
	Fat       float64    `json:"fat"`
	Carbs     float64    `json:"carbs"`
	Protein   float64    `json:"protein"`
	HiddenAt  *time.Time `gorm:"type:timestamp" json:"hidden_at,omitempty"`
	StarredAt *time.Time `gorm:"type:timestamp" json:"starred_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

func (f *Food) OwnedBy(userID string) bool {
	return f.UserID.String() == userID
}
