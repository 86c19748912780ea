package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Ingredient is one line of the ingredient list, seasoning amounts included.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// IngredientList is a custom type for storing ingredient pairs in JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StringList is a custom type for handling string arrays in JSONB
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	CookingTime string          `gorm:"size:50" json:"cooking_time"`
	Ingredients IngredientList  `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Preparation StringList      `gorm:"type:jsonb;not null;default:'[]'" json:"preparation"`
	Steps       StringList      `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	ChefComment string          `gorm:"type:text" json:"chef_comment"`
	Memo        string          `gorm:"type:text" json:"memo"`
	ImageURL    string          `gorm:"size:255" json:"image_url"`
	IsPublic    bool            `gorm:"not null;default:false" json:"is_public"`
	Embedding   pgvector.Vector `gorm:"type:vector(3)" json:"-"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
}
