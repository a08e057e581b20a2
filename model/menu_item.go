package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem is one dish or drink on a user's menu. Category is free text;
// the UI offers Appetizer/Main Course/Dessert/Beverage but nothing enforces
// that set.
type MenuItem struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	Category        string    `json:"category" gorm:"size:50;not null"`
	Price           float64   `json:"price" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text"`
	ImageURL        string    `json:"image_url" gorm:"size:255"`
	IsAvailable     bool      `json:"is_available" gorm:"not null;default:true"`
	PreparationTime int       `json:"preparation_time" gorm:"not null"`
	SpicyLevel      int       `json:"spicy_level" gorm:"not null"` // 0-5
	Calories        *int      `json:"calories"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"not null"`
}

// CategoryCount is one row of the count-by-category chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CategoryPrice is one row of the average/total price charts.
type CategoryPrice struct {
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
