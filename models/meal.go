package models

import (
    "time"

    "gorm.io/gorm"
)

// Meal is one logged eating event. Records are append-only: once written
// nothing updates or deletes them.
type Meal struct {
    gorm.Model `json:"-"`
    MealID     string    `gorm:"uniqueIndex;not null" json:"id"`
    UserID     uint      `gorm:"index;not null" json:"-"` // FK → users.id
    Email      string    `json:"email"`
    Name       string    `json:"name"` // defaults to "Meal"
    Calories   int       `json:"calories"`
    Protein    float64   `json:"protein"`
    Carbs      float64   `json:"carbs"`
    Fats       float64   `json:"fats"`
    Date       string    `gorm:"index;size:10" json:"date"` // UTC calendar day, YYYY-MM-DD
    PhotoURL   string    `json:"photo_url,omitempty"`
    Created    time.Time `json:"created"` // UTC
}
