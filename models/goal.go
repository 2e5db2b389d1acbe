package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds each user's daily macro targets.
type DailyGoal struct {
    gorm.Model `json:"-"`
    UserID     uint    `gorm:"uniqueIndex;not null" json:"-"`
    Calories   int     `json:"calories"` // e.g. 2000 kcal
    Protein    float64 `json:"protein"`  // e.g. 100 g
    Carbs      float64 `json:"carbs"`    // e.g. 250 g
    Fats       float64 `json:"fats"`     // e.g. 70 g
}
