package models

import (
    "gorm.io/gorm"
)

// User is a registered account. Email is the account key and is always
// stored lowercased and trimmed.
type User struct {
    gorm.Model   `json:"-"`
    Email        string  `gorm:"uniqueIndex;not null" json:"email"`
    Password     string  `gorm:"not null" json:"-"`
    Name         string  `json:"name"`
    BowlSize     string  `json:"bowl_size,omitempty"`
    TargetWeight float64 `json:"target_weight,omitempty"`
}
