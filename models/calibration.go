package models

import (
    "gorm.io/gorm"
)

// BowlCalibration stores per-user scaling factors keyed by bowl size,
// applied to estimated macros on the analyze endpoint.
type BowlCalibration struct {
    gorm.Model `json:"-"`
    UserID     uint    `gorm:"uniqueIndex;not null" json:"-"`
    Small      float64 `json:"small"`
    Medium     float64 `json:"medium"`
    Large      float64 `json:"large"`
}
