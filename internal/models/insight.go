package models

import (
	"time"

	"gorm.io/datatypes"
)

// AIInsight is the structured wellness assessment generated from one
// HealthLog. Exactly one "latest" row exists per (user, log) pair; a new
// generation replaces the previous one wholesale.
type AIInsight struct {
	ID          uint                        `gorm:"primaryKey" json:"-"`
	UserID      uint                        `gorm:"uniqueIndex:idx_insight_user_log" json:"-"`
	HealthLogID string                      `gorm:"uniqueIndex:idx_insight_user_log" json:"-"`
	Summary     string                      `json:"summary"`
	Causes      datatypes.JSONSlice[string] `json:"causes"`
	Urgency     string                      `json:"urgency" example:"medium"`
	Tips        datatypes.JSONSlice[string] `json:"tips"`
	Patterns    string                      `json:"patterns"`
	Motivation  string                      `json:"motivation"`
	Questions   datatypes.JSONSlice[string] `json:"questions"`
	GeneratedAt time.Time                   `json:"generatedAt"`
}
