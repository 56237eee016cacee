package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ExerciseLog describes the exercise portion of a day's entry.
type ExerciseLog struct {
	Type            string  `json:"type" example:"walking"`
	DurationMinutes int     `json:"durationMinutes" example:"30"`
	Intensity       string  `json:"intensity" example:"low"`
	CaloriesBurned  *int    `json:"caloriesBurned,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// SleepLog describes the sleep portion of a day's entry.
type SleepLog struct {
	Hours    float64 `json:"hours" example:"6.5"`
	Quality  string  `json:"quality" example:"fair"`
	Bedtime  *string `json:"bedtime,omitempty"`
	WakeTime *string `json:"wakeTime,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// HealthLog is one user-submitted daily record. Field names stay camelCase on
// the wire to match the journaling client.
type HealthLog struct {
	ID                string                      `gorm:"primaryKey" json:"id" example:"log1"`
	UserID            uint                        `gorm:"index" json:"userId"`
	User              User                        `gorm:"foreignKey:UserID" json:"-"`
	Date              string                      `gorm:"index" json:"date" example:"2024-01-01"`
	Symptoms          string                      `json:"symptoms" example:"headache"`
	Meals             datatypes.JSONSlice[string] `json:"meals"`
	Exercise          ExerciseLog                 `gorm:"embedded;embeddedPrefix:exercise_" json:"exercise"`
	Sleep             SleepLog                    `gorm:"embedded;embeddedPrefix:sleep_" json:"sleep"`
	WaterIntakeLiters float64                     `json:"waterIntakeLiters" example:"1.5"`
	Mood              string                      `json:"mood" example:"tired"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidIntensity = errors.New("exercise intensity must be one of: low, medium, high")
	ErrInvalidQuality   = errors.New("sleep quality must be one of: poor, fair, good, excellent")
	ErrInvalidMood      = errors.New("mood is not in the supported mood list")
	ErrNegativeValue    = errors.New("durations, hours and water intake must be non-negative")
)

// Validate checks the enumerated vocabularies and numeric ranges before a log
// is persisted. Free-text fields are accepted as-is.
func (h *HealthLog) Validate() error {
	if _, err := time.Parse("2006-01-02", h.Date); err != nil {
		return ErrInvalidDate
	}
	if !IsValidIntensity(h.Exercise.Intensity) {
		return ErrInvalidIntensity
	}
	if !IsValidSleepQuality(h.Sleep.Quality) {
		return ErrInvalidQuality
	}
	if !IsValidMood(h.Mood) {
		return ErrInvalidMood
	}
	if h.Exercise.DurationMinutes < 0 || h.Sleep.Hours < 0 || h.WaterIntakeLiters < 0 {
		return ErrNegativeValue
	}
	return nil
}
