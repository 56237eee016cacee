package repository

import (
	"healthmate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InsightRepository interface {
	SaveLatest(insight *models.AIInsight) error
	FindLatest(userID uint, healthLogID string) (*models.AIInsight, error)
}

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db}
}

// SaveLatest replaces the stored insight for (user, log) wholesale. Last
// write wins; there is no version check and no history.
func (r *insightRepository) SaveLatest(insight *models.AIInsight) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "health_log_id"}},
		UpdateAll: true,
	}).Create(insight).Error
}

func (r *insightRepository) FindLatest(userID uint, healthLogID string) (*models.AIInsight, error) {
	var insight models.AIInsight
	err := r.db.Where("user_id = ? AND health_log_id = ?", userID, healthLogID).
		First(&insight).Error
	if err != nil {
		return nil, err
	}
	return &insight, nil
}
