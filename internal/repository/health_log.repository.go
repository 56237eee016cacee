package repository

import (
	"healthmate/internal/models"

	"gorm.io/gorm"
)

type HealthLogRepository interface {
	Create(log *models.HealthLog) error
	FindByID(userID uint, id string) (*models.HealthLog, error)
	FindAllByUserID(userID uint, limit int) ([]models.HealthLog, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.HealthLog, error)
	Delete(userID uint, id string) error
	CountByUserID(userID uint) (int64, error)
}

type healthLogRepository struct {
	db *gorm.DB
}

func NewHealthLogRepository(db *gorm.DB) HealthLogRepository {
	return &healthLogRepository{db}
}

func (r *healthLogRepository) Create(log *models.HealthLog) error {
	return r.db.Create(log).Error
}

func (r *healthLogRepository) FindByID(userID uint, id string) (*models.HealthLog, error) {
	var log models.HealthLog
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *healthLogRepository) FindAllByUserID(userID uint, limit int) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	query := r.db.Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}

func (r *healthLogRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.HealthLog, error) {
	var logs []models.HealthLog
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

// Delete removes a log together with its latest insight. The insight is
// subordinate to the log and must not outlive it.
func (r *healthLogRepository) Delete(userID uint, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND health_log_id = ?", userID, id).
			Delete(&models.AIInsight{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.HealthLog{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *healthLogRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.HealthLog{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
