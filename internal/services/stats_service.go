package services

import (
	"math"
	"time"

	"healthmate/internal/models"
	"healthmate/internal/repository"
)

const (
	targetSleepHours      = 8.0
	targetWaterLiters     = 2.0
	targetExerciseMinutes = 30.0
)

// DashboardStats summarizes a user's entire journal for the dashboard header.
type DashboardStats struct {
	TotalLogs            int     `json:"totalLogs"`
	CurrentStreak        int     `json:"currentStreak"`
	AverageMood          float64 `json:"averageMood"`
	AverageSleep         float64 `json:"averageSleep"`
	AverageWaterIntake   float64 `json:"averageWaterIntake"`
	TotalExerciseMinutes int     `json:"totalExerciseMinutes"`
	HealthScore          int     `json:"healthScore"`
}

// HealthMetrics is one day's point in the chart feed. Days without a log are
// zero-filled so the series always covers the requested window.
type HealthMetrics struct {
	Date            string  `json:"date"`
	SleepHours      float64 `json:"sleepHours"`
	SleepQuality    int     `json:"sleepQuality"`
	WaterIntake     float64 `json:"waterIntake"`
	MoodScore       int     `json:"moodScore"`
	ExerciseMinutes int     `json:"exerciseMinutes"`
	SymptomsCount   int     `json:"symptomsCount"`
}

type StatsService struct {
	logs repository.HealthLogRepository
}

func NewStatsService(logs repository.HealthLogRepository) *StatsService {
	return &StatsService{logs: logs}
}

func (s *StatsService) BuildDashboardStats(userID uint, now time.Time) (*DashboardStats, error) {
	logs, err := s.logs.FindAllByUserID(userID, 0)
	if err != nil {
		return nil, err
	}
	return BuildDashboardStats(logs, now), nil
}

func (s *StatsService) BuildMetricsSeries(userID uint, days int, now time.Time) ([]HealthMetrics, error) {
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}

	end := now.Format("2006-01-02")
	start := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	logs, err := s.logs.FindByUserIDAndDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	return BuildMetricsSeries(logs, days, now), nil
}

// BuildDashboardStats aggregates all logs into the dashboard numbers. Pure
// function, separated from the repository fetch so it can be tested on
// synthetic journals.
func BuildDashboardStats(logs []models.HealthLog, now time.Time) *DashboardStats {
	stats := &DashboardStats{TotalLogs: len(logs)}
	if len(logs) == 0 {
		return stats
	}

	var moodSum, sleepSum, waterSum float64
	for _, log := range logs {
		moodSum += float64(models.MoodScore(log.Mood))
		sleepSum += log.Sleep.Hours
		waterSum += log.WaterIntakeLiters
		stats.TotalExerciseMinutes += log.Exercise.DurationMinutes
	}

	n := float64(len(logs))
	stats.AverageMood = roundTo1(moodSum / n)
	stats.AverageSleep = roundTo1(sleepSum / n)
	stats.AverageWaterIntake = roundTo1(waterSum / n)
	stats.CurrentStreak = CurrentStreak(logs, now)

	avgExercise := float64(stats.TotalExerciseMinutes) / n
	stats.HealthScore = HealthScore(stats.AverageSleep, stats.AverageWaterIntake, avgExercise, stats.AverageMood)

	return stats
}

// CurrentStreak counts consecutive logged calendar days ending today, or
// yesterday when today has no entry yet.
func CurrentStreak(logs []models.HealthLog, now time.Time) int {
	logged := make(map[string]bool, len(logs))
	for _, log := range logs {
		logged[log.Date] = true
	}

	day := now
	if !logged[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for logged[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// HealthScore folds the four averages into a 0-100 score, 25 points each,
// capped at the daily targets.
func HealthScore(avgSleep, avgWater, avgExerciseMinutes, avgMood float64) int {
	sleepScore := math.Min(avgSleep/targetSleepHours, 1) * 25
	waterScore := math.Min(avgWater/targetWaterLiters, 1) * 25
	exerciseScore := math.Min(avgExerciseMinutes/targetExerciseMinutes, 1) * 25
	moodScore := math.Min(avgMood/10, 1) * 25
	return int(math.Round(sleepScore + waterScore + exerciseScore + moodScore))
}

// BuildMetricsSeries lays the logs onto a contiguous day axis, oldest first.
func BuildMetricsSeries(logs []models.HealthLog, days int, now time.Time) []HealthMetrics {
	byDate := make(map[string]models.HealthLog, len(logs))
	for _, log := range logs {
		byDate[log.Date] = log
	}

	series := make([]HealthMetrics, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		point := HealthMetrics{Date: date}
		if log, ok := byDate[date]; ok {
			point.SleepHours = log.Sleep.Hours
			point.SleepQuality = models.SleepQualityScores[log.Sleep.Quality]
			point.WaterIntake = log.WaterIntakeLiters
			point.MoodScore = models.MoodScore(log.Mood)
			point.ExerciseMinutes = log.Exercise.DurationMinutes
			if log.Symptoms != "" {
				point.SymptomsCount = 1
			}
		}
		series = append(series, point)
	}
	return series
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
