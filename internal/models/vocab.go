package models

// Vocabularies mirrored from the journaling client's option lists.

var MoodScores = map[string]int{
	"excellent":     10,
	"happy":         9,
	"good":          8,
	"neutral":       6,
	"slightly-down": 5,
	"anxious":       4,
	"stressed":      4,
	"sad":           3,
	"depressed":     2,
	"angry":         2,
}

// Aliases the client occasionally sends for free-form moods. They score like
// their closest vocabulary entry.
var moodAliases = map[string]string{
	"tired": "slightly-down",
	"calm":  "neutral",
}

var SleepQualityScores = map[string]int{
	"poor":      1,
	"fair":      2,
	"good":      3,
	"excellent": 4,
}

var intensityLevels = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

func IsValidMood(mood string) bool {
	if _, ok := MoodScores[mood]; ok {
		return true
	}
	_, ok := moodAliases[mood]
	return ok
}

func IsValidIntensity(intensity string) bool {
	return intensityLevels[intensity]
}

func IsValidSleepQuality(quality string) bool {
	_, ok := SleepQualityScores[quality]
	return ok
}

// MoodScore maps a mood label onto the 1-10 dashboard scale. Unknown labels
// land in the middle rather than skewing the averages.
func MoodScore(mood string) int {
	if score, ok := MoodScores[mood]; ok {
		return score
	}
	if alias, ok := moodAliases[mood]; ok {
		return MoodScores[alias]
	}
	return 5
}
