package insights

import (
	"strings"
	"testing"

	"healthmate/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleLog() *models.HealthLog {
	return &models.HealthLog{
		ID:       "log1",
		UserID:   1,
		Date:     "2024-01-01",
		Symptoms: "headache",
		Meals:    []string{"injera", "shiro wat"},
		Exercise: models.ExerciseLog{
			Type:            "walking",
			DurationMinutes: 30,
			Intensity:       "low",
		},
		Sleep: models.SleepLog{
			Hours:   6,
			Quality: "fair",
		},
		WaterIntakeLiters: 1.0,
		Mood:              "tired",
	}
}

func TestBuildPromptEmbedsEveryFieldVerbatim(t *testing.T) {
	prompt := BuildPrompt(sampleLog())

	assert.Contains(t, prompt, `"date": "2024-01-01"`)
	assert.Contains(t, prompt, `"symptoms": "headache"`)
	assert.Contains(t, prompt, `"injera"`)
	assert.Contains(t, prompt, `"shiro wat"`)
	assert.Contains(t, prompt, `"type":"walking"`)
	assert.Contains(t, prompt, `"durationMinutes":30`)
	assert.Contains(t, prompt, `"intensity":"low"`)
	assert.Contains(t, prompt, `"hours":6`)
	assert.Contains(t, prompt, `"quality":"fair"`)
	assert.Contains(t, prompt, `"water_intake_liters": 1`)
	assert.Contains(t, prompt, `"mood": "tired"`)
}

func TestBuildPromptRequestsExactCounts(t *testing.T) {
	prompt := BuildPrompt(sampleLog())

	assert.Contains(t, prompt, "exactly 3 clear, actionable, personalized health tips")
	assert.Contains(t, prompt, "Suggest 2 reflective questions")
	assert.Contains(t, prompt, `"tips" (array of 3 tips)`)
	assert.Contains(t, prompt, `"questions" (array of 2 reflection questions)`)
}

func TestBuildPromptListsAllSevenKeys(t *testing.T) {
	prompt := BuildPrompt(sampleLog())

	for _, key := range []string{"summary", "causes", "urgency", "tips", "patterns", "motivation", "questions"} {
		assert.Contains(t, prompt, `"`+key+`"`)
	}
}

func TestBuildPromptOmitsOptionalNilFields(t *testing.T) {
	prompt := BuildPrompt(sampleLog())

	assert.False(t, strings.Contains(prompt, "caloriesBurned"))
	assert.False(t, strings.Contains(prompt, "bedtime"))
}

func TestSystemPromptDemandsJSONOnly(t *testing.T) {
	assert.Contains(t, SystemPrompt, "Always respond with valid JSON only.")
}
