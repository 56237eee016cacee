package insights

import (
	"encoding/json"
	"fmt"

	"healthmate/internal/models"
)

// SystemPrompt fixes the assistant persona and the strict-JSON requirement.
// The validator in parse.go is the real enforcement point for the output
// shape; the example output here just keeps the model's formatting stable.
const SystemPrompt = "You are a compassionate and knowledgeable personal health assistant with expertise in nutrition, fitness, sleep, hydration, and mental well-being, familiar with Ethiopian cultural context and common lifestyles. Provide wellness advice and insights based on user health data. Always respond with valid JSON only."

const promptTemplate = `You are a compassionate and knowledgeable personal health assistant with expertise in nutrition, fitness, sleep, hydration, and mental well-being, familiar with Ethiopian cultural context and common lifestyles.

Input JSON:
{
  "date": "%s",
  "symptoms": "%s",
  "meals": %s,
  "exercise": %s,
  "sleep": %s,
  "water_intake_liters": %v,
  "mood": "%s"
}

Your tasks:

1. Analyze the user's symptom description and daily health data holistically.
2. Identify possible causes and assign an urgency level (low, medium, high).
3. Generate exactly 3 clear, actionable, personalized health tips the user can follow tomorrow.
4. Detect and describe any notable health or behavioral patterns.
5. Compose a short, encouraging motivational message tailored to the user's day.
6. Suggest 2 reflective questions to help the user improve their well-being.
7. Format your response strictly as JSON with keys:
   - "summary" (concise, friendly day overview)
   - "causes" (array of possible causes)
   - "urgency" (string: "low", "medium", or "high")
   - "tips" (array of 3 tips)
   - "patterns" (string describing detected patterns)
   - "motivation" (encouraging message)
   - "questions" (array of 2 reflection questions)

Use simple language, avoid medical jargon or diagnoses, and incorporate culturally relevant references (e.g., common Ethiopian foods or activities). Do not include explanations beyond the JSON.

Example output:
{
  "summary": "Today, you reported mild headaches and felt tired. Your meals included injera and shiro, you exercised moderately, but your water intake was low.",
  "causes": ["Dehydration", "Lack of restful sleep", "Possible stress"],
  "urgency": "medium",
  "tips": [
    "Increase your water intake to at least 2 liters tomorrow.",
    "Try to improve your sleep quality by going to bed earlier.",
    "Take short breaks during the day to reduce stress."
  ],
  "patterns": "Your symptoms often occur on days with low hydration and less sleep.",
  "motivation": "Great job tracking your health today! Small changes can make a big difference.",
  "questions": [
    "What small habit can I change tonight to sleep better?",
    "How can I remind myself to drink water throughout the day?"
  ]
}`

// BuildPrompt composes the user instruction for one health log. Every field
// of the log is embedded verbatim as a structured block so the model sees the
// day exactly as the user recorded it. Pure transformation, no side effects.
func BuildPrompt(log *models.HealthLog) string {
	meals, _ := json.Marshal(log.Meals)
	exercise, _ := json.Marshal(log.Exercise)
	sleep, _ := json.Marshal(log.Sleep)

	return fmt.Sprintf(promptTemplate,
		log.Date,
		log.Symptoms,
		string(meals),
		string(exercise),
		string(sleep),
		log.WaterIntakeLiters,
		log.Mood,
	)
}
