package insights

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"healthmate/internal/models"

	"gorm.io/datatypes"
)

// ErrMalformedOutput means the model's reply could not be parsed as the
// seven-key insight JSON. There is no partial recovery; the caller logs the
// raw text and fails the request.
var ErrMalformedOutput = errors.New("model output is not valid insight JSON")

// insightPayload is the projection target for the model's reply. Only the
// seven contract keys are read; anything else the model emits (including any
// timestamp of its own) is discarded.
type insightPayload struct {
	Summary    string   `json:"summary"`
	Causes     []string `json:"causes"`
	Urgency    string   `json:"urgency"`
	Tips       []string `json:"tips"`
	Patterns   string   `json:"patterns"`
	Motivation string   `json:"motivation"`
	Questions  []string `json:"questions"`
}

// ParseResponse parses raw model text strictly as JSON and maps it onto the
// insight schema. The urgency label and the tips/questions lengths are passed
// through untouched; the prompt is trusted to have enforced them.
// GeneratedAt is stamped here, at normalization time.
func ParseResponse(raw string) (*models.AIInsight, error) {
	var payload insightPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	return &models.AIInsight{
		Summary:     payload.Summary,
		Causes:      datatypes.JSONSlice[string](payload.Causes),
		Urgency:     payload.Urgency,
		Tips:        datatypes.JSONSlice[string](payload.Tips),
		Patterns:    payload.Patterns,
		Motivation:  payload.Motivation,
		Questions:   datatypes.JSONSlice[string](payload.Questions),
		GeneratedAt: time.Now(),
	}, nil
}
