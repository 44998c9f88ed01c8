package recognition

import (
	"context"

	"github.com/zhu0lin/hack-knight/internal/category"
)

// Result is what image analysis produces for a single food photo.
type Result struct {
	Label      string            `json:"label"`
	Category   category.Category `json:"category"`
	Calories   *int              `json:"calories,omitempty"`
	Confidence float64           `json:"confidence"`
}

// Recognizer identifies the food in an image.
type Recognizer interface {
	Analyze(ctx context.Context, image []byte) (*Result, error)
}
