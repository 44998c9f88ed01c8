package recognition

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/zhu0lin/hack-knight/internal/category"
)

type stubDetectLabels struct {
	out *rekognition.DetectLabelsOutput
	err error
}

func (s stubDetectLabels) DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error) {
	return s.out, s.err
}

func label(name string, confidence float32) types.Label {
	return types.Label{Name: aws.String(name), Confidence: aws.Float32(confidence)}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		want  category.Category
		ok    bool
	}{
		{"Apple", category.Fruit, true},
		{"broccoli", category.Vegetable, true},
		{"Chicken", category.Protein, true},
		{"Cheese", category.Dairy, true}, // alias via the normalizer
		{"Pizza", category.Grain, true},
		{"Furniture", "", false},
		{"Food", "", false}, // too generic to place in a group
	}
	for _, tt := range tests {
		got, ok := classify(tt.label)
		if ok != tt.ok || got != tt.want {
			t.Errorf("classify(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAnalyzePicksFirstFoodLabel(t *testing.T) {
	rec := &RekognitionRecognizer{client: stubDetectLabels{
		out: &rekognition.DetectLabelsOutput{
			Labels: []types.Label{
				label("Plant", 99),
				label("Banana", 97.5),
				label("Fruit", 95),
			},
		},
	}}

	result, err := rec.Analyze(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Label != "Banana" || result.Category != category.Fruit {
		t.Errorf("got %q/%q, want Banana/fruit", result.Label, result.Category)
	}
	if result.Calories == nil || *result.Calories != 105 {
		t.Errorf("calories = %v, want 105", result.Calories)
	}
	if result.Confidence < 0.97 || result.Confidence > 0.98 {
		t.Errorf("confidence = %v, want 0.975", result.Confidence)
	}
}

func TestAnalyzeFallsBackToCategoryCalories(t *testing.T) {
	rec := &RekognitionRecognizer{client: stubDetectLabels{
		out: &rekognition.DetectLabelsOutput{
			Labels: []types.Label{label("Tortilla", 88)},
		},
	}}

	result, err := rec.Analyze(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Calories == nil || *result.Calories != categoryCalories[category.Grain] {
		t.Errorf("calories = %v, want grain default", result.Calories)
	}
}

func TestAnalyzeNoFoodDetected(t *testing.T) {
	rec := &RekognitionRecognizer{client: stubDetectLabels{
		out: &rekognition.DetectLabelsOutput{
			Labels: []types.Label{label("Furniture", 99), label("Room", 95)},
		},
	}}

	if _, err := rec.Analyze(context.Background(), []byte("img")); !errors.Is(err, ErrNoFoodDetected) {
		t.Fatalf("expected ErrNoFoodDetected, got %v", err)
	}
}
