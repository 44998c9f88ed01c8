package recognition

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/zhu0lin/hack-knight/internal/category"
)

var ErrNoFoodDetected = errors.New("no recognizable food in image")

// DetectLabelsAPI is the slice of the Rekognition client we use.
type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionRecognizer struct {
	client DetectLabelsAPI
}

func NewRekognitionRecognizer(ctx context.Context) (*RekognitionRecognizer, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionRecognizer{client: rekognition.NewFromConfig(cfg)}, nil
}

// Analyze runs DetectLabels and returns the highest-confidence label
// that maps to a known food group.
func (r *RekognitionRecognizer) Analyze(ctx context.Context, image []byte) (*Result, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return nil, err
	}

	for _, l := range out.Labels {
		if l.Name == nil {
			continue
		}
		cat, ok := classify(*l.Name)
		if !ok {
			continue
		}
		kcal := estimateCalories(*l.Name, cat)
		confidence := 0.0
		if l.Confidence != nil {
			confidence = float64(*l.Confidence) / 100
		}
		return &Result{
			Label:      *l.Name,
			Category:   cat,
			Calories:   &kcal,
			Confidence: confidence,
		}, nil
	}

	return nil, ErrNoFoodDetected
}

// StaticRecognizer answers every image with a fixed result. It stands
// in for Rekognition when AWS credentials are not configured.
type StaticRecognizer struct{}

func (StaticRecognizer) Analyze(ctx context.Context, image []byte) (*Result, error) {
	kcal := 95
	return &Result{
		Label:      "Apple",
		Category:   category.Fruit,
		Calories:   &kcal,
		Confidence: 0.92,
	}, nil
}
