package chatbot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/zhu0lin/hack-knight/internal/category"
	"github.com/zhu0lin/hack-knight/internal/nutrition"
)

type Service struct {
	llm    Generator
	engine *nutrition.Service

	now func() time.Time
}

func NewService(llm Generator, engine *nutrition.Service) *Service {
	return &Service{
		llm:    llm,
		engine: engine,
		now:    time.Now,
	}
}

// Context assembles the user's nutrition snapshot for today into a
// prompt fragment. Failures degrade to a placeholder line rather than
// blocking the chat.
func (s *Service) Context(ctx context.Context, userID string) string {
	today := nutrition.Day(s.now().UTC())

	logs, err := s.engine.Logs(ctx, userID, 100, &today, &today)
	if err != nil {
		log.Printf("chatbot: failed to load logs for %s: %v", userID, err)
		return "Unable to retrieve nutrition data."
	}

	missing, err := s.engine.MissingGroups(ctx, userID, today)
	if err != nil {
		log.Printf("chatbot: failed to load missing groups for %s: %v", userID, err)
		return "Unable to retrieve nutrition data."
	}

	streak, err := s.engine.Streak(ctx, userID)
	if err != nil {
		log.Printf("chatbot: failed to load streak for %s: %v", userID, err)
		return "Unable to retrieve nutrition data."
	}

	counts := map[category.Category]int{}
	totalCalories := 0
	for _, entry := range logs {
		if cat, ok := category.Normalize(string(entry.Category)); ok {
			counts[cat]++
		}
		if entry.Calories != nil {
			totalCalories += *entry.Calories
		}
	}

	missingNames := make([]string, 0, len(missing))
	for _, cat := range missing {
		missingNames = append(missingNames, string(cat))
	}
	missingLine := "None"
	if len(missingNames) > 0 {
		missingLine = strings.Join(missingNames, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Today's nutrition data:\n")
	fmt.Fprintf(&b, "- Meals logged: %d\n", len(logs))
	fmt.Fprintf(&b,
		"- Categories: Fruits (%d), Vegetables (%d), Protein (%d), Dairy (%d), Grains (%d)\n",
		counts[category.Fruit], counts[category.Vegetable], counts[category.Protein],
		counts[category.Dairy], counts[category.Grain],
	)
	fmt.Fprintf(&b, "- Total calories: %d\n", totalCalories)
	fmt.Fprintf(&b, "- Missing groups: %s\n", missingLine)
	fmt.Fprintf(&b, "- Current streak: %d days", streak.Current)

	if len(logs) > 0 {
		limit := len(logs)
		if limit > 5 {
			limit = 5
		}
		foods := make([]string, 0, limit)
		for _, entry := range logs[:limit] {
			name := entry.DetectedName
			if name == "" {
				name = "Unknown"
			}
			foods = append(foods, name)
		}
		fmt.Fprintf(&b, "\n- Recent meals: %s", strings.Join(foods, ", "))
	}

	return b.String()
}

// Chat sends the user's message to the model, optionally prefixed with
// their nutrition context.
func (s *Service) Chat(ctx context.Context, userID, message string, includeContext bool) (string, error) {
	userContext := ""
	if includeContext && userID != "" {
		userContext = s.Context(ctx, userID)
	}
	return s.llm.Generate(ctx, buildPrompt(userContext, message))
}

// MissingGroupsExplanation asks the model about today's gaps.
func (s *Service) MissingGroupsExplanation(ctx context.Context, userID string) (string, error) {
	return s.Chat(ctx, userID, "What food groups am I still missing today?", true)
}

// MealSuggestions asks the model what to eat next.
func (s *Service) MealSuggestions(ctx context.Context, userID string) (string, error) {
	return s.Chat(ctx, userID, "Based on what I've eaten, what should I eat next?", true)
}

// NutritionTips asks the model for quick personalized tips.
func (s *Service) NutritionTips(ctx context.Context, userID string) (string, error) {
	return s.Chat(ctx, userID, "Give me 2-3 quick tips based on my eating today.", true)
}
