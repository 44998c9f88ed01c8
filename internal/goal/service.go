package goal

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetGoal activates a new goal for the user, replacing any prior
// active goal in one atomic transition.
func (s *Service) SetGoal(
	ctx context.Context,
	userID string,
	rawType string,
	targetCalories *int,
) (*Goal, error) {

	goalType, err := ParseType(rawType)
	if err != nil {
		return nil, err
	}
	if targetCalories != nil && *targetCalories <= 0 {
		return nil, ErrInvalidCalories
	}

	g := &Goal{
		UserID:         userID,
		Type:           goalType,
		TargetCalories: targetCalories,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ActiveGoal returns the user's active goal, or nil when none exists.
// Absence is a steady state, not an error.
func (s *Service) ActiveGoal(ctx context.Context, userID string) (*Goal, error) {
	return s.repo.GetActive(ctx, userID)
}

// TargetCalories resolves the user's daily calorie target.
//
// With a stored target on the active goal the stored value wins
// unless recompute is set: the target is computed once and then
// sticky, so later biometric edits don't silently move it. With
// complete biometrics the Mifflin-St Jeor pipeline runs and the
// result is persisted onto the goal; otherwise the per-goal fallback
// applies. No active goal resolves to the maintenance default.
func (s *Service) TargetCalories(
	ctx context.Context,
	userID string,
	b *Biometrics,
	recompute bool,
) (int, error) {

	g, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return noGoalCalories, nil
	}

	if g.TargetCalories != nil && !recompute {
		return *g.TargetCalories, nil
	}

	if !b.Complete() {
		return fallbackCalories[g.Type], nil
	}

	target := computeTarget(g.Type, b)

	if g.TargetCalories == nil || recompute {
		if err := s.repo.UpdateTargetCalories(ctx, g.ID, target); err != nil {
			return 0, fmt.Errorf("persisting computed target: %w", err)
		}
	}
	return target, nil
}

// Recommendations returns the plan for the user's active goal, or the
// maintenance plan when no goal is set.
func (s *Service) Recommendations(ctx context.Context, userID string) (Plan, error) {
	g, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return Plan{}, err
	}
	if g == nil {
		return PlanFor(Maintain), nil
	}
	return PlanFor(g.Type), nil
}

// Advice builds a short personalized nudge from the active goal's
// priority groups and the day's intake. Empty string when there is
// nothing useful to say.
func (s *Service) Advice(
	ctx context.Context,
	userID string,
	currentCalories int,
	groupCounts map[string]int,
) (string, error) {

	g, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return "", err
	}
	if g == nil {
		return "", nil
	}

	plan := PlanFor(g.Type)

	var missingPriority []string
	for _, group := range plan.PriorityGroups {
		if groupCounts[group] == 0 {
			missingPriority = append(missingPriority, group)
		}
	}

	var parts []string
	switch g.Type {
	case LoseWeight:
		if currentCalories > 1800 {
			parts = append(parts, "You're approaching your calorie target for weight loss.")
		}
		if len(missingPriority) > 0 {
			parts = append(parts, fmt.Sprintf("For weight loss, prioritize %s.", strings.Join(missingPriority, ", ")))
		}
	case GainWeight:
		target := fallbackCalories[GainWeight]
		if g.TargetCalories != nil {
			target = *g.TargetCalories
		}
		if float64(currentCalories) < float64(target)*0.6 {
			parts = append(parts, fmt.Sprintf("You need more calories to reach your gain goal (%d daily).", target))
		}
		if groupCounts["protein"] < 3 {
			parts = append(parts, "Add more protein to support muscle growth.")
		}
	case DiabetesManagement:
		if groupCounts["grain"] > 2 {
			parts = append(parts, "Monitor your carb intake. Choose whole grains over refined.")
		}
		if groupCounts["vegetable"] == 0 {
			parts = append(parts, "Add more vegetables for fiber and blood sugar control.")
		}
	}

	return strings.Join(parts, " "), nil
}
