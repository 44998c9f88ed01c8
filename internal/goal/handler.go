package goal

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProfileSource supplies a user's stored biometrics for requests that
// don't carry them. nil means no biometrics on file, not an error.
type ProfileSource interface {
	Biometrics(ctx context.Context, userID string) (*Biometrics, error)
}

type Handler struct {
	service  *Service
	profiles ProfileSource // optional, may be nil
}

func NewHandler(service *Service, profiles ProfileSource) *Handler {
	return &Handler{service: service, profiles: profiles}
}

func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return "", false
	}
	return id, true
}

// --------------------------------------------------
// POST /api/goals
// --------------------------------------------------
func (h *Handler) SetGoal(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		GoalType       string `json:"goal_type"`
		TargetCalories *int   `json:"target_calories"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.service.SetGoal(c.Request.Context(), uid, req.GoalType, req.TargetCalories)
	if err != nil {
		if errors.Is(err, ErrInvalidGoalType) || errors.Is(err, ErrInvalidCalories) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save goal"})
		return
	}

	c.JSON(http.StatusCreated, g)
}

// --------------------------------------------------
// GET /api/goals
// --------------------------------------------------
func (h *Handler) GetGoal(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	g, err := h.service.ActiveGoal(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goal"})
		return
	}
	if g == nil {
		c.JSON(http.StatusOK, gin.H{"goal": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": g})
}

// --------------------------------------------------
// GET /api/goals/recommendations
// --------------------------------------------------
func (h *Handler) GetRecommendations(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	plan, err := h.service.Recommendations(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recommendations"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// --------------------------------------------------
// GET /api/goals/target-calories
// --------------------------------------------------
//
// Biometrics come as query parameters so the endpoint stays a GET:
// ?weight_kg=70&height_cm=175&age=30&activity_level=moderate
// &recompute=true forces a fresh computation even with a stored
// target. Parameters left out fall back to the user's stored profile
// biometrics.
func (h *Handler) GetTargetCalories(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	b := &Biometrics{ActivityLevel: c.Query("activity_level")}

	if raw := c.Query("weight_kg"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg must be a positive number"})
			return
		}
		b.WeightKg = &v
	}
	if raw := c.Query("height_cm"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "height_cm must be a positive number"})
			return
		}
		b.HeightCm = &v
	}
	if raw := c.Query("age"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a positive integer"})
			return
		}
		b.Age = &v
	}

	// Query parameters win; whatever they leave out is filled from
	// the stored profile.
	if h.profiles != nil && (!b.Complete() || b.ActivityLevel == "") {
		stored, err := h.profiles.Biometrics(c.Request.Context(), uid)
		if err != nil {
			log.Printf("profile biometrics lookup failed for user %s: %v", uid, err)
		} else if stored != nil {
			if b.WeightKg == nil {
				b.WeightKg = stored.WeightKg
			}
			if b.HeightCm == nil {
				b.HeightCm = stored.HeightCm
			}
			if b.Age == nil {
				b.Age = stored.Age
			}
			if b.ActivityLevel == "" {
				b.ActivityLevel = stored.ActivityLevel
			}
		}
	}

	recompute := c.Query("recompute") == "true"

	target, err := h.service.TargetCalories(c.Request.Context(), uid, b, recompute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute target calories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"target_calories": target})
}
