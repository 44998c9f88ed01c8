package goal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// stubProfiles is a canned ProfileSource for handler tests.
type stubProfiles struct {
	biometrics *Biometrics
	err        error
}

func (s stubProfiles) Biometrics(ctx context.Context, userID string) (*Biometrics, error) {
	return s.biometrics, s.err
}

func storedBiometrics() *Biometrics {
	weight := 70.0
	height := 175.0
	age := 30
	return &Biometrics{
		WeightKg:      &weight,
		HeightCm:      &height,
		Age:           &age,
		ActivityLevel: "moderate",
	}
}

func newTargetCaloriesRouter(t *testing.T, profiles ProfileSource) *gin.Engine {
	t.Helper()

	repo := NewInMemoryRepository()
	if err := repo.Create(context.Background(), &Goal{UserID: "u1", Type: LoseWeight}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	handler := NewHandler(NewService(repo), profiles)

	router := gin.New()
	router.GET("/api/goals/target-calories", func(c *gin.Context) {
		c.Set("userID", "u1")
		handler.GetTargetCalories(c)
	})
	return router
}

func getTargetCalories(t *testing.T, router *gin.Engine, query string) int {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/goals/target-calories"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var body struct {
		TargetCalories int `json:"target_calories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return body.TargetCalories
}

// TestGetTargetCalories_StoredProfileFallback tests that a request
// without biometric query parameters computes from the stored profile.
func TestGetTargetCalories_StoredProfileFallback(t *testing.T) {
	router := newTargetCaloriesRouter(t, stubProfiles{biometrics: storedBiometrics()})

	got := getTargetCalories(t, router, "")
	if got != 2044 {
		t.Errorf("expected target 2044 from stored profile, got %d", got)
	}
}

// TestGetTargetCalories_QueryParamsOverrideProfile tests that explicit
// query parameters beat the stored profile values.
func TestGetTargetCalories_QueryParamsOverrideProfile(t *testing.T) {
	router := newTargetCaloriesRouter(t, stubProfiles{biometrics: storedBiometrics()})

	got := getTargetCalories(t, router, "?weight_kg=80")
	if got != 2168 {
		t.Errorf("expected target 2168 with overridden weight, got %d", got)
	}
}

// TestGetTargetCalories_ProfileLookupFailure tests that a failed
// profile lookup degrades to the per-goal fallback instead of erroring.
func TestGetTargetCalories_ProfileLookupFailure(t *testing.T) {
	router := newTargetCaloriesRouter(t, stubProfiles{err: errors.New("db down")})

	got := getTargetCalories(t, router, "")
	if got != 1650 {
		t.Errorf("expected lose_weight fallback 1650, got %d", got)
	}
}

// TestGetTargetCalories_NoProfileSource tests the handler wired without
// a profile source.
func TestGetTargetCalories_NoProfileSource(t *testing.T) {
	router := newTargetCaloriesRouter(t, nil)

	got := getTargetCalories(t, router, "")
	if got != 1650 {
		t.Errorf("expected lose_weight fallback 1650, got %d", got)
	}
}
