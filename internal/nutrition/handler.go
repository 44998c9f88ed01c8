package nutrition

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zhu0lin/hack-knight/internal/category"
	"github.com/zhu0lin/hack-knight/internal/food"
	"github.com/zhu0lin/hack-knight/internal/recognition"
)

// Uploader stores a food image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

type Handler struct {
	service    *Service
	recognizer recognition.Recognizer
	storage    Uploader
}

func NewHandler(service *Service, recognizer recognition.Recognizer, storage Uploader) *Handler {
	return &Handler{service: service, recognizer: recognizer, storage: storage}
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

func isValidationErr(err error) bool {
	return errors.Is(err, food.ErrNegativeCalories) ||
		errors.Is(err, food.ErrUnknownCategory) ||
		errors.Is(err, food.ErrMissingFoodName) ||
		errors.Is(err, food.ErrInvalidMealType) ||
		errors.Is(err, food.ErrUnparsableLoggedAt) ||
		errors.Is(err, ErrInvalidDate)
}

// --------------------------------------------------
// POST /api/food/logs
// --------------------------------------------------
func (h *Handler) CreateLog(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		DetectedFoodName string `json:"detected_food_name"`
		FoodCategory     string `json:"food_category"`
		Calories         *int   `json:"calories"`
		MealType         string `json:"meal_type"`
		LoggedAt         string `json:"logged_at"`
		ImageURL         string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry := &food.Entry{
		UserID:       uid,
		Category:     category.Category(req.FoodCategory),
		DetectedName: req.DetectedFoodName,
		Calories:     req.Calories,
		MealType:     req.MealType,
		ImageURL:     req.ImageURL,
	}

	if req.LoggedAt != "" {
		t, err := food.ParseLoggedAt(req.LoggedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entry.LoggedAt = t
	}

	summary, err := h.service.Record(c.Request.Context(), entry)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record food log"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": entry, "summary": summary})
}

// --------------------------------------------------
// POST /api/food/upload
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64"`
		MealType    string `json:"meal_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is required"})
		return
	}

	payload := req.ImageBase64
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is not valid base64"})
		return
	}

	result, err := h.recognizer.Analyze(c.Request.Context(), image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "food recognition failed"})
		return
	}

	key := fmt.Sprintf("food-images/%s/%s.jpg", uid, uuid.New().String())
	imageURL, err := h.storage.Upload(c.Request.Context(), key, bytes.NewReader(image))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
		return
	}

	entry := &food.Entry{
		UserID:       uid,
		Category:     result.Category,
		DetectedName: result.Label,
		Calories:     result.Calories,
		MealType:     req.MealType,
		ImageURL:     imageURL,
	}

	summary, err := h.service.Record(c.Request.Context(), entry)
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record food log"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"log":        entry,
		"summary":    summary,
		"confidence": result.Confidence,
	})
}

// --------------------------------------------------
// GET /api/food/logs
// --------------------------------------------------
func (h *Handler) ListLogs(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	var from, to *time.Time
	if raw := c.Query("start_date"); raw != "" {
		t, err := ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		from = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		to = &t
	}

	logs, err := h.service.Logs(c.Request.Context(), uid, limit, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch food logs"})
		return
	}
	if logs == nil {
		logs = []*food.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": len(logs)})
}

// --------------------------------------------------
// DELETE /api/food/logs/:id
// --------------------------------------------------
func (h *Handler) DeleteLog(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteLog(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food log"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --------------------------------------------------
// GET /api/analytics/summary/today
// --------------------------------------------------
func (h *Handler) TodaySummary(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	day := Day(h.service.now().UTC())
	if raw := c.Query("date"); raw != "" {
		t, err := ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		day = t
	}

	summary, err := h.service.Summary(c.Request.Context(), uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// GET /api/analytics/summary/week
// --------------------------------------------------
func (h *Handler) WeekSummaryHandler(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	// Default week: the seven days ending today.
	start := Day(h.service.now().UTC()).AddDate(0, 0, -6)
	if raw := c.Query("start"); raw != "" {
		t, err := ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		start = t
	}

	week, err := h.service.WeekSummary(c.Request.Context(), uid, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch weekly summary"})
		return
	}

	c.JSON(http.StatusOK, week)
}

// --------------------------------------------------
// GET /api/analytics/missing-groups
// --------------------------------------------------
func (h *Handler) MissingGroupsHandler(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	day := Day(h.service.now().UTC())
	if raw := c.Query("date"); raw != "" {
		t, err := ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		day = t
	}

	summary, err := h.service.Summary(c.Request.Context(), uid, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch summary"})
		return
	}

	missing := []category.Category{}
	completed := []category.Category{}
	for _, cat := range category.All() {
		if summary.Count(cat) == 0 {
			missing = append(missing, cat)
		} else {
			completed = append(completed, cat)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":                  FormatDay(day),
		"missing_groups":        missing,
		"completed_groups":      completed,
		"completion_percentage": summary.CompletionPercentage,
	})
}

// --------------------------------------------------
// GET /api/analytics/summary/history
// --------------------------------------------------
func (h *Handler) SummaryHistory(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	summaries, err := h.service.History(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch summaries"})
		return
	}
	if summaries == nil {
		summaries = []*Summary{}
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries, "total": len(summaries)})
}

// --------------------------------------------------
// GET /api/analytics/streak
// --------------------------------------------------
func (h *Handler) GetStreak(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	streak, err := h.service.Streak(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute streak"})
		return
	}

	c.JSON(http.StatusOK, streak)
}
