package chatbot

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/chat
// --------------------------------------------------
func (h *Handler) Chat(c *gin.Context) {
	uid, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID, _ := uid.(string)

	var req struct {
		Message        string `json:"message"`
		IncludeContext *bool  `json:"include_context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	includeContext := true
	if req.IncludeContext != nil {
		includeContext = *req.IncludeContext
	}

	reply, err := h.service.Chat(c.Request.Context(), userID, req.Message, includeContext)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "I'm having trouble processing your question right now. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

// --------------------------------------------------
// GET /api/chat/suggestions
// --------------------------------------------------
func (h *Handler) Suggestions(c *gin.Context) {
	uid, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	userID, _ := uid.(string)

	reply, err := h.service.MealSuggestions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "I'm having trouble processing your question right now. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
