package embedder

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the service over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the service's endpoints to the engine.
func RegisterRoutes(engine *gin.Engine, h *Handler) {
	engine.GET("/health", h.Health)
	engine.POST("/embed", h.Embed)
}

// Health reports model/device/readiness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health())
}

// Embed generates embeddings for the posted texts.
func (h *Handler) Embed(c *gin.Context) {
	var req EmbedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.service.Embed(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrEmptyTexts) || errors.Is(err, ErrTooManyTexts) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Encoding failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
