package visual

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
	engine.POST("/embed-image", h.EmbedImage)
	engine.POST("/embed-cross-modal", h.EmbedCrossModal)
	engine.POST("/embed-text", h.EmbedText)
}

// Health reports load status and accelerator placement.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health(c.Request.Context()))
}

// EmbedImage embeds a base64-encoded image.
func (h *Handler) EmbedImage(c *gin.Context) {
	var req EmbedImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.service.EmbedImage(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EmbedCrossModal embeds an image together with text.
func (h *Handler) EmbedCrossModal(c *gin.Context) {
	var req EmbedCrossModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.service.EmbedCrossModal(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EmbedText embeds text through the same model.
func (h *Handler) EmbedText(c *gin.Context) {
	var req EmbedTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	resp, err := h.service.EmbedText(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
	case errors.Is(err, ErrInvalidImage):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Embedding failed: " + err.Error()})
	}
}
