package reranker

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
	engine.POST("/rerank", h.Rerank)
}

// Health reports model/device/readiness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Health())
}

func isClientError(err error) bool {
	return errors.Is(err, ErrEmptyQuery) ||
		errors.Is(err, ErrNoCandidates) ||
		errors.Is(err, ErrTooManyCandidates) ||
		errors.Is(err, ErrInvalidTopK)
}

// Rerank scores and ranks the posted candidates.
func (h *Handler) Rerank(c *gin.Context) {
	var req RerankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.service.Rerank(c.Request.Context(), &req)
	if err != nil {
		if isClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Reranking failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
