package handlers

import (
	"net/http"

	"project-intake-backend/internal/service"
	"project-intake-backend/internal/vectorindex"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SimilarityHandler exposes the similarity check and index maintenance
type SimilarityHandler struct {
	similarityService service.SimilarityServiceInterface
	validator         *validator.Validate
}

// NewSimilarityHandler creates a new similarity handler
func NewSimilarityHandler(similarityService service.SimilarityServiceInterface, validator *validator.Validate) *SimilarityHandler {
	return &SimilarityHandler{
		similarityService: similarityService,
		validator:         validator,
	}
}

// Evaluate handles POST /similarity/evaluate
// @Summary Check a proposal for near-duplicates
// @Description Runs the similarity check without storing anything. Failures are reported inside the verdict payload, never as an HTTP error.
// @Tags similarity
// @Accept json
// @Produce json
// @Param proposal body service.EvaluateRequest true "Proposal"
// @Success 200 {object} service.SimilarityResult "Similarity result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /similarity/evaluate [post]
func (h *SimilarityHandler) Evaluate(c *gin.Context) {
	var req service.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.similarityService.Evaluate(c.Request.Context(), req.Title, req.Synopsis))
}

// Status handles GET /similarity/index
// @Summary Similarity index status
// @Tags similarity
// @Produce json
// @Success 200 {object} service.IndexStatusResponse "Index status"
// @Router /similarity/index [get]
func (h *SimilarityHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.similarityService.Status())
}

// RebuildIndex handles PUT /similarity/index
// @Summary Rebuild the index from an explicit project list
// @Description Replaces the index with the given projects. An empty list is rejected and the current index is kept.
// @Tags similarity
// @Accept json
// @Produce json
// @Param projects body service.RebuildIndexRequest true "Projects to index"
// @Success 200 {object} service.IndexStatusResponse "Index rebuilt"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /similarity/index [put]
func (h *SimilarityHandler) RebuildIndex(c *gin.Context) {
	var req service.RebuildIndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects := make([]vectorindex.ProjectText, len(req.Projects))
	for i, p := range req.Projects {
		projects[i] = vectorindex.ProjectText{ID: p.ID, Title: p.Title, Synopsis: p.Synopsis}
	}

	status, err := h.similarityService.RebuildIndex(c.Request.Context(), projects)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// RebuildFromStore handles POST /similarity/index/rebuild
// @Summary Rebuild the index from the archived projects
// @Tags similarity
// @Produce json
// @Success 200 {object} service.IndexStatusResponse "Index rebuilt"
// @Failure 400 {object} map[string]interface{} "No archived projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /similarity/index/rebuild [post]
func (h *SimilarityHandler) RebuildFromStore(c *gin.Context) {
	status, err := h.similarityService.RebuildFromStore(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
