package handlers

import (
	"net/http"

	"project-intake-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles team and project submissions
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// CreateTeam handles POST /teams
// @Summary Register a team and its project
// @Description Creates the team, its members and its project proposal, runs the similarity check and assigns a mentor from the first member's department. Nothing is stored unless every step succeeds.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team and project data"
// @Success 201 {object} service.SubmissionResponse "Team registered"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Duplicate team name or member already on a team"
// @Failure 422 {object} map[string]interface{} "No mentor available in the department"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [post]
func (h *SubmissionHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.submissionService.CreateTeamAndProject(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
