package handlers

import (
	"net/http"

	"project-intake-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MentorHandler handles HTTP requests for mentors
type MentorHandler struct {
	mentorService service.MentorServiceInterface
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(mentorService service.MentorServiceInterface) *MentorHandler {
	return &MentorHandler{
		mentorService: mentorService,
	}
}

// CreateMentor handles POST /mentors
// @Summary Register a mentor
// @Tags mentors
// @Accept json
// @Produce json
// @Param mentor body service.CreateMentorRequest true "Mentor data"
// @Success 201 {object} service.MentorResponse "Mentor created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /mentors [post]
func (h *MentorHandler) CreateMentor(c *gin.Context) {
	var req service.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mentor, err := h.mentorService.CreateMentor(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mentor)
}

// GetMentor handles GET /mentors/:id
// @Summary Get mentor by ID
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} service.MentorResponse "Successfully retrieved mentor"
// @Failure 400 {object} map[string]interface{} "Invalid mentor ID"
// @Failure 404 {object} map[string]interface{} "Mentor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /mentors/{id} [get]
func (h *MentorHandler) GetMentor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mentor ID"})
		return
	}

	mentor, err := h.mentorService.GetMentor(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// ListMentors handles GET /mentors
// @Summary List mentors
// @Description Lists mentors with their remaining capacity, optionally for one department
// @Tags mentors
// @Produce json
// @Param dept query string false "Department"
// @Success 200 {array} service.MentorResponse "Successfully retrieved mentors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /mentors [get]
func (h *MentorHandler) ListMentors(c *gin.Context) {
	mentors, err := h.mentorService.ListMentors(c.Query("dept"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentors)
}
