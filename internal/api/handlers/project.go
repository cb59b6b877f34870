package handlers

import (
	"net/http"

	"project-intake-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for submitted and archived projects
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// GetProject handles GET /projects/:id
// @Summary Get submitted project by ID
// @Description Returns the project with its stored similarity result and the verdict status when the payload can be decoded
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /projects
// @Summary List submitted projects
// @Tags projects
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProjectListResponse "Successfully retrieved projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, pageSize := pagination(c)

	projects, err := h.projectService.ListProjects(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// ListProjectsByMentor handles GET /mentors/:id/projects
// @Summary List projects assigned to a mentor
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {array} service.ProjectResponse "Successfully retrieved projects"
// @Failure 400 {object} map[string]interface{} "Invalid mentor ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /mentors/{id}/projects [get]
func (h *ProjectHandler) ListProjectsByMentor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mentor ID"})
		return
	}

	projects, err := h.projectService.ListProjectsByMentor(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// UpdateStatus handles PUT /projects/:id/status
// @Summary Update project review status
// @Description Sets the status to pending, approved or rejected (case-insensitive)
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param status body service.UpdateStatusRequest true "New status"
// @Success 200 {object} service.ProjectResponse "Status updated"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/status [put]
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetPhases handles GET /projects/:id/phases
// @Summary Get project phase marks
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.PhaseResponse "Phase marks"
// @Failure 400 {object} map[string]interface{} "Invalid project ID"
// @Failure 404 {object} map[string]interface{} "No phase marks recorded"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/phases [get]
func (h *ProjectHandler) GetPhases(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	phases, err := h.projectService.GetPhases(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phases)
}

// UpsertPhases handles PUT /projects/:id/phases
// @Summary Record project phase marks
// @Description Writes the provided marks and remarks. Omitted fields keep their stored value; on first write they default to 0 and "".
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param phases body service.UpsertPhasesRequest true "Phase marks"
// @Success 200 {object} service.PhaseResponse "Phase marks saved"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/phases [put]
func (h *ProjectHandler) UpsertPhases(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req service.UpsertPhasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phases, err := h.projectService.UpsertPhases(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, phases)
}

// ListArchived handles GET /archived-projects
// @Summary List archived projects
// @Description Prior projects the similarity index is built from
// @Tags archived-projects
// @Produce json
// @Success 200 {array} service.ArchivedProjectResponse "Archived projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /archived-projects [get]
func (h *ProjectHandler) ListArchived(c *gin.Context) {
	projects, err := h.projectService.ListArchived()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateArchived handles POST /archived-projects
// @Summary Add an archived project
// @Description The project is searchable after the next index rebuild
// @Tags archived-projects
// @Accept json
// @Produce json
// @Param project body service.CreateArchivedProjectRequest true "Archived project"
// @Success 201 {object} service.ArchivedProjectResponse "Archived project created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Title already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /archived-projects [post]
func (h *ProjectHandler) CreateArchived(c *gin.Context) {
	var req service.CreateArchivedProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.CreateArchived(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}
