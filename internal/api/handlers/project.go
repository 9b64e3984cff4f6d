package handlers

import (
	"net/http"

	"portfolio-backend/internal/database/models"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List projects projected for a locale, featured first, then by order index
// @Tags projects
// @Produce json
// @Param locale query string false "Locale (defaults to the configured locale)"
// @Param status query string false "Status filter (draft, published, archived); defaults to published"
// @Param tag query string false "Only projects carrying this tag slug"
// @Param tech query string false "Only projects using this technology slug"
// @Param search query string false "Case-insensitive match on the localized title and summary"
// @Success 200 {array} service.ProjectResponse "Projects"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter := service.ProjectListFilter{
		Locale: c.Query("locale"),
		Status: models.ProjectStatus(c.Query("status")),
		Tag:    c.Query("tag"),
		Tech:   c.Query("tech"),
		Search: c.Query("search"),
	}

	projects, err := h.projectService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a specific project projected for a locale
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param locale query string false "Locale (defaults to the configured locale)"
// @Success 200 {object} service.ProjectResponse "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id, c.Query("locale"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project with its localized text, links, tags and technologies in one transaction
// @Tags projects
// @Accept json
// @Produce json
// @Param locale query string false "Locale of the returned projection"
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Slug or locale already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body", err)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req, c.Query("locale"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// AttachAsset handles POST /projects/:id/assets
// @Summary Attach an asset to a project
// @Description Link an existing asset to a project with a role and position
// @Tags projects
// @Accept json
// @Param id path string true "Project ID (UUID)"
// @Param attachment body service.AttachAssetRequest true "Attachment"
// @Success 204 "Asset attached"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Project or asset not found"
// @Failure 409 {object} ErrorResponse "Already attached or cover already assigned"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/assets [post]
func (h *ProjectHandler) AttachAsset(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AttachAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body", err)
		return
	}

	if err := h.projectService.AttachAsset(c.Request.Context(), projectID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetCover handles POST /projects/:id/cover/:assetId
// @Summary Set the cover asset of a project
// @Description Make an asset the single cover of a project, attaching it when needed
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Param assetId path string true "Asset ID (UUID)"
// @Success 204 "Cover set"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Project or asset not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/cover/{assetId} [post]
func (h *ProjectHandler) SetCover(c *gin.Context) {
	projectID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	assetID, ok := parseUUIDParam(c, "assetId")
	if !ok {
		return
	}

	if err := h.projectService.SetCover(c.Request.Context(), projectID, assetID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 when it is malformed
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondBadRequest(c, name, err)
		return uuid.Nil, false
	}
	return id, true
}
