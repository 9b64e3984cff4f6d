package handlers

import (
	"net/http"

	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for tags and technologies
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListTags handles GET /tags
// @Summary List tags
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Tag "Tags ordered by slug"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tags [get]
func (h *CatalogHandler) ListTags(c *gin.Context) {
	tags, err := h.catalogService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag handles POST /tags
// @Summary Get or create a tag
// @Description Returns the tag with this slug, creating it when missing. Existing tags are never updated.
// @Tags catalog
// @Accept json
// @Produce json
// @Param tag body service.CreateTagRequest true "Tag data"
// @Success 201 {object} models.Tag "Tag"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Constraint violation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tags [post]
func (h *CatalogHandler) CreateTag(c *gin.Context) {
	var req service.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body", err)
		return
	}

	tag, err := h.catalogService.GetOrCreateTag(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// ListTechnologies handles GET /technologies
// @Summary List technologies
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Technology "Technologies ordered by slug"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /technologies [get]
func (h *CatalogHandler) ListTechnologies(c *gin.Context) {
	techs, err := h.catalogService.ListTechnologies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

// CreateTechnology handles POST /technologies
// @Summary Get or create a technology
// @Description Returns the technology with this slug, creating it when missing
// @Tags catalog
// @Accept json
// @Produce json
// @Param technology body service.CreateTechnologyRequest true "Technology data"
// @Success 201 {object} models.Technology "Technology"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Constraint violation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /technologies [post]
func (h *CatalogHandler) CreateTechnology(c *gin.Context) {
	var req service.CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body", err)
		return
	}

	tech, err := h.catalogService.GetOrCreateTechnology(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}
