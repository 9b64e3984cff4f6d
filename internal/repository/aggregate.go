package repository

import (
	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectAggregate is a project row together with every row that belongs to it.
// Project.I18n, Project.Links and Project.Assets are filled by the loader.
type ProjectAggregate struct {
	Project      models.Project
	Tags         []models.Tag
	Technologies []models.Technology
}

// ProjectDraft is everything needed to persist a new aggregate in one transaction
type ProjectDraft struct {
	Project    models.Project
	I18n       []models.ProjectI18n
	Links      []models.ProjectLink
	ClientName string
	TagSlugs   []string
	TechSlugs  []string
}

// ProjectFilter holds the storage-level list filter. Only status is applied in SQL.
type ProjectFilter struct {
	Status models.ProjectStatus
}

// Child tables counted by CountRows
const (
	TableProjects            = "projects"
	TableProjectI18n         = "project_i18n"
	TableProjectLinks        = "project_links"
	TableProjectTags         = "project_tags"
	TableProjectTechnologies = "project_technologies"
	TableProjectAssets       = "project_assets"
)

type projectTagRow struct {
	ProjectID uuid.UUID
	models.Tag
}

type projectTechnologyRow struct {
	ProjectID uuid.UUID
	models.Technology
}
