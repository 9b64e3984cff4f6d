package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is the root of the portfolio aggregate
type Project struct {
	BaseModel
	Status       ProjectStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	IsFeatured   bool            `json:"is_featured" gorm:"not null;default:false"`
	OrderIndex   int             `json:"order_index" gorm:"not null;default:0"`
	ClientID     *uuid.UUID      `json:"client_id,omitempty" gorm:"type:uuid;index"`
	CoverAssetID *uuid.UUID      `json:"cover_asset_id,omitempty" gorm:"type:uuid"`
	StartDate    *datatypes.Date `json:"start_date,omitempty"`
	EndDate      *datatypes.Date `json:"end_date,omitempty"`
	IsOngoing    bool            `json:"is_ongoing" gorm:"not null;default:false"`
	Extra        datatypes.JSON  `json:"extra" gorm:"type:jsonb;not null"`

	// Relationships
	I18n   []ProjectI18n  `json:"i18n,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Links  []ProjectLink  `json:"links,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Assets []ProjectAsset `json:"assets,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectI18n holds the localized text of a project.
// A slug is unique per locale across all projects.
type ProjectI18n struct {
	BaseModel
	ProjectID uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:uq_project_locale,priority:1"`
	Locale    string         `json:"locale" gorm:"size:10;not null;uniqueIndex:uq_project_locale,priority:2;uniqueIndex:uq_locale_slug,priority:1"`
	Title     string         `json:"title" gorm:"type:text;not null"`
	Slug      string         `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:uq_locale_slug,priority:2"`
	Subtitle  *string        `json:"subtitle,omitempty" gorm:"type:text"`
	Summary   *string        `json:"summary,omitempty" gorm:"type:text"`
	Body      datatypes.JSON `json:"body" gorm:"type:jsonb;not null"`
	SEO       datatypes.JSON `json:"seo" gorm:"column:seo;type:jsonb;not null"`
}

// TableName returns the table name for ProjectI18n
func (ProjectI18n) TableName() string {
	return "project_i18n"
}

// ProjectLink is an external link of a project. Position keeps insertion order.
type ProjectLink struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index"`
	Kind      LinkKind  `json:"kind" gorm:"type:varchar(20);not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Label     *string   `json:"label,omitempty" gorm:"type:text"`
	IsPrimary bool      `json:"is_primary" gorm:"not null;default:false"`
	Position  int       `json:"position" gorm:"not null;default:0"`
}

// TableName returns the table name for ProjectLink
func (ProjectLink) TableName() string {
	return "project_links"
}
