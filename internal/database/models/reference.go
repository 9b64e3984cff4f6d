package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a shared reference entity, created once and referenced by many projects
type Tag struct {
	BaseModel
	Slug string  `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Name string  `json:"name" gorm:"type:text;not null"`
	Kind TagKind `json:"kind" gorm:"type:varchar(20);not null;default:'tag'"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// Technology is a shared reference entity describing a tool or platform
type Technology struct {
	BaseModel
	Slug     string       `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Name     string       `json:"name" gorm:"type:text;not null"`
	Category TechCategory `json:"category" gorm:"type:varchar(20);not null;default:'tool'"`
}

// TableName returns the table name for Technology
func (Technology) TableName() string {
	return "technologies"
}

// Client is the optional owner or sponsor of a project
type Client struct {
	BaseModel
	Name         string     `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	WebsiteURL   *string    `json:"website_url,omitempty" gorm:"type:text"`
	LogoAssetID  *uuid.UUID `json:"logo_asset_id,omitempty" gorm:"type:uuid"`
	Location     *string    `json:"location,omitempty" gorm:"type:text"`
	Industry     *string    `json:"industry,omitempty" gorm:"type:text"`
	ContactEmail *string    `json:"contact_email,omitempty" gorm:"type:text"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

// ProjectTag links a project to a tag
type ProjectTag struct {
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `json:"tag_id" gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for ProjectTag
func (ProjectTag) TableName() string {
	return "project_tags"
}

// ProjectTechnology links a project to a technology
type ProjectTechnology struct {
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;primaryKey"`
	TechnologyID uuid.UUID `json:"technology_id" gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the table name for ProjectTechnology
func (ProjectTechnology) TableName() string {
	return "project_technologies"
}
