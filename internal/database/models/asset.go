package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Asset is a stored media object
type Asset struct {
	BaseModel
	Type     AssetType      `json:"type" gorm:"type:varchar(20);not null"`
	Filename *string        `json:"filename,omitempty" gorm:"type:text"`
	Filepath *string        `json:"filepath,omitempty" gorm:"type:text"`
	URL      *string        `json:"url,omitempty" gorm:"type:text"`
	Provider *string        `json:"provider,omitempty" gorm:"type:varchar(50)"`
	Filesize *int64         `json:"filesize,omitempty"`
	Metadata datatypes.JSON `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for Asset
func (Asset) TableName() string {
	return "assets"
}

// ProjectAsset links a project to an asset with a role and gallery position
type ProjectAsset struct {
	ProjectID   uuid.UUID      `json:"project_id" gorm:"type:uuid;primaryKey"`
	AssetID     uuid.UUID      `json:"asset_id" gorm:"type:uuid;primaryKey;index"`
	Role        AssetRole      `json:"role" gorm:"type:varchar(20);not null;default:'gallery'"`
	Position    int            `json:"position" gorm:"not null;default:0"`
	CaptionI18n datatypes.JSON `json:"caption_i18n" gorm:"column:caption_i18n;type:jsonb"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName returns the table name for ProjectAsset
func (ProjectAsset) TableName() string {
	return "project_assets"
}
