package repository

import (
	"context"

	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project aggregate operations
type ProjectRepositoryInterface interface {
	LoadProject(ctx context.Context, id uuid.UUID) (*ProjectAggregate, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]ProjectAggregate, error)
	CreateProject(ctx context.Context, draft *ProjectDraft) (uuid.UUID, error)
	AttachAsset(ctx context.Context, projectID, assetID uuid.UUID, role models.AssetRole, position int, caption datatypes.JSON) error
	SetCover(ctx context.Context, projectID, assetID uuid.UUID) error
	CountRows(ctx context.Context, projectID uuid.UUID) (map[string]int64, error)
}

// AssociationRepositoryInterface defines the interface for shared reference entities.
// A nil tx runs against the root connection.
type AssociationRepositoryInterface interface {
	GetOrCreateTag(ctx context.Context, tx *gorm.DB, slug, name string, kind models.TagKind) (*models.Tag, error)
	GetOrCreateTechnology(ctx context.Context, tx *gorm.DB, slug, name string, category models.TechCategory) (*models.Technology, error)
	GetOrCreateClient(ctx context.Context, tx *gorm.DB, name string) (*models.Client, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	ListTechnologies(ctx context.Context) ([]models.Technology, error)
}

// AssetRepositoryInterface defines the interface for asset operations
type AssetRepositoryInterface interface {
	Create(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error)
}
