package service

import (
	"context"

	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	List(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, error)
	Get(ctx context.Context, id uuid.UUID, locale string) (*ProjectResponse, error)
	Create(ctx context.Context, req *CreateProjectRequest, locale string) (*ProjectResponse, error)
	AttachAsset(ctx context.Context, projectID uuid.UUID, req *AttachAssetRequest) error
	SetCover(ctx context.Context, projectID, assetID uuid.UUID) error
}

// AssetServiceInterface defines the interface for asset service
type AssetServiceInterface interface {
	CreateAsset(ctx context.Context, req *CreateAssetRequest) (*models.Asset, error)
	UploadImage(ctx context.Context, file *UploadFile) (*models.Asset, error)
}

// CatalogServiceInterface defines the interface for the tag and technology catalog
type CatalogServiceInterface interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	ListTechnologies(ctx context.Context) ([]models.Technology, error)
	GetOrCreateTag(ctx context.Context, req *CreateTagRequest) (*models.Tag, error)
	GetOrCreateTechnology(ctx context.Context, req *CreateTechnologyRequest) (*models.Technology, error)
}
