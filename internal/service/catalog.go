package service

import (
	"context"

	"portfolio-backend/internal/database/models"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CatalogService exposes the shared tag and technology reference entities
type CatalogService struct {
	repo      repository.AssociationRepositoryInterface
	validator *validator.Validate
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.AssociationRepositoryInterface, validator *validator.Validate) *CatalogService {
	return &CatalogService{repo: repo, validator: validator}
}

// CreateTagRequest represents the request to get-or-create a tag
type CreateTagRequest struct {
	Slug string         `json:"slug" validate:"required,max=255"`
	Name string         `json:"name,omitempty" validate:"max=255"`
	Kind models.TagKind `json:"kind,omitempty" validate:"omitempty,oneof=tag category"`
}

// CreateTechnologyRequest represents the request to get-or-create a technology
type CreateTechnologyRequest struct {
	Slug     string              `json:"slug" validate:"required,max=255"`
	Name     string              `json:"name,omitempty" validate:"max=255"`
	Category models.TechCategory `json:"category,omitempty" validate:"omitempty,oneof=language framework library database cloud tool platform"`
}

// ListTags returns every tag
func (s *CatalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.repo.ListTags(ctx)
}

// ListTechnologies returns every technology
func (s *CatalogService) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	return s.repo.ListTechnologies(ctx)
}

// GetOrCreateTag returns the tag for req.Slug, creating it when absent
func (s *CatalogService) GetOrCreateTag(ctx context.Context, req *CreateTagRequest) (*models.Tag, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, ValidationFailed(err)
	}
	return s.repo.GetOrCreateTag(ctx, nil, req.Slug, req.Name, req.Kind)
}

// GetOrCreateTechnology returns the technology for req.Slug, creating it when absent
func (s *CatalogService) GetOrCreateTechnology(ctx context.Context, req *CreateTechnologyRequest) (*models.Technology, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, ValidationFailed(err)
	}
	return s.repo.GetOrCreateTechnology(ctx, nil, req.Slug, req.Name, req.Category)
}
