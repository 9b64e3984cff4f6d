package repository

import (
	"context"
	"fmt"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AssetRepository handles database operations for assets
type AssetRepository struct {
	db *gorm.DB
}

// Ensure AssetRepository implements AssetRepositoryInterface
var _ AssetRepositoryInterface = (*AssetRepository)(nil)

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts a new asset row
func (r *AssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	if !asset.Type.IsValid() {
		return apperrors.NewConstraintViolationError("assets", "type", fmt.Sprintf("invalid asset type %q", asset.Type))
	}
	if len(asset.Metadata) == 0 {
		asset.Metadata = datatypes.JSON(`{}`)
	}
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return apperrors.TranslateDBError("asset", err)
	}
	return nil
}

// GetByID retrieves an asset by ID
func (r *AssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&asset).Error; err != nil {
		return nil, apperrors.TranslateDBError("asset", err)
	}
	return &asset, nil
}
