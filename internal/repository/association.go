package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssociationRepository resolves shared reference entities (tags, technologies,
// clients) by natural key, creating them on first use.
type AssociationRepository struct {
	db *gorm.DB
}

// Ensure AssociationRepository implements AssociationRepositoryInterface
var _ AssociationRepositoryInterface = (*AssociationRepository)(nil)

// NewAssociationRepository creates a new association repository
func NewAssociationRepository(db *gorm.DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// conn returns tx when the caller runs inside a transaction, the root handle otherwise
func (r *AssociationRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// GetOrCreateTag returns the tag with slug, creating it when absent.
// An existing tag is returned unchanged even if name or kind differ.
func (r *AssociationRepository) GetOrCreateTag(ctx context.Context, tx *gorm.DB, slug, name string, kind models.TagKind) (*models.Tag, error) {
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "tag slug is required")
	}
	if kind == "" {
		kind = models.TagKindTag
	}
	if !kind.IsValid() {
		return nil, apperrors.NewConstraintViolationError("tags", "kind", fmt.Sprintf("invalid tag kind %q", kind))
	}
	if name == "" {
		name = slug
	}

	return getOrCreate(r.conn(ctx, tx), "tag", "slug", slug, func() *models.Tag {
		return &models.Tag{Slug: slug, Name: name, Kind: kind}
	})
}

// GetOrCreateTechnology returns the technology with slug, creating it when absent
func (r *AssociationRepository) GetOrCreateTechnology(ctx context.Context, tx *gorm.DB, slug, name string, category models.TechCategory) (*models.Technology, error) {
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "technology slug is required")
	}
	if category == "" {
		category = models.TechCategoryTool
	}
	if !category.IsValid() {
		return nil, apperrors.NewConstraintViolationError("technologies", "category", fmt.Sprintf("invalid technology category %q", category))
	}
	if name == "" {
		name = slug
	}

	return getOrCreate(r.conn(ctx, tx), "technology", "slug", slug, func() *models.Technology {
		return &models.Technology{Slug: slug, Name: name, Category: category}
	})
}

// GetOrCreateClient returns the client called name, creating it when absent
func (r *AssociationRepository) GetOrCreateClient(ctx context.Context, tx *gorm.DB, name string) (*models.Client, error) {
	if name == "" {
		return nil, apperrors.NewValidationError("client_name", "client name is required")
	}

	return getOrCreate(r.conn(ctx, tx), "client", "name", name, func() *models.Client {
		return &models.Client{Name: name}
	})
}

// ListTags returns every tag ordered by slug
func (r *AssociationRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&tags).Error; err != nil {
		return nil, apperrors.TranslateDBError("tag", err)
	}
	return tags, nil
}

// ListTechnologies returns every technology ordered by slug
func (r *AssociationRepository) ListTechnologies(ctx context.Context) ([]models.Technology, error) {
	var techs []models.Technology
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&techs).Error; err != nil {
		return nil, apperrors.TranslateDBError("technology", err)
	}
	return techs, nil
}

// getOrCreate looks up a row by a unique column and inserts build() when none exists.
// The insert uses ON CONFLICT DO NOTHING, so a concurrent creator of the same key
// never aborts the caller's transaction: losing the race just means re-reading
// the row the winner committed.
func getOrCreate[T any](db *gorm.DB, entity, column, key string, build func() *T) (*T, error) {
	var found T
	err := db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: key}).Take(&found).Error
	if err == nil {
		return &found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.TranslateDBError(entity, err)
	}

	row := build()
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: column}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return nil, apperrors.TranslateDBError(entity, res.Error)
	}
	if res.RowsAffected == 1 {
		return row, nil
	}

	var winner T
	if err := db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: key}).Take(&winner).Error; err != nil {
		return nil, apperrors.TranslateDBError(entity, err)
	}
	return &winner, nil
}
