package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultUploadExt = "jpg"

// ErrStorageNotConfigured is returned by uploads when no blob store is wired
var ErrStorageNotConfigured = errors.New("blob storage is not configured")

// AssetService registers media assets and uploads images to blob storage
type AssetService struct {
	repo      repository.AssetRepositoryInterface
	store     storage.BlobStore
	validator *validator.Validate
	maxBytes  int64
	now       func() time.Time
}

// Ensure AssetService implements AssetServiceInterface
var _ AssetServiceInterface = (*AssetService)(nil)

// NewAssetService creates a new asset service. store may be nil, in which case
// uploads fail with UploadFailed and asset records can still be created.
func NewAssetService(repo repository.AssetRepositoryInterface, store storage.BlobStore, validator *validator.Validate, maxBytes int64) *AssetService {
	return &AssetService{
		repo:      repo,
		store:     store,
		validator: validator,
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// CreateAssetRequest represents the request to register an asset record
type CreateAssetRequest struct {
	Type     models.AssetType `json:"type" validate:"required,oneof=image video embed file"`
	Filename *string          `json:"filename,omitempty"`
	Filepath *string          `json:"filepath,omitempty"`
	URL      *string          `json:"url,omitempty" validate:"omitempty,url"`
	Provider *string          `json:"provider,omitempty" validate:"omitempty,max=50"`
	Filesize *int64           `json:"filesize,omitempty" validate:"omitempty,min=0"`
	Metadata json.RawMessage  `json:"metadata,omitempty" swaggertype:"object"`
}

// UploadFile is an uploaded file as received from the transport
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadMetadata is stored on assets created by UploadImage
type UploadMetadata struct {
	Bucket   string `json:"bucket"`
	Path     string `json:"path"`
	Mimetype string `json:"mimetype"`
	Size     int64  `json:"size"`
}

// CreateAsset stores an asset record without uploading anything
func (s *AssetService) CreateAsset(ctx context.Context, req *CreateAssetRequest) (*models.Asset, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, ValidationFailed(err)
	}
	metadata, err := jsonOrDefault("metadata", req.Metadata, `{}`, '{')
	if err != nil {
		return nil, err
	}

	asset := &models.Asset{
		Type:     req.Type,
		Filename: req.Filename,
		Filepath: req.Filepath,
		URL:      req.URL,
		Provider: req.Provider,
		Filesize: req.Filesize,
		Metadata: metadata,
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// UploadImage writes file to blob storage and records it as an image asset.
// No asset row is written when the upload fails.
func (s *AssetService) UploadImage(ctx context.Context, file *UploadFile) (*models.Asset, error) {
	if file == nil || file.Content == nil {
		return nil, apperrors.ErrNoFile
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	if s.store == nil {
		return nil, apperrors.NewUploadFailedError(ErrStorageNotConfigured)
	}

	path := s.objectPath(file.Filename)
	log := logger.WithContext(ctx).WithField("path", path)

	publicURL, err := s.store.Upload(ctx, path, file.ContentType, file.Content)
	if err != nil {
		log.WithError(err).Error("image upload failed")
		return nil, apperrors.NewUploadFailedError(err)
	}

	metadata, err := json.Marshal(UploadMetadata{
		Bucket:   s.store.Bucket(),
		Path:     path,
		Mimetype: file.ContentType,
		Size:     file.Size,
	})
	if err != nil {
		return nil, apperrors.NewInternalError("encode upload metadata", err)
	}

	provider := s.store.Provider()
	filename := file.Filename
	size := file.Size
	asset := &models.Asset{
		Type:     models.AssetTypeImage,
		Filename: &filename,
		Filepath: &path,
		URL:      &publicURL,
		Provider: &provider,
		Filesize: &size,
		Metadata: datatypes.JSON(metadata),
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			log.WithError(delErr).Warn("failed to remove orphaned upload")
		}
		return nil, err
	}

	log.WithField("asset_id", asset.ID).Info("image uploaded")
	return asset, nil
}

// objectPath returns uploads/<unix-ms>-<random-hex>.<ext> for filename
func (s *AssetService) objectPath(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = defaultUploadExt
	}
	id := uuid.New()
	return fmt.Sprintf("uploads/%d-%s.%s", s.now().UnixMilli(), hex.EncodeToString(id[:6]), ext)
}
