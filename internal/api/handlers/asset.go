package handlers

import (
	"net/http"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for media assets
type AssetHandler struct {
	assetService service.AssetServiceInterface
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService service.AssetServiceInterface) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// UploadResponse is returned by a successful image upload
type UploadResponse struct {
	OK    bool          `json:"ok"`
	Asset *models.Asset `json:"asset"`
}

// CreateAsset handles POST /assets
// @Summary Register an asset
// @Description Register an asset record, e.g. an embed or video URL
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body service.CreateAssetRequest true "Asset data"
// @Success 201 {object} models.Asset "Asset created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Constraint violation"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req service.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body", err)
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// UploadImage handles POST /upload/image
// @Summary Upload an image
// @Description Upload an image to blob storage and register it as an asset
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} UploadResponse "Image uploaded"
// @Failure 400 {object} ErrorResponse "No file or file too large"
// @Failure 502 {object} ErrorResponse "Blob storage failure"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upload/image [post]
func (h *AssetHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondBadRequest(c, "file", err)
		return
	}
	defer file.Close()

	asset, err := h.assetService.UploadImage(c.Request.Context(), &service.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{OK: true, Asset: asset})
}
