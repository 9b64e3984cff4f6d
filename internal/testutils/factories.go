package testutils

import (
	"fmt"
	"time"

	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a published test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Status:     models.ProjectStatusPublished,
		IsFeatured: false,
		OrderIndex: 0,
		Extra:      datatypes.JSON(`{}`),
	}
}

// WithOrdering sets the featured flag and order index
func (f *ProjectFactory) WithOrdering(featured bool, orderIndex int) *models.Project {
	project := f.Create()
	project.IsFeatured = featured
	project.OrderIndex = orderIndex
	return project
}

// WithStatus sets a custom status for the project
func (f *ProjectFactory) WithStatus(status models.ProjectStatus) *models.Project {
	project := f.Create()
	project.Status = status
	return project
}

// WithDates sets the start and end dates
func (f *ProjectFactory) WithDates(start, end time.Time) *models.Project {
	project := f.Create()
	s := datatypes.Date(start)
	e := datatypes.Date(end)
	project.StartDate = &s
	project.EndDate = &e
	return project
}

// I18nFactory provides methods to create test ProjectI18n data
type I18nFactory struct{}

// NewI18nFactory creates a new I18nFactory
func NewI18nFactory() *I18nFactory {
	return &I18nFactory{}
}

// Create creates an i18n row for locale with a slug derived from title
func (f *I18nFactory) Create(locale, title string) models.ProjectI18n {
	summary := fmt.Sprintf("Summary of %s", title)
	return models.ProjectI18n{
		Locale:  locale,
		Title:   title,
		Slug:    Slugify(title),
		Summary: &summary,
		Body:    datatypes.JSON(`[]`),
		SEO:     datatypes.JSON(`{}`),
	}
}

// WithSlug creates an i18n row with an explicit slug
func (f *I18nFactory) WithSlug(locale, title, slug string) models.ProjectI18n {
	row := f.Create(locale, title)
	row.Slug = slug
	return row
}

// LinkFactory provides methods to create test ProjectLink data
type LinkFactory struct{}

// NewLinkFactory creates a new LinkFactory
func NewLinkFactory() *LinkFactory {
	return &LinkFactory{}
}

// Create creates a link of the given kind
func (f *LinkFactory) Create(kind models.LinkKind, url string) models.ProjectLink {
	return models.ProjectLink{
		Kind: kind,
		URL:  url,
	}
}

// Primary creates a primary link of the given kind
func (f *LinkFactory) Primary(kind models.LinkKind, url string) models.ProjectLink {
	link := f.Create(kind, url)
	link.IsPrimary = true
	return link
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates a test image Asset with default values
func (f *AssetFactory) Create() *models.Asset {
	id := uuid.New()
	filename := id.String() + ".jpg"
	path := "uploads/" + filename
	url := "https://storage.example.test/assets/" + path
	provider := "gcs"
	size := int64(1024)
	return &models.Asset{
		BaseModel: models.BaseModel{
			ID: id,
		},
		Type:     models.AssetTypeImage,
		Filename: &filename,
		Filepath: &path,
		URL:      &url,
		Provider: &provider,
		Filesize: &size,
		Metadata: datatypes.JSON(`{}`),
	}
}

// WithType sets a custom type for the asset
func (f *AssetFactory) WithType(assetType models.AssetType) *models.Asset {
	asset := f.Create()
	asset.Type = assetType
	return asset
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project *ProjectFactory
	I18n    *I18nFactory
	Link    *LinkFactory
	Asset   *AssetFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project: NewProjectFactory(),
		I18n:    NewI18nFactory(),
		Link:    NewLinkFactory(),
		Asset:   NewAssetFactory(),
	}
}

// Slugify lowercases s and replaces every run of non-alphanumerics with a dash
func Slugify(s string) string {
	out := make([]rune, 0, len(s))
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			dash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			dash = false
		default:
			if !dash && len(out) > 0 {
				out = append(out, '-')
				dash = true
			}
		}
	}
	if dash {
		out = out[:len(out)-1]
	}
	return string(out)
}
