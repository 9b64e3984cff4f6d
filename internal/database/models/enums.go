package models

// ProjectStatus represents the publication status of a project
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusPublished ProjectStatus = "published"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// AssetType classifies a stored media object
type AssetType string

const (
	AssetTypeImage AssetType = "image"
	AssetTypeVideo AssetType = "video"
	AssetTypeEmbed AssetType = "embed"
	AssetTypeFile  AssetType = "file"
)

// AssetRole defines how an asset is used by a project
type AssetRole string

const (
	AssetRoleCover   AssetRole = "cover"
	AssetRoleGallery AssetRole = "gallery"
	AssetRoleVideo   AssetRole = "video"
	AssetRoleDoc     AssetRole = "doc"
)

// LinkKind classifies a project link
type LinkKind string

const (
	LinkKindLive    LinkKind = "live"
	LinkKindRepo    LinkKind = "repo"
	LinkKindDemo    LinkKind = "demo"
	LinkKindDocs    LinkKind = "docs"
	LinkKindArticle LinkKind = "article"
	LinkKindDesign  LinkKind = "design"
	LinkKindPackage LinkKind = "package"
)

// TagKind classifies a tag
type TagKind string

const (
	TagKindTag      TagKind = "tag"
	TagKindCategory TagKind = "category"
)

// TechCategory classifies a technology
type TechCategory string

const (
	TechCategoryLanguage  TechCategory = "language"
	TechCategoryFramework TechCategory = "framework"
	TechCategoryLibrary   TechCategory = "library"
	TechCategoryDatabase  TechCategory = "database"
	TechCategoryCloud     TechCategory = "cloud"
	TechCategoryTool      TechCategory = "tool"
	TechCategoryPlatform  TechCategory = "platform"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusPublished, ProjectStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the AssetType is valid
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeImage, AssetTypeVideo, AssetTypeEmbed, AssetTypeFile:
		return true
	}
	return false
}

// IsValid checks if the AssetRole is valid
func (r AssetRole) IsValid() bool {
	switch r {
	case AssetRoleCover, AssetRoleGallery, AssetRoleVideo, AssetRoleDoc:
		return true
	}
	return false
}

// IsValid checks if the LinkKind is valid
func (k LinkKind) IsValid() bool {
	switch k {
	case LinkKindLive, LinkKindRepo, LinkKindDemo, LinkKindDocs, LinkKindArticle, LinkKindDesign, LinkKindPackage:
		return true
	}
	return false
}

// IsValid checks if the TagKind is valid
func (k TagKind) IsValid() bool {
	switch k {
	case TagKindTag, TagKindCategory:
		return true
	}
	return false
}

// IsValid checks if the TechCategory is valid
func (c TechCategory) IsValid() bool {
	switch c {
	case TechCategoryLanguage, TechCategoryFramework, TechCategoryLibrary, TechCategoryDatabase,
		TechCategoryCloud, TechCategoryTool, TechCategoryPlatform:
		return true
	}
	return false
}
