package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository loads and persists project aggregates
type ProjectRepository struct {
	db    *gorm.DB
	assoc AssociationRepositoryInterface
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB, assoc AssociationRepositoryInterface) *ProjectRepository {
	return &ProjectRepository{db: db, assoc: assoc}
}

// LoadProject retrieves one project aggregate by ID
func (r *ProjectRepository) LoadProject(ctx context.Context, id uuid.UUID) (*ProjectAggregate, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&project).Error; err != nil {
		return nil, apperrors.TranslateDBError("project", err)
	}

	aggregates, err := r.loadAggregates(ctx, []models.Project{project})
	if err != nil {
		return nil, err
	}
	return &aggregates[0], nil
}

// ListProjects retrieves all project aggregates with the filter's status,
// in storage order (creation time, then ID)
func (r *ProjectRepository) ListProjects(ctx context.Context, filter ProjectFilter) ([]ProjectAggregate, error) {
	status := filter.Status
	if status == "" {
		status = models.ProjectStatusPublished
	}

	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, apperrors.TranslateDBError("project", err)
	}

	return r.loadAggregates(ctx, projects)
}

// loadAggregates fetches the children of projects with one explicit query per relation
func (r *ProjectRepository) loadAggregates(ctx context.Context, projects []models.Project) ([]ProjectAggregate, error) {
	out := make([]ProjectAggregate, len(projects))
	if len(projects) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(projects))
	index := make(map[uuid.UUID]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		index[p.ID] = i
		out[i].Project = p
		out[i].Project.I18n = []models.ProjectI18n{}
		out[i].Project.Links = []models.ProjectLink{}
		out[i].Project.Assets = []models.ProjectAsset{}
		out[i].Tags = []models.Tag{}
		out[i].Technologies = []models.Technology{}
	}

	db := r.db.WithContext(ctx)

	var i18n []models.ProjectI18n
	if err := db.Where("project_id IN ?", ids).Order("created_at ASC").Order("locale ASC").Find(&i18n).Error; err != nil {
		return nil, apperrors.TranslateDBError("project_i18n", err)
	}
	for _, row := range i18n {
		p := &out[index[row.ProjectID]].Project
		p.I18n = append(p.I18n, row)
	}

	var links []models.ProjectLink
	if err := db.Where("project_id IN ?", ids).Order("position ASC").Order("created_at ASC").Find(&links).Error; err != nil {
		return nil, apperrors.TranslateDBError("project_links", err)
	}
	for _, row := range links {
		p := &out[index[row.ProjectID]].Project
		p.Links = append(p.Links, row)
	}

	var assets []models.ProjectAsset
	if err := db.Where("project_id IN ?", ids).Order("role ASC").Order("position ASC").Find(&assets).Error; err != nil {
		return nil, apperrors.TranslateDBError("project_assets", err)
	}
	for _, row := range assets {
		p := &out[index[row.ProjectID]].Project
		p.Assets = append(p.Assets, row)
	}

	var tags []projectTagRow
	err := db.Table("tags").
		Select("project_tags.project_id AS project_id, tags.*").
		Joins("JOIN project_tags ON project_tags.tag_id = tags.id").
		Where("project_tags.project_id IN ?", ids).
		Order("tags.slug ASC").
		Scan(&tags).Error
	if err != nil {
		return nil, apperrors.TranslateDBError("project_tags", err)
	}
	for _, row := range tags {
		agg := &out[index[row.ProjectID]]
		agg.Tags = append(agg.Tags, row.Tag)
	}

	var techs []projectTechnologyRow
	err = db.Table("technologies").
		Select("project_technologies.project_id AS project_id, technologies.*").
		Joins("JOIN project_technologies ON project_technologies.technology_id = technologies.id").
		Where("project_technologies.project_id IN ?", ids).
		Order("technologies.slug ASC").
		Scan(&techs).Error
	if err != nil {
		return nil, apperrors.TranslateDBError("project_technologies", err)
	}
	for _, row := range techs {
		agg := &out[index[row.ProjectID]]
		agg.Technologies = append(agg.Technologies, row.Technology)
	}

	return out, nil
}

// CreateProject persists a project with its i18n rows, links and tag/technology
// associations in a single transaction. Nothing is written unless every step succeeds.
// The transaction is bound to ctx, so cancelling the request rolls it back.
func (r *ProjectRepository) CreateProject(ctx context.Context, draft *ProjectDraft) (uuid.UUID, error) {
	project := draft.Project
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if len(project.Extra) == 0 {
		project.Extra = datatypes.JSON(`{}`)
	}
	if !project.Status.IsValid() {
		return uuid.Nil, apperrors.NewConstraintViolationError("projects", "status", fmt.Sprintf("invalid status %q", project.Status))
	}
	log := logger.WithContext(ctx).WithField("project_id", project.ID)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if draft.ClientName != "" {
			client, err := r.assoc.GetOrCreateClient(ctx, tx, draft.ClientName)
			if err != nil {
				return err
			}
			project.ClientID = &client.ID
		}

		if err := tx.Omit(clause.Associations).Create(&project).Error; err != nil {
			return apperrors.TranslateDBError("projects", err)
		}

		for i := range draft.I18n {
			row := draft.I18n[i]
			row.ProjectID = project.ID
			if len(row.Body) == 0 {
				row.Body = datatypes.JSON(`[]`)
			}
			if len(row.SEO) == 0 {
				row.SEO = datatypes.JSON(`{}`)
			}
			if err := tx.Create(&row).Error; err != nil {
				return apperrors.TranslateDBError("project_i18n", err)
			}
		}

		for i := range draft.Links {
			row := draft.Links[i]
			if !row.Kind.IsValid() {
				return apperrors.NewConstraintViolationError("project_links", "kind", fmt.Sprintf("invalid link kind %q", row.Kind))
			}
			row.ProjectID = project.ID
			row.Position = i
			if err := tx.Create(&row).Error; err != nil {
				return apperrors.TranslateDBError("project_links", err)
			}
		}

		for _, slug := range draft.TagSlugs {
			tag, err := r.assoc.GetOrCreateTag(ctx, tx, slug, "", models.TagKindTag)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.ProjectTag{ProjectID: project.ID, TagID: tag.ID}).Error; err != nil {
				return apperrors.TranslateDBError("project_tags", err)
			}
		}

		for _, slug := range draft.TechSlugs {
			tech, err := r.assoc.GetOrCreateTechnology(ctx, tx, slug, "", models.TechCategoryTool)
			if err != nil {
				return err
			}
			if err := tx.Create(&models.ProjectTechnology{ProjectID: project.ID, TechnologyID: tech.ID}).Error; err != nil {
				return apperrors.TranslateDBError("project_technologies", err)
			}
		}

		return nil
	})
	if err != nil {
		log.WithError(err).Warn("project create rolled back")
		return uuid.Nil, apperrors.TranslateDBError("projects", err)
	}

	return project.ID, nil
}

// AttachAsset links an asset to a project with a role and gallery position.
// A project keeps at most one cover row; attaching a second cover is rejected.
func (r *ProjectRepository) AttachAsset(ctx context.Context, projectID, assetID uuid.UUID, role models.AssetRole, position int, caption datatypes.JSON) error {
	if role == "" {
		role = models.AssetRoleGallery
	}
	if !role.IsValid() {
		return apperrors.NewConstraintViolationError("project_assets", "role", fmt.Sprintf("invalid asset role %q", role))
	}
	if len(caption) == 0 {
		caption = datatypes.JSON(`{}`)
	}
	if err := r.requireProjectAndAsset(ctx, projectID, assetID); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockProject(tx, projectID); err != nil {
			return err
		}

		var attached int64
		if err := tx.Model(&models.ProjectAsset{}).
			Where("project_id = ? AND asset_id = ?", projectID, assetID).
			Count(&attached).Error; err != nil {
			return apperrors.TranslateDBError("project_assets", err)
		}
		if attached > 0 {
			return apperrors.ErrAssetAlreadyAttached
		}

		if role == models.AssetRoleCover {
			var covers int64
			if err := tx.Model(&models.ProjectAsset{}).
				Where("project_id = ? AND role = ?", projectID, models.AssetRoleCover).
				Count(&covers).Error; err != nil {
				return apperrors.TranslateDBError("project_assets", err)
			}
			if covers > 0 {
				return apperrors.ErrCoverAlreadyAssigned
			}
		}

		row := &models.ProjectAsset{
			ProjectID:   projectID,
			AssetID:     assetID,
			Role:        role,
			Position:    position,
			CaptionI18n: caption,
		}
		if err := tx.Create(row).Error; err != nil {
			return apperrors.TranslateDBError("project_assets", err)
		}
		return nil
	})
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"project_id": projectID,
			"asset_id":   assetID,
		}).WithError(err).Warn("attach asset rolled back")
		return apperrors.TranslateDBError("project_assets", err)
	}
	return nil
}

// SetCover makes assetID the project's cover. The asset's junction row is
// created or promoted to the cover role and any previous cover row is demoted
// to the gallery, so cover_asset_id and the cover row always agree.
func (r *ProjectRepository) SetCover(ctx context.Context, projectID, assetID uuid.UUID) error {
	if err := r.requireProjectAndAsset(ctx, projectID, assetID); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockProject(tx, projectID); err != nil {
			return err
		}

		var row models.ProjectAsset
		err := tx.Where("project_id = ? AND asset_id = ?", projectID, assetID).Take(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = models.ProjectAsset{
				ProjectID:   projectID,
				AssetID:     assetID,
				Role:        models.AssetRoleCover,
				CaptionI18n: datatypes.JSON(`{}`),
			}
			if err := tx.Create(&row).Error; err != nil {
				return apperrors.TranslateDBError("project_assets", err)
			}
		case err != nil:
			return apperrors.TranslateDBError("project_assets", err)
		}

		if err := tx.Model(&models.ProjectAsset{}).
			Where("project_id = ? AND role = ? AND asset_id <> ?", projectID, models.AssetRoleCover, assetID).
			Update("role", models.AssetRoleGallery).Error; err != nil {
			return apperrors.TranslateDBError("project_assets", err)
		}

		if row.Role != models.AssetRoleCover {
			if err := tx.Model(&models.ProjectAsset{}).
				Where("project_id = ? AND asset_id = ?", projectID, assetID).
				Update("role", models.AssetRoleCover).Error; err != nil {
				return apperrors.TranslateDBError("project_assets", err)
			}
		}

		if err := tx.Model(&models.Project{}).
			Where("id = ?", projectID).
			Update("cover_asset_id", assetID).Error; err != nil {
			return apperrors.TranslateDBError("projects", err)
		}
		return nil
	})
	if err != nil {
		return apperrors.TranslateDBError("projects", err)
	}
	return nil
}

// CountRows returns the number of rows referencing projectID in each aggregate table
func (r *ProjectRepository) CountRows(ctx context.Context, projectID uuid.UUID) (map[string]int64, error) {
	db := r.db.WithContext(ctx)
	counts := make(map[string]int64, 6)

	var n int64
	if err := db.Model(&models.Project{}).Where("id = ?", projectID).Count(&n).Error; err != nil {
		return nil, apperrors.TranslateDBError(TableProjects, err)
	}
	counts[TableProjects] = n

	children := []struct {
		table string
		model interface{}
	}{
		{TableProjectI18n, &models.ProjectI18n{}},
		{TableProjectLinks, &models.ProjectLink{}},
		{TableProjectTags, &models.ProjectTag{}},
		{TableProjectTechnologies, &models.ProjectTechnology{}},
		{TableProjectAssets, &models.ProjectAsset{}},
	}
	for _, c := range children {
		var count int64
		if err := db.Model(c.model).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
			return nil, apperrors.TranslateDBError(c.table, err)
		}
		counts[c.table] = count
	}
	return counts, nil
}

// requireProjectAndAsset returns NotFound for whichever side is missing
func (r *ProjectRepository) requireProjectAndAsset(ctx context.Context, projectID, assetID uuid.UUID) error {
	db := r.db.WithContext(ctx)

	var n int64
	if err := db.Model(&models.Project{}).Where("id = ?", projectID).Count(&n).Error; err != nil {
		return apperrors.TranslateDBError("project", err)
	}
	if n == 0 {
		return apperrors.ErrProjectNotFound
	}

	if err := db.Model(&models.Asset{}).Where("id = ?", assetID).Count(&n).Error; err != nil {
		return apperrors.TranslateDBError("asset", err)
	}
	if n == 0 {
		return apperrors.ErrAssetNotFound
	}
	return nil
}

// lockProject serializes cover/attach writes for one project on Postgres.
// SQLite runs on a single connection and needs no row lock.
func lockProject(tx *gorm.DB, projectID uuid.UUID) error {
	if !database.IsPostgres(tx) {
		return nil
	}
	var locked models.Project
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", projectID).
		Take(&locked).Error
	if err != nil {
		return apperrors.TranslateDBError("project", err)
	}
	return nil
}
