package repository

import (
	"context"
	"testing"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

// ProjectRepositoryTestSuite tests the ProjectRepository against a real database.
// setup picks the backend: in-memory SQLite here, dockertest Postgres in the integration build.
type ProjectRepositoryTestSuite struct {
	suite.Suite
	setup         func(t *testing.T) *testutils.BaseTestSuite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	assets        *AssetRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = suite.setup(suite.T())

	assoc := NewAssociationRepository(suite.baseTestSuite.DB)
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB, assoc)
	suite.assets = NewAssetRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// newDraft builds a published draft with one "id" i18n row titled title
func (suite *ProjectRepositoryTestSuite) newDraft(title string) *ProjectDraft {
	return &ProjectDraft{
		Project: *suite.factories.Project.Create(),
		I18n:    []models.ProjectI18n{suite.factories.I18n.Create("id", title)},
	}
}

func (suite *ProjectRepositoryTestSuite) createAsset() *models.Asset {
	asset := suite.factories.Asset.Create()
	suite.Require().NoError(suite.assets.Create(suite.ctx, asset))
	return asset
}

func (suite *ProjectRepositoryTestSuite) assertNoRows(projectID uuid.UUID) {
	counts, err := suite.repo.CountRows(suite.ctx, projectID)
	suite.Require().NoError(err)
	for table, n := range counts {
		suite.Zero(n, "table %s should have no rows for the project", table)
	}
}

// TestCreateAndLoad tests that every part of the aggregate is written and read back
func (suite *ProjectRepositoryTestSuite) TestCreateAndLoad() {
	draft := suite.newDraft("Kopi Kenangan Redesign")
	draft.I18n = append(draft.I18n, suite.factories.I18n.Create("en", "Coffee Shop Redesign"))
	draft.Links = []models.ProjectLink{
		suite.factories.Link.Primary(models.LinkKindLive, "https://kopi.example"),
		suite.factories.Link.Create(models.LinkKindRepo, "https://git.example/kopi"),
	}
	draft.TagSlugs = []string{"web", "branding"}
	draft.TechSlugs = []string{"go", "postgres"}
	draft.ClientName = "Kopi Co"

	id, err := suite.repo.CreateProject(suite.ctx, draft)
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, id)

	agg, err := suite.repo.LoadProject(suite.ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, agg.Project.ID)
	suite.Equal(models.ProjectStatusPublished, agg.Project.Status)
	suite.NotNil(agg.Project.ClientID)
	suite.Len(agg.Project.I18n, 2)

	suite.Require().Len(agg.Project.Links, 2)
	suite.Equal(models.LinkKindLive, agg.Project.Links[0].Kind)
	suite.True(agg.Project.Links[0].IsPrimary)
	suite.Equal(models.LinkKindRepo, agg.Project.Links[1].Kind)
	suite.Equal(1, agg.Project.Links[1].Position)

	suite.Require().Len(agg.Tags, 2)
	suite.Equal("branding", agg.Tags[0].Slug)
	suite.Equal("web", agg.Tags[1].Slug)
	suite.Equal("web", agg.Tags[1].Name)
	suite.Equal(models.TagKindTag, agg.Tags[1].Kind)

	suite.Require().Len(agg.Technologies, 2)
	suite.Equal("go", agg.Technologies[0].Slug)
	suite.Equal(models.TechCategoryTool, agg.Technologies[0].Category)

	suite.Empty(agg.Project.Assets)

	counts, err := suite.repo.CountRows(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[TableProjects])
	suite.Equal(int64(2), counts[TableProjectI18n])
	suite.Equal(int64(2), counts[TableProjectLinks])
	suite.Equal(int64(2), counts[TableProjectTags])
	suite.Equal(int64(2), counts[TableProjectTechnologies])
	suite.Equal(int64(0), counts[TableProjectAssets])
}

// TestCreateDefaultsJSONColumns tests that missing JSON blobs are stored as empty values
func (suite *ProjectRepositoryTestSuite) TestCreateDefaultsJSONColumns() {
	draft := suite.newDraft("Bare")
	draft.Project.Extra = nil
	draft.I18n[0].Body = nil
	draft.I18n[0].SEO = nil

	id, err := suite.repo.CreateProject(suite.ctx, draft)
	suite.Require().NoError(err)

	agg, err := suite.repo.LoadProject(suite.ctx, id)
	suite.Require().NoError(err)
	suite.JSONEq(`{}`, string(agg.Project.Extra))
	suite.JSONEq(`[]`, string(agg.Project.I18n[0].Body))
	suite.JSONEq(`{}`, string(agg.Project.I18n[0].SEO))
}

// TestCreateDuplicateSlugSameLocale tests that a slug cannot be reused within a locale
func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateSlugSameLocale() {
	first := suite.newDraft("Alpha")
	_, err := suite.repo.CreateProject(suite.ctx, first)
	suite.Require().NoError(err)

	second := suite.newDraft("Alpha")
	second.TagSlugs = []string{"fresh-tag"}
	id, err := suite.repo.CreateProject(suite.ctx, second)

	suite.Error(err)
	suite.Equal(uuid.Nil, id)
	suite.True(apperrors.IsConstraintViolation(err))
	suite.ErrorIs(err, apperrors.ErrDuplicateSlug)
	suite.assertNoRows(second.Project.ID)
}

// TestCreateLaterSlugCollisionWritesNothing tests that a collision on a later i18n row undoes the whole create
func (suite *ProjectRepositoryTestSuite) TestCreateLaterSlugCollisionWritesNothing() {
	first := suite.newDraft("Alpha")
	_, err := suite.repo.CreateProject(suite.ctx, first)
	suite.Require().NoError(err)

	second := &ProjectDraft{
		Project: *suite.factories.Project.Create(),
		I18n: []models.ProjectI18n{
			suite.factories.I18n.WithSlug("en", "Alpha in English", "alpha-en"),
			suite.factories.I18n.Create("id", "Alpha"),
		},
		Links:      []models.ProjectLink{suite.factories.Link.Primary(models.LinkKindLive, "https://alpha.example")},
		TagSlugs:   []string{"fresh-tag"},
		TechSlugs:  []string{"fresh-tech"},
		ClientName: "Fresh Client",
	}
	id, err := suite.repo.CreateProject(suite.ctx, second)

	suite.Equal(uuid.Nil, id)
	suite.True(apperrors.IsConstraintViolation(err))
	suite.ErrorIs(err, apperrors.ErrDuplicateSlug)
	suite.assertNoRows(second.Project.ID)

	db := suite.baseTestSuite.DB
	var tags, techs, clients, projects int64
	suite.NoError(db.Model(&models.Tag{}).Where("slug = ?", "fresh-tag").Count(&tags).Error)
	suite.NoError(db.Model(&models.Technology{}).Where("slug = ?", "fresh-tech").Count(&techs).Error)
	suite.NoError(db.Model(&models.Client{}).Where("name = ?", "Fresh Client").Count(&clients).Error)
	suite.NoError(db.Model(&models.Project{}).Count(&projects).Error)
	suite.Zero(tags)
	suite.Zero(techs)
	suite.Zero(clients)
	suite.Equal(int64(1), projects)
}

// TestCreateSameSlugDifferentLocale tests that slugs are only unique per locale
func (suite *ProjectRepositoryTestSuite) TestCreateSameSlugDifferentLocale() {
	first := suite.newDraft("Alpha")
	_, err := suite.repo.CreateProject(suite.ctx, first)
	suite.Require().NoError(err)

	second := suite.newDraft("Alpha")
	second.I18n[0].Locale = "en"
	_, err = suite.repo.CreateProject(suite.ctx, second)
	suite.NoError(err)
}

// TestCreateDuplicateLocale tests that one project cannot carry two rows for a locale
func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateLocale() {
	draft := suite.newDraft("Alpha")
	draft.I18n = append(draft.I18n, suite.factories.I18n.WithSlug("id", "Alpha Two", "alpha-two"))

	_, err := suite.repo.CreateProject(suite.ctx, draft)
	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateLocale)
	suite.assertNoRows(draft.Project.ID)
}

// TestCreateRollsBackAfterPartialWrites tests atomicity when a late step fails
func (suite *ProjectRepositoryTestSuite) TestCreateRollsBackAfterPartialWrites() {
	draft := suite.newDraft("Half Written")
	draft.ClientName = "Rollback Client"
	draft.Links = []models.ProjectLink{
		suite.factories.Link.Create(models.LinkKindLive, "https://ok.example"),
		suite.factories.Link.Create(models.LinkKind("bogus"), "https://bad.example"),
	}

	_, err := suite.repo.CreateProject(suite.ctx, draft)
	suite.Error(err)
	suite.True(apperrors.IsConstraintViolation(err))
	suite.assertNoRows(draft.Project.ID)

	var clients int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Client{}).Where("name = ?", "Rollback Client").Count(&clients).Error)
	suite.Zero(clients)
}

// TestCreateInvalidStatus tests that an unknown status is rejected before any write
func (suite *ProjectRepositoryTestSuite) TestCreateInvalidStatus() {
	draft := suite.newDraft("Odd Status")
	draft.Project.Status = models.ProjectStatus("retired")

	_, err := suite.repo.CreateProject(suite.ctx, draft)
	suite.True(apperrors.IsConstraintViolation(err))
	suite.assertNoRows(draft.Project.ID)
}

// TestCreateCancelledContext tests that a cancelled request writes nothing
func (suite *ProjectRepositoryTestSuite) TestCreateCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	draft := suite.newDraft("Never Stored")
	draft.TagSlugs = []string{"ghost"}
	_, err := suite.repo.CreateProject(ctx, draft)

	suite.Error(err)
	suite.assertNoRows(draft.Project.ID)
}

// TestLoadProjectNotFound tests loading a non-existent project
func (suite *ProjectRepositoryTestSuite) TestLoadProjectNotFound() {
	agg, err := suite.repo.LoadProject(suite.ctx, uuid.New())

	suite.Nil(agg)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestListProjectsStatusFilter tests that listing defaults to published projects
func (suite *ProjectRepositoryTestSuite) TestListProjectsStatusFilter() {
	published := suite.newDraft("Shown")
	published.TagSlugs = []string{"visible"}
	_, err := suite.repo.CreateProject(suite.ctx, published)
	suite.Require().NoError(err)

	draft := suite.newDraft("Hidden")
	draft.Project.Status = models.ProjectStatusDraft
	_, err = suite.repo.CreateProject(suite.ctx, draft)
	suite.Require().NoError(err)

	list, err := suite.repo.ListProjects(suite.ctx, ProjectFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(published.Project.ID, list[0].Project.ID)
	suite.Require().Len(list[0].Tags, 1)
	suite.Equal("visible", list[0].Tags[0].Slug)

	drafts, err := suite.repo.ListProjects(suite.ctx, ProjectFilter{Status: models.ProjectStatusDraft})
	suite.Require().NoError(err)
	suite.Require().Len(drafts, 1)
	suite.Equal(draft.Project.ID, drafts[0].Project.ID)
	suite.Empty(drafts[0].Tags)
	suite.Empty(drafts[0].Technologies)
}

// TestListProjectsEmpty tests listing with no rows
func (suite *ProjectRepositoryTestSuite) TestListProjectsEmpty() {
	list, err := suite.repo.ListProjects(suite.ctx, ProjectFilter{})
	suite.NoError(err)
	suite.Empty(list)
}

// TestAttachAssetAndSetCover tests the attach/cover round trip
func (suite *ProjectRepositoryTestSuite) TestAttachAssetAndSetCover() {
	id, err := suite.repo.CreateProject(suite.ctx, suite.newDraft("Gallery"))
	suite.Require().NoError(err)
	gallery := suite.createAsset()
	cover := suite.createAsset()

	err = suite.repo.AttachAsset(suite.ctx, id, gallery.ID, models.AssetRoleGallery, 1, datatypes.JSON(`{"en":"Front"}`))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.SetCover(suite.ctx, id, cover.ID))

	agg, err := suite.repo.LoadProject(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Require().NotNil(agg.Project.CoverAssetID)
	suite.Equal(cover.ID, *agg.Project.CoverAssetID)
	suite.Require().Len(agg.Project.Assets, 2)
	suite.Equal(cover.ID, agg.Project.Assets[0].AssetID)
	suite.Equal(models.AssetRoleCover, agg.Project.Assets[0].Role)
	suite.Equal(gallery.ID, agg.Project.Assets[1].AssetID)
	suite.JSONEq(`{"en":"Front"}`, string(agg.Project.Assets[1].CaptionI18n))

	// Moving the cover demotes the previous one
	suite.Require().NoError(suite.repo.SetCover(suite.ctx, id, gallery.ID))

	agg, err = suite.repo.LoadProject(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(gallery.ID, *agg.Project.CoverAssetID)
	covers := 0
	for _, pa := range agg.Project.Assets {
		if pa.Role == models.AssetRoleCover {
			covers++
			suite.Equal(gallery.ID, pa.AssetID)
		}
	}
	suite.Equal(1, covers)
}

// TestSetCoverIsIdempotent tests setting the same cover twice
func (suite *ProjectRepositoryTestSuite) TestSetCoverIsIdempotent() {
	id, err := suite.repo.CreateProject(suite.ctx, suite.newDraft("Twice"))
	suite.Require().NoError(err)
	asset := suite.createAsset()

	suite.Require().NoError(suite.repo.SetCover(suite.ctx, id, asset.ID))
	suite.Require().NoError(suite.repo.SetCover(suite.ctx, id, asset.ID))

	counts, err := suite.repo.CountRows(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[TableProjectAssets])
}

// TestAttachSecondCover tests that a project keeps a single cover row
func (suite *ProjectRepositoryTestSuite) TestAttachSecondCover() {
	id, err := suite.repo.CreateProject(suite.ctx, suite.newDraft("Covers"))
	suite.Require().NoError(err)
	first := suite.createAsset()
	second := suite.createAsset()

	suite.Require().NoError(suite.repo.AttachAsset(suite.ctx, id, first.ID, models.AssetRoleCover, 0, nil))

	err = suite.repo.AttachAsset(suite.ctx, id, second.ID, models.AssetRoleCover, 0, nil)
	suite.ErrorIs(err, apperrors.ErrCoverAlreadyAssigned)

	counts, err := suite.repo.CountRows(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[TableProjectAssets])
}

// TestAttachDuplicate tests attaching the same asset twice
func (suite *ProjectRepositoryTestSuite) TestAttachDuplicate() {
	id, err := suite.repo.CreateProject(suite.ctx, suite.newDraft("Dupes"))
	suite.Require().NoError(err)
	asset := suite.createAsset()

	suite.Require().NoError(suite.repo.AttachAsset(suite.ctx, id, asset.ID, "", 0, nil))
	err = suite.repo.AttachAsset(suite.ctx, id, asset.ID, models.AssetRoleDoc, 2, nil)
	suite.ErrorIs(err, apperrors.ErrAssetAlreadyAttached)
}

// TestAttachMissingEntities tests attach/cover with unknown IDs
func (suite *ProjectRepositoryTestSuite) TestAttachMissingEntities() {
	id, err := suite.repo.CreateProject(suite.ctx, suite.newDraft("Lonely"))
	suite.Require().NoError(err)
	asset := suite.createAsset()

	err = suite.repo.AttachAsset(suite.ctx, uuid.New(), asset.ID, models.AssetRoleGallery, 0, nil)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)

	err = suite.repo.AttachAsset(suite.ctx, id, uuid.New(), models.AssetRoleGallery, 0, nil)
	suite.ErrorIs(err, apperrors.ErrAssetNotFound)

	err = suite.repo.SetCover(suite.ctx, id, uuid.New())
	suite.ErrorIs(err, apperrors.ErrAssetNotFound)
}

// TestAttachInvalidRole tests that unknown roles are rejected
func (suite *ProjectRepositoryTestSuite) TestAttachInvalidRole() {
	id, err := suite.repo.CreateProject(suite.ctx, suite.newDraft("Roles"))
	suite.Require().NoError(err)
	asset := suite.createAsset()

	err = suite.repo.AttachAsset(suite.ctx, id, asset.ID, models.AssetRole("banner"), 0, nil)
	suite.True(apperrors.IsConstraintViolation(err))
}

// TestProjectRepositorySQLite runs the suite against in-memory SQLite
func TestProjectRepositorySQLite(t *testing.T) {
	suite.Run(t, &ProjectRepositoryTestSuite{setup: testutils.SetupSQLiteSuite})
}
