package repository

import (
	"context"
	"testing"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

// AssociationRepositoryTestSuite tests the get-or-create paths for reference entities
type AssociationRepositoryTestSuite struct {
	suite.Suite
	setup         func(t *testing.T) *testutils.BaseTestSuite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssociationRepository
	projects      *ProjectRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *AssociationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = suite.setup(suite.T())

	suite.repo = NewAssociationRepository(suite.baseTestSuite.DB)
	suite.projects = NewProjectRepository(suite.baseTestSuite.DB, suite.repo)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *AssociationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssociationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssociationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssociationRepositoryTestSuite) countTags(slug string) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Tag{}).Where("slug = ?", slug).Count(&n).Error)
	return n
}

// TestGetOrCreateTagDefaults tests that name and kind fall back to defaults
func (suite *AssociationRepositoryTestSuite) TestGetOrCreateTagDefaults() {
	tag, err := suite.repo.GetOrCreateTag(suite.ctx, nil, "golang", "", "")

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, tag.ID)
	suite.Equal("golang", tag.Slug)
	suite.Equal("golang", tag.Name)
	suite.Equal(models.TagKindTag, tag.Kind)
}

// TestGetOrCreateTagNeverUpdates tests that an existing tag is returned unchanged
func (suite *AssociationRepositoryTestSuite) TestGetOrCreateTagNeverUpdates() {
	first, err := suite.repo.GetOrCreateTag(suite.ctx, nil, "design", "Design", models.TagKindCategory)
	suite.Require().NoError(err)

	second, err := suite.repo.GetOrCreateTag(suite.ctx, nil, "design", "Something Else", models.TagKindTag)
	suite.Require().NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal("Design", second.Name)
	suite.Equal(models.TagKindCategory, second.Kind)
	suite.Equal(int64(1), suite.countTags("design"))
}

// TestGetOrCreateInvalidClassifier tests that unknown kinds and categories are rejected
func (suite *AssociationRepositoryTestSuite) TestGetOrCreateInvalidClassifier() {
	_, err := suite.repo.GetOrCreateTag(suite.ctx, nil, "odd", "", models.TagKind("label"))
	suite.True(apperrors.IsConstraintViolation(err))

	_, err = suite.repo.GetOrCreateTechnology(suite.ctx, nil, "odd", "", models.TechCategory("gadget"))
	suite.True(apperrors.IsConstraintViolation(err))

	_, err = suite.repo.GetOrCreateTag(suite.ctx, nil, "", "", "")
	suite.True(apperrors.IsValidation(err))
}

// TestGetOrCreateTechnology tests technology creation and lookup
func (suite *AssociationRepositoryTestSuite) TestGetOrCreateTechnology() {
	created, err := suite.repo.GetOrCreateTechnology(suite.ctx, nil, "postgres", "PostgreSQL", models.TechCategoryDatabase)
	suite.Require().NoError(err)
	suite.Equal(models.TechCategoryDatabase, created.Category)

	found, err := suite.repo.GetOrCreateTechnology(suite.ctx, nil, "postgres", "", "")
	suite.Require().NoError(err)
	suite.Equal(created.ID, found.ID)
	suite.Equal("PostgreSQL", found.Name)
}

// TestGetOrCreateClient tests client lookup by name
func (suite *AssociationRepositoryTestSuite) TestGetOrCreateClient() {
	first, err := suite.repo.GetOrCreateClient(suite.ctx, nil, "Acme")
	suite.Require().NoError(err)

	second, err := suite.repo.GetOrCreateClient(suite.ctx, nil, "Acme")
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)

	_, err = suite.repo.GetOrCreateClient(suite.ctx, nil, "")
	suite.True(apperrors.IsValidation(err))
}

// TestConcurrentGetOrCreateTag tests that parallel creators of one slug converge on one row
func (suite *AssociationRepositoryTestSuite) TestConcurrentGetOrCreateTag() {
	const workers = 8
	ids := make([]uuid.UUID, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			tag, err := suite.repo.GetOrCreateTag(suite.ctx, nil, "shared", "", "")
			if err != nil {
				return err
			}
			ids[i] = tag.ID
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	for _, id := range ids {
		suite.Equal(ids[0], id)
	}
	suite.Equal(int64(1), suite.countTags("shared"))
}

// TestConcurrentCreateProjectsSharingTag tests parallel aggregate writes that reference one new tag
func (suite *AssociationRepositoryTestSuite) TestConcurrentCreateProjectsSharingTag() {
	titles := []string{"First Shared", "Second Shared", "Third Shared", "Fourth Shared"}

	var g errgroup.Group
	for _, title := range titles {
		title := title
		g.Go(func() error {
			draft := &ProjectDraft{
				Project:   *suite.factories.Project.Create(),
				I18n:      []models.ProjectI18n{suite.factories.I18n.Create("id", title)},
				TagSlugs:  []string{"common"},
				TechSlugs: []string{"go"},
			}
			_, err := suite.projects.CreateProject(suite.ctx, draft)
			return err
		})
	}
	suite.Require().NoError(g.Wait())

	suite.Equal(int64(1), suite.countTags("common"))

	var links int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.ProjectTag{}).Count(&links).Error)
	suite.Equal(int64(len(titles)), links)
}

// TestListTagsAndTechnologies tests the reference listings are ordered by slug
func (suite *AssociationRepositoryTestSuite) TestListTagsAndTechnologies() {
	for _, slug := range []string{"web", "api", "mobile"} {
		_, err := suite.repo.GetOrCreateTag(suite.ctx, nil, slug, "", "")
		suite.Require().NoError(err)
	}
	_, err := suite.repo.GetOrCreateTechnology(suite.ctx, nil, "react", "React", models.TechCategoryFramework)
	suite.Require().NoError(err)

	tags, err := suite.repo.ListTags(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tags, 3)
	suite.Equal("api", tags[0].Slug)
	suite.Equal("mobile", tags[1].Slug)
	suite.Equal("web", tags[2].Slug)

	techs, err := suite.repo.ListTechnologies(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(techs, 1)
	suite.Equal("React", techs[0].Name)
}

// TestAssociationRepositorySQLite runs the suite against in-memory SQLite
func TestAssociationRepositorySQLite(t *testing.T) {
	suite.Run(t, &AssociationRepositoryTestSuite{setup: testutils.SetupSQLiteSuite})
}
