package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/mocks"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockProjectRepositoryInterface
	projectService *service.ProjectService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(suite.mockRepo, service.NewValidator(), "id")
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validCreateRequest() *service.CreateProjectRequest {
	start := "2024-01-01"
	end := "2024-06-30"
	return &service.CreateProjectRequest{
		Status:     models.ProjectStatusPublished,
		IsFeatured: true,
		OrderIndex: 2,
		ClientName: "Acme",
		StartDate:  &start,
		EndDate:    &end,
		I18n: []service.I18nInput{
			{Locale: "id", Title: "Toko", Slug: "toko"},
			{Locale: "en", Title: "Shop", Slug: "shop", Body: json.RawMessage(`[{"type":"p","text":"hi"}]`)},
		},
		Links: []service.LinkInput{
			{Kind: models.LinkKindLive, URL: "https://shop.example", IsPrimary: true},
			{Kind: models.LinkKindRepo, URL: "https://git.example/shop", IsPrimary: true},
		},
		TagSlugs:  []string{"web", "web", "ecommerce"},
		TechSlugs: []string{"go"},
	}
}

// TestCreate tests the create flow: draft built, written, re-read and projected
func (suite *ProjectServiceTestSuite) TestCreate() {
	id := uuid.New()
	var captured *repository.ProjectDraft

	suite.mockRepo.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft *repository.ProjectDraft) (uuid.UUID, error) {
			captured = draft
			return id, nil
		})
	suite.mockRepo.EXPECT().
		LoadProject(gomock.Any(), id).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*repository.ProjectAggregate, error) {
			p := captured.Project
			p.ID = id
			p.I18n = captured.I18n
			return &repository.ProjectAggregate{Project: p}, nil
		})

	resp, err := suite.projectService.Create(suite.ctx, validCreateRequest(), "en")

	suite.Require().NoError(err)
	suite.Equal(id, resp.ID)
	suite.Require().NotNil(resp.Title)
	suite.Equal("Shop", *resp.Title)
	suite.Equal("2024-06-30", *resp.EndDate)

	suite.Require().NotNil(captured)
	suite.Equal(models.ProjectStatusPublished, captured.Project.Status)
	suite.Equal("Acme", captured.ClientName)
	suite.Equal([]string{"web", "ecommerce"}, captured.TagSlugs)
	suite.JSONEq(`{}`, string(captured.Project.Extra))
	suite.JSONEq(`[]`, string(captured.I18n[0].Body))
	suite.JSONEq(`{}`, string(captured.I18n[0].SEO))
	suite.JSONEq(`[{"type":"p","text":"hi"}]`, string(captured.I18n[1].Body))
	suite.Len(captured.Links, 2)
}

// TestCreateDefaultsStatusToDraft tests the status default
func (suite *ProjectServiceTestSuite) TestCreateDefaultsStatusToDraft() {
	req := &service.CreateProjectRequest{I18n: []service.I18nInput{{Locale: "id", Title: "A", Slug: "a"}}}
	id := uuid.New()

	suite.mockRepo.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft *repository.ProjectDraft) (uuid.UUID, error) {
			suite.Equal(models.ProjectStatusDraft, draft.Project.Status)
			suite.Nil(draft.TagSlugs)
			return id, nil
		})
	suite.mockRepo.EXPECT().
		LoadProject(gomock.Any(), id).
		Return(&repository.ProjectAggregate{Project: models.Project{BaseModel: models.BaseModel{ID: id}, Status: models.ProjectStatusDraft}}, nil)

	resp, err := suite.projectService.Create(suite.ctx, req, "")
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusDraft, resp.Status)
}

// TestCreateValidation tests the payload rules; none of these reach the repository
func (suite *ProjectServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		mutate func(req *service.CreateProjectRequest)
		field  string
	}{
		{
			name:   "Missing slug",
			mutate: func(req *service.CreateProjectRequest) { req.I18n[0].Slug = "" },
			field:  "i18n[0].slug",
		},
		{
			name:   "Unknown status",
			mutate: func(req *service.CreateProjectRequest) { req.Status = "retired" },
			field:  "status",
		},
		{
			name:   "Unknown link kind",
			mutate: func(req *service.CreateProjectRequest) { req.Links[0].Kind = "website" },
			field:  "links[0].kind",
		},
		{
			name: "Malformed date",
			mutate: func(req *service.CreateProjectRequest) {
				bad := "01/02/2024"
				req.StartDate = &bad
			},
			field: "start_date",
		},
		{
			name: "End before start",
			mutate: func(req *service.CreateProjectRequest) {
				end := "2023-12-31"
				req.EndDate = &end
			},
			field: "end_date",
		},
		{
			name: "Two primary links of one kind",
			mutate: func(req *service.CreateProjectRequest) {
				req.Links = append(req.Links, service.LinkInput{Kind: models.LinkKindLive, URL: "https://mirror.example", IsPrimary: true})
			},
			field: "links[2].is_primary",
		},
		{
			name:   "Repeated locale",
			mutate: func(req *service.CreateProjectRequest) { req.I18n[1].Locale = "id" },
			field:  "i18n[1].locale",
		},
		{
			name:   "Extra is not an object",
			mutate: func(req *service.CreateProjectRequest) { req.Extra = json.RawMessage(`[1,2]`) },
			field:  "extra",
		},
		{
			name:   "Body is not an array",
			mutate: func(req *service.CreateProjectRequest) { req.I18n[0].Body = json.RawMessage(`{"a":1}`) },
			field:  "i18n[0].body",
		},
		{
			name:   "Empty tag slug",
			mutate: func(req *service.CreateProjectRequest) { req.TagSlugs = []string{""} },
			field:  "tags_slugs[0]",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := validCreateRequest()
			tc.mutate(req)

			resp, err := suite.projectService.Create(suite.ctx, req, "id")

			suite.Nil(resp)
			var verr *apperrors.ValidationError
			suite.Require().True(errors.As(err, &verr), "expected ValidationError, got %v", err)
			suite.Equal(tc.field, verr.Field)
		})
	}
}

// TestCreatePropagatesConstraintViolation tests that repository errors pass through unchanged
func (suite *ProjectServiceTestSuite) TestCreatePropagatesConstraintViolation() {
	suite.mockRepo.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, apperrors.ErrDuplicateSlug)

	resp, err := suite.projectService.Create(suite.ctx, validCreateRequest(), "id")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDuplicateSlug)
}

// TestListAppliesFiltersAndOrdering tests the list pipeline
func (suite *ProjectServiceTestSuite) TestListAppliesFiltersAndOrdering() {
	a := newAggregate(false, 0, map[string]string{"id": "A"}, "web")
	b := newAggregate(true, 1, map[string]string{"id": "B"}, "web")
	c := newAggregate(true, 0, map[string]string{"id": "C"}, "web")
	d := newAggregate(true, 0, map[string]string{"id": "D"}, "mobile")

	suite.mockRepo.EXPECT().
		ListProjects(gomock.Any(), repository.ProjectFilter{Status: models.ProjectStatusPublished}).
		Return([]repository.ProjectAggregate{a, b, c, d}, nil)

	items, err := suite.projectService.List(suite.ctx, service.ProjectListFilter{Tag: "web"})

	suite.Require().NoError(err)
	suite.Equal([]string{"C", "B", "A"}, titles(items))
}

// TestListPassesStatus tests that the status filter reaches storage
func (suite *ProjectServiceTestSuite) TestListPassesStatus() {
	suite.mockRepo.EXPECT().
		ListProjects(gomock.Any(), repository.ProjectFilter{Status: models.ProjectStatusDraft}).
		Return(nil, nil)

	items, err := suite.projectService.List(suite.ctx, service.ProjectListFilter{Status: models.ProjectStatusDraft})

	suite.Require().NoError(err)
	suite.Empty(items)
	suite.NotNil(items)
}

// TestListRejectsUnknownStatus tests status validation on list
func (suite *ProjectServiceTestSuite) TestListRejectsUnknownStatus() {
	_, err := suite.projectService.List(suite.ctx, service.ProjectListFilter{Status: "deleted"})
	suite.True(apperrors.IsValidation(err))
}

// TestGetNotFound tests that NotFound passes through
func (suite *ProjectServiceTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().LoadProject(gomock.Any(), id).Return(nil, apperrors.ErrProjectNotFound)

	resp, err := suite.projectService.Get(suite.ctx, id, "id")

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrProjectNotFound)
}

// TestGetUsesDefaultLocale tests that an empty locale resolves to the configured default
func (suite *ProjectServiceTestSuite) TestGetUsesDefaultLocale() {
	agg := newAggregate(false, 0, map[string]string{"id": "Judul", "en": "Title"})
	suite.mockRepo.EXPECT().LoadProject(gomock.Any(), agg.Project.ID).Return(&agg, nil)

	resp, err := suite.projectService.Get(suite.ctx, agg.Project.ID, "")

	suite.Require().NoError(err)
	suite.Equal("Judul", *resp.Title)
}

// TestAttachAssetDefaults tests role and caption defaults
func (suite *ProjectServiceTestSuite) TestAttachAssetDefaults() {
	projectID := uuid.New()
	assetID := uuid.New()
	suite.mockRepo.EXPECT().
		AttachAsset(gomock.Any(), projectID, assetID, models.AssetRoleGallery, 0, datatypes.JSON(`{}`)).
		Return(nil)

	err := suite.projectService.AttachAsset(suite.ctx, projectID, &service.AttachAssetRequest{AssetID: assetID})
	suite.NoError(err)
}

// TestAttachAssetValidation tests the attach request rules
func (suite *ProjectServiceTestSuite) TestAttachAssetValidation() {
	err := suite.projectService.AttachAsset(suite.ctx, uuid.New(), &service.AttachAssetRequest{})
	suite.True(apperrors.IsValidation(err))

	err = suite.projectService.AttachAsset(suite.ctx, uuid.New(), &service.AttachAssetRequest{AssetID: uuid.New(), Role: "banner"})
	suite.True(apperrors.IsValidation(err))

	err = suite.projectService.AttachAsset(suite.ctx, uuid.New(), &service.AttachAssetRequest{AssetID: uuid.New(), Position: -1})
	suite.True(apperrors.IsValidation(err))
}

// TestSetCover tests that cover assignment is delegated
func (suite *ProjectServiceTestSuite) TestSetCover() {
	projectID := uuid.New()
	assetID := uuid.New()
	suite.mockRepo.EXPECT().SetCover(gomock.Any(), projectID, assetID).Return(apperrors.ErrAssetNotFound)

	err := suite.projectService.SetCover(suite.ctx, projectID, assetID)
	suite.ErrorIs(err, apperrors.ErrAssetNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
