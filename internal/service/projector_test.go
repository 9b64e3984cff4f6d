package service_test

import (
	"testing"
	"time"

	"portfolio-backend/internal/database/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func newAggregate(featured bool, orderIndex int, titles map[string]string, tags ...string) repository.ProjectAggregate {
	agg := repository.ProjectAggregate{
		Project: models.Project{
			BaseModel:  models.BaseModel{ID: uuid.New()},
			Status:     models.ProjectStatusPublished,
			IsFeatured: featured,
			OrderIndex: orderIndex,
		},
	}
	for locale, title := range titles {
		agg.Project.I18n = append(agg.Project.I18n, models.ProjectI18n{
			Locale:  locale,
			Title:   title,
			Slug:    locale + "-" + title,
			Summary: strPtr("about " + title),
		})
	}
	for _, slug := range tags {
		agg.Tags = append(agg.Tags, models.Tag{Slug: slug})
	}
	return agg
}

func TestProjectProjection(t *testing.T) {
	start := datatypes.Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	cover := uuid.New()
	linkID := uuid.New()
	agg := newAggregate(true, 3, map[string]string{"id": "Toko", "en": "Shop"}, "web")
	agg.Project.StartDate = &start
	agg.Project.CoverAssetID = &cover
	agg.Technologies = []models.Technology{{Slug: "go"}}
	agg.Project.Links = []models.ProjectLink{{BaseModel: models.BaseModel{ID: linkID}, Kind: models.LinkKindLive, URL: "https://shop.example", IsPrimary: true}}
	agg.Project.Assets = []models.ProjectAsset{{AssetID: cover, Role: models.AssetRoleCover}}

	resp := service.ProjectProjection(&agg, "en")

	assert.Equal(t, agg.Project.ID, resp.ID)
	assert.True(t, resp.IsFeatured)
	assert.Equal(t, 3, resp.OrderIndex)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2024-01-15", *resp.StartDate)
	assert.Nil(t, resp.EndDate)
	require.NotNil(t, resp.Title)
	assert.Equal(t, "Shop", *resp.Title)
	assert.Equal(t, "about Shop", *resp.Summary)
	assert.Equal(t, []string{"web"}, resp.Tags)
	assert.Equal(t, []string{"go"}, resp.Techs)
	require.Len(t, resp.Links, 1)
	assert.Equal(t, linkID, resp.Links[0].ID)
	assert.True(t, resp.Links[0].IsPrimary)
	require.Len(t, resp.Assets, 1)
	assert.Equal(t, models.AssetRoleCover, resp.Assets[0].Role)
	assert.JSONEq(t, `{}`, string(resp.Assets[0].CaptionI18n))
	assert.Equal(t, &cover, resp.CoverAssetID)
}

func TestProjectProjectionMissingLocale(t *testing.T) {
	agg := newAggregate(false, 0, map[string]string{"id": "Toko"})

	resp := service.ProjectProjection(&agg, "fr")

	assert.Nil(t, resp.Title)
	assert.Nil(t, resp.Slug)
	assert.Nil(t, resp.Subtitle)
	assert.Nil(t, resp.Summary)
	assert.NotNil(t, resp.Tags)
	assert.NotNil(t, resp.Links)
}

func TestSortProjects(t *testing.T) {
	a := service.ProjectProjection(ptr(newAggregate(false, 0, map[string]string{"id": "A"})), "id")
	b := service.ProjectProjection(ptr(newAggregate(true, 1, map[string]string{"id": "B"})), "id")
	c := service.ProjectProjection(ptr(newAggregate(true, 0, map[string]string{"id": "C"})), "id")

	items := []service.ProjectResponse{a, b, c}
	service.SortProjects(items)

	assert.Equal(t, []string{"C", "B", "A"}, titles(items))
}

func TestSortProjectsIsStable(t *testing.T) {
	first := service.ProjectProjection(ptr(newAggregate(false, 1, map[string]string{"id": "First"})), "id")
	second := service.ProjectProjection(ptr(newAggregate(false, 1, map[string]string{"id": "Second"})), "id")
	third := service.ProjectProjection(ptr(newAggregate(false, 0, map[string]string{"id": "Third"})), "id")

	items := []service.ProjectResponse{first, second, third}
	service.SortProjects(items)

	assert.Equal(t, []string{"Third", "First", "Second"}, titles(items))
}

func TestFilterProjects(t *testing.T) {
	web := newAggregate(false, 0, map[string]string{"id": "Toko Online", "en": "Online Store"}, "web")
	web.Technologies = []models.Technology{{Slug: "go"}}
	mobile := newAggregate(false, 1, map[string]string{"id": "Aplikasi Kasir", "en": "Cashier App"}, "mobile", "web")
	mobile.Technologies = []models.Technology{{Slug: "flutter"}}

	project := func(locale string) []service.ProjectResponse {
		return []service.ProjectResponse{
			service.ProjectProjection(&web, locale),
			service.ProjectProjection(&mobile, locale),
		}
	}

	testCases := []struct {
		name     string
		locale   string
		filter   service.ProjectListFilter
		expected []string
	}{
		{name: "No filters", locale: "id", expected: []string{"Toko Online", "Aplikasi Kasir"}},
		{name: "Tag", locale: "id", filter: service.ProjectListFilter{Tag: "mobile"}, expected: []string{"Aplikasi Kasir"}},
		{name: "Tech", locale: "id", filter: service.ProjectListFilter{Tech: "go"}, expected: []string{"Toko Online"}},
		{name: "Tag and tech compose", locale: "id", filter: service.ProjectListFilter{Tag: "web", Tech: "flutter"}, expected: []string{"Aplikasi Kasir"}},
		{name: "Search is case-insensitive", locale: "id", filter: service.ProjectListFilter{Search: "KASIR"}, expected: []string{"Aplikasi Kasir"}},
		{name: "Search covers summary", locale: "en", filter: service.ProjectListFilter{Search: "about online"}, expected: []string{"Online Store"}},
		{name: "Search only sees the resolved locale", locale: "en", filter: service.ProjectListFilter{Search: "kasir"}, expected: []string{}},
		{name: "Tag with search", locale: "id", filter: service.ProjectListFilter{Tag: "web", Search: "toko"}, expected: []string{"Toko Online"}},
		{name: "Unknown tag", locale: "id", filter: service.ProjectListFilter{Tag: "nonexistent"}, expected: []string{}},
		{name: "Unknown tech", locale: "id", filter: service.ProjectListFilter{Tech: "cobol"}, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := service.FilterProjects(project(tc.locale), tc.filter)
			assert.Equal(t, tc.expected, titles(out))
		})
	}
}

func TestFilterProjectsSearchWithMissingLocale(t *testing.T) {
	agg := newAggregate(false, 0, map[string]string{"id": "Toko"})
	items := []service.ProjectResponse{service.ProjectProjection(&agg, "en")}

	assert.Empty(t, service.FilterProjects(items, service.ProjectListFilter{Search: "toko"}))
	assert.Len(t, service.FilterProjects(items, service.ProjectListFilter{}), 1)
}

func ptr(agg repository.ProjectAggregate) *repository.ProjectAggregate {
	return &agg
}

func titles(items []service.ProjectResponse) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Title == nil {
			out = append(out, "")
			continue
		}
		out = append(out, *item.Title)
	}
	return out
}
