package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo          repository.ProjectRepositoryInterface
	validator     *validator.Validate
	defaultLocale string
}

// Ensure ProjectService implements ProjectServiceInterface
var _ ProjectServiceInterface = (*ProjectService)(nil)

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate, defaultLocale string) *ProjectService {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return &ProjectService{
		repo:          repo,
		validator:     validator,
		defaultLocale: defaultLocale,
	}
}

// I18nInput is the localized text of a project in a create request
type I18nInput struct {
	Locale   string          `json:"locale" validate:"required,max=10"`
	Title    string          `json:"title" validate:"required,max=500"`
	Slug     string          `json:"slug" validate:"required,max=255"`
	Subtitle *string         `json:"subtitle,omitempty"`
	Summary  *string         `json:"summary,omitempty"`
	Body     json.RawMessage `json:"body,omitempty" swaggertype:"array,object"`
	SEO      json.RawMessage `json:"seo,omitempty" swaggertype:"object"`
}

// LinkInput is a project link in a create request
type LinkInput struct {
	Kind      models.LinkKind `json:"kind" validate:"required,oneof=live repo demo docs article design package"`
	URL       string          `json:"url" validate:"required,url"`
	Label     *string         `json:"label,omitempty"`
	IsPrimary bool            `json:"is_primary"`
}

// CreateProjectRequest represents the request to create a project with all its parts
type CreateProjectRequest struct {
	Status     models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	IsFeatured bool                 `json:"is_featured"`
	OrderIndex int                  `json:"order_index"`
	ClientName string               `json:"client_name,omitempty" validate:"max=255"`
	StartDate  *string              `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string              `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsOngoing  bool                 `json:"is_ongoing"`
	Extra      json.RawMessage      `json:"extra,omitempty" swaggertype:"object"`
	I18n       []I18nInput          `json:"i18n" validate:"dive"`
	Links      []LinkInput          `json:"links" validate:"dive"`
	TagSlugs   []string             `json:"tags_slugs" validate:"dive,required,max=255"`
	TechSlugs  []string             `json:"tech_slugs" validate:"dive,required,max=255"`
}

// AttachAssetRequest represents the request to attach an asset to a project
type AttachAssetRequest struct {
	AssetID     uuid.UUID        `json:"asset_id" validate:"required"`
	Role        models.AssetRole `json:"role,omitempty" validate:"omitempty,oneof=cover gallery video doc"`
	Position    int              `json:"position" validate:"min=0"`
	CaptionI18n json.RawMessage  `json:"caption_i18n,omitempty" swaggertype:"object"`
}

// List returns the projected projects matching filter, featured first
func (s *ProjectService) List(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, error) {
	if filter.Status == "" {
		filter.Status = models.ProjectStatusPublished
	}
	if !filter.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", filter.Status))
	}
	locale := s.locale(filter.Locale)

	aggregates, err := s.repo.ListProjects(ctx, repository.ProjectFilter{Status: filter.Status})
	if err != nil {
		return nil, err
	}

	items := make([]ProjectResponse, 0, len(aggregates))
	for i := range aggregates {
		items = append(items, ProjectProjection(&aggregates[i], locale))
	}
	items = FilterProjects(items, filter)
	SortProjects(items)
	return items, nil
}

// Get returns one projected project
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID, locale string) (*ProjectResponse, error) {
	agg, err := s.repo.LoadProject(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ProjectProjection(agg, s.locale(locale))
	return &resp, nil
}

// Create validates req, writes the aggregate in one transaction and returns it
// re-read from storage and projected for locale
func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest, locale string) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, ValidationFailed(err)
	}

	draft, err := s.buildDraft(req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateProject(ctx, draft)
	if err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": id,
		"locales":    len(draft.I18n),
		"tags":       len(draft.TagSlugs),
		"techs":      len(draft.TechSlugs),
	}).Info("project created")

	return s.Get(ctx, id, locale)
}

// AttachAsset links an existing asset to a project
func (s *ProjectService) AttachAsset(ctx context.Context, projectID uuid.UUID, req *AttachAssetRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return ValidationFailed(err)
	}
	caption, err := jsonOrDefault("caption_i18n", req.CaptionI18n, `{}`, '{')
	if err != nil {
		return err
	}
	role := req.Role
	if role == "" {
		role = models.AssetRoleGallery
	}
	return s.repo.AttachAsset(ctx, projectID, req.AssetID, role, req.Position, caption)
}

// SetCover makes assetID the cover of the project
func (s *ProjectService) SetCover(ctx context.Context, projectID, assetID uuid.UUID) error {
	return s.repo.SetCover(ctx, projectID, assetID)
}

func (s *ProjectService) locale(requested string) string {
	if requested == "" {
		return s.defaultLocale
	}
	return requested
}

// buildDraft applies defaults and the cross-field rules the validator tags cannot express
func (s *ProjectService) buildDraft(req *CreateProjectRequest) (*repository.ProjectDraft, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusDraft
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && time.Time(*end).Before(time.Time(*start)) {
		return nil, apperrors.NewValidationError("end_date", "end_date must not be before start_date")
	}

	extra, err := jsonOrDefault("extra", req.Extra, `{}`, '{')
	if err != nil {
		return nil, err
	}

	draft := &repository.ProjectDraft{
		Project: models.Project{
			Status:     status,
			IsFeatured: req.IsFeatured,
			OrderIndex: req.OrderIndex,
			StartDate:  start,
			EndDate:    end,
			IsOngoing:  req.IsOngoing,
			Extra:      extra,
		},
		ClientName: req.ClientName,
		TagSlugs:   dedupe(req.TagSlugs),
		TechSlugs:  dedupe(req.TechSlugs),
	}

	seenLocales := make(map[string]bool, len(req.I18n))
	for i, in := range req.I18n {
		if seenLocales[in.Locale] {
			return nil, apperrors.NewValidationError(fmt.Sprintf("i18n[%d].locale", i), fmt.Sprintf("locale %q appears more than once", in.Locale))
		}
		seenLocales[in.Locale] = true

		body, err := jsonOrDefault(fmt.Sprintf("i18n[%d].body", i), in.Body, `[]`, '[')
		if err != nil {
			return nil, err
		}
		seo, err := jsonOrDefault(fmt.Sprintf("i18n[%d].seo", i), in.SEO, `{}`, '{')
		if err != nil {
			return nil, err
		}
		draft.I18n = append(draft.I18n, models.ProjectI18n{
			Locale:   in.Locale,
			Title:    in.Title,
			Slug:     in.Slug,
			Subtitle: nonEmpty(in.Subtitle),
			Summary:  nonEmpty(in.Summary),
			Body:     body,
			SEO:      seo,
		})
	}

	primaryKinds := make(map[models.LinkKind]bool)
	for i, in := range req.Links {
		if in.IsPrimary {
			if primaryKinds[in.Kind] {
				return nil, apperrors.NewValidationError(fmt.Sprintf("links[%d].is_primary", i), fmt.Sprintf("only one primary %s link is allowed", in.Kind))
			}
			primaryKinds[in.Kind] = true
		}
		draft.Links = append(draft.Links, models.ProjectLink{
			Kind:      in.Kind,
			URL:       in.URL,
			Label:     in.Label,
			IsPrimary: in.IsPrimary,
		})
	}

	return draft, nil
}

func parseDate(field string, value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperrors.NewValidationError(field, "expected a date formatted YYYY-MM-DD")
	}
	d := datatypes.Date(t)
	return &d, nil
}

// jsonOrDefault returns raw as a JSON column, or fallback when raw is empty or null.
// open is the required first token: '{' for objects, '[' for arrays.
func jsonOrDefault(field string, raw json.RawMessage, fallback string, open byte) (datatypes.JSON, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return datatypes.JSON(fallback), nil
	}
	if !json.Valid(trimmed) || trimmed[0] != open {
		kind := "object"
		if open == '[' {
			kind = "array"
		}
		return nil, apperrors.NewValidationError(field, "must be a JSON "+kind)
	}
	return datatypes.JSON(trimmed), nil
}

// dedupe drops repeated values, keeping first occurrences in order
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
