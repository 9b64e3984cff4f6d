package service

import (
	"encoding/json"
	"strings"
	"time"

	"portfolio-backend/internal/database/models"
	"portfolio-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// LinkSummary is the projected shape of a project link
type LinkSummary struct {
	ID        uuid.UUID       `json:"id"`
	Kind      models.LinkKind `json:"kind"`
	Label     *string         `json:"label"`
	URL       string          `json:"url"`
	IsPrimary bool            `json:"is_primary"`
}

// AssetSummary is the projected shape of a project's asset attachment
type AssetSummary struct {
	AssetID     uuid.UUID        `json:"asset_id"`
	Role        models.AssetRole `json:"role"`
	Position    int              `json:"position"`
	CaptionI18n json.RawMessage  `json:"caption_i18n" swaggertype:"object"`
}

// ProjectResponse is the locale-resolved read view of a project aggregate
type ProjectResponse struct {
	ID           uuid.UUID            `json:"id"`
	Status       models.ProjectStatus `json:"status"`
	IsFeatured   bool                 `json:"is_featured"`
	OrderIndex   int                  `json:"order_index"`
	StartDate    *string              `json:"start_date"`
	EndDate      *string              `json:"end_date"`
	IsOngoing    bool                 `json:"is_ongoing"`
	CoverAssetID *uuid.UUID           `json:"cover_asset_id"`
	ClientID     *uuid.UUID           `json:"client_id"`
	Title        *string              `json:"title"`
	Slug         *string              `json:"slug"`
	Subtitle     *string              `json:"subtitle"`
	Summary      *string              `json:"summary"`
	Tags         []string             `json:"tags"`
	Techs        []string             `json:"techs"`
	Links        []LinkSummary        `json:"links"`
	Assets       []AssetSummary       `json:"assets"`
}

// ProjectListFilter holds the list query. Status is applied in storage,
// the rest in memory after projection.
type ProjectListFilter struct {
	Locale string
	Status models.ProjectStatus
	Tag    string
	Tech   string
	Search string
}

// ProjectProjection flattens an aggregate into its response shape for locale
func ProjectProjection(agg *repository.ProjectAggregate, locale string) ProjectResponse {
	p := agg.Project
	resp := ProjectResponse{
		ID:           p.ID,
		Status:       p.Status,
		IsFeatured:   p.IsFeatured,
		OrderIndex:   p.OrderIndex,
		StartDate:    formatDate(p.StartDate),
		EndDate:      formatDate(p.EndDate),
		IsOngoing:    p.IsOngoing,
		CoverAssetID: p.CoverAssetID,
		ClientID:     p.ClientID,
		Tags:         make([]string, 0, len(agg.Tags)),
		Techs:        make([]string, 0, len(agg.Technologies)),
		Links:        make([]LinkSummary, 0, len(p.Links)),
		Assets:       make([]AssetSummary, 0, len(p.Assets)),
	}

	if row := ResolveLocale(p.I18n, locale); row != nil {
		resp.Title = nonEmpty(&row.Title)
		resp.Slug = nonEmpty(&row.Slug)
		resp.Subtitle = nonEmpty(row.Subtitle)
		resp.Summary = nonEmpty(row.Summary)
	}

	for _, t := range agg.Tags {
		resp.Tags = append(resp.Tags, t.Slug)
	}
	for _, t := range agg.Technologies {
		resp.Techs = append(resp.Techs, t.Slug)
	}
	for _, l := range p.Links {
		resp.Links = append(resp.Links, LinkSummary{
			ID:        l.ID,
			Kind:      l.Kind,
			Label:     l.Label,
			URL:       l.URL,
			IsPrimary: l.IsPrimary,
		})
	}
	for _, a := range p.Assets {
		resp.Assets = append(resp.Assets, AssetSummary{
			AssetID:     a.AssetID,
			Role:        a.Role,
			Position:    a.Position,
			CaptionI18n: rawJSON(a.CaptionI18n, `{}`),
		})
	}

	return resp
}

// FilterProjects keeps the items matching the tag, technology and search
// filters, applied in that order. Empty filters match everything.
func FilterProjects(items []ProjectResponse, filter ProjectListFilter) []ProjectResponse {
	search := strings.ToLower(filter.Search)
	out := make([]ProjectResponse, 0, len(items))
	for _, item := range items {
		if filter.Tag != "" && !contains(item.Tags, filter.Tag) {
			continue
		}
		if filter.Tech != "" && !contains(item.Techs, filter.Tech) {
			continue
		}
		if search != "" {
			text := strings.ToLower(deref(item.Title) + " " + deref(item.Summary))
			if !strings.Contains(text, search) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func rawJSON(b datatypes.JSON, fallback string) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage(fallback)
	}
	return json.RawMessage(b)
}
