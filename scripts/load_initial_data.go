package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/database/models"
	apperrors "portfolio-backend/internal/errors"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that mirror the create requests
type TagData struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type TechnologyData struct {
	Slug     string `yaml:"slug"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type I18nData struct {
	Locale   string                   `yaml:"locale"`
	Title    string                   `yaml:"title"`
	Slug     string                   `yaml:"slug"`
	Subtitle string                   `yaml:"subtitle,omitempty"`
	Summary  string                   `yaml:"summary,omitempty"`
	Body     []map[string]interface{} `yaml:"body,omitempty"`
	SEO      map[string]interface{}   `yaml:"seo,omitempty"`
}

type LinkData struct {
	Kind      string `yaml:"kind"`
	URL       string `yaml:"url"`
	Label     string `yaml:"label,omitempty"`
	IsPrimary bool   `yaml:"is_primary"`
}

type ProjectData struct {
	Status     string                 `yaml:"status"`
	IsFeatured bool                   `yaml:"is_featured"`
	OrderIndex int                    `yaml:"order_index"`
	ClientName string                 `yaml:"client_name,omitempty"`
	StartDate  string                 `yaml:"start_date,omitempty"`
	EndDate    string                 `yaml:"end_date,omitempty"`
	IsOngoing  bool                   `yaml:"is_ongoing"`
	Extra      map[string]interface{} `yaml:"extra,omitempty"`
	I18n       []I18nData             `yaml:"i18n"`
	Links      []LinkData             `yaml:"links,omitempty"`
	Tags       []string               `yaml:"tags,omitempty"`
	Techs      []string               `yaml:"techs,omitempty"`
}

// File structures
type CatalogFile struct {
	Tags         []TagData        `yaml:"tags"`
	Technologies []TechnologyData `yaml:"technologies"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DSN(), opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	catalogs, err := loadYAML[CatalogFile](dataDir, "catalog")
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	projectFiles, err := loadYAML[ProjectsFile](dataDir, "projects")
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	validator := service.NewValidator()
	associationRepo := repository.NewAssociationRepository(db)
	catalogService := service.NewCatalogService(associationRepo, validator)
	projectService := service.NewProjectService(repository.NewProjectRepository(db, associationRepo), validator, cfg.DefaultLocale)

	// Reference entities first; get-or-create makes reruns harmless
	tagCount, techCount := 0, 0
	for _, file := range catalogs {
		for _, t := range file.Tags {
			if _, err := catalogService.GetOrCreateTag(ctx, &service.CreateTagRequest{Slug: t.Slug, Name: t.Name, Kind: models.TagKind(t.Kind)}); err != nil {
				return fmt.Errorf("failed to create tag %s: %w", t.Slug, err)
			}
			tagCount++
		}
		for _, t := range file.Technologies {
			if _, err := catalogService.GetOrCreateTechnology(ctx, &service.CreateTechnologyRequest{Slug: t.Slug, Name: t.Name, Category: models.TechCategory(t.Category)}); err != nil {
				return fmt.Errorf("failed to create technology %s: %w", t.Slug, err)
			}
			techCount++
		}
	}
	log.Printf("Tags: %d ensured", tagCount)
	log.Printf("Technologies: %d ensured", techCount)

	created, skipped, total := 0, 0, 0
	for _, file := range projectFiles {
		for _, data := range file.Projects {
			total++
			req, err := toCreateRequest(data)
			if err != nil {
				return fmt.Errorf("failed to convert project %s: %w", projectName(data), err)
			}
			if _, err := projectService.Create(ctx, req, ""); err != nil {
				// A slug taken by an earlier run means the project is already loaded
				if apperrors.IsConstraintViolation(err) {
					skipped++
					continue
				}
				log.Printf("Warning: failed to create project %s: %v", projectName(data), err)
				continue
			}
			created++
		}
	}
	log.Printf("Projects: %d created, %d already present, %d total", created, skipped, total)

	return nil
}

// loadYAML decodes every .yaml file under dataDir whose path contains kind
func loadYAML[T any](dataDir, kind string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			var file T
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			files = append(files, file)
		}
		return nil
	})

	return files, err
}

func toCreateRequest(data ProjectData) (*service.CreateProjectRequest, error) {
	extra, err := marshalOptional(data.Extra)
	if err != nil {
		return nil, err
	}

	req := &service.CreateProjectRequest{
		Status:     models.ProjectStatus(data.Status),
		IsFeatured: data.IsFeatured,
		OrderIndex: data.OrderIndex,
		ClientName: data.ClientName,
		StartDate:  optional(data.StartDate),
		EndDate:    optional(data.EndDate),
		IsOngoing:  data.IsOngoing,
		Extra:      extra,
		TagSlugs:   data.Tags,
		TechSlugs:  data.Techs,
	}

	for _, in := range data.I18n {
		body, err := marshalOptional(in.Body)
		if err != nil {
			return nil, err
		}
		seo, err := marshalOptional(in.SEO)
		if err != nil {
			return nil, err
		}
		req.I18n = append(req.I18n, service.I18nInput{
			Locale:   in.Locale,
			Title:    in.Title,
			Slug:     in.Slug,
			Subtitle: optional(in.Subtitle),
			Summary:  optional(in.Summary),
			Body:     body,
			SEO:      seo,
		})
	}

	for _, l := range data.Links {
		req.Links = append(req.Links, service.LinkInput{
			Kind:      models.LinkKind(l.Kind),
			URL:       l.URL,
			Label:     optional(l.Label),
			IsPrimary: l.IsPrimary,
		})
	}

	return req, nil
}

// marshalOptional re-encodes a YAML value as JSON, leaving nil values empty
func marshalOptional[T any](v T) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func projectName(data ProjectData) string {
	if len(data.I18n) > 0 {
		return data.I18n[0].Slug
	}
	return "(untitled)"
}
