package service

import "portfolio-backend/internal/database/models"

// DefaultLocale is used when a request names no locale
const DefaultLocale = "id"

// ResolveLocale returns the row whose locale equals locale exactly, or nil.
// There is no fallback to another locale; callers render missing text as null.
func ResolveLocale(rows []models.ProjectI18n, locale string) *models.ProjectI18n {
	if locale == "" {
		locale = DefaultLocale
	}
	for i := range rows {
		if rows[i].Locale == locale {
			return &rows[i]
		}
	}
	return nil
}
