package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind names an entry of the error taxonomy exposed to API clients
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindConstraintViolation Kind = "ConstraintViolation"
	KindValidationError     Kind = "ValidationError"
	KindUploadFailed        Kind = "UploadFailed"
	KindInternalError       Kind = "InternalError"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConstraintViolationError represents a uniqueness or enum-domain violation
type ConstraintViolationError struct {
	Entity     string
	Constraint string // e.g. "uq_locale_slug"
	Detail     string
}

func (e *ConstraintViolationError) Error() string {
	msg := fmt.Sprintf("%s violates constraint", e.Entity)
	if e.Constraint != "" {
		msg = fmt.Sprintf("%s violates constraint %s", e.Entity, e.Constraint)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is enables errors.Is() comparison for ConstraintViolationError
func (e *ConstraintViolationError) Is(target error) bool {
	t, ok := target.(*ConstraintViolationError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && (t.Constraint == "" || e.Constraint == t.Constraint)
}

// ValidationError represents a malformed payload
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// UploadFailedError represents a blob storage provider failure
type UploadFailedError struct {
	Cause error
}

func (e *UploadFailedError) Error() string {
	if e.Cause == nil {
		return "upload failed"
	}
	return fmt.Sprintf("upload failed: %v", e.Cause)
}

func (e *UploadFailedError) Unwrap() error {
	return e.Cause
}

// InternalError wraps an unexpected storage failure. Its cause is logged, never rendered.
type InternalError struct {
	Op    string
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// Entity Not Found Errors
var (
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrAssetNotFound      = &NotFoundError{Entity: "asset"}
	ErrTagNotFound        = &NotFoundError{Entity: "tag"}
	ErrTechnologyNotFound = &NotFoundError{Entity: "technology"}
	ErrClientNotFound     = &NotFoundError{Entity: "client"}
)

// Constraint Violations
var (
	ErrDuplicateSlug        = &ConstraintViolationError{Entity: "project_i18n", Constraint: "uq_locale_slug", Detail: "slug already used in this locale"}
	ErrDuplicateLocale      = &ConstraintViolationError{Entity: "project_i18n", Constraint: "uq_project_locale", Detail: "locale already present for this project"}
	ErrCoverAlreadyAssigned = &ConstraintViolationError{Entity: "project_assets", Constraint: "single_cover", Detail: "project already has a cover asset"}
	ErrAssetAlreadyAttached = &ConstraintViolationError{Entity: "project_assets", Constraint: "project_assets_pkey", Detail: "asset already attached to this project"}
)

// Validation Errors
var (
	ErrNoFile = &ValidationError{Field: "file", Message: "no file"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConstraintViolation checks if an error is a ConstraintViolationError
func IsConstraintViolation(err error) bool {
	var cvErr *ConstraintViolationError
	return errors.As(err, &cvErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUploadFailed checks if an error is an UploadFailedError
func IsUploadFailed(err error) bool {
	var uploadErr *UploadFailedError
	return errors.As(err, &uploadErr)
}

// KindOf classifies err into the taxonomy. Unknown errors are internal.
func KindOf(err error) Kind {
	switch {
	case IsNotFound(err):
		return KindNotFound
	case IsConstraintViolation(err):
		return KindConstraintViolation
	case IsValidation(err):
		return KindValidationError
	case IsUploadFailed(err):
		return KindUploadFailed
	default:
		return KindInternalError
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConstraintViolationError creates a new ConstraintViolationError
func NewConstraintViolationError(entity, constraint, detail string) error {
	return &ConstraintViolationError{Entity: entity, Constraint: constraint, Detail: detail}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUploadFailedError creates a new UploadFailedError
func NewUploadFailedError(cause error) error {
	return &UploadFailedError{Cause: cause}
}

// NewInternalError creates a new InternalError
func NewInternalError(op string, cause error) error {
	return &InternalError{Op: op, Cause: cause}
}

// Postgres SQLSTATE codes mapped to constraint violations
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
)

// TranslateDBError maps a storage error raised while writing or reading entity
// onto the taxonomy. Errors that already belong to the taxonomy pass through.
func TranslateDBError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternalError {
		return err
	}
	var internal *InternalError
	if errors.As(err, &internal) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgCheckViolation, pgInvalidTextRepr:
			return &ConstraintViolationError{Entity: entity, Constraint: pgErr.ConstraintName, Detail: pgErr.Detail}
		case pgForeignKeyViolation:
			return &NotFoundError{Entity: referencedEntity(pgErr.ConstraintName, entity)}
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConstraintViolationError{Entity: entity, Detail: "duplicate key"}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &NotFoundError{Entity: "referenced record"}
	}

	// SQLite reports constraint failures only through the message text
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"), strings.Contains(msg, "CHECK constraint failed"):
		return &ConstraintViolationError{Entity: entity, Constraint: sqliteConstraint(msg), Detail: msg}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &NotFoundError{Entity: "referenced record"}
	}
	return &InternalError{Op: entity, Cause: err}
}

// sqliteConstraint names the unique index behind "UNIQUE constraint failed: t.a, t.b"
func sqliteConstraint(msg string) string {
	switch {
	case strings.Contains(msg, "project_i18n.locale, project_i18n.slug"):
		return "uq_locale_slug"
	case strings.Contains(msg, "project_i18n.project_id, project_i18n.locale"):
		return "uq_project_locale"
	}
	return ""
}

func referencedEntity(constraint, fallback string) string {
	if constraint == "" {
		return fallback
	}
	return "referenced record (" + constraint + ")"
}
