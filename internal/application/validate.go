package application

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names used as keys in validation error maps and as form field names.
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldTitle      = "title"
	FieldContents   = "contents"
	FieldArticleKey = "articleKey"
)

// Validation messages.
const (
	errRequired  = "must not be blank"
	errInvalidID = "must be a positive integer"
)

// ArticleForm is the submitted field set for create, update and delete
// requests. ID is kept raw so unparseable submissions can be echoed back.
type ArticleForm struct {
	ID         string
	Name       string
	Title      string
	Contents   string
	ArticleKey string
}

// ArticleID parses the submitted id, which must be a positive integer.
func (f ArticleForm) ArticleID() (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(f.ID))
	if err != nil {
		return 0, fmt.Errorf("parse article id %q: %w", f.ID, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("article id %d is not positive", id)
	}
	return id, nil
}

// ArticleIDOrZero returns the parsed id, or 0 when absent or unparseable.
// Used to build redirect targets for invalid submissions.
func (f ArticleForm) ArticleIDOrZero() int {
	id, err := f.ArticleID()
	if err != nil {
		return 0
	}
	return id
}

// ValidateForm checks the submitted fields and returns a field-to-message map
// of failures, or nil when the form is valid. requireID additionally demands
// a parseable positive id (update and delete). The store is never consulted.
func ValidateForm(form ArticleForm, requireID bool) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(form.Name) == "" {
		errs[FieldName] = errRequired
	}
	if strings.TrimSpace(form.Title) == "" {
		errs[FieldTitle] = errRequired
	}
	if strings.TrimSpace(form.Contents) == "" {
		errs[FieldContents] = errRequired
	}
	if strings.TrimSpace(form.ArticleKey) == "" {
		errs[FieldArticleKey] = errRequired
	}

	if requireID {
		if _, err := form.ArticleID(); err != nil {
			errs[FieldID] = errInvalidID
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
