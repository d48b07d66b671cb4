// Package model defines the domain entities.
package model

import "time"

// Article is a persisted bulletin post. The ArticleKey is the shared secret
// supplied at creation and required to authorize any later update or delete.
type Article struct {
	ID           int
	Name         string
	Title        string
	Contents     string
	ArticleKey   string
	RegisteredAt time.Time
	UpdatedAt    time.Time
}
