package web

import (
	"fmt"
	"html/template"

	"github.com/corkboard-dev/corkboard/internal/domain/model"
)

// ArticleView holds presentation-ready data for one article. Contents is the
// raw markdown source (used for form fields); ContentsHTML is the sanitized
// rendering shown in read-only views.
type ArticleView struct {
	ID                int
	Name              string
	Title             string
	Contents          string
	ContentsHTML      template.HTML
	RegisteredAt      string
	UpdatedAt         string
	EditPath          string
	DeleteConfirmPath string
}

func toArticleView(a model.Article) ArticleView {
	return ArticleView{
		ID:                a.ID,
		Name:              a.Name,
		Title:             a.Title,
		Contents:          a.Contents,
		ContentsHTML:      template.HTML(RenderMarkdown(a.Contents)),
		RegisteredAt:      a.RegisteredAt.Local().Format(timeDisplayFormat),
		UpdatedAt:         a.UpdatedAt.Local().Format(timeDisplayFormat),
		EditPath:          fmt.Sprintf("/edit/%d", a.ID),
		DeleteConfirmPath: fmt.Sprintf("/delete/confirm/%d", a.ID),
	}
}

const timeDisplayFormat = "2006-01-02 15:04"

// indexPageData feeds the listing page.
type indexPageData struct {
	Title       string
	Flash       *Flash
	Errors      map[string]string
	Form        FormValues
	CSRFToken   string
	Articles    []ArticleView
	Page        int
	DisplayPage int
	TotalPages  int
	PrevPage    int
	NextPage    int
	HasPrev     bool
	HasNext     bool
}

// editPageData feeds the edit form.
type editPageData struct {
	Title     string
	Flash     *Flash
	Errors    map[string]string
	Form      FormValues
	CSRFToken string
}

// deleteConfirmPageData feeds the delete-confirmation page.
type deleteConfirmPageData struct {
	Title     string
	Flash     *Flash
	Errors    map[string]string
	Article   ArticleView
	CSRFToken string
}

