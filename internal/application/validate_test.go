package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() ArticleForm {
	return ArticleForm{
		ID:         "1",
		Name:       "alice",
		Title:      "hello",
		Contents:   "world",
		ArticleKey: "secret",
	}
}

func TestValidateForm_Valid(t *testing.T) {
	assert.Nil(t, ValidateForm(validForm(), true))
	assert.Nil(t, ValidateForm(validForm(), false))
}

func TestValidateForm_BlankFields(t *testing.T) {
	form := validForm()
	form.Name = "   "
	form.Contents = ""

	errs := ValidateForm(form, false)
	require.NotNil(t, errs)
	assert.Contains(t, errs, FieldName)
	assert.Contains(t, errs, FieldContents)
	assert.NotContains(t, errs, FieldTitle)
	assert.NotContains(t, errs, FieldArticleKey)
}

func TestValidateForm_IDOnlyCheckedWhenRequired(t *testing.T) {
	form := validForm()
	form.ID = "abc"

	assert.Nil(t, ValidateForm(form, false))

	errs := ValidateForm(form, true)
	require.NotNil(t, errs)
	assert.Contains(t, errs, FieldID)
}

func TestValidateForm_NonPositiveID(t *testing.T) {
	for _, id := range []string{"0", "-3", ""} {
		form := validForm()
		form.ID = id

		errs := ValidateForm(form, true)
		require.NotNil(t, errs, "id %q should be rejected", id)
		assert.Contains(t, errs, FieldID)
	}
}

func TestArticleForm_ArticleIDOrZero(t *testing.T) {
	form := validForm()
	assert.Equal(t, 1, form.ArticleIDOrZero())

	form.ID = "garbage"
	assert.Equal(t, 0, form.ArticleIDOrZero())

	form.ID = " 42 "
	assert.Equal(t, 42, form.ArticleIDOrZero())
}
