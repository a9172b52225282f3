package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookFormISBN(t *testing.T) {
	valid := bookForm{
		Title:    "Dune",
		AuthorID: "a1",
		Summary:  "Desert planet politics.",
	}

	tests := []struct {
		name string
		isbn string
		ok   bool
	}{
		{name: "isbn13", isbn: "9780441013593", ok: true},
		{name: "isbn13 hyphenated", isbn: "978-0-441-01359-3", ok: true},
		{name: "isbn10", isbn: "0441013597", ok: true},
		{name: "isbn10 with check X", isbn: "043942089X", ok: true},
		{name: "too short", isbn: "12345", ok: false},
		{name: "letters", isbn: "not-an-isbn", ok: false},
		{name: "x not in last position", isbn: "04394208X9", ok: false},
		{name: "empty", isbn: "", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			form.ISBN = tc.isbn
			errs := validateForm(form)
			if tc.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, "ISBN")
			}
		})
	}
}

func TestValidateAuthorForm(t *testing.T) {
	errs := validateForm(authorForm{FirstName: "", LastName: ""})
	require.NotNil(t, errs)
	assert.Equal(t, "This field is required", errs["FirstName"])
	assert.Equal(t, "This field is required", errs["LastName"])

	errs = validateForm(authorForm{FirstName: "Jane", LastName: "Austen", DateOfBirth: "16-12-1775"})
	require.NotNil(t, errs)
	assert.Equal(t, "Enter a valid date (YYYY-MM-DD)", errs["DateOfBirth"])

	assert.Nil(t, validateForm(authorForm{FirstName: "Jane", LastName: "Austen", DateOfBirth: "1775-12-16"}))

	// Empty dates are allowed.
	assert.Nil(t, validateForm(authorForm{FirstName: "Jane", LastName: "Austen"}))
}

func TestValidateRenewForm(t *testing.T) {
	assert.Nil(t, validateForm(renewForm{DueBack: "2026-09-21"}))

	errs := validateForm(renewForm{DueBack: ""})
	require.NotNil(t, errs)
	assert.Equal(t, "This field is required", errs["DueBack"])

	errs = validateForm(renewForm{DueBack: "21/09/2026"})
	require.NotNil(t, errs)
	assert.Equal(t, "Enter a valid date (YYYY-MM-DD)", errs["DueBack"])
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), *got)

	got, err = parseDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDate("31/08/2026")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", formatDate(nil))
	d := time.Date(1775, 12, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1775-12-16", formatDate(&d))
}
