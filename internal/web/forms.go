package web

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayout matches the HTML date input format.
const dateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("isbn", validateISBN)
}

func validateISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")

	if len(isbn) == 10 {
		matched, _ := regexp.MatchString(`^\d{9}[\dX]$`, isbn)
		return matched
	}
	if len(isbn) == 13 {
		matched, _ := regexp.MatchString(`^\d{13}$`, isbn)
		return matched
	}
	return false
}

// validateForm checks a form struct and returns field name → message for
// inline display. Nil when the form is valid.
func validateForm(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		if _, seen := fieldErrors[field]; seen {
			continue
		}

		var message string
		switch fe.Tag() {
		case "required":
			message = "This field is required"
		case "email":
			message = "Enter a valid email address"
		case "max":
			message = fmt.Sprintf("Must be at most %s characters", fe.Param())
		case "isbn":
			message = "Enter a valid ISBN (10 or 13 digits)"
		case "datetime":
			message = "Enter a valid date (YYYY-MM-DD)"
		default:
			message = "This value is invalid"
		}
		fieldErrors[field] = message
	}
	return fieldErrors
}

// loginForm is the login page's fields.
type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Next     string
}

// renewForm is the librarian renewal form: one date field.
type renewForm struct {
	DueBack string `validate:"required,datetime=2006-01-02"`
}

// authorForm enumerates the author fields staff may set. This is the explicit
// allow-list; anything else in the request body is ignored.
type authorForm struct {
	FirstName   string `validate:"required,max=100"`
	LastName    string `validate:"required,max=100"`
	DateOfBirth string `validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `validate:"omitempty,datetime=2006-01-02"`
}

// bookForm enumerates the book fields staff may set.
type bookForm struct {
	Title      string `validate:"required,max=200"`
	AuthorID   string `validate:"required"`
	Summary    string `validate:"required,max=1000"`
	ISBN       string `validate:"required,isbn"`
	LanguageID string
	GenreIDs   []string
}

// parseDate converts a form date value to a UTC time. Empty returns nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatDate renders a nullable date for a form input value.
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
