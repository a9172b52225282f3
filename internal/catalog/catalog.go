package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a catalog record does not exist.
var ErrNotFound = errors.New("catalog record not found")

// InstanceStatus is the loan status of a single copy of a book.
type InstanceStatus string

const (
	StatusMaintenance InstanceStatus = "m"
	StatusOnLoan      InstanceStatus = "o"
	StatusAvailable   InstanceStatus = "a"
	StatusReserved    InstanceStatus = "r"
)

// Label returns the human-readable name of the status.
func (s InstanceStatus) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	}
	return "Unknown"
}

// Valid reports whether s is one of the recognized status codes.
func (s InstanceStatus) Valid() bool {
	switch s {
	case StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved:
		return true
	}
	return false
}

// Author represents a book author.
type Author struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Name returns the display name, "Last, First".
func (a Author) Name() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.LastName + ", " + a.FirstName
}

// Genre is a book classification such as "Fantasy" or "Science Fiction".
type Genre struct {
	ID   string
	Name string

	// BookCount is populated by listing queries, not stored.
	BookCount int
}

// Language is the natural language a book is written in.
type Language struct {
	ID   string
	Name string
}

// Book represents a title in the catalog, independent of physical copies.
type Book struct {
	ID         string
	Title      string
	AuthorID   string
	Summary    string
	ISBN       string
	LanguageID string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for display.
	AuthorName   string
	LanguageName string
	Genres       []Genre
}

// BookInstance is a single loanable copy of a book.
type BookInstance struct {
	ID         string
	BookID     string
	Imprint    string
	DueBack    *time.Time
	Status     InstanceStatus
	BorrowerID string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for display.
	BookTitle    string
	BorrowerName string
}

// Overdue reports whether the copy is past its due date.
func (bi BookInstance) Overdue(today time.Time) bool {
	if bi.DueBack == nil {
		return false
	}
	y1, m1, d1 := bi.DueBack.Date()
	y2, m2, d2 := today.Date()
	due := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	now := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return now.After(due)
}

// Summary holds the aggregate counts shown on the home page.
type Summary struct {
	Books              int
	Instances          int
	InstancesAvailable int
	Authors            int
	FantasyGenres      int
}
