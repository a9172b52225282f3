package catalog

import (
	"context"
)

// fantasyGenre is the genre counted on the home page summary. The match is
// case-insensitive.
const fantasyGenre = "fantasy"

// Service provides catalog queries and author/book lifecycle operations.
// Access control happens in the web layer; the service trusts its callers.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// HomeSummary returns the aggregate counts for the home page.
func (s *Service) HomeSummary(ctx context.Context) (Summary, error) {
	var sum Summary
	var err error

	if sum.Books, err = s.repo.CountBooks(ctx); err != nil {
		return Summary{}, err
	}
	if sum.Instances, err = s.repo.CountInstances(ctx); err != nil {
		return Summary{}, err
	}
	if sum.InstancesAvailable, err = s.repo.CountInstancesByStatus(ctx, StatusAvailable); err != nil {
		return Summary{}, err
	}
	if sum.Authors, err = s.repo.CountAuthors(ctx); err != nil {
		return Summary{}, err
	}
	if sum.FantasyGenres, err = s.repo.CountGenresNamed(ctx, fantasyGenre); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// ListAllAuthors returns every author without pagination. Only the home page
// uses it, and only when the server runs in development mode.
func (s *Service) ListAllAuthors(ctx context.Context) ([]Author, error) {
	return s.repo.ListAllAuthors(ctx)
}

// ListBooks returns one page of books plus the total count.
func (s *Service) ListBooks(ctx context.Context, limit, offset int) ([]Book, int, error) {
	return s.repo.ListBooks(ctx, limit, offset)
}

// GetBook returns a book with its genres, language and copies.
func (s *Service) GetBook(ctx context.Context, id string) (Book, []BookInstance, error) {
	b, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return Book{}, nil, err
	}
	instances, err := s.repo.ListInstancesForBook(ctx, id)
	if err != nil {
		return Book{}, nil, err
	}
	return b, instances, nil
}

// ListAuthors returns one page of authors plus the total count.
func (s *Service) ListAuthors(ctx context.Context, limit, offset int) ([]Author, int, error) {
	return s.repo.ListAuthors(ctx, limit, offset)
}

// GetAuthor returns an author and the books they wrote.
func (s *Service) GetAuthor(ctx context.Context, id string) (Author, []Book, error) {
	a, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return Author{}, nil, err
	}
	books, err := s.repo.ListBooksByAuthor(ctx, id)
	if err != nil {
		return Author{}, nil, err
	}
	return a, books, nil
}

// ListGenres returns all genres with their book counts.
func (s *Service) ListGenres(ctx context.Context) ([]Genre, error) {
	return s.repo.ListGenres(ctx)
}

// GetGenre returns a genre and the books carrying it.
func (s *Service) GetGenre(ctx context.Context, id string) (Genre, []Book, error) {
	g, err := s.repo.GetGenre(ctx, id)
	if err != nil {
		return Genre{}, nil, err
	}
	books, err := s.repo.ListBooksByGenre(ctx, id)
	if err != nil {
		return Genre{}, nil, err
	}
	return g, books, nil
}

// ListLanguages returns all languages, for the book form's select options.
func (s *Service) ListLanguages(ctx context.Context) ([]Language, error) {
	return s.repo.ListLanguages(ctx)
}

// CreateAuthor stores a new author and fills in its generated fields.
func (s *Service) CreateAuthor(ctx context.Context, a *Author) error {
	return s.repo.CreateAuthor(ctx, a)
}

// UpdateAuthor overwrites every stored field of the author.
func (s *Service) UpdateAuthor(ctx context.Context, a *Author) error {
	return s.repo.UpdateAuthor(ctx, a)
}

// DeleteAuthor removes an author. Their books and those books' copies go with
// them, per the schema's referential actions.
func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	return s.repo.DeleteAuthor(ctx, id)
}

// CreateBook stores a new book with its genre set.
func (s *Service) CreateBook(ctx context.Context, b *Book, genreIDs []string) error {
	return s.repo.CreateBook(ctx, b, genreIDs)
}

// UpdateBook overwrites every stored field of the book and replaces its genre set.
func (s *Service) UpdateBook(ctx context.Context, b *Book, genreIDs []string) error {
	return s.repo.UpdateBook(ctx, b, genreIDs)
}

// DeleteBook removes a book and its copies.
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.DeleteBook(ctx, id)
}
