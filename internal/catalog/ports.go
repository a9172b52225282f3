package catalog

import "context"

// Repository defines the contract for catalog data storage.
type Repository interface {
	CountBooks(ctx context.Context) (int, error)
	CountInstances(ctx context.Context) (int, error)
	CountInstancesByStatus(ctx context.Context, status InstanceStatus) (int, error)
	CountAuthors(ctx context.Context) (int, error)
	CountGenresNamed(ctx context.Context, name string) (int, error)

	ListBooks(ctx context.Context, limit, offset int) ([]Book, int, error)
	GetBook(ctx context.Context, id string) (Book, error)
	ListInstancesForBook(ctx context.Context, bookID string) ([]BookInstance, error)
	ListBooksByAuthor(ctx context.Context, authorID string) ([]Book, error)
	ListBooksByGenre(ctx context.Context, genreID string) ([]Book, error)

	ListAuthors(ctx context.Context, limit, offset int) ([]Author, int, error)
	ListAllAuthors(ctx context.Context) ([]Author, error)
	GetAuthor(ctx context.Context, id string) (Author, error)

	ListGenres(ctx context.Context) ([]Genre, error)
	GetGenre(ctx context.Context, id string) (Genre, error)
	ListLanguages(ctx context.Context) ([]Language, error)

	CreateAuthor(ctx context.Context, a *Author) error
	UpdateAuthor(ctx context.Context, a *Author) error
	DeleteAuthor(ctx context.Context, id string) error

	CreateBook(ctx context.Context, b *Book, genreIDs []string) error
	UpdateBook(ctx context.Context, b *Book, genreIDs []string) error
	DeleteBook(ctx context.Context, id string) error
}
