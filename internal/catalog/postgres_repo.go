package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CountBooks(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&count)
	return count, err
}

func (r *PostgresRepo) CountInstances(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM book_instances").Scan(&count)
	return count, err
}

func (r *PostgresRepo) CountInstancesByStatus(ctx context.Context, status InstanceStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM book_instances WHERE status = $1", string(status)).Scan(&count)
	return count, err
}

func (r *PostgresRepo) CountAuthors(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&count)
	return count, err
}

func (r *PostgresRepo) CountGenresNamed(ctx context.Context, name string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM genres WHERE lower(name) = lower($1)", name).Scan(&count)
	return count, err
}

func (r *PostgresRepo) ListBooks(ctx context.Context, limit, offset int) ([]Book, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT b.id, b.title, b.author_id, b.summary, b.isbn, COALESCE(b.language_id::text, ''),
	       a.first_name, a.last_name, b.created_at, b.updated_at
	FROM books b
	JOIN authors a ON a.id = b.author_id
	ORDER BY b.id
	LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		var first, last string
		if err := rows.Scan(
			&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.LanguageID,
			&first, &last, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		b.AuthorName = Author{FirstName: first, LastName: last}.Name()
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetBook(ctx context.Context, id string) (Book, error) {
	const query = `
	SELECT b.id, b.title, b.author_id, b.summary, b.isbn, COALESCE(b.language_id::text, ''),
	       a.first_name, a.last_name, COALESCE(l.name, ''), b.created_at, b.updated_at
	FROM books b
	JOIN authors a ON a.id = b.author_id
	LEFT JOIN languages l ON l.id = b.language_id
	WHERE b.id = $1
	LIMIT 1
	`
	var b Book
	var first, last string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.LanguageID,
		&first, &last, &b.LanguageName, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	b.AuthorName = Author{FirstName: first, LastName: last}.Name()

	b.Genres, err = r.genresForBook(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("get book genres: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) genresForBook(ctx context.Context, bookID string) ([]Genre, error) {
	const query = `
	SELECT g.id, g.name
	FROM genres g
	JOIN book_genres bg ON bg.genre_id = g.id
	WHERE bg.book_id = $1
	ORDER BY g.name
	`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Genre
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListInstancesForBook(ctx context.Context, bookID string) ([]BookInstance, error) {
	const query = `
	SELECT bi.id, bi.book_id, bi.imprint, bi.due_back, bi.status,
	       COALESCE(bi.borrower_id::text, ''), COALESCE(u.username, ''),
	       bi.created_at, bi.updated_at
	FROM book_instances bi
	LEFT JOIN users u ON u.id = bi.borrower_id
	WHERE bi.book_id = $1
	ORDER BY bi.id
	`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookInstance
	for rows.Next() {
		var bi BookInstance
		var status string
		if err := rows.Scan(
			&bi.ID, &bi.BookID, &bi.Imprint, &bi.DueBack, &status,
			&bi.BorrowerID, &bi.BorrowerName, &bi.CreatedAt, &bi.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bi.Status = InstanceStatus(status)
		out = append(out, bi)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListBooksByAuthor(ctx context.Context, authorID string) ([]Book, error) {
	const query = `
	SELECT id, title, author_id, summary, isbn, COALESCE(language_id::text, ''), created_at, updated_at
	FROM books
	WHERE author_id = $1
	ORDER BY id
	`
	return r.queryBooks(ctx, query, authorID)
}

func (r *PostgresRepo) ListBooksByGenre(ctx context.Context, genreID string) ([]Book, error) {
	const query = `
	SELECT b.id, b.title, b.author_id, b.summary, b.isbn, COALESCE(b.language_id::text, ''), b.created_at, b.updated_at
	FROM books b
	JOIN book_genres bg ON bg.book_id = b.id
	WHERE bg.genre_id = $1
	ORDER BY b.title
	`
	return r.queryBooks(ctx, query, genreID)
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.LanguageID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListAuthors(ctx context.Context, limit, offset int) ([]Author, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
	SELECT id, first_name, last_name, date_of_birth, date_of_death, created_at, updated_at
	FROM authors
	ORDER BY id
	LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	authors, err := scanAuthors(rows)
	if err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

func (r *PostgresRepo) ListAllAuthors(ctx context.Context) ([]Author, error) {
	const query = `
	SELECT id, first_name, last_name, date_of_birth, date_of_death, created_at, updated_at
	FROM authors
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAuthors(rows)
}

func scanAuthors(rows pgx.Rows) ([]Author, error) {
	var out []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.DateOfDeath, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetAuthor(ctx context.Context, id string) (Author, error) {
	const query = `
	SELECT id, first_name, last_name, date_of_birth, date_of_death, created_at, updated_at
	FROM authors
	WHERE id = $1
	LIMIT 1
	`
	var a Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.DateOfDeath, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, fmt.Errorf("get author: %w", err)
	}
	return a, nil
}

func (r *PostgresRepo) ListGenres(ctx context.Context) ([]Genre, error) {
	const query = `
	SELECT g.id, g.name, COUNT(bg.book_id)
	FROM genres g
	LEFT JOIN book_genres bg ON bg.genre_id = g.id
	GROUP BY g.id, g.name
	ORDER BY g.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Genre
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.BookCount); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetGenre(ctx context.Context, id string) (Genre, error) {
	var g Genre
	err := r.db.QueryRow(ctx, "SELECT id, name FROM genres WHERE id = $1 LIMIT 1", id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Genre{}, ErrNotFound
		}
		return Genre{}, fmt.Errorf("get genre: %w", err)
	}
	return g, nil
}

func (r *PostgresRepo) ListLanguages(ctx context.Context) ([]Language, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name FROM languages ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Language
	for rows.Next() {
		var l Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateAuthor(ctx context.Context, a *Author) error {
	const query = `
	INSERT INTO authors (id, first_name, last_name, date_of_birth, date_of_death)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) UpdateAuthor(ctx context.Context, a *Author) error {
	const query = `
	UPDATE authors
	SET first_name = $1, last_name = $2, date_of_birth = $3, date_of_death = $4, updated_at = now()
	WHERE id = $5
	`
	result, err := r.db.Exec(ctx, query, a.FirstName, a.LastName, a.DateOfBirth, a.DateOfDeath, a.ID)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteAuthor(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) CreateBook(ctx context.Context, b *Book, genreIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
	INSERT INTO books (id, title, author_id, summary, isbn, language_id)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, NULLIF($5, '')::uuid)
	RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, b.LanguageID).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	if err := replaceBookGenres(ctx, tx, b.ID, genreIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PostgresRepo) UpdateBook(ctx context.Context, b *Book, genreIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
	UPDATE books
	SET title = $1, author_id = $2, summary = $3, isbn = $4, language_id = NULLIF($5, '')::uuid, updated_at = now()
	WHERE id = $6
	`
	result, err := tx.Exec(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, b.LanguageID, b.ID)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := replaceBookGenres(ctx, tx, b.ID, genreIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func replaceBookGenres(ctx context.Context, tx pgx.Tx, bookID string, genreIDs []string) error {
	if _, err := tx.Exec(ctx, "DELETE FROM book_genres WHERE book_id = $1", bookID); err != nil {
		return fmt.Errorf("clear book genres: %w", err)
	}
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx, "INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)", bookID, genreID); err != nil {
			return fmt.Errorf("set book genre: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepo) DeleteBook(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
