package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"locallibrary/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const instanceColumns = `
	bi.id, bi.book_id, bi.imprint, bi.due_back, bi.status,
	COALESCE(bi.borrower_id::text, ''), COALESCE(u.username, ''), b.title,
	bi.created_at, bi.updated_at
`

func scanInstance(row pgx.Row) (catalog.BookInstance, error) {
	var bi catalog.BookInstance
	var status string
	err := row.Scan(
		&bi.ID, &bi.BookID, &bi.Imprint, &bi.DueBack, &status,
		&bi.BorrowerID, &bi.BorrowerName, &bi.BookTitle,
		&bi.CreatedAt, &bi.UpdatedAt,
	)
	if err != nil {
		return catalog.BookInstance{}, err
	}
	bi.Status = catalog.InstanceStatus(status)
	return bi, nil
}

func (r *PostgresRepo) GetInstance(ctx context.Context, id string) (catalog.BookInstance, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	LEFT JOIN users u ON u.id = bi.borrower_id
	WHERE bi.id = $1
	LIMIT 1
	`, instanceColumns)

	bi, err := scanInstance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.BookInstance{}, catalog.ErrNotFound
		}
		return catalog.BookInstance{}, fmt.Errorf("get instance: %w", err)
	}
	return bi, nil
}

func (r *PostgresRepo) UpdateDueBack(ctx context.Context, id string, dueBack time.Time) error {
	const query = `UPDATE book_instances SET due_back = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, dueBack, id)
	if err != nil {
		return fmt.Errorf("update due back: %w", err)
	}
	if result.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) ListOnLoanByBorrower(ctx context.Context, borrowerID string, limit, offset int) ([]catalog.BookInstance, int, error) {
	var total int
	const countQuery = `SELECT COUNT(*) FROM book_instances WHERE borrower_id = $1 AND status = 'o'`
	if err := r.db.QueryRow(ctx, countQuery, borrowerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	LEFT JOIN users u ON u.id = bi.borrower_id
	WHERE bi.borrower_id = $1 AND bi.status = 'o'
	ORDER BY bi.due_back ASC
	LIMIT $2 OFFSET $3
	`, instanceColumns)

	instances, err := r.queryInstances(ctx, query, borrowerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return instances, total, nil
}

func (r *PostgresRepo) ListOnLoan(ctx context.Context, limit, offset int) ([]catalog.BookInstance, int, error) {
	var total int
	const countQuery = `SELECT COUNT(*) FROM book_instances WHERE status = 'o'`
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM book_instances bi
	JOIN books b ON b.id = bi.book_id
	LEFT JOIN users u ON u.id = bi.borrower_id
	WHERE bi.status = 'o'
	ORDER BY bi.due_back ASC
	LIMIT $1 OFFSET $2
	`, instanceColumns)

	instances, err := r.queryInstances(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return instances, total, nil
}

func (r *PostgresRepo) queryInstances(ctx context.Context, query string, args ...any) ([]catalog.BookInstance, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.BookInstance
	for rows.Next() {
		bi, err := scanInstance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bi)
	}
	return out, rows.Err()
}
