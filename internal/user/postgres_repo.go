package user

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

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (id, email, username, password_hash)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, u.Email, u.Username, u.Password).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
	SELECT id, email, username, password_hash, created_at, updated_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	var u User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
	SELECT id, email, username, password_hash, created_at, updated_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	var u User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) CountPermissions(ctx context.Context, userID string, codes []string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM user_permissions up
	JOIN permissions p ON p.id = up.permission_id
	WHERE up.user_id = $1 AND p.code = ANY($2)
	`
	var count int
	err := r.db.QueryRow(ctx, query, userID, codes).Scan(&count)
	return count, err
}

func (r *PostgresRepo) GrantPermission(ctx context.Context, userID, code string) error {
	const query = `
	INSERT INTO user_permissions (user_id, permission_id)
	SELECT $1, id FROM permissions WHERE code = $2
	ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID, code)
	if err != nil {
		return fmt.Errorf("grant permission: %w", err)
	}
	return nil
}

func (r *PostgresRepo) ListPermissionCodes(ctx context.Context, userID string) ([]string, error) {
	const query = `
	SELECT p.code
	FROM user_permissions up
	JOIN permissions p ON p.id = up.permission_id
	WHERE up.user_id = $1
	ORDER BY p.code
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
