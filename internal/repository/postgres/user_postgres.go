package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, name, phone, email, password_hash, role, location, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Phone,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Location,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns the stored row.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (name, phone, email, password_hash, role, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.Name,
		u.Phone,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Location,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindByPhone fetches a single user by phone.
func (r *UserPostgres) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, phone))
}

// Update builds the SET clause from the provided fields only.
func (r *UserPostgres) Update(ctx context.Context, phone string, upd model.UserUpdate) (*model.User, error) {
	if upd.Empty() {
		return nil, repository.ErrNothingToUpdate
	}

	var (
		sets []string
		args []any
	)
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	add("name", upd.Name)
	add("email", upd.Email)
	add("location", upd.Location)
	sets = append(sets, "updated_at = now()")
	args = append(args, phone)

	q := `UPDATE users SET ` + strings.Join(sets, ", ") +
		` WHERE phone = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + userColumns
	return scanUser(r.db.QueryRowContext(ctx, q, args...))
}

// List returns users using LIMIT/OFFSET pagination and a total count.
func (r *UserPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.User], error) {
	const qCount = `SELECT COUNT(*) FROM users`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.User]{Items: items, Total: total}, nil
}
