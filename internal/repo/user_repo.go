package repo

import (
	"context"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string) (dom.User, error)
	SetPartner(ctx context.Context, id int64, partnerUsername string) (dom.User, error)
	AddPoints(ctx context.Context, id int64, delta int64) error
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

const userColumns = `id, username, password_hash, partner_username, points, created_at`

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PartnerUsername, &u.Points, &u.CreatedAt)
	return u, err
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PartnerUsername, &u.Points, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING ` + userColumns
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.PartnerUsername, &u.Points, &u.CreatedAt,
	)
	return u, err
}

// SetPartner stores the partner username on the user and returns the updated record.
func (r *PGUserRepo) SetPartner(ctx context.Context, id int64, partnerUsername string) (dom.User, error) {
	query := `
		UPDATE users SET partner_username = $2
		WHERE id = $1
		RETURNING ` + userColumns
	var u dom.User
	err := r.db.QueryRow(ctx, query, id, partnerUsername).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.PartnerUsername, &u.Points, &u.CreatedAt,
	)
	return u, err
}

// AddPoints credits delta points to the user in a single atomic update.
func (r *PGUserRepo) AddPoints(ctx context.Context, id int64, delta int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET points = points + $2 WHERE id = $1`, id, delta)
	return err
}
