package postgres

import (
	"context"
	"errors"

	"go-tailoresume-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, email, username,
	COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(website, ''),
	COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(twitter, ''),
	COALESCE(city, ''), COALESCE(state, ''), COALESCE(country, ''), COALESCE(postal_code, ''),
	COALESCE(summary, ''),
	created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username,
		&u.FullName, &u.Phone, &u.Website,
		&u.LinkedIn, &u.GitHub, &u.Twitter,
		&u.City, &u.State, &u.Country, &u.PostalCode,
		&u.Summary,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			full_name = $1, phone = $2, website = $3,
			linkedin = $4, github = $5, twitter = $6,
			city = $7, state = $8, country = $9, postal_code = $10,
			summary = $11, updated_at = NOW()
		WHERE id = $12`

	tag, err := r.db.Exec(ctx, query,
		user.FullName, user.Phone, user.Website,
		user.LinkedIn, user.GitHub, user.Twitter,
		user.City, user.State, user.Country, user.PostalCode,
		user.Summary, user.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
