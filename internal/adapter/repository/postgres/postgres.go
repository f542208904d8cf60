package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/short-url/internal/entity"
)

const uniqueViolationErrCode = "23505"

func isUniqueViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolationErrCode
}

type urlDB struct {
	ID        int64     `db:"id"`
	Name      *string   `db:"name"`
	LongURL   string    `db:"long_url"`
	ShortURL  string    `db:"short_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (u *urlDB) toEntity() *entity.URLMapping {
	return &entity.URLMapping{
		ID:        u.ID,
		Name:      u.Name,
		LongURL:   u.LongURL,
		ShortURL:  u.ShortURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type URLRepository struct {
	db *sqlx.DB
}

func NewURLRepository(db *sqlx.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) ExistsByLongURL(ctx context.Context, longURL string) (bool, error) {
	const op = "adapter.repository.postgres.URLRepository.ExistsByLongURL"
	const query = `SELECT EXISTS(SELECT 1 FROM urls WHERE long_url = $1)`

	var exists bool

	if err := r.db.GetContext(ctx, &exists, query, longURL); err != nil {
		return false, fmt.Errorf("%s: failed to query urls table: %w", op, err)
	}

	return exists, nil
}

func (r *URLRepository) Save(ctx context.Context, mapping *entity.URLMapping) (*entity.URLMapping, error) {
	const op = "adapter.repository.postgres.URLRepository.Save"
	const query = `INSERT INTO urls(name, long_url, short_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`

	var url urlDB

	err := r.db.GetContext(ctx, &url, query,
		mapping.Name, mapping.LongURL, mapping.ShortURL, mapping.CreatedAt, mapping.UpdatedAt)
	if err != nil {
		if isUniqueViolationError(err) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
		}

		return nil, fmt.Errorf("%s: failed to insert into urls table: %w", op, err)
	}

	return url.toEntity(), nil
}

func (r *URLRepository) List(ctx context.Context) ([]entity.URLMapping, error) {
	const op = "adapter.repository.postgres.URLRepository.List"
	const query = `SELECT * FROM urls ORDER BY id`

	var urls []urlDB

	if err := r.db.SelectContext(ctx, &urls, query); err != nil {
		return nil, fmt.Errorf("%s: failed to select from urls table: %w", op, err)
	}

	mappings := make([]entity.URLMapping, 0, len(urls))
	for i := range urls {
		mappings = append(mappings, *urls[i].toEntity())
	}

	return mappings, nil
}
