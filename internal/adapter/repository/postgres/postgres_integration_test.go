//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vadimbarashkov/short-url/internal/config"
	"github.com/vadimbarashkov/short-url/internal/entity"
	"github.com/vadimbarashkov/short-url/internal/registry"
	"github.com/vadimbarashkov/short-url/internal/shortcode"

	pgkit "github.com/vadimbarashkov/short-url/pkg/postgres"
)

const migrationsURL = "file://../../../../migrations"

func setupPostgres(t testing.TB) config.Postgres {
	t.Helper()

	ctx := context.Background()

	pgUser := "test"
	pgPassword := "test"
	pgDB := "short_url"

	pgCont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: "postgres:16-alpine",
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDB,
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgCont.Terminate(ctx); err != nil {
			t.Fatalf("Failed to terminate postgres container: %v", err)
		}
	})

	pgHost, err := pgCont.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	pgPort, err := pgCont.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	return config.Postgres{
		User:     pgUser,
		Password: pgPassword,
		Host:     pgHost,
		Port:     pgPort.Int(),
		DB:       pgDB,
		SSLMode:  "disable",
	}
}

func setupURLRepository(t testing.TB) (*URLRepository, *sqlx.DB) {
	t.Helper()

	cfg := setupPostgres(t)

	if err := pgkit.RunMigrations(migrationsURL, cfg.DSN()); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		if err := pgkit.RollbackMigrations(migrationsURL, cfg.DSN()); err != nil {
			t.Fatalf("Failed to rollback migrations: %v", err)
		}
	})

	db, err := pgkit.New(context.Background(), cfg.DSN())
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("Failed to close database: %v", err)
		}
	})

	return NewURLRepository(db), db
}

func TestURLRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.SkipNow()
	}

	ctx := context.Background()
	repo, db := setupURLRepository(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("save and lookup", func(t *testing.T) {
		name := "example"

		saved, err := repo.Save(ctx, &entity.URLMapping{
			Name:      &name,
			LongURL:   "https://example.com",
			ShortURL:  "abc1234",
			CreatedAt: now,
			UpdatedAt: now,
		})

		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.Equal(t, "example", *saved.Name)
		assert.True(t, saved.CreatedAt.Equal(now))

		exists, err := repo.ExistsByLongURL(ctx, "https://example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByLongURL(ctx, "https://example.com/")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("short code exists", func(t *testing.T) {
		url, err := repo.Save(ctx, &entity.URLMapping{
			LongURL:   "https://example.org",
			ShortURL:  "abc1234",
			CreatedAt: now,
			UpdatedAt: now,
		})

		assert.ErrorIs(t, err, entity.ErrShortCodeExists)
		assert.Nil(t, url)
	})

	t.Run("duplicate long url is not rejected by the store", func(t *testing.T) {
		_, err := repo.Save(ctx, &entity.URLMapping{
			LongURL:   "https://example.com",
			ShortURL:  "zzz9999",
			CreatedAt: now,
			UpdatedAt: now,
		})

		assert.NoError(t, err)
	})

	t.Run("list in insertion order through the registry", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `TRUNCATE TABLE urls RESTART IDENTITY`)
		require.NoError(t, err)

		reg := registry.New(repo, shortcode.New(shortcode.DefaultLength, shortcode.DefaultCharset))

		for i := 0; i < 5; i++ {
			_, err := reg.Create(ctx, fmt.Sprintf("https://example.com/%d", i), nil)
			require.NoError(t, err)
		}

		mappings, err := reg.ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, mappings, 5)
		for i, m := range mappings {
			assert.Equal(t, int64(i+1), m.ID)
			assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), m.LongURL)
			assert.Len(t, m.ShortURL, shortcode.DefaultLength)
			assert.Nil(t, m.Name)
		}
	})
}
