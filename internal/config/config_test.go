package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-relevance/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "QDRANT_URL", "EMBED_TIMEOUT", "WEIGHT_HARD", "LOG_JSON"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.False(t, cfg.Qdrant.Enabled())
	assert.Equal(t, 15*time.Second, cfg.Gemini.RequestTimeout)
	assert.Equal(t, 0.55, cfg.Scoring.WeightHard)
	assert.Equal(t, 85.0, cfg.Scoring.FuzzyMustThreshold)
	assert.False(t, cfg.Logging.JSON)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("QDRANT_URL", "localhost:6334")
	t.Setenv("EMBED_TIMEOUT", "2s")
	t.Setenv("WEIGHT_HARD", "0.7")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Qdrant.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Gemini.RequestTimeout)
	assert.Equal(t, 0.7, cfg.Scoring.WeightHard)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}

func TestOpenSQLiteMigrates(t *testing.T) {
	t.Parallel()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)

	for _, table := range []any{&models.Resume{}, &models.JobDescription{}, &models.Evaluation{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestDialectorRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := dialectorFor(DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}
