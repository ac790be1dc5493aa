package config_test

import (
	"testing"

	"mtg-collector/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "database/mtg_collection.db", cfg.Database.Path)
	assert.Equal(t, "inventory", cfg.Storage.Bucket)
	assert.Equal(t, "https://api.scryfall.com", cfg.Scryfall.BaseURL)
	assert.Equal(t, 3, cfg.Scryfall.MaxRetries)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("STORAGE_BUCKET", "uploads")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "uploads", cfg.Storage.Bucket)
}
