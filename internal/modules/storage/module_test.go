package storage

import (
	"context"
	"testing"

	"github.com/saransh1220/artistly/internal/modules/storage/infrastructure/memory"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"github.com/saransh1220/artistly/internal/shared/infrastructure/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewModule_Backends(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		m, err := NewModule(config.Config{Storage: config.StorageConfig{Backend: "memory"}}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "memory", m.Backend())
		assert.Nil(t, m.Redis())
		assert.Nil(t, m.DB())
		require.NoError(t, m.Store().Set(context.Background(), "k", []byte("v")))
		assert.NoError(t, m.Close())
	})

	t.Run("file", func(t *testing.T) {
		cfg := config.Config{Storage: config.StorageConfig{Backend: "file", FileDir: t.TempDir()}}
		m, err := NewModule(cfg, zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, m.Store().Set(context.Background(), "k", []byte("v")))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewModule(config.Config{Storage: config.StorageConfig{Backend: "tape"}}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cfg := config.Config{
			Storage: config.StorageConfig{Backend: "redis"},
			Redis:   database.RedisConfig{Host: "127.0.0.1", Port: "1"},
		}
		_, err := NewModule(cfg, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestNewModuleWithStore(t *testing.T) {
	m := NewModuleWithStore("memory", memory.NewStore())
	assert.Equal(t, "memory", m.Backend())
	_, err := m.Store().Get(context.Background(), "missing")
	assert.Error(t, err)
	assert.NoError(t, m.Close())
}
