package media

import (
	"context"
	"testing"

	"github.com/saransh1220/artistly/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewModule_LocalAndS3Error(t *testing.T) {
	dir := t.TempDir()
	m, err := NewModule(context.Background(), config.FileStorageConfig{LocalPath: dir, LocalBaseURL: "http://localhost:8080/uploads"}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, m.Service())
	require.Equal(t, dir, m.LocalDir())

	_, err = NewModule(context.Background(), config.FileStorageConfig{UseS3: true}, zap.NewNop())
	require.Error(t, err)
}
