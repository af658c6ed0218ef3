package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/testutil"
	"github.com/runoshun/tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			ProjectInfo: domain.ConfigInfo{
				Path:    "/work/.tracker/config.toml",
				Content: "[ui]\ntheme = \"dark\"",
				Exists:  true,
			},
			GlobalInfo: domain.ConfigInfo{
				Path:    "/home/test/.config/tracker/config.toml",
				Content: "[log]\nlevel = \"debug\"",
				Exists:  true,
			},
		}
		cfg := domain.NewDefaultConfig()
		cfg.UI.Theme = "dark"

		uc := usecase.NewShowConfig(manager, cfg)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.tracker/config.toml", out.ProjectConfig.Path)
		assert.True(t, out.ProjectConfig.Exists)
		assert.Equal(t, "[log]\nlevel = \"debug\"", out.GlobalConfig.Content)
		assert.Equal(t, "dark", out.Effective.UI.Theme)
	})

	t.Run("handles non-existent files", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			ProjectInfo: domain.ConfigInfo{Path: "/work/.tracker/config.toml"},
			GlobalInfo:  domain.ConfigInfo{Path: "/home/test/.config/tracker/config.toml"},
		}

		uc := usecase.NewShowConfig(manager, domain.NewDefaultConfig())
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.False(t, out.ProjectConfig.Exists)
		assert.False(t, out.GlobalConfig.Exists)
		assert.Empty(t, out.ProjectConfig.Content)
		assert.NotNil(t, out.Effective)
	})
}
