package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tracker/internal/domain"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	tests := []struct {
		name         string
		config       *domain.Config
		wantContains []string
	}{
		{
			name:   "defaults",
			config: domain.NewDefaultConfig(),
			wantContains: []string{
				"[store]",
				`backend = "file"`,
				`key = "todos"`,
				`theme = "light"`,
				`scheme = "uuid"`,
				`level = "info"`,
			},
		},
		{
			name: "custom values",
			config: &domain.Config{
				Store: domain.StoreConfig{Backend: domain.BackendSQLite, Key: "work"},
				UI:    domain.UIConfig{Theme: "dark"},
				IDs:   domain.IDsConfig{Scheme: domain.IDSchemeNanoID},
				Log:   domain.LogConfig{Level: "debug"},
			},
			wantContains: []string{
				`backend = "sqlite"`,
				`key = "work"`,
				`theme = "dark"`,
				`scheme = "nanoid"`,
				`level = "debug"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewShowConfigTemplate()

			out, err := uc.Execute(context.Background(), ShowConfigTemplateInput{Config: tt.config})

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.Template, want)
			}
		})
	}
}

func TestShowConfigTemplate_NilConfig(t *testing.T) {
	uc := NewShowConfigTemplate()

	_, err := uc.Execute(context.Background(), ShowConfigTemplateInput{})

	assert.ErrorIs(t, err, domain.ErrConfigNil)
}
