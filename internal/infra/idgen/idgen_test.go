package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tracker/internal/domain"
)

func TestNew(t *testing.T) {
	tests := []struct {
		scheme  string
		check   func(t *testing.T, id string)
		wantErr bool
	}{
		{scheme: "", check: func(t *testing.T, id string) {
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		}},
		{scheme: domain.IDSchemeUUID, check: func(t *testing.T, id string) {
			parsed, err := uuid.Parse(id)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(4), parsed.Version())
		}},
		{scheme: domain.IDSchemeNanoID, check: func(t *testing.T, id string) {
			assert.Len(t, id, NanoIDLength)
			assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
		}},
		{scheme: "snowflake", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			gen, err := New(tt.scheme)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownIDScheme)
				return
			}
			require.NoError(t, err)
			tt.check(t, gen.NewID())
		})
	}
}

func TestGenerators_AreUnique(t *testing.T) {
	for _, scheme := range []string{domain.IDSchemeUUID, domain.IDSchemeNanoID} {
		gen, err := New(scheme)
		require.NoError(t, err)

		seen := make(map[string]bool)
		for range 1000 {
			id := gen.NewID()
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
}

func TestNanoID_NeverStartsWithDash(t *testing.T) {
	gen, err := NewNanoID()
	require.NoError(t, err)

	for range 2000 {
		id := gen.NewID()
		assert.NotContains(t, id, "-")
		assert.NotContains(t, id, "_")
	}
}
