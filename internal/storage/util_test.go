package storage

import (
	"objectviewer/internal/config"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConnectionStringFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.StorageConfig
		expected string
	}{
		{
			name:     "with credentials",
			cfg:      config.StorageConfig{Host: "db", Port: 5432, Username: "viewer", Password: "p@ss word", Database: "sessions"},
			expected: "postgres://viewer:p%40ss%20word@db:5432/sessions",
		},
		{
			name:     "username only",
			cfg:      config.StorageConfig{Host: "db", Port: 5432, Username: "viewer", Database: "sessions"},
			expected: "postgres://viewer@db:5432/sessions",
		},
		{
			name:     "ipv6 host",
			cfg:      config.StorageConfig{Host: "::1", Port: 5433, Database: "sessions"},
			expected: "postgres://[::1]:5433/sessions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connString := GetConnectionStringFromConfig(&tt.cfg)
			assert.Equal(t, tt.expected, connString)

			parsed, err := pgxpool.ParseConfig(connString)
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Database, parsed.ConnConfig.Database)
			assert.Equal(t, uint16(tt.cfg.Port), parsed.ConnConfig.Port)
			if tt.cfg.Password != "" {
				assert.Equal(t, tt.cfg.Password, parsed.ConnConfig.Password)
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultRecentEventLimit, clampLimit(0))
	assert.Equal(t, defaultRecentEventLimit, clampLimit(-4))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, maxRecentEventLimit, clampLimit(5000))
}
