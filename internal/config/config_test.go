package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name       string
		configYAML string
		env        map[string]string
		want       func(t *testing.T, cfg *Config)
		wantErr    string
	}{
		{
			name:       "defaults only",
			configYAML: "",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "local", cfg.Env)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 3306, cfg.Database.Port)
				assert.Equal(t, "linguatrack", cfg.Database.Database)
				assert.Equal(t, "http://localhost:8080", cfg.Client.BaseURL)
				assert.Equal(t, 2, cfg.Review.MinutesPerCard)
				assert.Equal(t, 5, cfg.Review.PointsPerCard)
				assert.Equal(t, "30 3 * * *", cfg.Jobs.StreakReconcileCron)
			},
		},
		{
			name: "file overrides defaults",
			configYAML: `
server:
  port: 9090
database:
  host: db.internal
  port: 3307
  database: progress
  username: svc
review:
  minutes_per_card: 3
  points_per_card: 10
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.Equal(t, 3307, cfg.Database.Port)
				assert.Equal(t, "progress", cfg.Database.Database)
				assert.Equal(t, "svc", cfg.Database.Username)
				assert.Equal(t, 3, cfg.Review.MinutesPerCard)
				assert.Equal(t, 10, cfg.Review.PointsPerCard)
			},
		},
		{
			name:       "database password from environment",
			configYAML: "",
			env:        map[string]string{"DB_PASSWORD": "s3cret"},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "s3cret", cfg.Database.Password)
			},
		},
		{
			name: "invalid server port",
			configYAML: `
server:
  port: 70000
`,
			wantErr: "invalid configuration",
		},
		{
			name: "invalid client base url",
			configYAML: `
client:
  base_url: "not a url"
`,
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			configFile := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.configYAML), 0o600))

			loader, err := NewConfigLoader(configFile)
			require.NoError(t, err)

			cfg, err := loader.Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}
