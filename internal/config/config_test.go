package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/stockboard-api/internal/domain"
)

const sampleConfig = `
api:
  environment: test
  port: "9000"
  jwt_signing_key: file-signing-key-0123456789
  access_token_expire_minutes: 15
gin:
  mode: release
postgres:
  host: db
  port: "5433"
  user: board
  password: secret
  db: board
  conn_max_lifetime: 2m
auth:
  users:
    - username: johndoe
      full_name: John Doe
      hashed_password: "$2a$10$abcdefghijklmnopqrstuv"
    - username: alice
      hashed_password: "$2a$10$vutsrqponmlkjihgfedcba"
      disabled: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, "file-signing-key-0123456789", conf.API.JWTSigningKey)
	assert.Equal(t, 15*time.Minute, conf.API.AccessTokenTTL())
	assert.Equal(t, "release", conf.Gin.Mode)

	assert.Equal(t, "db", conf.Postgres.Host)
	assert.Equal(t, 2*time.Minute, conf.Postgres.ConnMaxLifetime)
	assert.Equal(t, 25, conf.Postgres.MaxOpenConns, "default kept for keys missing from the file")
	assert.Equal(t, "host=db port=5433 user=board password=secret dbname=board sslmode=disable TimeZone=UTC", conf.Postgres.DSN())

	assert.Equal(t, []domain.User{
		{Username: "johndoe", FullName: "John Doe", HashedPassword: "$2a$10$abcdefghijklmnopqrstuv"},
		{Username: "alice", HashedPassword: "$2a$10$vutsrqponmlkjihgfedcba", Disabled: true},
	}, conf.Auth.DomainUsers())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("API_PORT", "7000")
	t.Setenv("API_JWT_SIGNING_KEY", "env-signing-key-0123456789")
	t.Setenv("POSTGRES_HOST", "pg.internal")

	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "7000", conf.API.Port)
	assert.Equal(t, "env-signing-key-0123456789", conf.API.JWTSigningKey)
	assert.Equal(t, "pg.internal", conf.Postgres.Host)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("API_JWT_SIGNING_KEY", "env-signing-key-0123456789")

	conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", conf.API.Port)
	assert.Equal(t, 30*time.Minute, conf.API.AccessTokenTTL())
	assert.Equal(t, "debug", conf.Gin.Mode)
	assert.Equal(t, "localhost", conf.Postgres.Host)
	assert.Empty(t, conf.Auth.Users)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "short signing key",
			content: `
api:
  jwt_signing_key: short
`,
		},
		{
			name: "missing signing key",
			content: `
gin:
  mode: debug
`,
		},
		{
			name: "unknown gin mode",
			content: `
api:
  jwt_signing_key: file-signing-key-0123456789
gin:
  mode: verbose
`,
		},
		{
			name: "non positive token lifetime",
			content: `
api:
  jwt_signing_key: file-signing-key-0123456789
  access_token_expire_minutes: -5
`,
		},
		{
			name: "credential without hash",
			content: `
api:
  jwt_signing_key: file-signing-key-0123456789
auth:
  users:
    - username: johndoe
`,
		},
		{
			name:    "malformed yaml",
			content: "api: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestAppConfig_Validate_RequiresSections(t *testing.T) {
	conf := &AppConfig{API: &APIConfig{Port: "8000", JWTSigningKey: "file-signing-key-0123456789", AccessTokenExpireMinutes: 1}}
	assert.Error(t, conf.Validate())

	conf.Gin = &GinConfig{Mode: "test"}
	conf.Postgres = &PostgresConfig{}
	require.NoError(t, conf.Validate())
	assert.NotNil(t, conf.Auth)
}
