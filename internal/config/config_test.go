package config

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "public.yaml"), []byte(public), 0o644))
	require.NoError(t, os.WriteFile(path.Join(dir, "private.yaml"), []byte(private), 0o644))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := `
address: ":9090"
posts_per_page: 5
templates_dir: "tmpl"
log_level: "debug"
session_ttl_hours: 1
pg:
  host: "localhost"
  port: 5432
  user: "quill"
  dbname: "quill"
`
	private := `
jwt_key: "secret"
pg_password: "password"
`
	dir := writeConfigFiles(t, public, private)

	cfg := MustLoad(dir)

	assert.Equal(t, ":9090", cfg.Public.Address)
	assert.Equal(t, 5, cfg.Public.PostsPerPage)
	assert.Equal(t, "tmpl", cfg.Public.TemplatesDir)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, time.Hour, cfg.SessionTTL())
	assert.Equal(t, "localhost", cfg.Public.Pg.Host)
	assert.Equal(t, 5432, cfg.Public.Pg.Port)
	assert.Equal(t, "secret", cfg.JwtKey())
	assert.Equal(t, "password", cfg.PgPassword())
}

func TestMustLoadDefaults(t *testing.T) {
	dir := writeConfigFiles(t, "{}", "jwt_key: k")

	cfg := MustLoad(dir)

	assert.Equal(t, 10, cfg.Public.PostsPerPage, "page size should default to 10")
	assert.Equal(t, "web/templates", cfg.Public.TemplatesDir)
	assert.Equal(t, ":8080", cfg.Public.Address)
	assert.Equal(t, "info", cfg.Public.LogLevel)
}

func TestMustLoadMissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}

func TestMustLoadInvalidYaml(t *testing.T) {
	dir := writeConfigFiles(t, "address: [unclosed", "{}")
	assert.Panics(t, func() { MustLoad(dir) })
}
