package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `http_port: 8080
search_mode: natural
query_timeout: 3s
max_title_length: 120
max_description_length: 5000
max_comment_length: 5000
max_query_length: 200
`

const validPrivate = `jwt_key: 'k'
pg:
  host: localhost
  port: 5432
  user: agora
  password: secret
  dbname: agora
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	cfg := MustLoad(writeConfig(t, validPublic, validPrivate))

	assert.Equal(t, 8080, cfg.Public.HttpPort)
	assert.Equal(t, "natural", cfg.Public.SearchMode)
	assert.Equal(t, 3*time.Second, cfg.Public.QueryTimeout)
	assert.Equal(t, "localhost", cfg.Private.Pg.Host)
	assert.Equal(t, "k", cfg.JwtKey())
	assert.Empty(t, cfg.Private.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.JwtTTL())
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// query_timeout is intentionally missing
	public := "http_port: 8080\nmax_title_length: 1\nmax_description_length: 1\nmax_comment_length: 1\nmax_query_length: 1\n"
	dir := writeConfig(t, public, validPrivate)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_InvalidSearchMode(t *testing.T) {
	dir := writeConfig(t, strings.Replace(validPublic, "natural", "fuzzy", 1), validPrivate)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()

	assert.PanicsWithValue(t, "config file does not exist: "+filepath.Join(dir, "public.yaml"), func() { MustLoad(dir) })
}
