package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "barberlink"
password = "secret"
dbname = "barberlink"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "bl-booking-service"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "barberlink", cfg.Database.DBName)
	assert.Equal(t, "host=localhost port=5432 user=barberlink password=secret dbname=barberlink sslmode=disable",
		cfg.Database.DSN())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 0

[database]
host = "localhost"
dbname = "barberlink"
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "http_port")

	path = writeConfig(t, `
[server]
http_port = 8080

[database]
dbname = "barberlink"
`)
	_, err = Load(path)
	assert.ErrorContains(t, err, "database.host")

	path = writeConfig(t, `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "barberlink"

[metrics]
enabled = true
path = ""
`)
	_, err = Load(path)
	assert.ErrorContains(t, err, "metrics.path")
}
