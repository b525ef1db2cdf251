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

const minimalConfig = `
service_name = "retailmall"

[database]
dsn = "user:pass@tcp(localhost:3306)/retailmall?parseTime=true"

[inventory]
base_url = "http://localhost:8081"

[payment]
base_url = "http://localhost:8082"
`

func TestLoad_MinimalConfigAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "retailmall", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "retailmall.events", cfg.Kafka.Topic)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 10, cfg.Inventory.Timeout)
	assert.Equal(t, 10, cfg.Payment.Timeout)
}

func TestLoad_FullConfigOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
service_name = "retailmall"
environment = "prod"

[http]
port = 9000
read_timeout = 15

[database]
dsn = "user:pass@tcp(db:3306)/retailmall?parseTime=true"
max_open_conns = 50

[redis]
enabled = true
host = "redis"
ttl = 600

[kafka]
enabled = true
brokers = ["kafka-1:9092", "kafka-2:9092"]
topic = "mall.events"

[inventory]
base_url = "http://inventory:8081"
timeout = 5

[payment]
base_url = "http://payment:8082"
`))
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Environment)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 600, cfg.Redis.TTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "mall.events", cfg.Kafka.Topic)
	assert.Equal(t, 5, cfg.Inventory.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing service_name",
			`
[database]
dsn = "user:pass@tcp(localhost:3306)/retailmall"
[inventory]
base_url = "http://localhost:8081"
[payment]
base_url = "http://localhost:8082"
`,
		},
		{
			"missing database dsn",
			`
service_name = "retailmall"
[inventory]
base_url = "http://localhost:8081"
[payment]
base_url = "http://localhost:8082"
`,
		},
		{
			"missing inventory base_url",
			`
service_name = "retailmall"
[database]
dsn = "user:pass@tcp(localhost:3306)/retailmall"
[payment]
base_url = "http://localhost:8082"
`,
		},
		{
			"missing payment base_url",
			`
service_name = "retailmall"
[database]
dsn = "user:pass@tcp(localhost:3306)/retailmall"
[inventory]
base_url = "http://localhost:8081"
`,
		},
		{
			"kafka enabled without brokers",
			minimalConfig + `
[kafka]
enabled = true
`,
		},
		{
			"http port out of range",
			minimalConfig + `
[http]
port = 70000
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
