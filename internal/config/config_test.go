package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name:   "localhost default port",
			server: ServerConfig{Host: "localhost", Port: 8030},
			want:   "localhost:8030",
		},
		{
			name:   "bind all interfaces",
			server: ServerConfig{Host: "0.0.0.0", Port: 8080},
			want:   "0.0.0.0:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.server.Address())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "pricing", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:pw@db:5432/pricing?sslmode=disable", p.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLIENT_STORE_DRIVER", "file")
	t.Setenv("CLIENT_STORE_PATH", "clients.txt")
	t.Setenv("TAX_RATE", "0.10")
	t.Setenv("NOTIFIER", "console")
	t.Setenv("HTTP_PORT", "8030")
	t.Setenv("TIER_RATES_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "clients.txt", cfg.Store.Path)
	assert.Equal(t, 0.10, cfg.Pricing.TaxRate)
	assert.Equal(t, NotifierConsole, cfg.Notifier)
	assert.Equal(t, "", cfg.Pricing.TierRatesFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLIENT_STORE_DRIVER", "FILE")
	t.Setenv("CLIENT_STORE_PATH", "/tmp/c.txt")
	t.Setenv("TAX_RATE", "0.25")
	t.Setenv("NOTIFIER", "kafka")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", " a:9092, b:9092 ,")
	t.Setenv("KAFKA_NOTIFICATION_TOPIC", "welcome")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverFile, cfg.Store.Driver)
	assert.Equal(t, "/tmp/c.txt", cfg.Store.Path)
	assert.Equal(t, 0.25, cfg.Pricing.TaxRate)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "welcome", cfg.Kafka.NotificationTopic)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "negative tax", env: map[string]string{"TAX_RATE": "-0.1"}, wantErr: "TAX_RATE"},
		{name: "unknown store", env: map[string]string{"CLIENT_STORE_DRIVER": "redis"}, wantErr: "CLIENT_STORE_DRIVER"},
		{name: "blank store path", env: map[string]string{"CLIENT_STORE_PATH": " "}, wantErr: "CLIENT_STORE_PATH"},
		{name: "unknown notifier", env: map[string]string{"NOTIFIER": "sms"}, wantErr: "NOTIFIER"},
		{name: "bad port", env: map[string]string{"HTTP_PORT": "0"}, wantErr: "HTTP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CLIENT_STORE_DRIVER", "file")
			t.Setenv("CLIENT_STORE_PATH", "clients.txt")
			t.Setenv("TAX_RATE", "0.10")
			t.Setenv("NOTIFIER", "console")
			t.Setenv("HTTP_PORT", "8030")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
