package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"SERVER_ADDR", "DB_HOST", "DB_DRIVER", "DB_MAX_OPEN_CONNS", "KAFKA_BROKERS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	// t.Setenv registers restore; unset so defaults apply.
	unset(t, "SERVER_ADDR", "DB_HOST", "DB_DRIVER", "DB_MAX_OPEN_CONNS", "KAFKA_BROKERS", "LOG_LEVEL")

	cfg := Load()
	require.Equal(t, ":8000", cfg.Server.Addr)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, DriverPgx, cfg.Database.Driver)
	require.Equal(t, 10, cfg.Database.MaxOpenConns)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Kafka.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SHUTDOWN_TIMEOUT", "nope")

	cfg := Load()
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, DriverPQ, cfg.Database.Driver)
	require.Equal(t, 25, cfg.Database.MaxOpenConns)
	require.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", Name: "fleet", SSLMode: "disable", TimeZone: "UTC"}
	require.Equal(t, "host=db user=u password=p dbname=fleet port=5433 sslmode=disable TimeZone=UTC", d.DSN())
}

func TestDatabaseConfig_Dialector(t *testing.T) {
	for _, drv := range []string{"", DriverPgx, DriverPQ} {
		dl, err := DatabaseConfig{Driver: drv}.Dialector()
		require.NoError(t, err, drv)
		require.Equal(t, "postgres", dl.Name())
	}

	_, err := DatabaseConfig{Driver: "mysql"}.Dialector()
	require.Error(t, err)
}

func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
