package cmd_test

import (
	"log/slog"
	"testing"

	"pizzeria/cmd"
	"pizzeria/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "pizzeria", config.DBName)
	assert.Equal(t, 10, config.DBMaxOpenConns)
	assert.Equal(t, 5, config.DBMaxIdleConns)
	assert.Equal(t, cmd.StoreDriverPostgres, config.StoreDriver)
	assert.Equal(t, jobs.DefaultReconcileSchedule, config.ReconcileSchedule)

	level, err := config.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	config, err := cmd.LoadConfig(env(map[string]string{
		"HTTP_PORT":          "9090",
		"DB_HOST":            "db",
		"DB_USER":            "chef",
		"DB_PASSWORD":        "secret",
		"DB_MAX_OPEN_CONNS":  "20",
		"DB_MAX_IDLE_CONNS":  "2",
		"STORE_DRIVER":       "MEMORY",
		"RECONCILE_SCHEDULE": "*/5 * * * * *",
		"LOG_LEVEL":          "debug",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, 20, config.DBMaxOpenConns)
	assert.Equal(t, 2, config.DBMaxIdleConns)
	assert.Equal(t, cmd.StoreDriverMemory, config.StoreDriver)
	assert.Equal(t, "*/5 * * * * *", config.ReconcileSchedule)
	assert.Equal(t, "host=db port=5432 user=chef password=secret dbname=pizzeria sslmode=disable", config.DSN())

	level, err := config.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		wantErr string
	}{
		{"pool size not a number", map[string]string{"DB_MAX_OPEN_CONNS": "many"}, "invalid connection pool size"},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite"}, `unknown store driver "sqlite"`},
		{"idle above open", map[string]string{"DB_MAX_OPEN_CONNS": "2", "DB_MAX_IDLE_CONNS": "3"}, "DB_MAX_IDLE_CONNS"},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}, "invalid LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cmd.LoadConfig(env(tt.values))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpenStore_Memory(t *testing.T) {
	config, err := cmd.LoadConfig(env(map[string]string{"STORE_DRIVER": "memory"}))
	require.NoError(t, err)

	factory, closeStore, err := cmd.OpenStore(config)

	require.NoError(t, err)
	require.NotNil(t, factory)
	assert.NotNil(t, factory.Create().OrderRepository())
	assert.NoError(t, closeStore())
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, _, err := cmd.OpenStore(cmd.Config{StoreDriver: "sqlite"})

	require.Error(t, err)
}
