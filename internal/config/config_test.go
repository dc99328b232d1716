package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
logger:
  engine: slog
  level: debug
gin:
  mode: test
postgres:
  host: db
facility:
  contact_phone: "222 123 4567"
`)

	var cfg Config
	require.NoError(t, cleanenvport.LoadPath(path, &cfg))

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, logger.DebugLevel, cfg.Logger.LogLevel())
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, "sacrepadel", cfg.Postgres.Database)

	f := cfg.Facility
	assert.Equal(t, "Sacré Pádel", f.Name)
	assert.Equal(t, "-06:00", f.UTCOffset)
	assert.Equal(t, 7, f.OpenHour)
	assert.Equal(t, 22, f.CloseHour)
	assert.Equal(t, 30*time.Minute, f.SlotStep)
	assert.Equal(t, time.Hour, f.MinDuration)
	assert.Equal(t, 10*time.Minute, f.HoldTTL)
	assert.Equal(t, 350.0, f.DayRate)
	assert.Equal(t, 400.0, f.EveningRate)
	assert.Equal(t, 18, f.SwitchHour)
	assert.Equal(t, 15, f.ToleranceMinutes)
	assert.Equal(t, "MX", f.PhoneRegion)

	assert.Empty(t, cfg.Mail.Host)
	assert.Equal(t, "opportunistic", cfg.Mail.TLS)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "sacrepadel.bookings", cfg.RabbitMQ.Exchange)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CourtTTL)
}

func TestLoad_InvalidHours(t *testing.T) {
	path := writeConfig(t, `
facility:
  open_hour: 22
  close_hour: 7
`)

	var cfg Config
	err := cleanenvport.LoadPath(path, &cfg)

	assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "sacrepadel", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=sacrepadel sslmode=disable", p.DSN())
}
