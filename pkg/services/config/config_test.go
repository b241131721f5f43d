package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
bookings_dsn: "user:pass@tcp(localhost:3306)/bookings?parseTime=true"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, domain.YearPolicyFiscal, cfg.Policy())
	assert.False(t, cfg.SingleCountSpaces)
}

func TestLoad_CalendarPolicy(t *testing.T) {
	path := writeConfig(t, `
addr: ":9090"
bookings_dsn: "dsn"
year_policy: calendar
single_count_spaces: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, domain.YearPolicyCalendar, cfg.Policy())
	assert.True(t, cfg.SingleCountSpaces)
}

func TestLoad_RejectsUnknownPolicy(t *testing.T) {
	path := writeConfig(t, `
bookings_dsn: "dsn"
year_policy: lunar
`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "year_policy")
}

func TestLoad_RequiresDSN(t *testing.T) {
	path := writeConfig(t, `addr: ":9090"`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "bookings_dsn")
}
