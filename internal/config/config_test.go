package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "data/bookings.json", cfg.Storage.File)
	assert.Equal(t, 80, cfg.Booking.DailyItemCap)
	assert.Equal(t, "4:00 PM", cfg.Booking.CappedSlot)
	assert.Equal(t, 30, cfg.Booking.CappedSlotCap)
	assert.Equal(t, "Sunday", cfg.Booking.ClosedWeekday)
	assert.Len(t, cfg.Booking.Slots, 7)
	assert.False(t, cfg.EmailJS.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9090

[booking]
daily_item_cap = 100
capped_slot = "12:00 PM"
capped_slot_cap = 40
closed_weekday = "Monday"
slots = ["10:00 AM", "12:00 PM"]
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 100, cfg.Booking.DailyItemCap)
	assert.Equal(t, "12:00 PM", cfg.Booking.CappedSlot)
	assert.Equal(t, []string{"10:00 AM", "12:00 PM"}, cfg.Booking.Slots)

	wd, err := cfg.Booking.ClosedWeekdayValue()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
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
		{"bad port", "[server]\nhttp_port = -1\n"},
		{"zero daily cap", "[booking]\ndaily_item_cap = 0\n"},
		{"slot cap above daily cap", "[booking]\ndaily_item_cap = 20\ncapped_slot_cap = 30\n"},
		{"capped slot not in list", `[booking]` + "\n" + `capped_slot = "9:00 PM"` + "\n"},
		{"duplicate slots", `[booking]` + "\n" + `capped_slot = "10:00 AM"` + "\n" + `slots = ["10:00 AM", "10:00 AM"]` + "\n"},
		{"unknown weekday", `[booking]` + "\n" + `closed_weekday = "Someday"` + "\n"},
		{"emailjs enabled without keys", "[emailjs]\nenabled = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestClosedWeekdayValue(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
	}{
		{"Sunday", time.Sunday},
		{"sunday", time.Sunday},
		{" SATURDAY ", time.Saturday},
		{"Wednesday", time.Wednesday},
	}

	for _, tt := range tests {
		c := BookingConfig{ClosedWeekday: tt.in}
		wd, err := c.ClosedWeekdayValue()
		require.NoError(t, err, "weekday %q", tt.in)
		assert.Equal(t, tt.want, wd)
	}

	c := BookingConfig{ClosedWeekday: "Funday"}
	_, err := c.ClosedWeekdayValue()
	assert.Error(t, err)
}
