package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWhen(t *testing.T) {
	assert.Equal(t, time.Date(2024, 1, 18, 10, 30, 0, 0, time.Local), ParseWhen("2024-01-18 10:30 AM"))
	assert.Equal(t, time.Date(2024, 1, 18, 14, 0, 0, 0, time.Local), ParseWhen("2024-01-18 2:00 PM"))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), ParseWhen("2024-01-15"))
	assert.True(t, ParseWhen("").IsZero())
	assert.True(t, ParseWhen("tomorrow-ish").IsZero())
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"15551234567", "+1 (555) 123-4567"},
		{"+1 (555) 123-4567", "+1 (555) 123-4567"},
		{"123", "123"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhoneNumber(tt.in), "input %q", tt.in)
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$150.00", Currency(150))
	assert.Equal(t, "$1,234.50", Currency(1234.5))
	assert.Equal(t, "$1,000,000.00", Currency(1000000))
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "-$99.99", Currency(-99.99))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "January 15, 2024", Date("2024-01-15"))
	assert.Equal(t, "not a date", Date("not a date"))
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "Jan 18, 2024, 10:30 AM", DateTime("2024-01-18 10:30 AM"))
	assert.Equal(t, "garbage", DateTime("garbage"))
}

func TestRelativeTimeAt(t *testing.T) {
	now := time.Date(2024, 1, 18, 11, 0, 0, 0, time.Local)

	assert.Equal(t, "Just now", RelativeTimeAt("2024-01-18 11:00 AM", now))
	assert.Equal(t, "1 minute ago", RelativeTimeAt("2024-01-18 10:59 AM", now))
	assert.Equal(t, "30 minutes ago", RelativeTimeAt("2024-01-18 10:30 AM", now))
	assert.Equal(t, "3 hours ago", RelativeTimeAt("2024-01-18 8:00 AM", now))
	assert.Equal(t, "2 days ago", RelativeTimeAt("2024-01-16 10:00 AM", now))
	// past thirty days it falls back to the absolute date
	assert.Equal(t, "December 9, 2023", RelativeTimeAt("2023-12-09", now))
}

func TestTimeUntilAt(t *testing.T) {
	now := time.Date(2024, 1, 18, 11, 0, 0, 0, time.Local)

	assert.Equal(t, "Overdue", TimeUntilAt("2024-01-18 10:00 AM", now))
	assert.Equal(t, "In less than a minute", TimeUntilAt("2024-01-18 11:00 AM", now))
	assert.Equal(t, "In 30 minutes", TimeUntilAt("2024-01-18 11:30 AM", now))
	assert.Equal(t, "In 3 hours", TimeUntilAt("2024-01-18 2:00 PM", now))
	assert.Equal(t, "In 1 day", TimeUntilAt("2024-01-20", now))
}
