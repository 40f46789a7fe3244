// Package format holds the presentation helpers used by the dashboard:
// phone grouping, currency, absolute and relative dates. Everything here
// is pure; only the relative forms read the clock.
package format

import (
	"fmt"
	"strings"
	"time"
)

// DateOnly is the calendar-date layout used across the dataset.
const DateOnly = "2006-01-02"

// timestampLayouts are the shapes date-like strings take in the dataset,
// most specific first.
var timestampLayouts = []string{
	"2006-01-02 3:04 PM",
	"2006-01-02 15:04",
	time.RFC3339,
	DateOnly,
}

// ParseWhen parses a date or timestamp string into a local time. Strings
// that match no known layout parse as the zero time, which sorts before
// every real date.
func ParseWhen(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// PhoneNumber formats a phone number as (XXX) XXX-XXXX, or
// +1 (XXX) XXX-XXXX for 11-digit numbers with a US country code. Numbers
// that fit neither shape come back unchanged.
func PhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:])
	}
	return phone
}

// Currency formats an amount as US dollars with thousands separators,
// e.g. 1234.5 -> "$1,234.50".
func Currency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), frac)
}

// Date formats a date string as "January 15, 2024". Unparseable input
// comes back unchanged.
func Date(date string) string {
	t := ParseWhen(date)
	if t.IsZero() {
		return date
	}
	return t.Format("January 2, 2006")
}

// DateTime formats a timestamp string as "Jan 15, 2024, 10:30 AM".
// Unparseable input comes back unchanged.
func DateTime(dateTime string) string {
	t := ParseWhen(dateTime)
	if t.IsZero() {
		return dateTime
	}
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// RelativeTime renders how long ago a timestamp was, coarsening from
// minutes through days and falling back to the absolute date after thirty
// days.
func RelativeTime(date string) string {
	return RelativeTimeAt(date, time.Now())
}

// RelativeTimeAt is RelativeTime against an explicit clock.
func RelativeTimeAt(date string, now time.Time) string {
	seconds := int64(now.Sub(ParseWhen(date)).Seconds())
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return plural(seconds/60, "minute") + " ago"
	case seconds < 86400:
		return plural(seconds/3600, "hour") + " ago"
	case seconds < 2592000:
		return plural(seconds/86400, "day") + " ago"
	}
	return Date(date)
}

// TimeUntil renders how far in the future a timestamp is, or "Overdue"
// once it has passed.
func TimeUntil(date string) string {
	return TimeUntilAt(date, time.Now())
}

// TimeUntilAt is TimeUntil against an explicit clock.
func TimeUntilAt(date string, now time.Time) string {
	seconds := int64(ParseWhen(date).Sub(now).Seconds())
	switch {
	case seconds < 0:
		return "Overdue"
	case seconds < 60:
		return "In less than a minute"
	case seconds < 3600:
		return "In " + plural(seconds/60, "minute")
	case seconds < 86400:
		return "In " + plural(seconds/3600, "hour")
	}
	return "In " + plural(seconds/86400, "day")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
