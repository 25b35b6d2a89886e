package tui

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// greetingForHour returns the Indonesian time-of-day salutation.
// Boundaries: before 10 pagi, before 15 siang, before 18 sore, else malam.
func greetingForHour(hour int) string {
	switch {
	case hour < 10:
		return "Selamat Pagi"
	case hour < 15:
		return "Selamat Siang"
	case hour < 18:
		return "Selamat Sore"
	default:
		return "Selamat Malam"
	}
}

func greetingLine(now time.Time, userName string) string {
	return fmt.Sprintf("%s, %s", greetingForHour(now.Hour()), userName)
}

func clockLine(now time.Time) string {
	return now.Format("15:04:05")
}

func quoteLine(text, author string) string {
	return fmt.Sprintf("%q — %s", text, author)
}

func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
