// Package calendar converts event timestamps into the bot's display zone
// (Asia/Tehran) and the Persian calendar used in reports.
package calendar

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Stamp is a rendered local timestamp: Persian calendar date plus 24h clock.
type Stamp struct {
	Date  string // e.g. "1402/10/11"
	Clock string // e.g. "15:30:00"
}

// Convert renders t in the Tehran zone as a Persian date and clock time.
func Convert(t time.Time) Stamp {
	local := t.In(ptime.Iran())
	return Stamp{
		Date:  ptime.New(local).Format("yyyy/MM/dd"),
		Clock: local.Format("15:04:05"),
	}
}

// FileDate returns the Gregorian date of t in the Tehran zone, in the form
// used to key per-chat log files.
func FileDate(t time.Time) string {
	return t.In(ptime.Iran()).Format("2006-01-02")
}

// YesterdayFileDate returns the log-file date for the calendar day before now.
func YesterdayFileDate(now time.Time) string {
	return FileDate(now.AddDate(0, 0, -1))
}
