package rules

import "time"

const (
	messageTimeLayout = "3:04 PM"
	messageDayLayout  = "Jan 2"
	yesterdayLabel    = "Yesterday"
)

func DayKey(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format("2006-01-02")
}

// FormatMessageDate renders a message timestamp relative to now: a clock time
// for today, "Yesterday" for the previous calendar day, and a short date
// otherwise. Calendar days are taken in loc.
func FormatMessageDate(ts, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := ts.In(loc)
	today := now.In(loc)

	switch DayKey(local, loc) {
	case DayKey(today, loc):
		return local.Format(messageTimeLayout)
	case DayKey(time.Date(today.Year(), today.Month(), today.Day()-1, 12, 0, 0, 0, loc), loc):
		return yesterdayLabel
	default:
		return local.Format(messageDayLayout)
	}
}
