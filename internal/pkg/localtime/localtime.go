// Package localtime composes and decomposes the naive local timestamp
// strings stored in group_projects (circle_time_local,
// meetup_start_time_local).
//
// The strings carry no UTC offset; the timezone is a separately stored
// free-form label. They must round-trip by string work alone: building a
// time.Time (or any other timezone-aware value) from them shifts the wall
// clock on hosts whose zone differs from the author's, so nothing in this
// package touches the time package.
package localtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var time12Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// Decompose splits a naive timestamp string ("YYYY-MM-DDTHH:MM:SS", or with a
// space separator as written by Compose) into a DD/MM/YYYY date and a
// 12-hour H:MM AM/PM time. It never consults a timezone.
func Decompose(ts string) (date, clock string, err error) {
	sep := "T"
	if !strings.Contains(ts, "T") {
		sep = " "
	}
	parts := strings.SplitN(ts, sep, 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("localtime: malformed timestamp %q", ts)
	}

	dateParts := strings.Split(parts[0], "-")
	if len(dateParts) != 3 {
		return "", "", fmt.Errorf("localtime: malformed date in %q", ts)
	}
	year, month, day := dateParts[0], dateParts[1], dateParts[2]

	timeParts := strings.Split(parts[1], ":")
	if len(timeParts) < 2 {
		return "", "", fmt.Errorf("localtime: malformed time in %q", ts)
	}
	hours, err := strconv.Atoi(timeParts[0])
	if err != nil {
		return "", "", fmt.Errorf("localtime: non-numeric hour in %q", ts)
	}
	minutes, err := strconv.Atoi(timeParts[1])
	if err != nil {
		return "", "", fmt.Errorf("localtime: non-numeric minute in %q", ts)
	}

	hour12 := hours
	switch {
	case hours == 0:
		hour12 = 12
	case hours > 12:
		hour12 = hours - 12
	}
	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}

	return fmt.Sprintf("%s/%s/%s", day, month, year),
		fmt.Sprintf("%d:%02d %s", hour12, minutes, ampm),
		nil
}

// Compose builds the stored form "YYYY-MM-DD HH:MM:00" from a calendar date
// ("YYYY-MM-DD") and a time string. The time may be 12-hour with an AM/PM
// suffix ("9:30 AM") or bare 24-hour ("21:30"); 12 AM maps to hour 0, 12 PM
// stays 12, other PM hours add 12. The result is handed to storage as-is.
func Compose(date, clock string) (string, error) {
	dateParts := strings.Split(strings.TrimSpace(date), "-")
	if len(dateParts) != 3 {
		return "", fmt.Errorf("localtime: malformed date %q", date)
	}
	year := dateParts[0]
	month, err := strconv.Atoi(dateParts[1])
	if err != nil {
		return "", fmt.Errorf("localtime: non-numeric month in %q", date)
	}
	day, err := strconv.Atoi(dateParts[2])
	if err != nil {
		return "", fmt.Errorf("localtime: non-numeric day in %q", date)
	}

	clock = strings.TrimSpace(clock)
	var hours, minutes int
	if m := time12Re.FindStringSubmatch(clock); m != nil {
		hours, _ = strconv.Atoi(m[1])
		minutes, _ = strconv.Atoi(m[2])
		switch strings.ToUpper(m[3]) {
		case "PM":
			if hours != 12 {
				hours += 12
			}
		case "AM":
			if hours == 12 {
				hours = 0
			}
		}
	} else {
		timeParts := strings.Split(clock, ":")
		if len(timeParts) < 2 {
			return "", fmt.Errorf("localtime: malformed time %q", clock)
		}
		hours, err = strconv.Atoi(timeParts[0])
		if err != nil {
			return "", fmt.Errorf("localtime: non-numeric hour in %q", clock)
		}
		minutes, err = strconv.Atoi(timeParts[1])
		if err != nil {
			return "", fmt.Errorf("localtime: non-numeric minute in %q", clock)
		}
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("localtime: time %q out of range", clock)
	}

	return fmt.Sprintf("%s-%02d-%02d %02d:%02d:00", year, month, day, hours, minutes), nil
}
