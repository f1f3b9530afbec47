package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"kanbancal/internal/model"
)

// Minutes converts a 12-hour clock display string ("9:00 AM", "02:30 PM")
// into minutes since midnight. This is the only sort key the schedule uses;
// comparing the display strings lexicographically misorders hours
// ("10:00 AM" < "9:00 AM"), so every ordering decision goes through here.
func Minutes(s string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTimeFormat, s)
	}

	clock, period := parts[0], strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, fmt.Errorf("%w: unknown period in %q", model.ErrInvalidTimeFormat, s)
	}

	hm := strings.Split(clock, ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad hour in %q", model.ErrInvalidTimeFormat, s)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad minute in %q", model.ErrInvalidTimeFormat, s)
	}

	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q out of range", model.ErrInvalidTimeFormat, s)
	}

	if period == "PM" && hours < 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, nil
}
