package model

// Event is a single calendar entry. Time is the 12-hour display string
// ("09:00 AM") and doubles as the sort key within a day, FullDate is the
// human-readable date the event currently lives on.
type Event struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Time        string
	Duration    string
	FullDate    string
}

// Copy returns an independent copy, so store mutations never touch event
// values already handed out to callers.
func (e *Event) Copy() *Event {
	c := *e
	return &c
}
