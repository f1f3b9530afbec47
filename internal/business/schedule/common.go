package schedule

import (
	"kanbancal/internal/model"
	"kanbancal/internal/pkg/timecode"
)

// insertIndex finds the position an event with the given time value takes in
// an ordered day: before the first strictly later event, after every equal
// one. Same-time events therefore keep their arrival order.
func insertIndex(events []*model.Event, timeValue int) (int, error) {
	idx := 0
	for i, e := range events {
		v, err := timecode.Minutes(e.Time)
		if err != nil {
			return 0, err
		}
		if timeValue < v {
			break
		}
		idx = i + 1
	}

	return idx, nil
}

// insertOrdered builds a new slice with the event placed at its time-ordered
// position. The input slice is left untouched.
func insertOrdered(events []*model.Event, event *model.Event) ([]*model.Event, error) {
	timeValue, err := timecode.Minutes(event.Time)
	if err != nil {
		return nil, err
	}

	idx, err := insertIndex(events, timeValue)
	if err != nil {
		return nil, err
	}

	res := make([]*model.Event, 0, len(events)+1)
	res = append(res, events[:idx]...)
	res = append(res, event)
	res = append(res, events[idx:]...)

	return res, nil
}

// findEvent returns the position of an event id within a day, -1 if absent.
func findEvent(events []*model.Event, eventID string) int {
	for i, e := range events {
		if e.ID == eventID {
			return i
		}
	}

	return -1
}

// removeAt builds a new slice without the element at idx.
func removeAt(events []*model.Event, idx int) []*model.Event {
	res := make([]*model.Event, 0, len(events)-1)
	res = append(res, events[:idx]...)
	res = append(res, events[idx+1:]...)

	return res
}
