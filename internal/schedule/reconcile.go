package schedule

import "github.com/google/uuid"

// Apply produces the next schedule from current plus a list of delta
// operations. Pure: the input slice is never modified, and persistence is
// the caller's concern.
//
// Add and update share upsert semantics: any entry occupying the target
// slot is removed in full (even if it spans other days), then a fresh
// single-day entry is inserted with defaulted optional fields. Remove
// clears the slot and is a no-op when nothing occupies it.
func Apply(current []Entry, ops []Operation) []Entry {
	next := make([]Entry, len(current))
	copy(next, current)

	for _, op := range ops {
		next = clearSlot(next, op.Day, op.Hour)

		if op.Action == ActionRemove {
			continue
		}

		e := Entry{
			ID:      uuid.NewString(),
			Name:    op.Name,
			Teacher: op.Teacher,
			Room:    op.Room,
			Days:    []int{op.Day},
			Hour:    op.Hour,
			Color:   AccentColor,
		}
		if e.Name == "" {
			e.Name = DefaultName
		}
		if e.Teacher == "" {
			e.Teacher = DefaultTeacher
		}
		if e.Room == "" {
			e.Room = DefaultRoom
		}
		next = append(next, e)
	}

	return next
}

// Replace validates a full-replacement array as the next schedule. The
// uniqueness-per-slot invariant is enforced deterministically: when two
// entries claim the same (day, hour), the later entry in array order wins
// and the earlier one is removed entirely.
func Replace(entries []Entry) []Entry {
	var next []Entry
	for _, e := range entries {
		for _, d := range e.Days {
			next = clearSlot(next, d, e.Hour)
		}
		next = append(next, e)
	}
	return next
}

// At returns the entry occupying (day, hour), if any.
func At(entries []Entry, day, hour int) (Entry, bool) {
	for _, e := range entries {
		if e.Occupies(day, hour) {
			return e, true
		}
	}
	return Entry{}, false
}

func clearSlot(entries []Entry, day, hour int) []Entry {
	out := entries[:0:len(entries)]
	for _, e := range entries {
		if !e.Occupies(day, hour) {
			out = append(out, e)
		}
	}
	return out
}
