package schedule

import "testing"

func testSchedule() []Entry {
	return []Entry{
		{ID: "a", Name: "Systems Arch.", Teacher: "Dr. Aris", Room: "Lab 402", Days: []int{1, 3}, Hour: 8, Color: "from-cyan-400 to-blue-500"},
		{ID: "b", Name: "DB Design", Teacher: "Elena R.", Room: "Lab 105", Days: []int{5}, Hour: 9, Color: "from-orange-400 to-red-500"},
	}
}

func TestApply_AddOccupiesExactlyOneSlot(t *testing.T) {
	next := Apply(testSchedule(), []Operation{
		{Action: ActionAdd, Day: 2, Hour: 10, Name: "Chemistry", Teacher: "Dr. Wei", Room: "Lab 7"},
	})

	e, ok := At(next, 2, 10)
	if !ok {
		t.Fatal("expected an entry at (2,10)")
	}
	if e.Name != "Chemistry" || e.Teacher != "Dr. Wei" || e.Room != "Lab 7" {
		t.Errorf("entry = %+v, want the new fields", e)
	}
	if e.Color != AccentColor {
		t.Errorf("color = %q, want assistant accent", e.Color)
	}
	if e.ID == "" {
		t.Error("expected a freshly generated id")
	}

	// Exactly one entry owns the slot.
	count := 0
	for _, e := range next {
		if e.Occupies(2, 10) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d entries occupy (2,10), want 1", count)
	}
}

func TestApply_UpdateReplacesExistingEntry(t *testing.T) {
	next := Apply(testSchedule(), []Operation{
		{Action: ActionUpdate, Day: 5, Hour: 9, Name: "Advanced DB"},
	})

	e, ok := At(next, 5, 9)
	if !ok {
		t.Fatal("expected an entry at (5,9)")
	}
	if e.Name != "Advanced DB" {
		t.Errorf("name = %q, want %q", e.Name, "Advanced DB")
	}
	if e.ID == "b" {
		t.Error("expected the old entry to be replaced, not edited in place")
	}
	for _, got := range next {
		if got.Name == "DB Design" {
			t.Error("old entry should be gone after upsert")
		}
	}
}

func TestApply_UpsertDefaultsOptionalFields(t *testing.T) {
	next := Apply(nil, []Operation{{Action: ActionAdd, Day: 1, Hour: 8}})

	e, ok := At(next, 1, 8)
	if !ok {
		t.Fatal("expected an entry at (1,8)")
	}
	if e.Name != DefaultName {
		t.Errorf("name = %q, want %q", e.Name, DefaultName)
	}
	if e.Teacher != DefaultTeacher {
		t.Errorf("teacher = %q, want %q", e.Teacher, DefaultTeacher)
	}
	if e.Room != DefaultRoom {
		t.Errorf("room = %q, want %q", e.Room, DefaultRoom)
	}
}

func TestApply_RemoveClearsSlot(t *testing.T) {
	next := Apply(testSchedule(), []Operation{{Action: ActionRemove, Day: 1, Hour: 8}})

	if _, ok := At(next, 1, 8); ok {
		t.Error("expected no entry at (1,8) after remove")
	}
}

func TestApply_RemoveIsIdempotent(t *testing.T) {
	once := Apply(testSchedule(), []Operation{{Action: ActionRemove, Day: 1, Hour: 8}})
	twice := Apply(once, []Operation{{Action: ActionRemove, Day: 1, Hour: 8}})

	if len(twice) != len(once) {
		t.Errorf("second remove changed the schedule: %d -> %d entries", len(once), len(twice))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	current := testSchedule()
	Apply(current, []Operation{{Action: ActionRemove, Day: 1, Hour: 8}})

	if len(current) != 2 {
		t.Fatalf("input schedule mutated: %d entries", len(current))
	}
	if _, ok := At(current, 1, 8); !ok {
		t.Error("input schedule lost its (1,8) entry")
	}
}

func TestReplace_LastConflictingEntryWins(t *testing.T) {
	next := Replace([]Entry{
		{ID: "first", Name: "First", Days: []int{2}, Hour: 11},
		{ID: "second", Name: "Second", Days: []int{2}, Hour: 11},
	})

	e, ok := At(next, 2, 11)
	if !ok {
		t.Fatal("expected an entry at (2,11)")
	}
	if e.ID != "second" {
		t.Errorf("slot owner = %q, want the later entry in array order", e.ID)
	}
	if len(next) != 1 {
		t.Errorf("schedule has %d entries, want 1", len(next))
	}
}

func TestReplace_MultiDayConflictEvictsWholeEntry(t *testing.T) {
	// The earlier entry spans Monday and Wednesday; a later Wednesday
	// entry at the same hour evicts it entirely.
	next := Replace([]Entry{
		{ID: "span", Name: "Span", Days: []int{1, 3}, Hour: 10},
		{ID: "wed", Name: "Wed Only", Days: []int{3}, Hour: 10},
	})

	if _, ok := At(next, 1, 10); ok {
		t.Error("expected (1,10) to be free after the spanning entry was evicted")
	}
	e, ok := At(next, 3, 10)
	if !ok || e.ID != "wed" {
		t.Errorf("(3,10) owner = %v, want the later entry", e)
	}
}

func TestReplace_NoConflictsPreservesOrder(t *testing.T) {
	in := testSchedule()
	next := Replace(in)

	if len(next) != len(in) {
		t.Fatalf("got %d entries, want %d", len(next), len(in))
	}
	for i := range in {
		if next[i].ID != in[i].ID {
			t.Errorf("entry %d = %q, want %q", i, next[i].ID, in[i].ID)
		}
	}
}

func TestSeed_HasNoSlotConflicts(t *testing.T) {
	seed := Seed()
	for day := DayMin; day <= DayMax; day++ {
		for hour := HourMin; hour <= HourMax; hour++ {
			count := 0
			for _, e := range seed {
				if e.Occupies(day, hour) {
					count++
				}
			}
			if count > 1 {
				t.Errorf("seed has %d entries at (%d,%d)", count, day, hour)
			}
		}
	}
}
