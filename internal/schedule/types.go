// Package schedule holds the weekly class grid: the entry model, the
// interpreter that turns raw model output into typed mutations, and the
// reconciler that applies those mutations to a schedule.
package schedule

// Weekday and hour domain for the weekly grid. Days run Monday (1)
// through Friday (5); hours cover the fixed daily window 08:00-16:00.
const (
	DayMin  = 1
	DayMax  = 5
	HourMin = 8
	HourMax = 16
)

// Defaults applied when an upsert omits optional fields.
const (
	DefaultName    = "New Event"
	DefaultTeacher = "Self-Study"
	DefaultRoom    = "Virtual"
)

// AccentColor marks entries created by the assistant, distinct from the
// palette used for seeded entries.
const AccentColor = "from-emerald-400 to-teal-500"

// Palette is the closed set of gradient colors an entry may carry.
// Presentation-only, but part of the persisted contract.
var Palette = []string{
	"from-cyan-400 to-blue-500",
	"from-blue-500 to-indigo-600",
	"from-teal-400 to-emerald-500",
	"from-violet-500 to-fuchsia-500",
	"from-orange-400 to-red-500",
	"from-sky-400 to-cyan-500",
	"from-pink-400 to-rose-500",
	AccentColor,
}

// ValidColor reports whether c is in the closed palette.
func ValidColor(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// Entry is a single recurring class occupying one hour on one or more
// weekdays.
type Entry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
	Days    []int  `json:"days"`
	Hour    int    `json:"hour"`
	Color   string `json:"color"`
}

// Occupies reports whether the entry claims the (day, hour) slot.
func (e Entry) Occupies(day, hour int) bool {
	if e.Hour != hour {
		return false
	}
	for _, d := range e.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Action discriminates the two mutation operations.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionRemove Action = "remove"
)

// Operation is a single parsed mutation intent targeting exactly one
// (day, hour) slot. Multi-slot requests arrive as multiple operations.
type Operation struct {
	Action  Action `json:"action"`
	Day     int    `json:"day"`
	Hour    int    `json:"hour"`
	Name    string `json:"name,omitempty"`
	Teacher string `json:"teacher,omitempty"`
	Room    string `json:"room,omitempty"`
}
