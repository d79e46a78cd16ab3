package schedule

import "github.com/google/uuid"

// Seed returns the default schedule a new owner starts with.
func Seed() []Entry {
	return []Entry{
		{ID: uuid.NewString(), Name: "Systems Arch.", Teacher: "Dr. Aris", Room: "Lab 402", Days: []int{1, 3}, Hour: 8, Color: "from-cyan-400 to-blue-500"},
		{ID: uuid.NewString(), Name: "Neural Nets", Teacher: "Prof. Sarah", Room: "Hall B", Days: []int{1, 3}, Hour: 10, Color: "from-blue-500 to-indigo-600"},
		{ID: uuid.NewString(), Name: "AI Ethics", Teacher: "Marcus V.", Room: "101", Days: []int{2, 4}, Hour: 13, Color: "from-teal-400 to-emerald-500"},
		{ID: uuid.NewString(), Name: "React Flow", Teacher: "Lucas N.", Room: "Virtual", Days: []int{2, 4}, Hour: 15, Color: "from-violet-500 to-fuchsia-500"},
		{ID: uuid.NewString(), Name: "DB Design", Teacher: "Elena R.", Room: "Lab 105", Days: []int{5}, Hour: 9, Color: "from-orange-400 to-red-500"},
		{ID: uuid.NewString(), Name: "CyberSec", Teacher: "Jack R.", Room: "Sec Lab", Days: []int{1, 5}, Hour: 14, Color: "from-sky-400 to-cyan-500"},
		{ID: uuid.NewString(), Name: "UI Design", Teacher: "Sofia B.", Room: "Studio", Days: []int{3}, Hour: 15, Color: "from-pink-400 to-rose-500"},
	}
}
