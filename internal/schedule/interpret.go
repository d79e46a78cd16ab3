package schedule

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Outcome classifies a single model exchange.
type Outcome string

const (
	// OutcomeConversational means the response is prose to show the user.
	OutcomeConversational Outcome = "conversational"
	// OutcomeMutation means the response parsed into a schedule mutation.
	OutcomeMutation Outcome = "mutation"
	// OutcomeUnparsable means the response looked structured but yielded
	// no valid elements.
	OutcomeUnparsable Outcome = "unparsable"
)

// MutationKind selects between the two payload conventions.
//
// The canonical wire contract is the tagged envelope
// {"kind":"replace"|"ops","payload":[...]} where the model declares which
// convention it is emitting. A bare JSON array (the legacy form) is always
// read as a full replacement; delta operations must use the envelope.
type MutationKind string

const (
	KindReplace MutationKind = "replace"
	KindOps     MutationKind = "ops"
)

// Mutation is the parsed structured payload of a mutation exchange.
type Mutation struct {
	Kind    MutationKind
	Entries []Entry     // populated when Kind == KindReplace
	Ops     []Operation // populated when Kind == KindOps
	Dropped int         // individually invalid elements that were skipped
}

// Interpretation is the classified result of one raw model response.
type Interpretation struct {
	Outcome  Outcome
	Text     string
	Mutation *Mutation
}

type envelope struct {
	Kind    string            `json:"kind"`
	Payload []json.RawMessage `json:"payload"`
}

// Interpret classifies raw model output. Text is treated as opaque data
// throughout; nothing here assumes it is safe to render verbatim.
//
// Models wrap payloads in markdown fences despite instructions, so fences
// are stripped for classification only. Conversational replies keep the
// raw output: prose may legitimately contain fenced code samples. A
// non-empty structured payload that yields zero valid elements is
// unparsable; anything that does not look structured at all is
// conversational.
func Interpret(raw string, mutationCapable bool) Interpretation {
	text := stripFences(raw)
	prose := strings.TrimSpace(raw)

	if !mutationCapable {
		return Interpretation{Outcome: OutcomeConversational, Text: prose}
	}

	switch {
	case strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}"):
		return interpretEnvelope(text, prose)
	case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
		return interpretArray(text, KindReplace, prose)
	default:
		return Interpretation{Outcome: OutcomeConversational, Text: prose}
	}
}

// stripFences removes markdown code-fence markers and trims whitespace.
func stripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func interpretEnvelope(text, prose string) Interpretation {
	var env envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		// Prose that merely starts with a brace.
		return Interpretation{Outcome: OutcomeConversational, Text: prose}
	}

	switch MutationKind(env.Kind) {
	case KindReplace:
		return interpretElements(env.Payload, KindReplace, text)
	case KindOps:
		return interpretElements(env.Payload, KindOps, text)
	default:
		return Interpretation{Outcome: OutcomeUnparsable, Text: text}
	}
}

func interpretArray(text string, kind MutationKind, prose string) Interpretation {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return Interpretation{Outcome: OutcomeConversational, Text: prose}
	}
	return interpretElements(elems, kind, text)
}

func interpretElements(elems []json.RawMessage, kind MutationKind, text string) Interpretation {
	m := &Mutation{Kind: kind}

	for _, raw := range elems {
		switch kind {
		case KindReplace:
			if e, ok := parseEntry(raw); ok {
				m.Entries = append(m.Entries, e)
			} else {
				m.Dropped++
			}
		case KindOps:
			if op, ok := parseOperation(raw); ok {
				m.Ops = append(m.Ops, op)
			} else {
				m.Dropped++
			}
		}
	}

	if len(elems) > 0 && len(m.Entries) == 0 && len(m.Ops) == 0 {
		return Interpretation{Outcome: OutcomeUnparsable, Text: text}
	}
	return Interpretation{Outcome: OutcomeMutation, Text: text, Mutation: m}
}

// wireEntry tolerates the id representations models actually emit
// (numbers from the legacy client, strings from the envelope contract).
type wireEntry struct {
	ID      any    `json:"id"`
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
	Days    []int  `json:"days"`
	Hour    int    `json:"hour"`
	Color   string `json:"color"`
}

func parseEntry(raw json.RawMessage) (Entry, bool) {
	if !validElement(entrySchema, raw) {
		return Entry{}, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var w wireEntry
	if err := dec.Decode(&w); err != nil {
		return Entry{}, false
	}

	// The schema requires a non-empty name but cannot reject whitespace.
	if strings.TrimSpace(w.Name) == "" {
		return Entry{}, false
	}

	e := Entry{
		ID:      normalizeID(w.ID),
		Name:    strings.TrimSpace(w.Name),
		Teacher: w.Teacher,
		Room:    w.Room,
		Days:    w.Days,
		Hour:    w.Hour,
		Color:   w.Color,
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if !ValidColor(e.Color) {
		e.Color = AccentColor
	}
	return e, true
}

func parseOperation(raw json.RawMessage) (Operation, bool) {
	if !validElement(operationSchema, raw) {
		return Operation{}, false
	}

	var op Operation
	if err := json.Unmarshal(raw, &op); err != nil {
		return Operation{}, false
	}
	return op, true
}

func normalizeID(id any) string {
	switch v := id.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
