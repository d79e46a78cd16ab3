package schedule

import (
	"fmt"
	"testing"
)

func TestInterpret_ProseIsConversational(t *testing.T) {
	res := Interpret("Sure, I can help with that.", true)

	if res.Outcome != OutcomeConversational {
		t.Fatalf("outcome = %q, want %q", res.Outcome, OutcomeConversational)
	}
	if res.Text != "Sure, I can help with that." {
		t.Errorf("text = %q, want original prose", res.Text)
	}
	if res.Mutation != nil {
		t.Error("expected no mutation for prose")
	}
}

func TestInterpret_NotMutationCapable(t *testing.T) {
	raw := `[{"name":"CyberSec","days":[5],"hour":14}]`
	res := Interpret(raw, false)

	if res.Outcome != OutcomeConversational {
		t.Errorf("outcome = %q, want conversational outside mutation-capable surfaces", res.Outcome)
	}
}

func TestInterpret_BareArrayIsReplacement(t *testing.T) {
	raw := `[
		{"id":1,"name":"Systems Arch.","teacher":"Dr. Aris","room":"Lab 402","days":[1,3],"hour":8,"color":"from-cyan-400 to-blue-500"},
		{"id":2,"name":"DB Design","teacher":"Elena R.","room":"Lab 105","days":[5],"hour":9,"color":"from-orange-400 to-red-500"}
	]`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want %q", res.Outcome, OutcomeMutation)
	}
	if res.Mutation.Kind != KindReplace {
		t.Errorf("kind = %q, want %q", res.Mutation.Kind, KindReplace)
	}
	if got := len(res.Mutation.Entries); got != 2 {
		t.Errorf("parsed %d entries, want 2", got)
	}
	if res.Mutation.Dropped != 0 {
		t.Errorf("dropped = %d, want 0", res.Mutation.Dropped)
	}
}

func TestInterpret_RoundTripNoDrops(t *testing.T) {
	// A well-formed array of N valid entries yields exactly N elements.
	const n = 5
	raw := "["
	for i := range n {
		if i > 0 {
			raw += ","
		}
		raw += fmt.Sprintf(`{"id":%d,"name":"Class %d","days":[%d],"hour":%d}`, i+1, i+1, i%5+1, 8+i)
	}
	raw += "]"

	res := Interpret(raw, true)
	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if len(res.Mutation.Entries) != n {
		t.Errorf("parsed %d entries, want %d", len(res.Mutation.Entries), n)
	}
	if res.Mutation.Dropped != 0 {
		t.Errorf("dropped = %d, want 0", res.Mutation.Dropped)
	}
}

func TestInterpret_FencedParsesSameAsUnfenced(t *testing.T) {
	body := `[{"id":1,"name":"CyberSec","teacher":"Jack R.","room":"Sec Lab","days":[5],"hour":14,"color":"from-sky-400 to-cyan-500"}]`
	fenced := "```json\n" + body + "\n```"

	plain := Interpret(body, true)
	wrapped := Interpret(fenced, true)

	if plain.Outcome != OutcomeMutation || wrapped.Outcome != OutcomeMutation {
		t.Fatalf("outcomes = %q / %q, want mutation for both", plain.Outcome, wrapped.Outcome)
	}
	if len(wrapped.Mutation.Entries) != 1 {
		t.Fatalf("fenced parse yielded %d entries, want 1", len(wrapped.Mutation.Entries))
	}
	if wrapped.Mutation.Entries[0].Name != plain.Mutation.Entries[0].Name ||
		wrapped.Mutation.Entries[0].Hour != plain.Mutation.Entries[0].Hour {
		t.Error("fenced and unfenced content parsed differently")
	}
}

func TestInterpret_InvalidElementsDroppedIndividually(t *testing.T) {
	raw := `[
		{"name":"Valid","days":[2],"hour":10},
		{"name":"","days":[2],"hour":10},
		{"name":"Bad Day","days":[6],"hour":10},
		{"name":"Bad Hour","days":[2],"hour":19}
	]`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if len(res.Mutation.Entries) != 1 {
		t.Errorf("kept %d entries, want 1", len(res.Mutation.Entries))
	}
	if res.Mutation.Dropped != 3 {
		t.Errorf("dropped = %d, want 3", res.Mutation.Dropped)
	}
}

func TestInterpret_AllInvalidIsUnparsable(t *testing.T) {
	raw := `[{"name":"","days":[],"hour":99}]`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeUnparsable {
		t.Errorf("outcome = %q, want %q", res.Outcome, OutcomeUnparsable)
	}
}

func TestInterpret_EmptyArray(t *testing.T) {
	// An empty array is a valid (empty) replacement, not unparsable.
	res := Interpret("[]", true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if len(res.Mutation.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(res.Mutation.Entries))
	}
}

func TestInterpret_EnvelopeOps(t *testing.T) {
	raw := `{"kind":"ops","payload":[
		{"action":"add","day":2,"hour":9,"name":"Yoga"},
		{"action":"remove","day":1,"hour":8}
	]}`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if res.Mutation.Kind != KindOps {
		t.Fatalf("kind = %q, want %q", res.Mutation.Kind, KindOps)
	}
	if len(res.Mutation.Ops) != 2 {
		t.Fatalf("parsed %d ops, want 2", len(res.Mutation.Ops))
	}
	if res.Mutation.Ops[0].Action != ActionAdd || res.Mutation.Ops[0].Name != "Yoga" {
		t.Errorf("first op = %+v, want add Yoga", res.Mutation.Ops[0])
	}
	if res.Mutation.Ops[1].Action != ActionRemove {
		t.Errorf("second op action = %q, want remove", res.Mutation.Ops[1].Action)
	}
}

func TestInterpret_EnvelopeReplace(t *testing.T) {
	raw := `{"kind":"replace","payload":[{"name":"Solo","days":[3],"hour":11}]}`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if res.Mutation.Kind != KindReplace {
		t.Errorf("kind = %q, want replace", res.Mutation.Kind)
	}
	if len(res.Mutation.Entries) != 1 {
		t.Errorf("entries = %d, want 1", len(res.Mutation.Entries))
	}
}

func TestInterpret_EnvelopeUnknownKind(t *testing.T) {
	res := Interpret(`{"kind":"merge","payload":[]}`, true)

	if res.Outcome != OutcomeUnparsable {
		t.Errorf("outcome = %q, want unparsable for unknown kind", res.Outcome)
	}
}

func TestInterpret_EnvelopeInvalidOpsDropped(t *testing.T) {
	raw := `{"kind":"ops","payload":[
		{"action":"teleport","day":1,"hour":8},
		{"action":"add","day":9,"hour":8},
		{"action":"add","day":1,"hour":8,"name":"Kept"}
	]}`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if len(res.Mutation.Ops) != 1 || res.Mutation.Ops[0].Name != "Kept" {
		t.Errorf("ops = %+v, want only the valid add", res.Mutation.Ops)
	}
	if res.Mutation.Dropped != 2 {
		t.Errorf("dropped = %d, want 2", res.Mutation.Dropped)
	}
}

func TestInterpret_DefaultsAppliedToEntries(t *testing.T) {
	raw := `[{"name":"Minimal","days":[4],"hour":12,"color":"hotpink"}]`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	e := res.Mutation.Entries[0]
	if e.ID == "" {
		t.Error("expected a generated id for entry without one")
	}
	if e.Color != AccentColor {
		t.Errorf("color = %q, want accent fallback for off-palette value", e.Color)
	}
}

func TestInterpret_NumericIDPreserved(t *testing.T) {
	raw := `[{"id":7,"name":"Legacy","days":[1],"hour":8}]`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if got := res.Mutation.Entries[0].ID; got != "7" {
		t.Errorf("id = %q, want %q", got, "7")
	}
}

func TestInterpret_ConversationalKeepsFencedCode(t *testing.T) {
	// Fence stripping is for payload detection only. Prose that happens
	// to contain a fenced code sample must come back intact.
	raw := "Here is an example:\n```go\nfmt.Println(1)\n```\nEnjoy."

	for _, capable := range []bool{true, false} {
		res := Interpret(raw, capable)
		if res.Outcome != OutcomeConversational {
			t.Fatalf("capable=%v: outcome = %q, want conversational", capable, res.Outcome)
		}
		if res.Text != raw {
			t.Errorf("capable=%v: text = %q, want the raw reply unmodified", capable, res.Text)
		}
	}
}

func TestInterpret_WrongTypedFieldsDropped(t *testing.T) {
	raw := `[
		{"name":"Kept","days":[2],"hour":10},
		{"name":"Word Hour","days":[2],"hour":"ten"},
		{"name":"Word Days","days":["Monday"],"hour":10},
		{"name":"Fractional","days":[2],"hour":10.5}
	]`
	res := Interpret(raw, true)

	if res.Outcome != OutcomeMutation {
		t.Fatalf("outcome = %q, want mutation", res.Outcome)
	}
	if len(res.Mutation.Entries) != 1 || res.Mutation.Entries[0].Name != "Kept" {
		t.Errorf("entries = %+v, want only the well-typed one", res.Mutation.Entries)
	}
	if res.Mutation.Dropped != 3 {
		t.Errorf("dropped = %d, want 3", res.Mutation.Dropped)
	}
}

func TestInterpret_ProseWithBracketsIsConversational(t *testing.T) {
	raw := "[Note] your schedule is full on Monday]"
	res := Interpret(raw, true)

	if res.Outcome != OutcomeConversational {
		t.Errorf("outcome = %q, want conversational for non-JSON bracket text", res.Outcome)
	}
}
