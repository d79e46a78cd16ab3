package prompt

import (
	"strings"
	"testing"

	"github.com/zaeon-io/zaeon-core/internal/persona"
)

func testAssembler(t *testing.T) *Assembler {
	t.Helper()
	reg, err := persona.Load()
	if err != nil {
		t.Fatalf("load personas: %v", err)
	}
	return New(reg)
}

func TestAssemble_PersonaRoleIsFirst(t *testing.T) {
	a := testAssembler(t)

	out := a.Assemble("ethernaut", "")
	if !strings.HasPrefix(out.System, "You are Ethernaut") {
		t.Errorf("system does not start with persona role: %q", out.System[:40])
	}
	if out.MutationCapable {
		t.Error("ethernaut must not be mutation-capable")
	}
	if strings.Contains(out.System, "SCHEDULE PROTOCOL") {
		t.Error("protocol block leaked into a non-schedule persona")
	}
}

func TestAssemble_ScheduleAgentGetsProtocolBlock(t *testing.T) {
	a := testAssembler(t)

	out := a.Assemble("aura", "")
	if !out.MutationCapable {
		t.Fatal("aura should be mutation-capable")
	}
	if !strings.Contains(out.System, ScheduleProtocol) {
		t.Error("protocol block missing from schedule agent instructions")
	}
	// The contract details the model depends on.
	for _, want := range []string{
		"Monday=1",
		"Friday=5",
		"from 8 to 16",
		"No markdown code fences",
		`"kind":"replace"`,
		`"kind":"ops"`,
		"from-emerald-400 to-teal-500",
	} {
		if !strings.Contains(out.System, want) {
			t.Errorf("protocol block missing %q", want)
		}
	}
}

func TestAssemble_SnapshotIsDelimited(t *testing.T) {
	a := testAssembler(t)

	snap := `[{"id":"a","name":"CyberSec","days":[5],"hour":14}]`
	out := a.Assemble("aura", snap)

	start := strings.Index(out.System, snapshotHeader)
	end := strings.Index(out.System, snapshotFooter)
	if start == -1 || end == -1 || end < start {
		t.Fatal("snapshot heading/footer not present in order")
	}
	if !strings.Contains(out.System[start:end], "CyberSec") {
		t.Error("snapshot content not inside the delimited section")
	}
}

func TestAssemble_EmptySnapshotOmitsSection(t *testing.T) {
	a := testAssembler(t)

	out := a.Assemble("zenita", "  \n ")
	if strings.Contains(out.System, snapshotHeader) {
		t.Error("blank snapshot should not produce a snapshot section")
	}
}

func TestAssemble_UnknownPersonaFallsBack(t *testing.T) {
	a := testAssembler(t)

	out := a.Assemble("ghost", "")
	if out.Persona.Key != "zenita" {
		t.Errorf("resolved persona = %q, want registry default", out.Persona.Key)
	}
}

func TestAssemble_NilRegistryUsesBareFallback(t *testing.T) {
	a := New(nil)

	out := a.Assemble("aura", "")
	if out.System == "" {
		t.Fatal("expected fallback instructions")
	}
	if out.Persona.Role != persona.Fallback.Role {
		t.Errorf("persona = %+v, want bare fallback", out.Persona)
	}
	if out.MutationCapable {
		t.Error("fallback persona must not be mutation-capable")
	}
}
