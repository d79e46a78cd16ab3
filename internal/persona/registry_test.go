package persona

import "testing"

func TestLoad_EmbeddedRegistry(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	for _, key := range []string{"zenita", "ethernaut", "ballena", "aura"} {
		p := r.Lookup(key)
		if p.Key != key {
			t.Errorf("Lookup(%q).Key = %q", key, p.Key)
		}
		if p.Role == "" {
			t.Errorf("persona %q has empty role", key)
		}
	}
}

func TestLookup_UnknownKeyFallsBackToDefault(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	def := r.Lookup("")
	if def.Key != "zenita" {
		t.Errorf("default persona = %q, want zenita", def.Key)
	}
	if got := r.Lookup("no-such-agent"); got.Key != def.Key {
		t.Errorf("unknown key resolved to %q, want default %q", got.Key, def.Key)
	}
}

func TestLookup_NilRegistryUsesFallback(t *testing.T) {
	var r *Registry
	p := r.Lookup("zenita")
	if p.Role != Fallback.Role {
		t.Errorf("nil registry returned %+v, want bare fallback", p)
	}
}

func TestOnlyAuraIsScheduleAgent(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}

	for _, key := range r.Keys() {
		p := r.Lookup(key)
		if want := key == "aura"; p.ScheduleAgent != want {
			t.Errorf("persona %q schedule_agent = %v, want %v", key, p.ScheduleAgent, want)
		}
	}
}

func TestParse_RejectsBadRegistries(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no default", "default: ghost\npersonas:\n  - key: a\n    role: x\n"},
		{"duplicate key", "default: a\npersonas:\n  - key: a\n    role: x\n  - key: a\n    role: y\n"},
		{"empty key", "default: a\npersonas:\n  - key: \"\"\n    role: x\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
