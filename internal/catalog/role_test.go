package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()
	if len(roles) == 0 {
		t.Fatal("DefaultRoles returned no roles")
	}
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			t.Errorf("invalid default role: %v", err)
		}
		if len(r.Skills) == 0 {
			t.Errorf("role %s has no skills", r.ID)
		}
	}
}

func TestParseSeed(t *testing.T) {
	data := []byte(`
roles:
  - id: " sre "
    title: Site Reliability Engineer
    skills: [Go, Linux]
    interests: [Reliability]
    keywords: [uptime]
`)

	roles, err := ParseSeed(data)
	if err != nil {
		t.Fatalf("ParseSeed failed: %v", err)
	}
	if len(roles) != 1 {
		t.Fatalf("len(roles) = %d, want 1", len(roles))
	}
	if roles[0].ID != "sre" {
		t.Errorf("ID = %q, want trimmed %q", roles[0].ID, "sre")
	}
	if len(roles[0].Keywords) != 1 || roles[0].Keywords[0] != "uptime" {
		t.Errorf("Keywords = %v", roles[0].Keywords)
	}
}

func TestParseSeed_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "roles: [\n"},
		{"empty", ""},
		{"missing id", "roles:\n  - title: Nameless\n"},
		{"missing title", "roles:\n  - id: x\n"},
		{"duplicate id", "roles:\n  - id: x\n    title: A\n  - id: x\n    title: B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSeed([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	if err := os.WriteFile(path, []byte("roles:\n  - id: a\n    title: A\n"), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	roles, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if len(roles) != 1 {
		t.Errorf("len(roles) = %d, want 1", len(roles))
	}

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
