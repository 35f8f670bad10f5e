package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()
	if v == "" {
		t.Fatal("version should not be empty")
	}
	if strings.TrimSpace(v) != v {
		t.Errorf("version should be trimmed, got %q", v)
	}
}
