package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	store := setupTestStore(t)
	dir := t.TempDir()
	seed := filepath.Join(dir, "roles.yaml")

	w, err := NewWatcher(seed, store, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}

	reloaded := make(chan int, 16)
	w.OnReload = func(roles int, err error) {
		if err != nil {
			return
		}
		select {
		case reloaded <- roles:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	content := "roles:\n  - id: a\n    title: A\n  - id: b\n    title: B\n"
	if err := os.WriteFile(seed, []byte(content), 0644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for n := 0; n != 2; {
		select {
		case n = <-reloaded:
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	store := setupTestStore(t)
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "roles.yaml"), store, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
