package api

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	type item struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name     string
		response string
		want     int
		wantErr  bool
	}{
		{"bare array", `[{"title":"A"},{"title":"B"}]`, 2, false},
		{"code fence", "Here you go:\n```json\n[{\"title\":\"A\"}]\n```\nGood luck!", 1, false},
		{"no json", "I cannot help with that.", 0, true},
		{"broken json", `[{"title":"A"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []item
			err := ExtractJSON(tt.response, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestExtractJSON_Object(t *testing.T) {
	var got struct {
		Recommendations []struct {
			Title string `json:"title"`
		} `json:"recommendations"`
	}

	err := ExtractJSON(`Sure! {"recommendations":[{"title":"ML Engineer"}]}`, &got)
	if err != nil {
		t.Fatalf("ExtractJSON failed: %v", err)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0].Title != "ML Engineer" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	long := strings.Repeat("x", 20)
	if got := truncate(long, 5); got != "xxxxx..." {
		t.Errorf("truncate long = %q", got)
	}
}
