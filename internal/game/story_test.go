package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultStory_Valid(t *testing.T) {
	story, err := DefaultStory()
	if err != nil {
		t.Fatalf("DefaultStory: %v", err)
	}
	if story.Start != "castle_or_forest" {
		t.Errorf("expected start castle_or_forest, got %q", story.Start)
	}
	if story.Scenes["dungeon_path"] == nil {
		t.Error("expected dungeon_path scene to exist")
	}
}

func TestLoadStory_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	storyPath := filepath.Join(tmpDir, "story.yaml")

	storyYAML := `start: one
scenes:
  one:
    text: First
    options:
      - key: go
        label: Go on
        next: two
  two:
    text: Second
    options:
      - key: done
        label: Finish
`
	if err := os.WriteFile(storyPath, []byte(storyYAML), 0o600); err != nil {
		t.Fatalf("write story: %v", err)
	}

	story, err := LoadStory(storyPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	one := story.Scenes["one"]
	if one == nil {
		t.Fatal("expected scene one")
	}
	if one.ID != "one" {
		t.Errorf("expected ID filled from map key, got %q", one.ID)
	}
	if one.Kind != KindChoice {
		t.Errorf("expected kind defaulted to choice, got %q", one.Kind)
	}
}

func TestLoadStory_MissingFile(t *testing.T) {
	if _, err := LoadStory("no_such_story.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadStory_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	storyPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(storyPath, []byte("start: [unclosed"), 0o600); err != nil {
		t.Fatalf("write story: %v", err)
	}
	if _, err := LoadStory(storyPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "dangling option reference",
			yaml: `start: a
scenes:
  a:
    text: x
    options:
      - key: go
        label: Go
        next: nowhere
`,
			want: "unknown scene",
		},
		{
			name: "choice scene without options",
			yaml: `start: a
scenes:
  a:
    text: x
`,
			want: "has no options",
		},
		{
			name: "input scene without wrongOutcome",
			yaml: `start: a
scenes:
  a:
    kind: input
    text: x
    answers:
      aye:
        next: victory
`,
			want: "wrongOutcome",
		},
		{
			name: "duplicate keys differing only by case",
			yaml: `start: a
scenes:
  a:
    text: x
    options:
      - key: go
        label: Go
      - key: GO
        label: Go again
`,
			want: "duplicate option key",
		},
		{
			name: "reserved scene id",
			yaml: `start: a
scenes:
  a:
    text: x
    options:
      - key: go
        label: Go
  victory:
    text: never
    options:
      - key: go
        label: Go
`,
			want: "reserved terminal marker",
		},
		{
			name: "missing start scene",
			yaml: `start: ghost
scenes:
  a:
    text: x
    options:
      - key: go
        label: Go
`,
			want: "start scene",
		},
		{
			name: "dangling answer reference",
			yaml: `start: a
scenes:
  a:
    kind: input
    text: x
    answers:
      word:
        next: nowhere
    wrongOutcome: Oops
`,
			want: "unknown scene",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStory([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var graphErr *InvalidGraphError
			if !errors.As(err, &graphErr) {
				t.Fatalf("expected InvalidGraphError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected problem mentioning %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidate_ExplicitlyEmptyWrongOutcome(t *testing.T) {
	yaml := `start: a
scenes:
  a:
    kind: input
    text: x
    answers:
      word:
        next: victory
    wrongOutcome: ""
`
	if _, err := parseStory([]byte(yaml)); err != nil {
		t.Errorf("explicitly empty wrongOutcome must be allowed: %v", err)
	}
}

func TestValidate_SentinelTargets(t *testing.T) {
	yaml := `start: a
scenes:
  a:
    text: x
    options:
      - key: win
        label: Win
        next: victory
      - key: die
        label: Die
        next: fatal
`
	if _, err := parseStory([]byte(yaml)); err != nil {
		t.Errorf("sentinel targets must be allowed: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  ECHO  "); got != "echo" {
		t.Errorf("expected echo, got %q", got)
	}
}
