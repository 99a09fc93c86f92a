package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutcomesFile != "adventure_outcomes.txt" {
		t.Errorf("unexpected outcomes file: %q", cfg.OutcomesFile)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.ChronicleFile != "chronicle.pdf" {
		t.Errorf("unexpected chronicle file: %q", cfg.ChronicleFile)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OUTCOMES_FILE", "/tmp/deeds.txt")
	t.Setenv("STORY_FILE", "custom.yaml")
	t.Setenv("LISTEN_ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutcomesFile != "/tmp/deeds.txt" {
		t.Errorf("unexpected outcomes file: %q", cfg.OutcomesFile)
	}
	if cfg.StoryFile != "custom.yaml" {
		t.Errorf("unexpected story file: %q", cfg.StoryFile)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("unexpected listen addr: %q", cfg.ListenAddr)
	}
}
