// Package config reads deployment settings from the environment. Gameplay
// itself takes no configuration; these only locate files and the listen
// address.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// OutcomesFile is the shared append-only outcomes log.
	OutcomesFile string `env:"OUTCOMES_FILE" envDefault:"adventure_outcomes.txt"`
	// StoryFile optionally overrides the built-in story.
	StoryFile string `env:"STORY_FILE"`
	// ChronicleFile is where the CLI writes the PDF chronicle.
	ChronicleFile string `env:"CHRONICLE_FILE" envDefault:"chronicle.pdf"`
	// ListenAddr is the web front-end's bind address.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
}

// Load parses the environment, after loading a .env file if one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
