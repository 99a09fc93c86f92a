package main

import (
	"log"
	"os"

	"kingdomsperil/internal/cli"
	"kingdomsperil/internal/config"
	"kingdomsperil/internal/game"
	"kingdomsperil/internal/outcomes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	story, err := loadStory(cfg)
	if err != nil {
		log.Fatal(err)
	}

	engine := &game.Engine{
		Story: story,
		Log:   outcomes.NewFileLog(cfg.OutcomesFile),
	}

	front := cli.New(engine, os.Stdin, os.Stdout, cfg.ChronicleFile)
	if err := front.Run(); err != nil {
		log.Fatal(err)
	}
}

func loadStory(cfg config.Config) (*game.Story, error) {
	if cfg.StoryFile != "" {
		return game.LoadStory(cfg.StoryFile)
	}
	return game.DefaultStory()
}
