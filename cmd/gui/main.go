package main

import (
	"log"

	"kingdomsperil/internal/config"
	"kingdomsperil/internal/game"
	"kingdomsperil/internal/outcomes"
	"kingdomsperil/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var story *game.Story
	if cfg.StoryFile != "" {
		story, err = game.LoadStory(cfg.StoryFile)
	} else {
		story, err = game.DefaultStory()
	}
	if err != nil {
		log.Fatal(err)
	}

	engine := &game.Engine{
		Story: story,
		Log:   outcomes.NewFileLog(cfg.OutcomesFile),
	}

	if err := tui.Run(engine); err != nil {
		log.Fatal(err)
	}
}
