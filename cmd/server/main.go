package main

import (
	"log"
	"net/http"

	"kingdomsperil/internal/config"
	"kingdomsperil/internal/game"
	"kingdomsperil/internal/outcomes"
	"kingdomsperil/internal/web"
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

	srv := web.NewServer(engine)
	log.Printf("listening on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.Routes()))
}
