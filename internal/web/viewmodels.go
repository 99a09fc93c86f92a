package web

import "kingdomsperil/internal/game"

// MenuView renders the main menu.
type MenuView struct {
	Player string
}

// GameView renders one scene, or the ending of a playthrough.
type GameView struct {
	Player    string
	Text      string
	Scene     *game.Scene
	IsInput   bool
	Message   string
	Warning   string
	Ended     bool
	Fatal     bool
	Inventory string
}

// OutcomesView renders the outcomes report.
type OutcomesView struct {
	Report string
}
