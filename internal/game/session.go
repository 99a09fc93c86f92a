package game

import "strings"

// DefaultPlayerName is used when a blank knightly name is given.
const DefaultPlayerName = "Sir Indecisive"

// Status is a session's lifecycle state. No transition leaves a terminal
// status.
type Status string

const (
	StatusActive  Status = "active"
	StatusVictory Status = "ended_victory"
	StatusFatal   Status = "ended_fatal"
)

// Session is one playthrough: a cursor into the story plus whatever the
// player has picked up along the way. It lives in memory only and is
// discarded when the playthrough ends.
type Session struct {
	PlayerName string
	SceneID    string
	Status     Status
	Inventory  []string
}

// NewSession starts a playthrough at the story's start scene.
func NewSession(story *Story, playerName string) *Session {
	name := strings.TrimSpace(playerName)
	if name == "" {
		name = DefaultPlayerName
	}
	return &Session{
		PlayerName: name,
		SceneID:    story.Start,
		Status:     StatusActive,
	}
}

// Ended reports whether the session reached a terminal.
func (s *Session) Ended() bool {
	return s.Status != StatusActive
}

// Grant appends items to the inventory, keeping order and dropping
// duplicates. Items are never removed.
func (s *Session) Grant(items ...string) {
	for _, item := range items {
		if item == "" || s.has(item) {
			continue
		}
		s.Inventory = append(s.Inventory, item)
	}
}

func (s *Session) has(item string) bool {
	for _, got := range s.Inventory {
		if got == item {
			return true
		}
	}
	return false
}

// DescribeInventory is a human-readable join of everything collected.
func (s *Session) DescribeInventory() string {
	if len(s.Inventory) == 0 {
		return "nothing"
	}
	return strings.Join(s.Inventory, ", ")
}
